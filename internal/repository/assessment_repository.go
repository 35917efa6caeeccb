package repository

import (
	"github.com/vthang/Skillforge/internal/model"
	"gorm.io/gorm"
)

type AssessmentRepository interface {
	Create(assessment *model.Assessment) error
	FindByID(id uint) (*model.Assessment, error)
	FindByIDWithQuestions(id uint) (*model.Assessment, error)
	FindAllWithQuestionCount() ([]struct {
		model.Assessment
		QuestionCount int
	}, error)
	Update(assessment *model.Assessment) error
}

type assessmentRepository struct {
	db *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) AssessmentRepository {
	return &assessmentRepository{db: db}
}

func (r *assessmentRepository) Create(assessment *model.Assessment) error {
	// GORM creates the associated questions when assessment.Questions is populated.
	return r.db.Create(assessment).Error
}

func (r *assessmentRepository) FindByID(id uint) (*model.Assessment, error) {
	var assessment model.Assessment
	err := r.db.First(&assessment, id).Error
	return &assessment, err
}

func (r *assessmentRepository) FindByIDWithQuestions(id uint) (*model.Assessment, error) {
	var assessment model.Assessment
	err := r.db.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("questions.order_in_assessment ASC")
	}).First(&assessment, id).Error
	if err != nil {
		return nil, err
	}
	return &assessment, nil
}

func (r *assessmentRepository) FindAllWithQuestionCount() ([]struct {
	model.Assessment
	QuestionCount int
}, error) {
	var results []struct {
		model.Assessment
		QuestionCount int
	}
	err := r.db.Model(&model.Assessment{}).
		Select("assessments.*, (SELECT COUNT(*) FROM questions WHERE questions.assessment_id = assessments.id AND questions.deleted_at IS NULL) AS question_count").
		Order("assessments.created_at DESC").
		Find(&results).Error
	return results, err
}

func (r *assessmentRepository) Update(assessment *model.Assessment) error {
	return r.db.Save(assessment).Error
}
