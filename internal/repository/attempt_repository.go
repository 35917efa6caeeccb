package repository

import (
	"errors"

	"github.com/vthang/Skillforge/internal/model"
	"gorm.io/gorm"
)

type AttemptRepository interface {
	Create(attempt *model.Attempt) error
	Update(attempt *model.Attempt) error
	FindByID(id uint) (*model.Attempt, error)
	FindByIDWithAnswers(id uint) (*model.Attempt, error)
	CountByCandidateAndAssessment(candidateID, assessmentID uint) (int64, error)
	FindInProgress(candidateID, assessmentID uint) (*model.Attempt, error)
	FindAllByAssessment(assessmentID uint) ([]model.Attempt, error)
	FindAllByCandidateAndAssessment(candidateID, assessmentID uint) ([]model.Attempt, error)
}

type attemptRepository struct {
	db *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) AttemptRepository {
	return &attemptRepository{db: db}
}

func (r *attemptRepository) Create(attempt *model.Attempt) error {
	return r.db.Create(attempt).Error
}

func (r *attemptRepository) Update(attempt *model.Attempt) error {
	return r.db.Save(attempt).Error
}

func (r *attemptRepository) FindByID(id uint) (*model.Attempt, error) {
	var attempt model.Attempt
	err := r.db.First(&attempt, id).Error
	return &attempt, err
}

func (r *attemptRepository) FindByIDWithAnswers(id uint) (*model.Attempt, error) {
	var attempt model.Attempt
	err := r.db.
		Preload("Assessment").
		Preload("Answers.Question").
		First(&attempt, id).Error
	return &attempt, err
}

func (r *attemptRepository) CountByCandidateAndAssessment(candidateID, assessmentID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Attempt{}).
		Where("candidate_id = ? AND assessment_id = ?", candidateID, assessmentID).
		Count(&count).Error
	return count, err
}

// FindInProgress returns nil, nil when the candidate has no attempt in flight.
func (r *attemptRepository) FindInProgress(candidateID, assessmentID uint) (*model.Attempt, error) {
	var attempt model.Attempt
	err := r.db.
		Where("candidate_id = ? AND assessment_id = ? AND status = ?", candidateID, assessmentID, model.AttemptStatusInProgress).
		First(&attempt).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *attemptRepository) FindAllByAssessment(assessmentID uint) ([]model.Attempt, error) {
	var attempts []model.Attempt
	err := r.db.Where("assessment_id = ?", assessmentID).Order("started_at DESC").Find(&attempts).Error
	return attempts, err
}

func (r *attemptRepository) FindAllByCandidateAndAssessment(candidateID, assessmentID uint) ([]model.Attempt, error) {
	var attempts []model.Attempt
	err := r.db.
		Where("candidate_id = ? AND assessment_id = ?", candidateID, assessmentID).
		Order("attempt_number ASC").
		Find(&attempts).Error
	return attempts, err
}
