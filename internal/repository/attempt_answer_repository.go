package repository

import (
	"errors"

	"github.com/vthang/Skillforge/internal/model"
	"gorm.io/gorm"
)

type AttemptAnswerRepository interface {
	// Upsert writes the answer for (attempt, question), overwriting any
	// existing row instead of duplicating it.
	Upsert(answer *model.AttemptAnswer) error
	FindByAttemptAndQuestion(attemptID, questionID uint) (*model.AttemptAnswer, error)
	FindByAttemptID(attemptID uint) ([]model.AttemptAnswer, error)
}

type attemptAnswerRepository struct {
	db *gorm.DB
}

func NewAttemptAnswerRepository(db *gorm.DB) AttemptAnswerRepository {
	return &attemptAnswerRepository{db: db}
}

func (r *attemptAnswerRepository) Upsert(answer *model.AttemptAnswer) error {
	var existing model.AttemptAnswer
	err := r.db.
		Where("attempt_id = ? AND question_id = ?", answer.AttemptID, answer.QuestionID).
		First(&existing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return r.db.Create(answer).Error
		}
		return err
	}
	answer.ID = existing.ID
	answer.CreatedAt = existing.CreatedAt
	return r.db.Save(answer).Error
}

func (r *attemptAnswerRepository) FindByAttemptAndQuestion(attemptID, questionID uint) (*model.AttemptAnswer, error) {
	var answer model.AttemptAnswer
	err := r.db.
		Where("attempt_id = ? AND question_id = ?", attemptID, questionID).
		First(&answer).Error
	if err != nil {
		return nil, err
	}
	return &answer, nil
}

func (r *attemptAnswerRepository) FindByAttemptID(attemptID uint) ([]model.AttemptAnswer, error) {
	var answers []model.AttemptAnswer
	err := r.db.Where("attempt_id = ?", attemptID).Find(&answers).Error
	return answers, err
}
