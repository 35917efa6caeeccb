package repository

import (
	"errors"

	"github.com/vthang/Skillforge/internal/model"
	"gorm.io/gorm"
)

type ReviewRepository interface {
	Create(review *model.Review) error
	Update(review *model.Review) error
	// FindByAttemptID returns nil, nil when no review exists for the attempt.
	FindByAttemptID(attemptID uint) (*model.Review, error)
	FindByIDWithAnswers(id uint) (*model.Review, error)
	FindAnswer(reviewID, questionID uint) (*model.ReviewAnswer, error)
	UpdateAnswer(answer *model.ReviewAnswer) error
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(review *model.Review) error {
	// Creates the snapshot ReviewAnswers along with the review row.
	return r.db.Create(review).Error
}

func (r *reviewRepository) Update(review *model.Review) error {
	return r.db.Save(review).Error
}

func (r *reviewRepository) FindByAttemptID(attemptID uint) (*model.Review, error) {
	var review model.Review
	err := r.db.
		Preload("Answers.Question").
		Where("attempt_id = ?", attemptID).
		First(&review).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) FindByIDWithAnswers(id uint) (*model.Review, error) {
	var review model.Review
	err := r.db.
		Preload("Attempt").
		Preload("Answers.Question").
		First(&review, id).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) FindAnswer(reviewID, questionID uint) (*model.ReviewAnswer, error) {
	var answer model.ReviewAnswer
	err := r.db.
		Where("review_id = ? AND question_id = ?", reviewID, questionID).
		First(&answer).Error
	if err != nil {
		return nil, err
	}
	return &answer, nil
}

func (r *reviewRepository) UpdateAnswer(answer *model.ReviewAnswer) error {
	return r.db.Save(answer).Error
}
