package service

import "errors"

var (
	ErrAssessmentClosed        = errors.New("assessment is not open for attempts")
	ErrAttemptLimitReached     = errors.New("attempt limit reached for this assessment")
	ErrAttemptInProgress       = errors.New("an attempt is already in progress for this assessment")
	ErrAttemptNotInProgress    = errors.New("attempt is not in progress")
	ErrAttemptNotCompleted     = errors.New("attempt is not completed")
	ErrQuestionNotInAssessment = errors.New("question does not belong to the attempt's assessment")
	ErrReviewNotPending        = errors.New("review is not pending")
	ErrReviewNotCompleted      = errors.New("review must be completed before release")
)
