package dto

import "time"

// OpenReviewRequest identifies the recruiter opening (or re-opening) a review.
type OpenReviewRequest struct {
	ReviewerID uint `json:"reviewer_id" binding:"required"`
}

// EditReviewAnswerRequest updates one review answer while the review is pending.
type EditReviewAnswerRequest struct {
	ManualScore *float64 `json:"manual_score"`
	IsCorrect   *bool    `json:"is_correct"`
	Feedback    string   `json:"feedback"`
	ReviewNotes string   `json:"review_notes"`
}

type CompleteReviewRequest struct {
	OverallFeedback string `json:"overall_feedback"`
}

type ReviewAnswerDTO struct {
	ID            uint     `json:"id"`
	QuestionID    uint     `json:"question_id"`
	QuestionType  string   `json:"question_type,omitempty"`
	Prompt        string   `json:"prompt,omitempty"`
	CandidateText string   `json:"candidate_text,omitempty"`
	AutoScore     float64  `json:"auto_score"`
	AutoIsCorrect *bool    `json:"auto_is_correct,omitempty"`
	MaxPoints     float64  `json:"max_points"`
	ManualScore   *float64 `json:"manual_score,omitempty"`
	IsCorrect     *bool    `json:"is_correct,omitempty"`
	Feedback      string   `json:"feedback,omitempty"`
	ReviewNotes   string   `json:"review_notes,omitempty"`
	AIFeedback    string   `json:"ai_feedback,omitempty"`
	FinalScore    float64  `json:"final_score"`
	ManualApplied bool     `json:"manual_applied"`
}

type ReviewDetailDTO struct {
	ID              uint              `json:"id"`
	AttemptID       uint              `json:"attempt_id"`
	ReviewerID      uint              `json:"reviewer_id"`
	Status          string            `json:"status"`
	OverallScore    *float64          `json:"overall_score,omitempty"`
	OverallFeedback string            `json:"overall_feedback,omitempty"`
	ReviewedAt      *time.Time        `json:"reviewed_at,omitempty"`
	Answers         []ReviewAnswerDTO `json:"answers,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
}
