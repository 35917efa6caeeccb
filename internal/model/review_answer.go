package model

import (
	"time"

	"gorm.io/gorm"
)

// ReviewAnswer carries the auto-graded snapshot of one question alongside the
// recruiter's optional manual override. AutoScore/AutoIsCorrect are copied from
// the AttemptAnswer when the review is created and never change afterwards.
type ReviewAnswer struct {
	ID       uint     `gorm:"primarykey" json:"id"`
	ReviewID uint     `json:"review_id" gorm:"not null;index;uniqueIndex:idx_review_question"`

	QuestionID uint     `json:"question_id" gorm:"not null;uniqueIndex:idx_review_question"`
	Question   Question `json:"question,omitempty" gorm:"foreignKey:QuestionID"`

	// Immutable auto-grade snapshot.
	AutoScore     float64 `json:"auto_score"`
	AutoIsCorrect *bool   `json:"auto_is_correct,omitempty"`
	MaxPoints     float64 `json:"max_points"`

	// Recruiter-set fields.
	ManualScore *float64 `json:"manual_score,omitempty"`
	IsCorrect   *bool    `json:"is_correct,omitempty"`
	Feedback    string   `json:"feedback,omitempty" gorm:"type:text"`
	ReviewNotes string   `json:"review_notes,omitempty" gorm:"type:text"`

	// AIFeedback is an advisory draft produced when the review is opened.
	// It never participates in scoring.
	AIFeedback string `json:"ai_feedback,omitempty" gorm:"type:text"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Score is a graded value tagged with its origin.
type Score struct {
	Value  float64 `json:"value"`
	Manual bool    `json:"manual"`
}

// FinalScore resolves manual-overrides-auto precedence as a total function.
// Callers must use this instead of inspecting ManualScore themselves.
func (ra *ReviewAnswer) FinalScore() Score {
	if ra.ManualScore != nil {
		return Score{Value: *ra.ManualScore, Manual: true}
	}
	return Score{Value: ra.AutoScore, Manual: false}
}
