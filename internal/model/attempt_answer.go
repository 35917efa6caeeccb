package model

import (
	"time"

	"gorm.io/gorm"
)

// AttemptAnswer is a candidate's answer to one question within an attempt.
// There is at most one row per (attempt, question); resubmitting overwrites.
type AttemptAnswer struct {
	ID         uint     `gorm:"primarykey" json:"id"`
	AttemptID  uint     `json:"attempt_id" gorm:"not null;index;uniqueIndex:idx_attempt_question"`
	QuestionID uint     `json:"question_id" gorm:"not null;index;uniqueIndex:idx_attempt_question"`
	Question   Question `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
	Answer     string   `json:"answer" gorm:"type:text;not null"`

	// IsCorrect stays nil for essays and for answers not yet graded.
	IsCorrect *bool `json:"is_correct,omitempty"`

	// TestCaseScore is the fraction of test cases passed, in [0,1]. Coding only.
	TestCaseScore *float64 `json:"test_case_score,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
