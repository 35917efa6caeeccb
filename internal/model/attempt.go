package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	AttemptStatusInProgress = "in_progress"
	AttemptStatusCompleted  = "completed"

	// MaxAttemptsPerAssessment is the ceiling on attempts a candidate gets for
	// one assessment.
	MaxAttemptsPerAssessment = 3
)

type Attempt struct {
	ID            uint            `gorm:"primarykey" json:"id"`
	// The partial unique index makes "one in-flight attempt per candidate and
	// assessment" hold under concurrent starts, not just in the service check.
	CandidateID   uint            `json:"candidate_id" gorm:"not null;index;uniqueIndex:uniq_attempt_in_flight,where:status = 'in_progress'"`
	AssessmentID  uint            `json:"assessment_id" gorm:"not null;index;uniqueIndex:uniq_attempt_in_flight,where:status = 'in_progress'"`
	Assessment    Assessment      `json:"assessment,omitempty" gorm:"foreignKey:AssessmentID"`
	AttemptNumber int             `json:"attempt_number" gorm:"not null"`
	Status        string          `json:"status" gorm:"default:'in_progress'"`
	Score         *float64        `json:"score,omitempty"`  // 0-100, set at completion
	Passed        *bool           `json:"passed,omitempty"` // set at completion
	StartedAt     time.Time       `json:"started_at"`
	CompletedAt   *time.Time      `json:"completed_at,omitempty"`
	TimeSpent     int             `json:"time_spent"` // seconds, never negative
	Answers       []AttemptAnswer `json:"answers,omitempty" gorm:"foreignKey:AttemptID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	DeletedAt     gorm.DeletedAt  `gorm:"index" json:"-"`
}
