package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	AssessmentTypeTest = "test"

	AssessmentStatusDraft    = "draft"
	AssessmentStatusActive   = "active"
	AssessmentStatusArchived = "archived"
)

type Assessment struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	RecruiterID  uint           `json:"recruiter_id" gorm:"not null;index"`
	Title        string         `json:"title" gorm:"not null"`
	Description  string         `json:"description,omitempty"`
	Type         string         `json:"type" gorm:"not null"` // "test", "practice"
	Difficulty   string         `json:"difficulty,omitempty"`
	Duration     int            `json:"duration,omitempty"` // minutes
	PassingScore int            `json:"passing_score" gorm:"not null;default:0"`
	Instructions string         `json:"instructions,omitempty" gorm:"type:text"`
	Tags         string         `json:"tags,omitempty"`
	Status       string         `json:"status" gorm:"default:'draft'"`
	Deadline     *time.Time     `json:"deadline,omitempty"`
	Questions    []Question     `json:"questions,omitempty" gorm:"foreignKey:AssessmentID"`
	Attempts     []Attempt      `json:"attempts,omitempty" gorm:"foreignKey:AssessmentID"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// OpenForAttempts reports whether candidates may start attempts right now.
func (a *Assessment) OpenForAttempts() bool {
	if a.Type != AssessmentTypeTest || a.Status != AssessmentStatusActive {
		return false
	}
	if a.Deadline != nil && time.Now().After(*a.Deadline) {
		return false
	}
	return true
}
