package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	ReviewStatusPending   = "pending"
	ReviewStatusCompleted = "completed"
)

// Review is a recruiter's pass over one completed attempt. At most one per
// attempt; created lazily the first time the attempt is opened for review.
type Review struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	AttemptID       uint           `json:"attempt_id" gorm:"not null;uniqueIndex"`
	Attempt         Attempt        `json:"attempt,omitempty" gorm:"foreignKey:AttemptID"`
	ReviewerID      uint           `json:"reviewer_id" gorm:"not null;index"`
	Status          string         `json:"status" gorm:"default:'pending'"`
	OverallScore    *float64       `json:"overall_score,omitempty"`
	OverallFeedback string         `json:"overall_feedback,omitempty" gorm:"type:text"`
	ReviewedAt      *time.Time     `json:"reviewed_at,omitempty"`
	Answers         []ReviewAnswer `json:"answers,omitempty" gorm:"foreignKey:ReviewID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}
