package model

import (
	"time"

	"gorm.io/gorm"
)

// Notification is a message surfaced to a user in the platform inbox, e.g. the
// "your results are available" message sent when a review is released.
type Notification struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	UserID      uint           `json:"user_id" gorm:"not null;index"`
	Title       string         `json:"title" gorm:"not null"`
	Message     string         `json:"message" gorm:"type:text"`
	PayloadJSON string         `json:"-" gorm:"column:payload;type:text"`
	IsRead      bool           `json:"is_read" gorm:"default:false"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
