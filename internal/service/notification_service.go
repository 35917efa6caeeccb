package service

import (
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/vthang/Skillforge/internal/model"
	"github.com/vthang/Skillforge/internal/repository"
)

// NotificationService is the boundary to the platform's messaging subsystem.
type NotificationService interface {
	Notify(userID uint, title, message string, payload map[string]interface{}) error
	ListForUser(userID uint) ([]model.Notification, error)
}

type notificationService struct {
	notificationRepo repository.NotificationRepository
}

func NewNotificationService(notificationRepo repository.NotificationRepository) NotificationService {
	return &notificationService{notificationRepo: notificationRepo}
}

func (s *notificationService) Notify(userID uint, title, message string, payload map[string]interface{}) error {
	notification := model.Notification{
		UserID:  userID,
		Title:   title,
		Message: message,
	}
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode notification payload: %w", err)
		}
		notification.PayloadJSON = string(buf)
	}

	if err := s.notificationRepo.Create(&notification); err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("Notify: Failed to persist notification")
		return fmt.Errorf("failed to create notification: %w", err)
	}
	log.Info().Uint("userID", userID).Str("title", title).Msg("Notification sent")
	return nil
}

func (s *notificationService) ListForUser(userID uint) ([]model.Notification, error) {
	notifications, err := s.notificationRepo.FindByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}
