package notification

import (
	"context"
	"fmt"

	userRepo "stayx/database/repository/user"
	"stayx/utils"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
)

// Service delivers push notifications to users.
type Service interface {
	SendUserPush(ctx context.Context, userID, title, body string, data map[string]string) error
}

// DefaultNotificationService sends via Firebase Cloud Messaging.
type DefaultNotificationService struct {
	FCM   *messaging.Client
	Users userRepo.Repository
}

func (s *DefaultNotificationService) SendUserPush(ctx context.Context, userID, title, body string, data map[string]string) error {
	usr, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load user %q: %w", userID, err)
	}
	if usr.FCMToken == "" {
		// Nothing registered to deliver to; not an error.
		utils.GetLogger().Debug("user has no FCM token", zap.String("uid", userID))
		return nil
	}

	msg := &messaging.Message{
		Token: usr.FCMToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}
	if _, err := s.FCM.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send push to %q: %w", userID, err)
	}
	return nil
}
