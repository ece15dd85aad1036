// File: services/notification/interface.go
package notification

import (
	"context"
	"fmt"

	userRepo "stylebook/database/repository/user"
	"stylebook/models"
	"stylebook/utils"

	"firebase.google.com/go/v4/messaging"
)

// NotificationService defines methods for sending FCM pushes.
type NotificationService interface {
	SendUserPushNotification(ctx context.Context, userID, title, body string, data map[string]string) error
	NotifyAutoReject(ctx context.Context, payload models.AutoRejectPayload) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	users userRepo.UserRepository
}

func NewDefaultNotificationService(users userRepo.UserRepository) (*DefaultNotificationService, error) {
	if users == nil {
		return nil, fmt.Errorf("notification service initialization error: user repository is nil")
	}
	return &DefaultNotificationService{users: users}, nil
}

// SendUserPushNotification looks up a user's FCM token and sends a push.
func (s *DefaultNotificationService) SendUserPushNotification(
	ctx context.Context,
	userID, title, body string,
	data map[string]string,
) error {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("SendUserPushNotification: could not find user %s: %w", userID, err)
	}
	if u.FCMToken == "" {
		return fmt.Errorf("SendUserPushNotification: user %s has no FCM token", userID)
	}

	msg := &messaging.Message{
		Token: u.FCMToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		return fmt.Errorf("SendUserPushNotification: failed to send FCM message: %w", err)
	}
	return nil
}

// NotifyAutoReject tells the booking's owner that their appointment was
// rejected automatically and why.
func (s *DefaultNotificationService) NotifyAutoReject(ctx context.Context, payload models.AutoRejectPayload) error {
	title := "Appointment cancelled"
	body := fmt.Sprintf(
		"Your appointment on %s at %s was cancelled automatically (%s).",
		payload.Date, payload.StartTime, payload.Reason,
	)
	return s.SendUserPushNotification(ctx, payload.UserID, title, body, map[string]string{
		"type":      "auto_reject",
		"bookingId": payload.BookingID,
		"reason":    payload.Reason,
	})
}
