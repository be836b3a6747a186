package biz

import (
	"context"

	"github.com/kart-io/skillswap/internal/model"
	"github.com/kart-io/skillswap/internal/store"
)

// NotificationService serves a user's inbox.
type NotificationService struct {
	store store.Factory
}

// NewNotificationService creates a NotificationService.
func NewNotificationService(f store.Factory) *NotificationService {
	return &NotificationService{store: f}
}

// List returns a page of the user's inbox.
func (s *NotificationService) List(ctx context.Context, userID, status string, offset, limit int) ([]*model.Notification, int64, error) {
	return s.store.Notifications().List(ctx, store.ListNotificationsOptions{
		RecipientID: userID,
		Status:      status,
		Offset:      offset,
		Limit:       limit,
	})
}
