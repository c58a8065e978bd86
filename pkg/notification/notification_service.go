package notification

import (
	"context"
	"errors"

	"Fynd-Backend/domain"
	"Fynd-Backend/internal/utils"

	"gorm.io/gorm"
)

const notificationListLimit = 50

type (
	NotificationService interface {
		GetUserNotifications(ctx context.Context, userID string) (*domain.NotificationList, error)
		MarkNotificationRead(ctx context.Context, notificationID string, userID string) error
		MarkAllNotificationsRead(ctx context.Context, userID string) error
	}

	notificationService struct {
		notificationRepository NotificationRepository
	}
)

func NewNotificationService(notificationRepository NotificationRepository) NotificationService {
	return &notificationService{
		notificationRepository: notificationRepository,
	}
}

func (s *notificationService) GetUserNotifications(ctx context.Context, userID string) (*domain.NotificationList, error) {
	notifications, err := s.notificationRepository.GetUserNotifications(ctx, userID, notificationListLimit)
	if err != nil {
		return nil, err
	}

	unread, err := s.notificationRepository.GetUnreadCount(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.Notification, 0, len(notifications))
	for _, n := range notifications {
		result = append(result, &domain.Notification{
			ID:        n.ID.String(),
			UserID:    n.UserID.String(),
			Type:      domain.NotificationType(n.Type),
			Title:     n.Title,
			Message:   n.Message,
			Link:      n.Link,
			Read:      n.Read,
			CreatedAt: n.CreatedAt,
		})
	}

	return &domain.NotificationList{
		Notifications:       result,
		UnreadCount:         unread,
		PollIntervalSeconds: utils.GetConfigInt("NOTIFICATION_POLL_SECONDS", 10),
	}, nil
}

func (s *notificationService) MarkNotificationRead(ctx context.Context, notificationID string, userID string) error {
	notification, err := s.notificationRepository.GetNotificationByID(ctx, notificationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotificationNotFound
		}
		return err
	}

	if notification.UserID.String() != userID {
		return domain.ErrNotNotificationOwner
	}

	// already-read rows pass straight through, marking twice is a no-op
	return s.notificationRepository.MarkNotificationRead(ctx, notificationID)
}

func (s *notificationService) MarkAllNotificationsRead(ctx context.Context, userID string) error {
	return s.notificationRepository.MarkAllNotificationsRead(ctx, userID)
}
