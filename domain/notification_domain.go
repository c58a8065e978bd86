package domain

import (
	"errors"
	"time"
)

// NotificationType is a closed set; pkg/notification owns the mapping from
// workflow events to titles and bodies so render-time string matching is
// never needed.
type NotificationType string

const (
	NotificationClaim                NotificationType = "claim"
	NotificationClaimApproved        NotificationType = "claim_approved"
	NotificationClaimRejected        NotificationType = "claim_rejected"
	NotificationMessage              NotificationType = "message"
	NotificationItemResolved         NotificationType = "item_resolved"
	NotificationVerificationApproved NotificationType = "verification_approved"
	NotificationVerificationRejected NotificationType = "verification_rejected"
)

var (
	MessageSuccessGetNotifications = "notifications retrieved successfully"
	MessageSuccessMarkRead         = "notification marked as read"
	MessageSuccessMarkAllRead      = "all notifications marked as read"

	MessageFailedGetNotifications = "failed to retrieve notifications"
	MessageFailedMarkRead         = "failed to mark notification as read"

	ErrNotificationNotFound = errors.New("notification not found")
	ErrNotNotificationOwner = errors.New("notification belongs to another user")
)

type (
	Notification struct {
		ID        string           `json:"id"`
		UserID    string           `json:"user_id"`
		Type      NotificationType `json:"type"`
		Title     string           `json:"title"`
		Message   string           `json:"message"`
		Link      string           `json:"link,omitempty"`
		Read      bool             `json:"read"`
		CreatedAt time.Time        `json:"created_at"`
	}

	NotificationList struct {
		Notifications       []*Notification `json:"notifications"`
		UnreadCount         int             `json:"unread_count"`
		PollIntervalSeconds int             `json:"poll_interval_seconds"`
	}
)
