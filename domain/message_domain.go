package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetMessages  = "messages retrieved successfully"
	MessageSuccessSendMessage  = "message sent successfully"
	MessageSuccessReadMessages = "messages marked as read"

	MessageFailedGetMessages = "failed to retrieve messages"
	MessageFailedSendMessage = "failed to send message"

	ErrMessageNotAllowed    = errors.New("messaging is only open to the item owner and claimants while the item is active")
	ErrMessageSelf          = errors.New("cannot message yourself")
	ErrMessageItemNotActive = errors.New("conversation is closed, item is no longer active")
)

type (
	SendMessageRequest struct {
		ItemID     string `json:"item_id" validate:"required,uuid"`
		ReceiverID string `json:"receiver_id" validate:"required,uuid"`
		Content    string `json:"content" validate:"required,max=2000"`
	}

	Message struct {
		ID          string    `json:"id"`
		ItemID      string    `json:"item_id"`
		SenderID    string    `json:"sender_id"`
		SenderEmail string    `json:"sender_email,omitempty"`
		ReceiverID  string    `json:"receiver_id"`
		Content     string    `json:"content"`
		Read        bool      `json:"read"`
		CreatedAt   time.Time `json:"created_at"`
	}

	Conversation struct {
		ItemID              string     `json:"item_id"`
		Messages            []*Message `json:"messages"`
		UnreadCount         int        `json:"unread_count"`
		PollIntervalSeconds int        `json:"poll_interval_seconds"`
	}
)
