package message

import (
	"context"

	"Fynd-Backend/entities"

	"gorm.io/gorm"
)

type (
	MessageRepository interface {
		CreateMessage(ctx context.Context, message *entities.Message) error
		GetConversation(ctx context.Context, itemID, userA, userB string) ([]*entities.Message, error)
		GetUnreadCount(ctx context.Context, itemID, receiverID, senderID string) (int, error)
		MarkConversationRead(ctx context.Context, itemID, receiverID, senderID string) error
	}

	messageRepository struct {
		db *gorm.DB
	}
)

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{
		db: db,
	}
}

func (r *messageRepository) CreateMessage(ctx context.Context, message *entities.Message) error {
	return r.db.WithContext(ctx).Create(message).Error
}

// GetConversation returns both directions of one (item, userA, userB) pair
// and nothing else; other pairs on the same item stay invisible.
func (r *messageRepository) GetConversation(ctx context.Context, itemID, userA, userB string) ([]*entities.Message, error) {
	var messages []*entities.Message
	if err := r.db.WithContext(ctx).
		Preload("Sender").
		Where("item_id = ?", itemID).
		Where(
			"(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userA, userB, userB, userA,
		).
		Order("created_at ASC").
		Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *messageRepository) GetUnreadCount(ctx context.Context, itemID, receiverID, senderID string) (int, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Message{}).
		Where("item_id = ? AND receiver_id = ? AND sender_id = ? AND read = ?",
			itemID, receiverID, senderID, false).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}

// MarkConversationRead only flips messages addressed to the receiver; the
// update is idempotent.
func (r *messageRepository) MarkConversationRead(ctx context.Context, itemID, receiverID, senderID string) error {
	return r.db.WithContext(ctx).
		Model(&entities.Message{}).
		Where("item_id = ? AND receiver_id = ? AND sender_id = ? AND read = ?",
			itemID, receiverID, senderID, false).
		Update("read", true).Error
}
