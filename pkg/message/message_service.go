package message

import (
	"context"
	"errors"

	"Fynd-Backend/domain"
	"Fynd-Backend/entities"
	"Fynd-Backend/internal/utils"
	"Fynd-Backend/pkg/claim"
	"Fynd-Backend/pkg/item"
	"Fynd-Backend/pkg/notification"
	"Fynd-Backend/pkg/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	MessageService interface {
		SendMessage(ctx context.Context, req domain.SendMessageRequest, userID string) (*domain.Message, error)
		GetConversation(ctx context.Context, itemID, otherUserID, userID string) (*domain.Conversation, error)
		MarkConversationRead(ctx context.Context, itemID, otherUserID, userID string) error
	}

	messageService struct {
		messageRepository MessageRepository
		itemRepository    item.ItemRepository
		claimRepository   claim.ClaimRepository
		userRepository    user.UserRepository
		dispatcher        notification.Dispatcher
	}
)

func NewMessageService(
	messageRepository MessageRepository,
	itemRepository item.ItemRepository,
	claimRepository claim.ClaimRepository,
	userRepository user.UserRepository,
	dispatcher notification.Dispatcher,
) MessageService {
	return &messageService{
		messageRepository: messageRepository,
		itemRepository:    itemRepository,
		claimRepository:   claimRepository,
		userRepository:    userRepository,
		dispatcher:        dispatcher,
	}
}

func (s *messageService) SendMessage(ctx context.Context, req domain.SendMessageRequest, userID string) (*domain.Message, error) {
	if req.ReceiverID == userID {
		return nil, domain.ErrMessageSelf
	}

	msgItem, err := s.itemRepository.GetItemByID(ctx, req.ItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrItemNotFound
		}
		return nil, err
	}

	if msgItem.Status != domain.ItemStatusActive {
		return nil, domain.ErrMessageItemNotActive
	}

	if err := s.checkParticipant(ctx, msgItem, userID); err != nil {
		return nil, err
	}
	if err := s.checkParticipant(ctx, msgItem, req.ReceiverID); err != nil {
		return nil, err
	}

	senderUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	receiverUUID, err := uuid.Parse(req.ReceiverID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	message := &entities.Message{
		ID:         uuid.New(),
		ItemID:     msgItem.ID,
		SenderID:   senderUUID,
		ReceiverID: receiverUUID,
		Content:    req.Content,
	}

	if err := s.messageRepository.CreateMessage(ctx, message); err != nil {
		return nil, err
	}

	senderEmail := ""
	if sender, err := s.userRepository.GetUserByID(ctx, userID); err == nil {
		senderEmail = sender.Email
	}
	s.dispatcher.Dispatch(ctx, notification.NewMessageEvent(
		receiverUUID, msgItem.ID, msgItem.Title, senderEmail,
	))

	return toDomainMessage(message), nil
}

func (s *messageService) GetConversation(ctx context.Context, itemID, otherUserID, userID string) (*domain.Conversation, error) {
	msgItem, err := s.itemRepository.GetItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrItemNotFound
		}
		return nil, err
	}

	if err := s.checkParticipant(ctx, msgItem, userID); err != nil {
		return nil, err
	}

	messages, err := s.messageRepository.GetConversation(ctx, itemID, userID, otherUserID)
	if err != nil {
		return nil, err
	}

	unread, err := s.messageRepository.GetUnreadCount(ctx, itemID, userID, otherUserID)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.Message, 0, len(messages))
	for _, m := range messages {
		result = append(result, toDomainMessage(m))
	}

	return &domain.Conversation{
		ItemID:              itemID,
		Messages:            result,
		UnreadCount:         unread,
		PollIntervalSeconds: utils.GetConfigInt("MESSAGE_POLL_SECONDS", 5),
	}, nil
}

func (s *messageService) MarkConversationRead(ctx context.Context, itemID, otherUserID, userID string) error {
	return s.messageRepository.MarkConversationRead(ctx, itemID, userID, otherUserID)
}

// checkParticipant allows only the item owner and users holding a claim of
// any status on the item.
func (s *messageService) checkParticipant(ctx context.Context, msgItem *entities.Item, userID string) error {
	if msgItem.UserID.String() == userID {
		return nil
	}
	hasClaim, err := s.claimRepository.HasClaim(ctx, msgItem.ID.String(), userID)
	if err != nil {
		return err
	}
	if !hasClaim {
		return domain.ErrMessageNotAllowed
	}
	return nil
}

func toDomainMessage(m *entities.Message) *domain.Message {
	d := &domain.Message{
		ID:         m.ID.String(),
		ItemID:     m.ItemID.String(),
		SenderID:   m.SenderID.String(),
		ReceiverID: m.ReceiverID.String(),
		Content:    m.Content,
		Read:       m.Read,
		CreatedAt:  m.CreatedAt,
	}
	if m.Sender != nil {
		d.SenderEmail = m.Sender.Email
	}
	return d
}
