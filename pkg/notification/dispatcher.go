package notification

import (
	"context"
	"fmt"

	"Fynd-Backend/domain"
	"Fynd-Backend/entities"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Event is a workflow transition translated into a notification payload. Use
// the typed constructors below so every kind carries the right recipient,
// title, and body; no render-time string matching is needed.
type Event struct {
	Type      domain.NotificationType
	UserID    uuid.UUID
	Title     string
	Message   string
	Link      string
	ItemTitle string
}

func NewClaimSubmittedEvent(ownerID, itemID uuid.UUID, itemTitle, claimerEmail string) Event {
	who := claimerEmail
	if who == "" {
		who = "Someone"
	}
	return Event{
		Type:      domain.NotificationClaim,
		UserID:    ownerID,
		Title:     "New Claim",
		Message:   fmt.Sprintf("%s claimed your item: %s", who, itemTitle),
		Link:      itemLink(itemID),
		ItemTitle: itemTitle,
	}
}

func NewClaimApprovedEvent(claimerID, itemID uuid.UUID, itemTitle string) Event {
	return Event{
		Type:      domain.NotificationClaimApproved,
		UserID:    claimerID,
		Title:     "Claim Approved!",
		Message:   fmt.Sprintf("Your claim for %q has been approved! Contact the owner to arrange pickup.", itemTitle),
		Link:      itemLink(itemID),
		ItemTitle: itemTitle,
	}
}

func NewClaimRejectedEvent(claimerID, itemID uuid.UUID, itemTitle string) Event {
	return Event{
		Type:      domain.NotificationClaimRejected,
		UserID:    claimerID,
		Title:     "Claim Rejected",
		Message:   fmt.Sprintf("Your claim for %q was not approved.", itemTitle),
		Link:      itemLink(itemID),
		ItemTitle: itemTitle,
	}
}

func NewMessageEvent(receiverID, itemID uuid.UUID, itemTitle, senderEmail string) Event {
	who := senderEmail
	if who == "" {
		who = "Someone"
	}
	return Event{
		Type:      domain.NotificationMessage,
		UserID:    receiverID,
		Title:     "New Message",
		Message:   fmt.Sprintf("%s sent you a message about %q", who, itemTitle),
		Link:      itemLink(itemID),
		ItemTitle: itemTitle,
	}
}

func NewItemResolvedEvent(claimerID, itemID uuid.UUID, itemTitle string) Event {
	return Event{
		Type:      domain.NotificationItemResolved,
		UserID:    claimerID,
		Title:     "Item Resolved",
		Message:   fmt.Sprintf("The item %q has been marked as resolved.", itemTitle),
		Link:      itemLink(itemID),
		ItemTitle: itemTitle,
	}
}

func NewVerificationApprovedEvent(ownerID, itemID uuid.UUID, itemTitle string) Event {
	return Event{
		Type:      domain.NotificationVerificationApproved,
		UserID:    ownerID,
		Title:     "Item Verified",
		Message:   fmt.Sprintf("Your verification request for %q has been approved.", itemTitle),
		Link:      itemLink(itemID),
		ItemTitle: itemTitle,
	}
}

func NewVerificationRejectedEvent(ownerID, itemID uuid.UUID, itemTitle string) Event {
	return Event{
		Type:      domain.NotificationVerificationRejected,
		UserID:    ownerID,
		Title:     "Verification Rejected",
		Message:   fmt.Sprintf("Your verification request for %q was not approved.", itemTitle),
		Link:      itemLink(itemID),
		ItemTitle: itemTitle,
	}
}

func itemLink(itemID uuid.UUID) string {
	return fmt.Sprintf("/item/%s", itemID.String())
}

type (
	// Dispatcher persists notifications as a best-effort side effect of
	// workflow transitions. A failed write is logged and swallowed so the
	// triggering transition never fails because of it.
	Dispatcher interface {
		Dispatch(ctx context.Context, event Event)
	}

	dispatcher struct {
		notificationRepository NotificationRepository
	}
)

func NewDispatcher(notificationRepository NotificationRepository) Dispatcher {
	return &dispatcher{
		notificationRepository: notificationRepository,
	}
}

func (d *dispatcher) Dispatch(ctx context.Context, event Event) {
	notification := &entities.Notification{
		ID:      uuid.New(),
		UserID:  event.UserID,
		Type:    string(event.Type),
		Title:   event.Title,
		Message: event.Message,
		Link:    event.Link,
	}

	if err := d.notificationRepository.CreateNotification(ctx, notification); err != nil {
		log.Error().
			Err(err).
			Str("type", string(event.Type)).
			Str("user_id", event.UserID.String()).
			Msg("failed to persist notification")
	}
}
