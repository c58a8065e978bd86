package claim

import (
	"context"
	"errors"
	"fmt"

	"Fynd-Backend/domain"
	"Fynd-Backend/entities"
	"Fynd-Backend/pkg/item"
	"Fynd-Backend/pkg/notification"
	"Fynd-Backend/pkg/user"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type (
	// Mailer sends the claimant a pickup email on approval. Delivery is as
	// best-effort as notifications are.
	Mailer interface {
		SendMail(to, subject, body string) error
	}

	MailerFunc func(to, subject, body string) error

	ClaimService interface {
		SubmitClaim(ctx context.Context, req domain.SubmitClaimRequest, userID string) (*domain.Claim, error)
		DecideClaim(ctx context.Context, req domain.DecideClaimRequest, userID string) (*domain.Claim, error)
		GetItemClaims(ctx context.Context, itemID string, userID string) ([]*domain.Claim, error)
		GetUserClaims(ctx context.Context, userID string) ([]*domain.Claim, error)
	}

	claimService struct {
		claimRepository ClaimRepository
		itemRepository  item.ItemRepository
		userRepository  user.UserRepository
		dispatcher      notification.Dispatcher
		mailer          Mailer
	}
)

func (f MailerFunc) SendMail(to, subject, body string) error {
	return f(to, subject, body)
}

func NewClaimService(
	claimRepository ClaimRepository,
	itemRepository item.ItemRepository,
	userRepository user.UserRepository,
	dispatcher notification.Dispatcher,
	mailer Mailer,
) ClaimService {
	return &claimService{
		claimRepository: claimRepository,
		itemRepository:  itemRepository,
		userRepository:  userRepository,
		dispatcher:      dispatcher,
		mailer:          mailer,
	}
}

func (s *claimService) SubmitClaim(ctx context.Context, req domain.SubmitClaimRequest, userID string) (*domain.Claim, error) {
	claimedItem, err := s.itemRepository.GetItemByID(ctx, req.ItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrItemNotFound
		}
		return nil, err
	}

	if claimedItem.UserID.String() == userID {
		return nil, domain.ErrClaimOwnItem
	}
	if claimedItem.Status != domain.ItemStatusActive {
		return nil, domain.ErrItemResolved
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	claim := &entities.Claim{
		ID:              uuid.New(),
		ItemID:          claimedItem.ID,
		ClaimedByUserID: userUUID,
		Status:          domain.ClaimStatusPending,
		Message:         req.Message,
	}

	if err := s.claimRepository.CreateClaim(ctx, claim); err != nil {
		return nil, err
	}

	claimerEmail := ""
	if claimer, err := s.userRepository.GetUserByID(ctx, userID); err == nil {
		claimerEmail = claimer.Email
	}
	s.dispatcher.Dispatch(ctx, notification.NewClaimSubmittedEvent(
		claimedItem.UserID, claimedItem.ID, claimedItem.Title, claimerEmail,
	))

	return toDomainClaim(claim, claimedItem), nil
}

func (s *claimService) DecideClaim(ctx context.Context, req domain.DecideClaimRequest, userID string) (*domain.Claim, error) {
	claim, err := s.claimRepository.GetClaimByID(ctx, req.ClaimID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrClaimNotFound
		}
		return nil, err
	}
	if claim.Item == nil {
		return nil, domain.ErrItemNotFound
	}

	// only the item owner decides; anyone else is rejected before any mutation
	if claim.Item.UserID.String() != userID {
		return nil, domain.ErrNotItemOwner
	}
	if claim.Status != domain.ClaimStatusPending {
		return nil, domain.ErrClaimNotPending
	}

	switch req.Status {
	case domain.ClaimStatusApproved:
		if err := s.claimRepository.ApproveClaim(ctx, claim.ID.String(), claim.ItemID.String()); err != nil {
			return nil, err
		}
		claim.Status = domain.ClaimStatusApproved

		// transition is committed; everything below is best-effort
		s.dispatcher.Dispatch(ctx, notification.NewClaimApprovedEvent(
			claim.ClaimedByUserID, claim.ItemID, claim.Item.Title,
		))
		s.sendApprovalMail(claim)

	case domain.ClaimStatusRejected:
		if err := s.claimRepository.RejectClaim(ctx, claim.ID.String()); err != nil {
			return nil, err
		}
		claim.Status = domain.ClaimStatusRejected

		s.dispatcher.Dispatch(ctx, notification.NewClaimRejectedEvent(
			claim.ClaimedByUserID, claim.ItemID, claim.Item.Title,
		))

	default:
		return nil, domain.ErrInvalidClaimState
	}

	return toDomainClaim(claim, claim.Item), nil
}

func (s *claimService) GetItemClaims(ctx context.Context, itemID string, userID string) ([]*domain.Claim, error) {
	claimedItem, err := s.itemRepository.GetItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrItemNotFound
		}
		return nil, err
	}

	if claimedItem.UserID.String() != userID {
		return nil, domain.ErrNotItemOwner
	}

	claims, err := s.claimRepository.GetClaimsByItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.Claim, 0, len(claims))
	for _, c := range claims {
		result = append(result, toDomainClaim(c, claimedItem))
	}
	return result, nil
}

func (s *claimService) GetUserClaims(ctx context.Context, userID string) ([]*domain.Claim, error) {
	claims, err := s.claimRepository.GetClaimsByClaimant(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.Claim, 0, len(claims))
	for _, c := range claims {
		result = append(result, toDomainClaim(c, c.Item))
	}
	return result, nil
}

func (s *claimService) sendApprovalMail(claim *entities.Claim) {
	if s.mailer == nil || claim.ClaimedBy == nil || claim.ClaimedBy.Email == "" {
		return
	}
	body := fmt.Sprintf(
		"<p>Your claim for <b>%s</b> has been approved. Contact the owner to arrange pickup.</p>",
		claim.Item.Title,
	)
	if err := s.mailer.SendMail(claim.ClaimedBy.Email, "Your claim was approved", body); err != nil {
		log.Warn().Err(err).Str("claim_id", claim.ID.String()).Msg("failed to send approval mail")
	}
}

func toDomainClaim(claim *entities.Claim, claimedItem *entities.Item) *domain.Claim {
	d := &domain.Claim{
		ID:              claim.ID.String(),
		ItemID:          claim.ItemID.String(),
		ClaimedByUserID: claim.ClaimedByUserID.String(),
		Status:          claim.Status,
		Message:         claim.Message,
		CreatedAt:       claim.CreatedAt,
		UpdatedAt:       claim.UpdatedAt,
	}
	if claimedItem != nil {
		d.ItemTitle = claimedItem.Title
	}
	if claim.ClaimedBy != nil {
		d.ClaimedByEmail = claim.ClaimedBy.Email
	}
	return d
}
