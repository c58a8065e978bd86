package verification

import (
	"context"
	"errors"
	"fmt"

	"Fynd-Backend/domain"
	"Fynd-Backend/entities"
	"Fynd-Backend/internal/utils/storage"
	"Fynd-Backend/pkg/item"
	"Fynd-Backend/pkg/notification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	VerificationService interface {
		SubmitVerification(ctx context.Context, req domain.SubmitVerificationRequest, userID string) (*domain.Verification, error)
		ReviewVerification(ctx context.Context, req domain.ReviewVerificationRequest) (*domain.Verification, error)
		GetItemVerifications(ctx context.Context, itemID string, userID string) ([]*domain.Verification, error)
		GetPendingVerifications(ctx context.Context, page, limit int) ([]*domain.Verification, int64, error)
	}

	verificationService struct {
		verificationRepository VerificationRepository
		itemRepository         item.ItemRepository
		dispatcher             notification.Dispatcher
		s3                     storage.AwsS3
	}
)

func NewVerificationService(
	verificationRepository VerificationRepository,
	itemRepository item.ItemRepository,
	dispatcher notification.Dispatcher,
	s3 storage.AwsS3,
) VerificationService {
	return &verificationService{
		verificationRepository: verificationRepository,
		itemRepository:         itemRepository,
		dispatcher:             dispatcher,
		s3:                     s3,
	}
}

func (s *verificationService) SubmitVerification(ctx context.Context, req domain.SubmitVerificationRequest, userID string) (*domain.Verification, error) {
	if len(req.Photos) < domain.MinVerificationPhotos || len(req.Photos) > domain.MaxVerificationPhotos {
		return nil, domain.ErrVerificationPhotoCount
	}

	verifiedItem, err := s.itemRepository.GetItemByID(ctx, req.ItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrItemNotFound
		}
		return nil, err
	}

	if verifiedItem.UserID.String() != userID {
		return nil, domain.ErrNotItemOwner
	}
	if verifiedItem.Status != domain.ItemStatusActive {
		return nil, domain.ErrItemResolved
	}

	// One outstanding request per item. A new request is allowed only after
	// the previous one reached a terminal state.
	pending, err := s.verificationRepository.GetPendingVerificationByItem(ctx, req.ItemID)
	if err != nil {
		return nil, err
	}
	if pending != nil {
		return nil, domain.ErrVerificationPending
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	verificationID := uuid.New()

	// Upload photos before the record insert; if an upload fails the caller
	// sees the error and can retry without a dangling verification row.
	photos := make([]*entities.VerificationPhoto, 0, len(req.Photos))
	for i, photo := range req.Photos {
		objectKey, err := s.s3.UploadFile(
			fmt.Sprintf("verification-%s-%d", verificationID.String(), i+1),
			photo,
			"verifications",
			storage.AllowImage...,
		)
		if err != nil {
			return nil, err
		}
		photos = append(photos, &entities.VerificationPhoto{
			ID:       uuid.New(),
			PhotoURL: s.s3.GetPublicLinkKey(objectKey),
		})
	}

	verification := &entities.Verification{
		ID:     verificationID,
		ItemID: verifiedItem.ID,
		UserID: userUUID,
		Status: domain.VerificationStatusPending,
		Notes:  req.Notes,
	}

	if err := s.verificationRepository.CreateVerification(ctx, verification, photos); err != nil {
		return nil, err
	}

	if err := s.itemRepository.SetItemVerification(ctx, req.ItemID, false, domain.VerificationStatusPending); err != nil {
		return nil, err
	}

	verification.Photos = photos
	return toDomainVerification(verification, verifiedItem), nil
}

// ReviewVerification applies a moderator's decision. Callers are expected to
// have checked the reviewer role already.
func (s *verificationService) ReviewVerification(ctx context.Context, req domain.ReviewVerificationRequest) (*domain.Verification, error) {
	verification, err := s.verificationRepository.GetVerificationByID(ctx, req.VerificationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrVerificationNotFound
		}
		return nil, err
	}
	if verification.Item == nil {
		return nil, domain.ErrItemNotFound
	}

	if err := s.verificationRepository.UpdateVerificationStatus(ctx, req.VerificationID, req.Status); err != nil {
		return nil, err
	}
	verification.Status = req.Status

	switch req.Status {
	case domain.VerificationStatusApproved:
		if err := s.itemRepository.SetItemVerification(ctx, verification.ItemID.String(), true, domain.VerificationStatusApproved); err != nil {
			return nil, err
		}
		s.dispatcher.Dispatch(ctx, notification.NewVerificationApprovedEvent(
			verification.UserID, verification.ItemID, verification.Item.Title,
		))

	case domain.VerificationStatusRejected:
		if err := s.itemRepository.SetItemVerification(ctx, verification.ItemID.String(), false, domain.VerificationStatusRejected); err != nil {
			return nil, err
		}
		s.dispatcher.Dispatch(ctx, notification.NewVerificationRejectedEvent(
			verification.UserID, verification.ItemID, verification.Item.Title,
		))
	}

	return toDomainVerification(verification, verification.Item), nil
}

func (s *verificationService) GetItemVerifications(ctx context.Context, itemID string, userID string) ([]*domain.Verification, error) {
	verifiedItem, err := s.itemRepository.GetItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrItemNotFound
		}
		return nil, err
	}

	if verifiedItem.UserID.String() != userID {
		return nil, domain.ErrNotItemOwner
	}

	verifications, err := s.verificationRepository.GetVerificationsByItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.Verification, 0, len(verifications))
	for _, v := range verifications {
		result = append(result, toDomainVerification(v, verifiedItem))
	}
	return result, nil
}

func (s *verificationService) GetPendingVerifications(ctx context.Context, page, limit int) ([]*domain.Verification, int64, error) {
	verifications, count, err := s.verificationRepository.GetPendingVerifications(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]*domain.Verification, 0, len(verifications))
	for _, v := range verifications {
		result = append(result, toDomainVerification(v, v.Item))
	}
	return result, count, nil
}

func toDomainVerification(verification *entities.Verification, verifiedItem *entities.Item) *domain.Verification {
	photoURLs := make([]string, 0, len(verification.Photos))
	for _, photo := range verification.Photos {
		photoURLs = append(photoURLs, photo.PhotoURL)
	}

	d := &domain.Verification{
		ID:        verification.ID.String(),
		ItemID:    verification.ItemID.String(),
		UserID:    verification.UserID.String(),
		Status:    verification.Status,
		Notes:     verification.Notes,
		PhotoURLs: photoURLs,
		CreatedAt: verification.CreatedAt,
		UpdatedAt: verification.UpdatedAt,
	}
	if verifiedItem != nil {
		d.ItemTitle = verifiedItem.Title
	}
	return d
}
