package verification

import (
	"context"
	"errors"

	"Fynd-Backend/domain"
	"Fynd-Backend/entities"

	"gorm.io/gorm"
)

type (
	VerificationRepository interface {
		CreateVerification(ctx context.Context, verification *entities.Verification, photos []*entities.VerificationPhoto) error
		GetVerificationByID(ctx context.Context, id string) (*entities.Verification, error)
		GetPendingVerificationByItem(ctx context.Context, itemID string) (*entities.Verification, error)
		GetVerificationsByItem(ctx context.Context, itemID string) ([]*entities.Verification, error)
		GetPendingVerifications(ctx context.Context, page, limit int) ([]*entities.Verification, int64, error)
		UpdateVerificationStatus(ctx context.Context, id string, status string) error
	}

	verificationRepository struct {
		db *gorm.DB
	}
)

func NewVerificationRepository(db *gorm.DB) VerificationRepository {
	return &verificationRepository{
		db: db,
	}
}

// CreateVerification writes the request and its photo references atomically;
// the photos were already uploaded by the caller, so a rollback here leaves
// nothing half-created that a retry cannot redo.
func (r *verificationRepository) CreateVerification(ctx context.Context, verification *entities.Verification, photos []*entities.VerificationPhoto) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(verification).Error; err != nil {
			return err
		}
		for _, photo := range photos {
			photo.VerificationID = verification.ID
			if err := tx.Create(photo).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *verificationRepository) GetVerificationByID(ctx context.Context, id string) (*entities.Verification, error) {
	var verification entities.Verification
	if err := r.db.WithContext(ctx).
		Preload("Item").
		Preload("Photos").
		Where("id = ?", id).
		First(&verification).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, err
	}
	return &verification, nil
}

func (r *verificationRepository) GetPendingVerificationByItem(ctx context.Context, itemID string) (*entities.Verification, error) {
	var verification entities.Verification
	if err := r.db.WithContext(ctx).
		Where("item_id = ? AND status = ?", itemID, domain.VerificationStatusPending).
		First(&verification).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &verification, nil
}

func (r *verificationRepository) GetVerificationsByItem(ctx context.Context, itemID string) ([]*entities.Verification, error) {
	var verifications []*entities.Verification
	if err := r.db.WithContext(ctx).
		Preload("Photos").
		Where("item_id = ?", itemID).
		Order("created_at DESC").
		Find(&verifications).Error; err != nil {
		return nil, err
	}
	return verifications, nil
}

func (r *verificationRepository) GetPendingVerifications(ctx context.Context, page, limit int) ([]*entities.Verification, int64, error) {
	var verifications []*entities.Verification
	var count int64
	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).
		Model(&entities.Verification{}).
		Where("status = ?", domain.VerificationStatusPending)

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Preload("Item").
		Preload("Photos").
		Order("created_at ASC").
		Offset(offset).
		Limit(limit).
		Find(&verifications).Error; err != nil {
		return nil, 0, err
	}

	return verifications, count, nil
}

func (r *verificationRepository) UpdateVerificationStatus(ctx context.Context, id string, status string) error {
	result := r.db.WithContext(ctx).
		Model(&entities.Verification{}).
		Where("id = ? AND status = ?", id, domain.VerificationStatusPending).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrVerificationDecided
	}
	return nil
}
