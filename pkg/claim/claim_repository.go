package claim

import (
	"context"
	"errors"

	"Fynd-Backend/domain"
	"Fynd-Backend/entities"

	"gorm.io/gorm"
)

type (
	ClaimRepository interface {
		CreateClaim(ctx context.Context, claim *entities.Claim) error
		GetClaimByID(ctx context.Context, id string) (*entities.Claim, error)
		GetClaimsByItem(ctx context.Context, itemID string) ([]*entities.Claim, error)
		GetClaimsByClaimant(ctx context.Context, userID string) ([]*entities.Claim, error)
		GetApprovedClaims(ctx context.Context, itemID string) ([]*entities.Claim, error)
		HasClaim(ctx context.Context, itemID, userID string) (bool, error)
		RejectClaim(ctx context.Context, id string) error
		ApproveClaim(ctx context.Context, claimID, itemID string) error
	}

	claimRepository struct {
		db *gorm.DB
	}
)

func NewClaimRepository(db *gorm.DB) ClaimRepository {
	return &claimRepository{
		db: db,
	}
}

// CreateClaim relies on the (item_id, claimed_by_user_id) unique index; a
// concurrent duplicate loses at the database, not in application code.
func (r *claimRepository) CreateClaim(ctx context.Context, claim *entities.Claim) error {
	if err := r.db.WithContext(ctx).Create(claim).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrAlreadyClaimed
		}
		return err
	}
	return nil
}

func (r *claimRepository) GetClaimByID(ctx context.Context, id string) (*entities.Claim, error) {
	var claim entities.Claim
	if err := r.db.WithContext(ctx).
		Preload("Item").
		Preload("ClaimedBy").
		Where("id = ?", id).
		First(&claim).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, err
	}
	return &claim, nil
}

func (r *claimRepository) GetClaimsByItem(ctx context.Context, itemID string) ([]*entities.Claim, error) {
	var claims []*entities.Claim
	if err := r.db.WithContext(ctx).
		Preload("ClaimedBy").
		Where("item_id = ?", itemID).
		Order("created_at ASC").
		Find(&claims).Error; err != nil {
		return nil, err
	}
	return claims, nil
}

func (r *claimRepository) GetClaimsByClaimant(ctx context.Context, userID string) ([]*entities.Claim, error) {
	var claims []*entities.Claim
	if err := r.db.WithContext(ctx).
		Preload("Item").
		Where("claimed_by_user_id = ?", userID).
		Order("created_at DESC").
		Find(&claims).Error; err != nil {
		return nil, err
	}
	return claims, nil
}

func (r *claimRepository) GetApprovedClaims(ctx context.Context, itemID string) ([]*entities.Claim, error) {
	var claims []*entities.Claim
	if err := r.db.WithContext(ctx).
		Where("item_id = ? AND status = ?", itemID, domain.ClaimStatusApproved).
		Find(&claims).Error; err != nil {
		return nil, err
	}
	return claims, nil
}

// HasClaim reports whether the user holds a claim of any status on the item.
func (r *claimRepository) HasClaim(ctx context.Context, itemID, userID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Claim{}).
		Where("item_id = ? AND claimed_by_user_id = ?", itemID, userID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *claimRepository) RejectClaim(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&entities.Claim{}).
		Where("id = ? AND status = ?", id, domain.ClaimStatusPending).
		Update("status", domain.ClaimStatusRejected).Error
}

// ApproveClaim runs the two mutations of an approval in one transaction. The
// item update re-checks for active status, so a second concurrent approval on
// the same item rolls back instead of producing two approved claims.
func (r *claimRepository) ApproveClaim(ctx context.Context, claimID, itemID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.
			Model(&entities.Item{}).
			Where("id = ? AND status = ?", itemID, domain.ItemStatusActive).
			Update("status", domain.ItemStatusResolved)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrItemResolved
		}

		result = tx.
			Model(&entities.Claim{}).
			Where("id = ? AND status = ?", claimID, domain.ClaimStatusPending).
			Update("status", domain.ClaimStatusApproved)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrClaimNotPending
		}

		return nil
	})
}
