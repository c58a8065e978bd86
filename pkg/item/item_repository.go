package item

import (
	"context"
	"errors"

	"Fynd-Backend/domain"
	"Fynd-Backend/entities"

	"gorm.io/gorm"
)

type (
	ItemRepository interface {
		CreateItem(ctx context.Context, item *entities.Item) error
		GetItemByID(ctx context.Context, id string) (*entities.Item, error)
		GetItems(ctx context.Context, req domain.GetItemsRequest, page, limit int) ([]*entities.Item, int64, error)
		GetUserItems(ctx context.Context, userID string, page, limit int) ([]*entities.Item, int64, error)
		GetActiveItemsByCategory(ctx context.Context, category string) ([]*entities.Item, error)
		GetNearbyItems(ctx context.Context, lat, lng, radius float64, category string) ([]*entities.Item, error)
		UpdateItem(ctx context.Context, item *entities.Item) error
		ResolveItem(ctx context.Context, id string) error
		SetItemVerification(ctx context.Context, id string, verified bool, verificationStatus string) error
	}

	itemRepository struct {
		db *gorm.DB
	}
)

func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{
		db: db,
	}
}

func (r *itemRepository) CreateItem(ctx context.Context, item *entities.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *itemRepository) GetItemByID(ctx context.Context, id string) (*entities.Item, error) {
	var item entities.Item
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("id = ?", id).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, err
	}
	return &item, nil
}

func (r *itemRepository) GetItems(ctx context.Context, req domain.GetItemsRequest, page, limit int) ([]*entities.Item, int64, error) {
	var items []*entities.Item
	var count int64
	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Model(&entities.Item{})

	if req.Status != "all" && req.Status != "" {
		query = query.Where("status = ?", req.Status)
	} else if req.Status == "" {
		query = query.Where("status = ?", domain.ItemStatusActive)
	}
	if req.Category != "" {
		query = query.Where("category = ?", req.Category)
	}
	if req.ItemType != "" {
		query = query.Where("item_type = ?", req.ItemType)
	}
	if req.Search != "" {
		pattern := "%" + req.Search + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Preload("User").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&items).Error; err != nil {
		return nil, 0, err
	}

	return items, count, nil
}

func (r *itemRepository) GetUserItems(ctx context.Context, userID string, page, limit int) ([]*entities.Item, int64, error) {
	var items []*entities.Item
	var count int64
	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Where("user_id = ?", userID)

	if err := query.Model(&entities.Item{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&items).Error; err != nil {
		return nil, 0, err
	}

	return items, count, nil
}

func (r *itemRepository) GetActiveItemsByCategory(ctx context.Context, category string) ([]*entities.Item, error) {
	var items []*entities.Item
	if err := r.db.WithContext(ctx).
		Where("category = ? AND status = ?", category, domain.ItemStatusActive).
		Order("created_at DESC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepository) GetNearbyItems(ctx context.Context, lat, lng, radius float64, category string) ([]*entities.Item, error) {
	var items []*entities.Item

	// Uses PostgreSQL's earthdistance extension; install with:
	// CREATE EXTENSION IF NOT EXISTS "earthdistance" CASCADE;
	// CREATE EXTENSION IF NOT EXISTS "cube";
	query := `
		SELECT *,
		       earth_distance(ll_to_earth(?, ?), ll_to_earth(latitude, longitude)) as distance
		FROM items
		WHERE latitude IS NOT NULL AND longitude IS NOT NULL
		  AND earth_box(ll_to_earth(?, ?), ?) @> ll_to_earth(latitude, longitude)
		  AND status = 'active'
	`
	args := []interface{}{lat, lng, lat, lng, radius * 1000}

	if category != "" {
		query += " AND category = ?"
		args = append(args, category)
	}

	query += " ORDER BY distance ASC"

	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&items).Error; err != nil {
		return nil, err
	}

	return items, nil
}

func (r *itemRepository) UpdateItem(ctx context.Context, item *entities.Item) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// ResolveItem only moves active items forward; resolved is terminal.
func (r *itemRepository) ResolveItem(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).
		Model(&entities.Item{}).
		Where("id = ? AND status = ?", id, domain.ItemStatusActive).
		Update("status", domain.ItemStatusResolved)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrItemResolved
	}
	return nil
}

func (r *itemRepository) SetItemVerification(ctx context.Context, id string, verified bool, verificationStatus string) error {
	return r.db.WithContext(ctx).
		Model(&entities.Item{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"verified":            verified,
			"verification_status": verificationStatus,
		}).Error
}
