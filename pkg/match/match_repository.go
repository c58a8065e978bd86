package match

import (
	"context"
	"errors"

	"Fynd-Backend/domain"
	"Fynd-Backend/entities"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	MatchRepository interface {
		UpsertMatch(ctx context.Context, match *entities.Match) error
		GetMatchByID(ctx context.Context, id string) (*entities.Match, error)
		GetMatchesByLostItem(ctx context.Context, itemID string, limit int) ([]*entities.Match, error)
		GetMatchesByFoundItem(ctx context.Context, itemID string, limit int) ([]*entities.Match, error)
		UpdateMatchStatus(ctx context.Context, id string, status string) error
	}

	matchRepository struct {
		db *gorm.DB
	}
)

func NewMatchRepository(db *gorm.DB) MatchRepository {
	return &matchRepository{
		db: db,
	}
}

// UpsertMatch refreshes score and reasons on regeneration while leaving the
// viewer-facing status alone, so a dismissed pair stays dismissed.
func (r *matchRepository) UpsertMatch(ctx context.Context, match *entities.Match) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "lost_item_id"}, {Name: "found_item_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"match_score", "match_reasons", "updated_at"}),
		}).
		Create(match).Error
}

func (r *matchRepository) GetMatchByID(ctx context.Context, id string) (*entities.Match, error) {
	var match entities.Match
	if err := r.db.WithContext(ctx).
		Preload("LostItem").
		Preload("FoundItem").
		Where("id = ?", id).
		First(&match).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, err
	}
	return &match, nil
}

func (r *matchRepository) GetMatchesByLostItem(ctx context.Context, itemID string, limit int) ([]*entities.Match, error) {
	return r.getMatches(ctx, "lost_item_id = ?", itemID, limit)
}

func (r *matchRepository) GetMatchesByFoundItem(ctx context.Context, itemID string, limit int) ([]*entities.Match, error) {
	return r.getMatches(ctx, "found_item_id = ?", itemID, limit)
}

func (r *matchRepository) getMatches(ctx context.Context, cond string, itemID string, limit int) ([]*entities.Match, error) {
	var matches []*entities.Match
	if err := r.db.WithContext(ctx).
		Preload("LostItem").
		Preload("FoundItem").
		Where(cond, itemID).
		Where("status != ?", domain.MatchStatusDismissed).
		Order("match_score DESC").
		Limit(limit).
		Find(&matches).Error; err != nil {
		return nil, err
	}
	return matches, nil
}

func (r *matchRepository) UpdateMatchStatus(ctx context.Context, id string, status string) error {
	return r.db.WithContext(ctx).
		Model(&entities.Match{}).
		Where("id = ?", id).
		Update("status", status).Error
}
