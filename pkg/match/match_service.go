package match

import (
	"context"
	"errors"
	"strings"

	"Fynd-Backend/domain"
	"Fynd-Backend/entities"
	"Fynd-Backend/pkg/item"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const (
	// DefaultMinScore is the floor below which a pair is not worth storing;
	// the UI highlights matches from 50 up.
	DefaultMinScore = 30.0

	matchListLimit = 10
)

type (
	MatchService interface {
		GenerateMatches(ctx context.Context, req domain.GenerateMatchesRequest) (int, error)
		GetItemMatches(ctx context.Context, itemID string) ([]*domain.Match, error)
		UpdateMatchStatus(ctx context.Context, req domain.UpdateMatchStatusRequest, userID string) error
	}

	matchService struct {
		matchRepository MatchRepository
		itemRepository  item.ItemRepository
	}
)

func NewMatchService(matchRepository MatchRepository, itemRepository item.ItemRepository) MatchService {
	return &matchService{
		matchRepository: matchRepository,
		itemRepository:  itemRepository,
	}
}

// GenerateMatches runs a full pass over active lost x active found pairs and
// stores every pair scoring at or above the floor. It runs on demand only;
// item writes never trigger it, and stored scores go stale until the next
// pass. Returns the number of stored pairs.
func (s *matchService) GenerateMatches(ctx context.Context, req domain.GenerateMatchesRequest) (int, error) {
	minScore := req.MinScore
	if minScore <= 0 {
		minScore = DefaultMinScore
	}

	lostItems, err := s.itemRepository.GetActiveItemsByCategory(ctx, domain.CategoryLost)
	if err != nil {
		return 0, err
	}
	foundItems, err := s.itemRepository.GetActiveItemsByCategory(ctx, domain.CategoryFound)
	if err != nil {
		return 0, err
	}

	stored := 0
	for _, lost := range lostItems {
		for _, found := range foundItems {
			score, reasons := ScoreMatch(lost, found)
			if score < minScore {
				continue
			}

			m := &entities.Match{
				ID:           uuid.New(),
				LostItemID:   lost.ID,
				FoundItemID:  found.ID,
				MatchScore:   score,
				MatchReasons: strings.Join(reasons, ","),
				Status:       domain.MatchStatusPending,
			}
			if err := s.matchRepository.UpsertMatch(ctx, m); err != nil {
				log.Error().
					Err(err).
					Str("lost_item_id", lost.ID.String()).
					Str("found_item_id", found.ID.String()).
					Msg("failed to store match")
				continue
			}
			stored++
		}
	}

	return stored, nil
}

func (s *matchService) GetItemMatches(ctx context.Context, itemID string) ([]*domain.Match, error) {
	matchedItem, err := s.itemRepository.GetItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrItemNotFound
		}
		return nil, err
	}

	var matches []*entities.Match
	if matchedItem.Category == domain.CategoryLost {
		matches, err = s.matchRepository.GetMatchesByLostItem(ctx, itemID, matchListLimit)
	} else {
		matches, err = s.matchRepository.GetMatchesByFoundItem(ctx, itemID, matchListLimit)
	}
	if err != nil {
		return nil, err
	}

	result := make([]*domain.Match, 0, len(matches))
	for _, m := range matches {
		result = append(result, toDomainMatch(m))
	}
	return result, nil
}

// UpdateMatchStatus is open to whichever user views the match from either
// item's side.
func (s *matchService) UpdateMatchStatus(ctx context.Context, req domain.UpdateMatchStatusRequest, userID string) error {
	m, err := s.matchRepository.GetMatchByID(ctx, req.MatchID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrMatchNotFound
		}
		return err
	}

	allowed := (m.LostItem != nil && m.LostItem.UserID.String() == userID) ||
		(m.FoundItem != nil && m.FoundItem.UserID.String() == userID)
	if !allowed {
		return domain.ErrUserNotAllowed
	}

	return s.matchRepository.UpdateMatchStatus(ctx, req.MatchID, req.Status)
}

func toDomainMatch(m *entities.Match) *domain.Match {
	d := &domain.Match{
		ID:          m.ID.String(),
		LostItemID:  m.LostItemID.String(),
		FoundItemID: m.FoundItemID.String(),
		MatchScore:  m.MatchScore,
		Status:      m.Status,
		CreatedAt:   m.CreatedAt,
	}
	if m.MatchReasons != "" {
		d.MatchReasons = strings.Split(m.MatchReasons, ",")
	} else {
		d.MatchReasons = []string{}
	}
	if m.LostItem != nil {
		d.LostItem = toMatchItem(m.LostItem)
	}
	if m.FoundItem != nil {
		d.FoundItem = toMatchItem(m.FoundItem)
	}
	return d
}

func toMatchItem(i *entities.Item) *domain.Item {
	return &domain.Item{
		ID:          i.ID.String(),
		UserID:      i.UserID.String(),
		Title:       i.Title,
		Description: i.Description,
		Category:    i.Category,
		ItemType:    i.ItemType,
		Location:    i.Location,
		ImageURL:    i.ImageURL,
		Status:      i.Status,
		Verified:    i.Verified,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}
