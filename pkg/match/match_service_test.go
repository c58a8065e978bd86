package match

import (
	"context"
	"strings"
	"testing"
	"time"

	"Fynd-Backend/domain"
	"Fynd-Backend/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeMatchRepository struct {
	byPair map[string]*entities.Match
	byID   map[string]*entities.Match
}

func newFakeMatchRepository() *fakeMatchRepository {
	return &fakeMatchRepository{
		byPair: make(map[string]*entities.Match),
		byID:   make(map[string]*entities.Match),
	}
}

func pairKey(lostID, foundID uuid.UUID) string {
	return lostID.String() + "/" + foundID.String()
}

func (f *fakeMatchRepository) UpsertMatch(_ context.Context, match *entities.Match) error {
	key := pairKey(match.LostItemID, match.FoundItemID)
	if existing, ok := f.byPair[key]; ok {
		existing.MatchScore = match.MatchScore
		existing.MatchReasons = match.MatchReasons
		return nil
	}
	f.byPair[key] = match
	f.byID[match.ID.String()] = match
	return nil
}

func (f *fakeMatchRepository) GetMatchByID(_ context.Context, id string) (*entities.Match, error) {
	match, ok := f.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return match, nil
}

func (f *fakeMatchRepository) GetMatchesByLostItem(_ context.Context, itemID string, _ int) ([]*entities.Match, error) {
	var matches []*entities.Match
	for _, m := range f.byPair {
		if m.LostItemID.String() == itemID && m.Status != domain.MatchStatusDismissed {
			matches = append(matches, m)
		}
	}
	return matches, nil
}

func (f *fakeMatchRepository) GetMatchesByFoundItem(_ context.Context, itemID string, _ int) ([]*entities.Match, error) {
	var matches []*entities.Match
	for _, m := range f.byPair {
		if m.FoundItemID.String() == itemID && m.Status != domain.MatchStatusDismissed {
			matches = append(matches, m)
		}
	}
	return matches, nil
}

func (f *fakeMatchRepository) UpdateMatchStatus(_ context.Context, id string, status string) error {
	if match, ok := f.byID[id]; ok {
		match.Status = status
	}
	return nil
}

type fakeItemRepository struct {
	items map[string]*entities.Item
}

func newFakeItemRepository(items ...*entities.Item) *fakeItemRepository {
	f := &fakeItemRepository{items: make(map[string]*entities.Item)}
	for _, item := range items {
		f.items[item.ID.String()] = item
	}
	return f
}

func (f *fakeItemRepository) CreateItem(_ context.Context, item *entities.Item) error {
	f.items[item.ID.String()] = item
	return nil
}

func (f *fakeItemRepository) GetItemByID(_ context.Context, id string) (*entities.Item, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return item, nil
}

func (f *fakeItemRepository) GetItems(_ context.Context, _ domain.GetItemsRequest, _, _ int) ([]*entities.Item, int64, error) {
	return nil, 0, nil
}

func (f *fakeItemRepository) GetUserItems(_ context.Context, _ string, _, _ int) ([]*entities.Item, int64, error) {
	return nil, 0, nil
}

func (f *fakeItemRepository) GetActiveItemsByCategory(_ context.Context, category string) ([]*entities.Item, error) {
	var items []*entities.Item
	for _, item := range f.items {
		if item.Category == category && item.Status == domain.ItemStatusActive {
			items = append(items, item)
		}
	}
	return items, nil
}

func (f *fakeItemRepository) GetNearbyItems(_ context.Context, _, _, _ float64, _ string) ([]*entities.Item, error) {
	return nil, nil
}

func (f *fakeItemRepository) UpdateItem(_ context.Context, item *entities.Item) error {
	f.items[item.ID.String()] = item
	return nil
}

func (f *fakeItemRepository) ResolveItem(_ context.Context, id string) error {
	item, ok := f.items[id]
	if !ok || item.Status != domain.ItemStatusActive {
		return domain.ErrItemResolved
	}
	item.Status = domain.ItemStatusResolved
	return nil
}

func (f *fakeItemRepository) SetItemVerification(_ context.Context, _ string, _ bool, _ string) error {
	return nil
}

func TestGenerateMatchesStoresOnlyAboveFloor(t *testing.T) {
	now := time.Now()
	lost := scoringItem(domain.CategoryLost, "wallet",
		"Lost black leather wallet", "black leather wallet with cards",
		nil, nil, now)
	goodFound := scoringItem(domain.CategoryFound, "wallet",
		"Found black wallet", "black leather wallet",
		nil, nil, now)
	badFound := scoringItem(domain.CategoryFound, "umbrella",
		"Found umbrella", "yellow umbrella at the bus stop",
		nil, nil, now.Add(-60*24*time.Hour))
	lost.UserID = uuid.New()
	goodFound.UserID = uuid.New()
	badFound.UserID = uuid.New()

	matchRepo := newFakeMatchRepository()
	service := NewMatchService(matchRepo, newFakeItemRepository(lost, goodFound, badFound))

	stored, err := service.GenerateMatches(context.Background(), domain.GenerateMatchesRequest{})
	require.NoError(t, err)
	assert.Equal(t, 1, stored)

	m, ok := matchRepo.byPair[pairKey(lost.ID, goodFound.ID)]
	require.True(t, ok)
	assert.GreaterOrEqual(t, m.MatchScore, DefaultMinScore)
	assert.Equal(t, domain.MatchStatusPending, m.Status)
	assert.Contains(t, strings.Split(m.MatchReasons, ","), domain.MatchReasonCategory)
}

func TestGenerateMatchesKeepsDismissedStatus(t *testing.T) {
	now := time.Now()
	lost := scoringItem(domain.CategoryLost, "wallet",
		"Lost black wallet", "black leather wallet",
		nil, nil, now)
	found := scoringItem(domain.CategoryFound, "wallet",
		"Found black wallet", "black leather wallet",
		nil, nil, now)

	matchRepo := newFakeMatchRepository()
	service := NewMatchService(matchRepo, newFakeItemRepository(lost, found))

	_, err := service.GenerateMatches(context.Background(), domain.GenerateMatchesRequest{})
	require.NoError(t, err)

	stored := matchRepo.byPair[pairKey(lost.ID, found.ID)]
	require.NotNil(t, stored)
	stored.Status = domain.MatchStatusDismissed

	_, err = service.GenerateMatches(context.Background(), domain.GenerateMatchesRequest{})
	require.NoError(t, err)
	assert.Equal(t, domain.MatchStatusDismissed, stored.Status)
}

func TestGetItemMatchesFollowsCategoryDirection(t *testing.T) {
	now := time.Now()
	lost := scoringItem(domain.CategoryLost, "wallet",
		"Lost black wallet", "black leather wallet",
		nil, nil, now)
	found := scoringItem(domain.CategoryFound, "wallet",
		"Found black wallet", "black leather wallet",
		nil, nil, now)

	matchRepo := newFakeMatchRepository()
	service := NewMatchService(matchRepo, newFakeItemRepository(lost, found))

	_, err := service.GenerateMatches(context.Background(), domain.GenerateMatchesRequest{})
	require.NoError(t, err)

	fromLost, err := service.GetItemMatches(context.Background(), lost.ID.String())
	require.NoError(t, err)
	require.Len(t, fromLost, 1)
	assert.Equal(t, found.ID.String(), fromLost[0].FoundItemID)

	fromFound, err := service.GetItemMatches(context.Background(), found.ID.String())
	require.NoError(t, err)
	require.Len(t, fromFound, 1)
	assert.Equal(t, lost.ID.String(), fromFound[0].LostItemID)
}

func TestUpdateMatchStatusRequiresParticipant(t *testing.T) {
	now := time.Now()
	lost := scoringItem(domain.CategoryLost, "wallet",
		"Lost black wallet", "black leather wallet",
		nil, nil, now)
	found := scoringItem(domain.CategoryFound, "wallet",
		"Found black wallet", "black leather wallet",
		nil, nil, now)
	lost.UserID = uuid.New()
	found.UserID = uuid.New()

	match := &entities.Match{
		ID:          uuid.New(),
		LostItemID:  lost.ID,
		FoundItemID: found.ID,
		MatchScore:  75,
		Status:      domain.MatchStatusPending,
		LostItem:    lost,
		FoundItem:   found,
	}
	matchRepo := newFakeMatchRepository()
	matchRepo.byPair[pairKey(lost.ID, found.ID)] = match
	matchRepo.byID[match.ID.String()] = match

	service := NewMatchService(matchRepo, newFakeItemRepository(lost, found))

	err := service.UpdateMatchStatus(context.Background(), domain.UpdateMatchStatusRequest{
		MatchID: match.ID.String(),
		Status:  domain.MatchStatusDismissed,
	}, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrUserNotAllowed)
	assert.Equal(t, domain.MatchStatusPending, match.Status)

	err = service.UpdateMatchStatus(context.Background(), domain.UpdateMatchStatusRequest{
		MatchID: match.ID.String(),
		Status:  domain.MatchStatusDismissed,
	}, lost.UserID.String())
	require.NoError(t, err)
	assert.Equal(t, domain.MatchStatusDismissed, match.Status)
}

func TestUpdateMatchStatusUnknownMatch(t *testing.T) {
	service := NewMatchService(newFakeMatchRepository(), newFakeItemRepository())

	err := service.UpdateMatchStatus(context.Background(), domain.UpdateMatchStatusRequest{
		MatchID: uuid.NewString(),
		Status:  domain.MatchStatusDismissed,
	}, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrMatchNotFound)
}
