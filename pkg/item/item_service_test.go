package item

import (
	"context"
	"mime/multipart"
	"testing"

	"Fynd-Backend/domain"
	"Fynd-Backend/entities"
	"Fynd-Backend/pkg/geo"
	"Fynd-Backend/pkg/notification"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

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

func (f *fakeItemRepository) GetActiveItemsByCategory(_ context.Context, _ string) ([]*entities.Item, error) {
	return nil, nil
}

func (f *fakeItemRepository) GetNearbyItems(_ context.Context, _, _, _ float64, _ string) ([]*entities.Item, error) {
	var items []*entities.Item
	for _, item := range f.items {
		if item.Latitude != nil && item.Longitude != nil && item.Status == domain.ItemStatusActive {
			items = append(items, item)
		}
	}
	return items, nil
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

func (f *fakeItemRepository) SetItemVerification(_ context.Context, id string, verified bool, status string) error {
	if item, ok := f.items[id]; ok {
		item.Verified = verified
		item.VerificationStatus = status
	}
	return nil
}

type fakeClaimLister struct {
	approved []*entities.Claim
}

func (f *fakeClaimLister) GetApprovedClaims(_ context.Context, _ string) ([]*entities.Claim, error) {
	return f.approved, nil
}

type eventRecorder struct {
	events []notification.Event
}

func (r *eventRecorder) Dispatch(_ context.Context, event notification.Event) {
	r.events = append(r.events, event)
}

// fakeGeocoder resolves a single known address and reverses everything else
// to a fixed label.
type fakeGeocoder struct {
	forwardCalls int
	reverseCalls int
}

func (f *fakeGeocoder) Geocode(_ context.Context, address string) *geo.Coordinates {
	f.forwardCalls++
	if address == "Warsaw Central Station" {
		return &geo.Coordinates{Latitude: 52.2286, Longitude: 21.0030}
	}
	return nil
}

func (f *fakeGeocoder) ReverseGeocode(_ context.Context, _, _ float64) string {
	f.reverseCalls++
	return "Warsaw, Poland"
}

type fakeStorage struct {
	uploads []string
}

func (f *fakeStorage) UploadFile(name string, _ *multipart.FileHeader, folder string, _ ...string) (string, error) {
	key := folder + "/" + name
	f.uploads = append(f.uploads, key)
	return key, nil
}

func (f *fakeStorage) GetPublicLinkKey(objectKey string) string {
	return "https://cdn.example.com/" + objectKey
}

func ptr(v float64) *float64 { return &v }

func newItemService(repo *fakeItemRepository, claims *fakeClaimLister, events *eventRecorder, geocoder *fakeGeocoder) ItemService {
	return NewItemService(repo, claims, events, geocoder, &fakeStorage{})
}

func TestCreateItemGeocodesForward(t *testing.T) {
	repo := newFakeItemRepository()
	geocoder := &fakeGeocoder{}
	service := newItemService(repo, &fakeClaimLister{}, &eventRecorder{}, geocoder)

	created, err := service.CreateItem(context.Background(), domain.ItemRequest{
		Title:       "Lost black wallet",
		Description: "black leather wallet",
		Category:    domain.CategoryLost,
		Location:    "Warsaw Central Station",
	}, uuid.NewString())
	require.NoError(t, err)

	assert.Equal(t, domain.ItemStatusActive, created.Status)
	require.NotNil(t, created.Latitude)
	assert.InDelta(t, 52.2286, *created.Latitude, 0.0001)
	assert.Equal(t, 1, geocoder.forwardCalls)
	assert.Equal(t, 0, geocoder.reverseCalls)
}

func TestCreateItemGeocodesReverse(t *testing.T) {
	repo := newFakeItemRepository()
	geocoder := &fakeGeocoder{}
	service := newItemService(repo, &fakeClaimLister{}, &eventRecorder{}, geocoder)

	created, err := service.CreateItem(context.Background(), domain.ItemRequest{
		Title:       "Found keys",
		Description: "set of keys",
		Category:    domain.CategoryFound,
		Latitude:    ptr(52.2297),
		Longitude:   ptr(21.0122),
	}, uuid.NewString())
	require.NoError(t, err)

	assert.Equal(t, "Warsaw, Poland", created.Location)
	assert.Equal(t, 1, geocoder.reverseCalls)
}

func TestCreateItemUnknownLocationStillPosts(t *testing.T) {
	repo := newFakeItemRepository()
	service := newItemService(repo, &fakeClaimLister{}, &eventRecorder{}, &fakeGeocoder{})

	created, err := service.CreateItem(context.Background(), domain.ItemRequest{
		Title:       "Lost umbrella",
		Description: "yellow umbrella",
		Category:    domain.CategoryLost,
		Location:    "somewhere on the night bus",
	}, uuid.NewString())
	require.NoError(t, err)

	// lookup failed; the free-text location survives without coordinates
	assert.Equal(t, "somewhere on the night bus", created.Location)
	assert.Nil(t, created.Latitude)
}

func TestCreateItemRejectsBadCategory(t *testing.T) {
	service := newItemService(newFakeItemRepository(), &fakeClaimLister{}, &eventRecorder{}, &fakeGeocoder{})

	_, err := service.CreateItem(context.Background(), domain.ItemRequest{
		Title:       "Mystery",
		Description: "neither lost nor found",
		Category:    "stolen",
	}, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrInvalidCategory)
}

func TestGetNearbyItemsComputesDistance(t *testing.T) {
	owner := uuid.New()
	near := &entities.Item{
		ID:        uuid.New(),
		UserID:    owner,
		Title:     "Found phone",
		Category:  domain.CategoryFound,
		Status:    domain.ItemStatusActive,
		Latitude:  ptr(52.2298),
		Longitude: ptr(21.0122),
	}
	repo := newFakeItemRepository(near)
	service := newItemService(repo, &fakeClaimLister{}, &eventRecorder{}, &fakeGeocoder{})

	items, err := service.GetNearbyItems(context.Background(), domain.GetNearbyItemsRequest{
		Latitude:  52.2297,
		Longitude: 21.0122,
		Radius:    5,
	})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 0.0, items[0].Distance)

	far := geo.Distance(52.2297, 21.0122, 52.4064, 16.9252)
	assert.Greater(t, far, 250.0)
}

func TestUpdateItemOnlyOwner(t *testing.T) {
	owner := uuid.New()
	item := &entities.Item{
		ID:       uuid.New(),
		UserID:   owner,
		Title:    "Found phone",
		Category: domain.CategoryFound,
		Status:   domain.ItemStatusActive,
	}
	service := newItemService(newFakeItemRepository(item), &fakeClaimLister{}, &eventRecorder{}, &fakeGeocoder{})

	_, err := service.UpdateItem(context.Background(), item.ID.String(), domain.UpdateItemRequest{
		Title: "Hijacked",
	}, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrNotItemOwner)
	assert.Equal(t, "Found phone", item.Title)

	updated, err := service.UpdateItem(context.Background(), item.ID.String(), domain.UpdateItemRequest{
		Title: "Found phone, black case",
	}, owner.String())
	require.NoError(t, err)
	assert.Equal(t, "Found phone, black case", updated.Title)
}

func TestMarkItemResolved(t *testing.T) {
	owner := uuid.New()
	claimant := uuid.New()
	item := &entities.Item{
		ID:       uuid.New(),
		UserID:   owner,
		Title:    "Found phone",
		Category: domain.CategoryFound,
		Status:   domain.ItemStatusActive,
	}
	events := &eventRecorder{}
	claims := &fakeClaimLister{approved: []*entities.Claim{{
		ID:              uuid.New(),
		ItemID:          item.ID,
		ClaimedByUserID: claimant,
		Status:          domain.ClaimStatusApproved,
	}}}
	service := newItemService(newFakeItemRepository(item), claims, events, &fakeGeocoder{})

	err := service.MarkItemResolved(context.Background(), item.ID.String(), owner.String())
	require.NoError(t, err)
	assert.Equal(t, domain.ItemStatusResolved, item.Status)

	require.Len(t, events.events, 1)
	event := events.events[0]
	assert.Equal(t, domain.NotificationItemResolved, event.Type)
	assert.Equal(t, claimant, event.UserID)
}

func TestMarkItemResolvedOnlyOwner(t *testing.T) {
	owner := uuid.New()
	item := &entities.Item{
		ID:       uuid.New(),
		UserID:   owner,
		Title:    "Found phone",
		Category: domain.CategoryFound,
		Status:   domain.ItemStatusActive,
	}
	events := &eventRecorder{}
	service := newItemService(newFakeItemRepository(item), &fakeClaimLister{}, events, &fakeGeocoder{})

	err := service.MarkItemResolved(context.Background(), item.ID.String(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrNotItemOwner)
	assert.Equal(t, domain.ItemStatusActive, item.Status)
	assert.Empty(t, events.events)
}

func TestMarkItemResolvedTwice(t *testing.T) {
	owner := uuid.New()
	item := &entities.Item{
		ID:       uuid.New(),
		UserID:   owner,
		Title:    "Found phone",
		Category: domain.CategoryFound,
		Status:   domain.ItemStatusActive,
	}
	service := newItemService(newFakeItemRepository(item), &fakeClaimLister{}, &eventRecorder{}, &fakeGeocoder{})

	require.NoError(t, service.MarkItemResolved(context.Background(), item.ID.String(), owner.String()))

	err := service.MarkItemResolved(context.Background(), item.ID.String(), owner.String())
	assert.ErrorIs(t, err, domain.ErrItemResolved)
}
