package verification

import (
	"context"
	"fmt"
	"mime/multipart"
	"testing"

	"Fynd-Backend/domain"
	"Fynd-Backend/entities"
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

func (f *fakeItemRepository) SetItemVerification(_ context.Context, id string, verified bool, status string) error {
	if item, ok := f.items[id]; ok {
		item.Verified = verified
		item.VerificationStatus = status
	}
	return nil
}

type fakeVerificationRepository struct {
	verifications map[string]*entities.Verification
}

func newFakeVerificationRepository() *fakeVerificationRepository {
	return &fakeVerificationRepository{verifications: make(map[string]*entities.Verification)}
}

func (f *fakeVerificationRepository) CreateVerification(_ context.Context, verification *entities.Verification, photos []*entities.VerificationPhoto) error {
	for _, photo := range photos {
		photo.VerificationID = verification.ID
	}
	verification.Photos = photos
	f.verifications[verification.ID.String()] = verification
	return nil
}

func (f *fakeVerificationRepository) GetVerificationByID(_ context.Context, id string) (*entities.Verification, error) {
	verification, ok := f.verifications[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return verification, nil
}

func (f *fakeVerificationRepository) GetPendingVerificationByItem(_ context.Context, itemID string) (*entities.Verification, error) {
	for _, v := range f.verifications {
		if v.ItemID.String() == itemID && v.Status == domain.VerificationStatusPending {
			return v, nil
		}
	}
	return nil, nil
}

func (f *fakeVerificationRepository) GetVerificationsByItem(_ context.Context, itemID string) ([]*entities.Verification, error) {
	var verifications []*entities.Verification
	for _, v := range f.verifications {
		if v.ItemID.String() == itemID {
			verifications = append(verifications, v)
		}
	}
	return verifications, nil
}

func (f *fakeVerificationRepository) GetPendingVerifications(_ context.Context, _, _ int) ([]*entities.Verification, int64, error) {
	var verifications []*entities.Verification
	for _, v := range f.verifications {
		if v.Status == domain.VerificationStatusPending {
			verifications = append(verifications, v)
		}
	}
	return verifications, int64(len(verifications)), nil
}

func (f *fakeVerificationRepository) UpdateVerificationStatus(_ context.Context, id string, status string) error {
	verification, ok := f.verifications[id]
	if !ok || verification.Status != domain.VerificationStatusPending {
		return domain.ErrVerificationDecided
	}
	verification.Status = status
	return nil
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

type eventRecorder struct {
	events []notification.Event
}

func (r *eventRecorder) Dispatch(_ context.Context, event notification.Event) {
	r.events = append(r.events, event)
}

func photoHeaders(n int) []*multipart.FileHeader {
	photos := make([]*multipart.FileHeader, 0, n)
	for i := 0; i < n; i++ {
		photos = append(photos, &multipart.FileHeader{Filename: fmt.Sprintf("photo-%d.jpg", i+1)})
	}
	return photos
}

type verificationFixture struct {
	service  VerificationService
	repo     *fakeVerificationRepository
	itemRepo *fakeItemRepository
	storage  *fakeStorage
	events   *eventRecorder

	owner *entities.User
	item  *entities.Item
}

func newVerificationFixture(t *testing.T) *verificationFixture {
	t.Helper()

	owner := &entities.User{ID: uuid.New(), Email: "owner@example.com"}
	item := &entities.Item{
		ID:       uuid.New(),
		UserID:   owner.ID,
		Title:    "Silver laptop",
		Category: domain.CategoryFound,
		Status:   domain.ItemStatusActive,
	}

	fixture := &verificationFixture{
		repo:     newFakeVerificationRepository(),
		itemRepo: newFakeItemRepository(item),
		storage:  &fakeStorage{},
		events:   &eventRecorder{},
		owner:    owner,
		item:     item,
	}
	fixture.service = NewVerificationService(fixture.repo, fixture.itemRepo, fixture.events, fixture.storage)
	return fixture
}

func (f *verificationFixture) submit(t *testing.T, photos int) *domain.Verification {
	t.Helper()
	verification, err := f.service.SubmitVerification(context.Background(), domain.SubmitVerificationRequest{
		ItemID: f.item.ID.String(),
		Photos: photoHeaders(photos),
	}, f.owner.ID.String())
	require.NoError(t, err)
	return verification
}

func TestSubmitVerificationPhotoCount(t *testing.T) {
	f := newVerificationFixture(t)

	for _, n := range []int{0, 1, 6} {
		_, err := f.service.SubmitVerification(context.Background(), domain.SubmitVerificationRequest{
			ItemID: f.item.ID.String(),
			Photos: photoHeaders(n),
		}, f.owner.ID.String())
		assert.ErrorIs(t, err, domain.ErrVerificationPhotoCount, "photos=%d", n)
	}
	assert.Empty(t, f.storage.uploads)
}

func TestSubmitVerification(t *testing.T) {
	f := newVerificationFixture(t)

	verification := f.submit(t, 3)
	assert.Equal(t, domain.VerificationStatusPending, verification.Status)
	assert.Len(t, verification.PhotoURLs, 3)
	assert.Len(t, f.storage.uploads, 3)

	// submitting flags the item as pending, not verified
	assert.False(t, f.item.Verified)
	assert.Equal(t, domain.VerificationStatusPending, f.item.VerificationStatus)
}

func TestSubmitVerificationOnlyOwner(t *testing.T) {
	f := newVerificationFixture(t)

	_, err := f.service.SubmitVerification(context.Background(), domain.SubmitVerificationRequest{
		ItemID: f.item.ID.String(),
		Photos: photoHeaders(2),
	}, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrNotItemOwner)
}

func TestSubmitVerificationWhilePending(t *testing.T) {
	f := newVerificationFixture(t)
	f.submit(t, 2)

	_, err := f.service.SubmitVerification(context.Background(), domain.SubmitVerificationRequest{
		ItemID: f.item.ID.String(),
		Photos: photoHeaders(2),
	}, f.owner.ID.String())
	assert.ErrorIs(t, err, domain.ErrVerificationPending)
}

func TestSubmitVerificationAfterRejection(t *testing.T) {
	f := newVerificationFixture(t)
	first := f.submit(t, 2)

	f.repo.verifications[first.ID].Item = f.item
	_, err := f.service.ReviewVerification(context.Background(), domain.ReviewVerificationRequest{
		VerificationID: first.ID,
		Status:         domain.VerificationStatusRejected,
	})
	require.NoError(t, err)

	// a terminal decision opens the door for a fresh request
	second := f.submit(t, 3)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestReviewVerificationApprove(t *testing.T) {
	f := newVerificationFixture(t)
	submitted := f.submit(t, 2)
	f.repo.verifications[submitted.ID].Item = f.item

	reviewed, err := f.service.ReviewVerification(context.Background(), domain.ReviewVerificationRequest{
		VerificationID: submitted.ID,
		Status:         domain.VerificationStatusApproved,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.VerificationStatusApproved, reviewed.Status)

	assert.True(t, f.item.Verified)
	assert.Equal(t, domain.VerificationStatusApproved, f.item.VerificationStatus)

	require.Len(t, f.events.events, 1)
	event := f.events.events[0]
	assert.Equal(t, domain.NotificationVerificationApproved, event.Type)
	assert.Equal(t, f.owner.ID, event.UserID)
}

func TestReviewVerificationReject(t *testing.T) {
	f := newVerificationFixture(t)
	submitted := f.submit(t, 2)
	f.repo.verifications[submitted.ID].Item = f.item

	reviewed, err := f.service.ReviewVerification(context.Background(), domain.ReviewVerificationRequest{
		VerificationID: submitted.ID,
		Status:         domain.VerificationStatusRejected,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.VerificationStatusRejected, reviewed.Status)

	assert.False(t, f.item.Verified)
	assert.Equal(t, domain.VerificationStatusRejected, f.item.VerificationStatus)

	require.Len(t, f.events.events, 1)
	assert.Equal(t, domain.NotificationVerificationRejected, f.events.events[0].Type)
}

func TestReviewVerificationTwice(t *testing.T) {
	f := newVerificationFixture(t)
	submitted := f.submit(t, 2)
	f.repo.verifications[submitted.ID].Item = f.item

	_, err := f.service.ReviewVerification(context.Background(), domain.ReviewVerificationRequest{
		VerificationID: submitted.ID,
		Status:         domain.VerificationStatusApproved,
	})
	require.NoError(t, err)

	_, err = f.service.ReviewVerification(context.Background(), domain.ReviewVerificationRequest{
		VerificationID: submitted.ID,
		Status:         domain.VerificationStatusRejected,
	})
	assert.ErrorIs(t, err, domain.ErrVerificationDecided)
}
