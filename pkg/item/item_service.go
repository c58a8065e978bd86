package item

import (
	"context"
	"errors"
	"fmt"

	"Fynd-Backend/domain"
	"Fynd-Backend/entities"
	"Fynd-Backend/internal/utils/storage"
	"Fynd-Backend/pkg/geo"
	"Fynd-Backend/pkg/notification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	// ApprovedClaimLister is the slice of the claim repository the item
	// workflow needs when resolving an item directly.
	ApprovedClaimLister interface {
		GetApprovedClaims(ctx context.Context, itemID string) ([]*entities.Claim, error)
	}

	ItemService interface {
		CreateItem(ctx context.Context, req domain.ItemRequest, userID string) (*domain.Item, error)
		GetItemByID(ctx context.Context, id string) (*domain.Item, error)
		GetItems(ctx context.Context, req domain.GetItemsRequest, page, limit int) ([]*domain.Item, int64, error)
		GetUserItems(ctx context.Context, userID string, page, limit int) ([]*domain.Item, int64, error)
		GetNearbyItems(ctx context.Context, req domain.GetNearbyItemsRequest) ([]*domain.Item, error)
		UpdateItem(ctx context.Context, id string, req domain.UpdateItemRequest, userID string) (*domain.Item, error)
		MarkItemResolved(ctx context.Context, id string, userID string) error
	}

	itemService struct {
		itemRepository ItemRepository
		approvedClaims ApprovedClaimLister
		dispatcher     notification.Dispatcher
		geocoder       geo.Geocoder
		s3             storage.AwsS3
	}
)

func NewItemService(
	itemRepository ItemRepository,
	approvedClaims ApprovedClaimLister,
	dispatcher notification.Dispatcher,
	geocoder geo.Geocoder,
	s3 storage.AwsS3,
) ItemService {
	return &itemService{
		itemRepository: itemRepository,
		approvedClaims: approvedClaims,
		dispatcher:     dispatcher,
		geocoder:       geocoder,
		s3:             s3,
	}
}

func (s *itemService) CreateItem(ctx context.Context, req domain.ItemRequest, userID string) (*domain.Item, error) {
	if req.Category != domain.CategoryLost && req.Category != domain.CategoryFound {
		return nil, domain.ErrInvalidCategory
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	itemID := uuid.New()

	// Upload before insert so an abandoned submission never leaves an item
	// row pointing at a missing object.
	var imageURL string
	if req.Image != nil {
		objectKey, err := s.s3.UploadFile(
			fmt.Sprintf("item-%s", itemID.String()),
			req.Image,
			"items",
			storage.AllowImage...,
		)
		if err != nil {
			return nil, err
		}
		imageURL = s.s3.GetPublicLinkKey(objectKey)
	}

	latitude := req.Latitude
	longitude := req.Longitude
	location := req.Location

	// Best-effort geocoding either direction; a failed lookup never blocks
	// the post.
	if latitude == nil && location != "" {
		if coords := s.geocoder.Geocode(ctx, location); coords != nil {
			latitude = &coords.Latitude
			longitude = &coords.Longitude
		}
	} else if latitude != nil && longitude != nil && location == "" {
		location = s.geocoder.ReverseGeocode(ctx, *latitude, *longitude)
	}

	item := &entities.Item{
		ID:          itemID,
		UserID:      userUUID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		ItemType:    req.ItemType,
		Location:    location,
		Latitude:    latitude,
		Longitude:   longitude,
		ImageURL:    imageURL,
		ContactInfo: req.ContactInfo,
		Status:      domain.ItemStatusActive,
	}

	if err := s.itemRepository.CreateItem(ctx, item); err != nil {
		return nil, err
	}

	return toDomainItem(item), nil
}

func (s *itemService) GetItemByID(ctx context.Context, id string) (*domain.Item, error) {
	item, err := s.itemRepository.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrItemNotFound
		}
		return nil, err
	}
	return toDomainItem(item), nil
}

func (s *itemService) GetItems(ctx context.Context, req domain.GetItemsRequest, page, limit int) ([]*domain.Item, int64, error) {
	items, count, err := s.itemRepository.GetItems(ctx, req, page, limit)
	if err != nil {
		return nil, 0, err
	}
	return toDomainItems(items), count, nil
}

func (s *itemService) GetUserItems(ctx context.Context, userID string, page, limit int) ([]*domain.Item, int64, error) {
	items, count, err := s.itemRepository.GetUserItems(ctx, userID, page, limit)
	if err != nil {
		return nil, 0, err
	}
	return toDomainItems(items), count, nil
}

func (s *itemService) GetNearbyItems(ctx context.Context, req domain.GetNearbyItemsRequest) ([]*domain.Item, error) {
	items, err := s.itemRepository.GetNearbyItems(ctx, req.Latitude, req.Longitude, req.Radius, req.Category)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.Item, 0, len(items))
	for _, item := range items {
		d := toDomainItem(item)
		if item.Latitude != nil && item.Longitude != nil {
			d.Distance = geo.Distance(req.Latitude, req.Longitude, *item.Latitude, *item.Longitude)
		}
		result = append(result, d)
	}
	return result, nil
}

func (s *itemService) UpdateItem(ctx context.Context, id string, req domain.UpdateItemRequest, userID string) (*domain.Item, error) {
	item, err := s.itemRepository.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrItemNotFound
		}
		return nil, err
	}

	if item.UserID.String() != userID {
		return nil, domain.ErrNotItemOwner
	}

	if req.Title != "" {
		item.Title = req.Title
	}
	if req.Description != "" {
		item.Description = req.Description
	}
	if req.ItemType != "" {
		item.ItemType = req.ItemType
	}
	if req.Location != "" {
		item.Location = req.Location
	}
	if req.Latitude != nil && req.Longitude != nil {
		item.Latitude = req.Latitude
		item.Longitude = req.Longitude
	}
	if req.ContactInfo != "" {
		item.ContactInfo = req.ContactInfo
	}

	if err := s.itemRepository.UpdateItem(ctx, item); err != nil {
		return nil, err
	}

	return toDomainItem(item), nil
}

// MarkItemResolved closes the case directly, independent of any single claim.
// Every claimant whose claim was approved is notified; normally that is one
// user at most, but the loop keeps the behavior correct either way.
func (s *itemService) MarkItemResolved(ctx context.Context, id string, userID string) error {
	item, err := s.itemRepository.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrItemNotFound
		}
		return err
	}

	if item.UserID.String() != userID {
		return domain.ErrNotItemOwner
	}

	if err := s.itemRepository.ResolveItem(ctx, id); err != nil {
		return err
	}

	claims, err := s.approvedClaims.GetApprovedClaims(ctx, id)
	if err != nil {
		return nil // item is resolved; missing notifications are acceptable
	}
	for _, claim := range claims {
		s.dispatcher.Dispatch(ctx, notification.NewItemResolvedEvent(
			claim.ClaimedByUserID, item.ID, item.Title,
		))
	}

	return nil
}

func toDomainItem(item *entities.Item) *domain.Item {
	d := &domain.Item{
		ID:                 item.ID.String(),
		UserID:             item.UserID.String(),
		Title:              item.Title,
		Description:        item.Description,
		Category:           item.Category,
		ItemType:           item.ItemType,
		Location:           item.Location,
		Latitude:           item.Latitude,
		Longitude:          item.Longitude,
		ImageURL:           item.ImageURL,
		ContactInfo:        item.ContactInfo,
		Status:             item.Status,
		Verified:           item.Verified,
		VerificationStatus: item.VerificationStatus,
		CreatedAt:          item.CreatedAt,
		UpdatedAt:          item.UpdatedAt,
	}
	if item.User != nil {
		d.UserName = item.User.FullName
	}
	return d
}

func toDomainItems(items []*entities.Item) []*domain.Item {
	result := make([]*domain.Item, 0, len(items))
	for _, item := range items {
		result = append(result, toDomainItem(item))
	}
	return result
}
