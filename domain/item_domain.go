package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

const (
	CategoryLost  = "lost"
	CategoryFound = "found"

	ItemStatusActive   = "active"
	ItemStatusResolved = "resolved"
)

var (
	MessageSuccessGetItems      = "items retrieved successfully"
	MessageSuccessCreateItem    = "item created successfully"
	MessageSuccessUpdateItem    = "item updated successfully"
	MessageSuccessResolveItem   = "item marked as resolved"
	MessageSuccessGetNearbyItem = "nearby items retrieved successfully"

	MessageFailedGetItems    = "failed to retrieve items"
	MessageFailedCreateItem  = "failed to create item"
	MessageFailedUpdateItem  = "failed to update item"
	MessageFailedResolveItem = "failed to mark item as resolved"

	ErrItemNotFound       = errors.New("item not found")
	ErrNotItemOwner       = errors.New("only the item owner may perform this action")
	ErrItemResolved       = errors.New("item is already resolved")
	ErrInvalidCategory    = errors.New("category must be lost or found")
	ErrInvalidCoordinates = errors.New("invalid coordinates")
)

type (
	ItemRequest struct {
		Title       string                `json:"title" form:"title" validate:"required"`
		Description string                `json:"description" form:"description" validate:"required"`
		Category    string                `json:"category" form:"category" validate:"required,oneof=lost found"`
		ItemType    string                `json:"item_type" form:"item_type" validate:"omitempty"`
		Location    string                `json:"location" form:"location" validate:"omitempty"`
		Latitude    *float64              `json:"latitude" form:"latitude" validate:"omitempty,min=-90,max=90"`
		Longitude   *float64              `json:"longitude" form:"longitude" validate:"omitempty,min=-180,max=180"`
		ContactInfo string                `json:"contact_info" form:"contact_info" validate:"omitempty"`
		Image       *multipart.FileHeader `json:"image" form:"image"`
	}

	UpdateItemRequest struct {
		Title       string   `json:"title" validate:"omitempty"`
		Description string   `json:"description" validate:"omitempty"`
		ItemType    string   `json:"item_type" validate:"omitempty"`
		Location    string   `json:"location" validate:"omitempty"`
		Latitude    *float64 `json:"latitude" validate:"omitempty,min=-90,max=90"`
		Longitude   *float64 `json:"longitude" validate:"omitempty,min=-180,max=180"`
		ContactInfo string   `json:"contact_info" validate:"omitempty"`
	}

	Item struct {
		ID                 string    `json:"id"`
		UserID             string    `json:"user_id"`
		UserName           string    `json:"user_name,omitempty"`
		Title              string    `json:"title"`
		Description        string    `json:"description"`
		Category           string    `json:"category"`
		ItemType           string    `json:"item_type,omitempty"`
		Location           string    `json:"location,omitempty"`
		Latitude           *float64  `json:"latitude,omitempty"`
		Longitude          *float64  `json:"longitude,omitempty"`
		ImageURL           string    `json:"image_url,omitempty"`
		ContactInfo        string    `json:"contact_info,omitempty"`
		Status             string    `json:"status"`
		Verified           bool      `json:"verified"`
		VerificationStatus string    `json:"verification_status,omitempty"`
		Distance           float64   `json:"distance,omitempty"` // in km
		CreatedAt          time.Time `json:"created_at"`
		UpdatedAt          time.Time `json:"updated_at"`
	}

	GetItemsRequest struct {
		Category string `json:"category" validate:"omitempty,oneof=lost found"`
		ItemType string `json:"item_type" validate:"omitempty"`
		Search   string `json:"search" validate:"omitempty"`
		Status   string `json:"status" validate:"omitempty,oneof=active resolved all"`
	}

	GetNearbyItemsRequest struct {
		Latitude  float64 `json:"latitude" validate:"required,min=-90,max=90"`
		Longitude float64 `json:"longitude" validate:"required,min=-180,max=180"`
		Radius    float64 `json:"radius" validate:"required,min=1,max=50"`
		Category  string  `json:"category" validate:"omitempty,oneof=lost found"`
	}
)
