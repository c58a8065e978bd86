package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

const (
	VerificationStatusPending  = "pending"
	VerificationStatusApproved = "approved"
	VerificationStatusRejected = "rejected"

	MinVerificationPhotos = 2
	MaxVerificationPhotos = 5
)

var (
	MessageSuccessSubmitVerification = "verification request submitted successfully"
	MessageSuccessGetVerifications   = "verification requests retrieved successfully"
	MessageSuccessReviewVerification = "verification request reviewed successfully"

	MessageFailedSubmitVerification = "failed to submit verification request"
	MessageFailedGetVerifications   = "failed to retrieve verification requests"
	MessageFailedReviewVerification = "failed to review verification request"

	ErrVerificationNotFound   = errors.New("verification request not found")
	ErrVerificationPending    = errors.New("a verification request is already pending for this item")
	ErrVerificationDecided    = errors.New("verification request has already been decided")
	ErrVerificationPhotoCount = errors.New("verification_photos: between 2 and 5 photos are required")
)

type (
	SubmitVerificationRequest struct {
		ItemID string                  `json:"item_id" validate:"required,uuid"`
		Notes  string                  `json:"notes" validate:"omitempty,max=1000"`
		Photos []*multipart.FileHeader `json:"photos" validate:"required"`
	}

	ReviewVerificationRequest struct {
		VerificationID string `json:"verification_id" validate:"required,uuid"`
		Status         string `json:"status" validate:"required,oneof=approved rejected"`
	}

	Verification struct {
		ID        string    `json:"id"`
		ItemID    string    `json:"item_id"`
		ItemTitle string    `json:"item_title,omitempty"`
		UserID    string    `json:"user_id"`
		Status    string    `json:"status"`
		Notes     string    `json:"notes,omitempty"`
		PhotoURLs []string  `json:"photo_urls"`
		CreatedAt time.Time `json:"created_at"`
		UpdatedAt time.Time `json:"updated_at"`
	}
)
