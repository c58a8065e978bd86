package domain

import (
	"errors"
	"time"
)

const (
	ClaimStatusPending  = "pending"
	ClaimStatusApproved = "approved"
	ClaimStatusRejected = "rejected"
)

var (
	MessageSuccessSubmitClaim = "claim submitted successfully"
	MessageSuccessGetClaims   = "claims retrieved successfully"
	MessageSuccessClaimStatus = "claim status updated successfully"

	MessageFailedSubmitClaim = "failed to submit claim"
	MessageFailedGetClaims   = "failed to retrieve claims"
	MessageFailedClaimStatus = "failed to update claim status"

	ErrClaimNotFound     = errors.New("claim not found")
	ErrAlreadyClaimed    = errors.New("you have already claimed this item")
	ErrClaimOwnItem      = errors.New("cannot claim your own item")
	ErrClaimNotPending   = errors.New("claim has already been decided")
	ErrInvalidClaimState = errors.New("invalid claim status")
)

type (
	SubmitClaimRequest struct {
		ItemID  string `json:"item_id" validate:"required,uuid"`
		Message string `json:"message" validate:"omitempty,max=1000"`
	}

	DecideClaimRequest struct {
		ClaimID string `json:"claim_id" validate:"required,uuid"`
		Status  string `json:"status" validate:"required,oneof=approved rejected"`
	}

	Claim struct {
		ID              string    `json:"id"`
		ItemID          string    `json:"item_id"`
		ItemTitle       string    `json:"item_title,omitempty"`
		ClaimedByUserID string    `json:"claimed_by_user_id"`
		ClaimedByEmail  string    `json:"claimed_by_email,omitempty"`
		Status          string    `json:"status"`
		Message         string    `json:"message,omitempty"`
		CreatedAt       time.Time `json:"created_at"`
		UpdatedAt       time.Time `json:"updated_at"`
	}
)
