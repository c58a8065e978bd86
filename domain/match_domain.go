package domain

import (
	"errors"
	"time"
)

const (
	MatchStatusPending   = "pending"
	MatchStatusViewed    = "viewed"
	MatchStatusContacted = "contacted"
	MatchStatusDismissed = "dismissed"

	MatchReasonCategory = "category"
	MatchReasonKeywords = "keywords"
	MatchReasonLocation = "location"
	MatchReasonDate     = "date"
)

var (
	MessageSuccessGetMatches      = "matches retrieved successfully"
	MessageSuccessGenerateMatches = "matches generated successfully"
	MessageSuccessMatchStatus     = "match status updated successfully"

	MessageFailedGetMatches      = "failed to retrieve matches"
	MessageFailedGenerateMatches = "failed to generate matches"
	MessageFailedMatchStatus     = "failed to update match status"

	ErrMatchNotFound      = errors.New("match not found")
	ErrInvalidMatchStatus = errors.New("invalid match status")
)

type (
	GenerateMatchesRequest struct {
		MinScore float64 `json:"min_score" validate:"omitempty,min=0,max=100"`
	}

	UpdateMatchStatusRequest struct {
		MatchID string `json:"match_id" validate:"required,uuid"`
		Status  string `json:"status" validate:"required,oneof=viewed contacted dismissed"`
	}

	Match struct {
		ID           string    `json:"id"`
		LostItemID   string    `json:"lost_item_id"`
		FoundItemID  string    `json:"found_item_id"`
		LostItem     *Item     `json:"lost_item,omitempty"`
		FoundItem    *Item     `json:"found_item,omitempty"`
		MatchScore   float64   `json:"match_score"`
		MatchReasons []string  `json:"match_reasons"`
		Status       string    `json:"status"`
		CreatedAt    time.Time `json:"created_at"`
	}
)
