package entities

import (
	"github.com/google/uuid"
)

// Claim is unique per (item, claimant); the composite index makes the store
// reject duplicates instead of relying on a check-then-insert from the client.
type Claim struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	ItemID          uuid.UUID `gorm:"uniqueIndex:idx_claims_item_claimant" json:"item_id"`
	ClaimedByUserID uuid.UUID `gorm:"uniqueIndex:idx_claims_item_claimant" json:"claimed_by_user_id"`
	Status          string    `json:"status"` // pending, approved, rejected
	Message         string    `json:"message,omitempty"`

	Item      *Item `gorm:"foreignKey:ItemID"`
	ClaimedBy *User `gorm:"foreignKey:ClaimedByUserID"`
	Timestamp
}
