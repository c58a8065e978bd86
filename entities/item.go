package entities

import (
	"github.com/google/uuid"
)

type Item struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID             uuid.UUID `json:"user_id"`
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	Category           string    `gorm:"index" json:"category"` // lost, found
	ItemType           string    `json:"item_type,omitempty"`   // electronics, keys, wallet, ...
	Location           string    `json:"location,omitempty"`
	Latitude           *float64  `json:"latitude,omitempty"`
	Longitude          *float64  `json:"longitude,omitempty"`
	ImageURL           string    `json:"image_url,omitempty"`
	ContactInfo        string    `json:"contact_info,omitempty"`
	Status             string    `gorm:"index" json:"status"` // active, resolved
	Verified           bool      `json:"verified"`
	VerificationStatus string    `json:"verification_status,omitempty"` // pending, approved, rejected

	User          *User           `gorm:"foreignKey:UserID"`
	Claims        []*Claim        `gorm:"foreignKey:ItemID"`
	Verifications []*Verification `gorm:"foreignKey:ItemID"`
	Timestamp
}
