package entities

import (
	"github.com/google/uuid"
)

type Verification struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	ItemID uuid.UUID `gorm:"index" json:"item_id"`
	UserID uuid.UUID `json:"user_id"`
	Status string    `json:"status"` // pending, approved, rejected
	Notes  string    `json:"notes,omitempty"`

	Item   *Item                `gorm:"foreignKey:ItemID"`
	User   *User                `gorm:"foreignKey:UserID"`
	Photos []*VerificationPhoto `gorm:"foreignKey:VerificationID"`
	Timestamp
}

type VerificationPhoto struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	VerificationID uuid.UUID `json:"verification_id"`
	PhotoURL       string    `json:"photo_url"`

	Verification *Verification `gorm:"foreignKey:VerificationID"`
	Timestamp
}
