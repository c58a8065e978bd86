package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Timestamp struct {
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// User mirrors the external auth provider's account record. The backend never
// creates or authenticates users, it only resolves ids carried in tokens.
type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Email    string    `gorm:"uniqueIndex" json:"email"`
	FullName string    `json:"full_name,omitempty"`

	Items []*Item `gorm:"foreignKey:UserID"`
	Timestamp
}
