package entities

import (
	"github.com/google/uuid"
)

type Notification struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID  uuid.UUID `gorm:"index" json:"user_id"`
	Type    string    `json:"type"` // see domain.NotificationType
	Title   string    `json:"title"`
	Message string    `json:"message"`
	Link    string    `json:"link,omitempty"`
	Read    bool      `json:"read"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
