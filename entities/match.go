package entities

import (
	"github.com/google/uuid"
)

// Match pairs one lost item with one found item. The score is a snapshot of
// the scoring engine's output at generation time; regenerating is the only
// way to refresh it.
type Match struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	LostItemID   uuid.UUID `gorm:"uniqueIndex:idx_matches_pair" json:"lost_item_id"`
	FoundItemID  uuid.UUID `gorm:"uniqueIndex:idx_matches_pair" json:"found_item_id"`
	MatchScore   float64   `json:"match_score"`
	MatchReasons string    `json:"match_reasons"` // comma-joined subset of category,keywords,location,date
	Status       string    `json:"status"`        // pending, viewed, contacted, dismissed

	LostItem  *Item `gorm:"foreignKey:LostItemID"`
	FoundItem *Item `gorm:"foreignKey:FoundItemID"`
	Timestamp
}
