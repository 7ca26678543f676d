package models

import (
	"time"

	"gorm.io/datatypes"
)

// UserPreferences is the per-device taste profile. GenreWeights holds a
// JSON object mapping TMDB genre ID (as a string key) to an accumulated
// weight; upvotes push weights up, skips push them down.
type UserPreferences struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	DeviceID     string         `gorm:"uniqueIndex;not null;size:128" json:"device_id"`
	GenreWeights datatypes.JSON `gorm:"type:text" json:"genre_weights"`
	VoteCount    int            `gorm:"not null;default:0" json:"vote_count"`
	LastSeenAt   time.Time      `gorm:"index" json:"last_seen_at"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

func (UserPreferences) TableName() string {
	return "user_preferences"
}
