package models

import "time"

const (
	VoteTypeUpvote  = "upvote"
	VoteTypeSkip    = "skip"
	VoteTypeNotSeen = "not_seen"
)

// ValidVoteType reports whether t is one of the recognized vote types.
func ValidVoteType(t string) bool {
	switch t {
	case VoteTypeUpvote, VoteTypeSkip, VoteTypeNotSeen:
		return true
	}
	return false
}

type Vote struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	MovieID   uint      `gorm:"uniqueIndex:idx_votes_movie_device;not null" json:"movie_id"`
	Movie     *Movie    `gorm:"foreignKey:MovieID" json:"movie,omitempty"`
	DeviceID  string    `gorm:"uniqueIndex:idx_votes_movie_device;not null;size:128;index" json:"device_id"`
	VoteType  string    `gorm:"not null;size:16;index" json:"vote_type" example:"upvote"`
	SessionID string    `gorm:"size:64;index" json:"session_id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
}

func (Vote) TableName() string {
	return "votes"
}

// MovieVoteCount is a windowed aggregate used by trending recomputes.
type MovieVoteCount struct {
	MovieID   uint  `json:"movie_id"`
	VoteCount int64 `json:"vote_count"`
}
