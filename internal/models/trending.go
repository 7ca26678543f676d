package models

import "time"

const (
	TrendingPeriodDay   = "day"
	TrendingPeriodWeek  = "week"
	TrendingPeriodMonth = "month"
)

// TrendingPeriods lists the windows the recompute job maintains.
var TrendingPeriods = []string{TrendingPeriodDay, TrendingPeriodWeek, TrendingPeriodMonth}

// ValidTrendingPeriod reports whether p is a recognized snapshot window.
func ValidTrendingPeriod(p string) bool {
	switch p {
	case TrendingPeriodDay, TrendingPeriodWeek, TrendingPeriodMonth:
		return true
	}
	return false
}

// TrendingCache is a denormalized per-(movie, period) ranking snapshot.
// Rows are replaced wholesale on every recompute run.
type TrendingCache struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	MovieID       uint      `gorm:"uniqueIndex:idx_trending_movie_period;not null" json:"movie_id"`
	Movie         *Movie    `gorm:"foreignKey:MovieID" json:"movie,omitempty"`
	Period        string    `gorm:"uniqueIndex:idx_trending_movie_period;not null;size:10" json:"period" example:"week"`
	VoteCount     int64     `gorm:"not null" json:"vote_count"`
	Rank          int       `gorm:"not null;index" json:"rank"`
	PercentChange float64   `json:"percent_change"`
	UpdatedAt     time.Time `gorm:"index" json:"updated_at"`
}

func (TrendingCache) TableName() string {
	return "trending_cache"
}
