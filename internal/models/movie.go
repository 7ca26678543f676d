package models

import (
	"time"
)

const (
	MediaTypeMovie = "movie"
	MediaTypeTV    = "tv"
)

type Movie struct {
	ID               uint      `gorm:"primaryKey" json:"id" example:"1"`
	TMDBID           int       `gorm:"uniqueIndex:idx_movies_tmdb_media;not null" json:"tmdb_id" example:"550"`
	MediaType        string    `gorm:"uniqueIndex:idx_movies_tmdb_media;not null;default:movie;size:10" json:"media_type" example:"movie"`
	Title            string    `gorm:"not null;index" json:"title" example:"Fight Club"`
	OriginalTitle    string    `json:"original_title" example:"Fight Club"`
	Overview         string    `gorm:"type:text" json:"overview" example:"A ticking-time-bomb insomniac..."`
	ReleaseDate      string    `gorm:"index" json:"release_date" example:"1999-10-15"`
	PosterPath       string    `json:"poster_path" example:"/pB8BM7pdSp6B6Ih7QZ4DrQ3PmJK.jpg"`
	BackdropPath     string    `json:"backdrop_path" example:"/52AfXWuXCHn3UjD17rBruA9f5qb.jpg"`
	Runtime          *int      `json:"runtime,omitempty" example:"139"`
	VoteAverage      float64   `gorm:"index" json:"vote_average" example:"8.4"`
	VoteCount        int       `json:"vote_count" example:"26280"`
	Popularity       float64   `gorm:"index" json:"popularity" example:"61.416"`
	Adult            bool      `json:"adult" example:"false"`
	OriginalLanguage string    `gorm:"size:10" json:"original_language" example:"en"`
	Genres           []Genre   `gorm:"many2many:movie_genres;" json:"genres,omitempty"`
	CachedAt         time.Time `gorm:"index" json:"cached_at"`
	CreatedAt        time.Time `gorm:"index" json:"created_at"`
	UpdatedAt        time.Time `gorm:"index" json:"updated_at"`
}

func (Movie) TableName() string {
	return "movies"
}

type TMDBMovieResponse struct {
	ID               int     `json:"id"`
	Title            string  `json:"title"`
	Name             string  `json:"name"` // TV results carry name instead of title
	OriginalTitle    string  `json:"original_title"`
	OriginalName     string  `json:"original_name"`
	Overview         string  `json:"overview"`
	ReleaseDate      string  `json:"release_date"`
	FirstAirDate     string  `json:"first_air_date"`
	PosterPath       string  `json:"poster_path"`
	BackdropPath     string  `json:"backdrop_path"`
	Runtime          *int    `json:"runtime,omitempty"`
	VoteAverage      float64 `json:"vote_average"`
	VoteCount        int     `json:"vote_count"`
	Popularity       float64 `json:"popularity"`
	Adult            bool    `json:"adult"`
	OriginalLanguage string  `json:"original_language"`
	GenreIDs         []int   `json:"genre_ids"`
}

type TMDBPopularMoviesResponse struct {
	Page         int                 `json:"page"`
	Results      []TMDBMovieResponse `json:"results"`
	TotalPages   int                 `json:"total_pages"`
	TotalResults int                 `json:"total_results"`
}

type SyncLog struct {
	ID            uint      `gorm:"primaryKey" json:"id" example:"1"`
	SyncType      string    `gorm:"index" json:"sync_type" example:"manual"`
	MediaType     string    `gorm:"index" json:"media_type" example:"movie"`
	Status        string    `gorm:"index" json:"status" example:"success"`
	MoviesAdded   int       `json:"movies_added" example:"20"`
	MoviesUpdated int       `json:"movies_updated" example:"5"`
	ErrorMessage  string    `gorm:"type:text" json:"error_message,omitempty"`
	SyncedAt      time.Time `gorm:"index" json:"synced_at"`
	CreatedAt     time.Time `json:"created_at"`
}

func (SyncLog) TableName() string {
	return "sync_logs"
}

type DashboardStats struct {
	TotalMovies   int64      `json:"total_movies" example:"100"`
	TotalVotes    int64      `json:"total_votes" example:"5000"`
	TotalDevices  int64      `json:"total_devices" example:"250"`
	UpvoteRatio   float64    `json:"upvote_ratio" example:"0.62"`
	LastSyncTime  *time.Time `json:"last_sync_time"`
	MostUpvoted   []Movie    `json:"most_upvoted"`
	MostPopular   []Movie    `json:"most_popular"`
	RecentlyAdded []Movie    `json:"recently_added"`
}
