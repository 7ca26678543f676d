package handlers

import (
	"moviematch-backend/internal/models"
	"moviematch-backend/internal/utils"
)

type MovieRequest struct {
	TMDBID           int     `json:"tmdb_id"`
	MediaType        string  `json:"media_type"`
	Title            string  `json:"title"`
	OriginalTitle    string  `json:"original_title"`
	Overview         string  `json:"overview"`
	ReleaseDate      string  `json:"release_date"`
	PosterPath       string  `json:"poster_path"`
	BackdropPath     string  `json:"backdrop_path"`
	Runtime          *int    `json:"runtime,omitempty"`
	VoteAverage      float64 `json:"vote_average"`
	VoteCount        int     `json:"vote_count"`
	Popularity       float64 `json:"popularity"`
	Adult            bool    `json:"adult"`
	OriginalLanguage string  `json:"original_language"`
}

type VoteBody struct {
	MovieID   uint   `json:"movie_id"`
	DeviceID  string `json:"device_id"`
	VoteType  string `json:"vote_type" example:"upvote"`
	SessionID string `json:"session_id,omitempty"`
}

// DeckCard is a Movie dressed for the swipe UI: full artwork URLs and
// display-ready runtime/year text.
type DeckCard struct {
	models.Movie
	PosterURL   string `json:"poster_url"`
	BackdropURL string `json:"backdrop_url"`
	RuntimeText string `json:"runtime_text,omitempty"`
	ReleaseYear string `json:"release_year,omitempty"`
}

func NewDeckCard(m models.Movie) DeckCard {
	card := DeckCard{
		Movie:       m,
		PosterURL:   utils.TMDBImageURL(m.PosterPath, utils.DefaultImageSize),
		BackdropURL: utils.TMDBImageURL(m.BackdropPath, "w1280"),
		ReleaseYear: utils.ReleaseYear(m.ReleaseDate),
	}
	if m.Runtime != nil {
		card.RuntimeText = utils.FormatRuntime(*m.Runtime)
	}
	return card
}

func NewDeckCards(movies []models.Movie) []DeckCard {
	cards := make([]DeckCard, 0, len(movies))
	for _, m := range movies {
		cards = append(cards, NewDeckCard(m))
	}
	return cards
}

// RecommendationCard pairs a deck card with its similarity score.
type RecommendationCard struct {
	DeckCard
	Score float64 `json:"score"`
}
