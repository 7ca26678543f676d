package services

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strconv"

	"moviematch-backend/internal/models"
	"moviematch-backend/internal/repository"

	"github.com/sirupsen/logrus"
)

// candidatePoolFactor controls how many unseen movies are scored per
// requested result. A wider pool lets a strong genre match beat raw
// popularity ordering.
const candidatePoolFactor = 4

// ScoredMovie pairs a recommendation candidate with its similarity score.
type ScoredMovie struct {
	Movie models.Movie `json:"movie"`
	Score float64      `json:"score"`
}

type RecommendationService interface {
	// ForDevice ranks unseen movies for a device by cosine similarity
	// between the device's genre-weight profile and each movie's genre
	// vector. Devices without a profile fall back to popularity order.
	ForDevice(ctx context.Context, deviceID string, limit int) ([]ScoredMovie, error)
}

type recommendationService struct {
	movieRepo   repository.MovieRepository
	preferences PreferenceService
	logger      *logrus.Logger
}

func NewRecommendationService(movieRepo repository.MovieRepository, preferences PreferenceService, logger *logrus.Logger) RecommendationService {
	return &recommendationService{
		movieRepo:   movieRepo,
		preferences: preferences,
		logger:      logger,
	}
}

func (s *recommendationService) ForDevice(ctx context.Context, deviceID string, limit int) ([]ScoredMovie, error) {
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	prefs, err := s.preferences.GetByDevice(ctx, deviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to load preferences: %w", err)
	}
	weights := s.preferences.GenreWeights(prefs)

	pool := limit * candidatePoolFactor
	candidates, err := s.movieRepo.FindUnvoted(ctx, deviceID, 0, pool)
	if err != nil {
		return nil, fmt.Errorf("failed to load candidates: %w", err)
	}

	scored := ScoreCandidates(candidates, weights)
	if len(scored) > limit {
		scored = scored[:limit]
	}
	return scored, nil
}

// ScoreCandidates orders candidates by similarity to the genre-weight
// profile, with popularity then movie ID breaking ties. With an empty
// profile every similarity is zero, which degrades to popularity order.
func ScoreCandidates(candidates []models.Movie, weights map[string]float64) []ScoredMovie {
	scored := make([]ScoredMovie, 0, len(candidates))
	for _, movie := range candidates {
		scored = append(scored, ScoredMovie{
			Movie: movie,
			Score: CosineSimilarity(weights, genreVector(movie)),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		if scored[i].Movie.Popularity != scored[j].Movie.Popularity {
			return scored[i].Movie.Popularity > scored[j].Movie.Popularity
		}
		return scored[i].Movie.ID < scored[j].Movie.ID
	})

	return scored
}

func genreVector(movie models.Movie) map[string]float64 {
	vec := make(map[string]float64, len(movie.Genres))
	for _, g := range movie.Genres {
		vec[strconv.Itoa(g.TMDBID)] = 1
	}
	return vec
}

// CosineSimilarity computes the cosine of two sparse vectors keyed by genre
// ID. Negative weights (accumulated skips) pull the score below zero for
// movies in disliked genres.
func CosineSimilarity(a, b map[string]float64) float64 {
	var dot, normA, normB float64

	for key, va := range a {
		if vb, ok := b[key]; ok {
			dot += va * vb
		}
		normA += va * va
	}

	for _, vb := range b {
		normB += vb * vb
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
