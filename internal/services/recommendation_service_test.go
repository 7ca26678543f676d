package services

import (
	"context"
	"testing"

	"moviematch-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCosineSimilarity(t *testing.T) {
	drama := map[string]float64{"18": 1}

	assert.InDelta(t, 1.0, CosineSimilarity(drama, map[string]float64{"18": 1}), 1e-9)
	assert.Equal(t, 0.0, CosineSimilarity(drama, map[string]float64{"28": 1}))
	assert.Equal(t, 0.0, CosineSimilarity(map[string]float64{}, drama))
	assert.Equal(t, 0.0, CosineSimilarity(drama, map[string]float64{}))

	// Accumulated skips make disliked genres score negative.
	dislikesHorror := map[string]float64{"27": -0.5}
	assert.Less(t, CosineSimilarity(dislikesHorror, map[string]float64{"27": 1}), 0.0)
}

func TestScoreCandidatesPrefersProfileGenres(t *testing.T) {
	horror := models.Movie{ID: 1, Title: "Scary", Popularity: 99, Genres: []models.Genre{{TMDBID: 27}}}
	drama := models.Movie{ID: 2, Title: "Moving", Popularity: 10, Genres: []models.Genre{{TMDBID: 18}}}

	weights := map[string]float64{"18": 3}

	scored := ScoreCandidates([]models.Movie{horror, drama}, weights)
	require.Len(t, scored, 2)
	assert.Equal(t, uint(2), scored[0].Movie.ID, "genre match must beat raw popularity")
	assert.Greater(t, scored[0].Score, scored[1].Score)
}

func TestScoreCandidatesEmptyProfileFallsBackToPopularity(t *testing.T) {
	a := models.Movie{ID: 1, Popularity: 10, Genres: []models.Genre{{TMDBID: 18}}}
	b := models.Movie{ID: 2, Popularity: 90, Genres: []models.Genre{{TMDBID: 27}}}

	scored := ScoreCandidates([]models.Movie{a, b}, map[string]float64{})
	require.Len(t, scored, 2)
	assert.Equal(t, uint(2), scored[0].Movie.ID)
	assert.Equal(t, 0.0, scored[0].Score)
}

func TestScoreCandidatesStableTiebreak(t *testing.T) {
	a := models.Movie{ID: 5, Popularity: 50, Genres: []models.Genre{{TMDBID: 18}}}
	b := models.Movie{ID: 3, Popularity: 50, Genres: []models.Genre{{TMDBID: 18}}}

	scored := ScoreCandidates([]models.Movie{a, b}, map[string]float64{"18": 1})
	require.Len(t, scored, 2)
	assert.Equal(t, uint(3), scored[0].Movie.ID)
}

func TestForDeviceExcludesVotedMovies(t *testing.T) {
	log := testLogger()

	movieRepo := newFakeMovieRepo(
		&models.Movie{ID: 1, Popularity: 90, Genres: []models.Genre{{TMDBID: 18}}},
		&models.Movie{ID: 2, Popularity: 50, Genres: []models.Genre{{TMDBID: 18}}},
		&models.Movie{ID: 3, Popularity: 10, Genres: []models.Genre{{TMDBID: 27}}},
	)
	movieRepo.voted["dev-1"] = map[uint]bool{1: true}

	prefRepo := newFakePrefRepo()
	prefs := NewPreferenceService(prefRepo, log)
	require.NoError(t, prefs.ApplyVote(context.Background(), "dev-1", models.VoteTypeUpvote, []models.Genre{{TMDBID: 18}}))

	svc := NewRecommendationService(movieRepo, prefs, log)

	scored, err := svc.ForDevice(context.Background(), "dev-1", 10)
	require.NoError(t, err)
	require.Len(t, scored, 2)

	for _, s := range scored {
		assert.NotEqual(t, uint(1), s.Movie.ID, "voted movies must never be recommended")
	}
	assert.Equal(t, uint(2), scored[0].Movie.ID, "drama profile ranks the drama candidate first")
}

func TestForDeviceWithoutProfileUsesPopularity(t *testing.T) {
	log := testLogger()

	movieRepo := newFakeMovieRepo(
		&models.Movie{ID: 1, Popularity: 10},
		&models.Movie{ID: 2, Popularity: 80},
	)
	prefs := NewPreferenceService(newFakePrefRepo(), log)
	svc := NewRecommendationService(movieRepo, prefs, log)

	scored, err := svc.ForDevice(context.Background(), "fresh-device", 10)
	require.NoError(t, err)
	require.Len(t, scored, 2)
	assert.Equal(t, uint(2), scored[0].Movie.ID)
}

func TestForDeviceLimitClamp(t *testing.T) {
	log := testLogger()

	var seed []*models.Movie
	for i := uint(1); i <= 30; i++ {
		seed = append(seed, &models.Movie{ID: i, Popularity: float64(i)})
	}
	movieRepo := newFakeMovieRepo(seed...)
	svc := NewRecommendationService(movieRepo, NewPreferenceService(newFakePrefRepo(), log), log)

	scored, err := svc.ForDevice(context.Background(), "dev", 5)
	require.NoError(t, err)
	assert.Len(t, scored, 5)
}
