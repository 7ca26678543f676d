package services

import (
	"context"
	"testing"

	"moviematch-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestApplyVoteAccumulatesWeights(t *testing.T) {
	repo := newFakePrefRepo()
	svc := NewPreferenceService(repo, testLogger())

	drama := []models.Genre{{ID: 1, TMDBID: 18, Name: "Drama"}}

	require.NoError(t, svc.ApplyVote(context.Background(), "dev-1", models.VoteTypeUpvote, drama))
	require.NoError(t, svc.ApplyVote(context.Background(), "dev-1", models.VoteTypeUpvote, drama))
	require.NoError(t, svc.ApplyVote(context.Background(), "dev-1", models.VoteTypeSkip, drama))

	prefs := repo.byDevice["dev-1"]
	require.NotNil(t, prefs)
	assert.Equal(t, 3, prefs.VoteCount)

	weights := svc.GenreWeights(prefs)
	assert.InDelta(t, 1.75, weights["18"], 1e-9)
}

func TestApplyVoteMultipleGenres(t *testing.T) {
	repo := newFakePrefRepo()
	svc := NewPreferenceService(repo, testLogger())

	genres := []models.Genre{
		{ID: 1, TMDBID: 28, Name: "Action"},
		{ID: 2, TMDBID: 878, Name: "Science Fiction"},
	}

	require.NoError(t, svc.ApplyVote(context.Background(), "dev-2", models.VoteTypeUpvote, genres))

	weights := svc.GenreWeights(repo.byDevice["dev-2"])
	assert.Equal(t, 1.0, weights["28"])
	assert.Equal(t, 1.0, weights["878"])
}

func TestGenreWeightsNilProfile(t *testing.T) {
	svc := NewPreferenceService(newFakePrefRepo(), testLogger())

	weights := svc.GenreWeights(nil)
	assert.NotNil(t, weights)
	assert.Empty(t, weights)
}

func TestGenreWeightsCorruptBlobResets(t *testing.T) {
	svc := NewPreferenceService(newFakePrefRepo(), testLogger())

	prefs := &models.UserPreferences{
		DeviceID:     "dev-3",
		GenreWeights: datatypes.JSON([]byte("{not json")),
	}

	weights := svc.GenreWeights(prefs)
	assert.NotNil(t, weights)
	assert.Empty(t, weights)
}
