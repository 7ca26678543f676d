package services

import (
	"context"
	"errors"
	"testing"

	"moviematch-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVoteFixture(t *testing.T) (VoteService, *fakeVoteRepo, *fakePrefRepo, string) {
	t.Helper()

	log := testLogger()
	movieRepo := newFakeMovieRepo(&models.Movie{
		ID:     1,
		TMDBID: 550,
		Title:  "Fight Club",
		Genres: []models.Genre{
			{ID: 1, TMDBID: 18, Name: "Drama"},
			{ID: 2, TMDBID: 53, Name: "Thriller"},
		},
	})
	voteRepo := newFakeVoteRepo()
	prefRepo := newFakePrefRepo()
	prefs := NewPreferenceService(prefRepo, log)
	devices := newTestDeviceService("vote-test-secret")

	svc := NewVoteService(voteRepo, movieRepo, prefs, devices, log)
	return svc, voteRepo, prefRepo, devices.Register()
}

func TestCastVoteRecordsAndUpdatesPreferences(t *testing.T) {
	svc, _, prefRepo, deviceID := newVoteFixture(t)

	result, err := svc.CastVote(context.Background(), VoteRequest{
		MovieID:  1,
		DeviceID: deviceID,
		VoteType: models.VoteTypeUpvote,
	})
	require.NoError(t, err)

	assert.False(t, result.Duplicate)
	assert.EqualValues(t, 1, result.VoteCount)
	assert.NotEmpty(t, result.Vote.SessionID)

	prefs := prefRepo.byDevice[deviceID]
	require.NotNil(t, prefs)
	assert.Equal(t, 1, prefs.VoteCount)
	assert.False(t, prefs.LastSeenAt.IsZero())

	weights := decodeWeights(t, prefs)
	assert.Equal(t, 1.0, weights["18"])
	assert.Equal(t, 1.0, weights["53"])
}

func TestCastVoteDeduplicates(t *testing.T) {
	svc, _, prefRepo, deviceID := newVoteFixture(t)

	first, err := svc.CastVote(context.Background(), VoteRequest{
		MovieID: 1, DeviceID: deviceID, VoteType: models.VoteTypeUpvote,
	})
	require.NoError(t, err)
	require.False(t, first.Duplicate)

	// Replay with a different vote type: the first vote wins and the
	// preference profile stays untouched.
	second, err := svc.CastVote(context.Background(), VoteRequest{
		MovieID: 1, DeviceID: deviceID, VoteType: models.VoteTypeSkip,
	})
	require.NoError(t, err)
	assert.True(t, second.Duplicate)
	assert.EqualValues(t, 1, second.VoteCount)
	require.NotNil(t, second.Vote)
	assert.Equal(t, models.VoteTypeUpvote, second.Vote.VoteType, "duplicate response carries the stored vote, not the replay")
	assert.Equal(t, first.Vote.SessionID, second.Vote.SessionID)

	prefs := prefRepo.byDevice[deviceID]
	require.NotNil(t, prefs)
	assert.Equal(t, 1, prefs.VoteCount)
	weights := decodeWeights(t, prefs)
	assert.Equal(t, 1.0, weights["18"], "skip replay must not erode the upvote weight")
}

func TestCastVoteSkipLowersGenreWeights(t *testing.T) {
	svc, _, prefRepo, deviceID := newVoteFixture(t)

	_, err := svc.CastVote(context.Background(), VoteRequest{
		MovieID: 1, DeviceID: deviceID, VoteType: models.VoteTypeSkip,
	})
	require.NoError(t, err)

	weights := decodeWeights(t, prefRepo.byDevice[deviceID])
	assert.Equal(t, -0.25, weights["18"])
}

func TestCastVoteNotSeenKeepsWeightsNeutral(t *testing.T) {
	svc, _, prefRepo, deviceID := newVoteFixture(t)

	_, err := svc.CastVote(context.Background(), VoteRequest{
		MovieID: 1, DeviceID: deviceID, VoteType: models.VoteTypeNotSeen,
	})
	require.NoError(t, err)

	prefs := prefRepo.byDevice[deviceID]
	require.NotNil(t, prefs)
	assert.Equal(t, 1, prefs.VoteCount)
	weights := decodeWeights(t, prefs)
	assert.Empty(t, weights)
}

func TestCastVoteRejectsInvalidVoteType(t *testing.T) {
	svc, _, _, deviceID := newVoteFixture(t)

	_, err := svc.CastVote(context.Background(), VoteRequest{
		MovieID: 1, DeviceID: deviceID, VoteType: "love",
	})
	assert.ErrorIs(t, err, ErrInvalidVoteType)
}

func TestCastVoteRejectsUnsignedDeviceID(t *testing.T) {
	svc, _, _, _ := newVoteFixture(t)

	_, err := svc.CastVote(context.Background(), VoteRequest{
		MovieID: 1, DeviceID: "raw-browser-fingerprint", VoteType: models.VoteTypeUpvote,
	})
	assert.ErrorIs(t, err, ErrInvalidDeviceID)
}

func TestCastVoteRejectsUnknownMovie(t *testing.T) {
	svc, _, _, deviceID := newVoteFixture(t)

	_, err := svc.CastVote(context.Background(), VoteRequest{
		MovieID: 999, DeviceID: deviceID, VoteType: models.VoteTypeUpvote,
	})
	assert.ErrorIs(t, err, ErrMovieNotFound)
}

func TestCastVoteMovieLookupFailureIsNotA404(t *testing.T) {
	log := testLogger()
	movieRepo := newFakeMovieRepo()
	movieRepo.err = errors.New("connection reset")
	devices := newTestDeviceService("vote-test-secret")
	svc := NewVoteService(newFakeVoteRepo(), movieRepo, NewPreferenceService(newFakePrefRepo(), log), devices, log)

	_, err := svc.CastVote(context.Background(), VoteRequest{
		MovieID: 1, DeviceID: devices.Register(), VoteType: models.VoteTypeUpvote,
	})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrMovieNotFound, "infrastructure failures must not masquerade as missing movies")
}

func TestCastVotePreservesProvidedSessionID(t *testing.T) {
	svc, voteRepo, _, deviceID := newVoteFixture(t)

	result, err := svc.CastVote(context.Background(), VoteRequest{
		MovieID: 1, DeviceID: deviceID, VoteType: models.VoteTypeUpvote, SessionID: "session-42",
	})
	require.NoError(t, err)
	assert.Equal(t, "session-42", result.Vote.SessionID)
	assert.Equal(t, "session-42", voteRepo.votes[deviceID][1].SessionID)
}

func decodeWeights(t *testing.T, prefs *models.UserPreferences) map[string]float64 {
	t.Helper()
	log := testLogger()
	return NewPreferenceService(newFakePrefRepo(), log).GenreWeights(prefs)
}
