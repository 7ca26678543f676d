package repository

import (
	"context"
	"testing"
	"time"

	"moviematch-backend/internal/config"
	"moviematch-backend/internal/database"
	"moviematch-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *database.Database {
	t.Helper()

	db, err := database.Connect(config.DatabaseConfig{
		Driver:       "sqlite",
		SQLitePath:   "file::memory:",
		QueryTimeout: 5 * time.Second,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func seedMovie(t *testing.T, db *database.Database, id uint, title string) {
	t.Helper()
	movie := &models.Movie{
		ID:        id,
		TMDBID:    int(id) + 1000,
		MediaType: "movie",
		Title:     title,
	}
	require.NoError(t, db.DB.Create(movie).Error)
}

func TestVoteInsertDeduplicates(t *testing.T) {
	db := newTestDB(t)
	repo := NewVoteRepository(db)
	ctx := context.Background()

	seedMovie(t, db, 1, "Heat")

	first := &models.Vote{MovieID: 1, DeviceID: "device-a", VoteType: models.VoteTypeUpvote}
	inserted, err := repo.Insert(ctx, first)
	require.NoError(t, err)
	assert.True(t, inserted)

	// Replay from the same device hits the unique index and is a no-op,
	// even with a different vote type.
	replay := &models.Vote{MovieID: 1, DeviceID: "device-a", VoteType: models.VoteTypeSkip}
	inserted, err = repo.Insert(ctx, replay)
	require.NoError(t, err)
	assert.False(t, inserted)

	// A different device still gets its own vote.
	other := &models.Vote{MovieID: 1, DeviceID: "device-b", VoteType: models.VoteTypeUpvote}
	inserted, err = repo.Insert(ctx, other)
	require.NoError(t, err)
	assert.True(t, inserted)

	votes, total, err := repo.FindByDevice(ctx, "device-a", 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, votes, 1)
	assert.Equal(t, models.VoteTypeUpvote, votes[0].VoteType, "the first vote wins")

	stored, err := repo.FindByMovieAndDevice(ctx, 1, "device-a")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, models.VoteTypeUpvote, stored.VoteType)

	missing, err := repo.FindByMovieAndDevice(ctx, 1, "device-c")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestVoteCountByDevice(t *testing.T) {
	db := newTestDB(t)
	repo := NewVoteRepository(db)
	ctx := context.Background()

	seedMovie(t, db, 1, "Heat")
	seedMovie(t, db, 2, "Ronin")

	for movieID := uint(1); movieID <= 2; movieID++ {
		_, err := repo.Insert(ctx, &models.Vote{MovieID: movieID, DeviceID: "device-a", VoteType: models.VoteTypeUpvote})
		require.NoError(t, err)
	}

	total, err := repo.CountByDevice(ctx, "device-a")
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)

	total, err = repo.CountByDevice(ctx, "device-b")
	require.NoError(t, err)
	assert.EqualValues(t, 0, total)
}

func TestCountVotesSinceOrdersAndFilters(t *testing.T) {
	db := newTestDB(t)
	repo := NewVoteRepository(db)
	ctx := context.Background()

	seedMovie(t, db, 1, "Heat")
	seedMovie(t, db, 2, "Ronin")
	seedMovie(t, db, 3, "Collateral")

	// Movie 2 gets three upvotes, movie 1 gets two, movie 3 gets one
	// upvote plus skips that must not count.
	votes := []models.Vote{
		{MovieID: 2, DeviceID: "d1", VoteType: models.VoteTypeUpvote},
		{MovieID: 2, DeviceID: "d2", VoteType: models.VoteTypeUpvote},
		{MovieID: 2, DeviceID: "d3", VoteType: models.VoteTypeUpvote},
		{MovieID: 1, DeviceID: "d1", VoteType: models.VoteTypeUpvote},
		{MovieID: 1, DeviceID: "d2", VoteType: models.VoteTypeUpvote},
		{MovieID: 3, DeviceID: "d1", VoteType: models.VoteTypeUpvote},
		{MovieID: 3, DeviceID: "d2", VoteType: models.VoteTypeSkip},
		{MovieID: 3, DeviceID: "d3", VoteType: models.VoteTypeSkip},
	}
	for i := range votes {
		inserted, err := repo.Insert(ctx, &votes[i])
		require.NoError(t, err)
		require.True(t, inserted)
	}

	since := time.Now().UTC().Add(-time.Hour)
	counts, err := repo.CountVotesSince(ctx, models.VoteTypeUpvote, since, 10)
	require.NoError(t, err)

	require.Len(t, counts, 3)
	assert.Equal(t, uint(2), counts[0].MovieID)
	assert.EqualValues(t, 3, counts[0].VoteCount)
	assert.Equal(t, uint(1), counts[1].MovieID)
	assert.EqualValues(t, 2, counts[1].VoteCount)
	assert.Equal(t, uint(3), counts[2].MovieID)
	assert.EqualValues(t, 1, counts[2].VoteCount)
}

func TestCountVotesSinceTiebreakAndWindow(t *testing.T) {
	db := newTestDB(t)
	repo := NewVoteRepository(db)
	ctx := context.Background()

	seedMovie(t, db, 5, "Heat")
	seedMovie(t, db, 9, "Ronin")

	for _, movieID := range []uint{9, 5} {
		_, err := repo.Insert(ctx, &models.Vote{MovieID: movieID, DeviceID: "d1", VoteType: models.VoteTypeUpvote})
		require.NoError(t, err)
	}

	counts, err := repo.CountVotesSince(ctx, models.VoteTypeUpvote, time.Now().UTC().Add(-time.Hour), 10)
	require.NoError(t, err)
	require.Len(t, counts, 2)
	assert.Equal(t, uint(5), counts[0].MovieID, "ties break on ascending movie ID")
	assert.Equal(t, uint(9), counts[1].MovieID)

	// A window starting in the future excludes everything.
	counts, err = repo.CountVotesSince(ctx, models.VoteTypeUpvote, time.Now().UTC().Add(time.Hour), 10)
	require.NoError(t, err)
	assert.Empty(t, counts)
}

func TestCountVotesSinceRespectsLimit(t *testing.T) {
	db := newTestDB(t)
	repo := NewVoteRepository(db)
	ctx := context.Background()

	for id := uint(1); id <= 4; id++ {
		seedMovie(t, db, id, "Movie")
		_, err := repo.Insert(ctx, &models.Vote{MovieID: id, DeviceID: "d1", VoteType: models.VoteTypeUpvote})
		require.NoError(t, err)
	}

	counts, err := repo.CountVotesSince(ctx, models.VoteTypeUpvote, time.Now().UTC().Add(-time.Hour), 2)
	require.NoError(t, err)
	assert.Len(t, counts, 2)
}
