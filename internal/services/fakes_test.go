package services

import (
	"context"
	"sort"
	"time"

	"moviematch-backend/internal/models"
	"moviematch-backend/internal/repository"

	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

type fakeMovieRepo struct {
	movies map[uint]*models.Movie
	// voted[deviceID] holds movie IDs excluded from FindUnvoted.
	voted map[string]map[uint]bool
	err   error
}

func newFakeMovieRepo(movies ...*models.Movie) *fakeMovieRepo {
	r := &fakeMovieRepo{
		movies: make(map[uint]*models.Movie),
		voted:  make(map[string]map[uint]bool),
	}
	for _, m := range movies {
		r.movies[m.ID] = m
	}
	return r
}

func (r *fakeMovieRepo) Create(ctx context.Context, movie *models.Movie) error {
	r.movies[movie.ID] = movie
	return nil
}

func (r *fakeMovieRepo) Update(ctx context.Context, movie *models.Movie) error {
	r.movies[movie.ID] = movie
	return nil
}

func (r *fakeMovieRepo) Delete(ctx context.Context, id uint) error {
	delete(r.movies, id)
	return nil
}

func (r *fakeMovieRepo) FindByID(ctx context.Context, id uint) (*models.Movie, error) {
	if r.err != nil {
		return nil, r.err
	}
	m, ok := r.movies[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return m, nil
}

func (r *fakeMovieRepo) FindByTMDBID(ctx context.Context, tmdbID int, mediaType string) (*models.Movie, error) {
	for _, m := range r.movies {
		if m.TMDBID == tmdbID && m.MediaType == mediaType {
			return m, nil
		}
	}
	return nil, nil
}

func (r *fakeMovieRepo) FindAll(ctx context.Context, page, limit int, search, sortBy, order, mediaType string) ([]models.Movie, int64, error) {
	var out []models.Movie
	for _, m := range r.movies {
		out = append(out, *m)
	}
	return out, int64(len(out)), nil
}

func (r *fakeMovieRepo) FindUnvoted(ctx context.Context, deviceID string, genreID int, limit int) ([]models.Movie, error) {
	var out []models.Movie
	for _, m := range r.movies {
		if r.voted[deviceID][m.ID] {
			continue
		}
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Popularity != out[j].Popularity {
			return out[i].Popularity > out[j].Popularity
		}
		return out[i].ID < out[j].ID
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeMovieRepo) GetDashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	return &models.DashboardStats{TotalMovies: int64(len(r.movies))}, nil
}

func (r *fakeMovieRepo) CreateSyncLog(ctx context.Context, log *models.SyncLog) error {
	return nil
}

func (r *fakeMovieRepo) GetLastSyncLog(ctx context.Context) (*models.SyncLog, error) {
	return nil, nil
}

type fakeVoteRepo struct {
	votes  map[string]map[uint]*models.Vote // deviceID -> movieID -> vote
	counts []models.MovieVoteCount
	err    error
}

func newFakeVoteRepo() *fakeVoteRepo {
	return &fakeVoteRepo{votes: make(map[string]map[uint]*models.Vote)}
}

func (r *fakeVoteRepo) Insert(ctx context.Context, vote *models.Vote) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	if r.votes[vote.DeviceID] == nil {
		r.votes[vote.DeviceID] = make(map[uint]*models.Vote)
	}
	if _, exists := r.votes[vote.DeviceID][vote.MovieID]; exists {
		return false, nil
	}
	r.votes[vote.DeviceID][vote.MovieID] = vote
	return true, nil
}

func (r *fakeVoteRepo) FindByMovieAndDevice(ctx context.Context, movieID uint, deviceID string) (*models.Vote, error) {
	if r.err != nil {
		return nil, r.err
	}
	v, ok := r.votes[deviceID][movieID]
	if !ok {
		return nil, nil
	}
	return v, nil
}

func (r *fakeVoteRepo) FindByDevice(ctx context.Context, deviceID string, page, limit int) ([]models.Vote, int64, error) {
	var out []models.Vote
	for _, v := range r.votes[deviceID] {
		out = append(out, *v)
	}
	return out, int64(len(out)), nil
}

func (r *fakeVoteRepo) CountByDevice(ctx context.Context, deviceID string) (int64, error) {
	return int64(len(r.votes[deviceID])), nil
}

func (r *fakeVoteRepo) CountVotesSince(ctx context.Context, voteType string, since time.Time, limit int) ([]models.MovieVoteCount, error) {
	if len(r.counts) > limit {
		return r.counts[:limit], nil
	}
	return r.counts, nil
}

type fakePrefRepo struct {
	byDevice map[string]*models.UserPreferences
	err      error
}

func newFakePrefRepo() *fakePrefRepo {
	return &fakePrefRepo{byDevice: make(map[string]*models.UserPreferences)}
}

func (r *fakePrefRepo) FindByDevice(ctx context.Context, deviceID string) (*models.UserPreferences, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.byDevice[deviceID], nil
}

func (r *fakePrefRepo) Upsert(ctx context.Context, prefs *models.UserPreferences) error {
	if r.err != nil {
		return r.err
	}
	if prefs.ID == 0 {
		prefs.ID = uint(len(r.byDevice) + 1)
	}
	r.byDevice[prefs.DeviceID] = prefs
	return nil
}

type fakeTrendingRepo struct {
	byPeriod map[string][]models.TrendingCache
}

func newFakeTrendingRepo() *fakeTrendingRepo {
	return &fakeTrendingRepo{byPeriod: make(map[string][]models.TrendingCache)}
}

func (r *fakeTrendingRepo) FindByPeriod(ctx context.Context, period string, limit int) ([]models.TrendingCache, error) {
	entries := r.byPeriod[period]
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

func (r *fakeTrendingRepo) ReplaceSnapshot(ctx context.Context, period string, entries []models.TrendingCache) error {
	for i := range entries {
		entries[i].Period = period
	}
	r.byPeriod[period] = entries
	return nil
}
