package repository

import (
	"context"
	"errors"
	"time"

	"moviematch-backend/internal/database"
	"moviematch-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type VoteRepository interface {
	// Insert records the vote unless one already exists for the
	// (movie, device) pair. It returns true when the vote was inserted and
	// false when an earlier vote won the uniqueness constraint.
	Insert(ctx context.Context, vote *models.Vote) (bool, error)
	// FindByMovieAndDevice returns the stored vote for the pair, or nil when
	// the device has not voted on the movie.
	FindByMovieAndDevice(ctx context.Context, movieID uint, deviceID string) (*models.Vote, error)
	FindByDevice(ctx context.Context, deviceID string, page, limit int) ([]models.Vote, int64, error)
	CountByDevice(ctx context.Context, deviceID string) (int64, error)
	CountVotesSince(ctx context.Context, voteType string, since time.Time, limit int) ([]models.MovieVoteCount, error)
}

type voteRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewVoteRepository(db *database.Database) VoteRepository {
	return &voteRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *voteRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *voteRepository) Insert(ctx context.Context, vote *models.Vote) (bool, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	// The first vote per (movie, device) wins; replays are a no-op.
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "movie_id"}, {Name: "device_id"}},
		DoNothing: true,
	}).Create(vote)
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

func (r *voteRepository) FindByMovieAndDevice(ctx context.Context, movieID uint, deviceID string) (*models.Vote, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var vote models.Vote
	err := r.db.WithContext(ctx).Where("movie_id = ? AND device_id = ?", movieID, deviceID).First(&vote).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &vote, nil
}

func (r *voteRepository) FindByDevice(ctx context.Context, deviceID string, page, limit int) ([]models.Vote, int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var votes []models.Vote
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Vote{}).Where("device_id = ?", deviceID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := query.Preload("Movie").Preload("Movie.Genres").
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&votes).Error
	if err != nil {
		return nil, 0, err
	}

	return votes, total, nil
}

func (r *voteRepository) CountByDevice(ctx context.Context, deviceID string) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var total int64
	err := r.db.WithContext(ctx).Model(&models.Vote{}).Where("device_id = ?", deviceID).Count(&total).Error
	return total, err
}

// CountVotesSince aggregates votes of the given type per movie inside a time
// window, ordered by count descending with movie ID as a stable tiebreak.
func (r *voteRepository) CountVotesSince(ctx context.Context, voteType string, since time.Time, limit int) ([]models.MovieVoteCount, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var counts []models.MovieVoteCount
	err := r.db.WithContext(ctx).Model(&models.Vote{}).
		Select("movie_id, COUNT(*) as vote_count").
		Where("vote_type = ? AND created_at >= ?", voteType, since).
		Group("movie_id").
		Order("vote_count DESC, movie_id ASC").
		Limit(limit).
		Find(&counts).Error
	if err != nil {
		return nil, err
	}

	return counts, nil
}
