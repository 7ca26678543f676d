package repository

import (
	"context"
	"time"

	"moviematch-backend/internal/database"
	"moviematch-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TrendingRepository interface {
	FindByPeriod(ctx context.Context, period string, limit int) ([]models.TrendingCache, error)
	// ReplaceSnapshot upserts the given rows for a period and removes rows
	// for movies that dropped out of the window, in one transaction.
	ReplaceSnapshot(ctx context.Context, period string, entries []models.TrendingCache) error
}

type trendingRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewTrendingRepository(db *database.Database) TrendingRepository {
	return &trendingRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *trendingRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *trendingRepository) FindByPeriod(ctx context.Context, period string, limit int) ([]models.TrendingCache, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var entries []models.TrendingCache
	err := r.db.WithContext(ctx).
		Preload("Movie").Preload("Movie.Genres").
		Where("period = ?", period).
		Order("rank ASC").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *trendingRepository) ReplaceSnapshot(ctx context.Context, period string, entries []models.TrendingCache) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		keep := make([]uint, 0, len(entries))
		for i := range entries {
			entries[i].Period = period
			keep = append(keep, entries[i].MovieID)
		}

		if len(entries) > 0 {
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "movie_id"}, {Name: "period"}},
				DoUpdates: clause.AssignmentColumns([]string{"vote_count", "rank", "percent_change", "updated_at"}),
			}).Create(&entries).Error
			if err != nil {
				return err
			}
		}

		prune := tx.Where("period = ?", period)
		if len(keep) > 0 {
			prune = prune.Where("movie_id NOT IN ?", keep)
		}
		return prune.Delete(&models.TrendingCache{}).Error
	})
}
