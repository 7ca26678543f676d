package services

import (
	"context"
	"fmt"
	"time"

	"moviematch-backend/internal/cache"
	"moviematch-backend/internal/config"
	"moviematch-backend/internal/models"
	"moviematch-backend/internal/repository"

	"github.com/sirupsen/logrus"
)

type TrendingService interface {
	GetTrending(ctx context.Context, period string, limit int) ([]models.TrendingCache, error)
	// Recompute rebuilds the snapshot for one period and returns the number
	// of ranked movies.
	Recompute(ctx context.Context, period string) (int, error)
	// RecomputeAll rebuilds every period; the first error aborts the run.
	RecomputeAll(ctx context.Context) error
}

type trendingService struct {
	trendingRepo repository.TrendingRepository
	voteRepo     repository.VoteRepository
	hotCache     *cache.TrendingCache
	cfg          config.TrendingConfig
	logger       *logrus.Logger
}

func NewTrendingService(trendingRepo repository.TrendingRepository, voteRepo repository.VoteRepository, hotCache *cache.TrendingCache, cfg config.TrendingConfig, logger *logrus.Logger) TrendingService {
	return &trendingService{
		trendingRepo: trendingRepo,
		voteRepo:     voteRepo,
		hotCache:     hotCache,
		cfg:          cfg,
		logger:       logger,
	}
}

// periodWindow returns how far back the vote aggregation looks.
func periodWindow(period string) (time.Duration, error) {
	switch period {
	case models.TrendingPeriodDay:
		return 24 * time.Hour, nil
	case models.TrendingPeriodWeek:
		return 7 * 24 * time.Hour, nil
	case models.TrendingPeriodMonth:
		return 30 * 24 * time.Hour, nil
	}
	return 0, ErrInvalidPeriod
}

func (s *trendingService) GetTrending(ctx context.Context, period string, limit int) ([]models.TrendingCache, error) {
	if !models.ValidTrendingPeriod(period) {
		return nil, ErrInvalidPeriod
	}
	if limit < 1 || limit > s.cfg.TopN {
		limit = s.cfg.TopN
	}

	if entries, ok := s.hotCache.Get(ctx, period); ok {
		if len(entries) > limit {
			entries = entries[:limit]
		}
		return entries, nil
	}

	entries, err := s.trendingRepo.FindByPeriod(ctx, period, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load trending snapshot: %w", err)
	}
	return entries, nil
}

func (s *trendingService) Recompute(ctx context.Context, period string) (int, error) {
	window, err := periodWindow(period)
	if err != nil {
		return 0, err
	}

	now := time.Now().UTC()
	counts, err := s.voteRepo.CountVotesSince(ctx, models.VoteTypeUpvote, now.Add(-window), s.cfg.TopN)
	if err != nil {
		return 0, fmt.Errorf("failed to aggregate votes: %w", err)
	}

	previous, err := s.trendingRepo.FindByPeriod(ctx, period, s.cfg.TopN)
	if err != nil {
		return 0, fmt.Errorf("failed to load previous snapshot: %w", err)
	}
	prevCounts := make(map[uint]int64, len(previous))
	for _, e := range previous {
		prevCounts[e.MovieID] = e.VoteCount
	}

	entries := BuildSnapshot(counts, prevCounts, now)

	if err := s.trendingRepo.ReplaceSnapshot(ctx, period, entries); err != nil {
		return 0, fmt.Errorf("failed to store snapshot: %w", err)
	}

	// Re-read with movies preloaded so the hot cache serves full rows.
	fresh, err := s.trendingRepo.FindByPeriod(ctx, period, s.cfg.TopN)
	if err == nil {
		s.hotCache.Set(ctx, period, fresh, 2*s.cfg.RecomputeInterval)
	} else {
		s.hotCache.Invalidate(ctx, period)
	}

	s.logger.WithFields(logrus.Fields{
		"period": period,
		"movies": len(entries),
	}).Info("Trending snapshot recomputed")

	return len(entries), nil
}

func (s *trendingService) RecomputeAll(ctx context.Context) error {
	for _, period := range models.TrendingPeriods {
		if _, err := s.Recompute(ctx, period); err != nil {
			return fmt.Errorf("recompute %s: %w", period, err)
		}
	}
	return nil
}

// BuildSnapshot turns windowed vote counts into ranked snapshot rows.
// Counts must already be ordered by count descending, movie ID ascending;
// ranks are assigned 1..n in that order. Percent change compares against the
// previous snapshot and is 0 for movies that were not in it.
func BuildSnapshot(counts []models.MovieVoteCount, previous map[uint]int64, now time.Time) []models.TrendingCache {
	entries := make([]models.TrendingCache, 0, len(counts))
	for i, c := range counts {
		var change float64
		if prev, ok := previous[c.MovieID]; ok && prev > 0 {
			change = float64(c.VoteCount-prev) / float64(prev) * 100
		}
		entries = append(entries, models.TrendingCache{
			MovieID:       c.MovieID,
			VoteCount:     c.VoteCount,
			Rank:          i + 1,
			PercentChange: change,
			UpdatedAt:     now,
		})
	}
	return entries
}
