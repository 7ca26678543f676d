package scheduler

import (
	"context"
	"time"

	"moviematch-backend/internal/services"

	"github.com/sirupsen/logrus"
)

// TrendingScheduler periodically rebuilds the trending snapshots. One run
// happens immediately at startup so a fresh deploy serves rankings without
// waiting a full interval.
type TrendingScheduler struct {
	trending services.TrendingService
	interval time.Duration
	logger   *logrus.Logger
	done     chan struct{}
}

func NewTrendingScheduler(trending services.TrendingService, interval time.Duration, logger *logrus.Logger) *TrendingScheduler {
	return &TrendingScheduler{
		trending: trending,
		interval: interval,
		logger:   logger,
		done:     make(chan struct{}),
	}
}

// Start runs the recompute loop until ctx is cancelled.
func (s *TrendingScheduler) Start(ctx context.Context) {
	go func() {
		defer close(s.done)

		s.logger.WithField("interval", s.interval).Info("Trending scheduler started")
		s.recompute(ctx)

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				s.logger.Info("Trending scheduler stopped")
				return
			case <-ticker.C:
				s.recompute(ctx)
			}
		}
	}()
}

// Wait blocks until the loop has exited after cancellation.
func (s *TrendingScheduler) Wait() {
	<-s.done
}

func (s *TrendingScheduler) recompute(ctx context.Context) {
	runCtx, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	if err := s.trending.RecomputeAll(runCtx); err != nil {
		if ctx.Err() != nil {
			return
		}
		s.logger.WithError(err).Error("Trending recompute failed")
	}
}
