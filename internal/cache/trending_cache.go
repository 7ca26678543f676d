package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"moviematch-backend/internal/config"
	"moviematch-backend/internal/models"

	goredis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// TrendingCache is an optional Redis layer in front of the trending_cache
// table. A nil *TrendingCache is valid and behaves as a permanent miss, so
// callers never need to branch on whether Redis is configured.
type TrendingCache struct {
	rdb    *goredis.Client
	logger *logrus.Logger
}

// NewTrendingCache returns nil (no error) when no Redis address is
// configured. The DB snapshot stays authoritative either way.
func NewTrendingCache(cfg config.RedisConfig, logger *logrus.Logger) (*TrendingCache, error) {
	if cfg.Addr == "" {
		return nil, nil
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: cfg.DialTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), cfg.DialTimeout)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	logger.WithField("addr", cfg.Addr).Info("Redis trending cache initialized")

	return &TrendingCache{
		rdb:    rdb,
		logger: logger,
	}, nil
}

func trendingKey(period string) string {
	return "trending:" + period
}

func (c *TrendingCache) Get(ctx context.Context, period string) ([]models.TrendingCache, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, trendingKey(period)).Bytes()
	if err != nil {
		if err != goredis.Nil {
			c.logger.WithError(err).WithField("period", period).Warn("Redis trending read failed")
		}
		return nil, false
	}

	var entries []models.TrendingCache
	if err := json.Unmarshal(raw, &entries); err != nil {
		c.logger.WithError(err).WithField("period", period).Warn("Corrupt trending cache entry, ignoring")
		return nil, false
	}

	return entries, true
}

func (c *TrendingCache) Set(ctx context.Context, period string, entries []models.TrendingCache, ttl time.Duration) {
	if c == nil || c.rdb == nil {
		return
	}

	raw, err := json.Marshal(entries)
	if err != nil {
		c.logger.WithError(err).Warn("Failed to marshal trending snapshot for Redis")
		return
	}

	if err := c.rdb.Set(ctx, trendingKey(period), raw, ttl).Err(); err != nil {
		c.logger.WithError(err).WithField("period", period).Warn("Redis trending write failed")
	}
}

func (c *TrendingCache) Invalidate(ctx context.Context, period string) {
	if c == nil || c.rdb == nil {
		return
	}

	if err := c.rdb.Del(ctx, trendingKey(period)).Err(); err != nil {
		c.logger.WithError(err).WithField("period", period).Warn("Redis trending invalidate failed")
	}
}

func (c *TrendingCache) HealthCheck(ctx context.Context) error {
	if c == nil || c.rdb == nil {
		return nil
	}
	return c.rdb.Ping(ctx).Err()
}

func (c *TrendingCache) Close() error {
	if c == nil || c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}
