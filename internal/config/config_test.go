package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable Load reads so host environment leakage
// cannot change what a test observes.
func clearEnv(t *testing.T) {
	t.Helper()
	keys := []string{
		"SERVER_PORT", "SERVER_READ_TIMEOUT", "SERVER_WRITE_TIMEOUT",
		"DB_DRIVER", "DB_SQLITE_PATH", "DB_HOST", "DB_PORT", "DB_USER",
		"DB_PASSWORD", "DB_NAME", "DB_SSLMODE", "DB_MAX_OPEN_CONNS",
		"DB_MAX_IDLE_CONNS", "DB_CONN_MAX_LIFETIME", "DB_QUERY_TIMEOUT",
		"TMDB_API_KEY", "TMDB_BASE_URL", "TMDB_HTTP_TIMEOUT",
		"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB", "REDIS_DIAL_TIMEOUT",
		"DEVICE_SIGNING_SECRET",
		"TRENDING_RECOMPUTE_INTERVAL", "TRENDING_TOP_N",
		"AWS_ENDPOINT", "AWS_ACCESS_KEY_ID", "AWS_SECRET_ACCESS_KEY",
		"AWS_BUCKET", "AWS_DEFAULT_REGION", "AWS_USE_SSL", "AWS_URL",
	}
	for _, key := range keys {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()

	assert.Equal(t, "8010", cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "moviematch.db", cfg.Database.SQLitePath)
	assert.Equal(t, 10*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, "https://api.themoviedb.org/3", cfg.TMDB.BaseURL)
	assert.Empty(t, cfg.Redis.Addr, "hot cache is off unless REDIS_ADDR is set")
	assert.Equal(t, 15*time.Minute, cfg.Trending.RecomputeInterval)
	assert.Equal(t, 50, cfg.Trending.TopN)
	assert.Equal(t, "movie-artwork", cfg.MinIO.BucketName)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_QUERY_TIMEOUT", "2s")
	t.Setenv("TRENDING_RECOMPUTE_INTERVAL", "1m")
	t.Setenv("TRENDING_TOP_N", "10")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg := Load()

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, 2*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, time.Minute, cfg.Trending.RecomputeInterval)
	assert.Equal(t, 10, cfg.Trending.TopN)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("TRENDING_TOP_N", "lots")
	t.Setenv("DB_QUERY_TIMEOUT", "soon")

	cfg := Load()

	assert.Equal(t, 50, cfg.Trending.TopN)
	assert.Equal(t, 10*time.Second, cfg.Database.QueryTimeout)
}

func validConfig() *Config {
	return &Config{
		Database: DatabaseConfig{Driver: "sqlite", SQLitePath: "moviematch.db"},
		TMDB:     TMDBConfig{APIKey: "test-key"},
		Device:   DeviceConfig{SigningSecret: "test-secret"},
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, validConfig().Validate())

	cfg := validConfig()
	cfg.TMDB.APIKey = ""
	assert.ErrorContains(t, cfg.Validate(), "TMDB_API_KEY")

	cfg = validConfig()
	cfg.Device.SigningSecret = ""
	assert.ErrorContains(t, cfg.Validate(), "DEVICE_SIGNING_SECRET")

	cfg = validConfig()
	cfg.Database.SQLitePath = ""
	assert.ErrorContains(t, cfg.Validate(), "DB_SQLITE_PATH")

	cfg = validConfig()
	cfg.Database.Driver = "postgres"
	cfg.Database.Host = ""
	assert.ErrorContains(t, cfg.Validate(), "DB_HOST")

	cfg = validConfig()
	cfg.Database.Driver = "oracle"
	assert.ErrorContains(t, cfg.Validate(), "unsupported DB_DRIVER")
}

func TestValidateMinIOOnlyWhenConfigured(t *testing.T) {
	cfg := validConfig()
	require.NoError(t, cfg.Validate(), "empty endpoint means artwork storage is off")

	cfg.MinIO.Endpoint = "localhost:9000"
	assert.ErrorContains(t, cfg.Validate(), "AWS_ACCESS_KEY_ID")

	cfg.MinIO.AccessKeyID = "minio"
	assert.ErrorContains(t, cfg.Validate(), "AWS_SECRET_ACCESS_KEY")

	cfg.MinIO.SecretAccessKey = "minio123"
	assert.NoError(t, cfg.Validate())
}

func TestGetDSN(t *testing.T) {
	cfg := validConfig()
	cfg.Database = DatabaseConfig{
		Driver:   "postgres",
		Host:     "db.internal",
		Port:     "5432",
		User:     "app",
		Password: "secret",
		DBName:   "moviematch_db",
		SSLMode:  "disable",
	}
	assert.Equal(t,
		"host=db.internal port=5432 user=app password=secret dbname=moviematch_db sslmode=disable",
		cfg.GetDSN(),
	)
}
