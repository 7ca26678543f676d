package repository

import (
	"context"
	"errors"
	"time"

	"moviematch-backend/internal/database"
	"moviematch-backend/internal/models"

	"gorm.io/gorm"
)

type MovieRepository interface {
	// CRUD operations
	Create(ctx context.Context, movie *models.Movie) error
	Update(ctx context.Context, movie *models.Movie) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*models.Movie, error)
	FindByTMDBID(ctx context.Context, tmdbID int, mediaType string) (*models.Movie, error)
	FindAll(ctx context.Context, page, limit int, search, sortBy, order, mediaType string) ([]models.Movie, int64, error)

	// Deck operations
	FindUnvoted(ctx context.Context, deviceID string, genreID int, limit int) ([]models.Movie, error)

	// Dashboard operations
	GetDashboardStats(ctx context.Context) (*models.DashboardStats, error)

	// Sync log operations
	CreateSyncLog(ctx context.Context, log *models.SyncLog) error
	GetLastSyncLog(ctx context.Context) (*models.SyncLog, error)
}

type movieRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewMovieRepository(db *database.Database) MovieRepository {
	return &movieRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *movieRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *movieRepository) Create(ctx context.Context, movie *models.Movie) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Create(movie).Error
}

func (r *movieRepository) Update(ctx context.Context, movie *models.Movie) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Save(movie).Error
}

func (r *movieRepository) Delete(ctx context.Context, id uint) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Delete(&models.Movie{}, id).Error
}

func (r *movieRepository) FindByID(ctx context.Context, id uint) (*models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movie models.Movie
	err := r.db.WithContext(ctx).Preload("Genres").First(&movie, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &movie, nil
}

func (r *movieRepository) FindByTMDBID(ctx context.Context, tmdbID int, mediaType string) (*models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movie models.Movie
	err := r.db.WithContext(ctx).Where("tmdb_id = ? AND media_type = ?", tmdbID, mediaType).First(&movie).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &movie, nil
}

func (r *movieRepository) FindAll(ctx context.Context, page, limit int, search, sortBy, order, mediaType string) ([]models.Movie, int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movies []models.Movie
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Movie{})

	// Apply search filter
	if search != "" {
		searchPattern := "%" + search + "%"
		query = query.Where("title LIKE ? OR overview LIKE ? OR original_title LIKE ?",
			searchPattern, searchPattern, searchPattern)
	}

	if mediaType != "" {
		query = query.Where("media_type = ?", mediaType)
	}

	// Count total records
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Apply sorting with validation
	validSortFields := map[string]bool{
		"id": true, "title": true, "release_date": true, "vote_average": true,
		"popularity": true, "cached_at": true, "created_at": true, "updated_at": true,
	}
	if !validSortFields[sortBy] {
		sortBy = "popularity"
	}
	if order != "ASC" && order != "asc" {
		order = "DESC"
	}
	query = query.Order(sortBy + " " + order)

	// Apply pagination
	offset := (page - 1) * limit
	if err := query.Preload("Genres").Offset(offset).Limit(limit).Find(&movies).Error; err != nil {
		return nil, 0, err
	}

	return movies, total, nil
}

// FindUnvoted returns the highest-popularity movies the device has not voted
// on yet. genreID of 0 means no genre filter.
func (r *movieRepository) FindUnvoted(ctx context.Context, deviceID string, genreID int, limit int) ([]models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := r.db.WithContext(ctx).Model(&models.Movie{}).
		Where("movies.id NOT IN (?)",
			r.db.WithContext(ctx).Model(&models.Vote{}).Select("movie_id").Where("device_id = ?", deviceID))

	if genreID > 0 {
		query = query.
			Joins("JOIN movie_genres ON movie_genres.movie_id = movies.id").
			Joins("JOIN genres ON genres.id = movie_genres.genre_id").
			Where("genres.tmdb_id = ?", genreID)
	}

	var movies []models.Movie
	err := query.Preload("Genres").
		Order("popularity DESC").
		Limit(limit).
		Find(&movies).Error
	if err != nil {
		return nil, err
	}

	return movies, nil
}

func (r *movieRepository) GetDashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var stats models.DashboardStats
	db := r.db.WithContext(ctx)

	// Total movies
	if err := db.Model(&models.Movie{}).Count(&stats.TotalMovies).Error; err != nil {
		return nil, err
	}

	// Vote totals
	if err := db.Model(&models.Vote{}).Count(&stats.TotalVotes).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Vote{}).Distinct("device_id").Count(&stats.TotalDevices).Error; err != nil {
		return nil, err
	}
	if stats.TotalVotes > 0 {
		var upvotes int64
		if err := db.Model(&models.Vote{}).Where("vote_type = ?", models.VoteTypeUpvote).Count(&upvotes).Error; err != nil {
			return nil, err
		}
		stats.UpvoteRatio = float64(upvotes) / float64(stats.TotalVotes)
	}

	// Last sync time
	var lastSync models.SyncLog
	if err := db.Model(&models.SyncLog{}).Order("synced_at DESC").First(&lastSync).Error; err == nil {
		stats.LastSyncTime = &lastSync.SyncedAt
	}

	// Most upvoted movies (limit 10)
	if err := db.Model(&models.Movie{}).
		Preload("Genres").
		Joins("JOIN votes ON votes.movie_id = movies.id AND votes.vote_type = ?", models.VoteTypeUpvote).
		Group("movies.id").
		Order("COUNT(votes.id) DESC").
		Limit(10).
		Find(&stats.MostUpvoted).Error; err != nil {
		return nil, err
	}

	// Most popular movies (limit 10)
	if err := db.Model(&models.Movie{}).
		Preload("Genres").
		Order("popularity DESC").
		Limit(10).
		Find(&stats.MostPopular).Error; err != nil {
		return nil, err
	}

	// Recently added movies (limit 10)
	if err := db.Model(&models.Movie{}).
		Preload("Genres").
		Order("created_at DESC").
		Limit(10).
		Find(&stats.RecentlyAdded).Error; err != nil {
		return nil, err
	}

	return &stats, nil
}

func (r *movieRepository) CreateSyncLog(ctx context.Context, log *models.SyncLog) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Create(log).Error
}

func (r *movieRepository) GetLastSyncLog(ctx context.Context) (*models.SyncLog, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var log models.SyncLog
	err := r.db.WithContext(ctx).Order("synced_at DESC").First(&log).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &log, nil
}
