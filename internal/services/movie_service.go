package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"moviematch-backend/internal/config"
	"moviematch-backend/internal/models"
	"moviematch-backend/internal/repository"

	"github.com/sirupsen/logrus"
)

type MovieService interface {
	// CRUD operations
	CreateMovie(ctx context.Context, movie *models.Movie) error
	UpdateMovie(ctx context.Context, id uint, movie *models.Movie) error
	DeleteMovie(ctx context.Context, id uint) error
	GetMovieByID(ctx context.Context, id uint) (*models.Movie, error)
	GetAllMovies(ctx context.Context, page, limit int, search, sortBy, order, mediaType string) ([]models.Movie, int64, error)

	// Deck operations
	GetDeck(ctx context.Context, deviceID string, genreID, limit int) ([]models.Movie, error)

	// Sync operations
	SyncFromTMDB(ctx context.Context, pages int, mediaType string) (*models.SyncLog, error)
	GetLastSyncLog(ctx context.Context) (*models.SyncLog, error)

	// Dashboard operations
	GetDashboardStats(ctx context.Context) (*models.DashboardStats, error)

	// Genre operations
	GetAllGenres(ctx context.Context) ([]models.Genre, error)
}

type movieService struct {
	repo       repository.MovieRepository
	genreRepo  repository.GenreRepository
	config     *config.Config
	logger     *logrus.Logger
	httpClient *http.Client
	artwork    *ArtworkService
}

func NewMovieService(repo repository.MovieRepository, genreRepo repository.GenreRepository, cfg *config.Config, logger *logrus.Logger) MovieService {
	return &movieService{
		repo:      repo,
		genreRepo: genreRepo,
		config:    cfg,
		logger:    logger,
		httpClient: &http.Client{
			Timeout: cfg.TMDB.HTTPTimeout,
		},
	}
}

func (s *movieService) SetArtworkService(artwork *ArtworkService) {
	s.artwork = artwork
}

func (s *movieService) CreateMovie(ctx context.Context, movie *models.Movie) error {
	if movie.Title == "" {
		return fmt.Errorf("movie title is required")
	}
	if movie.MediaType == "" {
		movie.MediaType = models.MediaTypeMovie
	}
	if movie.MediaType != models.MediaTypeMovie && movie.MediaType != models.MediaTypeTV {
		return fmt.Errorf("invalid media type %q", movie.MediaType)
	}

	// Check if movie with same TMDB ID already exists
	if movie.TMDBID > 0 {
		existing, err := s.repo.FindByTMDBID(ctx, movie.TMDBID, movie.MediaType)
		if err != nil {
			return fmt.Errorf("failed to check existing movie: %w", err)
		}
		if existing != nil {
			return fmt.Errorf("movie with TMDB ID %d already exists", movie.TMDBID)
		}
	}

	movie.CachedAt = time.Now().UTC()
	return s.repo.Create(ctx, movie)
}

func (s *movieService) UpdateMovie(ctx context.Context, id uint, movie *models.Movie) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrMovieNotFound
		}
		return err
	}

	// Drop replaced custom artwork from object storage.
	if movie.PosterPath != "" && movie.PosterPath != existing.PosterPath {
		s.cleanupArtwork(existing.PosterPath)
	}
	if movie.BackdropPath != "" && movie.BackdropPath != existing.BackdropPath {
		s.cleanupArtwork(existing.BackdropPath)
	}

	movie.ID = id
	movie.CreatedAt = existing.CreatedAt
	movie.TMDBID = existing.TMDBID // Don't allow changing TMDB ID
	movie.MediaType = existing.MediaType
	movie.CachedAt = time.Now().UTC()

	return s.repo.Update(ctx, movie)
}

func (s *movieService) DeleteMovie(ctx context.Context, id uint) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrMovieNotFound
		}
		return err
	}

	s.cleanupArtwork(existing.PosterPath)
	s.cleanupArtwork(existing.BackdropPath)

	return s.repo.Delete(ctx, id)
}

// cleanupArtwork removes a stored artwork object when the path points at our
// bucket. TMDB-relative paths are left alone.
func (s *movieService) cleanupArtwork(path string) {
	if s.artwork == nil || path == "" {
		return
	}
	if !strings.Contains(path, "http") || !strings.Contains(path, s.config.MinIO.BucketName) {
		return
	}

	if err := s.artwork.DeleteFile(path); err != nil {
		s.logger.WithError(err).WithField("path", path).Warn("Failed to delete artwork from storage")
	}
}

func (s *movieService) GetMovieByID(ctx context.Context, id uint) (*models.Movie, error) {
	movie, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}
	return movie, nil
}

func (s *movieService) GetAllMovies(ctx context.Context, page, limit int, search, sortBy, order, mediaType string) ([]models.Movie, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if mediaType != "" && mediaType != models.MediaTypeMovie && mediaType != models.MediaTypeTV {
		return nil, 0, fmt.Errorf("invalid media type %q", mediaType)
	}

	return s.repo.FindAll(ctx, page, limit, search, sortBy, order, mediaType)
}

func (s *movieService) GetDeck(ctx context.Context, deviceID string, genreID, limit int) ([]models.Movie, error) {
	if limit < 1 {
		limit = 20
	}
	if limit > 50 {
		limit = 50
	}

	return s.repo.FindUnvoted(ctx, deviceID, genreID, limit)
}

func (s *movieService) SyncFromTMDB(ctx context.Context, pages int, mediaType string) (*models.SyncLog, error) {
	if mediaType == "" {
		mediaType = models.MediaTypeMovie
	}
	if mediaType != models.MediaTypeMovie && mediaType != models.MediaTypeTV {
		return nil, fmt.Errorf("invalid media type %q", mediaType)
	}

	syncLog := &models.SyncLog{
		SyncType:  "manual",
		MediaType: mediaType,
		Status:    "failed",
		SyncedAt:  time.Now().UTC(),
	}

	// Validate pages
	if pages < 1 {
		pages = 1
	}
	if pages > 10 {
		pages = 10 // Limit to prevent too many API calls
	}

	var moviesAdded, moviesUpdated int

	for page := 1; page <= pages; page++ {
		s.logger.WithFields(logrus.Fields{
			"page":       page,
			"media_type": mediaType,
		}).Info("Fetching TMDB popular titles")

		results, err := s.fetchPopularFromTMDB(ctx, page, mediaType)
		if err != nil {
			syncLog.ErrorMessage = fmt.Sprintf("failed to fetch page %d: %s", page, err.Error())
			_ = s.repo.CreateSyncLog(ctx, syncLog)
			return syncLog, err
		}

		for _, result := range results {
			movie := s.tmdbToMovie(result, mediaType)

			// Get or create genres
			var genres []models.Genre
			for _, genreID := range result.GenreIDs {
				genreName := s.getGenreName(genreID)
				genre, err := s.genreRepo.FindOrCreate(ctx, genreID, genreName)
				if err != nil {
					s.logger.WithError(err).WithField("genre_id", genreID).Error("Error creating genre")
					continue
				}
				genres = append(genres, *genre)
			}
			movie.Genres = genres

			// Check if movie already exists
			existing, err := s.repo.FindByTMDBID(ctx, movie.TMDBID, mediaType)
			if err != nil {
				s.logger.WithError(err).WithField("tmdb_id", movie.TMDBID).Error("Error checking existing movie")
				continue
			}

			if existing == nil {
				// Create new movie
				if err := s.repo.Create(ctx, movie); err != nil {
					s.logger.WithError(err).WithField("title", movie.Title).Error("Error creating movie")
					continue
				}
				moviesAdded++
			} else {
				// Update existing movie
				movie.ID = existing.ID
				movie.CreatedAt = existing.CreatedAt
				if err := s.repo.Update(ctx, movie); err != nil {
					s.logger.WithError(err).WithField("title", movie.Title).Error("Error updating movie")
					continue
				}
				moviesUpdated++
			}
		}
	}

	syncLog.Status = "success"
	syncLog.MoviesAdded = moviesAdded
	syncLog.MoviesUpdated = moviesUpdated
	_ = s.repo.CreateSyncLog(ctx, syncLog)

	s.logger.WithFields(logrus.Fields{
		"media_type":     mediaType,
		"movies_added":   moviesAdded,
		"movies_updated": moviesUpdated,
	}).Info("Sync completed")

	return syncLog, nil
}

// tmdbToMovie maps a TMDB list result to the cached catalog row. TV results
// carry name/first_air_date instead of title/release_date.
func (s *movieService) tmdbToMovie(r models.TMDBMovieResponse, mediaType string) *models.Movie {
	title := r.Title
	originalTitle := r.OriginalTitle
	releaseDate := r.ReleaseDate
	if mediaType == models.MediaTypeTV {
		title = r.Name
		originalTitle = r.OriginalName
		releaseDate = r.FirstAirDate
	}

	return &models.Movie{
		TMDBID:           r.ID,
		MediaType:        mediaType,
		Title:            title,
		OriginalTitle:    originalTitle,
		Overview:         r.Overview,
		ReleaseDate:      releaseDate,
		PosterPath:       r.PosterPath,
		BackdropPath:     r.BackdropPath,
		Runtime:          r.Runtime,
		VoteAverage:      r.VoteAverage,
		VoteCount:        r.VoteCount,
		Popularity:       r.Popularity,
		Adult:            r.Adult,
		OriginalLanguage: r.OriginalLanguage,
		CachedAt:         time.Now().UTC(),
	}
}

func (s *movieService) fetchPopularFromTMDB(ctx context.Context, page int, mediaType string) ([]models.TMDBMovieResponse, error) {
	url := fmt.Sprintf("%s/%s/popular?api_key=%s&page=%d&language=en-US",
		s.config.TMDB.BaseURL,
		mediaType,
		s.config.TMDB.APIKey,
		page,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch from TMDB: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("TMDB API returned status %d: %s", resp.StatusCode, string(body))
	}

	var tmdbResponse models.TMDBPopularMoviesResponse
	if err := json.NewDecoder(resp.Body).Decode(&tmdbResponse); err != nil {
		return nil, fmt.Errorf("failed to decode TMDB response: %w", err)
	}

	return tmdbResponse.Results, nil
}

// getGenreName returns the genre name for a given TMDB genre ID
func (s *movieService) getGenreName(genreID int) string {
	genreMap := map[int]string{
		28: "Action", 12: "Adventure", 16: "Animation", 35: "Comedy", 80: "Crime",
		99: "Documentary", 18: "Drama", 10751: "Family", 14: "Fantasy", 36: "History",
		27: "Horror", 10402: "Music", 9648: "Mystery", 10749: "Romance", 878: "Science Fiction",
		10770: "TV Movie", 53: "Thriller", 10752: "War", 37: "Western",
		10759: "Action & Adventure", 10762: "Kids", 10763: "News", 10764: "Reality",
		10765: "Sci-Fi & Fantasy", 10766: "Soap", 10767: "Talk", 10768: "War & Politics",
	}
	if name, ok := genreMap[genreID]; ok {
		return name
	}
	return fmt.Sprintf("Genre %d", genreID)
}

func (s *movieService) GetDashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	return s.repo.GetDashboardStats(ctx)
}

func (s *movieService) GetLastSyncLog(ctx context.Context) (*models.SyncLog, error) {
	return s.repo.GetLastSyncLog(ctx)
}

func (s *movieService) GetAllGenres(ctx context.Context) ([]models.Genre, error) {
	return s.genreRepo.FindAll(ctx)
}
