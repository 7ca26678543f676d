package handlers

import (
	"errors"
	"strconv"

	"moviematch-backend/internal/models"
	"moviematch-backend/internal/services"
	"moviematch-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type MovieHandler struct {
	service services.MovieService
	logger  *logrus.Logger
}

func NewMovieHandler(service services.MovieService, logger *logrus.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		logger:  logger,
	}
}

// GetAllMovies godoc
// @Summary Get all movies
// @Description Get list of cached movies with pagination, search, sorting, and media type filter
// @Tags movies
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Param search query string false "Search by title or overview"
// @Param sort_by query string false "Sort by field (id, title, release_date, vote_average, popularity, cached_at)" default(popularity)
// @Param order query string false "Sort order (ASC/DESC)" default(DESC)
// @Param media_type query string false "Filter by media type (movie/tv)"
// @Success 200 {object} utils.StandardResponse "List of movies"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /movies [get]
func (h *MovieHandler) GetAllMovies(c *fiber.Ctx) error {
	ctx := c.Context()

	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	search := c.Query("search", "")
	sortBy := c.Query("sort_by", "popularity")
	order := c.Query("order", "DESC")
	mediaType := c.Query("media_type", "")

	movies, total, err := h.service.GetAllMovies(ctx, page, limit, search, sortBy, order, mediaType)
	if err != nil {
		h.logger.WithError(err).Error("Failed to get movies")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve movies")
	}

	meta := utils.CreatePaginationMeta(page, limit, total)
	return utils.SuccessWithMetaResponse(c, fiber.StatusOK, "Movies retrieved successfully", movies, meta)
}

// GetDeck godoc
// @Summary Get a discovery deck for a device
// @Description Get a batch of movies the device has not voted on, ordered by popularity
// @Tags movies
// @Accept json
// @Produce json
// @Param device_id query string true "Device ID"
// @Param genre_id query int false "Filter by TMDB genre ID"
// @Param limit query int false "Deck size" default(20)
// @Success 200 {object} utils.StandardResponse "Deck of unseen movies"
// @Failure 400 {object} utils.StandardResponse "Missing device ID"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /movies/deck [get]
func (h *MovieHandler) GetDeck(c *fiber.Ctx) error {
	ctx := c.Context()

	deviceID := c.Query("device_id")
	if deviceID == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "device_id is required")
	}
	genreID, _ := strconv.Atoi(c.Query("genre_id", "0"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))

	movies, err := h.service.GetDeck(ctx, deviceID, genreID, limit)
	if err != nil {
		h.logger.WithError(err).WithField("device_id", deviceID).Error("Failed to build deck")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to build deck")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Deck retrieved successfully", NewDeckCards(movies))
}

// GetMovieByID godoc
// @Summary Get movie by ID
// @Description Get a single movie by its ID
// @Tags movies
// @Accept json
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} utils.StandardResponse "Movie details"
// @Failure 400 {object} utils.StandardResponse "Invalid movie ID"
// @Failure 404 {object} utils.StandardResponse "Movie not found"
// @Router /movies/{id} [get]
func (h *MovieHandler) GetMovieByID(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}

	movie, err := h.service.GetMovieByID(ctx, uint(id))
	if err != nil {
		if errors.Is(err, services.ErrMovieNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Movie not found")
		}
		h.logger.WithError(err).WithField("id", id).Error("Failed to get movie")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve movie")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Movie retrieved successfully", NewDeckCard(*movie))
}

// CreateMovie godoc
// @Summary Create a new movie
// @Description Create a new movie entry
// @Tags movies
// @Accept json
// @Produce json
// @Param movie body MovieRequest true "Movie request object"
// @Success 201 {object} utils.StandardResponse "Movie created successfully"
// @Failure 400 {object} utils.StandardResponse "Invalid request body"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /movies [post]
func (h *MovieHandler) CreateMovie(c *fiber.Ctx) error {
	ctx := c.Context()

	var req MovieRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	movie := requestToMovie(&req)
	if err := h.service.CreateMovie(ctx, movie); err != nil {
		h.logger.WithError(err).Error("Failed to create movie")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Movie created successfully", movie)
}

// UpdateMovie godoc
// @Summary Update a movie
// @Description Update an existing movie
// @Tags movies
// @Accept json
// @Produce json
// @Param id path int true "Movie ID"
// @Param movie body MovieRequest true "Movie request object"
// @Success 200 {object} utils.StandardResponse "Movie updated successfully"
// @Failure 400 {object} utils.StandardResponse "Invalid request"
// @Failure 404 {object} utils.StandardResponse "Movie not found"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /movies/{id} [put]
func (h *MovieHandler) UpdateMovie(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}

	var req MovieRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	movie := requestToMovie(&req)
	if err := h.service.UpdateMovie(ctx, uint(id), movie); err != nil {
		if errors.Is(err, services.ErrMovieNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Movie not found")
		}
		h.logger.WithError(err).WithField("id", id).Error("Failed to update movie")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Movie updated successfully", movie)
}

// DeleteMovie godoc
// @Summary Delete a movie
// @Description Delete a movie by ID
// @Tags movies
// @Accept json
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} utils.StandardResponse "Movie deleted successfully"
// @Failure 400 {object} utils.StandardResponse "Invalid movie ID"
// @Failure 404 {object} utils.StandardResponse "Movie not found"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /movies/{id} [delete]
func (h *MovieHandler) DeleteMovie(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}

	if err := h.service.DeleteMovie(ctx, uint(id)); err != nil {
		if errors.Is(err, services.ErrMovieNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Movie not found")
		}
		h.logger.WithError(err).WithField("id", id).Error("Failed to delete movie")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Movie deleted successfully", nil)
}

// SyncFromTMDB godoc
// @Summary Sync titles from TMDB
// @Description Fetch and cache popular movies or TV from TMDB
// @Tags sync
// @Accept json
// @Produce json
// @Param pages query int false "Number of pages to sync (1-10)" default(1)
// @Param media_type query string false "Media type (movie/tv)" default(movie)
// @Success 200 {object} utils.StandardResponse "Sync completed successfully"
// @Failure 500 {object} utils.StandardResponse "Sync failed"
// @Router /sync/movies [post]
func (h *MovieHandler) SyncFromTMDB(c *fiber.Ctx) error {
	ctx := c.Context()

	pages, _ := strconv.Atoi(c.Query("pages", "1"))
	mediaType := c.Query("media_type", models.MediaTypeMovie)

	h.logger.WithFields(logrus.Fields{
		"pages":      pages,
		"media_type": mediaType,
	}).Info("Starting TMDB sync")

	syncLog, err := h.service.SyncFromTMDB(ctx, pages, mediaType)
	if err != nil {
		h.logger.WithError(err).Error("Failed to sync from TMDB")
		return utils.ErrorWithDataResponse(c, fiber.StatusInternalServerError, "Failed to sync titles", syncLog)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Titles synced successfully", syncLog)
}

// GetLastSyncLog godoc
// @Summary Get last sync log
// @Description Get the most recent sync operation log
// @Tags sync
// @Accept json
// @Produce json
// @Success 200 {object} utils.StandardResponse "Last sync log"
// @Failure 500 {object} utils.StandardResponse "Failed to retrieve sync log"
// @Router /sync/last-log [get]
func (h *MovieHandler) GetLastSyncLog(c *fiber.Ctx) error {
	ctx := c.Context()

	syncLog, err := h.service.GetLastSyncLog(ctx)
	if err != nil {
		h.logger.WithError(err).Error("Failed to get last sync log")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve last sync log")
	}

	if syncLog == nil {
		return utils.SuccessResponse(c, fiber.StatusOK, "No sync log found", nil)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Last sync log retrieved successfully", syncLog)
}

// GetDashboardStats godoc
// @Summary Get dashboard statistics
// @Description Get catalog and voting statistics
// @Tags dashboard
// @Accept json
// @Produce json
// @Success 200 {object} utils.StandardResponse "Dashboard statistics"
// @Failure 500 {object} utils.StandardResponse "Failed to retrieve statistics"
// @Router /dashboard/stats [get]
func (h *MovieHandler) GetDashboardStats(c *fiber.Ctx) error {
	ctx := c.Context()

	stats, err := h.service.GetDashboardStats(ctx)
	if err != nil {
		h.logger.WithError(err).Error("Failed to get dashboard stats")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve dashboard statistics")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Dashboard statistics retrieved successfully", stats)
}

// GetGenres godoc
// @Summary Get all genres
// @Description Get the cached genre list
// @Tags genres
// @Accept json
// @Produce json
// @Success 200 {object} utils.StandardResponse "Genres"
// @Failure 500 {object} utils.StandardResponse "Failed to retrieve genres"
// @Router /genres [get]
func (h *MovieHandler) GetGenres(c *fiber.Ctx) error {
	ctx := c.Context()

	genres, err := h.service.GetAllGenres(ctx)
	if err != nil {
		h.logger.WithError(err).Error("Failed to get genres")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve genres")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Genres retrieved successfully", genres)
}

func requestToMovie(req *MovieRequest) *models.Movie {
	return &models.Movie{
		TMDBID:           req.TMDBID,
		MediaType:        req.MediaType,
		Title:            req.Title,
		OriginalTitle:    req.OriginalTitle,
		Overview:         req.Overview,
		ReleaseDate:      req.ReleaseDate,
		PosterPath:       req.PosterPath,
		BackdropPath:     req.BackdropPath,
		Runtime:          req.Runtime,
		VoteAverage:      req.VoteAverage,
		VoteCount:        req.VoteCount,
		Popularity:       req.Popularity,
		Adult:            req.Adult,
		OriginalLanguage: req.OriginalLanguage,
	}
}
