package handlers

import (
	"errors"
	"strconv"

	"moviematch-backend/internal/services"
	"moviematch-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type VoteHandler struct {
	service     services.VoteService
	preferences services.PreferenceService
	logger      *logrus.Logger
}

func NewVoteHandler(service services.VoteService, preferences services.PreferenceService, logger *logrus.Logger) *VoteHandler {
	return &VoteHandler{
		service:     service,
		preferences: preferences,
		logger:      logger,
	}
}

// CastVote godoc
// @Summary Record a vote
// @Description Record an upvote, skip, or not_seen vote for a movie. At most one vote per device per movie; replays return duplicate=true.
// @Tags votes
// @Accept json
// @Produce json
// @Param vote body VoteBody true "Vote payload"
// @Success 200 {object} utils.StandardResponse "Vote recorded (or deduplicated)"
// @Failure 400 {object} utils.StandardResponse "Invalid request body"
// @Failure 401 {object} utils.StandardResponse "Device ID failed verification"
// @Failure 404 {object} utils.StandardResponse "Movie not found"
// @Failure 422 {object} utils.StandardResponse "Unknown vote type"
// @Router /votes [post]
func (h *VoteHandler) CastVote(c *fiber.Ctx) error {
	ctx := c.Context()

	var body VoteBody
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if body.MovieID == 0 || body.DeviceID == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "movie_id and device_id are required")
	}

	result, err := h.service.CastVote(ctx, services.VoteRequest{
		MovieID:   body.MovieID,
		DeviceID:  body.DeviceID,
		VoteType:  body.VoteType,
		SessionID: body.SessionID,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidVoteType):
			return utils.ErrorResponse(c, fiber.StatusUnprocessableEntity, "Unknown vote type")
		case errors.Is(err, services.ErrInvalidDeviceID):
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Device ID failed verification")
		case errors.Is(err, services.ErrMovieNotFound):
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Movie not found")
		}
		h.logger.WithError(err).WithFields(logrus.Fields{
			"movie_id":  body.MovieID,
			"device_id": body.DeviceID,
		}).Error("Failed to record vote")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to record vote")
	}

	message := "Vote recorded successfully"
	if result.Duplicate {
		message = "Vote already recorded for this movie"
	}
	return utils.SuccessResponse(c, fiber.StatusOK, message, result)
}

// GetDeviceVotes godoc
// @Summary Get vote history for a device
// @Description Get the paginated vote history of a device, newest first
// @Tags votes
// @Accept json
// @Produce json
// @Param deviceId path string true "Device ID"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} utils.StandardResponse "Vote history"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /votes/device/{deviceId} [get]
func (h *VoteHandler) GetDeviceVotes(c *fiber.Ctx) error {
	ctx := c.Context()

	deviceID := c.Params("deviceId")
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))

	votes, total, err := h.service.GetVotesByDevice(ctx, deviceID, page, limit)
	if err != nil {
		h.logger.WithError(err).WithField("device_id", deviceID).Error("Failed to get votes")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve votes")
	}

	meta := utils.CreatePaginationMeta(page, limit, total)
	return utils.SuccessWithMetaResponse(c, fiber.StatusOK, "Votes retrieved successfully", votes, meta)
}

// GetPreferences godoc
// @Summary Get preference profile for a device
// @Description Get the device's accumulated genre weights, vote count, and last-seen timestamp
// @Tags preferences
// @Accept json
// @Produce json
// @Param deviceId path string true "Device ID"
// @Success 200 {object} utils.StandardResponse "Preference profile"
// @Failure 404 {object} utils.StandardResponse "No profile for device"
// @Router /preferences/{deviceId} [get]
func (h *VoteHandler) GetPreferences(c *fiber.Ctx) error {
	ctx := c.Context()

	deviceID := c.Params("deviceId")
	prefs, err := h.preferences.GetByDevice(ctx, deviceID)
	if err != nil {
		h.logger.WithError(err).WithField("device_id", deviceID).Error("Failed to get preferences")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve preferences")
	}
	if prefs == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "No preference profile for device")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Preferences retrieved successfully", prefs)
}
