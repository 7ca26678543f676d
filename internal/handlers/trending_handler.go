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

type TrendingHandler struct {
	service services.TrendingService
	logger  *logrus.Logger
}

func NewTrendingHandler(service services.TrendingService, logger *logrus.Logger) *TrendingHandler {
	return &TrendingHandler{
		service: service,
		logger:  logger,
	}
}

// GetTrending godoc
// @Summary Get trending movies
// @Description Get the ranked trending snapshot for a time window
// @Tags trending
// @Accept json
// @Produce json
// @Param period query string false "Time window (day/week/month)" default(week)
// @Param limit query int false "Number of entries"
// @Success 200 {object} utils.StandardResponse "Trending snapshot"
// @Failure 400 {object} utils.StandardResponse "Unknown period"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /trending [get]
func (h *TrendingHandler) GetTrending(c *fiber.Ctx) error {
	ctx := c.Context()

	period := c.Query("period", models.TrendingPeriodWeek)
	limit, _ := strconv.Atoi(c.Query("limit", "0"))

	entries, err := h.service.GetTrending(ctx, period, limit)
	if err != nil {
		if errors.Is(err, services.ErrInvalidPeriod) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Unknown trending period")
		}
		h.logger.WithError(err).WithField("period", period).Error("Failed to get trending snapshot")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to retrieve trending movies")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Trending movies retrieved successfully", entries)
}

// Recompute godoc
// @Summary Force a trending recompute
// @Description Rebuild the trending snapshot for one period, or all when none is given
// @Tags trending
// @Accept json
// @Produce json
// @Param period query string false "Time window (day/week/month); empty rebuilds all"
// @Success 200 {object} utils.StandardResponse "Snapshot rebuilt"
// @Failure 400 {object} utils.StandardResponse "Unknown period"
// @Failure 500 {object} utils.StandardResponse "Recompute failed"
// @Router /trending/recompute [post]
func (h *TrendingHandler) Recompute(c *fiber.Ctx) error {
	ctx := c.Context()

	period := c.Query("period", "")
	if period == "" {
		if err := h.service.RecomputeAll(ctx); err != nil {
			h.logger.WithError(err).Error("Trending recompute failed")
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Trending recompute failed")
		}
		return utils.SuccessResponse(c, fiber.StatusOK, "Trending snapshots rebuilt", nil)
	}

	ranked, err := h.service.Recompute(ctx, period)
	if err != nil {
		if errors.Is(err, services.ErrInvalidPeriod) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Unknown trending period")
		}
		h.logger.WithError(err).WithField("period", period).Error("Trending recompute failed")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Trending recompute failed")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Trending snapshot rebuilt", fiber.Map{
		"period": period,
		"movies": ranked,
	})
}
