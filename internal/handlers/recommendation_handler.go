package handlers

import (
	"strconv"

	"moviematch-backend/internal/services"
	"moviematch-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type RecommendationHandler struct {
	service services.RecommendationService
	logger  *logrus.Logger
}

func NewRecommendationHandler(service services.RecommendationService, logger *logrus.Logger) *RecommendationHandler {
	return &RecommendationHandler{
		service: service,
		logger:  logger,
	}
}

// GetForYou godoc
// @Summary Get personalized recommendations
// @Description Rank unseen movies against the device's genre-weight profile. Devices without a profile get popularity order.
// @Tags recommendations
// @Accept json
// @Produce json
// @Param device_id query string true "Device ID"
// @Param limit query int false "Number of recommendations" default(20)
// @Success 200 {object} utils.StandardResponse "Ranked recommendations"
// @Failure 400 {object} utils.StandardResponse "Missing device ID"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Router /recommendations/for-you [get]
func (h *RecommendationHandler) GetForYou(c *fiber.Ctx) error {
	ctx := c.Context()

	deviceID := c.Query("device_id")
	if deviceID == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "device_id is required")
	}
	limit, _ := strconv.Atoi(c.Query("limit", "20"))

	scored, err := h.service.ForDevice(ctx, deviceID, limit)
	if err != nil {
		h.logger.WithError(err).WithField("device_id", deviceID).Error("Failed to build recommendations")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to build recommendations")
	}

	cards := make([]RecommendationCard, 0, len(scored))
	for _, s := range scored {
		cards = append(cards, RecommendationCard{
			DeckCard: NewDeckCard(s.Movie),
			Score:    s.Score,
		})
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Recommendations retrieved successfully", cards)
}
