package handlers

import (
	"moviematch-backend/internal/services"
	"moviematch-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type DeviceHandler struct {
	service services.DeviceService
	logger  *logrus.Logger
}

func NewDeviceHandler(service services.DeviceService, logger *logrus.Logger) *DeviceHandler {
	return &DeviceHandler{
		service: service,
		logger:  logger,
	}
}

// RegisterDevice godoc
// @Summary Register a device
// @Description Issue a signed device ID for anonymous vote deduplication
// @Tags devices
// @Accept json
// @Produce json
// @Success 201 {object} utils.StandardResponse "Signed device ID"
// @Router /devices/register [post]
func (h *DeviceHandler) RegisterDevice(c *fiber.Ctx) error {
	deviceID := h.service.Register()

	h.logger.WithField("device_id", deviceID).Debug("Issued device ID")

	return utils.SuccessResponse(c, fiber.StatusCreated, "Device registered successfully", fiber.Map{
		"device_id": deviceID,
	})
}
