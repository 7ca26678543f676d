package handlers

import (
	"moviematch-backend/internal/services"
	"moviematch-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type UploadHandler struct {
	artwork *services.ArtworkService
	logger  *logrus.Logger
}

func NewUploadHandler(artwork *services.ArtworkService, logger *logrus.Logger) *UploadHandler {
	return &UploadHandler{
		artwork: artwork,
		logger:  logger,
	}
}

// GetPresignedURL godoc
// @Summary Get presigned URL for artwork upload
// @Description Generate a presigned URL for uploading custom poster or backdrop artwork
// @Tags upload
// @Accept json
// @Produce json
// @Param filename query string true "Filename"
// @Param contentType query string false "Content Type" default(image/jpeg)
// @Success 200 {object} utils.StandardResponse
// @Failure 400 {object} utils.StandardResponse
// @Failure 500 {object} utils.StandardResponse
// @Failure 503 {object} utils.StandardResponse "Artwork storage not configured"
// @Router /upload/presign [get]
func (h *UploadHandler) GetPresignedURL(c *fiber.Ctx) error {
	if h.artwork == nil {
		return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, "Artwork storage is not configured")
	}

	filename := c.Query("filename")
	if filename == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "filename is required")
	}

	contentType := c.Query("contentType", "image/jpeg")

	presignedURL, publicURL, err := h.artwork.GeneratePresignedURL(filename, contentType)
	if err != nil {
		h.logger.WithError(err).Error("Failed to generate presigned URL")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to generate presigned URL")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Presigned URL generated successfully", fiber.Map{
		"presigned_url": presignedURL,
		"public_url":    publicURL,
	})
}
