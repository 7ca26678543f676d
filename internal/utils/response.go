package utils

import "github.com/gofiber/fiber/v2"

// StandardResponse is the envelope every endpoint returns. Data and Meta
// are omitted when empty so error bodies stay small.
type StandardResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

// PaginationMeta describes the page window of a list response.
type PaginationMeta struct {
	Page        int   `json:"page"`
	Limit       int   `json:"limit"`
	Total       int64 `json:"total"`
	TotalPages  int   `json:"total_pages"`
	HasNext     bool  `json:"has_next"`
	HasPrevious bool  `json:"has_previous"`
}

// errorStatus distinguishes client mistakes ("error") from server-side
// failures ("fail") in the envelope's status field.
func errorStatus(code int) string {
	if code >= 500 {
		return "fail"
	}
	return "error"
}

func SuccessResponse(c *fiber.Ctx, code int, message string, data interface{}) error {
	return c.Status(code).JSON(StandardResponse{
		Status:  "success",
		Code:    code,
		Message: message,
		Data:    data,
	})
}

// SuccessWithMetaResponse is SuccessResponse plus pagination metadata.
func SuccessWithMetaResponse(c *fiber.Ctx, code int, message string, data interface{}, meta interface{}) error {
	return c.Status(code).JSON(StandardResponse{
		Status:  "success",
		Code:    code,
		Message: message,
		Data:    data,
		Meta:    meta,
	})
}

func ErrorResponse(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(StandardResponse{
		Status:  errorStatus(code),
		Code:    code,
		Message: message,
	})
}

// ErrorWithDataResponse attaches a partial result to an error body, e.g. a
// sync log for a run that failed midway.
func ErrorWithDataResponse(c *fiber.Ctx, code int, message string, data interface{}) error {
	return c.Status(code).JSON(StandardResponse{
		Status:  errorStatus(code),
		Code:    code,
		Message: message,
		Data:    data,
	})
}

// CreatePaginationMeta derives the page window from a total count. An empty
// result set still reports one page so clients can render page 1 of 1.
func CreatePaginationMeta(page, limit int, total int64) PaginationMeta {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	if totalPages == 0 {
		totalPages = 1
	}

	return PaginationMeta{
		Page:        page,
		Limit:       limit,
		Total:       total,
		TotalPages:  totalPages,
		HasNext:     page < totalPages,
		HasPrevious: page > 1,
	}
}
