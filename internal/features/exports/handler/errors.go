package handler

import (
	"errors"
	"net/http"

	"dockyard/internal/core/logger"
	"dockyard/internal/features/dock/domain"
	dockports "dockyard/internal/features/dock/ports"
	dockservice "dockyard/internal/features/dock/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrorResponse represents the structure of an error response.
type ErrorResponse struct {
	Message string `json:"message"`
	RayID   string `json:"ray_id"`
}

func rayID(c *fiber.Ctx) string {
	id, ok := c.Locals("requestid").(string)
	if !ok {
		return "unknown"
	}
	return id
}

func fail(c *fiber.Ctx, op string, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, dockservice.ErrNotAuthenticated), errors.Is(err, dockports.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, domain.ErrUnknownTrailer):
		status = http.StatusNotFound
	}

	logger.Named("http").Warn("Export failed",
		zap.String("operation", op),
		zap.String("ray_id", rayID(c)),
		zap.Error(err),
	)
	return c.Status(status).JSON(ErrorResponse{Message: err.Error(), RayID: rayID(c)})
}

// sendCSV answers a CSV document as a download named filename.
func sendCSV(c *fiber.Ctx, filename, body string) error {
	c.Attachment(filename)
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	return c.Status(http.StatusOK).SendString(body)
}
