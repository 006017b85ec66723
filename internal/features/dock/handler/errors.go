package handler

import (
	"errors"
	"net/http"

	"dockyard/internal/core/logger"
	"dockyard/internal/features/dock/domain"
	"dockyard/internal/features/dock/ports"
	"dockyard/internal/features/dock/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrorResponse represents the structure of an error response.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for debugging.
	RayID string `json:"ray_id"`
}

// MessageResponse acknowledges a command.
type MessageResponse struct {
	Message string `json:"message"`
}

func rayID(c *fiber.Ctx) string {
	id, ok := c.Locals("requestid").(string)
	if !ok {
		return "unknown"
	}
	return id
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
		Message: msg,
		RayID:   rayID(c),
	})
}

// fail maps a service error onto an HTTP status and logs it.
func fail(c *fiber.Ctx, op string, err error) error {
	status := http.StatusInternalServerError
	msg := err.Error()

	switch {
	case errors.Is(err, service.ErrNotAuthenticated):
		status, msg = http.StatusUnauthorized, "Not logged in"
	case errors.Is(err, ports.ErrUnauthorized):
		status, msg = http.StatusUnauthorized, "Session rejected by dock API"
	case errors.Is(err, service.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, domain.ErrUnknownTrailer), errors.Is(err, domain.ErrUnknownShipment):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidTransition), errors.Is(err, service.ErrShipmentOnHold):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrUnknownView):
		status = http.StatusBadRequest
	}

	log := logger.Named("http")
	fields := []zap.Field{
		zap.String("operation", op),
		zap.String("ray_id", rayID(c)),
		zap.Error(err),
	}
	if status >= http.StatusInternalServerError {
		log.Error("Request failed", fields...)
	} else {
		log.Warn("Request refused", fields...)
	}

	return c.Status(status).JSON(ErrorResponse{
		Message: msg,
		RayID:   rayID(c),
	})
}

func acknowledge(c *fiber.Ctx, msg string) error {
	return c.Status(http.StatusOK).JSON(MessageResponse{Message: msg})
}
