package handler

import (
	"dockyard/internal/features/exports/ports"

	"github.com/gofiber/fiber/v2"
)

// ExportHandler serves the warehouse CSV exports.
type ExportHandler struct {
	service ports.ExportService
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(s ports.ExportService) *ExportHandler {
	return &ExportHandler{service: s}
}

// Load handles GET /exports/trailers/:id/load.csv.
// @Summary SID export for one trailer
// @Tags Exports
// @Produce text/csv
// @Param id path string true "Trailer ID"
// @Success 200 {string} string
// @Failure 401 {object} ErrorResponse
// @Router /exports/trailers/{id}/load.csv [get]
func (h *ExportHandler) Load(c *fiber.Ctx) error {
	id := c.Params("id")
	body, err := h.service.Load(c.UserContext(), id)
	if err != nil {
		return fail(c, "load export", err)
	}
	return sendCSV(c, id+".csv", body)
}

// Daily handles GET /exports/daily.csv.
// @Summary SID export for every trailer of a day
// @Tags Exports
// @Produce text/csv
// @Param date query string false "Date (YYYY-MM-DD), defaults to today"
// @Success 200 {string} string
// @Router /exports/daily.csv [get]
func (h *ExportHandler) Daily(c *fiber.Ctx) error {
	body, err := h.service.Daily(c.UserContext(), c.Query("date"))
	if err != nil {
		return fail(c, "daily export", err)
	}
	return sendCSV(c, "daily.csv", body)
}

// Schedule handles GET /exports/schedule.csv.
// @Summary Today's schedule export
// @Tags Exports
// @Produce text/csv
// @Param date query string false "Date (YYYY-MM-DD), defaults to today"
// @Success 200 {string} string
// @Router /exports/schedule.csv [get]
func (h *ExportHandler) Schedule(c *fiber.Ctx) error {
	body, err := h.service.Schedule(c.UserContext(), c.Query("date"))
	if err != nil {
		return fail(c, "schedule export", err)
	}
	return sendCSV(c, "schedule.csv", body)
}

// Recent handles GET /exports/recent.csv.
// @Summary Recent trailers export
// @Tags Exports
// @Produce text/csv
// @Success 200 {string} string
// @Router /exports/recent.csv [get]
func (h *ExportHandler) Recent(c *fiber.Ctx) error {
	return sendCSV(c, "recent.csv", h.service.Recent())
}

// LinesTemplate handles GET /exports/templates/shipment-lines.csv.
// @Summary Shipment lines upload template
// @Tags Exports
// @Produce text/csv
// @Success 200 {string} string
// @Router /exports/templates/shipment-lines.csv [get]
func (h *ExportHandler) LinesTemplate(c *fiber.Ctx) error {
	return sendCSV(c, "shipment-lines.csv", h.service.LinesTemplate())
}

// Register mounts the export routes on r.
func (h *ExportHandler) Register(r fiber.Router) {
	g := r.Group("/exports")
	g.Get("/trailers/:id/load.csv", h.Load)
	g.Get("/daily.csv", h.Daily)
	g.Get("/schedule.csv", h.Schedule)
	g.Get("/recent.csv", h.Recent)
	g.Get("/templates/shipment-lines.csv", h.LinesTemplate)
}
