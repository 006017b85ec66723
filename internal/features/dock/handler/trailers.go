package handler

import (
	"net/http"

	"dockyard/internal/features/dock/domain"
	"dockyard/internal/features/dock/ports"

	"github.com/gofiber/fiber/v2"
)

// TrailerHandler handles trailer requests.
type TrailerHandler struct {
	service ports.TrailerService
}

// NewTrailerHandler creates a new TrailerHandler.
func NewTrailerHandler(s ports.TrailerService) *TrailerHandler {
	return &TrailerHandler{service: s}
}

// ArrivalRequest sets a trailer's arrival time; empty means now.
type ArrivalRequest struct {
	ArrivalTime string `json:"arrival_time"`
}

// List handles GET /trailers.
// @Summary Load trailers into the store
// @Tags Trailers
// @Produce json
// @Param scope query string false "all, today or range" default(today)
// @Param date query string false "Date for scope=today (YYYY-MM-DD)"
// @Param from query string false "Range start"
// @Param to query string false "Range end"
// @Success 200 {array} domain.Trailer
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /trailers [get]
func (h *TrailerHandler) List(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var (
		trailers []domain.Trailer
		err      error
	)
	switch c.Query("scope", "today") {
	case "all":
		trailers, err = h.service.LoadAll(ctx)
	case "today":
		trailers, err = h.service.LoadToday(ctx, c.Query("date"))
	case "range":
		from, to := c.Query("from"), c.Query("to")
		if from == "" || to == "" {
			return badRequest(c, "from and to are required for scope=range")
		}
		trailers, err = h.service.LoadRange(ctx, from, to)
	default:
		return badRequest(c, "scope must be all, today or range")
	}
	if err != nil {
		return fail(c, "list trailers", err)
	}
	return c.Status(http.StatusOK).JSON(trailers)
}

// SetArrival handles POST /trailers/:id/arrival.
// @Summary Record trailer arrival
// @Tags Trailers
// @Accept json
// @Produce json
// @Param id path string true "Trailer ID"
// @Param body body ArrivalRequest false "Arrival"
// @Success 200 {object} MessageResponse
// @Router /trailers/{id}/arrival [post]
func (h *TrailerHandler) SetArrival(c *fiber.Ctx) error {
	var req ArrivalRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
	}
	if err := h.service.SetArrival(c.UserContext(), c.Params("id"), req.ArrivalTime); err != nil {
		return fail(c, "set arrival", err)
	}
	return acknowledge(c, "Arrival recorded")
}

// ToggleHot handles POST /trailers/:id/hot.
// @Summary Toggle the hot flag
// @Tags Trailers
// @Produce json
// @Param id path string true "Trailer ID"
// @Success 200 {object} MessageResponse
// @Router /trailers/{id}/hot [post]
func (h *TrailerHandler) ToggleHot(c *fiber.Ctx) error {
	if err := h.service.ToggleHot(c.UserContext(), c.Params("id")); err != nil {
		return fail(c, "toggle hot", err)
	}
	return acknowledge(c, "Hot flag toggled")
}

// Schedule handles PUT /trailers/:id/schedule.
// @Summary Schedule a trailer
// @Tags Trailers
// @Accept json
// @Produce json
// @Param id path string true "Trailer ID"
// @Param schedule body domain.ScheduleRequest true "Schedule"
// @Success 200 {object} MessageResponse
// @Router /trailers/{id}/schedule [put]
func (h *TrailerHandler) Schedule(c *fiber.Ctx) error {
	var req domain.ScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	req.TrailerID = c.Params("id")

	if err := h.service.Schedule(c.UserContext(), req); err != nil {
		return fail(c, "schedule trailer", err)
	}
	return acknowledge(c, "Trailer scheduled")
}

// LoadDetails handles GET /trailers/:id/load.
// @Summary SIDs and parts on a trailer
// @Tags Trailers
// @Produce json
// @Param id path string true "Trailer ID"
// @Success 200 {array} domain.SidParts
// @Router /trailers/{id}/load [get]
func (h *TrailerHandler) LoadDetails(c *fiber.Ctx) error {
	loads, err := h.service.LoadDetails(c.UserContext(), c.Params("id"))
	if err != nil {
		return fail(c, "load details", err)
	}
	return c.Status(http.StatusOK).JSON(loads)
}

// Select handles POST /trailers/:id/select.
// @Summary Make a loaded trailer current
// @Tags Trailers
// @Produce json
// @Param id path string true "Trailer ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse
// @Router /trailers/{id}/select [post]
func (h *TrailerHandler) Select(c *fiber.Ctx) error {
	if err := h.service.Select(c.UserContext(), c.Params("id")); err != nil {
		return fail(c, "select trailer", err)
	}
	return acknowledge(c, "Trailer selected")
}

// ClearRecent handles DELETE /recent.
// @Summary Forget recent trailers
// @Tags Trailers
// @Produce json
// @Success 200 {object} MessageResponse
// @Router /recent [delete]
func (h *TrailerHandler) ClearRecent(c *fiber.Ctx) error {
	if err := h.service.ClearRecent(c.UserContext()); err != nil {
		return fail(c, "clear recent", err)
	}
	return acknowledge(c, "Recent trailers cleared")
}
