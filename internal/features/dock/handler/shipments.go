package handler

import (
	"net/http"

	"dockyard/internal/features/dock/domain"
	"dockyard/internal/features/dock/ports"

	"github.com/gofiber/fiber/v2"
)

// ShipmentHandler handles shipment requests.
type ShipmentHandler struct {
	service ports.ShipmentService
	uploads ports.UploadService
}

// NewShipmentHandler creates a new ShipmentHandler.
func NewShipmentHandler(s ports.ShipmentService, u ports.UploadService) *ShipmentHandler {
	return &ShipmentHandler{service: s, uploads: u}
}

// ShipmentCommand carries the optional fields of a lifecycle command.
type ShipmentCommand struct {
	TrailerNum  string `json:"trailer_num"`
	ArrivalTime string `json:"arrival_time"`
	Door        string `json:"door"`
	Picker      string `json:"picker"`
	VerifiedBy  string `json:"verified_by"`
	Seal        string `json:"seal"`
}

func parseCommand(c *fiber.Ctx) (ShipmentCommand, error) {
	var cmd ShipmentCommand
	if len(c.Body()) == 0 {
		return cmd, nil
	}
	err := c.BodyParser(&cmd)
	return cmd, err
}

// List handles GET /shipments.
// @Summary Load shipments into the store
// @Tags Shipments
// @Produce json
// @Param scope query string false "all or today" default(all)
// @Param date query string false "Date for scope=today (YYYY-MM-DD)"
// @Success 200 {array} domain.Shipment
// @Router /shipments [get]
func (h *ShipmentHandler) List(c *fiber.Ctx) error {
	var (
		shipments []domain.Shipment
		err       error
	)
	switch c.Query("scope", "all") {
	case "all":
		shipments, err = h.service.LoadAll(c.UserContext())
	case "today":
		shipments, err = h.service.LoadToday(c.UserContext(), c.Query("date"))
	default:
		return badRequest(c, "scope must be all or today")
	}
	if err != nil {
		return fail(c, "list shipments", err)
	}
	return c.Status(http.StatusOK).JSON(shipments)
}

// Create handles POST /shipments.
// @Summary Create a shipment
// @Tags Shipments
// @Accept json
// @Produce json
// @Param shipment body domain.Shipment true "Shipment"
// @Success 201 {object} domain.Shipment
// @Router /shipments [post]
func (h *ShipmentHandler) Create(c *fiber.Ctx) error {
	var in domain.Shipment
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Invalid request body")
	}
	created, err := h.service.Create(c.UserContext(), in)
	if err != nil {
		return fail(c, "create shipment", err)
	}
	return c.Status(http.StatusCreated).JSON(created)
}

// Command handles POST /shipments/:id/{action}. One handler serves every
// lifecycle step; the step is taken from the route.
// @Summary Apply a lifecycle step
// @Tags Shipments
// @Accept json
// @Produce json
// @Param id path string true "Load ID"
// @Param action path string true "trailer, door, pick/start, pick/finish, verify, loading, depart or hold"
// @Param body body ShipmentCommand false "Fields for the step"
// @Success 200 {object} MessageResponse
// @Failure 409 {object} ErrorResponse
// @Router /shipments/{id}/{action} [post]
func (h *ShipmentHandler) Command(step string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cmd, err := parseCommand(c)
		if err != nil {
			return badRequest(c, "Invalid request body")
		}
		ctx, id := c.UserContext(), c.Params("id")

		switch step {
		case "trailer":
			if cmd.TrailerNum == "" {
				return badRequest(c, "trailer_num is required")
			}
			err = h.service.AssignTrailer(ctx, id, cmd.TrailerNum, cmd.ArrivalTime)
		case "door":
			if cmd.Door == "" {
				return badRequest(c, "door is required")
			}
			err = h.service.AssignDoor(ctx, id, cmd.Door)
		case "pick/start":
			if cmd.Picker == "" {
				return badRequest(c, "picker is required")
			}
			err = h.service.StartPick(ctx, id, cmd.Picker)
		case "pick/finish":
			err = h.service.FinishPick(ctx, id)
		case "verify":
			if cmd.VerifiedBy == "" {
				return badRequest(c, "verified_by is required")
			}
			err = h.service.Verify(ctx, id, cmd.VerifiedBy)
		case "loading":
			err = h.service.BeginLoading(ctx, id)
		case "depart":
			err = h.service.Depart(ctx, id, cmd.Seal)
		case "hold":
			err = h.service.ToggleHold(ctx, id)
		default:
			return badRequest(c, "unknown shipment step")
		}
		if err != nil {
			return fail(c, step, err)
		}
		return acknowledge(c, "Shipment updated")
	}
}

// Lines handles GET /shipments/:id/lines.
// @Summary Shipment item lines
// @Tags Shipments
// @Produce json
// @Param id path string true "Load ID"
// @Success 200 {array} domain.ShipmentLine
// @Router /shipments/{id}/lines [get]
func (h *ShipmentHandler) Lines(c *fiber.Ctx) error {
	lines, err := h.service.Details(c.UserContext(), c.Params("id"))
	if err != nil {
		return fail(c, "shipment details", err)
	}
	return c.Status(http.StatusOK).JSON(lines)
}

// SaveLines handles PUT /shipments/:id/lines.
// @Summary Replace shipment item lines
// @Tags Shipments
// @Accept json
// @Produce json
// @Param id path string true "Load ID"
// @Param lines body []domain.ShipmentLine true "Lines"
// @Success 200 {object} MessageResponse
// @Router /shipments/{id}/lines [put]
func (h *ShipmentHandler) SaveLines(c *fiber.Ctx) error {
	var lines []domain.ShipmentLine
	if err := c.BodyParser(&lines); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := h.service.SaveLines(c.UserContext(), c.Params("id"), lines); err != nil {
		return fail(c, "save lines", err)
	}
	return acknowledge(c, "Lines saved")
}

// Select handles POST /shipments/:id/select.
// @Summary Make a loaded shipment current
// @Tags Shipments
// @Produce json
// @Param id path string true "Load ID"
// @Success 200 {object} MessageResponse
// @Router /shipments/{id}/select [post]
func (h *ShipmentHandler) Select(c *fiber.Ctx) error {
	if err := h.service.Select(c.UserContext(), c.Params("id")); err != nil {
		return fail(c, "select shipment", err)
	}
	return acknowledge(c, "Shipment selected")
}

// Upload handles POST /uploads.
// @Summary Forward a CSV file to the ingestion service
// @Tags Shipments
// @Accept mpfd
// @Produce json
// @Param file formData file true "CSV file"
// @Success 200 {object} MessageResponse
// @Router /uploads [post]
func (h *ShipmentHandler) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "file is required")
	}
	f, err := fh.Open()
	if err != nil {
		return badRequest(c, "file could not be read")
	}
	defer f.Close()

	if err := h.uploads.Upload(c.UserContext(), fh.Filename, f); err != nil {
		return fail(c, "upload", err)
	}
	return acknowledge(c, "File uploaded")
}
