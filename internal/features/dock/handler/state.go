package handler

import (
	"net/http"

	"dockyard/internal/features/dock/domain"
	"dockyard/internal/features/dock/ports"
	"dockyard/internal/features/dock/state"

	"github.com/gofiber/fiber/v2"
)

// StateHandler exposes the application state and the view router.
type StateHandler struct {
	store ports.StateStore
}

// NewStateHandler creates a new StateHandler.
func NewStateHandler(store ports.StateStore) *StateHandler {
	return &StateHandler{store: store}
}

// StateResponse is a JSON rendering of a state snapshot with lists in display order.
type StateResponse struct {
	User            *UserResponse          `json:"user"`
	CurrentView     domain.View            `json:"current_view"`
	LastView        domain.View            `json:"last_view,omitempty"`
	Trailers        []domain.Trailer       `json:"trailers"`
	Shipments       []domain.Shipment      `json:"shipments"`
	CurrentTrailer  *domain.Trailer        `json:"current_trailer"`
	CurrentShipment *domain.Shipment       `json:"current_shipment"`
	Recent          []domain.RecentTrailer `json:"recent"`
	Messages        []string               `json:"messages"`
	LiveConnected   bool                   `json:"live_connected"`
}

func toStateResponse(s state.State) StateResponse {
	resp := StateResponse{
		CurrentView:     s.CurrentView,
		LastView:        s.LastView,
		Trailers:        s.Trailers.Values(),
		Shipments:       s.Shipments.Values(),
		CurrentTrailer:  s.CurrentTrailer,
		CurrentShipment: s.CurrentShipment,
		Recent:          s.Recent.Values(),
		Messages:        s.Messages,
		LiveConnected:   s.LiveConnected,
	}
	if s.User != nil {
		u := toUserResponse(s.User)
		resp.User = &u
	}
	if resp.Messages == nil {
		resp.Messages = []string{}
	}
	return resp
}

// ViewRequest names the view to show.
type ViewRequest struct {
	View string `json:"view"`
}

// Get handles GET /state.
// @Summary State snapshot
// @Tags State
// @Produce json
// @Success 200 {object} StateResponse
// @Router /state [get]
func (h *StateHandler) Get(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(toStateResponse(h.store.Snapshot()))
}

// SetView handles PUT /state/view.
// @Summary Switch the current view
// @Tags State
// @Accept json
// @Produce json
// @Param view body ViewRequest true "View"
// @Success 200 {object} StateResponse
// @Failure 400 {object} ErrorResponse
// @Router /state/view [put]
func (h *StateHandler) SetView(c *fiber.Ctx) error {
	var req ViewRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	v, err := domain.ParseView(req.View)
	if err != nil {
		return fail(c, "set view", err)
	}
	if err := h.store.Dispatch(c.UserContext(), state.SetCurrentView{View: v}); err != nil {
		return fail(c, "set view", err)
	}
	return h.Get(c)
}

// Back handles POST /state/back.
// @Summary Return to the previous view
// @Tags State
// @Produce json
// @Success 200 {object} StateResponse
// @Router /state/back [post]
func (h *StateHandler) Back(c *fiber.Ctx) error {
	if err := h.store.Dispatch(c.UserContext(), state.GoBack{}); err != nil {
		return fail(c, "go back", err)
	}
	return h.Get(c)
}

// Recent handles GET /recent.
// @Summary Recently scheduled trailers
// @Tags Trailers
// @Produce json
// @Success 200 {array} domain.RecentTrailer
// @Router /recent [get]
func (h *StateHandler) Recent(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(h.store.Snapshot().Recent.Values())
}
