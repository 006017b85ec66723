package handler

import (
	"net/http"

	"dockyard/internal/features/dock/domain"
	"dockyard/internal/features/dock/ports"

	"github.com/gofiber/fiber/v2"
)

// SessionHandler handles login state requests.
type SessionHandler struct {
	service ports.SessionService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(s ports.SessionService) *SessionHandler {
	return &SessionHandler{service: s}
}

// CredentialsRequest carries a username and password.
type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserResponse is the public view of the logged-in user. The token is never echoed.
type UserResponse struct {
	Username   string      `json:"username"`
	Role       domain.Role `json:"role"`
	Authorized bool        `json:"authorized"`
}

func toUserResponse(u *domain.User) UserResponse {
	return UserResponse{Username: u.Username, Role: u.Role, Authorized: u.IsAuthorized()}
}

func (r CredentialsRequest) valid() bool {
	return r.Username != "" && r.Password != ""
}

// Login handles POST /session/login.
// @Summary Log in
// @Tags Session
// @Accept json
// @Produce json
// @Param credentials body CredentialsRequest true "Credentials"
// @Success 200 {object} UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /session/login [post]
func (h *SessionHandler) Login(c *fiber.Ctx) error {
	var req CredentialsRequest
	if err := c.BodyParser(&req); err != nil || !req.valid() {
		return badRequest(c, "Username and password are required")
	}

	u, err := h.service.Login(c.UserContext(), req.Username, req.Password)
	if err != nil {
		return fail(c, "login", err)
	}
	return c.Status(http.StatusOK).JSON(toUserResponse(u))
}

// Register handles POST /session/register.
// @Summary Register an account
// @Tags Session
// @Accept json
// @Produce json
// @Param credentials body CredentialsRequest true "Credentials"
// @Success 201 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Router /session/register [post]
func (h *SessionHandler) Register(c *fiber.Ctx) error {
	var req CredentialsRequest
	if err := c.BodyParser(&req); err != nil || !req.valid() {
		return badRequest(c, "Username and password are required")
	}

	if err := h.service.Register(c.UserContext(), req.Username, req.Password); err != nil {
		return fail(c, "register", err)
	}
	return c.Status(http.StatusCreated).JSON(MessageResponse{Message: "Account created"})
}

// Logout handles DELETE /session.
// @Summary Log out
// @Tags Session
// @Produce json
// @Success 200 {object} MessageResponse
// @Router /session [delete]
func (h *SessionHandler) Logout(c *fiber.Ctx) error {
	if err := h.service.Logout(c.UserContext()); err != nil {
		return fail(c, "logout", err)
	}
	return acknowledge(c, "Logged out")
}

// Current handles GET /session.
// @Summary Current user
// @Tags Session
// @Produce json
// @Success 200 {object} UserResponse
// @Failure 401 {object} ErrorResponse
// @Router /session [get]
func (h *SessionHandler) Current(c *fiber.Ctx) error {
	u := h.service.Current()
	if u == nil {
		return c.Status(http.StatusUnauthorized).JSON(ErrorResponse{
			Message: "Not logged in",
			RayID:   rayID(c),
		})
	}
	return c.Status(http.StatusOK).JSON(toUserResponse(u))
}
