package handler

import "github.com/gofiber/fiber/v2"

// Handlers groups the dock feature's HTTP handlers.
type Handlers struct {
	Session   *SessionHandler
	State     *StateHandler
	Trailers  *TrailerHandler
	Shipments *ShipmentHandler
}

// Register mounts the dock routes on r.
func (h Handlers) Register(r fiber.Router) {
	r.Post("/session/login", h.Session.Login)
	r.Post("/session/register", h.Session.Register)
	r.Delete("/session", h.Session.Logout)
	r.Get("/session", h.Session.Current)

	r.Get("/state", h.State.Get)
	r.Put("/state/view", h.State.SetView)
	r.Post("/state/back", h.State.Back)
	r.Get("/recent", h.State.Recent)
	r.Delete("/recent", h.Trailers.ClearRecent)

	r.Get("/trailers", h.Trailers.List)
	r.Post("/trailers/:id/arrival", h.Trailers.SetArrival)
	r.Post("/trailers/:id/hot", h.Trailers.ToggleHot)
	r.Put("/trailers/:id/schedule", h.Trailers.Schedule)
	r.Get("/trailers/:id/load", h.Trailers.LoadDetails)
	r.Post("/trailers/:id/select", h.Trailers.Select)

	r.Get("/shipments", h.Shipments.List)
	r.Post("/shipments", h.Shipments.Create)
	for _, step := range []string{"trailer", "door", "pick/start", "pick/finish", "verify", "loading", "depart", "hold"} {
		r.Post("/shipments/:id/"+step, h.Shipments.Command(step))
	}
	r.Get("/shipments/:id/lines", h.Shipments.Lines)
	r.Put("/shipments/:id/lines", h.Shipments.SaveLines)
	r.Post("/shipments/:id/select", h.Shipments.Select)
	r.Post("/uploads", h.Shipments.Upload)
}
