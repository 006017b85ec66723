// Package state holds the dock client's application state and the reducer that
// evolves it. Every change goes through Reduce; a State value is never mutated
// after it has been committed to a Store.
package state

import (
	"dockyard/internal/core/ordered"
	"dockyard/internal/features/dock/domain"
)

// State is the denormalized client state.
type State struct {
	User        *domain.User
	CurrentView domain.View
	LastView    domain.View

	Trailers  ordered.Map[string, domain.Trailer]
	Shipments ordered.Map[string, domain.Shipment]

	CurrentTrailer  *domain.Trailer
	CurrentShipment *domain.Shipment

	Recent ordered.Map[string, domain.RecentTrailer]

	Messages      []string
	LiveConnected bool
}

// Initial returns the state of a fresh client.
func Initial() State {
	return State{CurrentView: domain.ViewLanding}
}

// Trailer looks a trailer up by TrailerID.
func (s State) Trailer(id string) (domain.Trailer, bool) {
	return s.Trailers.Get(id)
}

// Shipment looks a shipment up by LoadId.
func (s State) Shipment(loadID string) (domain.Shipment, bool) {
	return s.Shipments.Get(loadID)
}

func trailerKey(t domain.Trailer) string      { return t.TrailerID }
func shipmentKey(s domain.Shipment) string    { return s.LoadID }
func recentKey(r domain.RecentTrailer) string { return r.TrailerID }
