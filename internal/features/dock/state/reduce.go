package state

import (
	"errors"
	"fmt"
	"slices"

	"dockyard/internal/core/ordered"
	"dockyard/internal/features/dock/domain"
)

// ErrUnhandledAction is returned for an Action the reducer has no case for.
var ErrUnhandledAction = errors.New("unhandled action")

// Reduce computes the state that follows s under a. It never mutates s: lists
// that change are cloned first, so any snapshot taken before the call stays valid.
// A rejected action returns s unchanged together with the reason.
func Reduce(s State, a Action) (State, error) {
	next := s

	switch a := a.(type) {
	case SetUser:
		u := a.User
		next.User = &u
	case ClearUser:
		next.User = nil
	case Logout:
		next = State{
			CurrentView: domain.ViewLanding,
			Recent:      s.Recent,
		}

	case SetCurrentView:
		if a.View == s.CurrentView {
			return s, nil
		}
		next.LastView = s.CurrentView
		next.CurrentView = a.View
	case GoBack:
		if s.LastView == "" {
			return s, nil
		}
		next.CurrentView, next.LastView = s.LastView, s.CurrentView

	case SetTrailers:
		next.Trailers = ordered.FromSlice(a.Trailers, trailerKey)
	case SetShipments:
		next.Shipments = ordered.FromSlice(a.Shipments, shipmentKey)
	case SetCurrentTrailer:
		t := a.Trailer
		next.CurrentTrailer = &t
	case ClearCurrentTrailer:
		next.CurrentTrailer = nil
	case SetCurrentShipment:
		sh := a.Shipment
		next.CurrentShipment = &sh
	case ClearCurrentShipment:
		next.CurrentShipment = nil
	case SetLiveStatus:
		next.LiveConnected = a.Connected
	case AddMessage:
		next.Messages = append(slices.Clone(s.Messages), a.Message)

	case ToggleHotTrailer:
		return updateTrailer(s, a.TrailerID, domain.Trailer.ToggleHot)
	case SetTrailerArrival:
		return updateTrailer(s, a.TrailerID, func(t domain.Trailer) domain.Trailer {
			return t.Arrive(a.ArrivalTime)
		})
	case ScheduleTrailer:
		return updateTrailer(s, a.Request.TrailerID, func(t domain.Trailer) domain.Trailer {
			return t.ApplySchedule(a.Request)
		})
	case SetTrailerDoor:
		return updateTrailer(s, a.TrailerID, func(t domain.Trailer) domain.Trailer {
			return t.AssignDoor(a.Door)
		})

	case AddShipment:
		next.Shipments = s.Shipments.Clone()
		next.Shipments.Prepend(a.Shipment.LoadID, a.Shipment)
	case SetShipmentTrailer:
		return updateShipment(s, a.LoadID, func(sh domain.Shipment) (domain.Shipment, error) {
			return sh.AssignTrailer(a.ArrivalTime, a.TrailerNum)
		})
	case SetShipmentDoor:
		return updateShipment(s, a.LoadID, func(sh domain.Shipment) (domain.Shipment, error) {
			return sh.AssignDoor(a.Door)
		})
	case StartShipmentPick:
		return updateShipment(s, a.LoadID, func(sh domain.Shipment) (domain.Shipment, error) {
			return sh.StartPick(a.Picker, a.StartTime)
		})
	case FinishShipmentPick:
		return updateShipment(s, a.LoadID, func(sh domain.Shipment) (domain.Shipment, error) {
			return sh.FinishPick(a.FinishTime)
		})
	case VerifyShipment:
		return updateShipment(s, a.LoadID, func(sh domain.Shipment) (domain.Shipment, error) {
			return sh.Verify(a.VerifiedBy)
		})
	case BeginShipmentLoading:
		return updateShipment(s, a.LoadID, domain.Shipment.BeginLoading)
	case DepartShipment:
		return updateShipment(s, a.LoadID, func(sh domain.Shipment) (domain.Shipment, error) {
			return sh.Depart(a.DepartTime, a.Seal)
		})
	case ToggleShipmentHold:
		return updateShipment(s, a.LoadID, domain.Shipment.ToggleHold)

	case AddRecentTrailer:
		next.Recent = s.Recent.Clone()
		next.Recent.Set(a.Trailer.TrailerID, a.Trailer)
	case SetRecentTrailers:
		next.Recent = ordered.FromSlice(a.Trailers, recentKey)
	case ClearRecentTrailers:
		next.Recent = ordered.Map[string, domain.RecentTrailer]{}

	default:
		return s, fmt.Errorf("%w: %T", ErrUnhandledAction, a)
	}

	return next, nil
}

func updateTrailer(s State, id string, fn func(domain.Trailer) domain.Trailer) (State, error) {
	if !s.Trailers.Has(id) {
		return s, fmt.Errorf("%w: %s", domain.ErrUnknownTrailer, id)
	}

	next := s
	next.Trailers = s.Trailers.Clone()
	if _, err := next.Trailers.Update(id, func(t domain.Trailer) (domain.Trailer, error) {
		return fn(t), nil
	}); err != nil {
		return s, err
	}

	if s.CurrentTrailer != nil && s.CurrentTrailer.TrailerID == id {
		t, _ := next.Trailers.Get(id)
		next.CurrentTrailer = &t
	}
	return next, nil
}

func updateShipment(s State, loadID string, fn func(domain.Shipment) (domain.Shipment, error)) (State, error) {
	if !s.Shipments.Has(loadID) {
		return s, fmt.Errorf("%w: %s", domain.ErrUnknownShipment, loadID)
	}

	next := s
	next.Shipments = s.Shipments.Clone()
	if _, err := next.Shipments.Update(loadID, fn); err != nil {
		return s, err
	}

	if s.CurrentShipment != nil && s.CurrentShipment.LoadID == loadID {
		sh, _ := next.Shipments.Get(loadID)
		next.CurrentShipment = &sh
	}
	return next, nil
}
