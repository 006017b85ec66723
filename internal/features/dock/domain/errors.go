package domain

import "errors"

var (
	// ErrUnknownTrailer is returned when no trailer matches the given TrailerID.
	ErrUnknownTrailer = errors.New("unknown trailer")
	// ErrUnknownShipment is returned when no shipment matches the given LoadId.
	ErrUnknownShipment = errors.New("unknown shipment")
	// ErrInvalidTransition is returned when a shipment event does not apply to its current status.
	ErrInvalidTransition = errors.New("invalid shipment transition")
	// ErrUnknownView is returned for a view name outside the closed set.
	ErrUnknownView = errors.New("unknown view")
)
