package state

import "dockyard/internal/features/dock/domain"

// Action is a closed set of state changes. Only types in this package implement it.
type Action interface {
	// ActionName is a stable identifier used in logs and metrics.
	ActionName() string
	sealed()
}

type (
	SetUser   struct{ User domain.User }
	ClearUser struct{}
	// Logout drops the session: user, loaded lists, selections and messages.
	Logout struct{}

	SetCurrentView struct{ View domain.View }
	// GoBack returns to the view shown before the current one.
	GoBack struct{}

	SetTrailers          struct{ Trailers []domain.Trailer }
	SetShipments         struct{ Shipments []domain.Shipment }
	SetCurrentTrailer    struct{ Trailer domain.Trailer }
	ClearCurrentTrailer  struct{}
	SetCurrentShipment   struct{ Shipment domain.Shipment }
	ClearCurrentShipment struct{}
	SetLiveStatus        struct{ Connected bool }
	AddMessage           struct{ Message string }

	ToggleHotTrailer  struct{ TrailerID string }
	SetTrailerArrival struct {
		TrailerID   string
		ArrivalTime string
	}
	ScheduleTrailer struct{ Request domain.ScheduleRequest }
	SetTrailerDoor  struct {
		TrailerID string
		Door      string
	}

	// AddShipment puts a new shipment at the front of the list.
	AddShipment        struct{ Shipment domain.Shipment }
	SetShipmentTrailer struct {
		LoadID      string
		ArrivalTime string
		TrailerNum  string
	}
	SetShipmentDoor struct {
		LoadID string
		Door   string
	}
	StartShipmentPick struct {
		LoadID    string
		Picker    string
		StartTime string
	}
	FinishShipmentPick struct {
		LoadID     string
		FinishTime string
	}
	VerifyShipment struct {
		LoadID     string
		VerifiedBy string
	}
	BeginShipmentLoading struct{ LoadID string }
	DepartShipment       struct {
		LoadID     string
		DepartTime string
		Seal       string
	}
	ToggleShipmentHold struct{ LoadID string }

	// AddRecentTrailer updates the entry with the same trailer id or appends a new one.
	AddRecentTrailer    struct{ Trailer domain.RecentTrailer }
	SetRecentTrailers   struct{ Trailers []domain.RecentTrailer }
	ClearRecentTrailers struct{}
)

func (SetUser) ActionName() string              { return "set_user" }
func (ClearUser) ActionName() string            { return "clear_user" }
func (Logout) ActionName() string               { return "logout" }
func (SetCurrentView) ActionName() string       { return "set_current_view" }
func (GoBack) ActionName() string               { return "go_back" }
func (SetTrailers) ActionName() string          { return "set_trailers" }
func (SetShipments) ActionName() string         { return "set_shipments" }
func (SetCurrentTrailer) ActionName() string    { return "set_current_trailer" }
func (ClearCurrentTrailer) ActionName() string  { return "clear_current_trailer" }
func (SetCurrentShipment) ActionName() string   { return "set_current_shipment" }
func (ClearCurrentShipment) ActionName() string { return "clear_current_shipment" }
func (SetLiveStatus) ActionName() string        { return "set_live_status" }
func (AddMessage) ActionName() string           { return "add_message" }
func (ToggleHotTrailer) ActionName() string     { return "toggle_hot_trailer" }
func (SetTrailerArrival) ActionName() string    { return "set_trailer_arrival" }
func (ScheduleTrailer) ActionName() string      { return "schedule_trailer" }
func (SetTrailerDoor) ActionName() string       { return "set_trailer_door" }
func (AddShipment) ActionName() string          { return "add_shipment" }
func (SetShipmentTrailer) ActionName() string   { return "set_shipment_trailer" }
func (SetShipmentDoor) ActionName() string      { return "set_shipment_door" }
func (StartShipmentPick) ActionName() string    { return "start_shipment_pick" }
func (FinishShipmentPick) ActionName() string   { return "finish_shipment_pick" }
func (VerifyShipment) ActionName() string       { return "verify_shipment" }
func (BeginShipmentLoading) ActionName() string { return "begin_shipment_loading" }
func (DepartShipment) ActionName() string       { return "depart_shipment" }
func (ToggleShipmentHold) ActionName() string   { return "toggle_shipment_hold" }
func (AddRecentTrailer) ActionName() string     { return "add_recent_trailer" }
func (SetRecentTrailers) ActionName() string    { return "set_recent_trailers" }
func (ClearRecentTrailers) ActionName() string  { return "clear_recent_trailers" }

func (SetUser) sealed()              {}
func (ClearUser) sealed()            {}
func (Logout) sealed()               {}
func (SetCurrentView) sealed()       {}
func (GoBack) sealed()               {}
func (SetTrailers) sealed()          {}
func (SetShipments) sealed()         {}
func (SetCurrentTrailer) sealed()    {}
func (ClearCurrentTrailer) sealed()  {}
func (SetCurrentShipment) sealed()   {}
func (ClearCurrentShipment) sealed() {}
func (SetLiveStatus) sealed()        {}
func (AddMessage) sealed()           {}
func (ToggleHotTrailer) sealed()     {}
func (SetTrailerArrival) sealed()    {}
func (ScheduleTrailer) sealed()      {}
func (SetTrailerDoor) sealed()       {}
func (AddShipment) sealed()          {}
func (SetShipmentTrailer) sealed()   {}
func (SetShipmentDoor) sealed()      {}
func (StartShipmentPick) sealed()    {}
func (FinishShipmentPick) sealed()   {}
func (VerifyShipment) sealed()       {}
func (BeginShipmentLoading) sealed() {}
func (DepartShipment) sealed()       {}
func (ToggleShipmentHold) sealed()   {}
func (AddRecentTrailer) sealed()     {}
func (SetRecentTrailers) sealed()    {}
func (ClearRecentTrailers) sealed()  {}
