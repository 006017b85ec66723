package ports

import (
	"context"
	"errors"
	"io"

	"dockyard/internal/features/dock/domain"
	"dockyard/internal/features/dock/state"
)

// ErrUnauthorized is returned when the dock API rejects the bearer token or credentials.
var ErrUnauthorized = errors.New("unauthorized")

// AuthProvider talks to the authentication endpoints.
type AuthProvider interface {
	Login(ctx context.Context, username, password string) (*domain.User, error)
	Register(ctx context.Context, username, password string) error
}

// TrailerAPI is the trailer half of the dock REST API.
type TrailerAPI interface {
	AllTrailers(ctx context.Context, token string) ([]domain.Trailer, error)
	TodaysTrailers(ctx context.Context, token, date string) ([]domain.Trailer, error)
	TrailersInRange(ctx context.Context, token, from, to string) ([]domain.Trailer, error)
	SetArrivalTime(ctx context.Context, token, trailerID, arrivalTime string) error
	ToggleHotTrailer(ctx context.Context, token, trailerID string) error
	SetSchedule(ctx context.Context, token string, req domain.ScheduleRequest) error
	LoadInfo(ctx context.Context, token, trailerID string) ([]domain.SidParts, error)
	DailyLoads(ctx context.Context, token, date string) ([]domain.Sids, error)
}

// ShipmentAPI is the shipment half of the dock REST API.
type ShipmentAPI interface {
	AllShipments(ctx context.Context, token string) ([]domain.Shipment, error)
	TodaysShipments(ctx context.Context, token, date string) ([]domain.Shipment, error)
	CreateShipment(ctx context.Context, token string, s domain.Shipment) (*domain.Shipment, error)
	SetShipmentTrailer(ctx context.Context, token, loadID, arrivalTime, trailerNum string) error
	SetShipmentDoor(ctx context.Context, token, loadID, door string) error
	StartShipmentPick(ctx context.Context, token, loadID, picker, startTime string) error
	FinishShipmentPick(ctx context.Context, token, loadID, finishTime string) error
	VerifyShipment(ctx context.Context, token, loadID, verifiedBy string) error
	BeginShipmentLoading(ctx context.Context, token, loadID string) error
	DepartShipment(ctx context.Context, token, loadID, departTime, seal string) error
	HoldShipment(ctx context.Context, token, loadID string) error
	ShipmentDetails(ctx context.Context, token, loadID string) ([]domain.ShipmentLine, error)
	SetShipmentLines(ctx context.Context, token, loadID string, lines []domain.ShipmentLine) error
}

// Uploader forwards raw CSV files to the ingestion service.
type Uploader interface {
	Upload(ctx context.Context, token, filename string, r io.Reader) error
}

// StateStore is the application state store as seen by commands and the live channel.
type StateStore interface {
	Dispatch(ctx context.Context, a state.Action) error
	Snapshot() state.State
}

// Broadcaster fans a confirmed change out to peer clients.
type Broadcaster interface {
	Broadcast(ctx context.Context, a state.Action) error
}

// StateStorage persists the parts of the state that survive a restart.
// Loaders return zero values, not errors, when nothing is stored.
type StateStorage interface {
	SaveUser(ctx context.Context, u domain.User) error
	LoadUser(ctx context.Context) (*domain.User, error)
	DeleteUser(ctx context.Context) error
	SaveRecent(ctx context.Context, recent []domain.RecentTrailer) error
	LoadRecent(ctx context.Context) ([]domain.RecentTrailer, error)
	SaveView(ctx context.Context, v domain.View) error
	LoadView(ctx context.Context) (domain.View, error)
}
