package ports

import (
	"context"
	"io"

	"dockyard/internal/features/dock/domain"
)

// SessionService defines the primary port for login state.
type SessionService interface {
	Login(ctx context.Context, username, password string) (*domain.User, error)
	Register(ctx context.Context, username, password string) error
	Logout(ctx context.Context) error
	Current() *domain.User
}

// TrailerService defines the primary port for trailer commands and queries.
type TrailerService interface {
	LoadAll(ctx context.Context) ([]domain.Trailer, error)
	LoadToday(ctx context.Context, date string) ([]domain.Trailer, error)
	LoadRange(ctx context.Context, from, to string) ([]domain.Trailer, error)
	SetArrival(ctx context.Context, trailerID, arrivalTime string) error
	ToggleHot(ctx context.Context, trailerID string) error
	Schedule(ctx context.Context, req domain.ScheduleRequest) error
	LoadDetails(ctx context.Context, trailerID string) ([]domain.SidParts, error)
	DailyLoads(ctx context.Context, date string) ([]domain.Sids, error)
	Select(ctx context.Context, trailerID string) error
	ClearRecent(ctx context.Context) error
}

// ShipmentService defines the primary port for shipment commands and queries.
type ShipmentService interface {
	LoadAll(ctx context.Context) ([]domain.Shipment, error)
	LoadToday(ctx context.Context, date string) ([]domain.Shipment, error)
	Create(ctx context.Context, s domain.Shipment) (*domain.Shipment, error)
	AssignTrailer(ctx context.Context, loadID, trailerNum, arrivalTime string) error
	AssignDoor(ctx context.Context, loadID, door string) error
	StartPick(ctx context.Context, loadID, picker string) error
	FinishPick(ctx context.Context, loadID string) error
	Verify(ctx context.Context, loadID, verifiedBy string) error
	BeginLoading(ctx context.Context, loadID string) error
	Depart(ctx context.Context, loadID, seal string) error
	ToggleHold(ctx context.Context, loadID string) error
	Details(ctx context.Context, loadID string) ([]domain.ShipmentLine, error)
	SaveLines(ctx context.Context, loadID string, lines []domain.ShipmentLine) error
	Select(ctx context.Context, loadID string) error
}

// UploadService defines the primary port for raw CSV passthrough.
type UploadService interface {
	Upload(ctx context.Context, filename string, r io.Reader) error
}
