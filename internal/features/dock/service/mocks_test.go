package service

import (
	"context"
	"io"

	"dockyard/internal/features/dock/domain"
	"dockyard/internal/features/dock/state"

	"github.com/stretchr/testify/mock"
)

// MockAuthProvider is a mock implementation of ports.AuthProvider
type MockAuthProvider struct {
	mock.Mock
}

func (m *MockAuthProvider) Login(ctx context.Context, username, password string) (*domain.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockAuthProvider) Register(ctx context.Context, username, password string) error {
	return m.Called(ctx, username, password).Error(0)
}

// MockTrailerAPI is a mock implementation of ports.TrailerAPI
type MockTrailerAPI struct {
	mock.Mock
}

func (m *MockTrailerAPI) AllTrailers(ctx context.Context, token string) ([]domain.Trailer, error) {
	args := m.Called(ctx, token)
	return args.Get(0).([]domain.Trailer), args.Error(1)
}

func (m *MockTrailerAPI) TodaysTrailers(ctx context.Context, token, date string) ([]domain.Trailer, error) {
	args := m.Called(ctx, token, date)
	return args.Get(0).([]domain.Trailer), args.Error(1)
}

func (m *MockTrailerAPI) TrailersInRange(ctx context.Context, token, from, to string) ([]domain.Trailer, error) {
	args := m.Called(ctx, token, from, to)
	return args.Get(0).([]domain.Trailer), args.Error(1)
}

func (m *MockTrailerAPI) SetArrivalTime(ctx context.Context, token, trailerID, arrivalTime string) error {
	return m.Called(ctx, token, trailerID, arrivalTime).Error(0)
}

func (m *MockTrailerAPI) ToggleHotTrailer(ctx context.Context, token, trailerID string) error {
	return m.Called(ctx, token, trailerID).Error(0)
}

func (m *MockTrailerAPI) SetSchedule(ctx context.Context, token string, req domain.ScheduleRequest) error {
	return m.Called(ctx, token, req).Error(0)
}

func (m *MockTrailerAPI) LoadInfo(ctx context.Context, token, trailerID string) ([]domain.SidParts, error) {
	args := m.Called(ctx, token, trailerID)
	return args.Get(0).([]domain.SidParts), args.Error(1)
}

func (m *MockTrailerAPI) DailyLoads(ctx context.Context, token, date string) ([]domain.Sids, error) {
	args := m.Called(ctx, token, date)
	return args.Get(0).([]domain.Sids), args.Error(1)
}

// MockShipmentAPI is a mock implementation of ports.ShipmentAPI
type MockShipmentAPI struct {
	mock.Mock
}

func (m *MockShipmentAPI) AllShipments(ctx context.Context, token string) ([]domain.Shipment, error) {
	args := m.Called(ctx, token)
	return args.Get(0).([]domain.Shipment), args.Error(1)
}

func (m *MockShipmentAPI) TodaysShipments(ctx context.Context, token, date string) ([]domain.Shipment, error) {
	args := m.Called(ctx, token, date)
	return args.Get(0).([]domain.Shipment), args.Error(1)
}

func (m *MockShipmentAPI) CreateShipment(ctx context.Context, token string, s domain.Shipment) (*domain.Shipment, error) {
	args := m.Called(ctx, token, s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shipment), args.Error(1)
}

func (m *MockShipmentAPI) SetShipmentTrailer(ctx context.Context, token, loadID, arrivalTime, trailerNum string) error {
	return m.Called(ctx, token, loadID, arrivalTime, trailerNum).Error(0)
}

func (m *MockShipmentAPI) SetShipmentDoor(ctx context.Context, token, loadID, door string) error {
	return m.Called(ctx, token, loadID, door).Error(0)
}

func (m *MockShipmentAPI) StartShipmentPick(ctx context.Context, token, loadID, picker, startTime string) error {
	return m.Called(ctx, token, loadID, picker, startTime).Error(0)
}

func (m *MockShipmentAPI) FinishShipmentPick(ctx context.Context, token, loadID, finishTime string) error {
	return m.Called(ctx, token, loadID, finishTime).Error(0)
}

func (m *MockShipmentAPI) VerifyShipment(ctx context.Context, token, loadID, verifiedBy string) error {
	return m.Called(ctx, token, loadID, verifiedBy).Error(0)
}

func (m *MockShipmentAPI) BeginShipmentLoading(ctx context.Context, token, loadID string) error {
	return m.Called(ctx, token, loadID).Error(0)
}

func (m *MockShipmentAPI) DepartShipment(ctx context.Context, token, loadID, departTime, seal string) error {
	return m.Called(ctx, token, loadID, departTime, seal).Error(0)
}

func (m *MockShipmentAPI) HoldShipment(ctx context.Context, token, loadID string) error {
	return m.Called(ctx, token, loadID).Error(0)
}

func (m *MockShipmentAPI) ShipmentDetails(ctx context.Context, token, loadID string) ([]domain.ShipmentLine, error) {
	args := m.Called(ctx, token, loadID)
	return args.Get(0).([]domain.ShipmentLine), args.Error(1)
}

func (m *MockShipmentAPI) SetShipmentLines(ctx context.Context, token, loadID string, lines []domain.ShipmentLine) error {
	return m.Called(ctx, token, loadID, lines).Error(0)
}

// MockUploader is a mock implementation of ports.Uploader
type MockUploader struct {
	mock.Mock
}

func (m *MockUploader) Upload(ctx context.Context, token, filename string, r io.Reader) error {
	return m.Called(ctx, token, filename, r).Error(0)
}

// MockBroadcaster is a mock implementation of ports.Broadcaster
type MockBroadcaster struct {
	mock.Mock
}

func (m *MockBroadcaster) Broadcast(ctx context.Context, a state.Action) error {
	return m.Called(ctx, a).Error(0)
}

// MockStateStorage is a mock implementation of ports.StateStorage
type MockStateStorage struct {
	mock.Mock
}

func (m *MockStateStorage) SaveUser(ctx context.Context, u domain.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockStateStorage) LoadUser(ctx context.Context) (*domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockStateStorage) DeleteUser(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockStateStorage) SaveRecent(ctx context.Context, recent []domain.RecentTrailer) error {
	return m.Called(ctx, recent).Error(0)
}

func (m *MockStateStorage) LoadRecent(ctx context.Context) ([]domain.RecentTrailer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RecentTrailer), args.Error(1)
}

func (m *MockStateStorage) SaveView(ctx context.Context, v domain.View) error {
	return m.Called(ctx, v).Error(0)
}

func (m *MockStateStorage) LoadView(ctx context.Context) (domain.View, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.View), args.Error(1)
}

func storeWith(role domain.Role) *state.Store {
	st := state.Initial()
	if role != "" {
		st.User = &domain.User{Username: "ana", Role: role, Token: "tok"}
	}
	return state.NewStore(st)
}
