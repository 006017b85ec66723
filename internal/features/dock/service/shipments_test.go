package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"dockyard/internal/features/dock/domain"
	"dockyard/internal/features/dock/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newShipmentService(t *testing.T, role domain.Role, shipments ...domain.Shipment) (*ShipmentService, *MockShipmentAPI, *MockBroadcaster, *state.Store) {
	t.Helper()
	api := new(MockShipmentAPI)
	b := new(MockBroadcaster)
	store := storeWith(role)
	require.NoError(t, store.Dispatch(context.Background(), state.SetShipments{Shipments: shipments}))

	svc := NewShipmentService(api, store, b, time.UTC)
	svc.now = func() time.Time { return fixedNow }
	return svc, api, b, store
}

func shipment(store *state.Store, id string) domain.Shipment {
	s, _ := store.Snapshot().Shipment(id)
	return s
}

func TestShipmentService_Lifecycle(t *testing.T) {
	ctx := context.Background()
	svc, api, b, store := newShipmentService(t, domain.RoleWrite, domain.Shipment{LoadID: "L1"})
	b.On("Broadcast", ctx, mock.Anything).Return(nil)

	api.On("SetShipmentTrailer", ctx, "tok", "L1", "08:30:15", "TR1").Return(nil).Once()
	require.NoError(t, svc.AssignTrailer(ctx, "L1", "TR1", ""))

	api.On("StartShipmentPick", ctx, "tok", "L1", "ana", "08:30:15").Return(nil).Once()
	require.NoError(t, svc.StartPick(ctx, "L1", "ana"))
	assert.Equal(t, domain.StatusPicking, shipment(store, "L1").Status)

	api.On("FinishShipmentPick", ctx, "tok", "L1", "08:30:15").Return(nil).Once()
	require.NoError(t, svc.FinishPick(ctx, "L1"))

	api.On("VerifyShipment", ctx, "tok", "L1", "bo").Return(nil).Once()
	require.NoError(t, svc.Verify(ctx, "L1", "bo"))
	assert.Equal(t, domain.StatusReadyToLoad, shipment(store, "L1").Status)

	api.On("BeginShipmentLoading", ctx, "tok", "L1").Return(nil).Once()
	require.NoError(t, svc.BeginLoading(ctx, "L1"))

	api.On("DepartShipment", ctx, "tok", "L1", "08:30:15", "SEAL").Return(nil).Once()
	require.NoError(t, svc.Depart(ctx, "L1", "SEAL"))

	got := shipment(store, "L1")
	assert.Equal(t, domain.StatusComplete, got.Status)
	assert.Equal(t, "SEAL", got.Seal)
	assert.Equal(t, "TR1", got.TrailerNum)

	api.AssertExpectations(t)
	b.AssertNumberOfCalls(t, "Broadcast", 6)
}

func TestShipmentService_RejectsBeforeCallingBackend(t *testing.T) {
	ctx := context.Background()

	t.Run("OutOfOrder", func(t *testing.T) {
		svc, api, _, _ := newShipmentService(t, domain.RoleWrite, domain.Shipment{LoadID: "L1"})
		err := svc.Depart(ctx, "L1", "S")
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
		api.AssertNotCalled(t, "DepartShipment", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("UnknownShipment", func(t *testing.T) {
		svc, _, _, _ := newShipmentService(t, domain.RoleWrite)
		assert.ErrorIs(t, svc.FinishPick(ctx, "nope"), domain.ErrUnknownShipment)
	})

	t.Run("OnHold", func(t *testing.T) {
		svc, _, _, _ := newShipmentService(t, domain.RoleWrite, domain.Shipment{LoadID: "L1", IsHold: true})
		assert.ErrorIs(t, svc.StartPick(ctx, "L1", "ana"), ErrShipmentOnHold)
	})

	t.Run("BeginLoadingNeedsArrival", func(t *testing.T) {
		svc, _, _, _ := newShipmentService(t, domain.RoleWrite,
			domain.Shipment{LoadID: "L1", Status: domain.StatusReadyToLoad})
		assert.ErrorIs(t, svc.BeginLoading(ctx, "L1"), domain.ErrInvalidTransition)
	})
}

func TestShipmentService_StartPickKeepsExistingStart(t *testing.T) {
	ctx := context.Background()
	svc, api, b, _ := newShipmentService(t, domain.RoleWrite, domain.Shipment{LoadID: "L1", PickStartTime: "06:00:00"})
	b.On("Broadcast", ctx, state.StartShipmentPick{LoadID: "L1", Picker: "ana", StartTime: "06:00:00"}).Return(nil).Once()
	api.On("StartShipmentPick", ctx, "tok", "L1", "ana", "06:00:00").Return(nil).Once()

	require.NoError(t, svc.StartPick(ctx, "L1", "ana"))
	api.AssertExpectations(t)
	b.AssertExpectations(t)
}

func TestShipmentService_ToggleHold(t *testing.T) {
	ctx := context.Background()

	t.Run("AdminOnly", func(t *testing.T) {
		svc, _, _, _ := newShipmentService(t, domain.RoleWrite, domain.Shipment{LoadID: "L1"})
		assert.ErrorIs(t, svc.ToggleHold(ctx, "L1"), ErrForbidden)
	})

	t.Run("Admin", func(t *testing.T) {
		svc, api, b, store := newShipmentService(t, domain.RoleAdmin, domain.Shipment{LoadID: "L1"})
		api.On("HoldShipment", ctx, "tok", "L1").Return(nil).Once()
		b.On("Broadcast", ctx, state.ToggleShipmentHold{LoadID: "L1"}).Return(nil).Once()

		require.NoError(t, svc.ToggleHold(ctx, "L1"))
		assert.True(t, shipment(store, "L1").IsHold)
	})

	t.Run("CompleteRejected", func(t *testing.T) {
		svc, _, _, _ := newShipmentService(t, domain.RoleAdmin, domain.Shipment{LoadID: "L1", Status: domain.StatusComplete})
		assert.ErrorIs(t, svc.ToggleHold(ctx, "L1"), domain.ErrInvalidTransition)
	})
}

func TestShipmentService_Create(t *testing.T) {
	ctx := context.Background()
	svc, api, b, store := newShipmentService(t, domain.RoleWrite, domain.Shipment{LoadID: "L1"})

	in := domain.Shipment{LoadID: "L2", Dock: "A"}
	created := &domain.Shipment{LoadID: "L2", Dock: "A", Status: domain.StatusNotStarted}
	api.On("CreateShipment", ctx, "tok", in).Return(created, nil).Once()
	b.On("Broadcast", ctx, state.AddShipment{Shipment: *created}).Return(nil).Once()

	got, err := svc.Create(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, created, got)
	assert.Equal(t, []string{"L2", "L1"}, store.Snapshot().Shipments.Keys())

	_, err = svc.Create(ctx, domain.Shipment{})
	assert.Error(t, err)
}

func TestShipmentService_LoadAllSorts(t *testing.T) {
	ctx := context.Background()
	svc, api, _, store := newShipmentService(t, domain.RoleViewer)
	api.On("AllShipments", ctx, "tok").Return([]domain.Shipment{
		{LoadID: "L1", ScheduleTime: "10:00", Dock: "A"},
		{LoadID: "L2", ScheduleTime: "09:00", Dock: "B"},
		{LoadID: "L3", ScheduleTime: "09:00", Dock: "A"},
	}, nil).Once()

	_, err := svc.LoadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"L3", "L2", "L1"}, store.Snapshot().Shipments.Keys())
}

func TestUploadService_Upload(t *testing.T) {
	ctx := context.Background()
	up := new(MockUploader)
	svc := NewUploadService(up, storeWith(domain.RoleWrite))
	r := strings.NewReader("a,b\n")

	up.On("Upload", ctx, "tok", "loads.csv", r).Return(nil).Once()
	require.NoError(t, svc.Upload(ctx, "loads.csv", r))
	up.AssertExpectations(t)

	viewer := NewUploadService(up, storeWith(domain.RoleViewer))
	assert.ErrorIs(t, viewer.Upload(ctx, "loads.csv", r), ErrForbidden)
}

func TestShipmentService_PeerRaceSkipsBroadcast(t *testing.T) {
	ctx := context.Background()
	svc, api, b, store := newShipmentService(t, domain.RoleWrite,
		domain.Shipment{LoadID: "L1", Status: domain.StatusPicking})

	api.On("FinishShipmentPick", ctx, "tok", "L1", "08:30:15").
		Run(func(mock.Arguments) {
			// a peer finishes the pick while the request is in flight
			require.NoError(t, store.Dispatch(ctx, state.FinishShipmentPick{LoadID: "L1", FinishTime: "08:29:00"}))
		}).
		Return(nil).Once()

	require.NoError(t, svc.FinishPick(ctx, "L1"))

	got := shipment(store, "L1")
	assert.Equal(t, domain.StatusVerification, got.Status)
	assert.Equal(t, "08:29:00", got.PickFinishTime)
	b.AssertNotCalled(t, "Broadcast", mock.Anything, mock.Anything)
	api.AssertExpectations(t)
}
