package state

import (
	"testing"

	"dockyard/internal/features/dock/domain"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded(t *testing.T) State {
	t.Helper()
	s, err := Reduce(Initial(), SetTrailers{Trailers: []domain.Trailer{
		{TrailerID: "T1", Schedule: domain.Schedule{ScheduleTime: "08:00"}},
		{TrailerID: "T2", Schedule: domain.Schedule{ScheduleTime: "09:00", IsHot: true}},
	}})
	require.NoError(t, err)
	s, err = Reduce(s, SetShipments{Shipments: []domain.Shipment{
		{LoadID: "L1", Status: domain.StatusPicking, Picker: "ana"},
		{LoadID: "L2", Status: domain.StatusNotStarted},
		{LoadID: "L3", Status: domain.StatusComplete},
	}})
	require.NoError(t, err)
	return s
}

func TestReduce_FinishPickTouchesOnlyTarget(t *testing.T) {
	s := seeded(t)
	before := s.Shipments.Values()

	next, err := Reduce(s, FinishShipmentPick{LoadID: "L1", FinishTime: "10:00:00"})
	require.NoError(t, err)

	want := []domain.Shipment{
		{LoadID: "L1", Status: domain.StatusVerification, Picker: "ana", PickFinishTime: "10:00:00"},
		before[1],
		before[2],
	}
	if diff := cmp.Diff(want, next.Shipments.Values()); diff != "" {
		t.Errorf("shipments mismatch (-want +got):\n%s", diff)
	}

	// the previous snapshot is untouched
	if diff := cmp.Diff(before, s.Shipments.Values()); diff != "" {
		t.Errorf("previous state mutated (-want +got):\n%s", diff)
	}
}

func TestReduce_ToggleHotTwiceRestores(t *testing.T) {
	s := seeded(t)

	once, err := Reduce(s, ToggleHotTrailer{TrailerID: "T1"})
	require.NoError(t, err)
	tr, _ := once.Trailer("T1")
	assert.True(t, tr.Schedule.IsHot)

	twice, err := Reduce(once, ToggleHotTrailer{TrailerID: "T1"})
	require.NoError(t, err)
	if diff := cmp.Diff(s.Trailers.Values(), twice.Trailers.Values()); diff != "" {
		t.Errorf("toggle is not an involution (-want +got):\n%s", diff)
	}
}

func TestReduce_UnknownKeysAreRejected(t *testing.T) {
	s := seeded(t)

	_, err := Reduce(s, ToggleHotTrailer{TrailerID: "nope"})
	assert.ErrorIs(t, err, domain.ErrUnknownTrailer)

	_, err = Reduce(s, SetShipmentDoor{LoadID: "nope", Door: "4"})
	assert.ErrorIs(t, err, domain.ErrUnknownShipment)
}

func TestReduce_InvalidTransitionLeavesStateUnchanged(t *testing.T) {
	s := seeded(t)

	next, err := Reduce(s, SetShipmentDoor{LoadID: "L3", Door: "4"})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	if diff := cmp.Diff(s.Shipments.Values(), next.Shipments.Values()); diff != "" {
		t.Errorf("state changed on rejected action:\n%s", diff)
	}
}

func TestReduce_RecentTrailersUpsert(t *testing.T) {
	s := Initial()

	s, err := Reduce(s, AddRecentTrailer{Trailer: domain.RecentTrailer{TrailerID: "T1", Date: "2024-05-01", Time: "08:00", Scac: "AAAA"}})
	require.NoError(t, err)
	s, err = Reduce(s, AddRecentTrailer{Trailer: domain.RecentTrailer{TrailerID: "T2", Date: "2024-05-01", Time: "09:00", Scac: "BBBB"}})
	require.NoError(t, err)
	assert.Equal(t, 2, s.Recent.Len())

	s, err = Reduce(s, AddRecentTrailer{Trailer: domain.RecentTrailer{TrailerID: "T1", Date: "2024-05-02", Time: "11:00", Scac: "CCCC"}})
	require.NoError(t, err)
	assert.Equal(t, 2, s.Recent.Len())

	want := []domain.RecentTrailer{
		{TrailerID: "T1", Date: "2024-05-02", Time: "11:00", Scac: "CCCC"},
		{TrailerID: "T2", Date: "2024-05-01", Time: "09:00", Scac: "BBBB"},
	}
	if diff := cmp.Diff(want, s.Recent.Values()); diff != "" {
		t.Errorf("recent mismatch (-want +got):\n%s", diff)
	}

	s, err = Reduce(s, ClearRecentTrailers{})
	require.NoError(t, err)
	assert.Zero(t, s.Recent.Len())
}

func TestReduce_AddShipmentPrepends(t *testing.T) {
	s := seeded(t)

	next, err := Reduce(s, AddShipment{Shipment: domain.Shipment{LoadID: "L9"}})
	require.NoError(t, err)

	assert.Equal(t, []string{"L9", "L1", "L2", "L3"}, next.Shipments.Keys())
	assert.Equal(t, 3, s.Shipments.Len())
}

func TestReduce_ScheduleTrailerUpdatesSelection(t *testing.T) {
	s := seeded(t)
	tr, _ := s.Trailer("T1")
	s, err := Reduce(s, SetCurrentTrailer{Trailer: tr})
	require.NoError(t, err)

	next, err := Reduce(s, ScheduleTrailer{Request: domain.ScheduleRequest{TrailerID: "T1", ScheduleTime: "12:30", Door: "7"}})
	require.NoError(t, err)

	require.NotNil(t, next.CurrentTrailer)
	assert.Equal(t, "12:30", next.CurrentTrailer.Schedule.ScheduleTime)
	assert.Equal(t, "7", next.CurrentTrailer.Schedule.DoorNumber)
	assert.Equal(t, "08:00", s.CurrentTrailer.Schedule.ScheduleTime)
}

func TestReduce_ViewHistory(t *testing.T) {
	s := Initial()

	s, _ = Reduce(s, SetCurrentView{View: domain.ViewShipments})
	s, _ = Reduce(s, SetCurrentView{View: domain.ViewSetPicker})
	assert.Equal(t, domain.ViewSetPicker, s.CurrentView)
	assert.Equal(t, domain.ViewShipments, s.LastView)

	s, _ = Reduce(s, GoBack{})
	assert.Equal(t, domain.ViewShipments, s.CurrentView)
	assert.Equal(t, domain.ViewSetPicker, s.LastView)
}

func TestReduce_LogoutKeepsRecent(t *testing.T) {
	s := seeded(t)
	s, _ = Reduce(s, SetUser{User: domain.User{Username: "ana", Role: domain.RoleAdmin}})
	s, _ = Reduce(s, AddRecentTrailer{Trailer: domain.RecentTrailer{TrailerID: "T1"}})
	s, _ = Reduce(s, SetCurrentView{View: domain.ViewShipments})

	next, err := Reduce(s, Logout{})
	require.NoError(t, err)

	assert.Nil(t, next.User)
	assert.Zero(t, next.Trailers.Len())
	assert.Zero(t, next.Shipments.Len())
	assert.Equal(t, domain.ViewLanding, next.CurrentView)
	assert.Equal(t, 1, next.Recent.Len())
}

func TestReduce_Messages(t *testing.T) {
	s := Initial()
	s1, _ := Reduce(s, AddMessage{Message: "a"})
	s2, _ := Reduce(s1, AddMessage{Message: "b"})

	assert.Empty(t, s.Messages)
	assert.Equal(t, []string{"a"}, s1.Messages)
	assert.Equal(t, []string{"a", "b"}, s2.Messages)
}
