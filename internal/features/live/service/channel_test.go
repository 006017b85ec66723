package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	dockdomain "dockyard/internal/features/dock/domain"
	"dockyard/internal/features/dock/state"
	"dockyard/internal/features/live/domain"
	"dockyard/internal/features/live/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// fakeConn feeds frames from inbound and records writes.
type fakeConn struct {
	inbound chan []byte
	closed  chan struct{}
	once    sync.Once

	mu      sync.Mutex
	written []string
}

func newFakeConn() *fakeConn {
	return &fakeConn{inbound: make(chan []byte, 16), closed: make(chan struct{})}
}

func (f *fakeConn) ReadMessage() ([]byte, error) {
	select {
	case data, ok := <-f.inbound:
		if !ok {
			return nil, errors.New("connection reset")
		}
		return data, nil
	case <-f.closed:
		return nil, errors.New("use of closed connection")
	}
}

func (f *fakeConn) WriteMessage(data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.written = append(f.written, string(data))
	return nil
}

func (f *fakeConn) Close() error {
	f.once.Do(func() { close(f.closed) })
	return nil
}

func (f *fakeConn) writes() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.written...)
}

type fakeDialer struct {
	conn *fakeConn
	err  error
}

func (d fakeDialer) Dial(ctx context.Context, url string) (ports.Conn, error) {
	if d.err != nil {
		return nil, d.err
	}
	return d.conn, nil
}

func seededStore(t *testing.T) *state.Store {
	t.Helper()
	store := state.NewStore(state.Initial())
	ctx := context.Background()
	require.NoError(t, store.Dispatch(ctx, state.SetTrailers{Trailers: []dockdomain.Trailer{{TrailerID: "T1"}}}))
	require.NoError(t, store.Dispatch(ctx, state.SetShipments{Shipments: []dockdomain.Shipment{{LoadID: "L1"}}}))
	return store
}

func TestChannel_AppliesInboundAndSurvivesGarbage(t *testing.T) {
	store := seededStore(t)
	conn := newFakeConn()
	ch := NewChannel(fakeDialer{conn: conn}, "ws://relay", store, testCodec())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- ch.Run(ctx) }()

	conn.inbound <- []byte(`{not json`)
	conn.inbound <- []byte(`{"type":"mystery","data":{"message":""}}`)
	conn.inbound <- []byte(`{"type":"finish_shipment_pick","data":{"message":"{\"LoadId\":\"L1\",\"FinishTime\":\"09:00\"}"}}`)
	conn.inbound <- []byte(`{"type":"hot_trailer","data":{"message":"T1"}}`)
	conn.inbound <- []byte(`{"type":"hot_trailer","data":{"message":"T404"}}`)
	conn.inbound <- []byte(`{"type":"new_shipment","data":{"message":"{\"LoadId\":\"L2\",\"Dock\":\"B\"}"}}`)

	require.Eventually(t, func() bool {
		return store.Snapshot().Shipments.Len() == 2
	}, time.Second, 5*time.Millisecond)

	snap := store.Snapshot()
	assert.True(t, snap.LiveConnected)
	tr, _ := snap.Trailer("T1")
	assert.True(t, tr.Schedule.IsHot)
	// pick finish on a NOT STARTED shipment is rejected by the reducer
	sh, _ := snap.Shipment("L1")
	assert.Equal(t, "", sh.PickFinishTime)
	assert.Equal(t, []string{"L2", "L1"}, snap.Shipments.Keys())

	cancel()
	require.NoError(t, <-done)
	assert.False(t, store.Snapshot().LiveConnected)
	assert.False(t, ch.Connected())
}

func TestChannel_ConnectionLost(t *testing.T) {
	store := seededStore(t)
	conn := newFakeConn()
	ch := NewChannel(fakeDialer{conn: conn}, "ws://relay", store, testCodec())

	done := make(chan error, 1)
	go func() { done <- ch.Run(context.Background()) }()

	require.Eventually(t, ch.Connected, time.Second, 5*time.Millisecond)
	close(conn.inbound)

	err := <-done
	assert.Error(t, err)
	snap := store.Snapshot()
	assert.False(t, snap.LiveConnected)
	assert.Contains(t, snap.Messages, "Live updates disconnected")
}

func TestChannel_DialFailure(t *testing.T) {
	ch := NewChannel(fakeDialer{err: errors.New("refused")}, "ws://relay", seededStore(t), testCodec())
	assert.Error(t, ch.Run(context.Background()))
}

func TestChannel_Broadcast(t *testing.T) {
	store := seededStore(t)
	conn := newFakeConn()
	ch := NewChannel(fakeDialer{conn: conn}, "ws://relay", store, testCodec())

	assert.ErrorIs(t, ch.Broadcast(context.Background(), state.ToggleHotTrailer{TrailerID: "T1"}), domain.ErrNotConnected)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- ch.Run(ctx) }()
	require.Eventually(t, ch.Connected, time.Second, 5*time.Millisecond)

	require.NoError(t, ch.Broadcast(ctx, state.ToggleShipmentHold{LoadID: "L1"}))
	assert.ErrorIs(t, ch.Broadcast(ctx, state.Logout{}), domain.ErrNotBroadcastable)

	assert.Equal(t, []string{`{"type":"shipment_hold","data":{"message":"{\"LoadId\":\"L1\"}"}}`}, conn.writes())

	cancel()
	require.NoError(t, <-done)
}
