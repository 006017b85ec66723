// Package service runs the live update channel: one relay connection whose
// inbound notifications are replayed into the store and whose outbound side
// fans confirmed changes out to peers.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"dockyard/internal/core/logger"
	"dockyard/internal/core/metrics"
	dockports "dockyard/internal/features/dock/ports"
	"dockyard/internal/features/dock/state"
	"dockyard/internal/features/live/domain"
	"dockyard/internal/features/live/ports"

	"go.uber.org/zap"
)

const (
	directionIn  = "in"
	directionOut = "out"
)

// Channel owns the process-wide relay connection.
type Channel struct {
	dialer ports.Dialer
	url    string
	store  dockports.StateStore
	codec  *Codec

	mu   sync.Mutex
	conn ports.Conn
}

// NewChannel creates a Channel. Nothing is dialed until Run.
func NewChannel(dialer ports.Dialer, url string, store dockports.StateStore, codec *Codec) *Channel {
	return &Channel{
		dialer: dialer,
		url:    url,
		store:  store,
		codec:  codec,
	}
}

// Run dials the relay and applies inbound notifications until ctx is done or
// the connection drops. There is no reconnect; a dropped connection is
// returned as an error and the store is marked disconnected.
func (c *Channel) Run(ctx context.Context) error {
	log := logger.Named("live")

	conn, err := c.dialer.Dial(ctx, c.url)
	if err != nil {
		return fmt.Errorf("live: failed to connect: %w", err)
	}
	c.setConn(conn)
	_ = c.store.Dispatch(ctx, state.SetLiveStatus{Connected: true})

	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer func() {
		stop()
		c.setConn(nil)
		_ = conn.Close()
		_ = c.store.Dispatch(context.WithoutCancel(ctx), state.SetLiveStatus{Connected: false})
	}()

	for {
		data, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				log.Info("Live channel closed")
				return nil
			}
			log.Error("Live channel lost", zap.Error(err))
			_ = c.store.Dispatch(ctx, state.AddMessage{Message: "Live updates disconnected"})
			return fmt.Errorf("live: connection lost: %w", err)
		}
		c.handle(ctx, data)
	}
}

// handle applies one inbound frame. Malformed or unknown frames are logged
// and dropped; the connection stays up.
func (c *Channel) handle(ctx context.Context, data []byte) {
	log := logger.Named("live")

	var env domain.Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		metrics.LiveMessages.WithLabelValues(directionIn, "invalid", metrics.OutcomeDropped).Inc()
		log.Warn("Dropping malformed live message", zap.Error(err), zap.Int("bytes", len(data)))
		return
	}

	msgType := string(env.Type.Canonical())
	action, err := c.codec.Decode(env)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownMessageType) {
			msgType = "unknown"
		}
		metrics.LiveMessages.WithLabelValues(directionIn, msgType, metrics.OutcomeDropped).Inc()
		log.Warn("Dropping live message", zap.String("type", string(env.Type)), zap.Error(err))
		return
	}

	if err := c.store.Dispatch(ctx, action); err != nil {
		metrics.LiveMessages.WithLabelValues(directionIn, msgType, metrics.OutcomeRejected).Inc()
		return
	}
	metrics.LiveMessages.WithLabelValues(directionIn, msgType, metrics.OutcomeOK).Inc()
	log.Debug("Applied live message", zap.String("type", msgType), zap.String("action", action.ActionName()))
}

// Broadcast sends a confirmed change to peers.
func (c *Channel) Broadcast(ctx context.Context, a state.Action) error {
	env, err := c.codec.Encode(a)
	if err != nil {
		return err
	}
	b, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("live: failed to encode envelope: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		metrics.LiveMessages.WithLabelValues(directionOut, string(env.Type), metrics.OutcomeDropped).Inc()
		return domain.ErrNotConnected
	}
	if err := c.conn.WriteMessage(b); err != nil {
		metrics.LiveMessages.WithLabelValues(directionOut, string(env.Type), metrics.OutcomeError).Inc()
		return fmt.Errorf("live: send failed: %w", err)
	}
	metrics.LiveMessages.WithLabelValues(directionOut, string(env.Type), metrics.OutcomeOK).Inc()
	return nil
}

// Connected reports whether a relay connection is open.
func (c *Channel) Connected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn != nil
}

func (c *Channel) setConn(conn ports.Conn) {
	c.mu.Lock()
	c.conn = conn
	c.mu.Unlock()
}
