package state

import (
	"context"
	"sync"

	"dockyard/internal/core/logger"
	"dockyard/internal/core/metrics"

	"go.uber.org/zap"
)

// Effect runs after an action has been committed. prev and next are the states
// on either side of the action. Effects must not dispatch.
type Effect func(ctx context.Context, a Action, prev, next State)

// Store owns the current State. Dispatches are serialized; reads are cheap snapshots.
type Store struct {
	dispatchMu sync.Mutex
	effects    []Effect

	mu    sync.RWMutex
	state State
}

// NewStore creates a Store seeded with initial.
func NewStore(initial State, effects ...Effect) *Store {
	return &Store{
		state:   initial,
		effects: effects,
	}
}

// Subscribe registers an effect for subsequent dispatches.
func (s *Store) Subscribe(e Effect) {
	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()
	s.effects = append(s.effects, e)
}

// Snapshot returns the current state. The returned value must be treated as read-only.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Dispatch reduces a into the current state, commits the result and then runs
// the effects in registration order. A rejected action is logged, leaves the
// state untouched, skips the effects and is returned to the caller.
func (s *Store) Dispatch(ctx context.Context, a Action) error {
	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()

	prev := s.Snapshot()

	next, err := Reduce(prev, a)
	if err != nil {
		metrics.RejectedActions.WithLabelValues(a.ActionName()).Inc()
		logger.Named("store").Warn("Action rejected",
			zap.String("action", a.ActionName()),
			zap.Error(err),
		)
		return err
	}

	s.mu.Lock()
	s.state = next
	s.mu.Unlock()

	for _, e := range s.effects {
		e(ctx, a, prev, next)
	}
	return nil
}
