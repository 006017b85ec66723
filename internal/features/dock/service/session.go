package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dockyard/internal/core/logger"
	"dockyard/internal/features/dock/domain"
	"dockyard/internal/features/dock/ports"
	"dockyard/internal/features/dock/state"

	"go.uber.org/zap"
)

var (
	// ErrNotAuthenticated is returned when a command needs a user and none is logged in.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrForbidden is returned when the user's role does not allow the command.
	ErrForbidden = errors.New("forbidden")
	// ErrShipmentOnHold is returned for lifecycle commands on a held shipment.
	ErrShipmentOnHold = errors.New("shipment is on hold")
)

// SessionService owns login, logout and session restore.
type SessionService struct {
	auth    ports.AuthProvider
	store   ports.StateStore
	storage ports.StateStorage
	now     func() time.Time
}

// NewSessionService creates a new SessionService.
func NewSessionService(auth ports.AuthProvider, store ports.StateStore, storage ports.StateStorage) *SessionService {
	return &SessionService{
		auth:    auth,
		store:   store,
		storage: storage,
		now:     time.Now,
	}
}

// Login authenticates against the dock API and makes the user current.
func (s *SessionService) Login(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.auth.Login(ctx, username, password)
	if err != nil {
		return nil, fmt.Errorf("service: login failed: %w", err)
	}

	if err := s.store.Dispatch(ctx, state.SetUser{User: *user}); err != nil {
		return nil, err
	}
	_ = s.store.Dispatch(ctx, state.SetCurrentView{View: domain.ViewLanding})

	logger.Named("session").Info("User logged in",
		zap.String("username", user.Username),
		zap.String("role", string(user.Role)),
	)
	return user, nil
}

// Register creates an account without logging in.
func (s *SessionService) Register(ctx context.Context, username, password string) error {
	if err := s.auth.Register(ctx, username, password); err != nil {
		return fmt.Errorf("service: register failed: %w", err)
	}
	return nil
}

// Logout drops the session.
func (s *SessionService) Logout(ctx context.Context) error {
	return s.store.Dispatch(ctx, state.Logout{})
}

// Current returns the logged-in user, or nil.
func (s *SessionService) Current() *domain.User {
	return s.store.Snapshot().User
}

// Restore loads the persisted user, recent trailers and view into the store.
// An expired token is discarded instead of restored.
func (s *SessionService) Restore(ctx context.Context) error {
	log := logger.Named("session")

	user, err := s.storage.LoadUser(ctx)
	if err != nil {
		return fmt.Errorf("service: failed to restore user: %w", err)
	}
	switch {
	case user == nil:
	case user.TokenExpired(s.now()):
		log.Info("Discarding expired session", zap.String("username", user.Username))
		if err := s.storage.DeleteUser(ctx); err != nil {
			log.Warn("Failed to delete expired session", zap.Error(err))
		}
	default:
		if err := s.store.Dispatch(ctx, state.SetUser{User: *user}); err != nil {
			return err
		}
	}

	recent, err := s.storage.LoadRecent(ctx)
	if err != nil {
		return fmt.Errorf("service: failed to restore recent trailers: %w", err)
	}
	if len(recent) > 0 {
		if err := s.store.Dispatch(ctx, state.SetRecentTrailers{Trailers: recent}); err != nil {
			return err
		}
	}

	view, err := s.storage.LoadView(ctx)
	if err != nil {
		return fmt.Errorf("service: failed to restore view: %w", err)
	}
	if view != "" {
		if v, err := domain.ParseView(string(view)); err == nil {
			_ = s.store.Dispatch(ctx, state.SetCurrentView{View: v})
		} else {
			log.Warn("Ignoring stored view", zap.Error(err))
		}
	}

	return nil
}

// authorize returns the current user if it may mutate; admin additionally requires the admin role.
func authorize(store ports.StateStore, admin bool) (domain.User, error) {
	u := store.Snapshot().User
	if u == nil {
		return domain.User{}, ErrNotAuthenticated
	}
	if !u.IsAuthorized() || (admin && !u.IsAdmin()) {
		return domain.User{}, fmt.Errorf("%w: role %q", ErrForbidden, u.Role)
	}
	return *u, nil
}

// token returns the bearer token of the current user for read-only calls.
func token(store ports.StateStore) (string, error) {
	u := store.Snapshot().User
	if u == nil {
		return "", ErrNotAuthenticated
	}
	return u.Token, nil
}

// apiError clears the session when the dock API rejected the token.
func apiError(ctx context.Context, store ports.StateStore, op string, err error) error {
	if errors.Is(err, ports.ErrUnauthorized) {
		logger.Named("session").Warn("Dock API rejected session, clearing user", zap.String("operation", op))
		_ = store.Dispatch(ctx, state.ClearUser{})
	}
	return fmt.Errorf("service: %s: %w", op, err)
}

// commit applies a confirmed change locally and fans it out to peers.
// Neither step can undo the confirmed change, so failures are only logged.
// A change the local state rejects is not broadcast.
func commit(ctx context.Context, store ports.StateStore, b ports.Broadcaster, a state.Action) {
	if err := store.Dispatch(ctx, a); err != nil {
		logger.Named("live").Warn("Confirmed change no longer applies, not broadcasting",
			zap.String("action", a.ActionName()),
			zap.Error(err),
		)
		return
	}

	if b == nil {
		return
	}
	if err := b.Broadcast(ctx, a); err != nil {
		logger.Named("live").Warn("Broadcast failed",
			zap.String("action", a.ActionName()),
			zap.Error(err),
		)
	}
}
