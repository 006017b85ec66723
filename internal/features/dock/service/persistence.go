package service

import (
	"context"
	"time"

	"dockyard/internal/core/logger"
	"dockyard/internal/features/dock/ports"
	"dockyard/internal/features/dock/state"

	"go.uber.org/zap"
)

const persistTimeout = 5 * time.Second

// PersistenceEffect writes the durable parts of the state through to storage
// after the actions that change them. Storage failures are logged and never
// affect the committed state.
func PersistenceEffect(storage ports.StateStorage) state.Effect {
	return func(ctx context.Context, a state.Action, prev, next state.State) {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), persistTimeout)
		defer cancel()

		var err error
		switch a.(type) {
		case state.SetUser:
			err = storage.SaveUser(ctx, *next.User)
		case state.ClearUser:
			err = storage.DeleteUser(ctx)
		case state.Logout:
			if err = storage.DeleteUser(ctx); err == nil {
				err = storage.SaveView(ctx, next.CurrentView)
			}
		case state.SetCurrentView, state.GoBack:
			if next.CurrentView == prev.CurrentView {
				return
			}
			err = storage.SaveView(ctx, next.CurrentView)
		case state.AddRecentTrailer, state.SetRecentTrailers, state.ClearRecentTrailers:
			err = storage.SaveRecent(ctx, next.Recent.Values())
		default:
			return
		}

		if err != nil {
			logger.Named("storage").Error("Failed to persist state",
				zap.String("action", a.ActionName()),
				zap.Error(err),
			)
		}
	}
}
