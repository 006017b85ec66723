package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"dockyard/internal/features/dock/domain"
	"dockyard/internal/features/dock/state"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func tokenExpiring(t *testing.T, exp time.Time) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"exp": exp.Unix()}).SignedString([]byte("k"))
	require.NoError(t, err)
	return tok
}

func TestSessionService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		auth := new(MockAuthProvider)
		store := state.NewStore(state.Initial())
		_ = store.Dispatch(ctx, state.SetCurrentView{View: domain.ViewUpload})
		svc := NewSessionService(auth, store, new(MockStateStorage))

		user := &domain.User{Username: "ana", Role: domain.RoleAdmin, Token: "tok"}
		auth.On("Login", ctx, "ana", "pw").Return(user, nil).Once()

		got, err := svc.Login(ctx, "ana", "pw")
		require.NoError(t, err)
		assert.Equal(t, user, got)
		assert.Equal(t, user, svc.Current())
		assert.Equal(t, domain.ViewLanding, store.Snapshot().CurrentView)
	})

	t.Run("Rejected", func(t *testing.T) {
		auth := new(MockAuthProvider)
		store := state.NewStore(state.Initial())
		svc := NewSessionService(auth, store, new(MockStateStorage))

		auth.On("Login", ctx, "ana", "bad").Return(nil, errors.New("unauthorized")).Once()

		_, err := svc.Login(ctx, "ana", "bad")
		assert.Error(t, err)
		assert.Nil(t, svc.Current())
	})
}

func TestSessionService_Logout(t *testing.T) {
	ctx := context.Background()
	store := storeWith(domain.RoleWrite)
	_ = store.Dispatch(ctx, state.AddRecentTrailer{Trailer: domain.RecentTrailer{TrailerID: "T1"}})
	svc := NewSessionService(new(MockAuthProvider), store, new(MockStateStorage))

	require.NoError(t, svc.Logout(ctx))
	assert.Nil(t, svc.Current())
	assert.Equal(t, 1, store.Snapshot().Recent.Len())
}

func TestSessionService_Restore(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("ValidSession", func(t *testing.T) {
		storage := new(MockStateStorage)
		store := state.NewStore(state.Initial())
		svc := NewSessionService(new(MockAuthProvider), store, storage)
		svc.now = func() time.Time { return now }

		user := &domain.User{Username: "ana", Role: domain.RoleWrite, Token: tokenExpiring(t, now.Add(time.Hour))}
		storage.On("LoadUser", ctx).Return(user, nil).Once()
		storage.On("LoadRecent", ctx).Return([]domain.RecentTrailer{{TrailerID: "T1"}}, nil).Once()
		storage.On("LoadView", ctx).Return(domain.ViewShipments, nil).Once()

		require.NoError(t, svc.Restore(ctx))

		snap := store.Snapshot()
		require.NotNil(t, snap.User)
		assert.Equal(t, "ana", snap.User.Username)
		assert.Equal(t, []string{"T1"}, snap.Recent.Keys())
		assert.Equal(t, domain.ViewShipments, snap.CurrentView)
		storage.AssertExpectations(t)
	})

	t.Run("ExpiredTokenDiscarded", func(t *testing.T) {
		storage := new(MockStateStorage)
		store := state.NewStore(state.Initial())
		svc := NewSessionService(new(MockAuthProvider), store, storage)
		svc.now = func() time.Time { return now }

		user := &domain.User{Username: "ana", Role: domain.RoleWrite, Token: tokenExpiring(t, now.Add(-time.Minute))}
		storage.On("LoadUser", ctx).Return(user, nil).Once()
		storage.On("DeleteUser", ctx).Return(nil).Once()
		storage.On("LoadRecent", ctx).Return(nil, nil).Once()
		storage.On("LoadView", ctx).Return(domain.View("bogus"), nil).Once()

		require.NoError(t, svc.Restore(ctx))
		assert.Nil(t, store.Snapshot().User)
		assert.Equal(t, domain.ViewLanding, store.Snapshot().CurrentView)
		storage.AssertExpectations(t)
	})

	t.Run("StorageError", func(t *testing.T) {
		storage := new(MockStateStorage)
		svc := NewSessionService(new(MockAuthProvider), state.NewStore(state.Initial()), storage)
		storage.On("LoadUser", ctx).Return(nil, errors.New("redis down")).Once()

		assert.Error(t, svc.Restore(ctx))
	})
}

func TestPersistenceEffect(t *testing.T) {
	ctx := context.Background()
	storage := new(MockStateStorage)
	store := state.NewStore(state.Initial(), PersistenceEffect(storage))

	user := domain.User{Username: "ana", Role: domain.RoleWrite, Token: "tok"}
	storage.On("SaveUser", mock.Anything, user).Return(nil).Once()
	storage.On("SaveView", mock.Anything, domain.ViewRecent).Return(nil).Once()
	storage.On("SaveRecent", mock.Anything, []domain.RecentTrailer{{TrailerID: "T1"}}).Return(nil).Once()
	storage.On("DeleteUser", mock.Anything).Return(nil).Once()
	storage.On("SaveView", mock.Anything, domain.ViewLanding).Return(errors.New("redis down")).Once()

	require.NoError(t, store.Dispatch(ctx, state.SetUser{User: user}))
	require.NoError(t, store.Dispatch(ctx, state.SetCurrentView{View: domain.ViewRecent}))
	// unchanged view is not written again
	require.NoError(t, store.Dispatch(ctx, state.SetCurrentView{View: domain.ViewRecent}))
	require.NoError(t, store.Dispatch(ctx, state.AddRecentTrailer{Trailer: domain.RecentTrailer{TrailerID: "T1"}}))
	require.NoError(t, store.Dispatch(ctx, state.SetLiveStatus{Connected: true}))
	require.NoError(t, store.Dispatch(ctx, state.Logout{}))

	storage.AssertExpectations(t)
}
