package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"dockyard/internal/core/cache"
	"dockyard/internal/features/dock/domain"
)

const (
	userKey   = "user"
	recentKey = "recent_trailers"
	viewKey   = "current_view"
)

// RedisStorage implements ports.StateStorage on top of the cache port.
type RedisStorage struct {
	cache   cache.Cache
	viewTTL time.Duration
}

// NewRedisStorage creates a RedisStorage. The current view expires after viewTTL;
// user and recent trailers never expire.
func NewRedisStorage(c cache.Cache, viewTTL time.Duration) *RedisStorage {
	return &RedisStorage{
		cache:   c,
		viewTTL: viewTTL,
	}
}

// SaveUser stores the session user.
func (r *RedisStorage) SaveUser(ctx context.Context, u domain.User) error {
	return r.put(ctx, userKey, u, 0)
}

// LoadUser returns the stored user, or nil when there is none.
func (r *RedisStorage) LoadUser(ctx context.Context) (*domain.User, error) {
	var u domain.User
	found, err := r.get(ctx, userKey, &u)
	if err != nil || !found {
		return nil, err
	}
	return &u, nil
}

// DeleteUser removes the stored user.
func (r *RedisStorage) DeleteUser(ctx context.Context) error {
	if err := r.cache.Delete(ctx, userKey); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// SaveRecent replaces the stored recent-trailers list.
func (r *RedisStorage) SaveRecent(ctx context.Context, recent []domain.RecentTrailer) error {
	if recent == nil {
		recent = []domain.RecentTrailer{}
	}
	return r.put(ctx, recentKey, recent, 0)
}

// LoadRecent returns the stored recent trailers in their saved order.
func (r *RedisStorage) LoadRecent(ctx context.Context) ([]domain.RecentTrailer, error) {
	var recent []domain.RecentTrailer
	if _, err := r.get(ctx, recentKey, &recent); err != nil {
		return nil, err
	}
	return recent, nil
}

// SaveView stores the current view for the session lifetime.
func (r *RedisStorage) SaveView(ctx context.Context, v domain.View) error {
	if err := r.cache.Set(ctx, viewKey, []byte(v), r.viewTTL); err != nil {
		return fmt.Errorf("failed to save view: %w", err)
	}
	return nil
}

// LoadView returns the stored view, or "" when it is missing or expired.
func (r *RedisStorage) LoadView(ctx context.Context) (domain.View, error) {
	data, err := r.cache.Get(ctx, viewKey)
	if errors.Is(err, cache.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to load view: %w", err)
	}
	return domain.View(data), nil
}

func (r *RedisStorage) put(ctx context.Context, key string, v any, ttl time.Duration) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}
	if err := r.cache.Set(ctx, key, data, ttl); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}

func (r *RedisStorage) get(ctx context.Context, key string, out any) (bool, error) {
	data, err := r.cache.Get(ctx, key)
	if errors.Is(err, cache.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to load %s: %w", key, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("failed to unmarshal %s: %w", key, err)
	}
	return true, nil
}
