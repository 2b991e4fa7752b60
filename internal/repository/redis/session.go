package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "admin_session:"

// SessionRepository implements repository.SessionRepository using Redis.
// Tokens are opaque values stored with a bounded TTL, so an abandoned admin
// session expires on its own and logout takes effect immediately across
// every running instance.
type SessionRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionRepository creates a new Redis-backed session repository.
func NewSessionRepository(client *redis.Client, ttl time.Duration) *SessionRepository {
	return &SessionRepository{
		client: client,
		ttl:    ttl,
	}
}

// Put stores an admin session token with the configured TTL.
func (r *SessionRepository) Put(ctx context.Context, token string) error {
	key := sessionKeyPrefix + token

	if err := r.client.Set(ctx, key, "1", r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set session: %w", err)
	}

	return nil
}

// Exists reports whether an admin session token is still live.
func (r *SessionRepository) Exists(ctx context.Context, token string) (bool, error) {
	key := sessionKeyPrefix + token

	n, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("redis exists session: %w", err)
	}

	return n > 0, nil
}

// Delete revokes an admin session token.
func (r *SessionRepository) Delete(ctx context.Context, token string) error {
	key := sessionKeyPrefix + token

	if err := r.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis del session: %w", err)
	}

	return nil
}
