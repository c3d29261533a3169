package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const defaultSessionTTL = 12 * time.Hour

// Redis stores the session under admin:session:<id>:<key>. Every write
// refreshes the TTL so an abandoned session disappears on its own.
type Redis struct {
	client    *redis.Client
	sessionID string
	ttl       time.Duration
}

func NewRedis(client *redis.Client, sessionID string, ttl time.Duration) *Redis {
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &Redis{client: client, sessionID: sessionID, ttl: ttl}
}

func ConnectRedis(addr, password string) *redis.Client {
	if addr == "" {
		return nil
	}

	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
}

func (r *Redis) SessionID() string {
	return r.sessionID
}

func (r *Redis) key(k string) string {
	return fmt.Sprintf("admin:session:%s:%s", r.sessionID, k)
}

func (r *Redis) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := r.client.Get(ctx, r.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return v, true, nil
}

func (r *Redis) Set(ctx context.Context, key, value string) error {
	if err := r.client.Set(ctx, r.key(key), value, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (r *Redis) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = r.key(k)
	}
	if err := r.client.Del(ctx, full...).Err(); err != nil {
		return fmt.Errorf("redis delete: %w", err)
	}
	return nil
}
