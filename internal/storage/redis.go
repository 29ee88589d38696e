package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/promoshopcl/promoshop-backend/pkg/redis"
)

const redisKeyPrefix = "promoshop:snapshot:"

// Redis keeps snapshots in a shared Redis instance, for deployments where
// several replicas must observe the same cart/quote state.
type Redis struct {
	client *redis.Client
}

// NewRedis wraps an already-connected client.
func NewRedis(client *redis.Client) (*Redis, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client is required")
	}
	return &Redis{client: client}, nil
}

func (r *Redis) Load(ctx context.Context, key string) ([]byte, error) {
	blob, err := r.client.GetBytes(ctx, redisKeyPrefix+key)
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading snapshot %q: %w", key, err)
	}
	return blob, nil
}

func (r *Redis) Save(ctx context.Context, key string, blob []byte) error {
	// Snapshots have no TTL: lifetime matches the storefront profile.
	if err := r.client.Set(ctx, redisKeyPrefix+key, blob, 0); err != nil {
		return fmt.Errorf("saving snapshot %q: %w", key, err)
	}
	return nil
}
