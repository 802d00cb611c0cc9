package repository

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// CartStore is the durable key-value store the cart engine persists
// into. Values are serialized line-item lists; keys are owned by the
// cart engine.
type CartStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

type redisCartStore struct {
	client *redis.Client
}

// NewRedisCartStore creates a CartStore backed by Redis.
func NewRedisCartStore(client *redis.Client) CartStore {
	return &redisCartStore{client: client}
}

// Get returns the stored value for key, with a found flag. A missing
// key is not an error.
func (s *redisCartStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read cart key %s: %w", key, err)
	}
	return value, true, nil
}

// Set overwrites the value for key.
func (s *redisCartStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to write cart key %s: %w", key, err)
	}
	return nil
}

// Remove deletes the key. Removing a missing key is a no-op.
func (s *redisCartStore) Remove(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete cart key %s: %w", key, err)
	}
	return nil
}
