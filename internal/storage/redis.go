package storage

import (
	"context"
	"fmt"
	"time"

	"bean-market/internal/config"

	"github.com/redis/go-redis/v9"
)

// Service wraps the Redis connection that backs cart persistence and
// rate limiting.
type Service struct {
	client *redis.Client
}

// New creates a Redis-backed storage service from configuration.
func New(cfg config.RedisConfig) *Service {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	return &Service{client: client}
}

// Client returns the underlying Redis client.
func (s *Service) Client() *redis.Client {
	return s.client
}

// Health reports the storage connection status.
func (s *Service) Health() map[string]string {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	health := map[string]string{"status": "up"}
	if err := s.client.Ping(ctx).Err(); err != nil {
		health["status"] = "down"
		health["error"] = err.Error()
	}
	return health
}

// Close releases the Redis connection.
func (s *Service) Close() error {
	return s.client.Close()
}
