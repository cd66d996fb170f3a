package redisstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"civic-orders/internal/core/domain"
)

const keyPrefix = "orders:idem:"

// IdempotencyStore keeps idempotency keys for order creation in Redis with
// a TTL. A retried create finds the original order id under its key
// instead of double-booking inventory.
type IdempotencyStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewIdempotencyStore creates a store over the given client. ttl bounds
// how long a retried create is recognized.
func NewIdempotencyStore(client *redis.Client, ttl time.Duration) *IdempotencyStore {
	return &IdempotencyStore{client: client, ttl: ttl}
}

// Get returns the order id recorded under key, if any.
func (s *IdempotencyStore) Get(ctx context.Context, key string) (uuid.UUID, bool, error) {
	raw, err := s.client.Get(ctx, keyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return uuid.Nil, false, nil
	}
	if err != nil {
		return uuid.Nil, false, fmt.Errorf("%w: %w", domain.ErrDependency, err)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false, nil
	}
	return id, true, nil
}

// Put records the order created for key.
func (s *IdempotencyStore) Put(ctx context.Context, key string, orderID uuid.UUID) error {
	if err := s.client.Set(ctx, keyPrefix+key, orderID.String(), s.ttl).Err(); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrDependency, err)
	}
	return nil
}

// Connect initializes a Redis client and verifies connectivity.
func Connect(ctx context.Context, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}
