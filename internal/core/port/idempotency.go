package port

import (
	"context"

	"github.com/google/uuid"
)

// IdempotencyStore maps caller-supplied idempotency keys to the order they
// produced, so a retried CreateOrder returns the original order instead of
// double-booking inventory. Entries expire after a store-defined TTL.
type IdempotencyStore interface {
	// Get returns the order id recorded for key, if any.
	Get(ctx context.Context, key string) (uuid.UUID, bool, error)
	// Put records the order created for key.
	Put(ctx context.Context, key string, orderID uuid.UUID) error
}
