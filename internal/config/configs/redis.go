package configs

import "time"

// Redis configures the idempotency-key store. The store is optional: when
// Addr is empty, idempotency keys are accepted but not honoured.
type Redis struct {
	// Addr is a host:port Redis address. Empty disables the store.
	Addr string `env:"ADDRESS"`
	// IdempotencyTTL bounds how long a retried order creation is still
	// recognized as a duplicate.
	IdempotencyTTL time.Duration `env:"IDEMPOTENCY_TTL" envDefault:"24h"`
}
