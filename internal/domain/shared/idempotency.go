package shared

import (
	"context"
	"time"
)

// IdempotencyStore remembers submission keys and the order id produced for
// them, so a resubmission with the same key replays the first result instead
// of creating a second backend record.
type IdempotencyStore interface {
	// Remember records an order id under a submission key with a TTL.
	// Returns (orderID, false) with the previously stored id when the key
	// was already present, or (orderID, true) when it was newly stored.
	Remember(ctx context.Context, key, orderID string, ttl time.Duration) (string, bool, error)

	// Lookup returns the order id stored for a key, if any.
	Lookup(ctx context.Context, key string) (string, bool, error)

	// Close closes the store and releases resources
	Close() error
}

// IdempotencyConfig holds configuration for idempotent order submission
type IdempotencyConfig struct {
	// TTL is the time-to-live for remembered submission keys.
	// After this duration, the same key creates a new record again.
	TTL time.Duration

	// Enabled determines whether idempotency handling is enabled
	Enabled bool
}

// DefaultIdempotencyConfig returns the default idempotency configuration
func DefaultIdempotencyConfig() IdempotencyConfig {
	return IdempotencyConfig{
		TTL:     24 * time.Hour,
		Enabled: true,
	}
}
