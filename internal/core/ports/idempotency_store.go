package ports

import (
	"context"
)

// IdempotencyStore remembers processed webhook deliveries.
type IdempotencyStore interface {
	// Claim records key and reports whether this caller is the first to do so.
	Claim(ctx context.Context, key string) (bool, error)

	// Release forgets key so a failed delivery can be retried.
	Release(ctx context.Context, key string) error
}
