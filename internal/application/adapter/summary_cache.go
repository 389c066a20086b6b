// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"
)

// SummaryCache defines the interface for caching serialized dashboard
// summaries. Implementations are expected to be best-effort: a miss or a
// storage failure never blocks summary computation.
type SummaryCache interface {
	// Get retrieves the cached payload for the key. It returns (nil, nil) on
	// a cache miss.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores the payload under the key with the given TTL.
	Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error
}
