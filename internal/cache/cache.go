// Package cache provides the result cache behind the calculator API.
// Calculators are pure, so a response keyed by its input hash can be
// replayed for as long as the TTL allows.
package cache

import "context"

// Cache stores serialized responses by key.
type Cache interface {
	// Get returns the cached value and whether it was present.
	Get(ctx context.Context, key string) (string, bool)

	// Set stores the value for the configured TTL.
	Set(ctx context.Context, key, value string) error
}
