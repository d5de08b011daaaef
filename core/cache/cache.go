package cache

import "time"

// Store is a key-value cache with per-entry TTL. Implementations degrade
// gracefully: a failed read is a miss and a failed write is dropped, so an
// unavailable cache never becomes a hard failure for callers.
type Store interface {
	// Get returns the cached value for key, or ok=false on miss or error.
	Get(key string) (value []byte, ok bool)

	// Set stores value under key. The entry expires after ttl.
	Set(key string, value []byte, ttl time.Duration)

	// Delete evicts the entry for key, if present.
	Delete(key string)

	// Close releases any resources held by the store.
	Close() error
}
