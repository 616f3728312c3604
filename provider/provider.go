// Package provider defines the byte store behind blobstore.
//
// Implementations must be byte-for-byte transparent: Get returns exactly the
// bytes passed to Set for that key. Stores that compress or otherwise
// transform values must fully reverse it on Get.
//
// Keys under "blob:<ns>:" belong to blobstore. Anything else written there is
// treated as a corrupt frame and deleted on read.
package provider

import (
	"context"
	"time"
)

// Provider is a minimal byte store with TTLs. Must be safe for concurrent use.
type Provider interface {
	// Get returns (value, true, nil) on hit and (nil, false, nil) on miss.
	// IO/remote failures return (nil, false, err).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores value with the given TTL; ttl <= 0 means no expiry.
	// cost may be ignored. ok=false means the store refused the write
	// (admission, memory pressure) without failing.
	Set(ctx context.Context, key string, value []byte, cost int64, ttl time.Duration) (ok bool, err error)

	// Del removes a key. Missing keys are not an error.
	Del(ctx context.Context, key string) error

	Close(ctx context.Context) error
}
