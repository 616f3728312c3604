package blobstore

import (
	"context"
	"time"

	pr "github.com/unkn0wn-root/hexcodec/provider"
)

// SetCostFunc returns the cost passed to Provider.Set for a frame.
type SetCostFunc func(storageKey string, frame []byte) int64

// Store is a content-addressed blob store. Keys are hex SHA-256 digests of
// the stored bytes.
type Store interface {
	Enabled() bool
	Close(context.Context) error

	// Put stores data and returns its key.
	Put(ctx context.Context, data []byte) (key string, err error)

	// Get returns the blob for key (any case). Invalid keys return a
	// *KeyError. The returned slice may alias provider memory and must not
	// be modified.
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)

	Has(ctx context.Context, key string) (bool, error)
	Delete(ctx context.Context, key string) error
}

// Options configure a Store. Only Namespace and Provider are required.
type Options struct {
	// Required
	Namespace string // e.g. "img", "attachments"
	Provider  pr.Provider

	Logger         Logger        // nil => NopLogger
	Hooks          Hooks         // nil => NopHooks
	DefaultTTL     time.Duration // 0 => 24h; < 0 => no expiry
	MaxBlobSize    int           // bytes; 0 => unlimited
	UpperKeys      bool          // return uppercase keys from Put
	ComputeSetCost SetCostFunc   // nil => 1 per entry
	Disabled       bool          // Put computes keys only, Get always misses
}

func New(opts Options) (Store, error) {
	return newStore(opts)
}
