package blobstore

import (
	"context"
	"fmt"

	"github.com/unkn0wn-root/hexcodec/codec"
)

// Values stores typed values through a codec. Equal encodings share a key,
// so use a deterministic codec (e.g. codec.NewCBOR(true)) when keys must be
// stable across processes.
type Values[V any] struct {
	store Store
	codec codec.Codec[V]
}

func NewValues[V any](s Store, c codec.Codec[V]) *Values[V] {
	return &Values[V]{store: s, codec: c}
}

func (v *Values[V]) Put(ctx context.Context, val V) (string, error) {
	b, err := v.codec.Encode(val)
	if err != nil {
		return "", fmt.Errorf("blobstore: encode value: %w", err)
	}
	return v.store.Put(ctx, b)
}

// Get returns a decode error rather than a miss when the stored bytes do not
// fit V; the bytes themselves were verified against the key.
func (v *Values[V]) Get(ctx context.Context, key string) (V, bool, error) {
	var zero V
	b, ok, err := v.store.Get(ctx, key)
	if err != nil || !ok {
		return zero, false, err
	}
	val, err := v.codec.Decode(b)
	if err != nil {
		return zero, false, fmt.Errorf("blobstore: decode %s: %w", key, err)
	}
	return val, true, nil
}
