package blobstore

import (
	"context"
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/unkn0wn-root/hexcodec/internal/util"
	"github.com/unkn0wn-root/hexcodec/internal/wire"
	pr "github.com/unkn0wn-root/hexcodec/provider"
)

type store struct {
	ns             string
	prefix         string
	provider       pr.Provider
	log            Logger
	hooks          Hooks
	enabled        bool
	ttl            time.Duration
	maxSize        int
	upperKeys      bool
	computeSetCost SetCostFunc
}

func newStore(opts Options) (*store, error) {
	if opts.Provider == nil {
		return nil, fmt.Errorf("blobstore: provider is required")
	}
	if opts.Namespace == "" {
		return nil, fmt.Errorf("blobstore: namespace is required")
	}
	if opts.MaxBlobSize < 0 {
		return nil, fmt.Errorf("blobstore: negative MaxBlobSize %d", opts.MaxBlobSize)
	}

	s := &store{
		ns:        opts.Namespace,
		prefix:    "blob:" + opts.Namespace,
		provider:  opts.Provider,
		enabled:   !opts.Disabled,
		maxSize:   opts.MaxBlobSize,
		upperKeys: opts.UpperKeys,
	}

	// defaults
	s.log = coalesce[Logger](opts.Logger, NopLogger{})
	s.hooks = coalesce[Hooks](opts.Hooks, NopHooks{})
	s.ttl = coalesce[time.Duration](opts.DefaultTTL, defaultTTL)
	if s.ttl < 0 {
		s.ttl = 0 // providers read 0 as "no expiry"
	}

	if opts.ComputeSetCost != nil {
		s.computeSetCost = opts.ComputeSetCost
	} else {
		s.computeSetCost = func(string, []byte) int64 { return 1 }
	}
	return s, nil
}

func (s *store) Enabled() bool { return s.enabled }

func (s *store) Close(ctx context.Context) error {
	return s.provider.Close(ctx)
}

func (s *store) Put(ctx context.Context, data []byte) (string, error) {
	if s.maxSize > 0 && len(data) > s.maxSize {
		return "", fmt.Errorf("%w: %d > %d", ErrTooLarge, len(data), s.maxSize)
	}
	k := KeyOf(data)
	name := s.render(k)
	if !s.enabled {
		return name, nil
	}

	sk := s.storageKey(k)
	frame := wire.EncodeBlob(k, data)
	ok, err := s.provider.Set(ctx, sk, frame, s.computeSetCost(sk, frame), s.ttl)
	if err != nil {
		return "", fmt.Errorf("blobstore: put %s: %w", name, err)
	}
	if !ok {
		s.log.Debug("Put rejected by provider (pressure)", Fields{"key": name, "size": len(data)})
		s.hooks.ProviderSetRejected(sk)
	}
	return name, nil
}

func (s *store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	k, err := s.parse(key)
	if err != nil {
		return nil, false, err
	}
	if !s.enabled {
		return nil, false, nil
	}

	sk := s.storageKey(k)
	raw, ok, err := s.provider.Get(ctx, sk)
	if err != nil {
		return nil, false, fmt.Errorf("blobstore: get %s: %w", k, err)
	}
	if !ok {
		return nil, false, nil
	}

	digest, payload, err := wire.DecodeBlob(raw)
	if err != nil {
		s.heal(ctx, sk, "corrupt")
		return nil, false, nil
	}
	if digest != k || sha256.Sum256(payload) != k {
		s.heal(ctx, sk, "digest_mismatch")
		return nil, false, nil
	}
	return payload, true, nil
}

func (s *store) Has(ctx context.Context, key string) (bool, error) {
	_, ok, err := s.Get(ctx, key)
	return ok, err
}

func (s *store) Delete(ctx context.Context, key string) error {
	k, err := s.parse(key)
	if err != nil {
		return err
	}
	if !s.enabled {
		return nil
	}
	if err := s.provider.Del(ctx, s.storageKey(k)); err != nil {
		return fmt.Errorf("blobstore: delete %s: %w", k, err)
	}
	s.log.Debug("deleted blob", Fields{"key": k.String()})
	return nil
}

func (s *store) parse(key string) (Key, error) {
	k, err := ParseKey(key)
	if err != nil {
		s.log.Debug("rejected key", Fields{"ns": s.ns, "err": err})
		s.hooks.InvalidKey(key, err)
		return Key{}, err
	}
	return k, nil
}

// heal drops an entry that failed verification.
func (s *store) heal(ctx context.Context, storageKey, reason string) {
	if err := s.provider.Del(ctx, storageKey); err != nil {
		s.log.Warn("self-heal delete failed", Fields{"key": storageKey, "reason": reason, "err": err})
	} else {
		s.log.Debug("self-healed entry", Fields{"key": storageKey, "reason": reason})
	}
	s.hooks.SelfHeal(storageKey, reason)
}

func (s *store) render(k Key) string {
	if s.upperKeys {
		return k.Upper()
	}
	return k.String()
}

func (s *store) storageKey(k Key) string {
	// always lowercase so both key cases share one entry
	return util.StorageKey(s.prefix, k)
}
