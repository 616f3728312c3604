package sloghooks

import (
	"crypto/sha256"
	"log/slog"
	"sync/atomic"

	"github.com/unkn0wn-root/hexcodec"
	"github.com/unkn0wn-root/hexcodec/blobstore"
)

type Options struct {
	// Sampling to avoid floods; 0/1 = log all.
	SelfHealEvery   uint64
	InvalidKeyEvery uint64
	// Optional key redactor. Defaults to the hex of an 8-byte SHA-256 prefix.
	Redact func(string) string
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	selfHealCtr   atomic.Uint64
	invalidKeyCtr atomic.Uint64
}

var _ blobstore.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func (h *Hooks) redact(k string) string {
	if h.opts.Redact != nil {
		return h.opts.Redact(k)
	}
	sum := sha256.Sum256([]byte(k))
	var out [16]byte
	return string(hexcodec.EncodeToArray(out[:], sum[:8]))
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) SelfHeal(storageKey, reason string) {
	if h.l == nil || !sample(h.opts.SelfHealEvery, &h.selfHealCtr) {
		return
	}
	h.l.Debug("blobstore.self_heal",
		"key", h.redact(storageKey),
		"reason", reason)
}

func (h *Hooks) ProviderSetRejected(storageKey string) {
	if h.l == nil {
		return
	}
	h.l.Warn("blobstore.provider_set_rejected",
		"key", h.redact(storageKey))
}

// InvalidKey logs the raw input redacted too: it is caller-controlled.
func (h *Hooks) InvalidKey(key string, err error) {
	if h.l == nil || !sample(h.opts.InvalidKeyEvery, &h.invalidKeyCtr) {
		return
	}
	h.l.Info("blobstore.invalid_key",
		"key", h.redact(key),
		"len", len(key),
		"err", err)
}
