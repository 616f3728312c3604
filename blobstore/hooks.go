package blobstore

// Hooks are callbacks for events worth counting or alerting on.
// Implementations must be cheap and non-blocking; wrap slow ones with
// hooks/async.
type Hooks interface {
	// A stored entry was deleted on read.
	// reason ∈ {"corrupt", "digest_mismatch"}
	SelfHeal(storageKey, reason string)

	// Provider returned ok=false on Set (admission/backpressure).
	ProviderSetRejected(storageKey string)

	// A caller passed a key that is not a hex digest. key is the raw input.
	InvalidKey(key string, err error)
}

// NopHooks is the default no-op.
type NopHooks struct{}

func (NopHooks) SelfHeal(string, string)    {}
func (NopHooks) ProviderSetRejected(string) {}
func (NopHooks) InvalidKey(string, error)   {}
