package util

import (
	"github.com/unkn0wn-root/hexcodec"
	"github.com/unkn0wn-root/hexcodec/internal/wire"
)

// StorageKey returns prefix + ":" + lowercase hex digest. The digest is
// rendered into a fixed 64-byte buffer, so the only allocation is the
// resulting string.
func StorageKey(prefix string, digest [wire.DigestSize]byte) string {
	var out [2 * wire.DigestSize]byte
	hexcodec.EncodeToArray(out[:], digest[:])
	return prefix + ":" + string(out[:])
}
