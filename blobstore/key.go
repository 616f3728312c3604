package blobstore

import (
	"crypto/sha256"

	"github.com/unkn0wn-root/hexcodec"
	"github.com/unkn0wn-root/hexcodec/internal/wire"
)

// Key is the SHA-256 digest of a blob.
type Key [wire.DigestSize]byte

// KeyOf returns the key data is stored under.
func KeyOf(data []byte) Key { return sha256.Sum256(data) }

// ParseKey parses a 64-character hex digest in any case.
func ParseKey[T hexcodec.Input](s T) (Key, error) {
	var k Key
	if _, err := hexcodec.DecodeToSlice(k[:], s); err != nil {
		return Key{}, &KeyError{Key: string(s), Err: err}
	}
	return k, nil
}

// String returns the lowercase hex form.
func (k Key) String() string {
	var out [2 * wire.DigestSize]byte
	return string(hexcodec.EncodeToArray(out[:], k[:]))
}

// Upper returns the uppercase hex form.
func (k Key) Upper() string {
	var out [2 * wire.DigestSize]byte
	return string(hexcodec.EncodeToArrayUpper(out[:], k[:]))
}

func (k Key) MarshalText() ([]byte, error) {
	return hexcodec.AppendEncode(make([]byte, 0, 2*wire.DigestSize), k[:]), nil
}

func (k *Key) UnmarshalText(text []byte) error {
	p, err := ParseKey(text)
	if err != nil {
		return err
	}
	*k = p
	return nil
}
