package blobstore

import (
	"errors"
	"fmt"
)

// ErrTooLarge is returned by Put when the blob exceeds Options.MaxBlobSize.
var ErrTooLarge = errors.New("blobstore: blob too large")

// KeyError reports a key that is not a hex SHA-256 digest. Err is the
// hexcodec error (*hexcodec.InvalidHexError, *hexcodec.MismatchedLengthError).
type KeyError struct {
	Key string
	Err error
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("blobstore: invalid key %q: %v", e.Key, e.Err)
}

func (e *KeyError) Unwrap() error { return e.Err }
