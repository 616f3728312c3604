package hexcodec

import (
	"errors"
	"fmt"
)

// ErrOddLength is returned by Decode when the input cannot be split into
// character pairs.
var ErrOddLength = errors.New("hexcodec: odd length hex string")

// InvalidHexError reports the first byte of the input that is not an ASCII
// hex digit. Offset is 0-based into the input.
type InvalidHexError struct {
	Offset int
	Value  byte
}

func (e *InvalidHexError) Error() string {
	return fmt.Sprintf("hexcodec: invalid hex character %q (0x%02x) at offset %d", e.Value, e.Value, e.Offset)
}

// MismatchedLengthError is returned by DecodeToSlice when
// SourceLen != 2 * DestLen.
type MismatchedLengthError struct {
	SourceLen int
	DestLen   int
}

func (e *MismatchedLengthError) Error() string {
	return fmt.Sprintf("hexcodec: source length %d does not decode into %d bytes", e.SourceLen, e.DestLen)
}

// SizeMismatchError is returned by EncodeToSlice when the output buffer is
// not exactly twice the input length.
type SizeMismatchError struct {
	SourceLen int
	DestLen   int
}

func (e *SizeMismatchError) Error() string {
	return fmt.Sprintf("hexcodec: %d bytes encode to %d characters, output holds %d",
		e.SourceLen, EncodedLen(e.SourceLen), e.DestLen)
}
