package hexcodec

// DecodedLen returns the number of bytes n hex characters decode to.
func DecodedLen(n int) int { return n / 2 }

func isHexDigit(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

// validate reports the first non-hex byte of src, scanning left to right.
func validate[T Input](src T) error {
	for i := 0; i < len(src); i++ {
		if c := src[i]; !isHexDigit(c) {
			return &InvalidHexError{Offset: i, Value: c}
		}
	}
	return nil
}

// Valid reports whether src is a complete hex string: even length and only
// hex digits.
func Valid[T Input](src T) bool {
	return len(src)%2 == 0 && validate(src) == nil
}

// hexToNibble must only see validated characters. Clearing 0x20 folds
// lowercase letters onto uppercase.
func hexToNibble(c byte) byte {
	if c > '9' {
		return (c &^ 0x20) - 'A' + 10
	}
	return c - '0'
}

// decode assumes src is validated and len(dst) == DecodedLen(len(src)).
func decode[T Input](dst []byte, src T) {
	for i := range dst {
		dst[i] = hexToNibble(src[2*i])<<4 | hexToNibble(src[2*i+1])
	}
}

// Decode returns the bytes represented by the hex string src. Upper, lower
// and mixed case are accepted.
//
// It returns ErrOddLength for odd-length input and *InvalidHexError for the
// first byte that is not a hex digit. Nothing is decoded unless the whole
// input is valid.
func Decode[T Input](src T) ([]byte, error) {
	if len(src)%2 != 0 {
		return nil, ErrOddLength
	}
	if err := validate(src); err != nil {
		return nil, err
	}
	dst := make([]byte, DecodedLen(len(src)))
	decode(dst, src)
	return dst, nil
}

// DecodeToSlice decodes src into dst and returns dst. len(src) must be
// exactly 2*len(dst), otherwise a *MismatchedLengthError is returned before
// any character is inspected. Invalid characters yield *InvalidHexError and
// leave dst untouched.
func DecodeToSlice[T Input](dst []byte, src T) ([]byte, error) {
	if len(src) != EncodedLen(len(dst)) {
		return nil, &MismatchedLengthError{SourceLen: len(src), DestLen: len(dst)}
	}
	if err := validate(src); err != nil {
		return nil, err
	}
	decode(dst, src)
	return dst, nil
}

// AppendDecode decodes src and appends the result to dst. On error dst is
// returned unchanged along with the error.
func AppendDecode[T Input](dst []byte, src T) ([]byte, error) {
	if len(src)%2 != 0 {
		return dst, ErrOddLength
	}
	if err := validate(src); err != nil {
		return dst, err
	}
	n := len(dst)
	out := grow(dst, DecodedLen(len(src)))
	decode(out[n:], src)
	return out, nil
}
