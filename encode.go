package hexcodec

import "fmt"

// Input is anything hex functions accept: raw bytes or text. Both are
// treated as byte sequences.
type Input interface {
	~[]byte | ~string
}

// Distance from one past '9' to the first letter of each case.
const (
	lowerShift = 'a' - 1 - '9'
	upperShift = 'A' - 1 - '9'
)

// EncodedLen returns the length of the hex encoding of n bytes.
func EncodedLen(n int) int { return n * 2 }

// nibbleToHex maps a value in 0..15 to its hex character. shift selects the
// case (lowerShift or upperShift).
//
// ('9' - digit) wraps to 0xfa..0xff when digit is past '9', so bit 7 is the
// "is a letter" flag and no branch is needed.
func nibbleToHex(nibble, shift byte) byte {
	digit := nibble + '0'
	return digit + (('9'-digit)>>7)*shift
}

func caseShift(upper bool) byte {
	if upper {
		return upperShift
	}
	return lowerShift
}

// encode writes the hex form of src into dst. len(dst) must be
// EncodedLen(len(src)).
func encode[T Input](dst []byte, src T, shift byte) {
	_ = dst[:EncodedLen(len(src))] // hoist bounds check
	for i := 0; i < len(src); i++ {
		b := src[i]
		dst[2*i] = nibbleToHex(b>>4, shift)
		dst[2*i+1] = nibbleToHex(b&0x0f, shift)
	}
}

// Encode returns the lowercase hex encoding of src.
//
//	hexcodec.Encode([]byte{0xde, 0xca, 0xff}) // "decaff"
func Encode[T Input](src T) string {
	dst := make([]byte, EncodedLen(len(src)))
	encode(dst, src, lowerShift)
	return string(dst)
}

// EncodeUpper returns the uppercase hex encoding of src.
//
//	hexcodec.EncodeUpper([]byte{0xde, 0xca, 0xff}) // "DECAFF"
func EncodeUpper[T Input](src T) string {
	dst := make([]byte, EncodedLen(len(src)))
	encode(dst, src, upperShift)
	return string(dst)
}

// EncodeToSlice writes the lowercase hex encoding of src into dst and returns
// dst. dst must be exactly EncodedLen(len(src)) bytes, otherwise a
// *SizeMismatchError is returned and dst is left untouched.
func EncodeToSlice[T Input](dst []byte, src T) ([]byte, error) {
	return encodeToSlice(dst, src, false)
}

// EncodeToSliceUpper is EncodeToSlice with uppercase output.
func EncodeToSliceUpper[T Input](dst []byte, src T) ([]byte, error) {
	return encodeToSlice(dst, src, true)
}

func encodeToSlice[T Input](dst []byte, src T, upper bool) ([]byte, error) {
	if len(dst) != EncodedLen(len(src)) {
		return nil, &SizeMismatchError{SourceLen: len(src), DestLen: len(dst)}
	}
	encode(dst, src, caseShift(upper))
	return dst, nil
}

// EncodeToArray encodes src into dst, where both sizes are fixed by the
// caller, typically by slicing arrays:
//
//	var sum [32]byte
//	var out [64]byte
//	hexcodec.EncodeToArray(out[:], sum[:])
//
// A length mismatch is a programming error and panics. Use EncodeToSlice when
// the sizes are only known at run time.
func EncodeToArray[T Input](dst []byte, src T) []byte {
	return encodeToArray(dst, src, false)
}

// EncodeToArrayUpper is EncodeToArray with uppercase output.
func EncodeToArrayUpper[T Input](dst []byte, src T) []byte {
	return encodeToArray(dst, src, true)
}

func encodeToArray[T Input](dst []byte, src T, upper bool) []byte {
	if len(dst) != EncodedLen(len(src)) {
		panic(fmt.Sprintf("hexcodec: fixed-size encode of %d bytes needs %d output bytes, got %d",
			len(src), EncodedLen(len(src)), len(dst)))
	}
	encode(dst, src, caseShift(upper))
	return dst
}

// AppendEncode appends the lowercase hex encoding of src to dst and returns
// the extended buffer.
func AppendEncode[T Input](dst []byte, src T) []byte {
	return appendEncode(dst, src, lowerShift)
}

// AppendEncodeUpper appends the uppercase hex encoding of src to dst.
func AppendEncodeUpper[T Input](dst []byte, src T) []byte {
	return appendEncode(dst, src, upperShift)
}

func appendEncode[T Input](dst []byte, src T, shift byte) []byte {
	n := len(dst)
	dst = grow(dst, EncodedLen(len(src)))
	encode(dst[n:], src, shift)
	return dst
}

// grow extends dst by n bytes, reallocating at most once.
func grow(dst []byte, n int) []byte {
	if cap(dst)-len(dst) < n {
		out := make([]byte, len(dst), len(dst)+n)
		copy(out, dst)
		dst = out
	}
	return dst[:len(dst)+n]
}
