// Package hexcodec converts byte sequences to and from hexadecimal text.
//
// Every function is pure and safe for concurrent use. Each direction comes in
// an allocating form and forms that write into a caller buffer:
//
//	Encode / EncodeUpper             - new string
//	EncodeToSlice / ...Upper         - into dst, error on size mismatch
//	EncodeToArray / ...Upper         - into dst, panics on size mismatch
//	AppendEncode / ...Upper          - appended to dst
//	Decode                           - new slice
//	DecodeToSlice                    - into dst, error on size mismatch
//	AppendDecode                     - appended to dst
//
// Inputs may be []byte or string (see Input). Output is single-case; decoding
// accepts any mix of cases.
//
// Errors:
//
//	ErrOddLength            - Decode input has an odd number of characters
//	*InvalidHexError        - first non-hex byte, with offset and value
//	*MismatchedLengthError  - DecodeToSlice: len(src) != 2*len(dst)
//	*SizeMismatchError      - EncodeToSlice: len(dst) != 2*len(src)
//
// Sub-packages build on the core: codec wraps serializers in hex armor,
// blobstore keeps content-addressed blobs under hex digest keys.
package hexcodec
