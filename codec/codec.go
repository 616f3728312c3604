// Package codec turns values into bytes and back. Besides the plain
// serializers it provides Hex, a codec for raw bytes as hex text, and
// Armored, which hex-armors the output of any other codec so binary formats
// can travel through text-only channels.
package codec

// Codec encodes/decodes values V to []byte.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}
