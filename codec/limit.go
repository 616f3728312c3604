package codec

import "fmt"

// LimitCodec rejects Decode input longer than MaxDecode bytes before Inner
// sees it. For an Armored inner codec the limit applies to the hex text, so
// it caps the decoded payload at MaxDecode/2. MaxDecode <= 0 disables the
// check.
type LimitCodec[V any] struct {
	Inner     Codec[V]
	MaxDecode int
}

func (c LimitCodec[V]) Encode(v V) ([]byte, error) { return c.Inner.Encode(v) }

func (c LimitCodec[V]) Decode(b []byte) (V, error) {
	if c.MaxDecode > 0 && len(b) > c.MaxDecode {
		var zero V
		return zero, fmt.Errorf("payload too large: %d > %d", len(b), c.MaxDecode)
	}
	return c.Inner.Decode(b)
}
