package codec

import (
	"fmt"

	"github.com/unkn0wn-root/hexcodec"
)

// Hex encodes raw bytes as hex text. Output is lowercase unless Upper is set;
// Decode accepts either case.
type Hex struct {
	Upper bool
}

var _ Codec[[]byte] = Hex{}

func (h Hex) Encode(b []byte) ([]byte, error) {
	if h.Upper {
		return hexcodec.AppendEncodeUpper(nil, b), nil
	}
	return hexcodec.AppendEncode(nil, b), nil
}

func (Hex) Decode(b []byte) ([]byte, error) { return hexcodec.Decode(b) }

// Armored wraps Inner so that its output is hex text. Decode strips the
// armor before handing the bytes to Inner; hex errors are wrapped and stay
// reachable through errors.As.
type Armored[V any] struct {
	Inner Codec[V]
	Upper bool
}

func (a Armored[V]) Encode(v V) ([]byte, error) {
	raw, err := a.Inner.Encode(v)
	if err != nil {
		return nil, err
	}
	return Hex{Upper: a.Upper}.Encode(raw)
}

func (a Armored[V]) Decode(b []byte) (V, error) {
	raw, err := hexcodec.Decode(b)
	if err != nil {
		var zero V
		return zero, fmt.Errorf("armored: %w", err)
	}
	return a.Inner.Decode(raw)
}
