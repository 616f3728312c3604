package codec

import "encoding/json"

// JSON serializes with encoding/json. []byte fields become base64; use
// hexcodec.Bytes for hex-rendered fields.
type JSON[V any] struct{}

func (JSON[V]) Encode(v V) ([]byte, error) { return json.Marshal(v) }

func (JSON[V]) Decode(b []byte) (V, error) {
	var v V
	err := json.Unmarshal(b, &v)
	return v, err
}
