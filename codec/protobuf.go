package codec

import "google.golang.org/protobuf/proto"

// Protobuf serializes proto messages. newMsg allocates the concrete message
// Decode fills, e.g. func() *wrapperspb.BytesValue { return &wrapperspb.BytesValue{} }.
type Protobuf[T proto.Message] struct {
	newMsg func() T
}

func NewProtobuf[T proto.Message](newMsg func() T) Protobuf[T] {
	return Protobuf[T]{newMsg: newMsg}
}

func (c Protobuf[T]) Encode(m T) ([]byte, error) {
	return proto.MarshalOptions{Deterministic: true}.Marshal(m)
}

func (c Protobuf[T]) Decode(b []byte) (T, error) {
	m := c.newMsg()
	err := proto.Unmarshal(b, m)
	return m, err
}
