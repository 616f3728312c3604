package hexcodec

// Bytes is a byte slice whose text form is lowercase hex. Struct fields of
// this type render as hex strings in JSON, YAML and any other encoder that
// honors encoding.TextMarshaler.
type Bytes []byte

func (b Bytes) String() string { return Encode(b) }

func (b Bytes) MarshalText() ([]byte, error) {
	return AppendEncode(nil, b), nil
}

// UnmarshalText accepts hex in any case and reports the same errors as Decode.
func (b *Bytes) UnmarshalText(text []byte) error {
	out, err := Decode(text)
	if err != nil {
		return err
	}
	*b = out
	return nil
}
