package hexcodec

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"errors"
	"math/rand"
	"strings"
	"testing"
)

func mustDecode[T Input](t *testing.T, s T) []byte {
	t.Helper()
	b, err := Decode(s)
	if err != nil {
		t.Fatalf("Decode(%q): %v", string(s), err)
	}
	return b
}

func TestDecodeLiterals(t *testing.T) {
	cases := []struct {
		in   string
		want []byte
	}{
		{"", []byte{}},
		{"decaff", []byte{0xde, 0xca, 0xff}},
		{"DECAFF", []byte{0xde, 0xca, 0xff}},
		{"C0Ffee", []byte{0xc0, 0xff, 0xee}},
		{"48656c6c6f2c20776f726c6421", []byte("Hello, world!")},
	}
	for _, tc := range cases {
		if got := mustDecode(t, tc.in); !bytes.Equal(got, tc.want) {
			t.Fatalf("Decode(%q) = %x want %x", tc.in, got, tc.want)
		}
		if got := mustDecode(t, []byte(tc.in)); !bytes.Equal(got, tc.want) {
			t.Fatalf("Decode([]byte %q) = %x want %x", tc.in, got, tc.want)
		}
	}
}

func TestDecodeCaseInsensitive(t *testing.T) {
	base := "0123456789abcdefABCDEF00c0ffee"
	swapped := strings.Map(func(r rune) rune {
		switch {
		case 'a' <= r && r <= 'f':
			return r - 'a' + 'A'
		case 'A' <= r && r <= 'F':
			return r - 'A' + 'a'
		}
		return r
	}, base)
	a, b := mustDecode(t, base), mustDecode(t, swapped)
	if !bytes.Equal(a, b) {
		t.Fatalf("case swap changed output: %x vs %x", a, b)
	}
	if !bytes.Equal(mustDecode(t, "C0Ffee"), mustDecode(t, "c0ffee")) {
		t.Fatalf("mixed case decode differs")
	}
}

func TestDecodeOddLength(t *testing.T) {
	for _, in := range []string{"a", "abc", "zzz", "0123456"} {
		if _, err := Decode(in); !errors.Is(err, ErrOddLength) {
			t.Fatalf("Decode(%q): expected ErrOddLength, got %v", in, err)
		}
	}
}

func TestDecodeInvalidHexOffset(t *testing.T) {
	cases := []struct {
		in     string
		offset int
		value  byte
	}{
		{"g0", 0, 'g'},
		{"0g", 1, 'g'},
		{"abcdxf", 4, 'x'},
		{"00112233 4", 8, ' '},
		{"ab\xffz", 2, 0xff},
		{"deca:f", 4, ':'},
		{"@@", 0, '@'},
		{"0`", 1, '`'},
		{"/0", 0, '/'},
		{"G0", 0, 'G'},
	}
	for _, tc := range cases {
		_, err := Decode(tc.in)
		var ihe *InvalidHexError
		if !errors.As(err, &ihe) {
			t.Fatalf("Decode(%q): expected *InvalidHexError, got %v", tc.in, err)
		}
		if ihe.Offset != tc.offset || ihe.Value != tc.value {
			t.Fatalf("Decode(%q): got offset=%d value=%q want offset=%d value=%q",
				tc.in, ihe.Offset, ihe.Value, tc.offset, tc.value)
		}
	}
}

func TestDecodeReportsFirstInvalid(t *testing.T) {
	_, err := Decode("00zz00yy")
	var ihe *InvalidHexError
	if !errors.As(err, &ihe) || ihe.Offset != 2 || ihe.Value != 'z' {
		t.Fatalf("expected first offender at 2, got %v", err)
	}
}

func TestDecodeToSlice(t *testing.T) {
	buf := make([]byte, 3)
	out, err := DecodeToSlice(buf, "DeCaFf")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out, []byte{0xde, 0xca, 0xff}) {
		t.Fatalf("DecodeToSlice = %x", out)
	}
	out[0] = 0
	if buf[0] != 0 {
		t.Fatalf("expected returned slice to alias the output buffer")
	}
}

func TestDecodeToSliceMismatchedLength(t *testing.T) {
	cases := []struct {
		in      string
		destLen int
	}{
		{"abcde", 2},
		{"abcd", 1},
		{"ab", 0},
		{"", 1},
		{"zzzzz", 2}, // length is checked before validity
		{"abc", 1},
	}
	for _, tc := range cases {
		_, err := DecodeToSlice(make([]byte, tc.destLen), tc.in)
		var mle *MismatchedLengthError
		if !errors.As(err, &mle) {
			t.Fatalf("DecodeToSlice(%q, %d): expected *MismatchedLengthError, got %v", tc.in, tc.destLen, err)
		}
		if mle.SourceLen != len(tc.in) || mle.DestLen != tc.destLen {
			t.Fatalf("DecodeToSlice(%q, %d): got %+v", tc.in, tc.destLen, *mle)
		}
	}
}

func TestDecodeToSliceInvalidLeavesOutput(t *testing.T) {
	buf := []byte{1, 2, 3}
	_, err := DecodeToSlice(buf, "aabbcX")
	var ihe *InvalidHexError
	if !errors.As(err, &ihe) || ihe.Offset != 5 || ihe.Value != 'X' {
		t.Fatalf("expected invalid hex at 5, got %v", err)
	}
	if !bytes.Equal(buf, []byte{1, 2, 3}) {
		t.Fatalf("output touched on error: %x", buf)
	}
}

func TestDecodeToSliceMatchesDecode(t *testing.T) {
	var in [2]byte
	var buf [2]byte
	for v := 0; v <= 0xffff; v++ {
		binary.BigEndian.PutUint16(in[:], uint16(v))
		for _, s := range []string{Encode(in[:]), EncodeUpper(in[:])} {
			want := mustDecode(t, s)
			got, err := DecodeToSlice(buf[:], s)
			if err != nil {
				t.Fatalf("DecodeToSlice(%q): %v", s, err)
			}
			if !bytes.Equal(got, want) || !bytes.Equal(got, in[:]) {
				t.Fatalf("DecodeToSlice(%q) = %x want %x", s, got, want)
			}
		}
	}
}

func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for n := 0; n < 300; n++ {
		in := make([]byte, n)
		rng.Read(in)
		if got := mustDecode(t, Encode(in)); !bytes.Equal(got, in) {
			t.Fatalf("lower round trip n=%d: %x != %x", n, got, in)
		}
		if got := mustDecode(t, EncodeUpper(in)); !bytes.Equal(got, in) {
			t.Fatalf("upper round trip n=%d: %x != %x", n, got, in)
		}
	}
}

func TestAppendDecode(t *testing.T) {
	got, err := AppendDecode([]byte{0x01}, "02FF")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, []byte{0x01, 0x02, 0xff}) {
		t.Fatalf("AppendDecode = %x", got)
	}

	dst := []byte{0xaa}
	got, err = AppendDecode(dst, "0q")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !bytes.Equal(got, dst) {
		t.Fatalf("dst changed on error: %x", got)
	}
	if _, err := AppendDecode(nil, "012"); !errors.Is(err, ErrOddLength) {
		t.Fatalf("expected ErrOddLength, got %v", err)
	}
}

func TestValid(t *testing.T) {
	cases := map[string]bool{
		"":       true,
		"00":     true,
		"c0FFee": true,
		"0":      false,
		"0g":     false,
		"0x00":   false,
	}
	for in, want := range cases {
		if got := Valid(in); got != want {
			t.Fatalf("Valid(%q) = %v want %v", in, got, want)
		}
	}
}

func TestHexToNibble(t *testing.T) {
	for c := 0; c <= 0xff; c++ {
		b := byte(c)
		if !isHexDigit(b) {
			continue
		}
		var want byte
		switch {
		case b <= '9':
			want = b - '0'
		case b >= 'a':
			want = b - 'a' + 10
		default:
			want = b - 'A' + 10
		}
		if got := hexToNibble(b); got != want {
			t.Fatalf("hexToNibble(%q) = %d want %d", b, got, want)
		}
	}
}

func TestBytesText(t *testing.T) {
	type record struct {
		ID  Bytes `json:"id"`
		Sig Bytes `json:"sig,omitempty"`
	}
	in := record{ID: Bytes{0xde, 0xca, 0xff}}
	raw, err := json.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != `{"id":"decaff"}` {
		t.Fatalf("json = %s", raw)
	}

	var out record
	if err := json.Unmarshal([]byte(`{"id":"DECAFF","sig":"00ff"}`), &out); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out.ID, in.ID) || !bytes.Equal(out.Sig, []byte{0x00, 0xff}) {
		t.Fatalf("unmarshal = %+v", out)
	}
	if in.ID.String() != "decaff" {
		t.Fatalf("String() = %q", in.ID.String())
	}

	err = json.Unmarshal([]byte(`{"id":"0z"}`), &out)
	var ihe *InvalidHexError
	if !errors.As(err, &ihe) || ihe.Offset != 1 {
		t.Fatalf("expected *InvalidHexError through json, got %v", err)
	}
}

func TestErrorMessages(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{ErrOddLength, "hexcodec: odd length hex string"},
		{&InvalidHexError{Offset: 3, Value: 'x'}, `hexcodec: invalid hex character 'x' (0x78) at offset 3`},
		{&MismatchedLengthError{SourceLen: 5, DestLen: 2}, "hexcodec: source length 5 does not decode into 2 bytes"},
	}
	for _, tc := range cases {
		if got := tc.err.Error(); got != tc.want {
			t.Fatalf("got %q want %q", got, tc.want)
		}
	}
}
