package wire

import (
	"bytes"
	"encoding/binary"
	"errors"
)

const (
	version byte = 1

	DigestSize = 32
	headerSize = 4 + 1 + DigestSize + 4
)

var (
	ErrCorrupt = errors.New("blobstore: corrupt entry")
	magic4     = [...]byte{'H', 'E', 'X', 'B'}
)

// Blob: magic(4) | ver(1) | digest(32) | vlen(u32 be) | payload(vlen)
//
// The digest is stored raw; only keys are rendered as hex.
func EncodeBlob(digest [DigestSize]byte, payload []byte) []byte {
	var buf bytes.Buffer
	buf.Grow(headerSize + len(payload))

	buf.Write(magic4[:])
	buf.WriteByte(version)
	buf.Write(digest[:])

	var u4 [4]byte
	binary.BigEndian.PutUint32(u4[:], uint32(len(payload)))
	buf.Write(u4[:])

	buf.Write(payload)
	return buf.Bytes()
}

// DecodeBlob parses a frame written by EncodeBlob. payload aliases b.
func DecodeBlob(b []byte) (digest [DigestSize]byte, payload []byte, err error) {
	if len(b) < headerSize || !bytes.Equal(b[:4], magic4[:]) || b[4] != version {
		return digest, nil, ErrCorrupt
	}
	off := 5

	copy(digest[:], b[off:off+DigestSize])
	off += DigestSize

	vlen := binary.BigEndian.Uint32(b[off : off+4])
	off += 4
	// exact size: rejects both truncation and trailing bytes
	if uint64(vlen) != uint64(len(b)-off) {
		return [DigestSize]byte{}, nil, ErrCorrupt
	}

	return digest, b[off:], nil
}
