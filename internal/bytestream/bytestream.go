// Package bytestream defines the byte-source contract shared by the tag
// decoders: buffered single-byte and bulk reads, skipping, and accounting
// of the bytes remaining before a declared bound.
package bytestream

import (
	"encoding/binary"
	"io"
)

// Source is the minimal contract required of an underlying byte source.
// A *bufio.Reader satisfies it.
type Source interface {
	io.Reader
	io.ByteReader
}

// Reader is a Source that is bounded and skippable.
type Reader interface {
	Source
	// Skip discards n decoded bytes.
	Skip(n int64) error
	// Remaining reports the number of bytes left before the declared bound.
	Remaining() int64
}

// ReadUint16 reads a big-endian 16-bit unsigned integer from r.
func ReadUint16(r io.Reader) (uint16, error) {
	var buf [2]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(buf[:]), nil
}

// ReadUint24 reads a big-endian 24-bit unsigned integer from r.
func ReadUint24(r io.Reader) (uint32, error) {
	var buf [3]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return uint32(buf[0])<<16 | uint32(buf[1])<<8 | uint32(buf[2]), nil
}

// ReadUint32 reads a big-endian 32-bit unsigned integer from r.
func ReadUint32(r io.Reader) (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(buf[:]), nil
}
