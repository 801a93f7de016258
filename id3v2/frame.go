package id3v2

import (
	"errors"
	"fmt"
	"io"

	"github.com/irh/Symphonia/internal/bytestream"
	"github.com/irh/Symphonia/internal/syncsafe"
)

// Frame is one opaque metadata record from the tag body. The payload is
// carried as raw bytes; interpreting it is the caller's concern.
type Frame struct {
	// ID is the frame identifier: three characters in ID3v2.2, four in
	// ID3v2.3 and 2.4.
	ID string
	// Size is the declared byte length of the payload.
	Size uint32
	// Flags carries the raw frame status and format flags; always zero
	// for ID3v2.2, which has none.
	Flags uint16
	// Data is the unparsed payload.
	Data []byte
}

// errPadding signals that a frame reader found the zero-filled padding
// area instead of a frame header.
var errPadding = errors.New("padding")

// readFrameV22 reads one ID3v2.2 frame: a 3-byte identifier and a plain
// 24-bit size, followed by the payload.
func readFrameV22(r bytestream.Reader) (*Frame, error) {
	var id [3]byte
	if _, err := io.ReadFull(r, id[:]); err != nil {
		return nil, err
	}
	if id[0] == 0x00 {
		return nil, errPadding
	}
	size, err := bytestream.ReadUint24(r)
	if err != nil {
		return nil, err
	}
	return readFrameBody(r, string(id[:]), size, 0)
}

// readFrameV23 reads one ID3v2.3 frame: a 4-byte identifier, a plain
// 32-bit size and 16 flag bits, followed by the payload.
func readFrameV23(r bytestream.Reader) (*Frame, error) {
	var id [4]byte
	if _, err := io.ReadFull(r, id[:]); err != nil {
		return nil, err
	}
	if id[0] == 0x00 {
		return nil, errPadding
	}
	size, err := bytestream.ReadUint32(r)
	if err != nil {
		return nil, err
	}
	flags, err := bytestream.ReadUint16(r)
	if err != nil {
		return nil, err
	}
	return readFrameBody(r, string(id[:]), size, flags)
}

// readFrameV24 reads one ID3v2.4 frame. The layout matches ID3v2.3
// except that the size is a syncsafe 28-bit integer.
func readFrameV24(r bytestream.Reader) (*Frame, error) {
	var id [4]byte
	if _, err := io.ReadFull(r, id[:]); err != nil {
		return nil, err
	}
	if id[0] == 0x00 {
		return nil, errPadding
	}
	size, err := syncsafe.DecodeUint32(r, 28)
	if err != nil {
		return nil, err
	}
	flags, err := bytestream.ReadUint16(r)
	if err != nil {
		return nil, err
	}
	return readFrameBody(r, string(id[:]), size, flags)
}

func readFrameBody(r bytestream.Reader, id string, size uint32, flags uint16) (*Frame, error) {
	// A size reaching past the tag bound can never be satisfied; report
	// it as bad data before attempting the read.
	if int64(size) > r.Remaining() {
		return nil, fmt.Errorf("%w: frame %q size %d exceeds the %d bytes left in the tag",
			ErrMalformed, id, size, r.Remaining())
	}
	data := make([]byte, size)
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, err
	}
	return &Frame{ID: id, Size: size, Flags: flags, Data: data}, nil
}
