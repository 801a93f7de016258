package id3v2

import (
	"fmt"
	"io"

	"github.com/irh/Symphonia/internal/bytestream"
	"github.com/irh/Symphonia/internal/syncsafe"
)

var id3Magic = [3]byte{'I', 'D', '3'}

// Header is the fixed ten byte header at the start of every ID3v2 tag.
type Header struct {
	MajorVersion uint8
	MinorVersion uint8
	// Size is the byte length of the tag body, excluding this header and
	// any footer.
	Size uint32
	// Flag bits. Each is only ever true if the bit is defined for
	// MajorVersion; undefined bits are ignored.
	Unsynchronisation bool
	HasExtendedHeader bool
	Experimental      bool
	HasFooter         bool
}

// Version returns the header's version formatted as "ID3v2.major.minor".
func (h Header) Version() string {
	return fmt.Sprintf("ID3v2.%d.%d", h.MajorVersion, h.MinorVersion)
}

// readHeader reads the ten byte tag header: the "ID3" magic, major and
// minor version bytes, one flags byte and a syncsafe 28-bit body size.
func readHeader(r bytestream.Source) (Header, error) {
	var magic [3]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return Header{}, err
	}
	if magic != id3Magic {
		return Header{}, fmt.Errorf("%w: not an ID3v2 tag", ErrUnsupported)
	}

	major, err := r.ReadByte()
	if err != nil {
		return Header{}, err
	}
	minor, err := r.ReadByte()
	if err != nil {
		return Header{}, err
	}
	flags, err := r.ReadByte()
	if err != nil {
		return Header{}, err
	}
	size, err := syncsafe.DecodeUint32(r, 28)
	if err != nil {
		return Header{}, err
	}

	// Version bytes must never be 0xFF.
	if major == 0xff || minor == 0xff {
		return Header{}, fmt.Errorf("%w: invalid version number", ErrMalformed)
	}
	if major < 2 || major > 4 {
		return Header{}, fmt.Errorf("%w: ID3v2 version 2.%d", ErrUnsupported, major)
	}

	// ID3v2.2 defines a compression flag bit but no compression scheme,
	// so there is no way to decode the rest of the tag.
	if major == 2 && flags&0x40 != 0 {
		return Header{}, fmt.Errorf("%w: ID3v2.2 compression", ErrUnsupported)
	}

	h := Header{
		MajorVersion: major,
		MinorVersion: minor,
		Size:         size,
	}

	// Apart from the 2.2 compression bit, flag bits were added one major
	// version at a time. A bit is only honored from the first version
	// that defines it.
	for _, f := range []struct {
		mask byte
		min  uint8
		dst  *bool
	}{
		{0x80, 2, &h.Unsynchronisation},
		{0x40, 3, &h.HasExtendedHeader},
		{0x20, 3, &h.Experimental},
		{0x10, 4, &h.HasFooter},
	} {
		if major >= f.min {
			*f.dst = flags&f.mask != 0
		}
	}

	return h, nil
}
