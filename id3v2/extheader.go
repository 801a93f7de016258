package id3v2

import (
	"fmt"

	"github.com/irh/Symphonia/internal/bytestream"
	"github.com/irh/Symphonia/internal/syncsafe"
)

// ExtendedHeader is the optional block following the tag header. Its
// layout differs between ID3v2.3 and ID3v2.4; fields not present in the
// tag's version keep their zero value.
type ExtendedHeader struct {
	// PaddingSize is the declared number of padding bytes. ID3v2.3 only.
	PaddingSize uint32
	// HasCRC reports whether the tag declares a CRC32 checksum.
	HasCRC bool
	// CRC32 is the declared checksum of the tag; valid only if HasCRC.
	CRC32 uint32
	// IsUpdate reports whether this tag updates an earlier one. ID3v2.4 only.
	IsUpdate bool
	// Restrictions are the encoder-declared tag restrictions; nil when
	// absent. ID3v2.4 only.
	Restrictions *Restrictions
}

// readExtendedHeaderV3 reads the ID3v2.3 extended header: a plain 32-bit
// size, 16-bit flags and a plain 32-bit padding size, optionally followed
// by a plain 32-bit CRC32.
func readExtendedHeaderV3(r bytestream.Reader) (*ExtendedHeader, error) {
	// The declared size is informational; the fields below fully
	// determine how many bytes the block occupies.
	if _, err := bytestream.ReadUint32(r); err != nil {
		return nil, err
	}
	flags, err := bytestream.ReadUint16(r)
	if err != nil {
		return nil, err
	}
	padding, err := bytestream.ReadUint32(r)
	if err != nil {
		return nil, err
	}

	eh := &ExtendedHeader{PaddingSize: padding}
	if flags&0x8000 != 0 {
		if eh.CRC32, err = bytestream.ReadUint32(r); err != nil {
			return nil, err
		}
		eh.HasCRC = true
	}
	return eh, nil
}

// readExtendedHeaderV4 reads the ID3v2.4 extended header: a syncsafe
// 28-bit size, a flag-length byte that must equal 1, and a flags byte
// announcing the optional is-update, CRC and restrictions fields. Every
// optional field is preceded by a length byte that must match the
// field's fixed length exactly.
func readExtendedHeaderV4(r bytestream.Reader) (*ExtendedHeader, error) {
	if _, err := syncsafe.DecodeUint32(r, 28); err != nil {
		return nil, err
	}

	flagLen, err := r.ReadByte()
	if err != nil {
		return nil, err
	}
	if flagLen != 1 {
		return nil, fmt.Errorf("%w: extended flags length %d, want 1", ErrMalformed, flagLen)
	}
	flags, err := r.ReadByte()
	if err != nil {
		return nil, err
	}

	eh := &ExtendedHeader{}

	// Tag is an update of an earlier tag. The field carries no data, only
	// its zero length byte.
	if flags&0x40 != 0 {
		n, err := r.ReadByte()
		if err != nil {
			return nil, err
		}
		if n != 1 {
			return nil, fmt.Errorf("%w: is-update field length %d, want 1", ErrMalformed, n)
		}
		eh.IsUpdate = true
	}

	// CRC32, stored as a syncsafe 32-bit integer over five bytes.
	if flags&0x20 != 0 {
		n, err := r.ReadByte()
		if err != nil {
			return nil, err
		}
		if n != 5 {
			return nil, fmt.Errorf("%w: CRC field length %d, want 5", ErrMalformed, n)
		}
		if eh.CRC32, err = syncsafe.DecodeUint32(r, 32); err != nil {
			return nil, err
		}
		eh.HasCRC = true
	}

	// Tag restrictions, one packed byte.
	if flags&0x10 != 0 {
		n, err := r.ReadByte()
		if err != nil {
			return nil, err
		}
		if n != 1 {
			return nil, fmt.Errorf("%w: restrictions field length %d, want 1", ErrMalformed, n)
		}
		if eh.Restrictions, err = readRestrictions(r); err != nil {
			return nil, err
		}
	}

	return eh, nil
}
