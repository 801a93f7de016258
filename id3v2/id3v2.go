// Package id3v2 implements decoding of ID3v2 metadata tags, versions 2.2
// through 2.4, prepended to audio streams.
//
// ReadTag decodes the fixed tag header, scopes all further reads to the
// header's declared body size, transparently reverses the
// unsynchronisation byte stuffing where the tag requires it, decodes the
// optional extended header and collects the tag's frames as opaque byte
// records. Frame payloads are not interpreted, and tags are never
// written.
package id3v2

import (
	"bufio"
	"io"

	"github.com/irh/Symphonia/internal/bytestream"
	"github.com/irh/Symphonia/internal/unsync"
)

// Tag holds the decoded contents of one ID3v2 tag.
type Tag struct {
	Header Header
	// Extended is the optional extended header; nil when the tag has
	// none. It is carried for diagnostics and does not influence how the
	// frames were read.
	Extended *ExtendedHeader
	// Frames are the tag's metadata records with opaque payloads.
	Frames []Frame
}

// ReadTag reads exactly one ID3v2 tag from the start of r. Decoding is
// all or nothing: on error no partial tag is returned. If r already
// supports buffered byte reads (as *bufio.Reader and *bytes.Reader do)
// it is consumed in place and left positioned at the first byte after
// the tag; otherwise it is wrapped in a bufio.Reader.
//
// Errors are reported in three distinct kinds: ErrUnsupported and
// ErrMalformed (checked with errors.Is), and I/O failures from r, which
// propagate as they are.
func ReadTag(r io.Reader) (*Tag, error) {
	src, ok := r.(bytestream.Source)
	if !ok {
		src = bufio.NewReader(r)
	}

	header, err := readHeader(src)
	if err != nil {
		return nil, err
	}

	// The header's size field covers the tag body only; scope all reads
	// to it so a corrupt size can never pull in unrelated trailing data.
	scoped := bytestream.NewScoped(src, int64(header.Size))

	// Before 2.4 the unsynchronisation scheme covers the whole tag body.
	// In 2.4 it is applied per frame and therefore belongs to whoever
	// interprets the frame payloads.
	var body bytestream.Reader = scoped
	if header.Unsynchronisation && header.MajorVersion < 4 {
		body = unsync.NewReader(scoped)
	}

	tag := &Tag{Header: header}
	if header.HasExtendedHeader {
		switch header.MajorVersion {
		case 3:
			tag.Extended, err = readExtendedHeaderV3(body)
		case 4:
			tag.Extended, err = readExtendedHeaderV4(body)
		}
		if err != nil {
			return nil, err
		}
	}

	readFrame := readFrameV24
	minFrameSize := int64(10)
	switch header.MajorVersion {
	case 2:
		readFrame = readFrameV22
		minFrameSize = 6
	case 3:
		readFrame = readFrameV23
	}

	// Read frames until the remainder of the tag is too small to hold
	// another frame header, or a reader runs into the zero padding. The
	// tail is never read as a frame.
	for body.Remaining() >= minFrameSize {
		frame, err := readFrame(body)
		if err == errPadding {
			break
		}
		if err != nil {
			return nil, err
		}
		tag.Frames = append(tag.Frames, *frame)
	}

	// Drain the padding so the source ends up at the first byte after
	// the tag. Padding is skipped on the raw stream; it is never
	// unsynchronised content.
	if err := scoped.Skip(scoped.Remaining()); err != nil {
		return nil, err
	}

	return tag, nil
}
