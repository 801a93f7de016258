package unsync

import (
	"io"

	"github.com/irh/Symphonia/internal/bytestream"
)

// Reader applies the unsynchronisation decoding incrementally over a
// bounded byte source. Output is identical to running Decode over the
// concatenation of everything ever read, no matter how reads are chunked.
// The only state carried across calls is the last raw byte observed.
type Reader struct {
	src  bytestream.Reader
	last byte
}

// NewReader returns a Reader decoding the unsynchronisation scheme of src.
func NewReader(src bytestream.Reader) *Reader {
	return &Reader{src: src}
}

// ReadByte returns the next decoded byte.
func (r *Reader) ReadByte() (byte, error) {
	b, err := r.src.ReadByte()
	if err != nil {
		return 0, err
	}

	// A 0x00 following a 0xFF is stuffing; drop it and read on.
	if r.last == 0xff && b == 0x00 {
		if b, err = r.src.ReadByte(); err != nil {
			return 0, err
		}
	}
	r.last = b
	return b, nil
}

// Read fills p with exactly len(p) decoded bytes. It fills p with raw
// bytes first, compacts the stuffing in place, then tops up the tail with
// single-byte reads until p is full or the source is exhausted.
func (r *Reader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if _, err := io.ReadFull(r.src, p); err != nil {
		return 0, err
	}

	// A stuffed zero may continue a 0xFF returned by the previous call.
	var src, dst int
	if r.last == 0xff && p[0] == 0x00 {
		src = 1
	}

	// The compaction below overwrites p, so the raw lookback byte has to
	// be recorded first.
	r.last = p[len(p)-1]

	for src < len(p)-1 {
		p[dst] = p[src]
		dst++
		src++
		if p[src-1] == 0xff && p[src] == 0x00 {
			src++
		}
	}
	if src < len(p) {
		p[dst] = p[src]
		dst++
	}

	for dst < len(p) {
		b, err := r.ReadByte()
		if err != nil {
			return dst, err
		}
		p[dst] = b
		dst++
	}
	return len(p), nil
}

// Skip discards n decoded bytes. Skipping is performed with decoded
// single-byte reads, not raw seeks, so stuffed zeros are still elided.
func (r *Reader) Skip(n int64) error {
	for ; n > 0; n-- {
		if _, err := r.ReadByte(); err != nil {
			return err
		}
	}
	return nil
}

// Remaining reports the raw bytes left in the underlying source.
func (r *Reader) Remaining() int64 {
	return r.src.Remaining()
}
