package bytestream

import "io"

// Scoped wraps a Source and enforces a hard logical byte ceiling,
// independent of how many bytes the source physically has left.
// Reads stop with io.EOF at the bound; a skip that would cross the
// bound fails with io.ErrUnexpectedEOF without consuming anything.
type Scoped struct {
	src Source
	n   int64 // bytes remaining before the bound
}

// NewScoped returns a Scoped reader over src limited to n bytes.
func NewScoped(src Source, n int64) *Scoped {
	return &Scoped{src: src, n: n}
}

// Read reads up to len(p) bytes, truncated to the remaining bound.
func (s *Scoped) Read(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}
	if s.n <= 0 {
		return 0, io.EOF
	}
	if int64(len(p)) > s.n {
		p = p[:s.n]
	}
	n, err = s.src.Read(p)
	s.n -= int64(n)
	return n, err
}

// ReadByte reads a single byte, failing with io.EOF at the bound.
func (s *Scoped) ReadByte() (byte, error) {
	if s.n <= 0 {
		return 0, io.EOF
	}
	b, err := s.src.ReadByte()
	if err == nil {
		s.n--
	}
	return b, err
}

// Skip discards the next n bytes within the bound.
func (s *Scoped) Skip(n int64) error {
	if n > s.n {
		return io.ErrUnexpectedEOF
	}
	for n > 0 {
		if _, err := s.src.ReadByte(); err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return err
		}
		s.n--
		n--
	}
	return nil
}

// Remaining reports the number of bytes left before the bound.
func (s *Scoped) Remaining() int64 {
	return s.n
}
