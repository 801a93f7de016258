package id3v2

import "errors"

var (
	// ErrUnsupported reports data that was recognized but cannot be
	// decoded: a missing "ID3" magic, a version outside 2.2-2.4, or the
	// undefined ID3v2.2 compression scheme.
	ErrUnsupported = errors.New("id3v2: unsupported")
	// ErrMalformed reports malformed or inconsistent tag data, such as a
	// 0xFF version byte or an extended-header length field that does not
	// match its required constant. Once field alignment is lost there is
	// no safe resynchronization point, so decoding always stops here.
	ErrMalformed = errors.New("id3v2: malformed")
)
