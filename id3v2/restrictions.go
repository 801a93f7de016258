package id3v2

import (
	"io"

	"github.com/icza/bitio"
)

// TagSizeRestriction limits the frame count and total size of the tag.
type TagSizeRestriction uint8

const (
	TagSizeMax128Frames1024KiB TagSizeRestriction = iota
	TagSizeMax64Frames128KiB
	TagSizeMax32Frames40KiB
	TagSizeMax32Frames4KiB
)

func (t TagSizeRestriction) String() string {
	switch t {
	case TagSizeMax128Frames1024KiB:
		return "max 128 frames, 1024 KiB"
	case TagSizeMax64Frames128KiB:
		return "max 64 frames, 128 KiB"
	case TagSizeMax32Frames40KiB:
		return "max 32 frames, 40 KiB"
	case TagSizeMax32Frames4KiB:
		return "max 32 frames, 4 KiB"
	default:
		return "<unknown tag size restriction>"
	}
}

// TextEncodingRestriction limits the character encodings used by text frames.
type TextEncodingRestriction uint8

const (
	TextEncodingNone TextEncodingRestriction = iota
	TextEncodingUTF8OrISO88591
)

func (t TextEncodingRestriction) String() string {
	switch t {
	case TextEncodingNone:
		return "none"
	case TextEncodingUTF8OrISO88591:
		return "UTF-8 or ISO-8859-1"
	default:
		return "<unknown text encoding restriction>"
	}
}

// TextFieldSizeRestriction limits the length of text frame contents.
type TextFieldSizeRestriction uint8

const (
	TextFieldSizeNone TextFieldSizeRestriction = iota
	TextFieldSizeMax1024Characters
	TextFieldSizeMax128Characters
	TextFieldSizeMax30Characters
)

func (t TextFieldSizeRestriction) String() string {
	switch t {
	case TextFieldSizeNone:
		return "none"
	case TextFieldSizeMax1024Characters:
		return "max 1024 characters"
	case TextFieldSizeMax128Characters:
		return "max 128 characters"
	case TextFieldSizeMax30Characters:
		return "max 30 characters"
	default:
		return "<unknown text field size restriction>"
	}
}

// ImageEncodingRestriction limits the image formats used by picture frames.
type ImageEncodingRestriction uint8

const (
	ImageEncodingNone ImageEncodingRestriction = iota
	ImageEncodingPNGOrJPEGOnly
)

func (i ImageEncodingRestriction) String() string {
	switch i {
	case ImageEncodingNone:
		return "none"
	case ImageEncodingPNGOrJPEGOnly:
		return "PNG or JPEG only"
	default:
		return "<unknown image encoding restriction>"
	}
}

// ImageSizeRestriction limits the pixel dimensions of embedded images.
type ImageSizeRestriction uint8

const (
	ImageSizeNone ImageSizeRestriction = iota
	ImageSizeLessThan256x256
	ImageSizeLessThan64x64
	ImageSizeExactly64x64
)

func (i ImageSizeRestriction) String() string {
	switch i {
	case ImageSizeNone:
		return "none"
	case ImageSizeLessThan256x256:
		return "less than 256x256"
	case ImageSizeLessThan64x64:
		return "less than 64x64"
	case ImageSizeExactly64x64:
		return "exactly 64x64"
	default:
		return "<unknown image size restriction>"
	}
}

// Restrictions are the encoder-declared limits on the tag, packed into a
// single byte of the ID3v2.4 extended header.
type Restrictions struct {
	TagSize       TagSizeRestriction
	TextEncoding  TextEncodingRestriction
	TextFieldSize TextFieldSizeRestriction
	ImageEncoding ImageEncodingRestriction
	ImageSize     ImageSizeRestriction
}

// readRestrictions decodes one restrictions byte. The byte packs five
// independent fields as %ppqrrstt: tag size (pp), text encoding (q),
// text field size (rr), image encoding (s) and image size (tt). Every
// field is total over its bit range, so the only failure is a read error.
func readRestrictions(r io.Reader) (*Restrictions, error) {
	br := bitio.NewReader(r)

	tagSize, err := br.ReadBits(2)
	if err != nil {
		return nil, err
	}
	textEncoding, err := br.ReadBits(1)
	if err != nil {
		return nil, err
	}
	textFieldSize, err := br.ReadBits(2)
	if err != nil {
		return nil, err
	}
	imageEncoding, err := br.ReadBits(1)
	if err != nil {
		return nil, err
	}
	imageSize, err := br.ReadBits(2)
	if err != nil {
		return nil, err
	}

	return &Restrictions{
		TagSize:       TagSizeRestriction(tagSize),
		TextEncoding:  TextEncodingRestriction(textEncoding),
		TextFieldSize: TextFieldSizeRestriction(textFieldSize),
		ImageEncoding: ImageEncodingRestriction(imageEncoding),
		ImageSize:     ImageSizeRestriction(imageSize),
	}, nil
}
