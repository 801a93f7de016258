package id3v2

import (
	"bytes"
	"errors"
	"testing"

	"github.com/irh/Symphonia/internal/bytestream"
)

func scopedOver(data []byte) bytestream.Reader {
	return bytestream.NewScoped(bytes.NewReader(data), int64(len(data)))
}

func TestReadExtendedHeaderV3(t *testing.T) {
	// Plain 32-bit size, 16-bit flags, plain 32-bit padding size.
	data := []byte{
		0x00, 0x00, 0x00, 0x06,
		0x00, 0x00,
		0x00, 0x00, 0x01, 0x01,
	}
	eh, err := readExtendedHeaderV3(scopedOver(data))
	if err != nil {
		t.Fatal(err)
	}
	if eh.PaddingSize != 257 {
		t.Errorf("padding size %d, expected 257", eh.PaddingSize)
	}
	if eh.HasCRC || eh.IsUpdate || eh.Restrictions != nil {
		t.Errorf("unexpected optional fields: %+v", eh)
	}
}

func TestReadExtendedHeaderV3CRC(t *testing.T) {
	data := []byte{
		0x00, 0x00, 0x00, 0x0a,
		0x80, 0x00, // CRC flag
		0x00, 0x00, 0x00, 0x40,
		0xde, 0xad, 0xbe, 0xef,
	}
	eh, err := readExtendedHeaderV3(scopedOver(data))
	if err != nil {
		t.Fatal(err)
	}
	if !eh.HasCRC {
		t.Fatal("expected a CRC")
	}
	if eh.CRC32 != 0xdeadbeef {
		t.Errorf("CRC %#x, expected 0xdeadbeef", eh.CRC32)
	}
	if eh.PaddingSize != 64 {
		t.Errorf("padding size %d, expected 64", eh.PaddingSize)
	}
}

func TestReadExtendedHeaderV4(t *testing.T) {
	// Update, CRC and restrictions fields all present. The CRC is a
	// syncsafe 32-bit integer over five bytes.
	data := []byte{
		0x00, 0x00, 0x00, 0x0f, // syncsafe size
		0x01,       // flag length, must be 1
		0x70,       // update | CRC | restrictions
		0x01,       // update field length
		0x05,       // CRC field length
		0x01, 0x02, 0x03, 0x04, 0x05,
		0x01, // restrictions field length
		0xff,
	}
	eh, err := readExtendedHeaderV4(scopedOver(data))
	if err != nil {
		t.Fatal(err)
	}
	if !eh.IsUpdate {
		t.Error("expected the is-update flag")
	}
	if !eh.HasCRC || eh.CRC32 != 272679429 {
		t.Errorf("CRC %d (present=%v), expected 272679429", eh.CRC32, eh.HasCRC)
	}
	r := eh.Restrictions
	if r == nil {
		t.Fatal("expected restrictions")
	}
	want := Restrictions{
		TagSize:       TagSizeMax32Frames4KiB,
		TextEncoding:  TextEncodingUTF8OrISO88591,
		TextFieldSize: TextFieldSizeMax30Characters,
		ImageEncoding: ImageEncodingPNGOrJPEGOnly,
		ImageSize:     ImageSizeExactly64x64,
	}
	if *r != want {
		t.Errorf("restrictions %+v, expected %+v", *r, want)
	}
}

func TestReadExtendedHeaderV4Defaults(t *testing.T) {
	// With no optional fields, the is-update flag still defaults to
	// false because the extended header exists.
	data := []byte{0x00, 0x00, 0x00, 0x06, 0x01, 0x00}
	eh, err := readExtendedHeaderV4(scopedOver(data))
	if err != nil {
		t.Fatal(err)
	}
	if eh.IsUpdate || eh.HasCRC || eh.Restrictions != nil {
		t.Errorf("expected an empty extended header, got %+v", eh)
	}
}

func TestReadExtendedHeaderV4BadLengths(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"flag length 2", []byte{0x00, 0x00, 0x00, 0x06, 0x02, 0x00}},
		{"update length 2", []byte{0x00, 0x00, 0x00, 0x07, 0x01, 0x40, 0x02}},
		{"CRC length 4", []byte{0x00, 0x00, 0x00, 0x0b, 0x01, 0x20, 0x04, 0x01, 0x02, 0x03, 0x04}},
		{"restrictions length 0", []byte{0x00, 0x00, 0x00, 0x07, 0x01, 0x10, 0x00}},
	}
	for _, test := range tests {
		_, err := readExtendedHeaderV4(scopedOver(test.data))
		if !errors.Is(err, ErrMalformed) {
			t.Errorf("%s: expected %v, got %v", test.name, ErrMalformed, err)
		}
	}
}

func TestReadRestrictions(t *testing.T) {
	tests := []struct {
		b    byte
		want Restrictions
	}{
		{0x00, Restrictions{}},
		// %10 1 00 1 00
		{0xa4, Restrictions{
			TagSize:       TagSizeMax32Frames40KiB,
			TextEncoding:  TextEncodingUTF8OrISO88591,
			ImageEncoding: ImageEncodingPNGOrJPEGOnly,
		}},
		// %01 0 10 0 11
		{0x53, Restrictions{
			TagSize:       TagSizeMax64Frames128KiB,
			TextFieldSize: TextFieldSizeMax128Characters,
			ImageSize:     ImageSizeExactly64x64,
		}},
	}
	for i, test := range tests {
		got, err := readRestrictions(bytes.NewReader([]byte{test.b}))
		if err != nil {
			t.Errorf("i=%d; unexpected error: %v", i, err)
			continue
		}
		if *got != test.want {
			t.Errorf("i=%d; decoded %+v, expected %+v", i, *got, test.want)
		}
	}
}

func TestRestrictionStrings(t *testing.T) {
	r := Restrictions{
		TagSize:       TagSizeMax128Frames1024KiB,
		TextEncoding:  TextEncodingUTF8OrISO88591,
		TextFieldSize: TextFieldSizeMax1024Characters,
		ImageEncoding: ImageEncodingNone,
		ImageSize:     ImageSizeLessThan256x256,
	}
	if got := r.TagSize.String(); got != "max 128 frames, 1024 KiB" {
		t.Errorf("TagSize = %q", got)
	}
	if got := r.TextEncoding.String(); got != "UTF-8 or ISO-8859-1" {
		t.Errorf("TextEncoding = %q", got)
	}
	if got := r.TextFieldSize.String(); got != "max 1024 characters" {
		t.Errorf("TextFieldSize = %q", got)
	}
	if got := r.ImageEncoding.String(); got != "none" {
		t.Errorf("ImageEncoding = %q", got)
	}
	if got := r.ImageSize.String(); got != "less than 256x256" {
		t.Errorf("ImageSize = %q", got)
	}
}
