// Package syncsafe implements the 7-bits-per-byte integer encoding used
// throughout ID3v2 tags. The top bit of every encoded byte is zero, so a
// size field can never reproduce the audio frame-sync pattern.
package syncsafe

import "io"

// DecodeUint32 reads ceil(width/7) bytes from r and assembles a big-endian
// integer from the low 7 bits of each byte, most significant group first.
// The result is masked to exactly width bits. width must be at most 32.
func DecodeUint32(r io.ByteReader, width uint) (uint32, error) {
	var v uint64
	for read := uint(0); read < width; read += 7 {
		b, err := r.ReadByte()
		if err != nil {
			return 0, err
		}
		v = v<<7 | uint64(b&0x7f)
	}
	return uint32(v & (1<<width - 1)), nil
}

// EncodeUint28 encodes the low 28 bits of v as four syncsafe bytes.
func EncodeUint28(v uint32) [4]byte {
	return [4]byte{
		byte(v>>21) & 0x7f,
		byte(v>>14) & 0x7f,
		byte(v>>7) & 0x7f,
		byte(v) & 0x7f,
	}
}
