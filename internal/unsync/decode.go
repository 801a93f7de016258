// Package unsync reverses the ID3v2 unsynchronisation scheme. Encoders
// insert a 0x00 after every 0xFF so tag data never reproduces the audio
// frame-sync pattern; decoding drops exactly those inserted zero bytes.
package unsync

// Decode reverses the byte stuffing in place, dropping the 0x00 of every
// (0xFF, 0x00) pair. It returns the compacted logical prefix of buf.
func Decode(buf []byte) []byte {
	var src, dst int
	for src < len(buf)-1 {
		buf[dst] = buf[src]
		dst++
		src++
		if buf[src-1] == 0xff && buf[src] == 0x00 {
			src++
		}
	}

	// When the final two raw bytes are (0xFF, 0x00), src lands on len(buf)
	// and the pair's zero has already been dropped. Otherwise the last byte
	// still has to be copied out.
	if src < len(buf) {
		buf[dst] = buf[src]
		dst++
	}
	return buf[:dst]
}
