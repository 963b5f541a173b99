package utils

// BytesToWords decodes a block into sixteen little-endian words.
func BytesToWords(bytes *[64]uint8, words *[16]uint32) {
	for i := range words {
		b := bytes[4*i : 4*i+4 : 4*i+4]
		words[i] = uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
	}
}

// WordsToBytes encodes the state words in order as little-endian bytes.
func WordsToBytes(words *[4]uint32, bytes *[16]uint8) {
	for i, w := range words {
		bytes[4*i+0] = byte(w)
		bytes[4*i+1] = byte(w >> 8)
		bytes[4*i+2] = byte(w >> 16)
		bytes[4*i+3] = byte(w >> 24)
	}
}
