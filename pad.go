package md5

import (
	"encoding/binary"

	"github.com/zeebo/md5/internal/consts"
)

// pad returns the closing block(s) for a message whose unprocessed tail is
// tail and whose total length is bits. tail must be shorter than a block.
// The result is tail, a 0x80 byte, zeros up to 56 mod 64 and the bit length
// as a little-endian uint64, so it is one block long if tail fits in 55 bytes
// and two otherwise.
func pad(tail []byte, bits uint64) []byte {
	const room = consts.BlockLen - consts.LengthLen

	size := consts.BlockLen
	if len(tail) >= room {
		size += consts.BlockLen
	}

	out := make([]byte, size)
	copy(out, tail)
	out[len(tail)] = 0x80
	binary.LittleEndian.PutUint64(out[size-consts.LengthLen:], bits)

	return out
}
