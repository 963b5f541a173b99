package md5

import (
	"github.com/zeebo/md5/internal/consts"
	"github.com/zeebo/md5/internal/utils"
)

//
// hasher contains state for an md5 hash
//

type hasher struct {
	n   uint64 // bytes that have gone through compress
	s   [4]uint32
	acc []byte // always shorter than a block between calls
}

func newHasher() hasher {
	return hasher{s: consts.IV}
}

// reset puts the hasher back into its initial state. The processed byte count
// is cleared along with the chaining state so a reused hasher encodes the
// length of the next message only.
func (a *hasher) reset() {
	a.n = 0
	a.s = consts.IV
	a.acc = a.acc[:0]
}

func (a *hasher) update(buf []byte) {
	if len(a.acc) > 0 {
		n := consts.BlockLen - len(a.acc)
		if n > len(buf) {
			n = len(buf)
		}
		a.acc = append(a.acc, buf[:n]...)
		buf = buf[n:]

		if len(a.acc) < consts.BlockLen {
			return
		}

		a.consume(a.acc)
		a.drain(consts.BlockLen)
	}

	// consume whole blocks directly with no copy if possible
	for len(buf) >= consts.BlockLen {
		a.consume(buf)
		buf = buf[consts.BlockLen:]
	}

	a.acc = append(a.acc, buf...)
}

// consume compresses the first block of buf.
func (a *hasher) consume(buf []byte) {
	a.s = compress(a.s, (*[consts.BlockLen]byte)(buf[:consts.BlockLen]))
	a.n += consts.BlockLen
}

// drain removes the first n bytes of the accumulator, keeping its storage.
func (a *hasher) drain(n int) {
	a.acc = a.acc[:copy(a.acc, a.acc[n:])]
}

func (a *hasher) snapshot() (out [consts.Size]byte) {
	utils.WordsToBytes(&a.s, &out)
	return out
}

func (a *hasher) finalize() (out [consts.Size]byte) {
	bits := 8 * (a.n + uint64(len(a.acc)))

	tail := pad(a.acc, bits)
	for len(tail) > 0 {
		a.s = compress(a.s, (*[consts.BlockLen]byte)(tail[:consts.BlockLen]))
		tail = tail[consts.BlockLen:]
	}

	out = a.snapshot()
	a.reset()
	return out
}

func (a *hasher) clone() hasher {
	c := *a
	c.acc = append([]byte(nil), a.acc...)
	return c
}
