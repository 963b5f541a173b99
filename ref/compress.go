// Package ref contains a plain, single loop MD5 block function used to check
// the optimized one.
package ref

import (
	"math/bits"

	"github.com/zeebo/md5/internal/consts"
	"github.com/zeebo/md5/internal/utils"
)

// Compress runs the 64 MD5 rounds over block starting from chain and writes
// the updated chain into out.
func Compress(chain *[4]uint32, block *[64]byte, out *[4]uint32) {
	var m [16]uint32
	utils.BytesToWords(block, &m)

	a, b, c, d := chain[0], chain[1], chain[2], chain[3]

	for j := 0; j < 64; j++ {
		var f uint32
		var g int

		switch {
		case j < 16:
			f = (b & c) | (^b & d)
			g = j
		case j < 32:
			f = (d & b) | (^d & c)
			g = (5*j + 1) % 16
		case j < 48:
			f = b ^ c ^ d
			g = (3*j + 5) % 16
		default:
			f = c ^ (b | ^d)
			g = (7 * j) % 16
		}

		tmp := d
		d = c
		c = b
		b += bits.RotateLeft32(a+f+consts.K[j]+m[g], int(consts.S[j]))
		a = tmp
	}

	out[0] = chain[0] + a
	out[1] = chain[1] + b
	out[2] = chain[2] + c
	out[3] = chain[3] + d
}
