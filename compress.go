package md5

import (
	"math/bits"

	"github.com/zeebo/md5/internal/consts"
	"github.com/zeebo/md5/internal/utils"
)

// compress runs one block through the MD5 rounds and returns the next state.
// The four quartiles each get their own loop so the round function and
// message schedule do not need to be selected per round.
func compress(s [4]uint32, block *[64]byte) [4]uint32 {
	var m [16]uint32
	utils.BytesToWords(block, &m)

	a, b, c, d := s[0], s[1], s[2], s[3]

	for j := 0; j < 16; j++ {
		f := (b & c) | (^b & d)
		a, b, c, d = d, b+bits.RotateLeft32(a+f+consts.K[j]+m[j], int(consts.S[j])), b, c
	}

	for j := 16; j < 32; j++ {
		f := (d & b) | (^d & c)
		g := (5*j + 1) & 15
		a, b, c, d = d, b+bits.RotateLeft32(a+f+consts.K[j]+m[g], int(consts.S[j])), b, c
	}

	for j := 32; j < 48; j++ {
		f := b ^ c ^ d
		g := (3*j + 5) & 15
		a, b, c, d = d, b+bits.RotateLeft32(a+f+consts.K[j]+m[g], int(consts.S[j])), b, c
	}

	for j := 48; j < 64; j++ {
		f := c ^ (b | ^d)
		g := (7 * j) & 15
		a, b, c, d = d, b+bits.RotateLeft32(a+f+consts.K[j]+m[g], int(consts.S[j])), b, c
	}

	return [4]uint32{s[0] + a, s[1] + b, s[2] + c, s[3] + d}
}
