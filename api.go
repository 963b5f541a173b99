// Package md5 implements a streaming MD5 digest engine as defined in RFC 1321.
//
// MD5 is cryptographically broken and should not be used where collision
// resistance matters. It is provided for bit exact interoperability with
// formats that still require it.
package md5

import (
	"encoding/binary"
	"errors"

	"github.com/zeebo/md5/internal/consts"
)

// Hasher is a hash.Hash for MD5.
type Hasher struct {
	h hasher
}

// New returns a new Hasher.
func New() *Hasher {
	return &Hasher{h: newHasher()}
}

// Sum returns the MD5 digest of data.
func Sum(data []byte) [Size]byte {
	h := newHasher()
	h.update(data)
	return h.finalize()
}

// Update feeds p into the Hasher and returns the current chaining state. The
// returned value is not the digest of the data written so far: call Finalize
// for that.
func (h *Hasher) Update(p []byte) [Size]byte {
	h.h.update(p)
	return h.h.snapshot()
}

// Finalize returns the digest of everything written since the Hasher was
// created or last finalized, and resets the Hasher so that it can be reused
// as if it was newly created. Calling Finalize twice in a row returns the
// digest of the empty input the second time.
func (h *Hasher) Finalize() [Size]byte {
	return h.h.finalize()
}

// Calculate returns the digest of p alone. Any data previously written to the
// Hasher is discarded.
func (h *Hasher) Calculate(p []byte) [Size]byte {
	h.h.reset()
	h.h.update(p)
	return h.h.finalize()
}

// Write implements part of the hash.Hash interface. It never returns an error.
func (h *Hasher) Write(p []byte) (int, error) {
	h.h.update(p)
	return len(p), nil
}

// WriteString is like Write but writes a string.
func (h *Hasher) WriteString(p string) (int, error) {
	h.h.update([]byte(p))
	return len(p), nil
}

// Reset implements part of the hash.Hash interface. It causes the Hasher to
// act as if it was newly created.
func (h *Hasher) Reset() {
	h.h.reset()
}

// Size implements part of the hash.Hash interface. It returns the number of
// bytes the hash will output.
func (h *Hasher) Size() int {
	return Size
}

// BlockSize implements part of the hash.Hash interface. It returns the most
// natural size to write to the Hasher.
func (h *Hasher) BlockSize() int {
	return BlockSize
}

// Sum implements part of the hash.Hash interface. It appends the digest of
// the Hasher to the provided buffer and returns it. It does not change the
// state of the Hasher.
func (h *Hasher) Sum(b []byte) []byte {
	c := h.h.clone()
	digest := c.finalize()
	return append(b, digest[:]...)
}

// Clone returns a new Hasher with the same state as h. Writes to either do
// not affect the other.
func (h *Hasher) Clone() *Hasher {
	return &Hasher{h: h.h.clone()}
}

const (
	magic         = "md5\x01"
	marshaledSize = len(magic) + 4*4 + consts.BlockLen + 8
)

// MarshalBinary implements encoding.BinaryMarshaler. The encoding matches the
// one used by the standard library's crypto/md5.
func (h *Hasher) MarshalBinary() ([]byte, error) {
	b := make([]byte, 0, marshaledSize)
	b = append(b, magic...)
	for _, w := range h.h.s {
		b = binary.BigEndian.AppendUint32(b, w)
	}
	b = append(b, h.h.acc...)
	b = b[:len(b)+consts.BlockLen-len(h.h.acc)]
	b = binary.BigEndian.AppendUint64(b, h.h.n+uint64(len(h.h.acc)))
	return b, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. It restores a state
// produced by MarshalBinary.
func (h *Hasher) UnmarshalBinary(b []byte) error {
	if len(b) < len(magic) || string(b[:len(magic)]) != magic {
		return errors.New("md5: invalid hash state identifier")
	}
	if len(b) != marshaledSize {
		return errors.New("md5: invalid hash state size")
	}
	b = b[len(magic):]

	var s [4]uint32
	for i := range s {
		s[i] = binary.BigEndian.Uint32(b)
		b = b[4:]
	}
	block, b := b[:consts.BlockLen], b[consts.BlockLen:]
	total := binary.BigEndian.Uint64(b)

	nx := int(total % consts.BlockLen)
	h.h.s = s
	h.h.n = total - uint64(nx)
	h.h.acc = append(h.h.acc[:0], block[:nx]...)
	return nil
}
