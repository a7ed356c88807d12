package digest

import (
	"encoding/binary"
	"encoding/hex"
	"hash"
)

const (
	// Size is the length of a digest in bytes (256 bits).
	Size = 32

	// BlockSize is the block size of the compression function in bytes.
	BlockSize = 64

	// HexSize is the length of a digest rendered as lowercase hex.
	HexSize = 2 * Size
)

// state is the running hash state. The zero value is not usable; callers go
// through [New], [Sum256], or [SumHex], all of which reset the state first.
type state struct {
	h   [8]uint32       // running hash-state words
	x   [BlockSize]byte // buffered partial block
	nx  int             // bytes currently buffered in x
	len uint64          // total message length in bytes
}

// New returns a streaming [hash.Hash] computing the 256-bit digest.
// The returned value is not safe for concurrent use; create one per goroutine.
func New() hash.Hash {
	s := new(state)
	s.Reset()
	return s
}

// Reset restores the engine to its initial state.
func (s *state) Reset() {
	s.h = initState
	s.nx = 0
	s.len = 0
}

// Size returns [Size].
func (s *state) Size() int { return Size }

// BlockSize returns [BlockSize].
func (s *state) BlockSize() int { return BlockSize }

// Write absorbs p into the running hash state. It never returns an error.
func (s *state) Write(p []byte) (n int, err error) {
	n = len(p)
	s.len += uint64(n)

	if s.nx > 0 {
		c := copy(s.x[s.nx:], p)
		s.nx += c
		if s.nx == BlockSize {
			compress(&s.h, s.x[:])
			s.nx = 0
		}
		p = p[c:]
	}
	if len(p) >= BlockSize {
		full := len(p) &^ (BlockSize - 1)
		compress(&s.h, p[:full])
		p = p[full:]
	}
	if len(p) > 0 {
		s.nx = copy(s.x[:], p)
	}
	return n, nil
}

// Sum appends the current digest to in and returns the resulting slice.
// The running state is not disturbed, so more data may be written afterwards.
func (s *state) Sum(in []byte) []byte {
	// Finalise a copy so Sum can be called mid-stream.
	d := *s
	sum := d.checkSum()
	return append(in, sum[:]...)
}

// checkSum pads the message and serialises the final state big-endian.
//
// Padding: a single 0x80 byte, zero bytes until the length is congruent to
// 56 mod 64, then the original length in bits as a 64-bit big-endian integer.
func (s *state) checkSum() [Size]byte {
	var tmp [BlockSize + 8]byte
	tmp[0] = 0x80

	var pad uint64
	if rem := s.len % BlockSize; rem < 56 {
		pad = 56 - rem
	} else {
		pad = BlockSize + 56 - rem
	}
	binary.BigEndian.PutUint64(tmp[pad:], s.len<<3)
	s.Write(tmp[:pad+8])

	var out [Size]byte
	for i, v := range s.h {
		binary.BigEndian.PutUint32(out[i*4:], v)
	}
	return out
}

// Sum256 returns the 256-bit digest of data.
func Sum256(data []byte) [Size]byte {
	var s state
	s.Reset()
	s.Write(data)
	return s.checkSum()
}

// SumHex returns the digest of data as a 64-character lowercase hex string.
func SumHex(data []byte) string {
	sum := Sum256(data)
	return hex.EncodeToString(sum[:])
}
