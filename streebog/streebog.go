// Package streebog implements the Streebog-256 and Streebog-512 hash
// functions of GOST R 34.11-2012. Digests are emitted in stream byte
// order; the standard prints the same values as big-endian numbers.
package streebog

import (
	"encoding/binary"

	"git.gammaspectra.live/P2Pool/digests/hasher"
	"lukechampine.com/uint128"
)

// BlockSize The block size of both variants in bytes.
const BlockSize = hasher.BlockSize

const (
	// Size256 The size of a Streebog-256 digest in bytes.
	Size256 = 32
	// Size512 The size of a Streebog-512 digest in bytes.
	Size512 = 64
)

var (
	Streebog256 = &hasher.Algorithm{Name: "Streebog256", Size: Size256, New: func() hasher.Compressor {
		s := &state{size: Size256}
		s.Reset()
		return s
	}}
	Streebog512 = &hasher.Algorithm{Name: "Streebog512", Size: Size512, New: func() hasher.Compressor {
		s := &state{size: Size512}
		s.Reset()
		return s
	}}
)

//nolint:gochecknoinits
func init() {
	hasher.Register(Streebog256)
	hasher.Register(Streebog512)
}

// New256 returns a streaming Streebog-256 hasher.
func New256() *hasher.Engine { return hasher.NewEngine(Streebog256) }

// New512 returns a streaming Streebog-512 hasher.
func New512() *hasher.Engine { return hasher.NewEngine(Streebog512) }

// Sum256 returns the Streebog-256 digest of data.
func Sum256(data []byte) (out [Size256]byte) {
	s := state{size: Size256}
	s.Reset()
	var buf hasher.Buffer
	buf.Write(data, s.Blocks)
	s.Finalize(&buf, out[:])
	return
}

// Sum512 returns the Streebog-512 digest of data.
func Sum512(data []byte) (out [Size512]byte) {
	s := state{size: Size512}
	s.Reset()
	var buf hasher.Buffer
	buf.Write(data, s.Blocks)
	s.Finalize(&buf, out[:])
	return
}

// state carries the chaining value h and the two 512-bit little-endian
// accumulators folded in at finalization: n counts message bits and sigma
// sums every processed block, both modulo 2^512.
type state struct {
	h     [64]byte
	n     [64]byte
	sigma [64]byte
	size  int
}

// Reset restores the variant IV: all-zero bytes for the 512-bit output,
// all-one bytes for the 256-bit truncation. The distinct IV keeps either
// digest from being derivable from the other variant's output.
func (s *state) Reset() {
	var iv byte
	if s.size == Size256 {
		iv = 0x01
	}
	for i := range s.h {
		s.h[i] = iv
	}
	s.n = [64]byte{}
	s.sigma = [64]byte{}
}

func (s *state) Blocks(p []byte) {
	if len(p)%BlockSize != 0 {
		panic("streebog: input not block aligned")
	}
	for len(p) >= BlockSize {
		m := (*[BlockSize]byte)(p)
		s.g(&s.n, m)
		addBits(&s.n, BlockSize*8)
		add512(&s.sigma, m)
		p = p[BlockSize:]
	}
}

func (s *state) Finalize(buf *hasher.Buffer, out []byte) {
	m, n := buf.PadByteOne()
	s.g(&s.n, m)
	addBits(&s.n, uint64(n)*8)
	add512(&s.sigma, m)

	var zero [64]byte
	s.g(&zero, &s.n)
	s.g(&zero, &s.sigma)

	copy(out, s.h[Size512-s.size:])
}

func (s *state) Clone() hasher.Compressor {
	c := *s
	return &c
}

// add512 adds src into dst, both little-endian 512-bit values, modulo
// 2^512.
func add512(dst, src *[64]byte) {
	var carry uint64
	for i := 0; i < 64; i += 8 {
		v := uint128.From64(binary.LittleEndian.Uint64(dst[i:])).
			Add64(binary.LittleEndian.Uint64(src[i:])).
			Add64(carry)
		binary.LittleEndian.PutUint64(dst[i:], v.Lo)
		carry = v.Hi
	}
}

// addBits adds a bit count into the little-endian 512-bit counter n,
// modulo 2^512.
func addBits(n *[64]byte, bits uint64) {
	carry := bits
	for i := 0; i < 64 && carry != 0; i += 8 {
		v := uint128.From64(binary.LittleEndian.Uint64(n[i:])).Add64(carry)
		binary.LittleEndian.PutUint64(n[i:], v.Lo)
		carry = v.Hi
	}
}
