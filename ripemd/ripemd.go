// Package ripemd implements the RIPEMD-160, RIPEMD-256 and RIPEMD-320
// hash functions (the modified 1996 versions).
//
// RIPEMD-256 provides only the same security as RIPEMD-128, and
// RIPEMD-320 only the same security as RIPEMD-160: the wide variants run
// the same twin-line networks without the final cross-line fold.
package ripemd

import (
	"encoding/binary"

	"git.gammaspectra.live/P2Pool/digests/hasher"
)

// BlockSize The block size of all variants in bytes.
const BlockSize = hasher.BlockSize

const (
	// Size160 The size of a RIPEMD-160 digest in bytes.
	Size160 = 20
	// Size256 The size of a RIPEMD-256 digest in bytes.
	Size256 = 32
	// Size320 The size of a RIPEMD-320 digest in bytes.
	Size320 = 40
)

var (
	Ripemd160 = &hasher.Algorithm{Name: "Ripemd160", Size: Size160, New: func() hasher.Compressor {
		d := new(digest160)
		d.Reset()
		return d
	}}
	Ripemd256 = &hasher.Algorithm{Name: "Ripemd256", Size: Size256, New: func() hasher.Compressor {
		d := new(digest256)
		d.Reset()
		return d
	}}
	Ripemd320 = &hasher.Algorithm{Name: "Ripemd320", Size: Size320, New: func() hasher.Compressor {
		d := new(digest320)
		d.Reset()
		return d
	}}
)

//nolint:gochecknoinits
func init() {
	hasher.Register(Ripemd160)
	hasher.Register(Ripemd256)
	hasher.Register(Ripemd320)
}

// New160 returns a streaming RIPEMD-160 hasher.
func New160() *hasher.Engine { return hasher.NewEngine(Ripemd160) }

// New256 returns a streaming RIPEMD-256 hasher.
func New256() *hasher.Engine { return hasher.NewEngine(Ripemd256) }

// New320 returns a streaming RIPEMD-320 hasher.
func New320() *hasher.Engine { return hasher.NewEngine(Ripemd320) }

// Sum160 returns the RIPEMD-160 digest of data.
func Sum160(data []byte) (out [Size160]byte) {
	var d digest160
	d.Reset()
	var buf hasher.Buffer
	buf.Write(data, d.Blocks)
	d.Finalize(&buf, out[:])
	return
}

// Sum256 returns the RIPEMD-256 digest of data.
func Sum256(data []byte) (out [Size256]byte) {
	var d digest256
	d.Reset()
	var buf hasher.Buffer
	buf.Write(data, d.Blocks)
	d.Finalize(&buf, out[:])
	return
}

// Sum320 returns the RIPEMD-320 digest of data.
func Sum320(data []byte) (out [Size320]byte) {
	var d digest320
	d.Reset()
	var buf hasher.Buffer
	buf.Write(data, d.Blocks)
	d.Finalize(&buf, out[:])
	return
}

// Each digest carries its chaining words plus the count of whole blocks
// compressed so far; blocks*512 plus the buffered bits always equals the
// message bits seen. The counter is documented, not checked, to stay below
// 2^64 blocks.

type digest160 struct {
	h      [5]uint32
	blocks uint64
}

func (d *digest160) Reset() {
	d.h = iv160
	d.blocks = 0
}

func (d *digest160) Blocks(p []byte) {
	if len(p)%BlockSize != 0 {
		panic("ripemd: input not block aligned")
	}
	d.blocks += uint64(len(p) / BlockSize)
	block160(&d.h, p)
}

func (d *digest160) Finalize(buf *hasher.Buffer, out []byte) {
	bitLen := (d.blocks*BlockSize + uint64(buf.Len())) * 8
	buf.PadLen64LE(bitLen, func(p []byte) { block160(&d.h, p) })
	putWordsLE(out, d.h[:])
}

func (d *digest160) Clone() hasher.Compressor {
	c := *d
	return &c
}

type digest256 struct {
	h      [8]uint32
	blocks uint64
}

func (d *digest256) Reset() {
	d.h = iv256
	d.blocks = 0
}

func (d *digest256) Blocks(p []byte) {
	if len(p)%BlockSize != 0 {
		panic("ripemd: input not block aligned")
	}
	d.blocks += uint64(len(p) / BlockSize)
	block256(&d.h, p)
}

func (d *digest256) Finalize(buf *hasher.Buffer, out []byte) {
	bitLen := (d.blocks*BlockSize + uint64(buf.Len())) * 8
	buf.PadLen64LE(bitLen, func(p []byte) { block256(&d.h, p) })
	putWordsLE(out, d.h[:])
}

func (d *digest256) Clone() hasher.Compressor {
	c := *d
	return &c
}

type digest320 struct {
	h      [10]uint32
	blocks uint64
}

func (d *digest320) Reset() {
	d.h = iv320
	d.blocks = 0
}

func (d *digest320) Blocks(p []byte) {
	if len(p)%BlockSize != 0 {
		panic("ripemd: input not block aligned")
	}
	d.blocks += uint64(len(p) / BlockSize)
	block320(&d.h, p)
}

func (d *digest320) Finalize(buf *hasher.Buffer, out []byte) {
	bitLen := (d.blocks*BlockSize + uint64(buf.Len())) * 8
	buf.PadLen64LE(bitLen, func(p []byte) { block320(&d.h, p) })
	putWordsLE(out, d.h[:])
}

func (d *digest320) Clone() hasher.Compressor {
	c := *d
	return &c
}

func putWordsLE(out []byte, h []uint32) {
	for i, v := range h {
		binary.LittleEndian.PutUint32(out[4*i:], v)
	}
}
