package hasher

import "encoding/binary"

// BlockSize The block size in bytes shared by every algorithm in this
// module.
const BlockSize = 64

// Block is the unit of input consumed by one compression step.
type Block = [BlockSize]byte

// Buffer accumulates stream bytes into BlockSize blocks, feeding each
// completed block eagerly through the supplied callback. A partial
// trailing block is carried across calls. Once one of the padding methods
// has run, the buffer is consumed; Write and further padding panic until
// Reset.
type Buffer struct {
	block Block
	pos   int
	done  bool
}

// Write appends p, invoking blocks once for every run of completed blocks,
// in stream order. When the buffer is empty and p covers whole blocks,
// those are compressed directly from p without copying into the buffer.
func (b *Buffer) Write(p []byte, blocks func(p []byte)) {
	if b.done {
		panic("hasher: write after finalization")
	}
	if b.pos > 0 {
		n := copy(b.block[b.pos:], p)
		b.pos += n
		if b.pos == BlockSize {
			blocks(b.block[:])
			b.pos = 0
		}
		p = p[n:]
	}
	if len(p) >= BlockSize {
		n := len(p) &^ (BlockSize - 1)
		blocks(p[:n])
		p = p[n:]
	}
	if len(p) > 0 {
		b.pos = copy(b.block[:], p)
	}
}

// Len returns the number of buffered bytes, 0 to BlockSize-1.
func (b *Buffer) Len() int { return b.pos }

// PadLen64LE applies Merkle-Damgård padding to the buffered tail: a 0x80
// marker byte, zero fill, and the total message bit length as a
// little-endian 64-bit trailer. If the marker leaves no room for the
// trailer, the current block is completed with zeros and a second
// all-padding block is emitted. Each padded block is passed to blocks
// exactly once, in order.
func (b *Buffer) PadLen64LE(bitLen uint64, blocks func(p []byte)) {
	if b.done {
		panic("hasher: buffer already finalized")
	}
	b.done = true
	b.block[b.pos] = 0x80
	for i := b.pos + 1; i < BlockSize; i++ {
		b.block[i] = 0
	}
	if b.pos >= BlockSize-8 {
		blocks(b.block[:])
		b.block = Block{}
	}
	binary.LittleEndian.PutUint64(b.block[BlockSize-8:], bitLen)
	blocks(b.block[:])
	b.pos = 0
}

// PadByteOne completes the buffered tail with a 0x01 marker byte followed
// by zeros, returning the padded block and the count of genuine message
// bytes it holds. The caller compresses the block itself.
func (b *Buffer) PadByteOne() (*Block, int) {
	if b.done {
		panic("hasher: buffer already finalized")
	}
	b.done = true
	n := b.pos
	b.block[n] = 0x01
	for i := n + 1; i < BlockSize; i++ {
		b.block[i] = 0
	}
	b.pos = 0
	return &b.block, n
}

// Reset discards buffered data and makes the buffer writable again.
func (b *Buffer) Reset() {
	b.block = Block{}
	b.pos = 0
	b.done = false
}
