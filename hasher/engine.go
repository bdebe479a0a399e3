package hasher

import "hash"

// Compressor folds fixed-size blocks into an algorithm's chaining state.
type Compressor interface {
	// Blocks compresses p, whose length must be a multiple of BlockSize,
	// one block at a time in stream order.
	Blocks(p []byte)
	// Finalize consumes the buffered tail of the stream through buf,
	// applies the algorithm's padding and writes the digest to out.
	Finalize(buf *Buffer, out []byte)
	// Reset restores the initial chaining state.
	Reset()
	// Clone returns an independent copy of the state.
	Clone() Compressor
}

// Algorithm describes one fixed-output hash: its canonical name, digest
// size in bytes and chaining state constructor. The block size is
// BlockSize for every algorithm.
type Algorithm struct {
	Name string
	Size int
	New  func() Compressor
}

// MaxSize is the largest digest size of any algorithm in this module.
const MaxSize = 64

// Engine drives an Algorithm over an arbitrary-length byte stream and
// implements hash.Hash. An Engine is owned by a single caller; wrap it in
// external synchronization if it must be shared across goroutines.
type Engine struct {
	comp   Compressor
	blocks func(p []byte)
	buf    Buffer
	alg    *Algorithm
}

var _ hash.Hash = (*Engine)(nil)

// NewEngine returns a fresh Engine for alg.
func NewEngine(alg *Algorithm) *Engine {
	e := &Engine{alg: alg, comp: alg.New()}
	e.blocks = e.comp.Blocks
	return e
}

func (e *Engine) Write(p []byte) (int, error) {
	e.buf.Write(p, e.blocks)
	return len(p), nil
}

// Sum appends the digest of the stream so far to in. The accumulated
// state is not consumed: padding and finalization run on scratch copies,
// so the caller may keep writing afterwards.
func (e *Engine) Sum(in []byte) []byte {
	comp := e.comp.Clone()
	buf := e.buf
	var out [MaxSize]byte
	comp.Finalize(&buf, out[:e.alg.Size])
	return append(in, out[:e.alg.Size]...)
}

// Reset restores the algorithm's initial constants and discards all
// buffered data.
func (e *Engine) Reset() {
	e.comp.Reset()
	e.buf.Reset()
}

// Fork returns an independent Engine carrying a copy of the accumulated
// state, for hashing divergent continuations of a shared prefix.
func (e *Engine) Fork() *Engine {
	f := &Engine{alg: e.alg, comp: e.comp.Clone(), buf: e.buf}
	f.blocks = f.comp.Blocks
	return f
}

func (e *Engine) Size() int { return e.alg.Size }

func (e *Engine) BlockSize() int { return BlockSize }

// Name returns the algorithm's canonical name. Informational only; it has
// no effect on computed output.
func (e *Engine) Name() string { return e.alg.Name }

func (e *Engine) String() string { return e.alg.Name }
