package ripemd

import "math/bits"

// block256 runs the four-round twin-line network over every whole block in
// p. The lines are never folded together: they trade one chaining word
// after each round and both halves land in the output state, which is why
// the 256-bit digest carries only 128-bit collision resistance.
func block256(h *[8]uint32, p []byte) {
	var x [16]uint32
	for len(p) >= BlockSize {
		a, b, c, d := h[0], h[1], h[2], h[3]
		aa, bb, cc, dd := h[4], h[5], h[6], h[7]

		j := 0
		for i := 0; i < 16; i++ {
			x[i] = uint32(p[j]) | uint32(p[j+1])<<8 | uint32(p[j+2])<<16 | uint32(p[j+3])<<24
			j += 4
		}

		// round 1
		i := 0
		for i < 16 {
			alpha := a + (b ^ c ^ d) + x[_n[i]]
			alpha = bits.RotateLeft32(alpha, int(_r[i]))
			a, b, c, d = d, alpha, b, c

			// parallel line
			alpha = aa + (bb&dd | cc&^dd) + x[n_[i]] + 0x50a28be6
			alpha = bits.RotateLeft32(alpha, int(r_[i]))
			aa, bb, cc, dd = dd, alpha, bb, cc

			i++
		}
		a, aa = aa, a

		// round 2
		for i < 32 {
			alpha := a + (b&c | ^b&d) + x[_n[i]] + 0x5a827999
			alpha = bits.RotateLeft32(alpha, int(_r[i]))
			a, b, c, d = d, alpha, b, c

			// parallel line
			alpha = aa + (bb | ^cc ^ dd) + x[n_[i]] + 0x5c4dd124
			alpha = bits.RotateLeft32(alpha, int(r_[i]))
			aa, bb, cc, dd = dd, alpha, bb, cc

			i++
		}
		b, bb = bb, b

		// round 3
		for i < 48 {
			alpha := a + (b | ^c ^ d) + x[_n[i]] + 0x6ed9eba1
			alpha = bits.RotateLeft32(alpha, int(_r[i]))
			a, b, c, d = d, alpha, b, c

			// parallel line
			alpha = aa + (bb&cc | ^bb&dd) + x[n_[i]] + 0x6d703ef3
			alpha = bits.RotateLeft32(alpha, int(r_[i]))
			aa, bb, cc, dd = dd, alpha, bb, cc

			i++
		}
		c, cc = cc, c

		// round 4
		for i < 64 {
			alpha := a + (b&d | c&^d) + x[_n[i]] + 0x8f1bbcdc
			alpha = bits.RotateLeft32(alpha, int(_r[i]))
			a, b, c, d = d, alpha, b, c

			// parallel line
			alpha = aa + (bb ^ cc ^ dd) + x[n_[i]]
			alpha = bits.RotateLeft32(alpha, int(r_[i]))
			aa, bb, cc, dd = dd, alpha, bb, cc

			i++
		}
		d, dd = dd, d

		h[0] += a
		h[1] += b
		h[2] += c
		h[3] += d
		h[4] += aa
		h[5] += bb
		h[6] += cc
		h[7] += dd

		p = p[BlockSize:]
	}
}
