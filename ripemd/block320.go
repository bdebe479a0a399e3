package ripemd

import "math/bits"

// block320 runs the five-round twin-line network over every whole block in
// p, keeping both lines in the output state. As with the 256-bit variant
// the lines only trade one chaining word per round, so the 320-bit digest
// carries 160-bit collision resistance.
func block320(h *[10]uint32, p []byte) {
	var x [16]uint32
	for len(p) >= BlockSize {
		a, b, c, d, e := h[0], h[1], h[2], h[3], h[4]
		aa, bb, cc, dd, ee := h[5], h[6], h[7], h[8], h[9]

		j := 0
		for i := 0; i < 16; i++ {
			x[i] = uint32(p[j]) | uint32(p[j+1])<<8 | uint32(p[j+2])<<16 | uint32(p[j+3])<<24
			j += 4
		}

		// round 1
		i := 0
		for i < 16 {
			alpha := a + (b ^ c ^ d) + x[_n[i]]
			alpha = bits.RotateLeft32(alpha, int(_r[i])) + e
			beta := bits.RotateLeft32(c, 10)
			a, b, c, d, e = e, alpha, b, beta, d

			// parallel line
			alpha = aa + (bb ^ (cc | ^dd)) + x[n_[i]] + 0x50a28be6
			alpha = bits.RotateLeft32(alpha, int(r_[i])) + ee
			beta = bits.RotateLeft32(cc, 10)
			aa, bb, cc, dd, ee = ee, alpha, bb, beta, dd

			i++
		}
		b, bb = bb, b

		// round 2
		for i < 32 {
			alpha := a + (b&c | ^b&d) + x[_n[i]] + 0x5a827999
			alpha = bits.RotateLeft32(alpha, int(_r[i])) + e
			beta := bits.RotateLeft32(c, 10)
			a, b, c, d, e = e, alpha, b, beta, d

			// parallel line
			alpha = aa + (bb&dd | cc&^dd) + x[n_[i]] + 0x5c4dd124
			alpha = bits.RotateLeft32(alpha, int(r_[i])) + ee
			beta = bits.RotateLeft32(cc, 10)
			aa, bb, cc, dd, ee = ee, alpha, bb, beta, dd

			i++
		}
		d, dd = dd, d

		// round 3
		for i < 48 {
			alpha := a + (b | ^c ^ d) + x[_n[i]] + 0x6ed9eba1
			alpha = bits.RotateLeft32(alpha, int(_r[i])) + e
			beta := bits.RotateLeft32(c, 10)
			a, b, c, d, e = e, alpha, b, beta, d

			// parallel line
			alpha = aa + (bb | ^cc ^ dd) + x[n_[i]] + 0x6d703ef3
			alpha = bits.RotateLeft32(alpha, int(r_[i])) + ee
			beta = bits.RotateLeft32(cc, 10)
			aa, bb, cc, dd, ee = ee, alpha, bb, beta, dd

			i++
		}
		a, aa = aa, a

		// round 4
		for i < 64 {
			alpha := a + (b&d | c&^d) + x[_n[i]] + 0x8f1bbcdc
			alpha = bits.RotateLeft32(alpha, int(_r[i])) + e
			beta := bits.RotateLeft32(c, 10)
			a, b, c, d, e = e, alpha, b, beta, d

			// parallel line
			alpha = aa + (bb&cc | ^bb&dd) + x[n_[i]] + 0x7a6d76e9
			alpha = bits.RotateLeft32(alpha, int(r_[i])) + ee
			beta = bits.RotateLeft32(cc, 10)
			aa, bb, cc, dd, ee = ee, alpha, bb, beta, dd

			i++
		}
		c, cc = cc, c

		// round 5
		for i < 80 {
			alpha := a + (b ^ (c | ^d)) + x[_n[i]] + 0xa953fd4e
			alpha = bits.RotateLeft32(alpha, int(_r[i])) + e
			beta := bits.RotateLeft32(c, 10)
			a, b, c, d, e = e, alpha, b, beta, d

			// parallel line
			alpha = aa + (bb ^ cc ^ dd) + x[n_[i]]
			alpha = bits.RotateLeft32(alpha, int(r_[i])) + ee
			beta = bits.RotateLeft32(cc, 10)
			aa, bb, cc, dd, ee = ee, alpha, bb, beta, dd

			i++
		}
		e, ee = ee, e

		h[0] += a
		h[1] += b
		h[2] += c
		h[3] += d
		h[4] += e
		h[5] += aa
		h[6] += bb
		h[7] += cc
		h[8] += dd
		h[9] += ee

		p = p[BlockSize:]
	}
}
