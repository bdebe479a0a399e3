package ripemd

import "math/bits"

// block160 runs the five-round twin-line network over every whole block in
// p. The two lines diverge from the shared state and are folded back
// together word by word at the end of each block.
func block160(h *[5]uint32, p []byte) {
	var x [16]uint32
	for len(p) >= BlockSize {
		a, b, c, d, e := h[0], h[1], h[2], h[3], h[4]
		aa, bb, cc, dd, ee := a, b, c, d, e

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

		// combine results
		dd += c + h[1]
		h[1] = h[2] + d + ee
		h[2] = h[3] + e + aa
		h[3] = h[4] + a + bb
		h[4] = h[0] + b + cc
		h[0] = dd

		p = p[BlockSize:]
	}
}
