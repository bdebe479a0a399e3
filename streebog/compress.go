package streebog

import "encoding/binary"

// lps applies the substitution, byte transposition and linear transform of
// the round function. The 64-byte state is read as eight little-endian
// lanes; the transposition is folded into the lane indexing and the
// substitution plus matrix multiplication come from lut.
func lps(x *[64]byte) {
	var out [8]uint64
	for k := 0; k < 8; k++ {
		out[k] = lut[0][x[k]] ^ lut[1][x[8+k]] ^ lut[2][x[16+k]] ^
			lut[3][x[24+k]] ^ lut[4][x[32+k]] ^ lut[5][x[40+k]] ^
			lut[6][x[48+k]] ^ lut[7][x[56+k]]
	}
	for k := 0; k < 8; k++ {
		binary.LittleEndian.PutUint64(x[8*k:], out[k])
	}
}

func xorInto(dst, src *[64]byte) {
	for i := range dst {
		dst[i] ^= src[i]
	}
}

// g applies the keyed compression g_N(h, m) = E(LPS(h XOR n), m) XOR h
// XOR m, where E is the twelve-round LPSX cipher: the first round key is
// LPS(h XOR n) and each following key is LPS of the previous key XORed
// with the next round constant; the thirteenth key whitens the output.
func (s *state) g(n, m *[64]byte) {
	k := s.h
	xorInto(&k, n)
	lps(&k)

	t := *m
	for r := range c {
		xorInto(&t, &k)
		lps(&t)
		xorInto(&k, &c[r])
		lps(&k)
	}

	for i := range s.h {
		s.h[i] ^= t[i] ^ k[i] ^ m[i]
	}
}
