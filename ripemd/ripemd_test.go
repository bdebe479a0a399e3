package ripemd

import (
	"bytes"
	"crypto/rand"
	"fmt"
	"testing"

	"git.gammaspectra.live/P2Pool/digests/types"
	xripemd160 "golang.org/x/crypto/ripemd160"
)

type testVector struct {
	Input  string
	Out160 types.Digest160
	Out256 types.Digest256
	Out320 types.Digest320
}

// The Bosselaers test suite plus a few extras.
var testVectors = []testVector{
	{
		Input:  "",
		Out160: types.MustBytes20FromString[types.Digest160]("9c1185a5c5e9fc54612808977ee8f548b2258d31"),
		Out256: types.MustBytes32FromString[types.Digest256]("02ba4c4e5f8ecd1877fc52d64d30e37a2d9774fb1e5d026380ae0168e3c5522d"),
		Out320: types.MustBytes40FromString[types.Digest320]("22d65d5661536cdc75c1fdf5c6de7b41b9f27325ebc61e8557177d705a0ec880151c3a32a00899b8"),
	},
	{
		Input:  "a",
		Out160: types.MustBytes20FromString[types.Digest160]("0bdc9d2d256b3ee9daae347be6f4dc835a467ffe"),
		Out256: types.MustBytes32FromString[types.Digest256]("f9333e45d857f5d90a91bab70a1eba0cfb1be4b0783c9acfcd883a9134692925"),
		Out320: types.MustBytes40FromString[types.Digest320]("ce78850638f92658a5a585097579926dda667a5716562cfcf6fbe77f63542f99b04705d6970dff5d"),
	},
	{
		Input:  "abc",
		Out160: types.MustBytes20FromString[types.Digest160]("8eb208f7e05d987a9b044a8e98c6b087f15a0bfc"),
		Out256: types.MustBytes32FromString[types.Digest256]("afbd6e228b9d8cbbcef5ca2d03e6dba10ac0bc7dcbe4680e1e42d2e975459b65"),
		Out320: types.MustBytes40FromString[types.Digest320]("de4c01b3054f8930a79d09ae738e92301e5a17085beffdc1b8d116713e74f82fa942d64cdbc4682d"),
	},
	{
		Input:  "message digest",
		Out160: types.MustBytes20FromString[types.Digest160]("5d0689ef49d2fae572b881b123a85ffa21595f36"),
		Out256: types.MustBytes32FromString[types.Digest256]("87e971759a1ce47a514d5c914c392c9018c7c46bc14465554afcdf54a5070c0e"),
		Out320: types.MustBytes40FromString[types.Digest320]("3a8e28502ed45d422f68844f9dd316e7b98533fa3f2a91d29f84d425c88d6b4eff727df66a7c0197"),
	},
	{
		Input:  "abcdefghijklmnopqrstuvwxyz",
		Out160: types.MustBytes20FromString[types.Digest160]("f71c27109c692c1b56bbdceb5b9d2865b3708dbc"),
		Out256: types.MustBytes32FromString[types.Digest256]("649d3034751ea216776bf9a18acc81bc7896118a5197968782dd1fd97d8d5133"),
		Out320: types.MustBytes40FromString[types.Digest320]("cabdb1810b92470a2093aa6bce05952c28348cf43ff60841975166bb40ed234004b8824463e6b009"),
	},
	{
		Input:  "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789",
		Out160: types.MustBytes20FromString[types.Digest160]("b0e20b6e3116640286ed3a87a5713079b21f5189"),
		Out256: types.MustBytes32FromString[types.Digest256]("5740a408ac16b720b84424ae931cbb1fe363d1d0bf4017f1a89f7ea6de77a0b8"),
		Out320: types.MustBytes40FromString[types.Digest320]("ed544940c86d67f250d232c30b7b3e5770e0c60c8cb9a4cafe3b11388af9920e1b99230b843c86a4"),
	},
	{
		Input:  "12345678901234567890123456789012345678901234567890123456789012345678901234567890",
		Out160: types.MustBytes20FromString[types.Digest160]("9b752e45573d4b39f4dbd3323cab82bf63326bfb"),
		Out256: types.MustBytes32FromString[types.Digest256]("06fdcc7a409548aaf91368c06a6275b553e3f099bf0ea4edfd6778df89a890dd"),
		Out320: types.MustBytes40FromString[types.Digest320]("557888af5f6d8ed62ab66945c6d2a0a47ecd5341e915eb8fea1d0524955f825dc717e4a008ab2d42"),
	},
	{
		Input:  "Hello world!",
		Out160: types.MustBytes20FromString[types.Digest160]("7f772647d88750add82d8e1a7a3e5c0902a346a3"),
		Out256: types.MustBytes32FromString[types.Digest256]("2700f1122c7bd5df165b0615efbbbc54f551aef2401738811a5aea19ccb9233a"),
		Out320: types.MustBytes40FromString[types.Digest320]("f1c1c231d301abcf2d7daae0269ff3e7bc68e623ad723aa068d316b056d26b7d1bb6f0cc0f28336d"),
	},
	{
		Input:  "The quick brown fox jumps over the lazy dog",
		Out160: types.MustBytes20FromString[types.Digest160]("37f332f68db77bd9d7edd4969571ad671cf9dd3b"),
		Out256: types.MustBytes32FromString[types.Digest256]("c3b0c2f764ac6d576a6c430fb61a6f2255b4fa833e094b1ba8c1e29b6353036f"),
		Out320: types.MustBytes40FromString[types.Digest320]("e7660e67549435c62141e51c9ab1dcc3b1ee9f65c0b3e561ae8f58c5dba3d21997781cd1cc6fbc34"),
	},
}

func TestSum(t *testing.T) {
	for _, v := range testVectors {
		t.Run(fmt.Sprintf("%.16q_%d", v.Input, len(v.Input)), func(t *testing.T) {
			data := []byte(v.Input)
			if result := types.Digest160(Sum160(data)); result != v.Out160 {
				t.Errorf("Sum160(...) = %x, want %x", result.Slice(), v.Out160.Slice())
			}
			if result := types.Digest256(Sum256(data)); result != v.Out256 {
				t.Errorf("Sum256(...) = %x, want %x", result.Slice(), v.Out256.Slice())
			}
			if result := types.Digest320(Sum320(data)); result != v.Out320 {
				t.Errorf("Sum320(...) = %x, want %x", result.Slice(), v.Out320.Slice())
			}
		})
	}
}

func TestMillionA(t *testing.T) {
	data := bytes.Repeat([]byte("a"), 1000000)

	want160 := types.MustBytes20FromString[types.Digest160]("52783243c1697bdbe16d37f97f68f08325dc1528")
	want256 := types.MustBytes32FromString[types.Digest256]("ac953744e10e31514c150d4d8d7b677342e33399788296e43ae4850ce4f97978")
	want320 := types.MustBytes40FromString[types.Digest320]("bdee37f4371e20646b8b0d862dda16292ae36f40965e8c8509e63d1dbddecc503e2b63eb9245bb66")

	if result := types.Digest160(Sum160(data)); result != want160 {
		t.Errorf("Sum160(...) = %x, want %x", result.Slice(), want160.Slice())
	}
	if result := types.Digest256(Sum256(data)); result != want256 {
		t.Errorf("Sum256(...) = %x, want %x", result.Slice(), want256.Slice())
	}
	if result := types.Digest320(Sum320(data)); result != want320 {
		t.Errorf("Sum320(...) = %x, want %x", result.Slice(), want320.Slice())
	}
}

// Streaming through any chunking must match the one-shot digest.
func TestWriteChunked(t *testing.T) {
	data := make([]byte, 1031)
	for i := range data {
		data[i] = byte(i*251 + 17)
	}
	oneShot := Sum160(data)

	for _, chunk := range []int{1, 3, 7, 63, 64, 65, 127, 128, 1031} {
		h := New160()
		for p := data; len(p) > 0; {
			n := min(chunk, len(p))
			_, _ = h.Write(p[:n])
			p = p[n:]
		}
		if !bytes.Equal(h.Sum(nil), oneShot[:]) {
			t.Errorf("chunk size %d: got %x, want %x", chunk, h.Sum(nil), oneShot)
		}
	}
}

func TestReset(t *testing.T) {
	h := New320()
	_, _ = h.Write([]byte("garbage that must not leak into the next digest"))
	h.Reset()
	_, _ = h.Write([]byte("abc"))

	want := Sum320([]byte("abc"))
	if !bytes.Equal(h.Sum(nil), want[:]) {
		t.Errorf("after Reset: got %x, want %x", h.Sum(nil), want)
	}
}

func TestSumKeepsState(t *testing.T) {
	h := New256()
	_, _ = h.Write([]byte("The quick brown fox "))

	mid := h.Sum(nil)
	if !bytes.Equal(mid, h.Sum(nil)) {
		t.Fatal("Sum is not repeatable")
	}

	_, _ = h.Write([]byte("jumps over the lazy dog"))
	want := Sum256([]byte("The quick brown fox jumps over the lazy dog"))
	if !bytes.Equal(h.Sum(nil), want[:]) {
		t.Errorf("after Sum and more writes: got %x, want %x", h.Sum(nil), want)
	}
}

// Cross-check the 160-bit variant against golang.org/x/crypto/ripemd160
// over every input length up to four blocks.
func TestAgainstXCrypto(t *testing.T) {
	data := make([]byte, 256)
	for i := range data {
		data[i] = byte(i*89 + 5)
	}

	for n := 0; n <= len(data); n++ {
		ref := xripemd160.New()
		_, _ = ref.Write(data[:n])

		got := Sum160(data[:n])
		if !bytes.Equal(got[:], ref.Sum(nil)) {
			t.Fatalf("length %d: got %x, want %x", n, got, ref.Sum(nil))
		}
	}
}

func BenchmarkSum(b *testing.B) {
	var input [8192]byte
	_, _ = rand.Read(input[:])

	b.Run("Ripemd160", func(b *testing.B) {
		b.ReportAllocs()
		b.SetBytes(int64(len(input)))
		for i := 0; i < b.N; i++ {
			Sum160(input[:])
		}
	})
	b.Run("Ripemd256", func(b *testing.B) {
		b.ReportAllocs()
		b.SetBytes(int64(len(input)))
		for i := 0; i < b.N; i++ {
			Sum256(input[:])
		}
	})
	b.Run("Ripemd320", func(b *testing.B) {
		b.ReportAllocs()
		b.SetBytes(int64(len(input)))
		for i := 0; i < b.N; i++ {
			Sum320(input[:])
		}
	})
}
