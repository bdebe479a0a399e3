// Package types holds fixed-size digest values with hex and JSON codecs,
// one per output size produced by this module.
package types

import (
	"errors"

	fasthex "github.com/tmthrgd/go-hex"
)

// Digest sizes in bytes.
const (
	Size160 = 20
	Size256 = 32
	Size320 = 40
	Size512 = 64
)

//nolint:recvcheck
type Digest160 [Size160]byte

//nolint:recvcheck
type Digest256 [Size256]byte

//nolint:recvcheck
type Digest320 [Size320]byte

//nolint:recvcheck
type Digest512 [Size512]byte

func MustBytes20FromString[T ~[Size160]byte](s string) T {
	if h, err := Bytes20FromString[T](s); err != nil {
		panic(err)
	} else {
		return h
	}
}

func Bytes20FromString[T ~[Size160]byte](s string) (T, error) {
	var h T
	if buf, err := fasthex.DecodeString(s); err != nil {
		return h, err
	} else {
		if len(buf) != Size160 {
			return h, errors.New("wrong size")
		}
		copy(h[:], buf)
		return h, nil
	}
}

func MustBytes32FromString[T ~[Size256]byte](s string) T {
	if h, err := Bytes32FromString[T](s); err != nil {
		panic(err)
	} else {
		return h
	}
}

func Bytes32FromString[T ~[Size256]byte](s string) (T, error) {
	var h T
	if buf, err := fasthex.DecodeString(s); err != nil {
		return h, err
	} else {
		if len(buf) != Size256 {
			return h, errors.New("wrong size")
		}
		copy(h[:], buf)
		return h, nil
	}
}

func MustBytes40FromString[T ~[Size320]byte](s string) T {
	if h, err := Bytes40FromString[T](s); err != nil {
		panic(err)
	} else {
		return h
	}
}

func Bytes40FromString[T ~[Size320]byte](s string) (T, error) {
	var h T
	if buf, err := fasthex.DecodeString(s); err != nil {
		return h, err
	} else {
		if len(buf) != Size320 {
			return h, errors.New("wrong size")
		}
		copy(h[:], buf)
		return h, nil
	}
}

func MustBytes64FromString[T ~[Size512]byte](s string) T {
	if h, err := Bytes64FromString[T](s); err != nil {
		panic(err)
	} else {
		return h
	}
}

func Bytes64FromString[T ~[Size512]byte](s string) (T, error) {
	var h T
	if buf, err := fasthex.DecodeString(s); err != nil {
		return h, err
	} else {
		if len(buf) != Size512 {
			return h, errors.New("wrong size")
		}
		copy(h[:], buf)
		return h, nil
	}
}

func marshalHexJSON(b []byte) ([]byte, error) {
	buf := make([]byte, len(b)*2+2)
	buf[0] = '"'
	buf[len(buf)-1] = '"'
	fasthex.Encode(buf[1:], b)
	return buf, nil
}

func unmarshalHexJSON(dst, buf []byte) error {
	if len(buf) == 0 || len(buf) == 2 {
		return nil
	}
	if len(buf) != len(dst)*2+2 {
		return errors.New("wrong digest size")
	}
	if _, err := fasthex.Decode(dst, buf[1:len(buf)-1]); err != nil {
		return err
	}
	return nil
}

func (h Digest160) MarshalJSON() ([]byte, error) { return marshalHexJSON(h[:]) }

func (h *Digest160) UnmarshalJSON(b []byte) error { return unmarshalHexJSON(h[:], b) }

func (h Digest160) String() string { return fasthex.EncodeToString(h[:]) }

func (h Digest160) Slice() []byte { return h[:] }

func (h Digest256) MarshalJSON() ([]byte, error) { return marshalHexJSON(h[:]) }

func (h *Digest256) UnmarshalJSON(b []byte) error { return unmarshalHexJSON(h[:], b) }

func (h Digest256) String() string { return fasthex.EncodeToString(h[:]) }

func (h Digest256) Slice() []byte { return h[:] }

func (h Digest320) MarshalJSON() ([]byte, error) { return marshalHexJSON(h[:]) }

func (h *Digest320) UnmarshalJSON(b []byte) error { return unmarshalHexJSON(h[:], b) }

func (h Digest320) String() string { return fasthex.EncodeToString(h[:]) }

func (h Digest320) Slice() []byte { return h[:] }

func (h Digest512) MarshalJSON() ([]byte, error) { return marshalHexJSON(h[:]) }

func (h *Digest512) UnmarshalJSON(b []byte) error { return unmarshalHexJSON(h[:], b) }

func (h Digest512) String() string { return fasthex.EncodeToString(h[:]) }

func (h Digest512) Slice() []byte { return h[:] }
