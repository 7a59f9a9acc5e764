package randz

import "unicode/utf8"

// Unsigned holds the unsigned widths the typed layer supports directly.
// 128-bit values live in the u128 subpackage.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Signed is the signed counterpart of Unsigned.
type Signed interface {
	~int8 | ~int16 | ~int32 | ~int64
}

type integer interface {
	Unsigned | Signed
}

// Uint returns a full-width uniform value of type U: the leading bytes
// of one raw output, little-endian. Equivalently, the low bits of the
// 64-bit output.
func Uint[U Unsigned](s Source) U {
	return U(load64(s.Raw()))
}

// Int returns a full-width uniform value of type S, reinterpreting the
// same leading bytes as two's complement.
func Int[S Signed](s Source) S {
	return S(load64(s.Raw()))
}

// Rune returns a uniformly distributed Unicode scalar value. Each
// attempt draws a full 32-bit value and rejects surrogates and values
// beyond U+10FFFF, so a single call typically consumes several
// thousand raw outputs.
func Rune(s Source) rune {
	for {
		if r := rune(uint32(load64(s.Raw()))); utf8.ValidRune(r) {
			return r
		}
	}
}
