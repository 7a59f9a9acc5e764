// Package u128 provides 128-bit unsigned and signed integers with just
// enough arithmetic to support uniform random draws at that width, and
// the draw operations themselves on top of a randz.Source.
package u128

import (
	"fmt"
	"math/bits"
)

// Uint is an unsigned 128-bit integer.
type Uint struct {
	Hi, Lo uint64
}

// Int is a signed 128-bit integer in two's complement.
type Int struct {
	Hi int64
	Lo uint64
}

// From64 returns v zero-extended to 128 bits.
func From64(v uint64) Uint {
	return Uint{Lo: v}
}

// Bits reinterprets x as its unsigned bit pattern.
func (x Int) Bits() Uint {
	return Uint{uint64(x.Hi), x.Lo}
}

// AsInt reinterprets x as a two's-complement signed value.
func (x Uint) AsInt() Int {
	return Int{int64(x.Hi), x.Lo}
}

// IsZero reports whether x is zero.
func (x Uint) IsZero() bool {
	return x.Hi == 0 && x.Lo == 0
}

// Add returns x + y mod 2^128.
func (x Uint) Add(y Uint) Uint {
	lo, carry := bits.Add64(x.Lo, y.Lo, 0)
	hi, _ := bits.Add64(x.Hi, y.Hi, carry)
	return Uint{hi, lo}
}

// Sub returns x - y mod 2^128.
func (x Uint) Sub(y Uint) Uint {
	lo, borrow := bits.Sub64(x.Lo, y.Lo, 0)
	hi, _ := bits.Sub64(x.Hi, y.Hi, borrow)
	return Uint{hi, lo}
}

// Neg returns -x mod 2^128.
func (x Uint) Neg() Uint {
	return Uint{}.Sub(x)
}

// Cmp returns -1, 0 or 1 depending on whether x is less than, equal to,
// or greater than y.
func (x Uint) Cmp(y Uint) int {
	switch {
	case x.Hi != y.Hi:
		if x.Hi < y.Hi {
			return -1
		}
		return 1
	case x.Lo != y.Lo:
		if x.Lo < y.Lo {
			return -1
		}
		return 1
	}
	return 0
}

// Cmp returns -1, 0 or 1 depending on whether x is less than, equal to,
// or greater than y.
func (x Int) Cmp(y Int) int {
	switch {
	case x.Hi != y.Hi:
		if x.Hi < y.Hi {
			return -1
		}
		return 1
	case x.Lo != y.Lo:
		if x.Lo < y.Lo {
			return -1
		}
		return 1
	}
	return 0
}

// Lsh returns x << n. Shifts of 128 or more return zero.
func (x Uint) Lsh(n uint) Uint {
	if n >= 64 {
		return Uint{x.Lo << (n - 64), 0}
	}
	return Uint{x.Hi<<n | x.Lo>>(64-n), x.Lo << n}
}

// Rsh returns x >> n. Shifts of 128 or more return zero.
func (x Uint) Rsh(n uint) Uint {
	if n >= 64 {
		return Uint{0, x.Hi >> (n - 64)}
	}
	return Uint{x.Hi >> n, x.Lo>>n | x.Hi<<(64-n)}
}

// Len reports the minimum number of bits required to represent x; the
// length of zero is 0.
func (x Uint) Len() int {
	if x.Hi != 0 {
		return 64 + bits.Len64(x.Hi)
	}
	return bits.Len64(x.Lo)
}

// Mul returns the full 256-bit product of x and y as a (high, low)
// pair of 128-bit halves.
func (x Uint) Mul(y Uint) (hi, lo Uint) {
	// Schoolbook over 64-bit limbs: x.Lo*y.Lo covers bits 0..127, the
	// cross terms cover 64..191, x.Hi*y.Hi covers 128..255. The top
	// limb cannot overflow: the whole product is below 2^256.
	h00, l00 := bits.Mul64(x.Lo, y.Lo)
	h01, l01 := bits.Mul64(x.Lo, y.Hi)
	h10, l10 := bits.Mul64(x.Hi, y.Lo)
	h11, l11 := bits.Mul64(x.Hi, y.Hi)

	loHi, c1 := bits.Add64(h00, l01, 0)
	loHi, c2 := bits.Add64(loHi, l10, 0)
	hiLo, c3 := bits.Add64(h01, h10, c1)
	hiLo, c4 := bits.Add64(hiLo, l11, c2)
	hiHi := h11 + c3 + c4

	return Uint{hiHi, hiLo}, Uint{loHi, l00}
}

// Mod returns x mod y. It panics if y is zero.
func (x Uint) Mod(y Uint) Uint {
	if y.IsZero() {
		panic("u128: division by zero")
	}
	if y.Hi == 0 {
		// The divisor fits in one limb; two narrowing division steps.
		if x.Hi < y.Lo {
			_, r := bits.Div64(x.Hi, x.Lo, y.Lo)
			return Uint{0, r}
		}
		_, r := bits.Div64(x.Hi%y.Lo, x.Lo, y.Lo)
		return Uint{0, r}
	}
	if x.Cmp(y) < 0 {
		return x
	}
	// Restoring division. y.Hi != 0 bounds the shift at 63.
	n := uint(x.Len() - y.Len())
	v := y.Lsh(n)
	r := x
	for i := uint(0); i <= n; i++ {
		if r.Cmp(v) >= 0 {
			r = r.Sub(v)
		}
		v = v.Rsh(1)
	}
	return r
}

// String formats x as 0x-prefixed hex.
func (x Uint) String() string {
	return fmt.Sprintf("0x%016x%016x", x.Hi, x.Lo)
}

// String formats the raw bit pattern of x as 0x-prefixed hex.
func (x Int) String() string {
	return fmt.Sprintf("0x%016x%016x", uint64(x.Hi), x.Lo)
}
