package u128

import (
	"encoding/binary"

	"github.com/dnswlt/randz"
)

func next64(s randz.Source) uint64 {
	b := s.Raw()
	return binary.LittleEndian.Uint64(b[:])
}

// Gen returns a full-width draw of an unsigned 128-bit value. A draw
// spans a single generator step, so only the low 8 bytes are filled
// and the high half is always zero. Bounded draws via Range use the
// entire width.
func Gen(s randz.Source) Uint {
	return Uint{Lo: next64(s)}
}

// GenInt is Gen reinterpreted as a signed value. With the high bytes
// zero the result is never negative.
func GenInt(s randz.Source) Int {
	return Gen(s).AsInt()
}

// full128 fills all 128 bits from two consecutive raw outputs, low
// word first.
func full128(s randz.Source) Uint {
	lo := next64(s)
	hi := next64(s)
	return Uint{Hi: hi, Lo: lo}
}

// Range returns a uniform value in [lower, upper). It panics if the
// range is empty.
func Range(s randz.Source, lower, upper Uint) Uint {
	if lower.Cmp(upper) >= 0 {
		panic("u128: Range: empty range")
	}
	return lower.Add(uniform(s, upper.Sub(lower)))
}

// RangeInt returns a uniform value in [lower, upper). The bounds may be
// negative or cross zero. It panics if the range is empty.
func RangeInt(s randz.Source, lower, upper Int) Int {
	if lower.Cmp(upper) >= 0 {
		panic("u128: RangeInt: empty range")
	}
	span := upper.Bits().Sub(lower.Bits())
	return lower.Bits().Add(uniform(s, span)).AsInt()
}

// uniform returns a debiased uniform draw in [0, n): multiply-shift
// rejection with a 256-bit product, mirroring what package randz does
// at the narrower widths. Each attempt consumes two raw outputs.
func uniform(s randz.Source, n Uint) Uint {
	hi, lo := full128(s).Mul(n)
	if lo.Cmp(n) < 0 {
		thresh := n.Neg().Mod(n)
		for lo.Cmp(thresh) < 0 {
			hi, lo = full128(s).Mul(n)
		}
	}
	return hi
}
