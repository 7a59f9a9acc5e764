package randz

import "math/bits"

// UintRange returns a uniform value in [lower, upper). It panics if the
// range is empty.
func UintRange[U Unsigned](s Source, lower, upper U) U {
	if lower >= upper {
		panic("randz: UintRange: empty range")
	}
	return lower + U(uniform(s, uint64(upper-lower), width[U]()))
}

// IntRange returns a uniform value in [lower, upper). The bounds may be
// negative or cross zero. It panics if the range is empty.
func IntRange[S Signed](s Source, lower, upper S) S {
	if lower >= upper {
		panic("randz: IntRange: empty range")
	}
	w := width[S]()
	mask := ^uint64(0) >> (64 - w)
	// Two's-complement span; the sign extensions cancel under the mask.
	span := (uint64(upper) - uint64(lower)) & mask
	return S(uint64(lower) + uniform(s, span, w))
}

// uniform returns a debiased uniform draw in [0, n) for a value width
// of w bits, w one of 8, 16, 32 or 64, and 0 < n < 2^w. Each attempt
// draws one full-width value x and forms the double-width product x*n:
// the product's high w bits are the candidate, its low w bits decide
// rejection against the bias threshold (2^w - n) mod n.
func uniform(s Source, n uint64, w int) uint64 {
	if w == 64 {
		return uniform64(s, n)
	}
	mask := ^uint64(0) >> (64 - w)
	prod := (load64(s.Raw()) & mask) * n
	if low := prod & mask; low < n {
		thresh := (mask + 1 - n) % n
		for low < thresh {
			prod = (load64(s.Raw()) & mask) * n
			low = prod & mask
		}
	}
	return prod >> w
}

// uniform64 is uniform for w = 64, where the double-width product needs
// bits.Mul64.
func uniform64(s Source, n uint64) uint64 {
	hi, lo := bits.Mul64(load64(s.Raw()), n)
	if lo < n {
		thresh := -n % n
		for lo < thresh {
			hi, lo = bits.Mul64(load64(s.Raw()), n)
		}
	}
	return hi
}

// width reports the bit width of T. Left shifts drop bits beyond T's
// width, so the probe stops after exactly that many steps; unlike the
// usual ^T(0) trick this works for signed types too.
func width[T integer]() int {
	w := 0
	for v := T(1); v != 0; v <<= 1 {
		w++
	}
	return w
}
