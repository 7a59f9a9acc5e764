package randz

import (
	"encoding/binary"
	"math/bits"
)

// PCG XSL RR 128/64 multiplier and increment, split into 64-bit limbs.
// These are the default constants from the reference implementation at
// pcg-random.org.
const (
	pcgMulHi = 2549297995355413924
	pcgMulLo = 4865540595714422341
	pcgIncHi = 6364136223846793005
	pcgIncLo = 1442695040888963407
)

// Pcg64 is a permuted congruential generator (PCG XSL RR 128/64):
// 128 bits of state advanced by a linear congruential step, with 64-bit
// outputs formed by xor-folding the state halves and rotating by the
// state's top bits. Slower than WyRand, but with a 2^128 period and
// well-behaved low output bits. The zero value is a valid generator
// with state 0.
type Pcg64 struct {
	lo, hi uint64
}

// NewPcg64 returns a Pcg64 generator seeded from the operating system's
// entropy source.
func NewPcg64() *Pcg64 {
	p := &Pcg64{}
	p.Reseed(entropy(16))
	return p
}

func (p *Pcg64) next() uint64 {
	// state = state*mul + inc over two 64-bit limbs.
	hi, lo := bits.Mul64(p.lo, pcgMulLo)
	hi += p.hi*pcgMulLo + p.lo*pcgMulHi
	var carry uint64
	lo, carry = bits.Add64(lo, pcgIncLo, 0)
	hi, _ = bits.Add64(hi, pcgIncHi, carry)
	p.lo, p.hi = lo, hi
	return bits.RotateLeft64(hi^lo, -int(hi>>58))
}

// Raw advances the generator and returns its next 8 output bytes.
func (p *Pcg64) Raw() [RawLen]byte {
	return store64(p.next())
}

// Reseed replaces the 128-bit state with the first 16 seed bytes,
// zero-extended, interpreted little-endian with the low word first.
func (p *Pcg64) Reseed(seed []byte) {
	var b [16]byte
	copy(b[:], seed)
	p.lo = binary.LittleEndian.Uint64(b[0:8])
	p.hi = binary.LittleEndian.Uint64(b[8:16])
}

// Pcg64FromSeed returns the first output a fresh Pcg64 generator
// reseeded with seed would produce.
func Pcg64FromSeed(seed []byte) [RawLen]byte {
	var p Pcg64
	p.Reseed(seed)
	return p.Raw()
}
