package randz

import "math/bits"

const (
	wyStep = 0xa0761d6478bd642f
	wyMix  = 0xe7037ed1a0b428db
)

// WyRand is a wyrand generator: 64 bits of state advanced by a constant
// step, with each output folded out of a 128-bit product of the state
// and a xored copy of itself. It is the fastest source in this package
// and statistically solid for its size, but its state is trivially
// recoverable from a single output. The zero value is a valid generator
// with state 0.
type WyRand struct {
	state uint64
}

// NewWyRand returns a WyRand generator seeded from the operating
// system's entropy source.
func NewWyRand() *WyRand {
	w := &WyRand{}
	w.Reseed(entropy(8))
	return w
}

func wymix(s uint64) uint64 {
	hi, lo := bits.Mul64(s, s^wyMix)
	return hi ^ lo
}

// Raw advances the generator and returns its next 8 output bytes.
func (w *WyRand) Raw() [RawLen]byte {
	w.state += wyStep
	return store64(wymix(w.state))
}

// Reseed replaces the state with the first 8 seed bytes, zero-extended,
// interpreted little-endian. The seed becomes the state verbatim; no
// mixing is applied.
func (w *WyRand) Reseed(seed []byte) {
	w.state = seed64(seed)
}

// WyRandFromSeed returns the first output a fresh WyRand generator
// reseeded with seed would produce.
func WyRandFromSeed(seed []byte) [RawLen]byte {
	return store64(wymix(seed64(seed) + wyStep))
}
