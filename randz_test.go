package randz

var (
	_ Source = (*WyRand)(nil)
	_ Source = (*Pcg64)(nil)
	_ Source = (*ChaCha)(nil)
	_ Source = (*CountingSource)(nil)
)

// scriptSource replays a fixed sequence of 64-bit outputs and records
// how many were consumed. Tests use it to pin down exact draw traces,
// including rejection paths.
type scriptSource struct {
	vals []uint64
	i    int
}

func (s *scriptSource) Raw() [RawLen]byte {
	v := s.vals[s.i]
	s.i++
	return store64(v)
}

func (s *scriptSource) Reseed(seed []byte) {
	s.i = 0
}
