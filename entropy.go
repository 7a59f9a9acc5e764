package randz

import crand "crypto/rand"

// entropy returns n bytes from the operating system's entropy source.
// It panics if the read fails; seeding stays infallible for callers.
func entropy(n int) []byte {
	b := make([]byte, n)
	if _, err := crand.Read(b); err != nil {
		panic("randz: reading system entropy: " + err.Error())
	}
	return b
}
