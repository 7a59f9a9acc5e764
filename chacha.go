package randz

import "golang.org/x/crypto/chacha20"

// ChaCha is a generator backed by the ChaCha20 keystream: a 32-byte key
// and a block counter, producing 8 bytes of keystream per pull. It is
// much slower than WyRand or Pcg64 and earns its keep where their small
// states are the limit, not where security is: like every source in
// this package, it comes with no cryptographic guarantees. The zero
// value behaves like a generator reseeded with an empty seed.
type ChaCha struct {
	cipher *chacha20.Cipher
}

// NewChaCha returns a ChaCha generator keyed from the operating
// system's entropy source.
func NewChaCha() *ChaCha {
	c := &ChaCha{}
	c.Reseed(entropy(chacha20.KeySize))
	return c
}

// Raw advances the keystream and returns its next 8 bytes.
func (c *ChaCha) Raw() [RawLen]byte {
	if c.cipher == nil {
		c.Reseed(nil)
	}
	var b [RawLen]byte
	c.cipher.XORKeyStream(b[:], b[:])
	return b
}

// Reseed replaces the key with the first 32 seed bytes, zero-extended,
// and restarts the keystream from its beginning.
func (c *ChaCha) Reseed(seed []byte) {
	var key [chacha20.KeySize]byte
	copy(key[:], seed)
	nonce := make([]byte, chacha20.NonceSize)
	cipher, err := chacha20.NewUnauthenticatedCipher(key[:], nonce)
	if err != nil {
		// Unreachable: key and nonce sizes are fixed above.
		panic("randz: chacha20: " + err.Error())
	}
	c.cipher = cipher
}

// ChaChaFromSeed returns the first output a fresh ChaCha generator
// reseeded with seed would produce.
func ChaChaFromSeed(seed []byte) [RawLen]byte {
	var c ChaCha
	c.Reseed(seed)
	return c.Raw()
}
