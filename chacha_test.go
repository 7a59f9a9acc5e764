package randz

import "testing"

func TestChaChaKnownAnswer(t *testing.T) {
	// ChaCha20 keystream for the all-zero key and nonce (RFC 8439).
	var c ChaCha
	c.Reseed(nil)
	want := [][RawLen]byte{
		{0x76, 0xb8, 0xe0, 0xad, 0xa0, 0xf1, 0x3d, 0x90},
		{0x40, 0x5d, 0x6a, 0xe5, 0x53, 0x86, 0xbd, 0x28},
	}
	for i, w := range want {
		if got := c.Raw(); got != w {
			t.Errorf("output %d = %x, want %x", i, got, w)
		}
	}
}

func TestChaChaZeroValue(t *testing.T) {
	// The zero value lazily keys itself like an empty reseed.
	var c ChaCha
	want := [RawLen]byte{0x76, 0xb8, 0xe0, 0xad, 0xa0, 0xf1, 0x3d, 0x90}
	if got := c.Raw(); got != want {
		t.Errorf("zero value first output = %x, want %x", got, want)
	}
}

func TestChaChaFromSeed(t *testing.T) {
	seed := []byte{0x2a}
	var c ChaCha
	c.Reseed(seed)
	want := c.Raw()
	if got := ChaChaFromSeed(seed); got != want {
		t.Errorf("ChaChaFromSeed = %x, want %x", got, want)
	}
	if want != [RawLen]byte{0x1f, 0x76, 0xe5, 0x26, 0x51, 0x0a, 0xe3, 0x6a} {
		t.Errorf("first output for key 0x2a = %x, want 1f76e526510ae36a", want)
	}
}

func TestChaChaReseedRestartsStream(t *testing.T) {
	seed := []byte{9, 9, 9}
	var c ChaCha
	c.Reseed(seed)
	first := c.Raw()
	c.Raw()
	c.Raw()
	c.Reseed(seed)
	if got := c.Raw(); got != first {
		t.Errorf("after Reseed, first output = %x, want %x", got, first)
	}
}

func TestChaChaSeedTruncation(t *testing.T) {
	// Seed bytes beyond the 32-byte key are ignored.
	long := make([]byte, 40)
	for i := range long {
		long[i] = byte(i + 1)
	}
	var a, b ChaCha
	a.Reseed(long)
	b.Reseed(long[:32])
	for i := 0; i < 10; i++ {
		if va, vb := a.Raw(), b.Raw(); va != vb {
			t.Fatalf("output %d: %x != %x for truncated seed", i, va, vb)
		}
	}
}

func BenchmarkChaCha(b *testing.B) {
	var c ChaCha
	for i := 0; i < b.N; i++ {
		c.Raw()
	}
}
