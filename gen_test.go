package randz

import (
	"testing"
	"unicode"
)

func TestUintTruncation(t *testing.T) {
	// The typed value is the leading bytes of the raw output, which
	// for little-endian materialization are the low bits.
	const v = 0x1122334455667788
	if got := Uint[uint8](&scriptSource{vals: []uint64{v}}); got != 0x88 {
		t.Errorf("Uint[uint8] = %#x, want 0x88", got)
	}
	if got := Uint[uint16](&scriptSource{vals: []uint64{v}}); got != 0x7788 {
		t.Errorf("Uint[uint16] = %#x, want 0x7788", got)
	}
	if got := Uint[uint32](&scriptSource{vals: []uint64{v}}); got != 0x55667788 {
		t.Errorf("Uint[uint32] = %#x, want 0x55667788", got)
	}
	if got := Uint[uint64](&scriptSource{vals: []uint64{v}}); got != v {
		t.Errorf("Uint[uint64] = %#x, want %#x", got, uint64(v))
	}
}

func TestIntReinterpretation(t *testing.T) {
	all := ^uint64(0)
	if got := Int[int8](&scriptSource{vals: []uint64{all}}); got != -1 {
		t.Errorf("Int[int8] = %d, want -1", got)
	}
	if got := Int[int64](&scriptSource{vals: []uint64{all}}); got != -1 {
		t.Errorf("Int[int64] = %d, want -1", got)
	}
	if got := Int[int8](&scriptSource{vals: []uint64{0x80}}); got != -128 {
		t.Errorf("Int[int8] = %d, want -128", got)
	}
	if got := Int[int16](&scriptSource{vals: []uint64{0x7fff}}); got != 32767 {
		t.Errorf("Int[int16] = %d, want 32767", got)
	}
}

func TestUint8Coverage(t *testing.T) {
	// Full-width 8-bit draws must reach every value.
	var w WyRand
	w.Reseed([]byte{7})
	var seen [256]bool
	for i := 0; i < 100_000; i++ {
		seen[Uint[uint8](&w)] = true
	}
	for v, ok := range seen {
		if !ok {
			t.Errorf("value %#02x never drawn", v)
		}
	}
}

func TestRuneValid(t *testing.T) {
	var w WyRand
	w.Reseed([]byte{1})
	for i := 0; i < 200; i++ {
		r := Rune(&w)
		if r < 0 || r > unicode.MaxRune || (r >= 0xd800 && r <= 0xdfff) {
			t.Fatalf("draw %d: invalid scalar %#x", i, r)
		}
	}
}

func TestRuneRejectsInvalid(t *testing.T) {
	// A surrogate and a beyond-max value are rejected before a valid
	// scalar is accepted; each attempt costs one raw output.
	src := &scriptSource{vals: []uint64{0xd800, 0x110000, 'A'}}
	if got := Rune(src); got != 'A' {
		t.Errorf("Rune = %q, want %q", got, 'A')
	}
	if src.i != 3 {
		t.Errorf("consumed %d raw outputs, want 3", src.i)
	}
}

func TestRuneIgnoresHighBytes(t *testing.T) {
	// Only the low 32 bits of an output take part in the draw.
	src := &scriptSource{vals: []uint64{0xffffffff00000041}}
	if got := Rune(src); got != 'A' {
		t.Errorf("Rune = %q, want %q", got, 'A')
	}
}

func BenchmarkUint64(b *testing.B) {
	var w WyRand
	for i := 0; i < b.N; i++ {
		Uint[uint64](&w)
	}
}

func BenchmarkRune(b *testing.B) {
	var w WyRand
	for i := 0; i < b.N; i++ {
		Rune(&w)
	}
}
