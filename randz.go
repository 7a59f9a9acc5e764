// Package randz implements small deterministic pseudo-random number
// generators and typed, debiased value generation on top of them.
//
// The package has two layers. A Source produces raw 8-byte outputs from
// explicitly seedable state; WyRand, Pcg64 and ChaCha are the provided
// implementations. The typed layer (Uint, Int, Rune, UintRange,
// IntRange) turns raw outputs into integer values of any standard
// width, with bounded draws debiased by multiply-shift rejection.
// 128-bit values live in the u128 subpackage.
//
// None of the generators are suitable for cryptographic use. Sources
// are plain values owned by their caller: nothing in this package is
// safe for concurrent use of a single Source without external locking.
package randz

import "encoding/binary"

// RawLen is the size of a single raw generator output.
const RawLen = 8

// A Source is a deterministic generator of raw pseudo-random bytes.
//
// Raw advances the internal state exactly once and returns the next
// output. Reseed replaces the internal state with the given seed
// material; implementations use only as many leading bytes as fit
// their state and zero-extend short seeds, so every seed length is
// valid, including empty. Neither operation can fail.
type Source interface {
	Raw() [RawLen]byte
	Reseed(seed []byte)
}

// load64 interprets a raw output as an unsigned 64-bit value.
func load64(b [RawLen]byte) uint64 {
	return binary.LittleEndian.Uint64(b[:])
}

// store64 materializes v as a raw output, little-endian.
func store64(v uint64) (b [RawLen]byte) {
	binary.LittleEndian.PutUint64(b[:], v)
	return b
}

// seed64 reads up to 8 leading seed bytes, zero-extended.
func seed64(seed []byte) uint64 {
	var b [8]byte
	copy(b[:], seed)
	return binary.LittleEndian.Uint64(b[:])
}
