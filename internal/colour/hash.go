// Package colour derives deterministic, accessibility-aware avatar colours
// from display names.
package colour

import "unicode/utf16"

// Mixing constants for the two accumulator halves. These are fixed so that
// the same name yields the same colour on every platform and every run;
// never use a runtime-seeded map hash here.
const (
	hashSeedLo = 0xdeadbeef
	hashSeedHi = 0x41c6ce57

	hashMulLo = 2654435761
	hashMulHi = 1597334677

	hashFinalA = 2246822507
	hashFinalB = 3266489909
)

// HashName hashes text into a stable integer with 53 bits of entropy.
// Two 32-bit accumulators fold every UTF-16 code unit of the input via
// xor-then-multiply, then an avalanche finalisation mixes the halves into
// each other. All arithmetic is wrapping 32-bit, so identical code-point
// sequences hash identically everywhere.
//
// The empty string is a valid input and hashes deterministically.
func HashName(text string) uint64 {
	var h1 uint32 = hashSeedLo
	var h2 uint32 = hashSeedHi

	for _, unit := range utf16.Encode([]rune(text)) {
		h1 = (h1 ^ uint32(unit)) * hashMulLo
		h2 = (h2 ^ uint32(unit)) * hashMulHi
	}

	h1 = (h1^(h1>>16))*hashFinalA ^ (h2^(h2>>13))*hashFinalB
	h2 = (h2^(h2>>16))*hashFinalA ^ (h1^(h1>>13))*hashFinalB

	// Low 32 bits plus 21 masked high bits: 53 bits total.
	return uint64(h2&0x1fffff)<<32 | uint64(h1)
}
