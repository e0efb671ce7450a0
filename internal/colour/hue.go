// Package colour derives deterministic, accessibility-aware avatar colours
// from display names.
package colour

import "strings"

// Basis selects which part of a name seeds the colour hash.
type Basis string

const (
	// BasisInitials hashes the extracted initials, so "Ann Smith" and
	// "Arno Schmidt" share a colour.
	BasisInitials Basis = "initials"
	// BasisFullName hashes the whole lowercased name.
	BasisFullName Basis = "name"
)

// PaletteMode controls how hash values spread over the colour wheel.
type PaletteMode string

const (
	// PaletteFullSpectrum maps the hash across all 360 hue degrees.
	PaletteFullSpectrum PaletteMode = "full"
	// PaletteLimited12 quantises to twelve buckets 30 degrees apart,
	// trading uniqueness for guaranteed visual separation.
	PaletteLimited12 PaletteMode = "limited12"
)

const (
	limitedBuckets    = 12
	limitedBucketSize = 30
)

// HueFor maps a name to a hue in [0, 360).
func HueFor(name string, basis Basis, palette PaletteMode) int {
	var source string
	if basis == BasisFullName {
		source = normaliseName(name)
	} else {
		source = Initials(name)
	}

	h := HashName(source)
	if palette == PaletteLimited12 {
		return int(h%limitedBuckets) * limitedBucketSize
	}
	return int(h % 360)
}

// normaliseName canonicalises a name for hashing so that leading and
// trailing whitespace or letter case never shift the colour.
func normaliseName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
