// Package colour derives deterministic, accessibility-aware avatar colours
// from display names.
package colour

import "fmt"

// WCAG 2.1 contrast thresholds for normal text.
const (
	// RatioAA is the minimum contrast ratio for WCAG AA compliance.
	RatioAA = 4.5
	// RatioAAA is the minimum contrast ratio for WCAG AAA compliance.
	RatioAAA = 7.0
	// RatioLargeText is the minimum ratio at which text stays readable.
	RatioLargeText = 3.0
)

// WCAGLevel classifies a contrast ratio against the WCAG 2.1 tiers.
type WCAGLevel string

const (
	// LevelAAA passes AAA (ratio >= 7).
	LevelAAA WCAGLevel = "AAA"
	// LevelAA passes AA (ratio >= 4.5).
	LevelAA WCAGLevel = "AA"
	// LevelAAOnly passes AA but misses a requested AAA target.
	LevelAAOnly WCAGLevel = "AA (AAA not met)"
	// LevelFailReadable misses AA but stays above the large-text
	// threshold (3 <= ratio < 4.5).
	LevelFailReadable WCAGLevel = "fail (readable)"
	// LevelFail falls below 3:1.
	LevelFail WCAGLevel = "fail"
)

// String returns the level label used in exports.
func (l WCAGLevel) String() string { return string(l) }

// Config holds the immutable per-call avatar generation settings.
type Config struct {
	SaturationPercent int
	LightnessPercent  int
	Basis             Basis
	Palette           PaletteMode
	MinContrastRatio  float64
	ForceAAA          bool
}

// DefaultConfig returns the standard avatar generation settings: a
// moderately saturated mid-lightness colour hashed from the full name,
// spread over the full hue spectrum, targeting WCAG AA.
func DefaultConfig() Config {
	return Config{
		SaturationPercent: 65,
		LightnessPercent:  55,
		Basis:             BasisFullName,
		Palette:           PaletteFullSpectrum,
		MinContrastRatio:  RatioAA,
		ForceAAA:          false,
	}
}

// Validate checks that the configuration values are within range.
func (c Config) Validate() error {
	if c.SaturationPercent < 0 || c.SaturationPercent > 100 {
		return fmt.Errorf("saturation must be 0-100, got %d", c.SaturationPercent)
	}
	if c.LightnessPercent < 0 || c.LightnessPercent > 100 {
		return fmt.Errorf("lightness must be 0-100, got %d", c.LightnessPercent)
	}
	if c.Basis != BasisInitials && c.Basis != BasisFullName {
		return fmt.Errorf("unknown colour basis %q", c.Basis)
	}
	if c.Palette != PaletteFullSpectrum && c.Palette != PaletteLimited12 {
		return fmt.Errorf("unknown palette mode %q", c.Palette)
	}
	if c.MinContrastRatio <= 0 {
		return fmt.Errorf("minimum contrast ratio must be positive, got %g", c.MinContrastRatio)
	}
	return nil
}

// AvatarResult is the fully resolved avatar colouring for one name. Every
// field is computed from the final colours; results are immutable values.
type AvatarResult struct {
	SourceName    string
	Initials      string
	Hue           int
	Saturation    int
	Lightness     int
	RGB           RGB
	Hex           string
	TextColour    RGB
	ContrastRatio float64
	Level         WCAGLevel
}

// HSLString returns the result's background in the "hsl(H, S%, L%)" form
// used verbatim in exports and tooltips.
func (r AvatarResult) HSLString() string {
	return HSLString(r.Hue, r.Saturation, r.Lightness)
}

// Resolve derives the avatar colouring for a name. The pipeline is pure:
// identical name and config always produce an identical result, so
// concurrent calls need no synchronisation.
func Resolve(name string, cfg Config) AvatarResult {
	initials := Initials(name)
	hue := HueFor(name, cfg.Basis, cfg.Palette)

	lightness := cfg.LightnessPercent
	if cfg.ForceAAA {
		lightness = AdjustLightness(hue, cfg.SaturationPercent, lightness, RatioAAA)
	}

	bg := HSLToRGB(hue, cfg.SaturationPercent, lightness)
	text := BestTextColour(bg)
	// Contrast is always measured on the final colours, never on the
	// pre-adjustment ones.
	ratio := ContrastBetween(text, bg)

	return AvatarResult{
		SourceName:    name,
		Initials:      initials,
		Hue:           hue,
		Saturation:    cfg.SaturationPercent,
		Lightness:     lightness,
		RGB:           bg,
		Hex:           bg.Hex(),
		TextColour:    text,
		ContrastRatio: ratio,
		Level:         classify(ratio, cfg.MinContrastRatio),
	}
}

// ResolveAll resolves a batch of names, preserving input order so callers
// can correlate results positionally.
func ResolveAll(names []string, cfg Config) []AvatarResult {
	results := make([]AvatarResult, len(names))
	for i, name := range names {
		results[i] = Resolve(name, cfg)
	}
	return results
}

// classify maps a contrast ratio to its WCAG tier. When the nominal target
// is AAA, an AA-only pass is labelled as such rather than as a plain pass.
func classify(ratio, nominalTarget float64) WCAGLevel {
	switch {
	case ratio >= RatioAAA:
		return LevelAAA
	case ratio >= RatioAA:
		if nominalTarget >= RatioAAA {
			return LevelAAOnly
		}
		return LevelAA
	case ratio >= RatioLargeText:
		return LevelFailReadable
	default:
		return LevelFail
	}
}
