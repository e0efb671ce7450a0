// Package colour derives deterministic, accessibility-aware avatar colours
// from display names.
package colour

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidColourFormat is returned when a hex colour string is not
// exactly "#" followed by six hex digits.
var ErrInvalidColourFormat = errors.New("invalid colour format")

// RGB represents a colour in 8-bit RGB format.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Well-known text colours. Avatar text is always pure white or pure black,
// whichever contrasts better with the background.
var (
	White = RGB{R: 255, G: 255, B: 255}
	Black = RGB{R: 0, G: 0, B: 0}
)

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as a lowercase hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// ParseHex decodes a "#rrggbb" hex colour string. Anything other than "#"
// followed by exactly six hex digits fails with ErrInvalidColourFormat.
func ParseHex(s string) (RGB, error) {
	if len(s) != 7 || s[0] != '#' {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColourFormat, s)
	}
	var channels [3]uint8
	for i := 0; i < 3; i++ {
		hi, okHi := hexDigit(s[1+2*i])
		lo, okLo := hexDigit(s[2+2*i])
		if !okHi || !okLo {
			return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColourFormat, s)
		}
		channels[i] = hi<<4 | lo
	}
	return RGB{R: channels[0], G: channels[1], B: channels[2]}, nil
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// HSLToRGB converts HSL to RGB colour space using the chroma/hue-segment
// formula. h is hue in degrees [0, 360), s and l are percentages [0, 100].
// Channels are rounded to nearest and clamped to [0, 255].
func HSLToRGB(h, s, l int) RGB {
	sf := float64(s) / 100.0
	lf := float64(l) / 100.0

	c := (1 - math.Abs(2*lf-1)) * sf
	hp := math.Mod(float64(h), 360) / 60.0
	x := c * (1 - math.Abs(math.Mod(hp, 2)-1))

	var r, g, b float64
	switch {
	case hp < 1:
		r, g, b = c, x, 0
	case hp < 2:
		r, g, b = x, c, 0
	case hp < 3:
		r, g, b = 0, c, x
	case hp < 4:
		r, g, b = 0, x, c
	case hp < 5:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	m := lf - c/2
	return RGB{
		R: channelByte(r + m),
		G: channelByte(g + m),
		B: channelByte(b + m),
	}
}

// channelByte rounds a normalised channel value to an 8-bit channel.
func channelByte(v float64) uint8 {
	n := math.Round(v * 255)
	if n < 0 {
		n = 0
	}
	if n > 255 {
		n = 255
	}
	return uint8(n)
}

// Luminance calculates the relative luminance of a colour according to
// WCAG 2.1. Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG21/#dfn-relative-luminance.
func Luminance(rgb RGB) float64 {
	r := gammaCorrect(float64(rgb.R) / 255.0)
	g := gammaCorrect(float64(rgb.G) / 255.0)
	b := gammaCorrect(float64(rgb.B) / 255.0)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// gammaCorrect applies the WCAG piecewise gamma linearisation to a channel.
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio calculates the WCAG 2.1 contrast ratio between two relative
// luminances. Returns a value between 1 and 21, where 21 is maximum
// contrast (black on white).
// https://www.w3.org/TR/WCAG21/#dfn-contrast-ratio.
func ContrastRatio(l1, l2 float64) float64 {
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// ContrastBetween calculates the contrast ratio between two colours.
func ContrastBetween(a, b RGB) float64 {
	return ContrastRatio(Luminance(a), Luminance(b))
}

// BestTextColour picks pure white or pure black text for a background,
// whichever yields the higher contrast ratio. Ties favour white.
func BestTextColour(bg RGB) RGB {
	lum := Luminance(bg)
	if ContrastRatio(1.0, lum) >= ContrastRatio(0.0, lum) {
		return White
	}
	return Black
}

// HSLString formats an HSL triple the way callers embed it in exports and
// tooltips: "hsl(H, S%, L%)" with plain integers.
func HSLString(h, s, l int) string {
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", h, s, l)
}
