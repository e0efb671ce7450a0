// Package colour derives deterministic, accessibility-aware avatar colours
// from display names.
package colour

// Lightness search bounds. The search never pushes a colour darker than 10
// or lighter than 90; past those points the hue is effectively gone.
const (
	lightnessFloor   = 10
	lightnessCeiling = 90
)

// AdjustLightness nudges a colour's lightness until it meets the required
// contrast ratio against its text colour, returning the adjusted lightness
// as a percentage. The common case, an already-compliant colour, returns
// immediately without searching.
//
// The search direction is fixed once from the text colour implied by the
// initial lightness and is never re-evaluated mid-search: white text means
// stepping darker toward the floor, black text means stepping lighter
// toward the ceiling. Extreme shifts could in theory flip which text
// colour is optimal, but re-evaluating would change colours that existing
// exports already depend on, so the lock stays.
//
// If the search exhausts its range the original lightness is returned
// unchanged. Some hue/saturation combinations simply cannot reach high
// ratios; a best-effort colour is the contract, not an error.
func AdjustLightness(hue, saturation, lightness int, requiredRatio float64) int {
	bg := HSLToRGB(hue, saturation, lightness)
	text := BestTextColour(bg)
	if ContrastBetween(text, bg) >= requiredRatio {
		return lightness
	}

	textLum := Luminance(text)
	if text == White {
		for l := lightness - 1; l >= lightnessFloor; l-- {
			candidate := HSLToRGB(hue, saturation, l)
			if ContrastRatio(textLum, Luminance(candidate)) >= requiredRatio {
				return l
			}
		}
	} else {
		for l := lightness + 1; l <= lightnessCeiling; l++ {
			candidate := HSLToRGB(hue, saturation, l)
			if ContrastRatio(textLum, Luminance(candidate)) >= requiredRatio {
				return l
			}
		}
	}

	return lightness
}
