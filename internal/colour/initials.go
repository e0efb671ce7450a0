// Package colour derives deterministic, accessibility-aware avatar colours
// from display names.
package colour

import (
	"strings"

	"github.com/rivo/uniseg"
)

// nameParticles are name-affix words that carry no initial of their own
// ("Ludwig van Beethoven" abbreviates to "LB", not "LV"). Matched
// case-insensitively against whole words.
var nameParticles = map[string]struct{}{
	"van": {}, "de": {}, "der": {}, "den": {}, "het": {}, "ter": {},
	"ten": {}, "te": {}, "la": {}, "le": {}, "les": {}, "du": {},
	"des": {}, "von": {}, "zu": {}, "di": {}, "da": {}, "del": {},
	"della": {}, "el": {}, "al": {}, "bin": {}, "ibn": {},
}

// Initials abbreviates a display name to one or two uppercased grapheme
// clusters. Particles are skipped unless the name consists of nothing else,
// in which case the literal words are used. An empty or whitespace-only
// name falls back to "?".
func Initials(name string) string {
	words := strings.Fields(name)
	if len(words) == 0 {
		return "?"
	}

	significant := words[:0:0]
	for _, w := range words {
		if _, isParticle := nameParticles[strings.ToLower(w)]; !isParticle {
			significant = append(significant, w)
		}
	}
	if len(significant) == 0 {
		significant = words
	}

	first := firstGrapheme(significant[0])
	if len(significant) == 1 {
		return strings.ToUpper(first)
	}
	last := firstGrapheme(significant[len(significant)-1])
	return strings.ToUpper(first + last)
}

// firstGrapheme returns the first user-perceived character of s. Grapheme
// segmentation keeps combining marks and surrogate-paired glyphs intact
// where a raw byte or rune slice would split them.
func firstGrapheme(s string) string {
	g, _, _, _ := uniseg.FirstGraphemeClusterInString(s, -1)
	return g
}
