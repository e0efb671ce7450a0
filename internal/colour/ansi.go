// Package colour derives deterministic, accessibility-aware avatar colours
// from display names.
package colour

import (
	"fmt"
	"strings"
)

// ANSI escape codes for terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	swatchWidth  = 6
)

// Swatch returns an ANSI-coloured preview block for an avatar: the
// background colour with the initials centred in the resolved text colour.
func Swatch(r AvatarResult) string {
	return SwatchText(r.RGB, r.TextColour, r.Initials, swatchWidth)
}

// SwatchText renders text on a solid background block of the given width
// using truecolor escape sequences.
func SwatchText(bg, fg RGB, text string, width int) string {
	if width <= 0 {
		width = swatchWidth
	}

	bgSeq := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, bg.R, bg.G, bg.B, ansiSuffix)
	fgSeq := fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, fg.R, fg.G, fg.B, ansiSuffix)

	display := text
	if len(display) > width {
		display = display[:width]
	} else if len(display) < width {
		pad := (width - len(display)) / 2
		display = strings.Repeat(" ", pad) + display + strings.Repeat(" ", width-len(display)-pad)
	}

	return bgSeq + fgSeq + display + ansiReset
}
