// Package cli provides the command-line interface for namehue.
package cli

import (
	"fmt"

	"github.com/jmylchreest/namehue/internal/colour"
	"github.com/spf13/pflag"
)

// basisValue makes colour.Basis usable as a pflag value.
type basisValue colour.Basis

var _ pflag.Value = (*basisValue)(nil)

func (b *basisValue) String() string { return string(*b) }

func (b *basisValue) Set(s string) error {
	switch colour.Basis(s) {
	case colour.BasisInitials, colour.BasisFullName:
		*b = basisValue(s)
		return nil
	}
	return fmt.Errorf("must be %q or %q", colour.BasisInitials, colour.BasisFullName)
}

func (b *basisValue) Type() string { return "basis" }

// paletteValue makes colour.PaletteMode usable as a pflag value.
type paletteValue colour.PaletteMode

var _ pflag.Value = (*paletteValue)(nil)

func (p *paletteValue) String() string { return string(*p) }

func (p *paletteValue) Set(s string) error {
	switch colour.PaletteMode(s) {
	case colour.PaletteFullSpectrum, colour.PaletteLimited12:
		*p = paletteValue(s)
		return nil
	}
	return fmt.Errorf("must be %q or %q", colour.PaletteFullSpectrum, colour.PaletteLimited12)
}

func (p *paletteValue) Type() string { return "palette" }
