// Package config loads the optional namehue defaults file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmylchreest/namehue/internal/colour"
	"gopkg.in/yaml.v3"
)

// File holds the defaults a user keeps on disk. Every field is optional;
// pointer fields distinguish "not set" from a zero value so a defaults file
// can legitimately set saturation to 0.
type File struct {
	Saturation  *int     `yaml:"saturation"`
	Lightness   *int     `yaml:"lightness"`
	Basis       *string  `yaml:"basis"`
	Palette     *string  `yaml:"palette"`
	MinContrast *float64 `yaml:"min_contrast"`
	ForceAAA    *bool    `yaml:"force_aaa"`
}

// DefaultPath returns the conventional defaults file location, honouring
// XDG_CONFIG_HOME. Returns "" when no home directory can be determined.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "namehue", "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "namehue", "config.yaml")
}

// Load reads and parses a defaults file. A missing file surfaces the
// underlying fs.ErrNotExist so callers can treat the default location as
// optional.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read defaults file %q: %w", path, err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse defaults file %q: %w", path, err)
	}
	return &file, nil
}

// Apply overlays the file's values onto a configuration, leaving unset
// fields untouched.
func (f *File) Apply(cfg colour.Config) colour.Config {
	if f.Saturation != nil {
		cfg.SaturationPercent = *f.Saturation
	}
	if f.Lightness != nil {
		cfg.LightnessPercent = *f.Lightness
	}
	if f.Basis != nil {
		cfg.Basis = colour.Basis(*f.Basis)
	}
	if f.Palette != nil {
		cfg.Palette = colour.PaletteMode(*f.Palette)
	}
	if f.MinContrast != nil {
		cfg.MinContrastRatio = *f.MinContrast
	}
	if f.ForceAAA != nil {
		cfg.ForceAAA = *f.ForceAAA
	}
	return cfg
}
