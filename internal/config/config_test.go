package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/jmylchreest/namehue/internal/colour"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAndApply(t *testing.T) {
	path := writeFile(t, `
saturation: 80
lightness: 40
basis: initials
palette: limited12
min_contrast: 7.0
force_aaa: true
`)

	file, err := Load(path)
	require.NoError(t, err)

	cfg := file.Apply(colour.DefaultConfig())
	assert.Equal(t, 80, cfg.SaturationPercent)
	assert.Equal(t, 40, cfg.LightnessPercent)
	assert.Equal(t, colour.BasisInitials, cfg.Basis)
	assert.Equal(t, colour.PaletteLimited12, cfg.Palette)
	assert.Equal(t, 7.0, cfg.MinContrastRatio)
	assert.True(t, cfg.ForceAAA)
	require.NoError(t, cfg.Validate())
}

func TestApplyPartial(t *testing.T) {
	path := writeFile(t, "saturation: 90\n")

	file, err := Load(path)
	require.NoError(t, err)

	base := colour.DefaultConfig()
	cfg := file.Apply(base)
	assert.Equal(t, 90, cfg.SaturationPercent)
	// Unset fields keep their defaults.
	assert.Equal(t, base.LightnessPercent, cfg.LightnessPercent)
	assert.Equal(t, base.Basis, cfg.Basis)
	assert.Equal(t, base.Palette, cfg.Palette)
	assert.Equal(t, base.MinContrastRatio, cfg.MinContrastRatio)
	assert.Equal(t, base.ForceAAA, cfg.ForceAAA)
}

func TestApplyZeroValueIsRespected(t *testing.T) {
	// saturation: 0 is a real setting, not an unset field.
	path := writeFile(t, "saturation: 0\n")

	file, err := Load(path)
	require.NoError(t, err)

	cfg := file.Apply(colour.DefaultConfig())
	assert.Equal(t, 0, cfg.SaturationPercent)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writeFile(t, "saturation: [not a number\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.False(t, errors.Is(err, fs.ErrNotExist))
}

func TestDefaultPathHonoursXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	assert.Equal(t, filepath.Join("/tmp/xdg", "namehue", "config.yaml"), DefaultPath())
}
