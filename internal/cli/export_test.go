package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/jmylchreest/namehue/internal/colour"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvatarExportStableKeys(t *testing.T) {
	result := colour.Resolve("Ada Lovelace", colour.DefaultConfig())

	data, err := json.Marshal(newAvatarExport(result))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	// Key names are a compatibility contract with existing exports.
	for _, key := range []string{"name", "initials", "background", "text-color", "hsl", "contrast-ratio", "wcag"} {
		assert.Contains(t, decoded, key)
	}

	assert.Equal(t, "Ada Lovelace", decoded["name"])
	assert.Equal(t, "AL", decoded["initials"])
	assert.Equal(t, "#d74242", decoded["background"])
	assert.Equal(t, "#000000", decoded["text-color"])
	assert.Equal(t, "hsl(0, 65%, 55%)", decoded["hsl"])
	assert.Equal(t, 4.75, decoded["contrast-ratio"])
	assert.Equal(t, "AA", decoded["wcag"])
}

func TestAvatarExportHexShape(t *testing.T) {
	for _, name := range []string{"", "Ada Lovelace", "Grace Hopper", "田中 太郎"} {
		export := newAvatarExport(colour.Resolve(name, colour.DefaultConfig()))
		assert.Len(t, export.Background, 7)
		assert.Equal(t, "#", export.Background[:1])
		assert.Equal(t, strings.ToLower(export.Background), export.Background)
	}
}

func TestMarshalBatchIncludesDistribution(t *testing.T) {
	cfg := colour.DefaultConfig()
	results := colour.ResolveAll([]string{"Alice", "Bob", "Carol"}, cfg)
	report := colour.Analyze(results, cfg.Palette)

	data, err := marshalBatch(results, report)
	require.NoError(t, err)

	var decoded batchExport
	require.NoError(t, json.Unmarshal(data, &decoded))

	require.Len(t, decoded.Avatars, 3)
	assert.Equal(t, "Alice", decoded.Avatars[0].Name)
	assert.Equal(t, "Carol", decoded.Avatars[2].Name)

	require.NotNil(t, decoded.Distribution)
	assert.Equal(t, 120.0, decoded.Distribution.IdealGap)
	require.NotEmpty(t, decoded.Distribution.Entries)
	assert.Equal(t, string(colour.EntrySummary), decoded.Distribution.Entries[len(decoded.Distribution.Entries)-1].Code)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 4.75, round2(4.74737))
	assert.Equal(t, 7.19, round2(7.191552))
	assert.Equal(t, 21.0, round2(21.0))
	assert.Equal(t, 1.0, round2(1.004999))
}
