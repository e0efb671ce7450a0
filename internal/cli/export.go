// Package cli provides the command-line interface for namehue.
package cli

import (
	"encoding/json"
	"math"

	"github.com/jmylchreest/namehue/internal/colour"
)

// avatarExport is the stable JSON shape for one resolved avatar. Key names
// are a compatibility contract with downstream consumers; do not rename.
type avatarExport struct {
	Name          string  `json:"name"`
	Initials      string  `json:"initials"`
	Background    string  `json:"background"`
	TextColor     string  `json:"text-color"`
	HSL           string  `json:"hsl"`
	ContrastRatio float64 `json:"contrast-ratio"`
	WCAG          string  `json:"wcag"`
}

// entryExport is the JSON shape for one distribution finding.
type entryExport struct {
	Severity string         `json:"severity"`
	Code     string         `json:"code"`
	Params   map[string]any `json:"params"`
}

// distributionExport is the JSON shape for a distribution report.
type distributionExport struct {
	MinGap     float64       `json:"min-gap"`
	IdealGap   float64       `json:"ideal-gap"`
	Collisions int           `json:"collisions"`
	Entries    []entryExport `json:"entries"`
}

// batchExport wraps a full batch run: resolved avatars in input order plus
// the hue distribution report.
type batchExport struct {
	Avatars      []avatarExport      `json:"avatars"`
	Distribution *distributionExport `json:"distribution,omitempty"`
}

func newAvatarExport(r colour.AvatarResult) avatarExport {
	return avatarExport{
		Name:          r.SourceName,
		Initials:      r.Initials,
		Background:    r.Hex,
		TextColor:     r.TextColour.Hex(),
		HSL:           r.HSLString(),
		ContrastRatio: round2(r.ContrastRatio),
		WCAG:          r.Level.String(),
	}
}

func newDistributionExport(report colour.DistributionReport) *distributionExport {
	out := &distributionExport{
		MinGap:     report.MinGapDegrees,
		IdealGap:   round2(report.IdealGapDegrees),
		Collisions: report.CollisionCount,
		Entries:    make([]entryExport, 0, len(report.Entries)),
	}
	for _, e := range report.Entries {
		out.Entries = append(out.Entries, entryExport{
			Severity: string(e.Severity),
			Code:     string(e.Code),
			Params:   e.Params,
		})
	}
	return out
}

// marshalAvatars encodes resolved avatars as indented JSON.
func marshalAvatars(results []colour.AvatarResult) ([]byte, error) {
	exports := make([]avatarExport, len(results))
	for i, r := range results {
		exports[i] = newAvatarExport(r)
	}
	return json.MarshalIndent(exports, "", "  ")
}

// marshalBatch encodes a batch run, including the distribution report.
func marshalBatch(results []colour.AvatarResult, report colour.DistributionReport) ([]byte, error) {
	exports := make([]avatarExport, len(results))
	for i, r := range results {
		exports[i] = newAvatarExport(r)
	}
	return json.MarshalIndent(batchExport{
		Avatars:      exports,
		Distribution: newDistributionExport(report),
	}, "", "  ")
}

// round2 rounds to two decimal places, the exported precision for contrast
// ratios.
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
