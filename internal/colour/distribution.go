// Package colour derives deterministic, accessibility-aware avatar colours
// from display names.
package colour

import "sort"

// Distribution analysis thresholds, in hue degrees.
const (
	// collisionGap is the circular gap below which two hues read as the
	// same colour at avatar size.
	collisionGap = 10.0
	// spreadGap is the gap below which the overall spread warning fires.
	spreadGap = 5.0
	// spreadMinNames gates the spread warning; tiny rosters always have
	// huge ideal gaps and the warning would be noise.
	spreadMinNames = 3
)

// Severity ranks a distribution entry.
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// EntryCode identifies a distribution entry template. Message text is the
// caller's concern; the core only supplies the code and its parameters.
type EntryCode string

const (
	// EntryHueCollision reports hue pairs closer than the collision gap.
	// Params: "count", "threshold".
	EntryHueCollision EntryCode = "hue-collision"
	// EntryPoorSpread reports a minimum gap too small for the roster
	// size. Params: "min-gap".
	EntryPoorSpread EntryCode = "poor-spread"
	// EntrySummary reports the overall spread. Params: "min-gap",
	// "ideal-gap", "palette".
	EntrySummary EntryCode = "summary"
)

// DistributionEntry is one structured finding about a hue distribution.
type DistributionEntry struct {
	Severity Severity
	Code     EntryCode
	Params   map[string]any
}

// DistributionReport summarises how a batch of avatar hues spreads around
// the colour wheel. Entry order is fixed (collision warning, spread
// warning, summary) and callers may render entries positionally.
type DistributionReport struct {
	MinGapDegrees   float64
	IdealGapDegrees float64
	CollisionCount  int
	Entries         []DistributionEntry
}

// Analyze inspects the hues of a batch of resolved avatars for visually
// ambiguous collisions.
func Analyze(results []AvatarResult, palette PaletteMode) DistributionReport {
	hues := make([]int, len(results))
	for i, r := range results {
		hues[i] = r.Hue
	}
	return AnalyzeHues(hues, len(results), palette)
}

// AnalyzeHues computes circular gaps between the given hues, including the
// wrap-around gap from the largest hue back to the smallest. Fewer than two
// names yields a neutral report with no entries.
func AnalyzeHues(hues []int, nameCount int, palette PaletteMode) DistributionReport {
	if nameCount < 2 {
		return DistributionReport{}
	}

	sorted := make([]int, len(hues))
	copy(sorted, hues)
	sort.Ints(sorted)

	minGap := 360.0
	collisions := 0
	for i := range sorted {
		var gap float64
		if i == len(sorted)-1 {
			gap = float64(360 - sorted[i] + sorted[0])
		} else {
			gap = float64(sorted[i+1] - sorted[i])
		}
		if gap < minGap {
			minGap = gap
		}
		if gap < collisionGap {
			collisions++
		}
	}

	report := DistributionReport{
		MinGapDegrees:   minGap,
		IdealGapDegrees: 360.0 / float64(nameCount),
		CollisionCount:  collisions,
	}

	if collisions > 0 {
		report.Entries = append(report.Entries, DistributionEntry{
			Severity: SeverityWarning,
			Code:     EntryHueCollision,
			Params: map[string]any{
				"count":     collisions,
				"threshold": collisionGap,
			},
		})
	}
	if minGap < spreadGap && nameCount > spreadMinNames {
		report.Entries = append(report.Entries, DistributionEntry{
			Severity: SeverityWarning,
			Code:     EntryPoorSpread,
			Params: map[string]any{
				"min-gap": minGap,
			},
		})
	}
	report.Entries = append(report.Entries, DistributionEntry{
		Severity: SeverityInfo,
		Code:     EntrySummary,
		Params: map[string]any{
			"min-gap":   report.MinGapDegrees,
			"ideal-gap": report.IdealGapDegrees,
			"palette":   string(palette),
		},
	})

	return report
}
