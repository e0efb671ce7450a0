// Package cli provides the command-line interface for namehue.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jmylchreest/namehue/internal/colour"
	"github.com/spf13/cobra"
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch [file]",
	Short: "Resolve a roster of names and analyse its colour distribution",
	Long: `Batch resolves every name in a roster (one name per line, blank lines
skipped) and analyses how the resulting hues spread around the colour
wheel, warning when two avatars would look identical.

Names are read from the given file, or from stdin when no file is given.

Examples:
  # Analyse a roster file
  namehue batch team.txt

  # Pipe names in and export everything as JSON
  printf 'Ada Lovelace\nGrace Hopper\n' | namehue batch --format json

  # Use the collision-resistant 12-bucket palette
  namehue batch --palette limited12 team.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBatch,
}

func init() {
	addGenerationFlags(batchCmd)
	addOutputFlags(batchCmd)
}

// runBatch executes the batch command.
func runBatch(cmd *cobra.Command, args []string) error {
	log := newLogger()

	cfg, err := buildConfig(cmd, log)
	if err != nil {
		return err
	}

	var reader io.Reader = cmd.InOrStdin()
	if len(args) == 1 {
		file, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open roster: %w", err)
		}
		defer file.Close()
		reader = file
	}

	names, err := readNames(reader)
	if err != nil {
		return fmt.Errorf("read roster: %w", err)
	}
	if len(names) == 0 {
		return fmt.Errorf("roster is empty")
	}
	log.Debug("resolving roster", "names", len(names), "palette", cfg.Palette)

	results := colour.ResolveAll(names, cfg)
	report := colour.Analyze(results, cfg.Palette)

	format, _ := cmd.Flags().GetString("format")
	if format == "json" {
		out, err := marshalBatch(results, report)
		if err != nil {
			return err
		}
		return writeOutput(cmd, out)
	}

	out, err := renderResults(cmd, results)
	if err != nil {
		return err
	}
	out = append(out, []byte("\n"+renderReport(report))...)
	return writeOutput(cmd, out)
}

// readNames parses a roster: one name per line, surrounding whitespace
// trimmed, blank lines skipped.
func readNames(r io.Reader) ([]string, error) {
	var names []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		name := strings.TrimSpace(scanner.Text())
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return names, nil
}

// renderReport turns the structured distribution entries into terminal
// text. Wording lives here, not in the core, so embedders can localise.
func renderReport(report colour.DistributionReport) string {
	var sb strings.Builder
	for _, entry := range report.Entries {
		switch entry.Code {
		case colour.EntryHueCollision:
			fmt.Fprintf(&sb, "warning: %v hue pair(s) closer than %v degrees; those avatars look identical\n",
				entry.Params["count"], entry.Params["threshold"])
		case colour.EntryPoorSpread:
			fmt.Fprintf(&sb, "warning: minimum hue gap %v degrees is too narrow for this roster; consider --palette limited12\n",
				entry.Params["min-gap"])
		case colour.EntrySummary:
			fmt.Fprintf(&sb, "minimum hue gap %v degrees, ideal %.1f degrees (palette: %v)\n",
				entry.Params["min-gap"], report.IdealGapDegrees, entry.Params["palette"])
		}
	}
	return sb.String()
}
