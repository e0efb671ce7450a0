// Package cli provides the command-line interface for namehue.
package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/jmylchreest/namehue/internal/colour"
	"github.com/jmylchreest/namehue/internal/config"
	"github.com/jmylchreest/namehue/internal/util"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// resolveCmd represents the resolve command
var resolveCmd = &cobra.Command{
	Use:   "resolve <name>...",
	Short: "Derive avatar colours for one or more names",
	Long: `Resolve derives a deterministic background colour, text colour and
initials for each given name, and reports the WCAG 2.1 contrast level of
the pairing.

Examples:
  # Resolve a single name
  namehue resolve "Ada Lovelace"

  # Hash the initials instead of the full name
  namehue resolve --basis initials "Ada Lovelace"

  # Quantise to the 12-bucket palette and force AAA contrast
  namehue resolve --palette limited12 --aaa "Ada Lovelace" "Grace Hopper"

  # Emit the JSON export format
  namehue resolve --format json "Ada Lovelace"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runResolve,
}

func init() {
	addGenerationFlags(resolveCmd)
	addOutputFlags(resolveCmd)
}

// addGenerationFlags registers the avatar generation flags shared by the
// resolve and batch commands.
func addGenerationFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Int("saturation", 65, "background saturation percentage (0-100)")
	f.Int("lightness", 55, "background lightness percentage (0-100)")
	basis := basisValue(colour.BasisFullName)
	f.VarP(&basis, "basis", "b", "colour basis (initials, name)")
	palette := paletteValue(colour.PaletteFullSpectrum)
	f.VarP(&palette, "palette", "p", "palette mode (full, limited12)")
	f.Float64("min-contrast", colour.RatioAA, "nominal minimum contrast ratio")
	f.Bool("aaa", false, "adjust lightness until text contrast reaches WCAG AAA (7:1)")
}

// addOutputFlags registers the output flags shared by the resolve and batch
// commands.
func addOutputFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringP("format", "f", "table", "output format (table, json, hex)")
	f.StringP("output", "o", "", "output file (default: stdout)")
	f.Bool("preview", false, "show colour swatches in the table (terminal only)")
	f.Bool("strip-hash", false, "omit the # prefix in hex output")
}

// buildConfig assembles the effective configuration: defaults, overlaid by
// the defaults file when present, overlaid by explicitly set flags.
func buildConfig(cmd *cobra.Command, log hclog.Logger) (colour.Config, error) {
	cfg := colour.DefaultConfig()

	path := globalConfig
	explicit := path != ""
	if !explicit {
		path = config.DefaultPath()
	}
	if path != "" {
		file, err := config.Load(path)
		switch {
		case err == nil:
			cfg = file.Apply(cfg)
			log.Debug("loaded defaults file", "path", path)
		case explicit || !errors.Is(err, fs.ErrNotExist):
			return cfg, fmt.Errorf("load defaults file: %w", err)
		default:
			log.Debug("no defaults file", "path", path)
		}
	}

	f := cmd.Flags()
	if f.Changed("saturation") {
		cfg.SaturationPercent, _ = f.GetInt("saturation")
	}
	if f.Changed("lightness") {
		cfg.LightnessPercent, _ = f.GetInt("lightness")
	}
	if f.Changed("basis") {
		cfg.Basis = colour.Basis(f.Lookup("basis").Value.String())
	}
	if f.Changed("palette") {
		cfg.Palette = colour.PaletteMode(f.Lookup("palette").Value.String())
	}
	if f.Changed("min-contrast") {
		cfg.MinContrastRatio, _ = f.GetFloat64("min-contrast")
	}
	if f.Changed("aaa") {
		cfg.ForceAAA, _ = f.GetBool("aaa")
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// runResolve executes the resolve command.
func runResolve(cmd *cobra.Command, args []string) error {
	log := newLogger()

	cfg, err := buildConfig(cmd, log)
	if err != nil {
		return err
	}
	log.Debug("resolving names", "count", len(args), "basis", cfg.Basis, "palette", cfg.Palette)

	results := colour.ResolveAll(args, cfg)

	out, err := renderResults(cmd, results)
	if err != nil {
		return err
	}
	return writeOutput(cmd, out)
}

// renderResults formats resolved avatars per the --format flag.
func renderResults(cmd *cobra.Command, results []colour.AvatarResult) ([]byte, error) {
	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "table":
		preview, _ := cmd.Flags().GetBool("preview")
		return []byte(renderTable(results, preview && stdoutIsTerminal())), nil
	case "json":
		return marshalAvatars(results)
	case "hex":
		stripHash, _ := cmd.Flags().GetBool("strip-hash")
		var sb strings.Builder
		for _, r := range results {
			hex := r.Hex
			if stripHash {
				hex = util.StripHash(hex)
			}
			sb.WriteString(hex + "\n")
		}
		return []byte(sb.String()), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

// renderTable formats resolved avatars as an aligned text table.
func renderTable(results []colour.AvatarResult, preview bool) string {
	headers := []string{"NAME", "INITIALS", "BACKGROUND", "HSL", "TEXT", "CONTRAST", "WCAG"}
	if preview {
		headers = append(headers, "PREVIEW")
	}

	table := NewTable(headers)
	for _, r := range results {
		row := []string{
			r.SourceName,
			r.Initials,
			r.Hex,
			r.HSLString(),
			r.TextColour.Hex(),
			fmt.Sprintf("%.2f", r.ContrastRatio),
			r.Level.String(),
		}
		if preview {
			row = append(row, colour.Swatch(r))
		}
		table.AddRow(row)
	}
	return table.Render()
}

// writeOutput sends rendered output to the --output file, or stdout.
func writeOutput(cmd *cobra.Command, data []byte) error {
	if len(data) > 0 && data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}
	path, _ := cmd.Flags().GetString("output")
	if path == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// stdoutIsTerminal reports whether stdout is attached to a terminal. ANSI
// previews are suppressed for pipes and files.
func stdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
