package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/huecard/internal/charsheet"
	"github.com/jmylchreest/huecard/internal/layout"
	"github.com/jmylchreest/huecard/internal/match"
)

var (
	swatchLimit     int
	swatchExclude   []int
	swatchSheets    []string
	swatchKind      string
	swatchRace      string
	swatchGender    string
	swatchNoCharCtx bool
	swatchOutput    string
	swatchScale     float64
)

// swatchCmd represents the swatch command
var swatchCmd = &cobra.Command{
	Use:   "swatch <colour>",
	Short: "Compose a nearest-match card for a colour",
	Long: `Compose a card showing the palette dyes closest to a colour, with the
character-creation chart cell the exact colour appears on, when it
appears on one.

The colour can be hex ("#E7A8A5") or an SVG colour name ("tomato").
Additional chart files given with --charsheet are consulted
concurrently alongside the built-in charts; the first hit wins.

Examples:
  huecard swatch '#E7A8A5'
  huecard swatch tomato --limit 3
  huecard swatch '#2B2923' --kind hair --race elf -o swatch.svg`,
	Args: cobra.ExactArgs(1),
	RunE: runSwatch,
}

func init() {
	swatchCmd.Flags().IntVarP(&swatchLimit, "limit", "l", match.DefaultLimit, "number of matches to find")
	swatchCmd.Flags().IntSliceVar(&swatchExclude, "exclude", nil, "palette ids to skip")
	swatchCmd.Flags().StringSliceVar(&swatchSheets, "charsheet", nil, "additional chart files to consult")
	swatchCmd.Flags().StringVar(&swatchKind, "kind", "", "restrict chart lookup to a kind (skin, hair, eyes)")
	swatchCmd.Flags().StringVar(&swatchRace, "race", "", "restrict chart lookup to a race")
	swatchCmd.Flags().StringVar(&swatchGender, "gender", "", "restrict chart lookup to a gender")
	swatchCmd.Flags().BoolVar(&swatchNoCharCtx, "no-charsheet", false, "skip the chart lookup")
	registerOutputFlags(swatchCmd.Flags(), &swatchOutput, &swatchScale)
}

func runSwatch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	finder, err := newFinder()
	if err != nil {
		return err
	}

	target, err := parseColourArg(args[0])
	if err != nil {
		return err
	}
	targetHex := target.CanonicalHex()
	verbosef("✓ Target: %s\n", targetHex)

	exclude := make(map[int]bool, len(swatchExclude))
	for _, id := range swatchExclude {
		exclude[id] = true
	}
	matches, err := finder.FindClosest(targetHex, match.Options{Limit: swatchLimit, Exclude: exclude})
	if err != nil {
		return fmt.Errorf("failed to find matches: %w", err)
	}
	verbosef("  └─ %d match(es)\n", len(matches))

	var placement *charsheet.Placement
	if !swatchNoCharCtx {
		sources, err := chartSources()
		if err != nil {
			return err
		}
		filter := charsheet.Filter{Kind: swatchKind, Race: swatchRace, Gender: swatchGender}
		p, found, err := charsheet.ResolveAny(ctx, sources, targetHex, filter)
		if err != nil {
			return fmt.Errorf("chart lookup failed: %w", err)
		}
		if found {
			placement = &p
			verbosef("  └─ on chart: %s %s %s, row %d col %d\n", p.Race, p.Gender, p.Kind, p.Row, p.Col)
		}
	}

	plan := layout.ComposeSwatch(&layout.SwatchData{
		TargetHex: targetHex,
		Matches:   matches,
		Context:   placement,
	})
	return emitCard(ctx, plan, swatchOutput, swatchScale)
}

// chartSources collects the built-in chart library plus any files
// named with --charsheet.
func chartSources() ([]charsheet.Source, error) {
	builtin, err := charsheet.Default()
	if err != nil {
		return nil, fmt.Errorf("failed to load built-in charts: %w", err)
	}
	sources := []charsheet.Source{builtin}

	for _, path := range swatchSheets {
		lib, err := charsheet.Load(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load chart file %q: %w", path, err)
		}
		sources = append(sources, lib)
	}
	return sources, nil
}
