package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/huecard/internal/blend"
	"github.com/jmylchreest/huecard/internal/layout"
)

var (
	mixRatio  int
	mixOutput string
	mixScale  float64
)

// mixCmd represents the mix command
var mixCmd = &cobra.Command{
	Use:   "mix <dye> <dye> [dye]",
	Short: "Compose a mixing card for two or three dyes",
	Long: `Compose a card showing the blend of two or three dyes and the palette
dye nearest the result.

Two-way mixes honour --ratio as the percentage weight of the first
dye; three-way mixes average all channels equally.

Examples:
  huecard mix "Rose Pink" "Peacock Blue"
  huecard mix 12 31 --ratio 70
  huecard mix 12 31 58 -o mix.svg`,
	Args: cobra.RangeArgs(2, 3),
	RunE: runMix,
}

func init() {
	mixCmd.Flags().IntVarP(&mixRatio, "ratio", "r", 50, "weight of the first dye in a two-way mix (0-100)")
	registerOutputFlags(mixCmd.Flags(), &mixOutput, &mixScale)
}

func runMix(cmd *cobra.Command, args []string) error {
	finder, err := newFinder()
	if err != nil {
		return err
	}

	inputs, err := resolveEntries(finder, args, 3)
	if err != nil {
		return err
	}

	engine := blend.NewEngine(finder)
	var result blend.Step
	switch len(inputs) {
	case 2:
		result, err = engine.Mix2(inputs[0].HexColor, inputs[1].HexColor, mixRatio)
	case 3:
		result, err = engine.Mix3(inputs[0].HexColor, inputs[1].HexColor, inputs[2].HexColor)
	}
	if err != nil {
		return fmt.Errorf("failed to mix dyes: %w", err)
	}
	verbosef("✓ Mix result: %s\n", result.Hex)
	if result.Match != nil {
		verbosef("  └─ nearest dye: %s (ΔE %.2f)\n", result.Match.Entry.Name, result.Match.Distance)
	}

	plan := layout.ComposeMix(&layout.MixData{
		Inputs: inputs,
		Ratio:  mixRatio,
		Result: result,
	})
	return emitCard(cmd.Context(), plan, mixOutput, mixScale)
}
