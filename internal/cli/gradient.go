package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/huecard/internal/blend"
	"github.com/jmylchreest/huecard/internal/layout"
)

var (
	gradientSteps  int
	gradientOutput string
	gradientScale  float64
)

// gradientCmd represents the gradient command
var gradientCmd = &cobra.Command{
	Use:   "gradient <start dye> <end dye>",
	Short: "Compose a gradient card between two dyes",
	Long: `Compose a card showing the perceptual steps between two dyes, each
step resolved to its nearest palette dye.

All requested steps are computed and drawn into the gradient bar; the
step row below it shows at most the first seven for legibility.

Examples:
  huecard gradient "Soot Black" "Chalk White"
  huecard gradient 3 96 --steps 9 -o ramp.svg`,
	Args: cobra.ExactArgs(2),
	RunE: runGradient,
}

func init() {
	gradientCmd.Flags().IntVarP(&gradientSteps, "steps", "n", 5, "number of gradient steps (minimum 2)")
	registerOutputFlags(gradientCmd.Flags(), &gradientOutput, &gradientScale)
}

func runGradient(cmd *cobra.Command, args []string) error {
	finder, err := newFinder()
	if err != nil {
		return err
	}

	start, err := resolveEntry(finder, args[0])
	if err != nil {
		return err
	}
	end, err := resolveEntry(finder, args[1])
	if err != nil {
		return err
	}
	verbosef("✓ Gradient: %s to %s (%d steps)\n", start.Name, end.Name, gradientSteps)

	steps, err := blend.NewEngine(finder).Gradient(start.HexColor, end.HexColor, gradientSteps)
	if err != nil {
		return fmt.Errorf("failed to compute gradient: %w", err)
	}

	plan := layout.ComposeGradient(&layout.GradientData{
		Start: start,
		End:   end,
		Steps: steps,
	})
	return emitCard(cmd.Context(), plan, gradientOutput, gradientScale)
}
