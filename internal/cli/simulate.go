package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/huecard/internal/colour"
	"github.com/jmylchreest/huecard/internal/layout"
)

var (
	simulateOutput string
	simulateScale  float64
)

// simulateCmd represents the simulate command
var simulateCmd = &cobra.Command{
	Use:   "simulate <deficiency> <dye> [dye]...",
	Short: "Compose a colour-vision simulation card",
	Long: fmt.Sprintf(`Compose a card showing up to four dyes above their simulated appearance
under a colour-vision deficiency.

Deficiencies: %s.

Examples:
  huecard simulate protanopia "Pillar Red" "Meadow Green"
  huecard simulate achromatopsia 1 12 31 58 -o sim.svg`, strings.Join(colour.Deficiencies(), ", ")),
	Args: cobra.MinimumNArgs(2),
	RunE: runSimulate,
}

func init() {
	registerOutputFlags(simulateCmd.Flags(), &simulateOutput, &simulateScale)
}

func runSimulate(cmd *cobra.Command, args []string) error {
	deficiency, err := colour.ParseDeficiency(args[0])
	if err != nil {
		return err
	}

	finder, err := newFinder()
	if err != nil {
		return err
	}

	entries, err := resolveEntries(finder, args[1:], 4)
	if err != nil {
		return err
	}
	verbosef("✓ Simulating %s for %d dye(s)\n", deficiency, len(entries))

	plan := layout.ComposeAccessibility(&layout.AccessibilityData{
		Entries:    entries,
		Deficiency: deficiency,
	})
	return emitCard(cmd.Context(), plan, simulateOutput, simulateScale)
}
