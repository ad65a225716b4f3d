package cli

import (
	"github.com/spf13/cobra"

	"github.com/jmylchreest/huecard/internal/layout"
)

var (
	compareOutput string
	compareScale  float64
)

// compareCmd represents the compare command
var compareCmd = &cobra.Command{
	Use:   "compare <dye> [dye]...",
	Short: "Compose a side-by-side comparison card",
	Long: `Compose a card showing up to four dyes side by side with their names
and categories.

Examples:
  huecard compare "Rose Pink" "Soot Black"
  huecard compare 1 12 31 58 -o compare.svg`,
	Args: cobra.RangeArgs(1, 4),
	RunE: runCompare,
}

func init() {
	registerOutputFlags(compareCmd.Flags(), &compareOutput, &compareScale)
}

func runCompare(cmd *cobra.Command, args []string) error {
	finder, err := newFinder()
	if err != nil {
		return err
	}

	entries, err := resolveEntries(finder, args, 4)
	if err != nil {
		return err
	}
	verbosef("✓ Comparing %d dye(s)\n", len(entries))

	return emitCard(cmd.Context(), layout.ComposeComparison(entries), compareOutput, compareScale)
}
