package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/huecard/internal/harmony"
	"github.com/jmylchreest/huecard/internal/layout"
)

var (
	harmonyScheme string
	harmonyOutput string
	harmonyScale  float64
)

// harmonyCmd represents the harmony command
var harmonyCmd = &cobra.Command{
	Use:   "harmony <dye>",
	Short: "Compose a colour harmony card for a base dye",
	Long: fmt.Sprintf(`Compose a card showing a base dye and the palette dyes closest to its
harmony positions on the colour wheel.

The base dye can be given as a palette id, an external id (ext:7), a
dye name, a hex colour or an SVG colour name; loose colours snap to the
nearest dye first.

Schemes: %s.

Examples:
  huecard harmony "Rose Pink"
  huecard harmony 14 --scheme triadic
  huecard harmony '#31687E' --scheme split-complementary -o harmony.svg`, strings.Join(harmony.Schemes(), ", ")),
	Args: cobra.ExactArgs(1),
	RunE: runHarmony,
}

func init() {
	harmonyCmd.Flags().StringVarP(&harmonyScheme, "scheme", "s", string(harmony.Complementary), "harmony scheme")
	registerOutputFlags(harmonyCmd.Flags(), &harmonyOutput, &harmonyScale)
}

func runHarmony(cmd *cobra.Command, args []string) error {
	finder, err := newFinder()
	if err != nil {
		return err
	}

	scheme, err := harmony.ParseScheme(harmonyScheme)
	if err != nil {
		return err
	}

	base, err := resolveEntry(finder, args[0])
	if err != nil {
		return err
	}
	verbosef("✓ Base dye: %s %s\n", base.Name, base.HexColor)

	companions, err := harmony.NewGenerator(finder).Generate(base, scheme)
	if err != nil {
		return fmt.Errorf("failed to generate %s companions: %w", scheme, err)
	}
	verbosef("  └─ %d companion(s)\n", len(companions))

	plan := layout.ComposeHarmony(&layout.HarmonyData{
		Base:       base,
		Scheme:     scheme,
		Companions: companions,
	})
	return emitCard(cmd.Context(), plan, harmonyOutput, harmonyScale)
}
