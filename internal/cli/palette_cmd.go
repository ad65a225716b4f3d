package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jmylchreest/huecard/internal/charsheet"
	"github.com/jmylchreest/huecard/internal/colour"
)

var (
	paletteCategory  string
	paletteNoPreview bool
)

// paletteCmd represents the palette command
var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Inspect the dye palette",
}

var paletteListCmd = &cobra.Command{
	Use:   "list",
	Short: "List palette dyes",
	Long: `List the dyes of the active palette as a table, with ANSI colour
previews when stdout is a terminal.

Examples:
  huecard palette list
  huecard palette list --category greys
  huecard palette list --palette dyes.yaml`,
	Args: cobra.NoArgs,
	RunE: runPaletteList,
}

var paletteCategoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List palette categories",
	Args:  cobra.NoArgs,
	RunE:  runPaletteCategories,
}

var paletteShowCmd = &cobra.Command{
	Use:   "show <dye>",
	Short: "Show one dye in detail",
	Long: `Show a dye's identifiers, colour values, luminance class and the
character-creation chart cells its colour appears on.`,
	Args: cobra.ExactArgs(1),
	RunE: runPaletteShow,
}

func init() {
	paletteListCmd.Flags().StringVarP(&paletteCategory, "category", "c", "", "only list dyes in this category")
	paletteListCmd.Flags().BoolVar(&paletteNoPreview, "no-preview", false, "suppress ANSI colour previews")

	paletteCmd.AddCommand(paletteListCmd)
	paletteCmd.AddCommand(paletteCategoriesCmd)
	paletteCmd.AddCommand(paletteShowCmd)
}

func runPaletteList(cmd *cobra.Command, args []string) error {
	idx, err := loadPalette()
	if err != nil {
		return err
	}

	preview := !paletteNoPreview && term.IsTerminal(int(os.Stdout.Fd()))

	headers := []string{"ID", "EXT", "NAME", "CATEGORY", "HEX"}
	if preview {
		headers = append(headers, "PREVIEW")
	}
	table := NewTable(headers)

	// Leave the fixed columns room on narrow terminals.
	if w := terminalWidth(); w > 0 && w < 100 {
		table.SetColumnMaxWidth(2, 20)
	}

	count := 0
	for _, e := range idx.Entries() {
		if paletteCategory != "" && !strings.EqualFold(e.Category, paletteCategory) {
			continue
		}
		row := []string{
			strconv.Itoa(e.ID),
			strconv.Itoa(e.ExternalID),
			e.Name,
			e.Category,
			e.HexColor,
		}
		if preview {
			row = append(row, colour.Preview(e.RGB(), 6))
		}
		table.AddRow(row)
		count++
	}

	if count == 0 {
		return fmt.Errorf("no dyes in category %q (categories: %s)", paletteCategory, strings.Join(idx.Categories(), ", "))
	}

	fmt.Print(table.Render())
	return nil
}

func runPaletteCategories(cmd *cobra.Command, args []string) error {
	idx, err := loadPalette()
	if err != nil {
		return err
	}

	counts := make(map[string]int)
	for _, e := range idx.Entries() {
		counts[e.Category]++
	}

	table := NewTable([]string{"CATEGORY", "DYES"})
	for _, cat := range idx.Categories() {
		table.AddRow([]string{cat, strconv.Itoa(counts[cat])})
	}
	fmt.Print(table.Render())
	return nil
}

func runPaletteShow(cmd *cobra.Command, args []string) error {
	finder, err := newFinder()
	if err != nil {
		return err
	}

	entry, err := resolveEntry(finder, args[0])
	if err != nil {
		return err
	}
	rgb := entry.RGB()

	if term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Printf("%s  %s\n", colour.Preview(rgb, 12), entry.Name)
	} else {
		fmt.Println(entry.Name)
	}
	fmt.Printf("  id:          %d (external %d)\n", entry.ID, entry.ExternalID)
	fmt.Printf("  category:    %s\n", entry.Category)
	fmt.Printf("  hex:         %s\n", entry.HexColor)
	fmt.Printf("  rgb:         %s\n", rgb)
	class := "dark"
	if rgb.IsLight() {
		class = "light"
	}
	fmt.Printf("  luminance:   %.4f (%s)\n", colour.Luminance(rgb), class)

	placements := chartPlacements(cmd.Context(), rgb.CanonicalHex())
	if len(placements) > 0 {
		fmt.Println("  charts:")
		for _, p := range placements {
			fmt.Printf("    %s %s %s: row %d, col %d\n", p.Race, p.Gender, p.Kind, p.Row, p.Col)
		}
	}
	return nil
}

// chartPlacements lists every built-in chart cell holding the colour.
func chartPlacements(ctx context.Context, hex string) []charsheet.Placement {
	lib, err := charsheet.Default()
	if err != nil {
		return nil
	}

	var out []charsheet.Placement
	for _, sheet := range lib.Sheets() {
		filter := charsheet.Filter{Kind: sheet.Kind, Race: sheet.Race, Gender: sheet.Gender}
		if p, ok, err := lib.Lookup(ctx, hex, filter); err == nil && ok {
			out = append(out, p)
		}
	}
	return out
}

// terminalWidth reports the stdout terminal width, 0 when stdout is
// not a terminal.
func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	w, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return w
}
