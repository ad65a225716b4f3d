// Package cli provides the command-line interface for Huecard.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/huecard/internal/version"
)

var (
	// Global flags
	globalVerbose     bool
	globalPalettePath string
	globalDatabaseURL string
	globalRenderer    string

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "huecard",
		Short: "A colour card composer for dye palettes",
		Long: `Huecard composes shareable colour cards from a dye palette: harmony
companions, gradients, mixes, nearest matches, side-by-side comparisons
and colour-vision simulations.

Cards are drawn as SVG by the built-in renderer, or handed to an
external renderer plugin for raster output. The palette ships embedded
and can be swapped for a JSON/YAML file or a PostgreSQL table.`,
		Version:      version.Short(),
		SilenceUsage: true,
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&globalVerbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&globalPalettePath, "palette", "", "palette file (.json, .yaml; .xz/.gz/.bz2 accepted), overrides HUECARD_PALETTE")
	rootCmd.PersistentFlags().StringVar(&globalDatabaseURL, "database-url", "", "PostgreSQL palette source, overrides HUECARD_DATABASE_URL")
	rootCmd.PersistentFlags().StringVar(&globalRenderer, "renderer", "", "external renderer plugin binary, overrides HUECARD_RENDERER")

	// Set version template
	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(harmonyCmd)
	rootCmd.AddCommand(gradientCmd)
	rootCmd.AddCommand(mixCmd)
	rootCmd.AddCommand(swatchCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(paletteCmd)
	rootCmd.AddCommand(rendererCmd)
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
	},
}
