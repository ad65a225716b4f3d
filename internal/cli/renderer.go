package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/huecard/internal/render"
	"github.com/jmylchreest/huecard/internal/svg"
)

// rendererCmd represents the renderer command
var rendererCmd = &cobra.Command{
	Use:   "renderer",
	Short: "Inspect and manage the card renderer",
}

var rendererInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the active renderer",
	Args:  cobra.NoArgs,
	RunE:  runRendererInfo,
}

var rendererReapCmd = &cobra.Command{
	Use:   "reap",
	Short: "Terminate orphaned renderer processes",
	Long: `Terminate renderer plugin processes whose host has exited.

Renderer plugins normally die with the command that launched them. A
crashed host can leave them behind; reap finds processes carrying the
configured renderer's executable name that have been reparented to init
and terminates them.`,
	Args: cobra.NoArgs,
	RunE: runRendererReap,
}

func init() {
	rendererCmd.AddCommand(rendererInfoCmd)
	rendererCmd.AddCommand(rendererReapCmd)
}

func runRendererInfo(cmd *cobra.Command, args []string) error {
	path := rendererPath()
	if path == "" {
		fmt.Println("Renderer: builtin")
		fmt.Printf("  format: %s\n", svg.MIME)
		return nil
	}

	exec, err := render.NewExecutor(path, globalVerbose)
	if err != nil {
		return err
	}
	defer exec.Close()

	info, err := exec.Metadata()
	if err != nil {
		return fmt.Errorf("failed to query renderer %s: %w", path, err)
	}

	fmt.Printf("Renderer: %s\n", info.Name)
	fmt.Printf("  path:     %s\n", path)
	fmt.Printf("  version:  %s\n", info.Version)
	fmt.Printf("  protocol: %s\n", info.ProtocolVersion)
	fmt.Printf("  format:   %s\n", info.MIME)
	if info.Description != "" {
		fmt.Printf("  %s\n", info.Description)
	}
	return nil
}

func runRendererReap(cmd *cobra.Command, args []string) error {
	path := rendererPath()
	if path == "" {
		return fmt.Errorf("no renderer configured (set --renderer or %s)", envRenderer)
	}

	pids, err := render.Reap(filepath.Base(path))
	if err != nil {
		return fmt.Errorf("failed to reap renderer processes: %w", err)
	}
	if len(pids) == 0 {
		fmt.Println("No orphaned renderer processes found")
		return nil
	}
	for _, pid := range pids {
		fmt.Printf("✓ Terminated orphaned renderer process %d\n", pid)
	}
	return nil
}
