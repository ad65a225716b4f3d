package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/jmylchreest/huecard/internal/layout"
	"github.com/jmylchreest/huecard/internal/render"
	pluginapi "github.com/jmylchreest/huecard/pkg/plugin"
)

// registerOutputFlags adds the output flags every card command shares.
func registerOutputFlags(fs *pflag.FlagSet, output *string, scale *float64) {
	fs.StringVarP(output, "output", "o", "", "output file (default stdout)")
	fs.Float64Var(scale, "scale", 1, "raster scale factor (plugin renderers only)")
}

// emitCard renders a composed plan and writes the document. An empty
// output path writes to stdout; otherwise the file is created or
// truncated. The external renderer is used when one is configured.
func emitCard(ctx context.Context, plan *layout.Plan, outputPath string, scale float64) error {
	result, err := renderPlan(ctx, plan, scale)
	if err != nil {
		return err
	}

	if outputPath == "" || outputPath == "-" {
		_, err := os.Stdout.Write(result.Data)
		return err
	}

	if err := os.WriteFile(outputPath, result.Data, 0o644); err != nil {
		return fmt.Errorf("failed to write card: %w", err)
	}
	verbosef("✓ Wrote card: %s (%d bytes, %s)\n", outputPath, len(result.Data), result.MIME)
	return nil
}

func renderPlan(ctx context.Context, plan *layout.Plan, scale float64) (pluginapi.RenderResult, error) {
	path := rendererPath()
	if path == "" {
		verbosef("✓ Renderer: builtin\n")
		return render.Builtin(plan)
	}

	executor, err := render.NewExecutor(path, globalVerbose)
	if err != nil {
		return pluginapi.RenderResult{}, err
	}
	defer executor.Close()

	if globalVerbose {
		if info, err := executor.Metadata(); err == nil {
			verbosef("✓ Renderer: %s %s\n", info.Name, info.Version)
			verbosef("  └─ %s\n", info.Description)
		}
	}

	return executor.Render(ctx, plan, scale)
}
