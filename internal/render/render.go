// Package render turns drawing plans into finished documents. The
// built-in SVG encoder covers the default path; an external renderer
// plugin, driven over go-plugin RPC, can take over when raster output
// or custom styling is wanted.
package render

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-plugin"

	"github.com/jmylchreest/huecard/internal/layout"
	"github.com/jmylchreest/huecard/internal/svg"
	pluginapi "github.com/jmylchreest/huecard/pkg/plugin"
)

// Builtin renders a plan with the embedded SVG encoder.
func Builtin(p *layout.Plan) (pluginapi.RenderResult, error) {
	data, err := svg.Encode(p)
	if err != nil {
		return pluginapi.RenderResult{}, fmt.Errorf("failed to encode plan: %w", err)
	}
	return pluginapi.RenderResult{MIME: svg.MIME, Data: data}, nil
}

// Executor drives one external renderer plugin process. The plugin is
// launched lazily on first use and reused until Close.
type Executor struct {
	path    string
	verbose bool
	client  *plugin.Client
	rpc     *pluginapi.RendererRPCClient
}

// NewExecutor validates the renderer binary and returns an executor
// for it. The plugin process is not started yet.
func NewExecutor(path string, verbose bool) (*Executor, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat renderer %q: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("renderer %q is a directory", path)
	}
	return &Executor{path: path, verbose: verbose}, nil
}

func (e *Executor) getRPCClient() (*pluginapi.RendererRPCClient, error) {
	if e.rpc != nil {
		return e.rpc, nil
	}

	// Configure logger based on verbose flag.
	var logger hclog.Logger
	if e.verbose {
		logger = hclog.New(&hclog.LoggerOptions{
			Name:   "renderer",
			Output: log.Writer(),
			Level:  hclog.Debug,
		})
	} else {
		logger = hclog.New(&hclog.LoggerOptions{
			Name:   "renderer",
			Output: io.Discard,
			Level:  hclog.Off,
		})
	}

	e.client = plugin.NewClient(&plugin.ClientConfig{
		HandshakeConfig: pluginapi.Handshake,
		Plugins: map[string]plugin.Plugin{
			pluginapi.RendererPluginName: &pluginapi.RendererRPC{},
		},
		Cmd:              exec.Command(e.path), // #nosec G204 -- renderer path is operator configuration
		AllowedProtocols: []plugin.Protocol{plugin.ProtocolNetRPC},
		Logger:           logger,
	})

	rpcClient, err := e.client.Client()
	if err != nil {
		e.client.Kill()
		e.client = nil
		return nil, fmt.Errorf("failed to get RPC client: %w", err)
	}

	raw, err := rpcClient.Dispense(pluginapi.RendererPluginName)
	if err != nil {
		e.client.Kill()
		e.client = nil
		return nil, fmt.Errorf("failed to dispense renderer: %w", err)
	}

	client, ok := raw.(*pluginapi.RendererRPCClient)
	if !ok {
		e.client.Kill()
		e.client = nil
		return nil, fmt.Errorf("renderer %q served an unexpected plugin type %T", e.path, raw)
	}
	e.rpc = client
	return client, nil
}

// Render serializes the plan and hands it to the plugin.
func (e *Executor) Render(ctx context.Context, p *layout.Plan, scale float64) (pluginapi.RenderResult, error) {
	client, err := e.getRPCClient()
	if err != nil {
		return pluginapi.RenderResult{}, err
	}

	planJSON, err := json.Marshal(p)
	if err != nil {
		return pluginapi.RenderResult{}, fmt.Errorf("failed to marshal plan: %w", err)
	}

	return client.Render(ctx, pluginapi.RenderRequest{PlanJSON: planJSON, Scale: scale})
}

// Metadata fetches the plugin's self-description.
func (e *Executor) Metadata() (pluginapi.RendererInfo, error) {
	client, err := e.getRPCClient()
	if err != nil {
		return pluginapi.RendererInfo{}, err
	}
	return client.GetMetadata()
}

// Close kills the plugin process if one was started.
func (e *Executor) Close() {
	if e.client != nil {
		e.client.Kill()
		e.client = nil
		e.rpc = nil
	}
}
