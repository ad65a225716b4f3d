// svgz - Compressed SVG renderer (Huecard Renderer Plugin)
//
// Renders layout plans to gzip-compressed SVG (.svgz), the format web
// servers can ship directly with Content-Encoding: gzip. Cards compress
// to roughly a quarter of their plain SVG size.
//
// Build:
//   go build -o svgz
//
// Usage:
//   huecard compare "Rose Pink" "Peacock Blue" --renderer ./svgz -o card.svgz
//   huecard renderer info --renderer ./svgz
//
// Author: Huecard Contributors
// License: MIT

package main

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/hashicorp/go-plugin"

	"github.com/jmylchreest/huecard/internal/layout"
	"github.com/jmylchreest/huecard/internal/svg"
	pluginapi "github.com/jmylchreest/huecard/pkg/plugin"
)

// svgzMIME is the unregistered but widely used type for .svgz files.
const svgzMIME = "image/svg+xml-compressed"

// SVGZPlugin implements the pluginapi.Renderer interface.
type SVGZPlugin struct{}

// Render decodes the plan, encodes it as SVG and gzips the document.
func (p *SVGZPlugin) Render(_ context.Context, req pluginapi.RenderRequest) (pluginapi.RenderResult, error) {
	var plan layout.Plan
	if err := json.Unmarshal(req.PlanJSON, &plan); err != nil {
		return pluginapi.RenderResult{}, fmt.Errorf("failed to decode plan: %w", err)
	}

	doc, err := svg.Encode(&plan)
	if err != nil {
		return pluginapi.RenderResult{}, err
	}

	var buf bytes.Buffer
	zw, err := gzip.NewWriterLevel(&buf, gzip.BestCompression)
	if err != nil {
		return pluginapi.RenderResult{}, err
	}
	if _, err := zw.Write(doc); err != nil {
		return pluginapi.RenderResult{}, fmt.Errorf("failed to compress document: %w", err)
	}
	if err := zw.Close(); err != nil {
		return pluginapi.RenderResult{}, fmt.Errorf("failed to compress document: %w", err)
	}

	return pluginapi.RenderResult{MIME: svgzMIME, Data: buf.Bytes()}, nil
}

// GetMetadata returns plugin metadata.
func (p *SVGZPlugin) GetMetadata() pluginapi.RendererInfo {
	return pluginapi.RendererInfo{
		Name:            "svgz",
		Version:         "0.0.1",
		ProtocolVersion: pluginapi.ProtocolVersion,
		Description:     "Render cards as gzip-compressed SVG documents",
		MIME:            svgzMIME,
	}
}

func main() {
	// Handle --plugin-info flag
	if len(os.Args) > 1 && os.Args[1] == "--plugin-info" {
		p := &SVGZPlugin{}
		info := p.GetMetadata()

		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(info); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding plugin info: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	// Serve the plugin using go-plugin
	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: pluginapi.Handshake,
		Plugins: map[string]plugin.Plugin{
			pluginapi.RendererPluginName: &pluginapi.RendererRPC{
				Impl: &SVGZPlugin{},
			},
		},
	})
}
