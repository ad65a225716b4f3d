// Package plugin provides the public API for huecard renderer plugins.
// External renderers should import this package instead of internal packages.
package plugin

import (
	"context"
)

// Renderer is the interface that renderer plugins must implement for go-plugin RPC.
type Renderer interface {
	// Render draws one plan and returns the encoded document.
	Render(ctx context.Context, req RenderRequest) (RenderResult, error)

	// GetMetadata returns renderer metadata.
	GetMetadata() RendererInfo
}
