// Package plugin provides the public API for huecard renderer plugins.
package plugin

// RenderRequest carries one serialized drawing plan to a renderer.
type RenderRequest struct {
	// PlanJSON is the layout plan in its JSON wire form: width, height,
	// background colour and a kind-discriminated element list.
	PlanJSON []byte `json:"plan"`

	// Scale multiplies the plan's canvas size for raster output.
	// Zero means 1.
	Scale float64 `json:"scale,omitempty"`
}

// RenderResult is one rendered document.
type RenderResult struct {
	MIME string `json:"mime"`
	Data []byte `json:"data"`
}

// RendererInfo contains metadata about a renderer plugin.
type RendererInfo struct {
	Name            string `json:"name"`
	Version         string `json:"version"`
	ProtocolVersion string `json:"protocol_version"`
	Description     string `json:"description"`
	MIME            string `json:"mime"` // content type of rendered documents
}
