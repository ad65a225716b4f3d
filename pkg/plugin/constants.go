// Package plugin provides the public API for huecard renderer plugins.
package plugin

import (
	"github.com/hashicorp/go-plugin"
)

const (
	// ProtocolVersion defines the current renderer API version.
	// Format: MAJOR.MINOR.PATCH.
	// - Increment MAJOR for breaking changes (incompatible API changes).
	// - Increment MINOR for backward-compatible additions.
	// - Increment PATCH for backward-compatible bug fixes.
	ProtocolVersion = "0.0.1"

	// MinCompatibleVersion is the oldest protocol version this huecard version can work with.
	MinCompatibleVersion = "0.0.1"
)

// RendererPluginName is the dispense key renderer plugins serve under.
const RendererPluginName = "renderer"

// Handshake is the handshake configuration for go-plugin protocol.
// This ensures that renderer plugins can only connect to compatible hosts.
var Handshake = plugin.HandshakeConfig{
	ProtocolVersion:  0, // Major version from ProtocolVersion
	MagicCookieKey:   "HUECARD_PLUGIN",
	MagicCookieValue: "huecard_layout_render",
}
