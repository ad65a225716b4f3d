// Package plugin provides the public API for huecard renderer plugins.
package plugin

import (
	"context"
	"net/rpc"

	"github.com/hashicorp/go-plugin"
)

// RendererRPC implements the go-plugin Plugin interface for renderers.
type RendererRPC struct {
	plugin.Plugin
	Impl Renderer
}

// Server returns an RPC server for this plugin.
func (p *RendererRPC) Server(*plugin.MuxBroker) (any, error) {
	return &RendererRPCServer{Impl: p.Impl}, nil
}

// Client returns an RPC client for this plugin.
func (p *RendererRPC) Client(_ *plugin.MuxBroker, c *rpc.Client) (any, error) {
	return &RendererRPCClient{client: c}, nil
}

// RendererRPCServer is the RPC server implementation for renderers.
type RendererRPCServer struct {
	Impl Renderer
}

// Render implements the RPC method for drawing a plan.
func (s *RendererRPCServer) Render(req RenderRequest, resp *RenderResult) error {
	result, err := s.Impl.Render(context.Background(), req)
	if err != nil {
		return err
	}
	*resp = result
	return nil
}

// GetMetadata implements the RPC method for fetching renderer metadata.
func (s *RendererRPCServer) GetMetadata(_ any, resp *RendererInfo) error {
	*resp = s.Impl.GetMetadata()
	return nil
}

// RendererRPCClient is the RPC client implementation for renderers.
type RendererRPCClient struct {
	client *rpc.Client
}

// Render calls the remote Render method.
func (c *RendererRPCClient) Render(_ context.Context, req RenderRequest) (RenderResult, error) {
	var result RenderResult
	if err := c.client.Call("Plugin.Render", req, &result); err != nil {
		return RenderResult{}, err
	}
	return result, nil
}

// GetMetadata calls the remote GetMetadata method.
func (c *RendererRPCClient) GetMetadata() (RendererInfo, error) {
	var info RendererInfo
	err := c.client.Call("Plugin.GetMetadata", new(any), &info)
	return info, err
}

// RPCError represents an error returned from an RPC call.
type RPCError struct {
	Message string
}

// Error implements the error interface.
func (e *RPCError) Error() string {
	return e.Message
}
