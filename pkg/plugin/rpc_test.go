package plugin

import (
	"context"
	"errors"
	"testing"
)

// Mock implementation for testing.
type mockRenderer struct {
	result    RenderResult
	metadata  RendererInfo
	renderErr error

	gotRequest RenderRequest
}

func (m *mockRenderer) Render(_ context.Context, req RenderRequest) (RenderResult, error) {
	m.gotRequest = req
	if m.renderErr != nil {
		return RenderResult{}, m.renderErr
	}
	return m.result, nil
}

func (m *mockRenderer) GetMetadata() RendererInfo {
	return m.metadata
}

// TestRendererRPC tests the renderer RPC wrapper.
func TestRendererRPC(t *testing.T) {
	mock := &mockRenderer{
		result: RenderResult{MIME: "image/png", Data: []byte{0x89, 'P', 'N', 'G'}},
		metadata: RendererInfo{
			Name:            "test-renderer",
			Version:         "1.0.0",
			ProtocolVersion: ProtocolVersion,
			Description:     "Test renderer plugin",
			MIME:            "image/png",
		},
	}

	rpc := &RendererRPC{Impl: mock}

	t.Run("Server", func(t *testing.T) {
		server, err := rpc.Server(nil)
		if err != nil {
			t.Fatalf("Server() error = %v", err)
		}
		if server == nil {
			t.Fatal("Server() returned nil server")
		}

		rpcServer, ok := server.(*RendererRPCServer)
		if !ok {
			t.Fatal("Server() returned wrong type")
		}
		if rpcServer.Impl != mock {
			t.Fatal("Server() impl not set correctly")
		}
	})

	t.Run("Client", func(t *testing.T) {
		client, err := rpc.Client(nil, nil)
		if err != nil {
			t.Fatalf("Client() error = %v", err)
		}
		if client == nil {
			t.Fatal("Client() returned nil client")
		}
	})
}

// TestRendererRPCServer tests the RPC server methods.
func TestRendererRPCServer(t *testing.T) {
	mock := &mockRenderer{
		result: RenderResult{MIME: "image/svg+xml", Data: []byte("<svg/>")},
		metadata: RendererInfo{
			Name:            "test",
			ProtocolVersion: ProtocolVersion,
		},
	}

	server := &RendererRPCServer{Impl: mock}

	t.Run("Render", func(t *testing.T) {
		req := RenderRequest{PlanJSON: []byte(`{"width":1200,"height":630,"elements":[]}`), Scale: 2}
		var resp RenderResult
		err := server.Render(req, &resp)
		if err != nil {
			t.Fatalf("Render() error = %v", err)
		}
		if resp.MIME != "image/svg+xml" {
			t.Errorf("Render() mime = %q, want %q", resp.MIME, "image/svg+xml")
		}
		if len(resp.Data) == 0 {
			t.Fatal("Render() returned empty document")
		}
		if string(mock.gotRequest.PlanJSON) != string(req.PlanJSON) {
			t.Error("Render() did not pass the plan through")
		}
		if mock.gotRequest.Scale != 2 {
			t.Errorf("Render() scale = %g, want 2", mock.gotRequest.Scale)
		}
	})

	t.Run("RenderError", func(t *testing.T) {
		failing := &RendererRPCServer{Impl: &mockRenderer{renderErr: errors.New("out of ink")}}
		var resp RenderResult
		if err := failing.Render(RenderRequest{}, &resp); err == nil {
			t.Fatal("Render() error = nil, want propagated error")
		}
	})

	t.Run("GetMetadata", func(t *testing.T) {
		var resp RendererInfo
		err := server.GetMetadata(nil, &resp)
		if err != nil {
			t.Fatalf("GetMetadata() error = %v", err)
		}
		if resp.Name != "test" {
			t.Errorf("GetMetadata() name = %q, want %q", resp.Name, "test")
		}
	})
}

// TestRPCError tests the RPCError type.
func TestRPCError(t *testing.T) {
	err := &RPCError{Message: "test error"}
	if err.Error() != "test error" {
		t.Errorf("RPCError.Error() = %q, want %q", err.Error(), "test error")
	}
}

// TestRendererInfo tests RendererInfo structure.
func TestRendererInfo(t *testing.T) {
	info := RendererInfo{
		Name:            "test-renderer",
		Version:         "2.0.0",
		ProtocolVersion: "0.0.1",
		Description:     "A test renderer",
		MIME:            "image/png",
	}

	if info.Name != "test-renderer" {
		t.Errorf("Name = %q, want %q", info.Name, "test-renderer")
	}
	if info.Version != "2.0.0" {
		t.Errorf("Version = %q, want %q", info.Version, "2.0.0")
	}
	if info.MIME != "image/png" {
		t.Errorf("MIME = %q, want %q", info.MIME, "image/png")
	}
}
