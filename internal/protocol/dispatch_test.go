package protocol_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/rescuegate/rescuegate/internal/config"
	"github.com/rescuegate/rescuegate/internal/engine"
	"github.com/rescuegate/rescuegate/internal/protocol"
)

func newTestEngine(t *testing.T) *engine.Engine {
	t.Helper()
	settings := &config.Settings{
		APIKey:            "test-key",
		BaseURL:           config.DefaultBaseURL,
		RateLimitRequests: 60,
		RateLimitWindow:   60,
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	eng := engine.New(settings, logger, nil)
	t.Cleanup(eng.Close)
	return eng
}

func idOf(n int) json.RawMessage { b, _ := json.Marshal(n); return b }

func TestDispatchRejectsToolsListBeforeInitialize(t *testing.T) {
	eng := newTestEngine(t)
	d := eng.Dispatcher()
	sess := protocol.NewSession()

	resp, shouldRespond := d.Dispatch(t.Context(), sess, &protocol.Request{
		JSONRPC: "2.0", Method: "tools/list", ID: idOf(1),
	})
	if !shouldRespond {
		t.Fatal("expected a response")
	}
	if resp.Error == nil || resp.Error.Code != -32002 {
		t.Fatalf("got %+v, want NotInitialized error", resp.Error)
	}
}

func TestDispatchInitializeThenToolsList(t *testing.T) {
	eng := newTestEngine(t)
	d := eng.Dispatcher()
	sess := protocol.NewSession()

	initResp, _ := d.Dispatch(t.Context(), sess, &protocol.Request{
		JSONRPC: "2.0", Method: "initialize", ID: idOf(1),
	})
	if initResp.Error != nil {
		t.Fatalf("initialize failed: %+v", initResp.Error)
	}

	listResp, shouldRespond := d.Dispatch(t.Context(), sess, &protocol.Request{
		JSONRPC: "2.0", Method: "tools/list", ID: idOf(2),
	})
	if !shouldRespond {
		t.Fatal("expected a response")
	}
	if listResp.Error != nil {
		t.Fatalf("tools/list failed: %+v", listResp.Error)
	}
	result, ok := listResp.Result.(map[string]any)
	if !ok {
		t.Fatalf("result has unexpected shape: %#v", listResp.Result)
	}
	tools, ok := result["tools"].([]map[string]any)
	if !ok || len(tools) == 0 {
		t.Fatalf("expected a non-empty tools list, got %#v", result["tools"])
	}
}

func TestDispatchNotificationNeverResponds(t *testing.T) {
	eng := newTestEngine(t)
	d := eng.Dispatcher()
	sess := protocol.NewSession()

	_, shouldRespond := d.Dispatch(t.Context(), sess, &protocol.Request{
		JSONRPC: "2.0", Method: "initialized",
	})
	if shouldRespond {
		t.Fatal("a notification must never produce a response")
	}
}

func TestDispatchUnknownMethod(t *testing.T) {
	eng := newTestEngine(t)
	d := eng.Dispatcher()
	sess := protocol.NewSession()
	sess.Initialize()

	resp, _ := d.Dispatch(t.Context(), sess, &protocol.Request{
		JSONRPC: "2.0", Method: "bogus/method", ID: idOf(1),
	})
	if resp.Error == nil || resp.Error.Code != -32601 {
		t.Fatalf("got %+v, want MethodNotFound", resp.Error)
	}
}

func TestDispatchLogsFailedToolCallRedactingAPIKey(t *testing.T) {
	var buf bytes.Buffer
	settings := &config.Settings{
		APIKey:            "super-secret-key",
		BaseURL:           config.DefaultBaseURL,
		RateLimitRequests: 60,
		RateLimitWindow:   60,
	}
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	eng := engine.New(settings, logger, nil)
	t.Cleanup(eng.Close)
	d := eng.Dispatcher()
	sess := protocol.NewSession()
	sess.Initialize()

	params, _ := json.Marshal(protocol.ToolCallParams{Name: "get_animal_details", Arguments: json.RawMessage(`{}`)})
	resp, _ := d.Dispatch(t.Context(), sess, &protocol.Request{
		JSONRPC: "2.0", Method: "tools/call", ID: idOf(1), Params: params,
	})
	if resp.Error == nil {
		t.Fatal("expected a validation error for a missing animal_id")
	}

	logged := buf.String()
	if !strings.Contains(logged, "tool call failed") {
		t.Fatalf("expected a failure log line, got %q", logged)
	}
	if !strings.Contains(logged, "get_animal_details") {
		t.Fatalf("expected the tool name in the log line, got %q", logged)
	}
	if strings.Contains(logged, "super-secret-key") {
		t.Fatalf("log line leaked the API key: %q", logged)
	}
}

func TestDispatchUnknownToolName(t *testing.T) {
	eng := newTestEngine(t)
	d := eng.Dispatcher()
	sess := protocol.NewSession()
	sess.Initialize()

	params, _ := json.Marshal(protocol.ToolCallParams{Name: "does_not_exist"})
	resp, _ := d.Dispatch(t.Context(), sess, &protocol.Request{
		JSONRPC: "2.0", Method: "tools/call", ID: idOf(1), Params: params,
	})
	if resp.Error == nil || resp.Error.Code != -32602 {
		t.Fatalf("got %+v, want InvalidParams for an unknown tool", resp.Error)
	}
}
