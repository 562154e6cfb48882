package protocol

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/rescuegate/rescuegate/internal/ctxkey"
	"github.com/rescuegate/rescuegate/internal/errs"
	"github.com/rescuegate/rescuegate/internal/logging"
	"github.com/rescuegate/rescuegate/internal/tool"
)

// ServerInfo is echoed in the initialize response.
type ServerInfo struct {
	Name    string
	Version string
}

// Dispatcher routes one decoded request to the right MCP method handler.
// It holds no per-session state itself — that lives in the Session passed
// to Dispatch — so one Dispatcher is shared by every transport and every
// concurrent session. logger is the fallback used when a request carries no
// context-scoped logger of its own (the stdio transport has no per-request
// HTTP context to enrich).
type Dispatcher struct {
	registry *tool.Registry
	deps     tool.Deps
	info     ServerInfo
	logger   *slog.Logger
}

// NewDispatcher builds a Dispatcher over a fixed tool registry and the
// dependencies its handlers need.
func NewDispatcher(registry *tool.Registry, deps tool.Deps, info ServerInfo, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{registry: registry, deps: deps, info: info, logger: logger}
}

// loggerFor prefers the request-scoped logger the HTTP transport attaches to
// ctx (carrying a request_id field), falling back to the
// dispatcher's own logger for transports that don't enrich a context.
func (d *Dispatcher) loggerFor(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(ctxkey.LoggerKey{}).(*slog.Logger); ok && l != nil {
		return l
	}
	return d.logger
}

// Dispatch decodes→routes→validates→dispatches→formats one request against
// a session, in a single ordered pass, and returns the response to write.
// For a notification (no id), the second return value is false and no
// response should be emitted.
func (d *Dispatcher) Dispatch(ctx context.Context, sess *Session, req *Request) (*Response, bool) {
	if req.IsNotification() {
		if req.Method == "initialized" {
			return nil, false
		}
		// Unknown notifications are silently ignored per JSON-RPC 2.0 —
		// there is no id to reply to even with an error.
		return nil, false
	}

	switch req.Method {
	case "initialize":
		sess.Initialize()
		return Result(req.ID, d.initializeResult()), true

	case "tools/list":
		if !sess.IsInitialized() {
			return Fault(req.ID, errs.NotInitialized()), true
		}
		return Result(req.ID, d.toolsList()), true

	case "tools/call":
		if !sess.IsInitialized() {
			return Fault(req.ID, errs.NotInitialized()), true
		}
		return d.toolsCall(ctx, req), true

	default:
		return Fault(req.ID, errs.MethodNotFound(req.Method)), true
	}
}

func (d *Dispatcher) initializeResult() map[string]any {
	return map[string]any{
		"protocolVersion": ProtocolVersion,
		"serverInfo": map[string]string{
			"name":    d.info.Name,
			"version": d.info.Version,
		},
		"capabilities": map[string]any{
			"tools": map[string]any{},
		},
	}
}

func (d *Dispatcher) toolsList() map[string]any {
	descriptors := d.registry.List(d.deps.Settings().Lazy)
	tools := make([]map[string]any, 0, len(descriptors))
	for _, desc := range descriptors {
		tools = append(tools, map[string]any{
			"name":        desc.Name,
			"description": desc.Description,
			"inputSchema": desc.Schema,
		})
	}
	return map[string]any{"tools": tools}
}

func (d *Dispatcher) toolsCall(ctx context.Context, req *Request) *Response {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return Fault(req.ID, errs.Validation("params", "invalid tools/call params: %v", err))
	}
	if params.Name == "" {
		return Fault(req.ID, errs.Validation("name", "tools/call requires a tool name"))
	}

	desc, ok := d.registry.Get(params.Name)
	if !ok {
		return Fault(req.ID, errs.Validation("name", "unknown tool %q", params.Name))
	}

	text, err := desc.Handler(ctx, d.deps, params.Arguments)
	if err != nil {
		e := errs.As(err)
		d.logFailure(ctx, req, params.Name, e)
		return Fault(req.ID, e)
	}

	return Result(req.ID, map[string]any{
		"content": []map[string]any{
			{"type": "text", "text": text},
		},
	})
}

// logFailure records a failed tool call with its request id, tool name, and
// error kind, redacting the configured upstream credentials out of the
// message first.
func (d *Dispatcher) logFailure(ctx context.Context, req *Request, toolName string, e *errs.Error) {
	logger := d.loggerFor(ctx)
	if logger == nil {
		return
	}
	settings := d.deps.Settings()
	msg := logging.Redact(e.Message, settings.APIKey)
	msg = logging.Redact(msg, settings.AuthToken)
	logger.Warn("tool call failed",
		"request_id", string(req.ID),
		"tool", toolName,
		"kind", string(e.Kind),
		"error", msg,
	)
}
