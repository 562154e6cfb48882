// Package tool holds the gateway's fixed tool registry: the dispatch table
// MCP's tools/list and tools/call methods operate against. The registry is
// built once at startup and never mutated afterward.
package tool

import (
	"context"
	"encoding/json"

	"github.com/rescuegate/rescuegate/internal/config"
	"github.com/rescuegate/rescuegate/internal/rescuegroups"
)

// Visibility gates whether a tool appears in a lazy tools/list response.
// Hidden tools remain callable either way; they are only absent from the
// initial listing, discoverable instead via inspect_tool.
type Visibility string

const (
	Core   Visibility = "core"
	Hidden Visibility = "hidden"
)

// Deps is the narrow surface a tool handler needs from the engine. Kept as
// an interface, rather than an *engine.Engine pointer, so this package has
// no dependency on internal/engine and the two cannot form an import cycle.
type Deps interface {
	Client() *rescuegroups.Client
	Settings() *config.Settings
}

// Handler executes one tool call. rawArgs is the JSON object from
// params.arguments, or nil when the caller passed no arguments. The
// returned string is already-formatted Markdown (or JSON-as-text when the
// caller requested raw output, which handlers that support it check for
// internally).
type Handler func(ctx context.Context, deps Deps, rawArgs json.RawMessage) (string, error)

// Descriptor is one entry in the registry: everything tools/list and
// tools/call need for a single tool name.
type Descriptor struct {
	Name        string
	Description string
	Schema      json.RawMessage
	Visibility  Visibility
	Handler     Handler
}
