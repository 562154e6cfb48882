// Package engine wires the gateway's global, process-wide singletons — the
// cache, the limiter, the upstream client, and the tool registry — into a
// single shared value passed by reference into every request handler,
// exactly as the design notes prescribe for this component.
package engine

import (
	"log/slog"

	"github.com/rescuegate/rescuegate/internal/cache"
	"github.com/rescuegate/rescuegate/internal/config"
	"github.com/rescuegate/rescuegate/internal/metrics"
	"github.com/rescuegate/rescuegate/internal/protocol"
	"github.com/rescuegate/rescuegate/internal/ratelimit"
	"github.com/rescuegate/rescuegate/internal/rescuegroups"
	"github.com/rescuegate/rescuegate/internal/tool"
)

// Name and Version identify this gateway in the MCP initialize handshake.
const (
	Name    = "rescuegate"
	Version = "0.1.0"
)

// Engine bundles everything constructed once at startup. It implements
// tool.Deps so tool handlers can reach the client and settings without
// depending on this package directly.
type Engine struct {
	settings *config.Settings
	cache    *cache.Cache
	limiter  ratelimit.Limiter
	client   *rescuegroups.Client
	registry *tool.Registry
	logger   *slog.Logger
}

// New constructs an Engine from validated settings. The returned Engine
// owns the cache's background sweep goroutine; call Close on shutdown.
// logger and m may both be nil — the engine and its dispatcher degrade to
// unlogged/unmetered operation rather than requiring every caller (notably
// the CLI's one-shot tool invocations) to stand up a metrics registry.
func New(settings *config.Settings, logger *slog.Logger, m *metrics.Metrics) *Engine {
	c := cache.New(cache.DefaultTTL, cache.DefaultMaxEntries)
	limiter := ratelimit.New(settings.RateLimitRequests, settings.RateLimitWindow)
	client := rescuegroups.New(settings.BaseURL, settings.APIKey, c, limiter)
	client.SetMetrics(m)

	return &Engine{
		settings: settings,
		cache:    c,
		limiter:  limiter,
		client:   client,
		registry: tool.NewRegistry(),
		logger:   logger,
	}
}

// Settings implements tool.Deps.
func (e *Engine) Settings() *config.Settings { return e.settings }

// Client implements tool.Deps.
func (e *Engine) Client() *rescuegroups.Client { return e.client }

// Registry returns the fixed tool registry.
func (e *Engine) Registry() *tool.Registry { return e.registry }

// Dispatcher builds a protocol.Dispatcher bound to this engine's registry
// and dependencies.
func (e *Engine) Dispatcher() *protocol.Dispatcher {
	return protocol.NewDispatcher(e.registry, e, protocol.ServerInfo{Name: Name, Version: Version}, e.logger)
}

// CacheSize reports the live cache entry count, used by the health check.
func (e *Engine) CacheSize() int { return e.cache.Size() }

// Close releases the engine's background resources.
func (e *Engine) Close() {
	e.cache.Stop()
}

var _ tool.Deps = (*Engine)(nil)
