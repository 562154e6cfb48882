package engine

import (
	"io"
	"log/slog"
	"testing"

	"github.com/rescuegate/rescuegate/internal/config"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestSettings() *config.Settings {
	return &config.Settings{
		APIKey:            "test-key",
		BaseURL:           config.DefaultBaseURL,
		RateLimitRequests: 60,
		RateLimitWindow:   60,
	}
}

func TestNewWiresDependenciesAndClosesCleanly(t *testing.T) {
	e := New(newTestSettings(), testLogger(), nil)
	defer e.Close()

	if e.Settings().APIKey != "test-key" {
		t.Errorf("Settings().APIKey = %q, want test-key", e.Settings().APIKey)
	}
	if e.Client() == nil {
		t.Error("Client() returned nil")
	}
	if e.Registry() == nil {
		t.Error("Registry() returned nil")
	}
	if e.CacheSize() != 0 {
		t.Errorf("CacheSize() = %d, want 0 for a freshly built engine", e.CacheSize())
	}
}

func TestDispatcherReturnsUsableDispatcher(t *testing.T) {
	e := New(newTestSettings(), testLogger(), nil)
	defer e.Close()

	if d := e.Dispatcher(); d == nil {
		t.Error("Dispatcher() returned nil")
	}
}

func TestRegistryListsToolsByLaziness(t *testing.T) {
	e := New(newTestSettings(), testLogger(), nil)
	defer e.Close()

	core := e.Registry().List(true)
	all := e.Registry().List(false)
	if len(core) == 0 {
		t.Fatal("expected at least one core tool")
	}
	if len(all) <= len(core) {
		t.Fatalf("full list (%d) should be larger than the lazy core list (%d)", len(all), len(core))
	}
}
