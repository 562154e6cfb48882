package protocol

import "sync"

// Session tracks the initialize/tools-call sequence for one logical MCP
// channel: one per SSE-backed HTTP connection, or a single process-lifetime
// instance for stdio. It carries no authenticated identity or roles —
// there is one shared API key, not per-caller identities.
type Session struct {
	mu          sync.Mutex
	initialized bool
}

// NewSession returns a fresh, uninitialized session.
func NewSession() *Session {
	return &Session{}
}

// Initialize marks the session as having completed the initialize
// handshake. Idempotent: calling it twice is harmless.
func (s *Session) Initialize() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.initialized = true
}

// IsInitialized reports whether initialize has completed on this session.
func (s *Session) IsInitialized() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.initialized
}

// Reset clears initialization state. The transports do not call it: a
// closed SSE stream's session is discarded together with its connection.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.initialized = false
}
