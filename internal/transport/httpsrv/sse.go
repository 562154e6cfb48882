package httpsrv

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/google/uuid"

	"github.com/rescuegate/rescuegate/internal/protocol"
)

// sseConn is one open GET /sse stream and its companion POST /message
// endpoint. Responses dispatched for this session are pushed onto out and
// relayed to the stream by the goroutine serving the GET request.
type sseConn struct {
	id      string
	session *protocol.Session
	out     chan []byte
}

// sseRegistry tracks live SSE connections, keyed by session id, holding
// one queue of pending frames per session.
type sseRegistry struct {
	mu    sync.Mutex
	conns map[string]*sseConn
}

func newSSERegistry() *sseRegistry {
	return &sseRegistry{conns: make(map[string]*sseConn)}
}

func (r *sseRegistry) register() *sseConn {
	c := &sseConn{
		id:      uuid.New().String(),
		session: protocol.NewSession(),
		out:     make(chan []byte, 64),
	}
	r.mu.Lock()
	r.conns[c.id] = c
	r.mu.Unlock()
	return c
}

func (r *sseRegistry) get(id string) (*sseConn, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.conns[id]
	return c, ok
}

func (r *sseRegistry) unregister(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.conns[id]; ok {
		close(c.out)
		delete(r.conns, id)
	}
}

func (r *sseRegistry) size() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.conns)
}

// handleSSE opens a long-lived event stream. The first event is an
// "endpoint" event naming the per-session URL the client must POST
// subsequent JSON-RPC requests to; every dispatch response for this
// session is then delivered as a "message" event on this same stream.
func (s *Server) handleSSE(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	conn := s.sessions.register()
	defer s.sessions.unregister(conn.id)
	s.metrics.ActiveSessions.Set(float64(s.sessions.size()))
	defer s.metrics.ActiveSessions.Set(float64(s.sessions.size() - 1))

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	fmt.Fprintf(w, "event: endpoint\ndata: /message?session=%s\n\n", conn.id)
	flusher.Flush()

	ctx := r.Context()
	for {
		select {
		case frame, ok := <-conn.out:
			if !ok {
				return
			}
			fmt.Fprintf(w, "event: message\ndata: %s\n\n", frame)
			flusher.Flush()
		case <-ctx.Done():
			return
		}
	}
}

// handleMessage accepts a JSON-RPC request for an existing SSE session.
// The request is acknowledged immediately with 202 Accepted; the actual
// result is delivered asynchronously over the matching SSE stream.
func (s *Server) handleMessage(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session")
	conn, ok := s.sessions.get(sessionID)
	if !ok {
		http.Error(w, "unknown session", http.StatusNotFound)
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		http.Error(w, "failed to read body", http.StatusBadRequest)
		return
	}

	req, parseErr := protocol.ParseRequest(bytes.TrimSpace(body))
	ctx := r.Context()
	if parseErr != nil {
		deliver(conn, protocol.Fault(nil, parseErr))
		w.WriteHeader(http.StatusAccepted)
		return
	}

	go s.dispatchAndDeliver(context.WithoutCancel(ctx), conn, req)
	w.WriteHeader(http.StatusAccepted)
}

func (s *Server) dispatchAndDeliver(ctx context.Context, conn *sseConn, req *protocol.Request) {
	ctx, span := s.recordDispatch(ctx, req.Method)
	defer span.End()

	resp, shouldRespond := s.dispatcher.Dispatch(ctx, conn.session, req)
	recordDispatchOutcome(span, resp)
	s.metrics.CacheSize.Set(float64(s.health.CacheSize()))
	if !shouldRespond {
		return
	}
	deliver(conn, resp)
}

func deliver(conn *sseConn, resp *protocol.Response) {
	b, err := json.Marshal(resp)
	if err != nil {
		return
	}
	defer func() { recover() }() // conn.out may already be closed if the stream just disconnected
	conn.out <- b
}
