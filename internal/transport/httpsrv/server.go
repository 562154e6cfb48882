package httpsrv

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/rescuegate/rescuegate/internal/metrics"
	"github.com/rescuegate/rescuegate/internal/protocol"
)

// tracerName and meterName identify this transport's OTel instrumentation.
// They resolve against whatever global providers are installed — the
// no-op default outside --dev mode, the stdout exporters set up by
// internal/tracing under it.
const (
	tracerName = "github.com/rescuegate/rescuegate/internal/transport/httpsrv"
	meterName  = tracerName
)

// maxBodyBytes caps a single JSON-RPC HTTP body at 1MB so an oversized
// payload cannot exhaust memory; bytes past the cap are not read.
const maxBodyBytes = 1 << 20

// Dispatcher is the narrow surface this transport needs from the engine.
type Dispatcher interface {
	Dispatch(ctx context.Context, sess *protocol.Session, req *protocol.Request) (*protocol.Response, bool)
}

// HealthChecker reports the engine's liveness for the /health endpoint.
type HealthChecker interface {
	CacheSize() int
}

// Server serves the HTTP+SSE MCP transport: a synchronous POST / for
// simple callers, plus the GET /sse + POST /message pair for callers that
// want asynchronous, server-pushed delivery over a persistent stream.
type Server struct {
	dispatcher Dispatcher
	health     HealthChecker
	metrics    *metrics.Metrics
	logger     *slog.Logger
	authToken  string

	defaultSession *protocol.Session
	sessions       *sseRegistry

	tracer         trace.Tracer
	requestCounter metric.Int64Counter
}

// New builds a Server. authToken, when non-empty, gates every route behind
// Authorization: Bearer <authToken>.
func New(dispatcher Dispatcher, health HealthChecker, m *metrics.Metrics, logger *slog.Logger, authToken string) *Server {
	meter := otel.Meter(meterName)
	requestCounter, _ := meter.Int64Counter(
		"mcp_requests_total",
		metric.WithDescription("MCP requests dispatched over the HTTP transport, by method."),
	)
	return &Server{
		dispatcher:     dispatcher,
		health:         health,
		metrics:        m,
		logger:         logger,
		authToken:      authToken,
		defaultSession: protocol.NewSession(),
		sessions:       newSSERegistry(),
		tracer:         otel.Tracer(tracerName),
		requestCounter: requestCounter,
	}
}

// Handler builds the routed, middleware-wrapped http.Handler to pass to
// http.Server.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleRoot)
	mux.HandleFunc("/sse", s.handleSSE)
	mux.HandleFunc("/message", s.handleMessage)
	mux.HandleFunc("/health", s.handleHealth)
	mux.Handle("/metrics", promhttp.Handler())

	var handler http.Handler = mux
	handler = bearerAuthMiddleware(s.authToken)(handler)
	handler = accessLogMiddleware(s.metrics)(handler)
	handler = requestIDMiddleware(s.logger)(handler)
	return handler
}

// recordDispatch starts a span for one dispatched JSON-RPC method, counts
// it, and marks the span failed when the dispatcher returned a JSON-RPC
// error. Callers must End() the returned span.
func (s *Server) recordDispatch(ctx context.Context, method string) (context.Context, trace.Span) {
	ctx, span := s.tracer.Start(ctx, "mcp."+method)
	s.requestCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("method", method)))
	return ctx, span
}

func recordDispatchOutcome(span trace.Span, resp *protocol.Response) {
	if resp != nil && resp.Error != nil {
		span.SetStatus(codes.Error, resp.Error.Message)
	}
}

// handleRoot serves a single synchronous JSON-RPC call: POST body in,
// JSON-RPC response body out, sharing one implicit session across calls
// since this path carries no session identifier of its own.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		http.Error(w, "failed to read body", http.StatusBadRequest)
		return
	}

	req, parseErr := protocol.ParseRequest(bytes.TrimSpace(body))
	w.Header().Set("Content-Type", "application/json")
	if parseErr != nil {
		writeJSON(w, protocol.Fault(nil, parseErr))
		return
	}

	ctx, span := s.recordDispatch(r.Context(), req.Method)
	defer span.End()

	resp, shouldRespond := s.dispatcher.Dispatch(ctx, s.defaultSession, req)
	recordDispatchOutcome(span, resp)
	s.metrics.CacheSize.Set(float64(s.health.CacheSize()))
	if !shouldRespond {
		w.WriteHeader(http.StatusAccepted)
		return
	}
	writeJSON(w, resp)
}

func writeJSON(w http.ResponseWriter, resp *protocol.Response) {
	b, err := json.Marshal(resp)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Write(b)
}
