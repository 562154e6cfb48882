// Package httpsrv implements the HTTP+SSE MCP transport: a synchronous
// POST / for simple request/response callers, and a GET /sse + POST
// /message pair for callers that want server-pushed responses over a
// long-lived stream. Middleware provides request-id enrichment, access
// logging, and a check of the single shared bearer token.
package httpsrv

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rescuegate/rescuegate/internal/ctxkey"
	"github.com/rescuegate/rescuegate/internal/metrics"
)

type requestIDKey struct{}

// RequestIDKey is the context key holding the per-request correlation id.
var RequestIDKey = requestIDKey{}

// requestIDMiddleware assigns a correlation id to every request and
// enriches the logger bound to its context. An incoming X-Request-ID is
// reused; otherwise a new UUID is generated.
func requestIDMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get("X-Request-ID")
			if id == "" {
				id = uuid.New().String()
			}
			enriched := logger.With("request_id", id)

			ctx := context.WithValue(r.Context(), RequestIDKey, id)
			ctx = context.WithValue(ctx, ctxkey.LoggerKey{}, enriched)

			w.Header().Set("X-Request-ID", id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// loggerFromContext retrieves the request-scoped logger, falling back to
// slog.Default if none was attached.
func loggerFromContext(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(ctxkey.LoggerKey{}).(*slog.Logger); ok {
		return l
	}
	return slog.Default()
}

// accessLogMiddleware traces every request with method, path, status, and
// latency, and records the same outcome into m's request counter/histogram.
// m may be nil in tests that don't care about metrics.
func accessLogMiddleware(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(sw, r)
			duration := time.Since(start)

			loggerFromContext(r.Context()).Info("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", sw.status,
				"duration", duration,
			)

			if m != nil {
				m.RequestsTotal.WithLabelValues(r.Method, strconv.Itoa(sw.status)).Inc()
				m.RequestDuration.WithLabelValues(r.Method).Observe(duration.Seconds())
			}
		})
	}
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// bearerAuthMiddleware enforces Authorization: Bearer <token> when a token
// is configured. Missing or invalid tokens get a bare 401 with no
// JSON-RPC body — the caller never reaches the protocol core at all.
func bearerAuthMiddleware(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if token == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") || strings.TrimPrefix(auth, "Bearer ") != token {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
