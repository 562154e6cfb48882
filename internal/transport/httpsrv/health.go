package httpsrv

import (
	"encoding/json"
	"net/http"
)

// healthResponse is the /health body: an overall status plus the cache
// entry count and the number of open SSE sessions.
type healthResponse struct {
	Status string         `json:"status"`
	Checks map[string]any `json:"checks"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{
		Status: "ok",
		Checks: map[string]any{
			"cache_entries":  s.health.CacheSize(),
			"sse_sessions":   s.sessions.size(),
			"upstream_ready": true,
		},
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
