package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/boardsync/internal/app/groups"
	"github.com/jsamuelsen11/boardsync/internal/ports"
)

const (
	statusOK       = "ok"
	statusReady    = "ready"
	statusNotReady = "not_ready"
)

// GroupStats reports the size of the group registry.
type GroupStats interface {
	Stats() groups.Stats
}

type livenessResponse struct {
	Status      string `json:"status"`
	Connections *int   `json:"connections,omitempty"`
	Groups      *int   `json:"groups,omitempty"`
}

type readinessResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// HealthHandler handles liveness and readiness HTTP endpoints.
type HealthHandler struct {
	registry ports.HealthRegistry
	stats    GroupStats
}

// NewHealthHandler creates a HealthHandler. stats may be nil, in which case
// liveness carries no membership counts.
func NewHealthHandler(registry ports.HealthRegistry, stats GroupStats) *HealthHandler {
	return &HealthHandler{registry: registry, stats: stats}
}

// Liveness handles GET /health/live. Always returns 200 OK.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	resp := livenessResponse{Status: statusOK}
	if h.stats != nil {
		s := h.stats.Stats()
		resp.Connections, resp.Groups = &s.Connections, &s.Groups
	}
	writeJSON(w, http.StatusOK, resp)
}

// Readiness handles GET /health/ready. Returns 200 if all checks pass,
// 503 if any check fails. An open store breaker makes the service not ready.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	results := h.registry.CheckAll(r.Context())

	resp := readinessResponse{Status: statusReady, Checks: make(map[string]string, len(results))}
	code := http.StatusOK
	for name, err := range results {
		if err == nil {
			resp.Checks[name] = statusOK
			continue
		}
		resp.Checks[name] = err.Error()
		resp.Status = statusNotReady
		code = http.StatusServiceUnavailable
	}

	writeJSON(w, code, resp)
}
