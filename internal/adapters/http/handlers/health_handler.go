package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/formflow/internal/ports"
)

const (
	statusOK       = "ok"
	statusReady    = "ready"
	statusDegraded = "degraded"
	statusNotReady = "not_ready"
)

// HealthHandler handles liveness and readiness HTTP endpoints.
type HealthHandler struct {
	registry ports.HealthRegistry
	advisory map[string]bool
}

// NewHealthHandler creates a new HealthHandler with the given health registry.
// Failing checks named in advisory are reported and mark the service as
// degraded, but do not fail readiness. An open formula circuit breaker is
// such a case: the service keeps answering, and taking it out of rotation
// would stop the breaker from ever seeing a successful probe.
func NewHealthHandler(registry ports.HealthRegistry, advisory ...string) *HealthHandler {
	h := &HealthHandler{registry: registry, advisory: make(map[string]bool, len(advisory))}
	for _, name := range advisory {
		h.advisory[name] = true
	}
	return h
}

// Liveness handles GET /health/live. Always returns 200 OK.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": statusOK})
}

// Readiness handles GET /health/ready. Returns 200 if every required check
// passes, 503 otherwise.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	results := h.registry.CheckAll(r.Context())

	checks := make(map[string]string, len(results))
	healthy, degraded := true, false
	for name, err := range results {
		switch {
		case err == nil:
			checks[name] = statusOK
		case h.advisory[name]:
			checks[name] = err.Error()
			degraded = true
		default:
			checks[name] = err.Error()
			healthy = false
		}
	}

	status := statusReady
	code := http.StatusOK
	switch {
	case !healthy:
		status = statusNotReady
		code = http.StatusServiceUnavailable
	case degraded:
		status = statusDegraded
	}

	writeJSON(w, code, map[string]any{
		"status": status,
		"checks": checks,
	})
}
