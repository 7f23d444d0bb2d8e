package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/osse101/Adventure_Go/internal/logger"
)

const (
	readinessTimeout = 2 * time.Second

	StatusOK          = "ok"
	StatusUnavailable = "unavailable"

	MsgInMemoryStorage   = "in-memory storage"
	MsgDependencyFailure = "dependency check failed"
)

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status  string            `json:"status"`
	Message string            `json:"message,omitempty"`
	Checks  map[string]string `json:"checks,omitempty"`
}

// ReadinessCheck is one backing store probed by /readyz
type ReadinessCheck struct {
	Name string
	Ping func(ctx context.Context) error
}

// HandleHealthz provides a basic liveness check
// @Summary Liveness check
// @Description Returns OK if the process is serving
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: StatusOK})
	}
}

// HandleReadyz pings every configured store. With none configured the
// in-memory adapters are always ready.
// @Summary Readiness check
// @Description Pings postgres and redis when configured
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readyz [get]
func HandleReadyz(checks ...ReadinessCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if len(checks) == 0 {
			respondJSON(w, http.StatusOK, HealthResponse{Status: StatusOK, Message: MsgInMemoryStorage})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		resp := HealthResponse{Status: StatusOK, Checks: make(map[string]string, len(checks))}
		status := http.StatusOK
		for _, c := range checks {
			if err := c.Ping(ctx); err != nil {
				logger.FromContext(ctx).Error("Readiness check failed", "check", c.Name, "error", err)
				resp.Checks[c.Name] = StatusUnavailable
				resp.Status = StatusUnavailable
				resp.Message = MsgDependencyFailure
				status = http.StatusServiceUnavailable
				continue
			}
			resp.Checks[c.Name] = StatusOK
		}
		respondJSON(w, status, resp)
	}
}
