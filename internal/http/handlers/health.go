package handlers

import (
	"net/http"
	"time"

	"github.com/careerconnect/careerconnect-be/internal/http/respond"
)

// HealthHandler returns uptime and basic status.
type HealthHandler struct {
	startedAt time.Time
}

// NewHealthHandler creates a health endpoint handler.
func NewHealthHandler(startedAt time.Time) *HealthHandler {
	return &HealthHandler{startedAt: startedAt}
}

// Handle reports process liveness.
func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	respond.Raw(w, http.StatusOK, map[string]string{
		"status": "ok",
		"uptime": time.Since(h.startedAt).Truncate(time.Second).String(),
	})
}

// Root answers the bare liveness probe with plain text.
func Root(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Server is up and running!"))
}
