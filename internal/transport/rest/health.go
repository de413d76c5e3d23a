package rest

import (
	"net/http"
	"time"

	"github.com/heartmarshall/daumdict/internal/domain"
)

// HealthHandler serves the health check endpoint.
type HealthHandler struct {
	version string
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(version string) *HealthHandler {
	return &HealthHandler{version: version}
}

// HealthResponse is the JSON response for /api/health.
type HealthResponse struct {
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Version   string    `json:"version,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Health always returns 200. It does not probe the dictionary site, so an
// upstream outage does not take the service out of rotation.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Message:   domain.MsgServiceHealth,
		Version:   h.version,
		Timestamp: time.Now(),
	})
}
