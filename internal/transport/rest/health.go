package rest

import (
	"encoding/json"
	"net/http"
	"time"
)

// leadCounter is the minimal view of the lead store a health check needs.
type leadCounter interface {
	Count() int
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	leads   leadCounter
	version string
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(leads leadCounter, version string) *HealthHandler {
	return &HealthHandler{leads: leads, version: version}
}

// HealthResponse is the JSON response for /live and /health.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status string `json:"status"`
	Leads  *int   `json:"leads,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Health reports the version and the size of the lead store.
func (h *HealthHandler) Health(w http.ResponseWriter, _ *http.Request) {
	n := h.leads.Count()
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:  "ok",
		Version: h.version,
		Components: map[string]CompStatus{
			"store": {Status: "ok", Leads: &n},
		},
		Timestamp: time.Now(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
