package handler

import (
	"net/http"
	"time"

	"github.com/grupoherz/conversation-dashboard/internal/store"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	store *store.Store
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(st *store.Store) *HealthHandler {
	return &HealthHandler{store: st}
}

// Health handles GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}

// Ready handles GET /ready. The service is ready once the first
// ingestion cycle has completed, successfully or not; the fail-soft
// policy means a failed fetch still yields a servable (empty) snapshot.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	snap := h.store.Current()
	if snap.FetchedAt.IsZero() {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "not ready",
			"reason": "awaiting first ingestion cycle",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status":      "ready",
		"last_ingest": snap.FetchedAt.Format(time.RFC3339),
	})
}
