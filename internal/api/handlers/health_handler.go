package handlers

import "net/http"

// HealthHandler reports liveness and the size of the loaded catalog
type HealthHandler struct {
	catalogSize int
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(catalogSize int) *HealthHandler {
	return &HealthHandler{catalogSize: catalogSize}
}

// Health handles GET /health and GET /api/health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"status":         "ok",
		"message":        "CPAP Mask Selector API is running",
		"catalogEntries": h.catalogSize,
	})
}
