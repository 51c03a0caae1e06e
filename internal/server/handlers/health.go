package handlers

import (
	"net/http"

	"github.com/iarchive/iarchive/internal/server/response"
)

// HandleHealth handles GET /api/v1/health.
func (h *Handlers) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	response.OK(w, map[string]any{
		"status":  "healthy",
		"service": "iarchive-api",
		"version": "v1",
	})
}
