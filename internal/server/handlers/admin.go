package handlers

import (
	"net/http"

	"github.com/iarchive/iarchive/internal/server/response"
)

// HandleListActivity handles GET /api/v1/activity.
func (h *Handlers) HandleListActivity(w http.ResponseWriter, _ *http.Request) {
	entries := h.catalog.Activity().List()

	response.OK(w, map[string]any{
		"activity": entries,
		"count":    len(entries),
	})
}

// HandleStats handles GET /api/v1/stats.
func (h *Handlers) HandleStats(w http.ResponseWriter, _ *http.Request) {
	response.OK(w, h.catalog.Stats())
}
