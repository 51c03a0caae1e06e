package handlers

import (
	"net/http"

	"github.com/iarchive/iarchive/internal/server/response"
	"github.com/iarchive/iarchive/pkg/catalog"
)

// HandleListRequests handles GET /api/v1/requests.
//
// An optional status query parameter narrows the list to pending, approved,
// or denied requests.
func (h *Handlers) HandleListRequests(w http.ResponseWriter, r *http.Request) {
	requests := h.catalog.Requests().List()

	if status := r.URL.Query().Get("status"); status != "" {
		filtered := make([]catalog.Request, 0, len(requests))
		for _, req := range requests {
			if string(req.Status) == status {
				filtered = append(filtered, req)
			}
		}
		requests = filtered
	}

	response.OK(w, map[string]any{
		"requests": requests,
		"count":    len(requests),
	})
}

// HandleGetRequest handles GET /api/v1/requests/{id}.
func (h *Handlers) HandleGetRequest(w http.ResponseWriter, _ *http.Request, rawID string) {
	id, ok := parseIntID(w, rawID)
	if !ok {
		return
	}

	request, err := h.catalog.Request(id)
	if err != nil {
		response.ErrorFromType(w, err)
		return
	}

	response.OK(w, request)
}

// HandleCreateRequest handles POST /api/v1/requests.
func (h *Handlers) HandleCreateRequest(w http.ResponseWriter, r *http.Request) {
	var request catalog.Request
	if !decodeBody(w, r, &request) {
		return
	}

	if request.User == "" || request.Material == "" {
		response.BadRequest(w, "Invalid request", "user and material are required")
		return
	}

	created := h.catalog.AddRequest(request)
	response.Created(w, created)
}

// HandleApproveRequest handles POST /api/v1/requests/{id}/approve.
func (h *Handlers) HandleApproveRequest(w http.ResponseWriter, _ *http.Request, rawID string) {
	h.decide(w, rawID, h.catalog.Approve)
}

// HandleDenyRequest handles POST /api/v1/requests/{id}/deny.
func (h *Handlers) HandleDenyRequest(w http.ResponseWriter, _ *http.Request, rawID string) {
	h.decide(w, rawID, h.catalog.Deny)
}

// decide runs an approve or deny decision and returns the updated request.
func (h *Handlers) decide(w http.ResponseWriter, rawID string, fn func(int) error) {
	id, ok := parseIntID(w, rawID)
	if !ok {
		return
	}

	if err := fn(id); err != nil {
		response.ErrorFromType(w, err)
		return
	}

	request, err := h.catalog.Request(id)
	if err != nil {
		response.ErrorFromType(w, err)
		return
	}
	response.OK(w, request)
}
