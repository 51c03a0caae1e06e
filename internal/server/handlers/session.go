package handlers

import (
	"net/http"

	"github.com/iarchive/iarchive/internal/server/response"
	"github.com/iarchive/iarchive/pkg/catalog"
)

// loginRequest is the POST /api/v1/session body.
type loginRequest struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// HandleGetSession handles GET /api/v1/session.
func (h *Handlers) HandleGetSession(w http.ResponseWriter, _ *http.Request) {
	sess, ok := h.sessions.Current()
	if !ok {
		response.Unauthorized(w, "No active session", "")
		return
	}

	response.OK(w, sess)
}

// HandleLogin handles POST /api/v1/session.
func (h *Handlers) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var body loginRequest
	if !decodeBody(w, r, &body) {
		return
	}

	sess, err := h.sessions.Login(body.Email, body.Role)
	if err != nil {
		response.ErrorFromType(w, err)
		return
	}

	h.catalog.LogActivity("User login", "", sess.Email, catalog.ActivityAuth)
	response.Created(w, sess)
}

// HandleLogout handles DELETE /api/v1/session.
func (h *Handlers) HandleLogout(w http.ResponseWriter, _ *http.Request) {
	if sess, ok := h.sessions.Current(); ok {
		h.catalog.LogActivity("User logout", "", sess.Email, catalog.ActivityAuth)
	}

	h.sessions.Logout()
	response.NoContent(w)
}

// HandleToggleSaved handles POST /api/v1/session/saved/{id}.
func (h *Handlers) HandleToggleSaved(w http.ResponseWriter, _ *http.Request, itemID string) {
	sess, err := h.sessions.ToggleSave(itemID)
	if err != nil {
		response.ErrorFromType(w, err)
		return
	}

	response.OK(w, sess)
}
