package handlers

import (
	"net/http"

	"github.com/iarchive/iarchive/internal/server/response"
	"github.com/iarchive/iarchive/pkg/catalog"
)

// HandleListUsers handles GET /api/v1/users.
func (h *Handlers) HandleListUsers(w http.ResponseWriter, _ *http.Request) {
	users := h.catalog.Users().List()

	response.OK(w, map[string]any{
		"users": users,
		"count": len(users),
	})
}

// HandleGetUser handles GET /api/v1/users/{id}.
func (h *Handlers) HandleGetUser(w http.ResponseWriter, _ *http.Request, rawID string) {
	id, ok := parseIntID(w, rawID)
	if !ok {
		return
	}

	user, err := h.catalog.User(id)
	if err != nil {
		response.ErrorFromType(w, err)
		return
	}

	response.OK(w, user)
}

// HandleCreateUser handles POST /api/v1/users.
func (h *Handlers) HandleCreateUser(w http.ResponseWriter, r *http.Request) {
	var user catalog.User
	if !decodeBody(w, r, &user) {
		return
	}

	if user.Name == "" || user.Email == "" {
		response.BadRequest(w, "Invalid user", "name and email are required")
		return
	}

	created := h.catalog.AddUser(user)
	response.Created(w, created)
}

// HandleUpdateUser handles PATCH /api/v1/users/{id}.
func (h *Handlers) HandleUpdateUser(w http.ResponseWriter, r *http.Request, rawID string) {
	id, ok := parseIntID(w, rawID)
	if !ok {
		return
	}

	var patch catalog.UserPatch
	if !decodeBody(w, r, &patch) {
		return
	}

	if err := h.catalog.UpdateUser(id, patch); err != nil {
		response.ErrorFromType(w, err)
		return
	}

	user, err := h.catalog.User(id)
	if err != nil {
		response.ErrorFromType(w, err)
		return
	}
	response.OK(w, user)
}

// HandleDeleteUser handles DELETE /api/v1/users/{id}.
func (h *Handlers) HandleDeleteUser(w http.ResponseWriter, _ *http.Request, rawID string) {
	id, ok := parseIntID(w, rawID)
	if !ok {
		return
	}

	if err := h.catalog.DeleteUser(id); err != nil {
		response.ErrorFromType(w, err)
		return
	}

	response.NoContent(w)
}
