package handlers

import (
	"net/http"

	"github.com/iarchive/iarchive/internal/server/response"
	"github.com/iarchive/iarchive/pkg/catalog"
)

// HandleListCategories handles GET /api/v1/categories.
func (h *Handlers) HandleListCategories(w http.ResponseWriter, _ *http.Request) {
	categories := h.catalog.Categories().List()

	response.OK(w, map[string]any{
		"categories": categories,
		"count":      len(categories),
	})
}

// HandleGetCategory handles GET /api/v1/categories/{id}.
func (h *Handlers) HandleGetCategory(w http.ResponseWriter, _ *http.Request, rawID string) {
	id, ok := parseIntID(w, rawID)
	if !ok {
		return
	}

	category, err := h.catalog.Category(id)
	if err != nil {
		response.ErrorFromType(w, err)
		return
	}

	response.OK(w, category)
}

// HandleCreateCategory handles POST /api/v1/categories.
func (h *Handlers) HandleCreateCategory(w http.ResponseWriter, r *http.Request) {
	var category catalog.Category
	if !decodeBody(w, r, &category) {
		return
	}

	if category.Name == "" {
		response.BadRequest(w, "Invalid category", "name is required")
		return
	}

	created := h.catalog.AddCategory(category)
	response.Created(w, created)
}

// HandleUpdateCategory handles PATCH /api/v1/categories/{id}.
func (h *Handlers) HandleUpdateCategory(w http.ResponseWriter, r *http.Request, rawID string) {
	id, ok := parseIntID(w, rawID)
	if !ok {
		return
	}

	var patch catalog.CategoryPatch
	if !decodeBody(w, r, &patch) {
		return
	}

	if err := h.catalog.UpdateCategory(id, patch); err != nil {
		response.ErrorFromType(w, err)
		return
	}

	category, err := h.catalog.Category(id)
	if err != nil {
		response.ErrorFromType(w, err)
		return
	}
	response.OK(w, category)
}

// HandleDeleteCategory handles DELETE /api/v1/categories/{id}.
func (h *Handlers) HandleDeleteCategory(w http.ResponseWriter, _ *http.Request, rawID string) {
	id, ok := parseIntID(w, rawID)
	if !ok {
		return
	}

	if err := h.catalog.DeleteCategory(id); err != nil {
		response.ErrorFromType(w, err)
		return
	}

	response.NoContent(w)
}
