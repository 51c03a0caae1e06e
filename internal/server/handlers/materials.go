package handlers

import (
	"net/http"

	"github.com/iarchive/iarchive/internal/server/response"
	"github.com/iarchive/iarchive/pkg/catalog"
	"github.com/iarchive/iarchive/pkg/catalog/query"
)

// HandleListMaterials handles GET /api/v1/materials.
//
// Query parameters mirror the portal's browse page: search (case-insensitive
// over title, description, and subjects), category (exact name or "All"),
// sort (newest|oldest), and page (1-based). The response carries the page
// slice plus the pagination block.
func (h *Handlers) HandleListMaterials(w http.ResponseWriter, r *http.Request) {
	params := query.ParseParams(r.URL.Query())
	result := query.Apply(h.catalog.Materials().List(), params)

	response.OK(w, result)
}

// HandleGetMaterial handles GET /api/v1/materials/{id}.
func (h *Handlers) HandleGetMaterial(w http.ResponseWriter, _ *http.Request, id string) {
	material, err := h.catalog.Material(id)
	if err != nil {
		response.ErrorFromType(w, err)
		return
	}

	response.OK(w, material)
}

// HandleCreateMaterial handles POST /api/v1/materials.
func (h *Handlers) HandleCreateMaterial(w http.ResponseWriter, r *http.Request) {
	var material catalog.Material
	if !decodeBody(w, r, &material) {
		return
	}

	if material.Title == "" {
		response.BadRequest(w, "Invalid material", "title is required")
		return
	}
	if material.AccessLevel != "" && !material.AccessLevel.Valid() {
		response.BadRequest(w, "Invalid material", "unknown access level: "+string(material.AccessLevel))
		return
	}

	created := h.catalog.AddMaterial(material)
	response.Created(w, created)
}

// HandleUpdateMaterial handles PATCH /api/v1/materials/{id}.
func (h *Handlers) HandleUpdateMaterial(w http.ResponseWriter, r *http.Request, id string) {
	var patch catalog.MaterialPatch
	if !decodeBody(w, r, &patch) {
		return
	}

	if patch.AccessLevel != nil && !patch.AccessLevel.Valid() {
		response.BadRequest(w, "Invalid material", "unknown access level: "+string(*patch.AccessLevel))
		return
	}

	if err := h.catalog.UpdateMaterial(id, patch); err != nil {
		response.ErrorFromType(w, err)
		return
	}

	material, err := h.catalog.Material(id)
	if err != nil {
		// Permissive catalogs reach here for unknown ids.
		response.ErrorFromType(w, err)
		return
	}
	response.OK(w, material)
}

// HandleDeleteMaterial handles DELETE /api/v1/materials/{id}.
func (h *Handlers) HandleDeleteMaterial(w http.ResponseWriter, _ *http.Request, id string) {
	if err := h.catalog.DeleteMaterial(id); err != nil {
		response.ErrorFromType(w, err)
		return
	}

	response.NoContent(w)
}

// HandleRecordView handles POST /api/v1/materials/{id}/view.
func (h *Handlers) HandleRecordView(w http.ResponseWriter, _ *http.Request, id string) {
	if err := h.catalog.RecordView(id); err != nil {
		response.ErrorFromType(w, err)
		return
	}

	material, err := h.catalog.Material(id)
	if err != nil {
		response.ErrorFromType(w, err)
		return
	}
	response.OK(w, material)
}
