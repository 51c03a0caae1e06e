// Package handlers provides HTTP request handlers for the archive API.
package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/iarchive/iarchive/internal/server/response"
	"github.com/iarchive/iarchive/pkg/catalog"
	"github.com/iarchive/iarchive/pkg/session"
)

// Handlers provides access to all HTTP handlers.
type Handlers struct {
	catalog  catalog.Catalog
	sessions *session.Manager
	logger   *zerolog.Logger
}

// New creates a new Handlers instance.
func New(cat catalog.Catalog, sessions *session.Manager, logger *zerolog.Logger) *Handlers {
	return &Handlers{
		catalog:  cat,
		sessions: sessions,
		logger:   logger,
	}
}

// decodeBody decodes a JSON request body into v, writing a 400 response on
// failure. Reports whether decoding succeeded.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		response.BadRequest(w, "Invalid JSON body", err.Error())
		return false
	}
	return true
}

// parseIntID parses a numeric path id, writing a 400 response on failure.
func parseIntID(w http.ResponseWriter, raw string) (int, bool) {
	id, err := strconv.Atoi(raw)
	if err != nil {
		response.BadRequest(w, "Invalid id", "id must be numeric: "+raw)
		return 0, false
	}
	return id, true
}
