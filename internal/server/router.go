package server

import (
	"net/http"
	"strings"

	"github.com/iarchive/iarchive/internal/server/handlers"
	"github.com/iarchive/iarchive/internal/server/middleware"
	"github.com/iarchive/iarchive/internal/server/response"
)

// Handler returns the configured http.Handler with middleware chain applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	h := handlers.New(s.catalog, s.sessions, s.logger)

	s.registerRoutes(mux, h)

	return s.applyMiddleware(mux)
}

// registerRoutes registers all HTTP routes.
func (s *Server) registerRoutes(mux *http.ServeMux, h *handlers.Handlers) {
	prefix := s.config.PathPrefix

	// Favicon handler (return 204 No Content to avoid 404 logs)
	mux.HandleFunc("/favicon.ico", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	// Health endpoints
	mux.HandleFunc("/health", h.HandleHealth)
	mux.HandleFunc(prefix+"/health", h.HandleHealth)

	// Materials endpoints
	mux.HandleFunc(prefix+"/materials", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			h.HandleListMaterials(w, r)
		case http.MethodPost:
			h.HandleCreateMaterial(w, r)
		default:
			response.MethodNotAllowed(w, r.Method)
		}
	})

	mux.HandleFunc(prefix+"/materials/", func(w http.ResponseWriter, r *http.Request) {
		parts := splitPath(r.URL.Path[len(prefix+"/materials/"):])

		switch {
		case len(parts) == 1:
			id := parts[0]
			switch r.Method {
			case http.MethodGet:
				h.HandleGetMaterial(w, r, id)
			case http.MethodPatch:
				h.HandleUpdateMaterial(w, r, id)
			case http.MethodDelete:
				h.HandleDeleteMaterial(w, r, id)
			default:
				response.MethodNotAllowed(w, r.Method)
			}
		case len(parts) == 2 && parts[1] == "view":
			// POST /materials/{id}/view
			if r.Method == http.MethodPost {
				h.HandleRecordView(w, r, parts[0])
				return
			}
			response.MethodNotAllowed(w, r.Method)
		default:
			response.NotFound(w, "Not found", "")
		}
	})

	// Users endpoints
	mux.HandleFunc(prefix+"/users", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			h.HandleListUsers(w, r)
		case http.MethodPost:
			h.HandleCreateUser(w, r)
		default:
			response.MethodNotAllowed(w, r.Method)
		}
	})

	mux.HandleFunc(prefix+"/users/", func(w http.ResponseWriter, r *http.Request) {
		parts := splitPath(r.URL.Path[len(prefix+"/users/"):])
		if len(parts) != 1 {
			response.NotFound(w, "Not found", "")
			return
		}

		switch r.Method {
		case http.MethodGet:
			h.HandleGetUser(w, r, parts[0])
		case http.MethodPatch:
			h.HandleUpdateUser(w, r, parts[0])
		case http.MethodDelete:
			h.HandleDeleteUser(w, r, parts[0])
		default:
			response.MethodNotAllowed(w, r.Method)
		}
	})

	// Categories endpoints
	mux.HandleFunc(prefix+"/categories", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			h.HandleListCategories(w, r)
		case http.MethodPost:
			h.HandleCreateCategory(w, r)
		default:
			response.MethodNotAllowed(w, r.Method)
		}
	})

	mux.HandleFunc(prefix+"/categories/", func(w http.ResponseWriter, r *http.Request) {
		parts := splitPath(r.URL.Path[len(prefix+"/categories/"):])
		if len(parts) != 1 {
			response.NotFound(w, "Not found", "")
			return
		}

		switch r.Method {
		case http.MethodGet:
			h.HandleGetCategory(w, r, parts[0])
		case http.MethodPatch:
			h.HandleUpdateCategory(w, r, parts[0])
		case http.MethodDelete:
			h.HandleDeleteCategory(w, r, parts[0])
		default:
			response.MethodNotAllowed(w, r.Method)
		}
	})

	// Access request endpoints
	mux.HandleFunc(prefix+"/requests", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			h.HandleListRequests(w, r)
		case http.MethodPost:
			h.HandleCreateRequest(w, r)
		default:
			response.MethodNotAllowed(w, r.Method)
		}
	})

	mux.HandleFunc(prefix+"/requests/", func(w http.ResponseWriter, r *http.Request) {
		parts := splitPath(r.URL.Path[len(prefix+"/requests/"):])

		switch {
		case len(parts) == 1 && r.Method == http.MethodGet:
			h.HandleGetRequest(w, r, parts[0])
		case len(parts) == 2 && parts[1] == "approve" && r.Method == http.MethodPost:
			h.HandleApproveRequest(w, r, parts[0])
		case len(parts) == 2 && parts[1] == "deny" && r.Method == http.MethodPost:
			h.HandleDenyRequest(w, r, parts[0])
		default:
			response.NotFound(w, "Not found", "")
		}
	})

	// Admin endpoints
	mux.HandleFunc(prefix+"/activity", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			h.HandleListActivity(w, r)
			return
		}
		response.MethodNotAllowed(w, r.Method)
	})

	mux.HandleFunc(prefix+"/stats", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			h.HandleStats(w, r)
			return
		}
		response.MethodNotAllowed(w, r.Method)
	})

	// Session endpoints
	mux.HandleFunc(prefix+"/session", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			h.HandleGetSession(w, r)
		case http.MethodPost:
			h.HandleLogin(w, r)
		case http.MethodDelete:
			h.HandleLogout(w, r)
		default:
			response.MethodNotAllowed(w, r.Method)
		}
	})

	mux.HandleFunc(prefix+"/session/saved/", func(w http.ResponseWriter, r *http.Request) {
		parts := splitPath(r.URL.Path[len(prefix+"/session/saved/"):])
		if len(parts) == 1 && r.Method == http.MethodPost {
			h.HandleToggleSaved(w, r, parts[0])
			return
		}
		response.NotFound(w, "Not found", "")
	})
}

// applyMiddleware wraps handler with middleware chain.
func (s *Server) applyMiddleware(handler http.Handler) http.Handler {
	cfg := s.config

	// Rate limiting (if enabled)
	if cfg.RateLimit > 0 {
		rateLimiter := middleware.NewRateLimiter(cfg.RateLimit)
		handler = middleware.RateLimit(rateLimiter, s.logger)(handler)
	}

	// CORS (if enabled)
	if cfg.CORSEnabled {
		corsConfig := middleware.DefaultCORSConfig()
		if len(cfg.CORSOrigins) > 0 {
			corsConfig.AllowedOrigins = cfg.CORSOrigins
			corsConfig.AllowAll = false
		} else {
			corsConfig.AllowAll = true
		}
		handler = middleware.CORS(corsConfig)(handler)
	}

	// Logging and recovery (always enabled)
	handler = middleware.Logger(s.logger)(handler)
	handler = middleware.Recovery(s.logger)(handler)

	return handler
}

// splitPath splits a URL path into parts, removing empty strings.
func splitPath(path string) []string {
	parts := []string{}
	for _, part := range strings.Split(path, "/") {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}
