// Package server provides the HTTP server implementation for the archive API.
package server

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/iarchive/iarchive/pkg/catalog"
	"github.com/iarchive/iarchive/pkg/logging"
	"github.com/iarchive/iarchive/pkg/session"
)

// Server holds the HTTP server state and dependencies.
type Server struct {
	catalog   catalog.Catalog
	sessions  *session.Manager
	logger    *zerolog.Logger
	config    Config
	startTime time.Time
}

// New creates a new server instance with the given configuration.
func New(cat catalog.Catalog, sessions *session.Manager, cfg Config, logger *zerolog.Logger) *Server {
	if logger == nil {
		logger = logging.Default()
	}

	logger.Debug().
		Str("prefix", cfg.PathPrefix).
		Bool("cors", cfg.CORSEnabled).
		Int("rate_limit", cfg.RateLimit).
		Msg("Creating new server instance")

	return &Server{
		catalog:   cat,
		sessions:  sessions,
		logger:    logger,
		config:    cfg,
		startTime: time.Now(),
	}
}

// StartTime returns the server start time for uptime calculations.
func (s *Server) StartTime() time.Time {
	return s.startTime
}
