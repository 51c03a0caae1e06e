package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/iarchive/iarchive/internal/server"
	"github.com/iarchive/iarchive/pkg/logging"
)

// serveCmd represents the serve command.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the archive REST API",
	Long: `Start a REST API server over the archive catalog.

Endpoints cover materials (with search, category filtering, date sorting,
and pagination), users, categories, access requests with approve/deny
decisions, the activity log, dashboard statistics, and the browsing
session. Request logging, panic recovery, CORS, and per-IP rate limiting
are applied as middleware.`,
	Example: `  # Start on default port 8080 against ./archive-data
  iarchive serve --data-dir archive-data

  # Enable CORS for a specific origin
  iarchive serve --cors-origins "https://portal.example.edu"

  # Disable rate limiting
  iarchive serve --rate-limit 0`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntP("port", "p", 8080, "Server port")
	serveCmd.Flags().String("host", "localhost", "Bind address")

	serveCmd.Flags().Bool("cors", false, "Enable CORS for all origins")
	serveCmd.Flags().StringSlice("cors-origins", []string{}, "Allowed CORS origins (comma-separated)")

	serveCmd.Flags().Int("rate-limit", 100, "Requests per minute per IP (0 to disable)")

	serveCmd.Flags().Duration("read-timeout", 10*time.Second, "HTTP read timeout")
	serveCmd.Flags().Duration("write-timeout", 10*time.Second, "HTTP write timeout")
	serveCmd.Flags().Duration("idle-timeout", 120*time.Second, "HTTP idle timeout")

	serveCmd.Flags().String("prefix", "/api/v1", "API path prefix")
}

// runServe starts the API server.
func runServe(cmd *cobra.Command, _ []string) error {
	port, _ := cmd.Flags().GetInt("port")
	host, _ := cmd.Flags().GetString("host")
	corsEnabled, _ := cmd.Flags().GetBool("cors")
	corsOrigins, _ := cmd.Flags().GetStringSlice("cors-origins")
	rateLimit, _ := cmd.Flags().GetInt("rate-limit")
	readTimeout, _ := cmd.Flags().GetDuration("read-timeout")
	writeTimeout, _ := cmd.Flags().GetDuration("write-timeout")
	idleTimeout, _ := cmd.Flags().GetDuration("idle-timeout")
	pathPrefix, _ := cmd.Flags().GetString("prefix")

	// Override with environment variables
	if envHost := os.Getenv("HTTP_HOST"); envHost != "" {
		host = envHost
	}

	logger := logging.Default()
	logger.Info().
		Int("port", port).
		Str("host", host).
		Str("prefix", pathPrefix).
		Bool("cors", corsEnabled || len(corsOrigins) > 0).
		Int("rate_limit", rateLimit).
		Msg("Starting API server")

	cat, err := openCatalog()
	if err != nil {
		return fmt.Errorf("opening catalog: %w", err)
	}
	sessions, err := openSessions()
	if err != nil {
		return fmt.Errorf("opening session store: %w", err)
	}

	cfg := server.DefaultConfig()
	cfg.Host = host
	cfg.Port = port
	cfg.PathPrefix = pathPrefix
	cfg.CORSEnabled = corsEnabled || len(corsOrigins) > 0
	cfg.CORSOrigins = corsOrigins
	cfg.RateLimit = rateLimit
	cfg.ReadTimeout = readTimeout
	cfg.WriteTimeout = writeTimeout
	cfg.IdleTimeout = idleTimeout

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", host, port),
		Handler:      server.New(cat, sessions, cfg, logger).Handler(),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return startServerWithGracefulShutdown(srv, logger)
}

// startServerWithGracefulShutdown starts the server and drains connections on
// SIGINT or SIGTERM.
func startServerWithGracefulShutdown(srv *http.Server, logger *zerolog.Logger) error {
	serverErr := make(chan error, 1)

	go func() {
		logger.Info().
			Str("addr", srv.Addr).
			Msg("Server starting")

		fmt.Printf("Starting API server on %s\n", srv.Addr)
		fmt.Println("Press Ctrl+C to stop")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- fmt.Errorf("server failed: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return err
	case sig := <-quit:
		logger.Info().
			Str("signal", sig.String()).
			Msg("Shutdown signal received")

		fmt.Println("\nShutting down API server...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("Server stopped gracefully")
		return nil
	}
}
