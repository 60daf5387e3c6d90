/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the OpenHaus move-in pricing server.
  Handles configuration, dependency injection, and graceful shutdown.

STARTUP SEQUENCE:
  1. Load configuration from environment (.env supported)
  2. Initialize structured logger
  3. Initialize SQLite store, optionally seed demo inventory
  4. Create API handler with pricing policy and dependencies
  5. Configure HTTP router
  6. Start server with graceful shutdown

CONFIGURATION:
  All config via environment variables (see config package):
    PORT                  HTTP server port (default: 8080)
    DB_PATH               SQLite database path (default: movein.db)
                          Use ":memory:" for in-memory database
    SEED_DEMO_DATA        Seed demo buildings on startup (default: false)
    LOG_LEVEL, LOG_FORMAT Logging controls
    CORS_ALLOWED_ORIGINS  Comma-separated origin list
  Pricing policy overrides (PARKING_FLAT_RENT, PROMO_WINDOW_DAYS, ...)
  are also read from the environment.

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (30s timeout)
  3. Close database connection
  4. Exit

EXAMPLES:
  # Run with file database
  DB_PATH=./data/movein.db ./server

  # Run with in-memory database and demo inventory
  DB_PATH=":memory:" SEED_DEMO_DATA=true ./server

SEE ALSO:
  - api/server.go: Router configuration
  - api/handlers.go: HTTP handlers
  - config/config.go: Environment configuration
  - store/sqlite/sqlite.go: Database implementation
*/
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/openhaus/movein-engine/api"
	"github.com/openhaus/movein-engine/config"
	"github.com/openhaus/movein-engine/obs"
	"github.com/openhaus/movein-engine/store/sqlite"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger := obs.NewLogger(cfg.LogFormat, cfg.LogLevel)

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		logger.Fatal().Err(err).Str("db_path", cfg.DBPath).Msg("failed to initialize database")
	}
	defer store.Close()

	if cfg.SeedDemoData {
		if err := store.Seed(context.Background()); err != nil {
			logger.Fatal().Err(err).Msg("failed to seed demo data")
		}
		logger.Info().Msg("seeded demo inventory")
	}

	handler := api.NewHandler(store, cfg.Policy, logger, obs.ResolutionLogger{Logger: logger})
	router := api.NewRouter(handler, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().
			Str("addr", server.Addr).
			Str("env", cfg.AppEnv).
			Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server forced to shutdown")
	}

	logger.Info().Msg("server stopped")
}
