/*
Package obs wires structured logging for the service.

PURPOSE:
  Builds the process-wide zerolog logger and adapts it to the small
  EventLogger interface the catalog resolver expects. Keeping the
  adapter here leaves the core packages free of any logging dependency.
*/
package obs

import (
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/openhaus/movein-engine/catalog"
)

// NewLogger configures a zerolog logger with the given format
// ("json" or "console") and level.
func NewLogger(format, level string) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	var out io.Writer = os.Stdout
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "console", "text":
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}
	return zerolog.New(out).With().Timestamp().Logger()
}

// =============================================================================
// RESOLUTION EVENT ADAPTER
// =============================================================================

// ResolutionLogger adapts zerolog to catalog.EventLogger.
type ResolutionLogger struct {
	Logger zerolog.Logger
}

func (l ResolutionLogger) Warn(event string, fields catalog.Fields) {
	l.Logger.Warn().Fields(map[string]any(fields)).Msg(event)
}

func (l ResolutionLogger) Info(event string, fields catalog.Fields) {
	l.Logger.Info().Fields(map[string]any(fields)).Msg(event)
}

// =============================================================================
// HTTP REQUEST LOGGING
// =============================================================================

// RequestLogger records structured request logs.
type RequestLogger struct {
	Logger zerolog.Logger
}

// Middleware implements chi middleware for structured request logs.
func (l RequestLogger) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		l.Logger.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Int("bytes", ww.BytesWritten()).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("http request")
	})
}
