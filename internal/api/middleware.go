package api

import (
	"io"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	sessionCookie = "session_id"
	sessionKey    = "session_id"
)

// NewLogger builds the structured JSON logger used for request logs.
// Level is parsed from the given string (e.g. "debug", "info", "warn").
func NewLogger(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.DurationFieldUnit = time.Millisecond
	zerolog.DurationFieldInteger = true

	return zerolog.New(w).Level(lvl).With().
		Timestamp().
		Str("service", "virality-analyzer").
		Logger()
}

// RequestLogger logs each request with its route pattern instead of the raw
// path so analysis IDs stay out of the logs
func RequestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		evt := logger.Info()
		if status >= 500 {
			evt = logger.Error()
		} else if status >= 400 {
			evt = logger.Warn()
		}

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		evt.
			Str("method", c.Request.Method).
			Str("route", route).
			Int("status", status).
			Dur("duration_ms", time.Since(start)).
			Int("bytes_sent", c.Writer.Size()).
			Msg("request")
	}
}

// Session assigns every browser a session cookie
func Session(maxAge time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(sessionCookie)
		if err != nil || id == "" {
			id = uuid.New().String()
			c.SetCookie(sessionCookie, id, int(maxAge.Seconds()), "/", "", false, true)
		}
		c.Set(sessionKey, id)
		c.Next()
	}
}

func sessionID(c *gin.Context) string {
	return c.GetString(sessionKey)
}
