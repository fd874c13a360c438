package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// HealthChecker reports whether a backing service is reachable
type HealthChecker interface {
	Health(ctx context.Context) error
}

type RouterOptions struct {
	Logger     zerolog.Logger
	Metrics    *Metrics
	SessionTTL time.Duration
	// Database is optional; nil means the in-memory store is in use
	Database HealthChecker
	// SlackEvents is mounted on /slack/events when set
	SlackEvents http.HandlerFunc
}

// Setup builds the gin engine with all routes registered
func Setup(h *AnalysisHandler, opts RouterOptions) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(opts.Logger))
	if opts.Metrics != nil {
		r.Use(opts.Metrics.Middleware())
		r.GET("/metrics", opts.Metrics.Handler())
	}

	r.GET("/health", func(c *gin.Context) {
		status := gin.H{"status": "ok", "database": "memory"}
		if opts.Database != nil {
			if err := opts.Database.Health(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "database": err.Error()})
				return
			}
			status["database"] = "ok"
		}
		c.JSON(http.StatusOK, status)
	})

	if opts.SlackEvents != nil {
		r.POST("/slack/events", gin.WrapF(opts.SlackEvents))
	}

	ttl := opts.SessionTTL
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}

	api := r.Group("/api")
	api.Use(Session(ttl))
	{
		api.POST("/analyze", h.Analyze)
		api.POST("/analyze/name", h.AnalyzeName)
		api.GET("/analyses", h.Recent)
		api.GET("/analyses/:id", h.Get)
		api.GET("/analyses/:id/report", h.Report)
		api.GET("/session/latest", h.Latest)
		api.GET("/stats", h.Stats)
		api.GET("/profiles", h.Profiles)
	}

	return r
}
