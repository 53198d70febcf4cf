// Package http assembles the MacBench HTTP API: the gin route tree and the
// server lifecycle.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/turtacn/MacBench/internal/config"
	"github.com/turtacn/MacBench/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/MacBench/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/MacBench/internal/interfaces/http/handlers"
	"github.com/turtacn/MacBench/internal/interfaces/http/middleware"
)

// RouterConfig aggregates the handler and middleware dependencies of the
// route tree.  Nil handlers leave their routes unregistered.
type RouterConfig struct {
	// Handlers
	CatalogHandler     *handlers.CatalogHandler
	ViewHandler        *handlers.ViewHandler
	AdvisorHandler     *handlers.AdvisorHandler
	PreferencesHandler *handlers.PreferencesHandler
	HealthHandler      *handlers.HealthHandler

	// Middleware
	CORS           config.CORSConfig
	MaxBodySize    int64
	AdvisorLimiter middleware.RateLimiter

	// Infrastructure
	Logger           logging.Logger
	Metrics          *prometheus.AppMetrics
	MetricsCollector prometheus.MetricsCollector
	MetricsPath      string
}

// NewRouter constructs the complete route tree.
func NewRouter(cfg RouterConfig) *gin.Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewNopLogger()
	}

	r := gin.New()
	r.HandleMethodNotAllowed = true

	// --- Global middleware ---
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestLogging(logger, middleware.DefaultLoggingConfig()))
	if cfg.Metrics != nil {
		r.Use(middleware.Metrics(cfg.Metrics))
	}
	r.Use(middleware.CORS(cfg.CORS))
	r.Use(middleware.BodyLimit(cfg.MaxBodySize))

	// --- Probes and metrics ---
	if cfg.HealthHandler != nil {
		r.GET("/healthz", cfg.HealthHandler.Liveness)
		r.GET("/readyz", cfg.HealthHandler.Readiness)
	}
	if cfg.MetricsCollector != nil {
		path := cfg.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		r.GET(path, gin.WrapH(cfg.MetricsCollector.Handler()))
	}

	// --- API v1 ---
	api := r.Group("/api/v1")
	registerCatalogRoutes(api, cfg.CatalogHandler)
	registerViewRoutes(api, cfg.ViewHandler)
	registerAdvisorRoutes(api, cfg.AdvisorHandler, cfg.AdvisorLimiter)
	registerPreferencesRoutes(api, cfg.PreferencesHandler)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, handlers.ErrorResponse{
			Code:      "COMMON_005",
			Message:   "route not found",
			RequestID: middleware.GetRequestID(c),
		})
	})
	return r
}

func registerCatalogRoutes(r *gin.RouterGroup, h *handlers.CatalogHandler) {
	if h == nil {
		return
	}
	r.GET("/machines", h.List)
	r.GET("/machines/:id", h.Get)
	r.GET("/compare", h.Compare)
	r.GET("/scenarios", h.Scenarios)
	r.GET("/estimates", h.Estimate)
}

func registerViewRoutes(r *gin.RouterGroup, h *handlers.ViewHandler) {
	if h == nil {
		return
	}
	r.POST("/view", h.Apply)
}

func registerAdvisorRoutes(r *gin.RouterGroup, h *handlers.AdvisorHandler, limiter middleware.RateLimiter) {
	if h == nil {
		return
	}
	chain := []gin.HandlerFunc{}
	if limiter != nil {
		chain = append(chain, middleware.RateLimit(limiter))
	}
	chain = append(chain, h.Advise)
	r.POST("/advisor", chain...)
}

func registerPreferencesRoutes(r *gin.RouterGroup, h *handlers.PreferencesHandler) {
	if h == nil {
		return
	}
	r.POST("/preferences", h.Create)
	r.GET("/preferences/:clientID", h.Get)
	r.PUT("/preferences/:clientID", h.Put)
}

//Personal.AI order the ending
