package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/turtacn/MacBench/internal/application/advisor"
	"github.com/turtacn/MacBench/internal/application/catalog"
	"github.com/turtacn/MacBench/internal/application/preferences"
	"github.com/turtacn/MacBench/internal/config"
	"github.com/turtacn/MacBench/internal/i18n"
	rediscache "github.com/turtacn/MacBench/internal/infrastructure/cache/redis"
	"github.com/turtacn/MacBench/internal/infrastructure/dataset"
	"github.com/turtacn/MacBench/internal/infrastructure/llm"
	"github.com/turtacn/MacBench/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/MacBench/internal/infrastructure/monitoring/prometheus"
	httpserver "github.com/turtacn/MacBench/internal/interfaces/http"
	"github.com/turtacn/MacBench/internal/interfaces/http/handlers"
	"github.com/turtacn/MacBench/internal/interfaces/http/middleware"
	"github.com/turtacn/MacBench/pkg/errors"
)

const (
	preferencesKeyPrefix = "prefs:"
	limiterCleanup       = 5 * time.Minute
)

// application is the wired server with everything that must be released on
// shutdown.
type application struct {
	server  *httpserver.Server
	handler http.Handler
	closers []func() error
	logger  logging.Logger
}

// Close releases resources in reverse construction order.
func (a *application) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.logger.Warn("close failed", logging.Err(err))
		}
	}
}

// buildApplication wires every component from cfg.  Redis and the chat
// backend are optional: when they are unavailable the server runs with
// in-memory preferences, no advisor cache and local answers.
func buildApplication(ctx context.Context, cfg *config.Config, logger logging.Logger) (*application, error) {
	app := &application{logger: logger}
	gin.SetMode(cfg.Server.Mode)

	// --- Metrics ---
	var collector prometheus.MetricsCollector = prometheus.NewNoopCollector()
	if cfg.Metrics.Enabled {
		c, err := prometheus.NewMetricsCollector(prometheus.CollectorConfig{
			Namespace:            cfg.Metrics.Namespace,
			EnableProcessMetrics: true,
			EnableGoMetrics:      true,
		}, logger)
		if err != nil {
			return nil, err
		}
		collector = c
	}
	metrics := prometheus.NewAppMetrics(collector)

	// --- Dataset ---
	records, err := dataset.LoadWithLogger(cfg.Catalog.DatasetPath, logger)
	if err != nil {
		return nil, err
	}
	repo := dataset.NewRepository(records)
	checkers := []handlers.HealthChecker{&datasetHealthAdapter{repo: repo}}

	// --- Redis ---
	var (
		advisorCache advisor.Cache
		prefStore    preferences.Store
	)
	if cfg.Redis.Enabled {
		client, err := rediscache.NewClient(ctx, cfg.Redis, logger)
		if err != nil {
			logger.Warn("redis unavailable, continuing without cache", logging.Err(err))
		} else {
			app.closers = append(app.closers, client.Close)
			advisorCache = rediscache.NewRedisCache(client, logger,
				rediscache.WithPrefix(cfg.Redis.KeyPrefix),
				rediscache.WithDefaultTTL(cfg.Redis.DefaultTTL),
			)
			prefStore = rediscache.NewKVStore(client, cfg.Redis.KeyPrefix+preferencesKeyPrefix, 0)
			checkers = append(checkers, &redisHealthAdapter{client: client})
		}
	}

	// --- Chat backend ---
	var model advisor.ChatModel
	if !cfg.Advisor.Offline {
		client, err := llm.New(cfg.Advisor, &http.Client{Timeout: cfg.Advisor.Timeout})
		switch {
		case err == nil:
			model = client
			logger.Info("advisor backend configured",
				logging.String("provider", client.Name()),
				logging.String("model", cfg.Advisor.Model),
			)
		case errors.IsCode(err, errors.ErrCodeAdvisorNotConfigured):
			logger.Warn("advisor backend not configured, answering locally", logging.Err(err))
		default:
			return nil, err
		}
	}

	// --- Services ---
	catalogSvc := catalog.NewService(repo, logger, metrics, &catalog.ServiceConfig{CurrentYear: cfg.Catalog.CurrentYear})
	advisorSvc := advisor.NewService(model, advisorCache, logger, metrics, &advisor.ServiceConfig{
		Timeout:  cfg.Advisor.Timeout,
		CacheTTL: cfg.Advisor.CacheTTL,
		Offline:  cfg.Advisor.Offline,
	})
	prefSvc := preferences.NewService(prefStore, logger)

	// --- HTTP ---
	var limiter middleware.RateLimiter
	if cfg.Advisor.RateLimit > 0 {
		tb := middleware.NewTokenBucketLimiter(cfg.Advisor.RateLimit, cfg.Advisor.RateBurst, limiterCleanup)
		app.closers = append(app.closers, func() error { tb.Stop(); return nil })
		limiter = tb
	}

	router := httpserver.NewRouter(httpserver.RouterConfig{
		CatalogHandler:     handlers.NewCatalogHandler(catalogSvc),
		ViewHandler:        handlers.NewViewHandler("/"),
		AdvisorHandler:     handlers.NewAdvisorHandler(catalogSvc, advisorSvc, i18n.Match(cfg.Catalog.DefaultLanguage)),
		PreferencesHandler: handlers.NewPreferencesHandler(prefSvc),
		HealthHandler:      handlers.NewHealthHandler(version, checkers...),
		CORS:               cfg.CORS,
		MaxBodySize:        cfg.Server.MaxBodySize,
		AdvisorLimiter:     limiter,
		Logger:             logger,
		Metrics:            metrics,
		MetricsCollector:   metricsEndpoint(cfg, collector),
		MetricsPath:        cfg.Metrics.Path,
	})

	app.handler = router
	app.server = httpserver.NewServer(cfg.Server, router, logger)
	return app, nil
}

// metricsEndpoint returns nil when exposition is disabled so the router
// does not mount the path.
func metricsEndpoint(cfg *config.Config, c prometheus.MetricsCollector) prometheus.MetricsCollector {
	if !cfg.Metrics.Enabled {
		return nil
	}
	return c
}

//Personal.AI order the ending
