package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/turtacn/MacBench/internal/config"
	"github.com/turtacn/MacBench/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/MacBench/internal/infrastructure/monitoring/prometheus"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequestID_GeneratesAndEchoes(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	var seen string
	r.GET("/x", func(c *gin.Context) {
		seen = GetRequestID(c)
		c.Status(http.StatusOK)
	})

	w := serve(r, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.Len(t, seen, 36)
	assert.Equal(t, seen, w.Header().Get(HeaderRequestID))

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(HeaderRequestID, "req-42")
	w = serve(r, req)
	assert.Equal(t, "req-42", seen)
	assert.Equal(t, "req-42", w.Header().Get(HeaderRequestID))

	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(HeaderRequestID, strings.Repeat("a", 200))
	serve(r, req)
	assert.Len(t, seen, 36)
}

func TestRequestLogging_LevelsAndSkips(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	r := gin.New()
	r.Use(RequestID(), RequestLogging(logging.NewLoggerFromCore(core), DefaultLoggingConfig()))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/bad", func(c *gin.Context) { c.Status(http.StatusBadRequest) })
	r.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })
	r.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })

	serve(r, httptest.NewRequest(http.MethodGet, "/ok?sort=price", nil))
	serve(r, httptest.NewRequest(http.MethodGet, "/bad", nil))
	serve(r, httptest.NewRequest(http.MethodGet, "/boom", nil))
	serve(r, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "/ok?sort=price", entries[0].ContextMap()["path"])
	assert.NotEmpty(t, entries[0].ContextMap()["request_id"])
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
}

func TestMetrics_UsesRouteTemplate(t *testing.T) {
	collector, err := prometheus.NewMetricsCollector(prometheus.CollectorConfig{Namespace: "test"}, nil)
	require.NoError(t, err)
	metrics := prometheus.NewAppMetrics(collector)

	r := gin.New()
	r.Use(Metrics(metrics))
	r.GET("/machines/:id", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	serve(r, httptest.NewRequest(http.MethodGet, "/machines/a", nil))
	serve(r, httptest.NewRequest(http.MethodGet, "/machines/b", nil))
	serve(r, httptest.NewRequest(http.MethodGet, "/nope", nil))

	w := httptest.NewRecorder()
	collector.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := w.Body.String()
	assert.Contains(t, body, `test_http_requests_total{method="GET",path="/machines/:id",status_code="200"} 2`)
	assert.Contains(t, body, `test_http_requests_total{method="GET",path="unmatched",status_code="404"} 1`)
}

func TestCORS_Preflight(t *testing.T) {
	r := gin.New()
	r.Use(CORS(config.CORSConfig{AllowOrigins: []string{"https://macbench.example"}, MaxAge: time.Hour}))
	r.POST("/api/v1/advisor", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/advisor", nil)
	req.Header.Set("Origin", "https://macbench.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := serve(r, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://macbench.example", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "3600", w.Header().Get("Access-Control-Max-Age"))

	req = httptest.NewRequest(http.MethodPost, "/api/v1/advisor", nil)
	req.Header.Set("Origin", "https://evil.example")
	w = serve(r, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCORS_Wildcard(t *testing.T) {
	r := gin.New()
	r.Use(CORS(config.CORSConfig{AllowOrigins: []string{"*"}}))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "https://anywhere.example")
	w := serve(r, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRecovery_MasksPanic(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	r := gin.New()
	r.Use(RequestID(), Recovery(logging.NewLoggerFromCore(core)))
	r.GET("/panic", func(c *gin.Context) { panic("secret detail") })

	w := serve(r, httptest.NewRequest(http.MethodGet, "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "secret detail")
	assert.Contains(t, w.Body.String(), "COMMON_001")
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "secret detail", logs.All()[0].ContextMap()["panic"])
}

func TestBodyLimit(t *testing.T) {
	r := gin.New()
	r.Use(BodyLimit(8))
	r.POST("/x", func(c *gin.Context) {
		if _, err := io.ReadAll(c.Request.Body); err != nil {
			c.Status(http.StatusRequestEntityTooLarge)
			return
		}
		c.Status(http.StatusOK)
	})

	w := serve(r, httptest.NewRequest(http.MethodPost, "/x", strings.NewReader("short")))
	assert.Equal(t, http.StatusOK, w.Code)
	w = serve(r, httptest.NewRequest(http.MethodPost, "/x", strings.NewReader("much too long")))
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestTokenBucketLimiter(t *testing.T) {
	l := NewTokenBucketLimiter(1, 2, 0)
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }

	ok, info := l.Allow("ip")
	assert.True(t, ok)
	assert.Equal(t, 1, info.Remaining)
	ok, _ = l.Allow("ip")
	assert.True(t, ok)
	ok, info = l.Allow("ip")
	assert.False(t, ok)
	assert.Equal(t, 0, info.Remaining)

	ok, _ = l.Allow("other")
	assert.True(t, ok)
	assert.Equal(t, 2, l.BucketCount())

	now = now.Add(time.Second)
	ok, _ = l.Allow("ip")
	assert.True(t, ok)
}

func TestTokenBucketLimiter_Cleanup(t *testing.T) {
	l := NewTokenBucketLimiter(1, 1, time.Minute)
	defer l.Stop()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }

	l.Allow("a")
	now = now.Add(2 * time.Minute)
	l.cleanup()
	assert.Zero(t, l.BucketCount())
	l.Stop()
}

func TestRateLimit_Rejects(t *testing.T) {
	l := NewTokenBucketLimiter(0.001, 1, 0)
	r := gin.New()
	r.Use(RequestID(), RateLimit(l))
	r.POST("/advisor", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := serve(r, httptest.NewRequest(http.MethodPost, "/advisor", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "1", w.Header().Get("X-RateLimit-Limit"))

	w = serve(r, httptest.NewRequest(http.MethodPost, "/advisor", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), "COMMON_007")
}
