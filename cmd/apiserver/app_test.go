package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/MacBench/internal/config"
	"github.com/turtacn/MacBench/internal/infrastructure/dataset"
	"github.com/turtacn/MacBench/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/MacBench/pkg/errors"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	config.ApplyDefaults(cfg)
	cfg.Server.Mode = "test"
	cfg.Advisor.Offline = true
	cfg.Metrics.Enabled = true
	cfg.Catalog.CurrentYear = 2025
	return cfg
}

func serve(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	h.ServeHTTP(w, req)
	return w
}

func TestBuildApplication_Defaults(t *testing.T) {
	app, err := buildApplication(context.Background(), testConfig(), logging.NewNopLogger())
	require.NoError(t, err)
	defer app.Close()

	assert.Equal(t, http.StatusOK, serve(app.handler, http.MethodGet, "/readyz", "").Code)
	assert.Equal(t, http.StatusOK, serve(app.handler, http.MethodGet, "/api/v1/machines", "").Code)

	w := serve(app.handler, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "macbench_catalog_queries_total")

	w = serve(app.handler, http.MethodPost, "/api/v1/advisor", `{"query":"cheapest laptop"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"source":"fallback"`)
}

func TestBuildApplication_MetricsDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.Metrics.Enabled = false
	app, err := buildApplication(context.Background(), cfg, logging.NewNopLogger())
	require.NoError(t, err)
	defer app.Close()

	assert.Equal(t, http.StatusNotFound, serve(app.handler, http.MethodGet, "/metrics", "").Code)
}

func TestBuildApplication_RedisBackedPreferences(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := testConfig()
	cfg.Redis.Enabled = true
	cfg.Redis.Addr = mr.Addr()

	app, err := buildApplication(context.Background(), cfg, logging.NewNopLogger())
	require.NoError(t, err)
	defer app.Close()

	id := uuid.NewString()
	w := serve(app.handler, http.MethodPut, "/api/v1/preferences/"+id, `{"language":"zh","theme":"dark"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	stored, err := mr.Get("macbench:prefs:" + id)
	require.NoError(t, err)
	assert.JSONEq(t, `{"language":"zh","theme":"dark"}`, stored)

	w = serve(app.handler, http.MethodGet, "/readyz", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "redis")
}

func TestBuildApplication_RedisUnavailableDegrades(t *testing.T) {
	cfg := testConfig()
	cfg.Redis.Enabled = true
	cfg.Redis.Addr = "127.0.0.1:1"
	cfg.Redis.DialTimeout = 200 * time.Millisecond

	app, err := buildApplication(context.Background(), cfg, logging.NewNopLogger())
	require.NoError(t, err)
	defer app.Close()

	w := serve(app.handler, http.MethodPost, "/api/v1/preferences", `{"theme":"light"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestBuildApplication_AdvisorRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.Advisor.RateLimit = 0.001
	cfg.Advisor.RateBurst = 1

	app, err := buildApplication(context.Background(), cfg, logging.NewNopLogger())
	require.NoError(t, err)
	defer app.Close()

	body := `{"query":"best desktop"}`
	assert.Equal(t, http.StatusOK, serve(app.handler, http.MethodPost, "/api/v1/advisor", body).Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(app.handler, http.MethodPost, "/api/v1/advisor", body).Code)
}

func TestBuildApplication_BadDataset(t *testing.T) {
	cfg := testConfig()
	cfg.Catalog.DatasetPath = filepath.Join(t.TempDir(), "missing.json")
	_, err := buildApplication(context.Background(), cfg, logging.NewNopLogger())
	assert.Error(t, err)
}

func TestDatasetHealthAdapter(t *testing.T) {
	a := &datasetHealthAdapter{repo: dataset.NewRepository(nil)}
	assert.Equal(t, "dataset", a.Name())
	err := a.Check(context.Background())
	assert.True(t, errors.IsCode(err, errors.ErrCodeDatasetInvalid))

	a = &datasetHealthAdapter{repo: dataset.NewRepository(dataset.MustEmbedded())}
	assert.NoError(t, a.Check(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, a.Check(ctx), context.Canceled)
}

func TestLoadDotEnv(t *testing.T) {
	const key = "MACBENCH_TEST_DOTENV"
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(key+"=loaded\n"), 0o600))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(wd)
		_ = os.Unsetenv(key)
	})

	t.Setenv("MACBENCH_ENVIRONMENT", "production")
	_ = os.Unsetenv(key)
	loadDotEnv()
	assert.Empty(t, os.Getenv(key))

	t.Setenv("MACBENCH_ENVIRONMENT", "development")
	loadDotEnv()
	assert.Equal(t, "loaded", os.Getenv(key))
}
