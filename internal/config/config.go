// Package config defines all configuration structures for MacBench.  No I/O
// or parsing logic lives in this file; only plain data types and validation.
package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// ─────────────────────────────────────────────────────────────────────────────
// Sub-configuration structs
// ─────────────────────────────────────────────────────────────────────────────

// ServerConfig holds HTTP server tunables.
type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"` // "debug" | "release" | "test"
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	MaxBodySize     int64         `mapstructure:"max_body_size"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// RedisConfig holds Redis connection parameters.  When Enabled is false the
// advisor cache is skipped and preferences are kept in process memory.
type RedisConfig struct {
	Enabled      bool          `mapstructure:"enabled"`
	Addr         string        `mapstructure:"addr"`
	Password     string        `mapstructure:"password"`
	DB           int           `mapstructure:"db"`
	PoolSize     int           `mapstructure:"pool_size"`
	MinIdleConns int           `mapstructure:"min_idle_conns"`
	DialTimeout  time.Duration `mapstructure:"dial_timeout"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	DefaultTTL   time.Duration `mapstructure:"default_ttl"`
	KeyPrefix    string        `mapstructure:"key_prefix"`
}

// LogConfig holds structured-logging parameters.
type LogConfig struct {
	Level       string   `mapstructure:"level"`  // "debug" | "info" | "warn" | "error"
	Format      string   `mapstructure:"format"` // "json" | "console"
	OutputPaths []string `mapstructure:"output_paths"`
}

// AdvisorConfig holds the chat backend parameters.
type AdvisorConfig struct {
	Provider        string        `mapstructure:"provider"` // "gemini" | "openai"
	BaseURL         string        `mapstructure:"base_url"`
	APIKey          string        `mapstructure:"api_key"`
	Model           string        `mapstructure:"model"`
	Timeout         time.Duration `mapstructure:"timeout"`
	Temperature     float64       `mapstructure:"temperature"`
	MaxOutputTokens int           `mapstructure:"max_output_tokens"`
	CacheTTL        time.Duration `mapstructure:"cache_ttl"`
	// RateLimit is the sustained advisor requests per second per client IP.
	// Zero disables limiting.
	RateLimit float64 `mapstructure:"rate_limit"`
	RateBurst int     `mapstructure:"rate_burst"`
	// Offline disables the network path; every question is answered by the
	// local heuristic responder.
	Offline bool `mapstructure:"offline"`
}

// CatalogConfig controls where machine records come from and how derived
// values are computed.
type CatalogConfig struct {
	// DatasetPath is an optional .json/.yaml file replacing the embedded
	// dataset.
	DatasetPath string `mapstructure:"dataset_path"`
	// CurrentYear pins the year used by the price estimators.  Zero means
	// the wall clock.
	CurrentYear     int    `mapstructure:"current_year"`
	DefaultLanguage string `mapstructure:"default_language"`
}

// MetricsConfig holds Prometheus exposition parameters.
type MetricsConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Path      string `mapstructure:"path"`
	Namespace string `mapstructure:"namespace"`
}

// CORSConfig holds cross-origin parameters for the HTTP API.
type CORSConfig struct {
	AllowOrigins []string      `mapstructure:"allow_origins"`
	MaxAge       time.Duration `mapstructure:"max_age"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Root Config
// ─────────────────────────────────────────────────────────────────────────────

// Config is the root configuration structure.  Every infrastructure component
// and application service reads its settings from the relevant sub-struct.
type Config struct {
	Environment string        `mapstructure:"environment"` // "development" | "production"
	Server      ServerConfig  `mapstructure:"server"`
	Redis       RedisConfig   `mapstructure:"redis"`
	Log         LogConfig     `mapstructure:"log"`
	Advisor     AdvisorConfig `mapstructure:"advisor"`
	Catalog     CatalogConfig `mapstructure:"catalog"`
	Metrics     MetricsConfig `mapstructure:"metrics"`
	CORS        CORSConfig    `mapstructure:"cors"`
}

// IsProduction reports whether the process runs in the production environment.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

// ResolveCurrentYear returns Catalog.CurrentYear, or the year of now when it
// is unset.
func (c *Config) ResolveCurrentYear(now time.Time) int {
	if c.Catalog.CurrentYear > 0 {
		return c.Catalog.CurrentYear
	}
	return now.Year()
}

// ─────────────────────────────────────────────────────────────────────────────
// Validation
// ─────────────────────────────────────────────────────────────────────────────

// Validate performs semantic validation of the fully-populated Config.
// It returns the first error encountered; callers should treat any error as
// fatal and refuse to start the application.
func (c *Config) Validate() error {
	// Server
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("config: server.port %d is out of range [1, 65535]", c.Server.Port)
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("config: server.mode %q is invalid; expected debug|release|test", c.Server.Mode)
	}

	// Redis
	if c.Redis.Enabled && c.Redis.Addr == "" {
		return fmt.Errorf("config: redis.addr is required when redis is enabled")
	}
	if c.Redis.DB < 0 {
		return fmt.Errorf("config: redis.db must be ≥ 0, got %d", c.Redis.DB)
	}

	// Advisor
	switch c.Advisor.Provider {
	case "gemini", "openai":
	default:
		return fmt.Errorf("config: advisor.provider %q is invalid; expected gemini|openai", c.Advisor.Provider)
	}
	if c.Advisor.Timeout <= 0 {
		return fmt.Errorf("config: advisor.timeout must be positive, got %s", c.Advisor.Timeout)
	}
	if c.Advisor.Temperature < 0 || c.Advisor.Temperature > 2 {
		return fmt.Errorf("config: advisor.temperature %.2f is out of range [0, 2]", c.Advisor.Temperature)
	}
	if c.Advisor.RateLimit < 0 || c.Advisor.RateBurst < 0 {
		return fmt.Errorf("config: advisor.rate_limit and advisor.rate_burst must be ≥ 0")
	}
	if c.Advisor.CacheTTL < 0 {
		return fmt.Errorf("config: advisor.cache_ttl must be ≥ 0, got %s", c.Advisor.CacheTTL)
	}

	// Catalog
	if c.Catalog.CurrentYear < 0 {
		return fmt.Errorf("config: catalog.current_year must be ≥ 0, got %d", c.Catalog.CurrentYear)
	}
	if p := c.Catalog.DatasetPath; p != "" {
		switch strings.ToLower(filepath.Ext(p)) {
		case ".json", ".yaml", ".yml":
		default:
			return fmt.Errorf("config: catalog.dataset_path %q must be a .json or .yaml file", p)
		}
	}
	switch c.Catalog.DefaultLanguage {
	case "en", "zh", "es":
	default:
		return fmt.Errorf("config: catalog.default_language %q is invalid; expected en|zh|es", c.Catalog.DefaultLanguage)
	}

	// Metrics
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("config: metrics.path %q must start with /", c.Metrics.Path)
	}

	// Log
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: log.level %q is invalid; expected debug|info|warn|error", c.Log.Level)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("config: log.format %q is invalid; expected json|console", c.Log.Format)
	}

	return nil
}

//Personal.AI order the ending
