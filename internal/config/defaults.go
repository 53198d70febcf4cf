package config

import (
	"time"

	"github.com/spf13/viper"
)

// ─────────────────────────────────────────────────────────────────────────────
// Default value constants
// ─────────────────────────────────────────────────────────────────────────────

const (
	DefaultEnvironment = "development"

	DefaultServerPort            = 8080
	DefaultServerMode            = "release"
	DefaultServerReadTimeout     = 15 * time.Second
	DefaultServerWriteTimeout    = 60 * time.Second
	DefaultServerShutdownTimeout = 10 * time.Second
	DefaultServerMaxBodySize     = 1 << 20

	DefaultRedisAddr      = "localhost:6379"
	DefaultRedisPoolSize  = 10
	DefaultRedisTTL       = 30 * time.Minute
	DefaultRedisKeyPrefix = "macbench:"

	DefaultAdvisorProvider        = "gemini"
	DefaultAdvisorGeminiBaseURL   = "https://generativelanguage.googleapis.com/v1beta"
	DefaultAdvisorOpenAIBaseURL   = "https://api.openai.com/v1"
	DefaultAdvisorGeminiModel     = "gemini-2.0-flash"
	DefaultAdvisorOpenAIModel     = "gpt-4o-mini"
	DefaultAdvisorTimeout         = 20 * time.Second
	DefaultAdvisorTemperature     = 0.7
	DefaultAdvisorMaxOutputTokens = 1024
	DefaultAdvisorCacheTTL        = 10 * time.Minute
	DefaultAdvisorRateLimit       = 0.5
	DefaultAdvisorRateBurst       = 5

	DefaultLanguage = "en"

	DefaultMetricsPath      = "/metrics"
	DefaultMetricsNamespace = "macbench"

	DefaultCORSMaxAge = 12 * time.Hour

	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
)

// registerDefaults declares every known key on v so that MACBENCH_* overrides
// are visible to Unmarshal even when no config file mentions the key.
func registerDefaults(v *viper.Viper) {
	v.SetDefault("environment", DefaultEnvironment)

	v.SetDefault("server.port", DefaultServerPort)
	v.SetDefault("server.mode", DefaultServerMode)
	v.SetDefault("server.read_timeout", DefaultServerReadTimeout)
	v.SetDefault("server.write_timeout", DefaultServerWriteTimeout)
	v.SetDefault("server.max_body_size", DefaultServerMaxBodySize)
	v.SetDefault("server.shutdown_timeout", DefaultServerShutdownTimeout)

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.addr", DefaultRedisAddr)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", DefaultRedisPoolSize)
	v.SetDefault("redis.min_idle_conns", 0)
	v.SetDefault("redis.dial_timeout", 5*time.Second)
	v.SetDefault("redis.read_timeout", 3*time.Second)
	v.SetDefault("redis.write_timeout", 3*time.Second)
	v.SetDefault("redis.default_ttl", DefaultRedisTTL)
	v.SetDefault("redis.key_prefix", DefaultRedisKeyPrefix)

	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)
	v.SetDefault("log.output_paths", []string{"stdout"})

	v.SetDefault("advisor.provider", DefaultAdvisorProvider)
	v.SetDefault("advisor.base_url", "")
	v.SetDefault("advisor.api_key", "")
	v.SetDefault("advisor.model", "")
	v.SetDefault("advisor.timeout", DefaultAdvisorTimeout)
	v.SetDefault("advisor.temperature", DefaultAdvisorTemperature)
	v.SetDefault("advisor.max_output_tokens", DefaultAdvisorMaxOutputTokens)
	v.SetDefault("advisor.cache_ttl", DefaultAdvisorCacheTTL)
	v.SetDefault("advisor.offline", false)
	v.SetDefault("advisor.rate_limit", DefaultAdvisorRateLimit)
	v.SetDefault("advisor.rate_burst", DefaultAdvisorRateBurst)

	v.SetDefault("catalog.dataset_path", "")
	v.SetDefault("catalog.current_year", 0)
	v.SetDefault("catalog.default_language", DefaultLanguage)

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", DefaultMetricsPath)
	v.SetDefault("metrics.namespace", DefaultMetricsNamespace)

	v.SetDefault("cors.allow_origins", []string{"*"})
	v.SetDefault("cors.max_age", DefaultCORSMaxAge)
}

// ApplyDefaults fills every zero-value field in cfg with the default.
// Fields that have already been set by the caller (non-zero values) are left
// unchanged so that explicit configuration always wins.  It must run before
// Validate.
func ApplyDefaults(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.Environment == "" {
		cfg.Environment = DefaultEnvironment
	}

	// ── Server ────────────────────────────────────────────────────────────────
	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultServerPort
	}
	if cfg.Server.Mode == "" {
		cfg.Server.Mode = DefaultServerMode
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = DefaultServerReadTimeout
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = DefaultServerWriteTimeout
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = DefaultServerShutdownTimeout
	}
	if cfg.Server.MaxBodySize == 0 {
		cfg.Server.MaxBodySize = DefaultServerMaxBodySize
	}

	// ── Redis ─────────────────────────────────────────────────────────────────
	if cfg.Redis.Addr == "" {
		cfg.Redis.Addr = DefaultRedisAddr
	}
	if cfg.Redis.PoolSize == 0 {
		cfg.Redis.PoolSize = DefaultRedisPoolSize
	}
	if cfg.Redis.DefaultTTL == 0 {
		cfg.Redis.DefaultTTL = DefaultRedisTTL
	}
	if cfg.Redis.KeyPrefix == "" {
		cfg.Redis.KeyPrefix = DefaultRedisKeyPrefix
	}

	// ── Advisor ───────────────────────────────────────────────────────────────
	if cfg.Advisor.Provider == "" {
		cfg.Advisor.Provider = DefaultAdvisorProvider
	}
	if cfg.Advisor.BaseURL == "" {
		if cfg.Advisor.Provider == "openai" {
			cfg.Advisor.BaseURL = DefaultAdvisorOpenAIBaseURL
		} else {
			cfg.Advisor.BaseURL = DefaultAdvisorGeminiBaseURL
		}
	}
	if cfg.Advisor.Model == "" {
		if cfg.Advisor.Provider == "openai" {
			cfg.Advisor.Model = DefaultAdvisorOpenAIModel
		} else {
			cfg.Advisor.Model = DefaultAdvisorGeminiModel
		}
	}
	if cfg.Advisor.Timeout == 0 {
		cfg.Advisor.Timeout = DefaultAdvisorTimeout
	}
	if cfg.Advisor.MaxOutputTokens == 0 {
		cfg.Advisor.MaxOutputTokens = DefaultAdvisorMaxOutputTokens
	}
	if cfg.Advisor.RateLimit > 0 && cfg.Advisor.RateBurst == 0 {
		cfg.Advisor.RateBurst = DefaultAdvisorRateBurst
	}
	// Temperature 0 and CacheTTL 0 are meaningful explicit values and are
	// only defaulted through registerDefaults.

	// ── Catalog ───────────────────────────────────────────────────────────────
	if cfg.Catalog.DefaultLanguage == "" {
		cfg.Catalog.DefaultLanguage = DefaultLanguage
	}

	// ── Metrics ───────────────────────────────────────────────────────────────
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = DefaultMetricsPath
	}
	if cfg.Metrics.Namespace == "" {
		cfg.Metrics.Namespace = DefaultMetricsNamespace
	}

	// ── CORS ──────────────────────────────────────────────────────────────────
	if len(cfg.CORS.AllowOrigins) == 0 {
		cfg.CORS.AllowOrigins = []string{"*"}
	}
	if cfg.CORS.MaxAge == 0 {
		cfg.CORS.MaxAge = DefaultCORSMaxAge
	}

	// ── Log ───────────────────────────────────────────────────────────────────
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}
	if len(cfg.Log.OutputPaths) == 0 {
		cfg.Log.OutputPaths = []string{"stdout"}
	}
}

//Personal.AI order the ending
