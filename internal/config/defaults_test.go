package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyDefaults_EmptyConfig(t *testing.T) {
	cfg := &Config{}
	ApplyDefaults(cfg)

	assert.Equal(t, DefaultServerPort, cfg.Server.Port)
	assert.Equal(t, DefaultServerMode, cfg.Server.Mode)
	assert.Equal(t, DefaultRedisAddr, cfg.Redis.Addr)
	assert.Equal(t, DefaultAdvisorProvider, cfg.Advisor.Provider)
	assert.Equal(t, DefaultAdvisorGeminiBaseURL, cfg.Advisor.BaseURL)
	assert.Equal(t, DefaultAdvisorGeminiModel, cfg.Advisor.Model)
	assert.Equal(t, DefaultLanguage, cfg.Catalog.DefaultLanguage)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowOrigins)
	assert.Equal(t, []string{"stdout"}, cfg.Log.OutputPaths)
}

func TestApplyDefaults_OpenAIProvider(t *testing.T) {
	cfg := &Config{}
	cfg.Advisor.Provider = "openai"
	ApplyDefaults(cfg)

	assert.Equal(t, DefaultAdvisorOpenAIBaseURL, cfg.Advisor.BaseURL)
	assert.Equal(t, DefaultAdvisorOpenAIModel, cfg.Advisor.Model)
}

func TestApplyDefaults_PreserveExistingValues(t *testing.T) {
	cfg := &Config{}
	cfg.Server.Port = 9999
	cfg.Advisor.Model = "custom"
	ApplyDefaults(cfg)

	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, "custom", cfg.Advisor.Model)
}

func TestApplyDefaults_Nil(t *testing.T) {
	assert.NotPanics(t, func() { ApplyDefaults(nil) })
}
