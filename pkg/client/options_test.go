package client

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWithHTTPClient(t *testing.T) {
	custom := &http.Client{Timeout: 60 * time.Second}
	c := &Client{}
	WithHTTPClient(custom)(c)
	assert.Same(t, custom, c.httpClient)

	WithHTTPClient(nil)(c)
	assert.Same(t, custom, c.httpClient)
}

func TestWithLogger(t *testing.T) {
	logger := &testLogger{}
	c := &Client{logger: noopLogger{}}
	WithLogger(logger)(c)
	assert.Same(t, logger, c.logger)

	WithLogger(nil)(c)
	assert.Same(t, logger, c.logger)
}

func TestWithRetryMax(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{"positive value", 5, 5},
		{"zero value", 0, 0},
		{"negative value ignored", -1, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Client{retryMax: 3}
			WithRetryMax(tt.input)(c)
			assert.Equal(t, tt.expected, c.retryMax)
		})
	}
}

func TestWithRetryWait(t *testing.T) {
	tests := []struct {
		name      string
		min       time.Duration
		max       time.Duration
		expectMin time.Duration
		expectMax time.Duration
	}{
		{"valid range", time.Second, 5 * time.Second, time.Second, 5 * time.Second},
		{"equal values", 2 * time.Second, 2 * time.Second, 2 * time.Second, 2 * time.Second},
		{"zero min", 0, 5 * time.Second, 500 * time.Millisecond, 5 * time.Second},
		{"max less than min", 5 * time.Second, 2 * time.Second, 5 * time.Second, 5 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Client{retryWaitMin: 500 * time.Millisecond, retryWaitMax: 5 * time.Second}
			WithRetryWait(tt.min, tt.max)(c)
			assert.Equal(t, tt.expectMin, c.retryWaitMin)
			assert.Equal(t, tt.expectMax, c.retryWaitMax)
		})
	}
}

func TestWithUserAgent(t *testing.T) {
	c := &Client{userAgent: "default"}
	WithUserAgent("")(c)
	assert.Equal(t, "default", c.userAgent)

	WithUserAgent("custom-agent/1.0")(c)
	assert.Equal(t, "custom-agent/1.0", c.userAgent)
}

func TestWithAPIKeyAndLanguage(t *testing.T) {
	c := &Client{}
	WithAPIKey("secret")(c)
	WithLanguage("zh")(c)
	assert.Equal(t, "secret", c.apiKey)
	assert.Equal(t, "zh", c.language)
}
