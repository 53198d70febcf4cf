// Package llm implements the chat backends the advisor talks to: Google
// Gemini generateContent and any OpenAI-compatible chat/completions
// endpoint.  Both are thin net/http clients returning the first text
// candidate.
package llm

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/turtacn/MacBench/internal/config"
	"github.com/turtacn/MacBench/pkg/errors"
)

// Client generates a completion for a single prompt.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Name() string
}

// Provider names accepted by New.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// maxResponseBytes caps how much of a backend response is read.
const maxResponseBytes = 1 << 20

// Options holds the parameters shared by every backend.
type Options struct {
	BaseURL         string
	APIKey          string
	Model           string
	Temperature     float64
	MaxOutputTokens int
	HTTPClient      *http.Client
}

func (o *Options) normalize(defaultBaseURL string) {
	if o.BaseURL == "" {
		o.BaseURL = defaultBaseURL
	}
	o.BaseURL = strings.TrimRight(o.BaseURL, "/")
	if o.HTTPClient == nil {
		o.HTTPClient = &http.Client{Timeout: 60 * time.Second}
	}
}

// New builds the backend selected by cfg.Provider.  An empty API key yields
// ADV_004 so callers can fall back to offline mode.
func New(cfg config.AdvisorConfig, httpClient *http.Client) (Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New(errors.ErrCodeAdvisorNotConfigured, "advisor api key is not set")
	}
	opts := Options{
		BaseURL:         cfg.BaseURL,
		APIKey:          cfg.APIKey,
		Model:           cfg.Model,
		Temperature:     cfg.Temperature,
		MaxOutputTokens: cfg.MaxOutputTokens,
		HTTPClient:      httpClient,
	}
	switch cfg.Provider {
	case ProviderGemini:
		return NewGemini(opts), nil
	case ProviderOpenAI:
		return NewOpenAI(opts), nil
	default:
		return nil, errors.New(errors.ErrCodeAdvisorNotConfigured, "unknown advisor provider").WithDetail(cfg.Provider)
	}
}

// statusError turns a non-200 response into ADV_001 carrying a trimmed body.
func statusError(backend string, status int, body []byte) error {
	return errors.New(errors.ErrCodeAdvisorUnavailable, fmt.Sprintf("%s returned HTTP %d", backend, status)).
		WithDetail(truncate(strings.TrimSpace(string(body)), maxDetailBytes))
}

const maxDetailBytes = 200

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

//Personal.AI order the ending
