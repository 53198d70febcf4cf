package llm

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/MacBench/internal/config"
	"github.com/turtacn/MacBench/pkg/errors"
)

func TestGemini_Generate(t *testing.T) {
	var got geminiRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/models/gemini-test:generateContent", r.URL.Path)
		assert.Equal(t, "k-123", r.URL.Query().Get("key"))
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &got))
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Buy the "},{"text":"Mac mini."}]}}]}`))
	}))
	defer srv.Close()

	g := NewGemini(Options{BaseURL: srv.URL + "/", APIKey: "k-123", Model: "gemini-test", Temperature: 0.3, MaxOutputTokens: 64})
	text, err := g.Generate(context.Background(), "which mac?")
	require.NoError(t, err)
	assert.Equal(t, "Buy the Mac mini.", text)
	assert.Equal(t, "gemini", g.Name())

	require.Len(t, got.Contents, 1)
	assert.Equal(t, "which mac?", got.Contents[0].Parts[0].Text)
	assert.Equal(t, 0.3, got.GenerationConfig.Temperature)
	assert.Equal(t, 64, got.GenerationConfig.MaxOutputTokens)
}

func TestGemini_Failures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		code   errors.ErrorCode
	}{
		{"non-200", http.StatusTooManyRequests, `{"error":"quota"}`, errors.ErrCodeAdvisorUnavailable},
		{"malformed", http.StatusOK, `{"candidates":`, errors.ErrCodeAdvisorBadResponse},
		{"no candidates", http.StatusOK, `{"candidates":[]}`, errors.ErrCodeAdvisorBadResponse},
		{"blank text", http.StatusOK, `{"candidates":[{"content":{"parts":[{"text":"  "}]}}]}`, errors.ErrCodeAdvisorBadResponse},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := NewGemini(Options{BaseURL: srv.URL, APIKey: "k"}).Generate(context.Background(), "q")
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, tt.code), err.Error())
		})
	}
}

func TestStatusError_DetailKeepsRunesWhole(t *testing.T) {
	body := strings.Repeat("配额已用尽", 30)
	err := statusError("gemini", http.StatusTooManyRequests, []byte(body))

	var ae *errors.AppError
	require.True(t, errors.As(err, &ae))
	assert.True(t, utf8.ValidString(ae.Detail))
	assert.LessOrEqual(t, len(ae.Detail), maxDetailBytes)
	assert.True(t, strings.HasPrefix(body, ae.Detail))
	assert.NotEmpty(t, ae.Detail)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "ab", truncate("abcd", 2))
	assert.Equal(t, "a", truncate("añb", 2))
	assert.Equal(t, "", truncate("ñ", 1))
}

func TestGemini_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := NewGemini(Options{BaseURL: srv.URL, APIKey: "k"}).Generate(ctx, "q")
	assert.True(t, errors.IsCode(err, errors.ErrCodeAdvisorUnavailable))
}

func TestOpenAI_Generate(t *testing.T) {
	var got chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"  Get the Air.  "}}]}`))
	}))
	defer srv.Close()

	o := NewOpenAI(Options{BaseURL: srv.URL + "/v1", APIKey: "sk-test", Model: "gpt-test"})
	text, err := o.Generate(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "Get the Air.", text)
	assert.Equal(t, "gpt-test", got.Model)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, "user", got.Messages[0].Role)
}

func TestOpenAI_Failures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()
	_, err := NewOpenAI(Options{BaseURL: srv.URL, APIKey: "k"}).Generate(context.Background(), "q")
	assert.True(t, errors.IsCode(err, errors.ErrCodeAdvisorUnavailable))

	empty := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer empty.Close()
	_, err = NewOpenAI(Options{BaseURL: empty.URL, APIKey: "k"}).Generate(context.Background(), "q")
	assert.True(t, errors.IsCode(err, errors.ErrCodeAdvisorBadResponse))
}

func TestNew(t *testing.T) {
	_, err := New(config.AdvisorConfig{Provider: "gemini"}, nil)
	assert.True(t, errors.IsCode(err, errors.ErrCodeAdvisorNotConfigured))

	c, err := New(config.AdvisorConfig{Provider: "gemini", APIKey: "k"}, nil)
	require.NoError(t, err)
	assert.Equal(t, ProviderGemini, c.Name())

	c, err = New(config.AdvisorConfig{Provider: "openai", APIKey: "k"}, nil)
	require.NoError(t, err)
	assert.Equal(t, ProviderOpenAI, c.Name())

	_, err = New(config.AdvisorConfig{Provider: "claude", APIKey: "k"}, nil)
	assert.True(t, errors.IsCode(err, errors.ErrCodeAdvisorNotConfigured))
}

func TestDefaults(t *testing.T) {
	g := NewGemini(Options{})
	assert.Equal(t, config.DefaultAdvisorGeminiBaseURL, g.opts.BaseURL)
	assert.Equal(t, config.DefaultAdvisorGeminiModel, g.opts.Model)

	o := NewOpenAI(Options{})
	assert.Equal(t, config.DefaultAdvisorOpenAIBaseURL, o.opts.BaseURL)
	assert.Equal(t, config.DefaultAdvisorOpenAIModel, o.opts.Model)
}
