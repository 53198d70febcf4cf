package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/turtacn/MacBench/internal/config"
	"github.com/turtacn/MacBench/pkg/errors"
)

// OpenAI calls an OpenAI-compatible /chat/completions endpoint.
type OpenAI struct {
	opts Options
}

// NewOpenAI returns an OpenAI-compatible backend.
func NewOpenAI(opts Options) *OpenAI {
	opts.normalize(config.DefaultAdvisorOpenAIBaseURL)
	if opts.Model == "" {
		opts.Model = config.DefaultAdvisorOpenAIModel
	}
	return &OpenAI{opts: opts}
}

func (o *OpenAI) Name() string { return ProviderOpenAI }

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Generate sends prompt as a single user message.
func (o *OpenAI) Generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model:       o.opts.Model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: o.opts.Temperature,
		MaxTokens:   o.opts.MaxOutputTokens,
	})
	if err != nil {
		return "", errors.Wrap(err, errors.ErrCodeSerialization, "encode chat request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.opts.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", errors.Wrap(err, errors.ErrCodeAdvisorUnavailable, "build chat request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+o.opts.APIKey)

	resp, err := o.opts.HTTPClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrCodeAdvisorUnavailable, "chat request failed")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", errors.Wrap(err, errors.ErrCodeAdvisorUnavailable, "read chat response")
	}
	if resp.StatusCode != http.StatusOK {
		return "", statusError("openai", resp.StatusCode, raw)
	}

	var out chatResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", errors.Wrap(err, errors.ErrCodeAdvisorBadResponse, "decode chat response")
	}
	if len(out.Choices) == 0 {
		return "", errors.New(errors.ErrCodeAdvisorBadResponse, "empty chat response")
	}
	text := strings.TrimSpace(out.Choices[0].Message.Content)
	if text == "" {
		return "", errors.New(errors.ErrCodeAdvisorBadResponse, "empty chat response")
	}
	return text, nil
}

//Personal.AI order the ending
