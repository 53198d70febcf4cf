package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/turtacn/MacBench/internal/config"
	"github.com/turtacn/MacBench/pkg/errors"
)

// Gemini calls models/{model}:generateContent.
type Gemini struct {
	opts Options
}

// NewGemini returns a Gemini backend.
func NewGemini(opts Options) *Gemini {
	opts.normalize(config.DefaultAdvisorGeminiBaseURL)
	if opts.Model == "" {
		opts.Model = config.DefaultAdvisorGeminiModel
	}
	return &Gemini{opts: opts}
}

func (g *Gemini) Name() string { return ProviderGemini }

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiGenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// Generate sends prompt as a single user turn.
func (g *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	payload := geminiRequest{
		Contents: []geminiContent{{Role: "user", Parts: []geminiPart{{Text: prompt}}}},
		GenerationConfig: geminiGenerationConfig{
			Temperature:     g.opts.Temperature,
			MaxOutputTokens: g.opts.MaxOutputTokens,
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrCodeSerialization, "encode gemini request")
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		g.opts.BaseURL, url.PathEscape(g.opts.Model), url.QueryEscape(g.opts.APIKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", errors.Wrap(err, errors.ErrCodeAdvisorUnavailable, "build gemini request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.opts.HTTPClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrCodeAdvisorUnavailable, "gemini request failed")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", errors.Wrap(err, errors.ErrCodeAdvisorUnavailable, "read gemini response")
	}
	if resp.StatusCode != http.StatusOK {
		return "", statusError("gemini", resp.StatusCode, raw)
	}

	var out geminiResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", errors.Wrap(err, errors.ErrCodeAdvisorBadResponse, "decode gemini response")
	}
	if len(out.Candidates) == 0 {
		return "", errors.New(errors.ErrCodeAdvisorBadResponse, "empty gemini response")
	}
	var sb strings.Builder
	for _, p := range out.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", errors.New(errors.ErrCodeAdvisorBadResponse, "empty gemini response")
	}
	return text, nil
}

//Personal.AI order the ending
