// Package client is the Go SDK for the MacBench HTTP API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/turtacn/MacBench/pkg/errors"
	"github.com/turtacn/MacBench/pkg/types/machine"
)

const Version = "0.1.0"

const apiPrefix = "/api/v1"

// Logger defines the logging interface used by the Client
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

type noopLogger struct{}

func (noopLogger) Debugf(format string, args ...interface{}) {}
func (noopLogger) Infof(format string, args ...interface{})  {}
func (noopLogger) Errorf(format string, args ...interface{}) {}

// Client is the MacBench SDK client
type Client struct {
	baseURL      string
	httpClient   *http.Client
	apiKey       string
	userAgent    string
	language     string
	logger       Logger
	retryMax     int
	retryWaitMin time.Duration
	retryWaitMax time.Duration

	machines        *MachinesClient
	machinesOnce    sync.Once
	advisor         *AdvisorClient
	advisorOnce     sync.Once
	preferences     *PreferencesClient
	preferencesOnce sync.Once
}

// APIError is a non-2xx response from the API.
type APIError struct {
	StatusCode int    `json:"statusCode"`
	Code       string `json:"code"`
	Message    string `json:"message"`
	Detail     string `json:"detail,omitempty"`
	RequestID  string `json:"requestId"`
}

func (e *APIError) Error() string {
	msg := e.Message
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return fmt.Sprintf("macbench: %s (HTTP %d): %s [request_id=%s]", e.Code, e.StatusCode, msg, e.RequestID)
}

func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

func (e *APIError) IsBadRequest() bool {
	return e.StatusCode == http.StatusBadRequest
}

func (e *APIError) IsRateLimited() bool {
	return e.StatusCode == http.StatusTooManyRequests
}

func (e *APIError) IsServerError() bool {
	return e.StatusCode >= 500 && e.StatusCode < 600
}

// NewClient creates a client for the server at baseURL, e.g.
// "https://macbench.example".
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, errors.ErrInvalidConfig
	}

	parsedURL, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid baseURL: %v", errors.ErrInvalidConfig, err)
	}
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return nil, fmt.Errorf("%w: baseURL scheme must be http or https", errors.ErrInvalidConfig)
	}

	c := &Client{
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		httpClient:   &http.Client{Timeout: 30 * time.Second},
		userAgent:    fmt.Sprintf("macbench-go-sdk/%s", Version),
		logger:       noopLogger{},
		retryMax:     3,
		retryWaitMin: 500 * time.Millisecond,
		retryWaitMax: 5 * time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Machines returns the catalog sub-client (lazy initialization, thread-safe)
func (c *Client) Machines() *MachinesClient {
	c.machinesOnce.Do(func() {
		c.machines = &MachinesClient{client: c}
	})
	return c.machines
}

// Advisor returns the advisor sub-client (lazy initialization, thread-safe)
func (c *Client) Advisor() *AdvisorClient {
	c.advisorOnce.Do(func() {
		c.advisor = &AdvisorClient{client: c}
	})
	return c.advisor
}

// Preferences returns the preferences sub-client (lazy initialization, thread-safe)
func (c *Client) Preferences() *PreferencesClient {
	c.preferencesOnce.Do(func() {
		c.preferences = &PreferencesClient{client: c}
	})
	return c.preferences
}

// do performs an HTTP request with retry logic.  path is relative to
// /api/v1 unless it already starts with it.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body interface{}, result interface{}) error {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if !strings.HasPrefix(path, apiPrefix+"/") {
		path = apiPrefix + path
	}
	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	var bodyBytes []byte
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyBytes = b
	}

	var lastErr error
	for attempt := 0; attempt <= c.retryMax; attempt++ {
		if attempt > 0 {
			backoff := c.calculateBackoff(attempt)
			c.logger.Debugf("Retry attempt %d after %v", attempt, backoff)
			if err := sleepCtx(ctx, backoff); err != nil {
				return err
			}
		}

		var bodyReader io.Reader
		if bodyBytes != nil {
			bodyReader = bytes.NewReader(bodyBytes)
		}
		req, err := http.NewRequestWithContext(ctx, method, fullURL, bodyReader)
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}

		requestID := uuid.New().String()
		if c.apiKey != "" {
			req.Header.Set("Authorization", "Bearer "+c.apiKey)
		}
		if bodyBytes != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		if c.language != "" {
			req.Header.Set("Accept-Language", c.language)
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("User-Agent", c.userAgent)
		req.Header.Set("X-Request-ID", requestID)

		start := time.Now()
		resp, err := c.httpClient.Do(req)
		duration := time.Since(start)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.logger.Errorf("Request failed: %v", err)
			lastErr = err
			continue
		}

		c.logger.Debugf("%s %s %d (%v)", method, path, resp.StatusCode, duration)

		respBody, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return fmt.Errorf("failed to read response body: %w", err)
		}

		if resp.StatusCode == http.StatusTooManyRequests && attempt < c.retryMax {
			if wait, ok := c.retryAfter(resp.Header.Get("Retry-After")); ok {
				c.logger.Infof("Rate limited, retrying after %v", wait)
				if err := sleepCtx(ctx, wait); err != nil {
					return err
				}
				lastErr = parseAPIError(resp.StatusCode, requestID, respBody)
				continue
			}
		}

		if resp.StatusCode >= 400 {
			apiErr := parseAPIError(resp.StatusCode, requestID, respBody)
			lastErr = apiErr
			if c.shouldRetry(resp) {
				continue
			}
			return apiErr
		}

		if result != nil && len(respBody) > 0 {
			if err := json.Unmarshal(respBody, result); err != nil {
				return fmt.Errorf("failed to unmarshal response: %w", err)
			}
		}
		return nil
	}

	return lastErr
}

func (c *Client) get(ctx context.Context, path string, query url.Values, result interface{}) error {
	return c.do(ctx, http.MethodGet, path, query, nil, result)
}

func (c *Client) post(ctx context.Context, path string, body interface{}, result interface{}) error {
	return c.do(ctx, http.MethodPost, path, nil, body, result)
}

func (c *Client) put(ctx context.Context, path string, body interface{}, result interface{}) error {
	return c.do(ctx, http.MethodPut, path, nil, body, result)
}

// parseAPIError decodes the server's error envelope, falling back to the
// raw body.
func parseAPIError(status int, requestID string, body []byte) *APIError {
	apiErr := &APIError{StatusCode: status, RequestID: requestID}
	if len(body) == 0 {
		return apiErr
	}
	var env machine.ErrorResponse
	if err := json.Unmarshal(body, &env); err == nil && env.Code != "" {
		apiErr.Code = env.Code
		apiErr.Message = env.Message
		apiErr.Detail = env.Detail
		if env.RequestID != "" {
			apiErr.RequestID = env.RequestID
		}
		return apiErr
	}
	apiErr.Message = string(body)
	return apiErr
}

// shouldRetry reports whether a failed response is worth another attempt.
// 4xx answers are final.
func (c *Client) shouldRetry(resp *http.Response) bool {
	return resp.StatusCode >= 500 && resp.StatusCode < 600
}

// retryAfter reads a Retry-After header in seconds.  Waits longer than
// retryWaitMax are not honoured so the caller sees the 429 instead.
func (c *Client) retryAfter(v string) (time.Duration, bool) {
	seconds, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || seconds < 0 {
		return 0, false
	}
	wait := time.Duration(seconds) * time.Second
	if wait > c.retryWaitMax {
		return 0, false
	}
	return wait, true
}

func (c *Client) calculateBackoff(attempt int) time.Duration {
	backoff := c.retryWaitMin * time.Duration(1<<uint(attempt-1))
	if backoff > c.retryWaitMax {
		backoff = c.retryWaitMax
	}
	// 0-25% jitter
	if quarter := int64(backoff / 4); quarter > 0 {
		backoff += time.Duration(rand.Int63n(quarter))
	}
	return backoff
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

//Personal.AI order the ending
