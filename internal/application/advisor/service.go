// Package advisor answers buying questions over the rows the user is
// looking at.  A chat backend is tried first; any failure, an empty answer
// or offline mode routes the question to the local Fallback responder, so
// callers always receive advice and never a backend error.
package advisor

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/turtacn/MacBench/internal/application/catalog"
	"github.com/turtacn/MacBench/internal/domain/machine"
	"github.com/turtacn/MacBench/internal/i18n"
	"github.com/turtacn/MacBench/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/MacBench/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/MacBench/pkg/errors"
)

// maxQueryLength bounds a question in bytes.
const maxQueryLength = 2000

// Source tells where an answer came from.
type Source string

const (
	SourceLLM      Source = "llm"
	SourceFallback Source = "fallback"
)

// ChatModel is the backend contract.  Implementations live in
// internal/infrastructure/llm.
type ChatModel interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Name() string
}

// Cache stores backend answers.  The Redis cache satisfies it.
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

// Request is one question over the visible rows.
type Request struct {
	Query    string           `json:"query"`
	Language string           `json:"language"`
	Scenario machine.Scenario `json:"scenario"`
	Rows     []catalog.Row    `json:"-"`
}

// Validate checks the question.
func (r *Request) Validate() error {
	q := strings.TrimSpace(r.Query)
	if q == "" {
		return errors.New(errors.ErrCodeAdvisorQueryRequired, "advisor query is required")
	}
	if len(q) > maxQueryLength {
		return errors.InvalidParam("advisor query is too long")
	}
	return nil
}

// Response is the advice.
type Response struct {
	Answer   string    `json:"answer"`
	Source   Source    `json:"source"`
	Language i18n.Lang `json:"language"`
	Cached   bool      `json:"cached"`
}

// Service answers advisor requests.
type Service interface {
	Advise(ctx context.Context, req *Request) (*Response, error)
}

// ServiceConfig tunes the advisor.
type ServiceConfig struct {
	Timeout  time.Duration
	CacheTTL time.Duration
	Offline  bool
}

const defaultTimeout = 20 * time.Second

type serviceImpl struct {
	model   ChatModel
	cache   Cache
	logger  logging.Logger
	metrics *prometheus.AppMetrics
	config  ServiceConfig
	group   singleflight.Group
}

// NewService wires the advisor.  model and cache may be nil: a nil model
// means every answer comes from Fallback, a nil cache disables caching.
func NewService(model ChatModel, cache Cache, logger logging.Logger, metrics *prometheus.AppMetrics, cfg *ServiceConfig) Service {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	if metrics == nil {
		metrics = prometheus.NewNoopAppMetrics()
	}
	c := ServiceConfig{}
	if cfg != nil {
		c = *cfg
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	return &serviceImpl{model: model, cache: cache, logger: logger.Named("advisor"), metrics: metrics, config: c}
}

type cachedAnswer struct {
	Answer string `json:"answer"`
}

func (s *serviceImpl) Advise(ctx context.Context, req *Request) (*Response, error) {
	if req == nil {
		return nil, errors.New(errors.ErrCodeAdvisorQueryRequired, "advisor query is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	lang := i18n.Match(req.Language)
	scenario, _ := machine.ParseScenario(string(req.Scenario))
	query := strings.TrimSpace(req.Query)
	start := time.Now()

	if s.model == nil || s.config.Offline {
		prometheus.RecordAdvisorRequest(s.metrics, string(SourceFallback), "offline", time.Since(start))
		return s.fallback(query, lang, scenario, req.Rows), nil
	}

	key := cacheKey(query, lang, scenario, req.Rows)
	if answer, ok := s.lookup(ctx, key); ok {
		prometheus.RecordAdvisorRequest(s.metrics, "cache", "ok", time.Since(start))
		return &Response{Answer: answer, Source: SourceLLM, Language: lang, Cached: true}, nil
	}

	v, err, _ := s.group.Do(key, func() (interface{}, error) {
		callCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.config.Timeout)
		defer cancel()
		answer, err := s.model.Generate(callCtx, BuildPrompt(query, lang, scenario, req.Rows))
		if err != nil {
			return "", err
		}
		answer = strings.TrimSpace(answer)
		if answer == "" {
			return "", errors.New(errors.ErrCodeAdvisorBadResponse, "empty answer")
		}
		s.store(ctx, key, answer)
		return answer, nil
	})
	if err != nil {
		status := "error"
		if errors.IsCode(err, errors.ErrCodeAdvisorBadResponse) {
			status = "bad_response"
		}
		s.logger.Warn("chat backend failed, using fallback",
			logging.String("backend", s.model.Name()),
			logging.String("status", status),
			logging.Err(err),
		)
		prometheus.RecordAdvisorRequest(s.metrics, string(SourceFallback), status, time.Since(start))
		return s.fallback(query, lang, scenario, req.Rows), nil
	}

	prometheus.RecordAdvisorRequest(s.metrics, string(SourceLLM), "ok", time.Since(start))
	return &Response{Answer: v.(string), Source: SourceLLM, Language: lang}, nil
}

func (s *serviceImpl) fallback(query string, lang i18n.Lang, scenario machine.Scenario, rows []catalog.Row) *Response {
	return &Response{
		Answer:   Fallback(query, lang, scenario, rows),
		Source:   SourceFallback,
		Language: lang,
	}
}

func (s *serviceImpl) lookup(ctx context.Context, key string) (string, bool) {
	if s.cache == nil || s.config.CacheTTL <= 0 {
		return "", false
	}
	var hit cachedAnswer
	if err := s.cache.Get(ctx, key, &hit); err != nil {
		if !errors.IsNotFound(err) {
			s.logger.Warn("advisor cache read failed", logging.Err(err))
		}
		prometheus.RecordCacheAccess(s.metrics, "advisor", false)
		return "", false
	}
	prometheus.RecordCacheAccess(s.metrics, "advisor", true)
	return hit.Answer, hit.Answer != ""
}

func (s *serviceImpl) store(ctx context.Context, key, answer string) {
	if s.cache == nil || s.config.CacheTTL <= 0 {
		return
	}
	if err := s.cache.Set(context.WithoutCancel(ctx), key, cachedAnswer{Answer: answer}, s.config.CacheTTL); err != nil {
		s.logger.Warn("advisor cache write failed", logging.Err(err))
	}
}

// cacheKey identifies a question by its text, language, scenario and the ids
// of the rows it was asked over.
func cacheKey(query string, lang i18n.Lang, scenario machine.Scenario, rows []catalog.Row) string {
	h := sha256.New()
	h.Write([]byte(strings.ToLower(query)))
	h.Write([]byte{0})
	h.Write([]byte(lang))
	h.Write([]byte{0})
	h.Write([]byte(scenario))
	for _, r := range rows {
		h.Write([]byte{0})
		h.Write([]byte(r.ID))
	}
	return "advisor:" + hex.EncodeToString(h.Sum(nil))
}

//Personal.AI order the ending
