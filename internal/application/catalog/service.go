// Package catalog is the application layer over the machine dataset: the
// filter/sort engine, detail lookups, two-way comparison and the price
// estimators, exposed as one Service to the HTTP and CLI interfaces.
package catalog

import (
	"context"
	"time"

	"github.com/turtacn/MacBench/internal/domain/machine"
	"github.com/turtacn/MacBench/internal/domain/view"
	"github.com/turtacn/MacBench/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/MacBench/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/MacBench/pkg/errors"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

// ListResult is the visible slice of the catalog for one view state.
type ListResult struct {
	State  view.State `json:"state"`
	Query  string     `json:"query"`
	Rows   []Row      `json:"rows"`
	Count  int        `json:"count"`
	Total  int        `json:"total"`
	Facets Facets     `json:"facets"`
}

// Detail is one machine with its scoring breakdown and price estimates.
type Detail struct {
	Row       Row                    `json:"machine"`
	Breakdown machine.ScoreBreakdown `json:"breakdown"`
	Estimates machine.Estimates      `json:"estimates"`
}

// EstimateRequest asks for trade-in and refurbished prices of an arbitrary
// purchase.
type EstimateRequest struct {
	Price float64 `json:"price"`
	Year  int     `json:"year"`
}

// Validate checks the request fields.
func (r *EstimateRequest) Validate() error {
	if r.Price < 0 {
		return errors.New(errors.ErrCodeEstimateInputError, "price must be >= 0")
	}
	if r.Year <= 0 {
		return errors.New(errors.ErrCodeEstimateInputError, "year must be positive")
	}
	return nil
}

// EstimateResult answers an EstimateRequest.
type EstimateResult struct {
	Price       float64 `json:"price"`
	Year        int     `json:"year"`
	CurrentYear int     `json:"currentYear"`
	machine.Estimates
}

// ScenarioInfo describes one scenario for clients.
type ScenarioInfo struct {
	Name    machine.Scenario `json:"name"`
	Weights machine.Weights  `json:"weights"`
	Default bool             `json:"default"`
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service is the catalog use-case boundary.
type Service interface {
	List(ctx context.Context, state view.State) (*ListResult, error)
	Get(ctx context.Context, id string, scenario machine.Scenario) (*Detail, error)
	Compare(ctx context.Context, ids []string, scenario machine.Scenario) (*Comparison, error)
	Estimate(req *EstimateRequest) (*EstimateResult, error)
	Scenarios() []ScenarioInfo
	CurrentYear() int
}

// ServiceConfig tunes the catalog service.
type ServiceConfig struct {
	// CurrentYear pins the estimator year; zero means the wall clock.
	CurrentYear int
	// Now is the clock used when CurrentYear is zero.
	Now func() time.Time
}

type serviceImpl struct {
	repo    machine.Repository
	logger  logging.Logger
	metrics *prometheus.AppMetrics
	config  ServiceConfig
}

// NewService wires the catalog service.  logger and metrics may be nil.
func NewService(repo machine.Repository, logger logging.Logger, metrics *prometheus.AppMetrics, cfg *ServiceConfig) Service {
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
	if c.Now == nil {
		c.Now = time.Now
	}
	return &serviceImpl{repo: repo, logger: logger.Named("catalog"), metrics: metrics, config: c}
}

func (s *serviceImpl) CurrentYear() int {
	if s.config.CurrentYear > 0 {
		return s.config.CurrentYear
	}
	return s.config.Now().Year()
}

func (s *serviceImpl) List(ctx context.Context, state view.State) (*ListResult, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		prometheus.RecordError(s.metrics, "catalog", "list")
		return nil, errors.Wrap(err, errors.CodeUnknown, "list machines")
	}
	state = state.Normalize()
	rows := Filter(records, state)

	total := 0
	for _, m := range records {
		if !m.IsReference || state.ShowReference {
			total++
		}
	}

	prometheus.RecordCatalogQuery(s.metrics, string(state.Scenario), string(state.Sort), len(rows))
	s.logger.Debug("catalog query",
		logging.String("query", state.QueryString()),
		logging.Int("rows", len(rows)),
	)
	return &ListResult{
		State:  state,
		Query:  state.QueryString(),
		Rows:   rows,
		Count:  len(rows),
		Total:  total,
		Facets: CountFacets(rows),
	}, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string, scenario machine.Scenario) (*Detail, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !scenario.IsValid() {
		scenario = machine.DefaultScenario
	}
	return &Detail{
		Row:       NewRow(m, scenario),
		Breakdown: machine.Breakdown(m, scenario),
		Estimates: machine.Estimate(m, s.CurrentYear()),
	}, nil
}

func (s *serviceImpl) Compare(ctx context.Context, ids []string, scenario machine.Scenario) (*Comparison, error) {
	leftID, rightID, err := CompareIDs(ids)
	if err != nil {
		return nil, err
	}
	left, err := s.repo.FindByID(ctx, leftID)
	if err != nil {
		return nil, err
	}
	right, err := s.repo.FindByID(ctx, rightID)
	if err != nil {
		return nil, err
	}
	cmp := Compare(left, right, scenario)
	return &cmp, nil
}

func (s *serviceImpl) Estimate(req *EstimateRequest) (*EstimateResult, error) {
	if req == nil {
		return nil, errors.New(errors.ErrCodeEstimateInputError, "request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	year := s.CurrentYear()
	return &EstimateResult{
		Price:       req.Price,
		Year:        req.Year,
		CurrentYear: year,
		Estimates: machine.Estimates{
			Age:         machine.Age(req.Year, year),
			TradeIn:     machine.EstimateTradeInValue(req.Price, req.Year, year),
			Refurbished: machine.EstimateRefurbishedPrice(req.Price, req.Year, year),
		},
	}, nil
}

func (s *serviceImpl) Scenarios() []ScenarioInfo {
	out := make([]ScenarioInfo, 0, len(machine.Scenarios))
	for _, sc := range machine.Scenarios {
		out = append(out, ScenarioInfo{Name: sc, Weights: sc.Weights(), Default: sc == machine.DefaultScenario})
	}
	return out
}

//Personal.AI order the ending
