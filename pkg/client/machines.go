package client

import (
	"context"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/turtacn/MacBench/pkg/errors"
	"github.com/turtacn/MacBench/pkg/types/machine"
)

func invalidArg(msg string) error {
	return errors.InvalidParam(msg)
}

// ListOptions selects and orders catalog rows.  Zero values mean the
// server default for that dimension.
type ListOptions struct {
	Search        string
	Type          string
	Family        string
	OS            string
	Sort          string
	Dir           string
	Scenario      string
	ShowReference bool
	Compare       []string
}

// Values encodes the options as view query parameters.
func (o *ListOptions) Values() url.Values {
	q := url.Values{}
	if o == nil {
		return q
	}
	set := func(k, v string) {
		if v = strings.TrimSpace(v); v != "" {
			q.Set(k, v)
		}
	}
	set("q", o.Search)
	set("type", o.Type)
	set("family", o.Family)
	set("os", o.OS)
	set("sort", o.Sort)
	set("dir", o.Dir)
	set("scenario", o.Scenario)
	if o.ShowReference {
		q.Set("ref", "1")
	}
	if len(o.Compare) > 0 {
		q.Set("compare", strings.Join(o.Compare, ","))
	}
	return q
}

// MachinesClient provides access to the catalog endpoints.
type MachinesClient struct {
	client *Client
}

// List returns the rows visible under opts.
// GET /api/v1/machines
func (mc *MachinesClient) List(ctx context.Context, opts *ListOptions) (*machine.ListResult, error) {
	var result machine.ListResult
	if err := mc.client.get(ctx, "/machines", opts.Values(), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListQuery is List over a shared-link query string such as
// "type=laptop&sort=price".  A leading "?" or full URL is accepted.
func (mc *MachinesClient) ListQuery(ctx context.Context, rawQuery string) (*machine.ListResult, error) {
	if i := strings.IndexByte(rawQuery, '?'); i >= 0 {
		rawQuery = rawQuery[i+1:]
	}
	q, err := url.ParseQuery(rawQuery)
	if err != nil {
		// the server tolerates malformed links; so does the client
		q = url.Values{}
	}
	var result machine.ListResult
	if err := mc.client.get(ctx, "/machines", q, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Get returns one machine with its score breakdown and estimates.
// GET /api/v1/machines/{id}
func (mc *MachinesClient) Get(ctx context.Context, id, scenario string) (*machine.Detail, error) {
	if strings.TrimSpace(id) == "" {
		return nil, invalidArg("id is required")
	}
	var result machine.Detail
	if err := mc.client.get(ctx, "/machines/"+url.PathEscape(id), scenarioQuery(scenario), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Compare returns the per-metric comparison of two machines.
// GET /api/v1/compare?ids=a,b
func (mc *MachinesClient) Compare(ctx context.Context, leftID, rightID, scenario string) (*machine.Comparison, error) {
	if strings.TrimSpace(leftID) == "" || strings.TrimSpace(rightID) == "" {
		return nil, invalidArg("two machine ids are required")
	}
	q := scenarioQuery(scenario)
	q.Set("ids", leftID+","+rightID)
	var result machine.Comparison
	if err := mc.client.get(ctx, "/compare", q, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Scenarios lists the scoring scenarios.
// GET /api/v1/scenarios
func (mc *MachinesClient) Scenarios(ctx context.Context) ([]machine.ScenarioInfo, error) {
	var result machine.ScenarioList
	if err := mc.client.get(ctx, "/scenarios", nil, &result); err != nil {
		return nil, err
	}
	return result.Scenarios, nil
}

// Estimate prices a machine bought at price in year.
// GET /api/v1/estimates?price=&year=
func (mc *MachinesClient) Estimate(ctx context.Context, price float64, year int) (*machine.EstimateResult, error) {
	if price < 0 || math.IsNaN(price) || math.IsInf(price, 0) {
		return nil, invalidArg("price must be a non-negative number")
	}
	q := url.Values{}
	q.Set("price", strconv.FormatFloat(price, 'f', -1, 64))
	q.Set("year", strconv.Itoa(year))
	var result machine.EstimateResult
	if err := mc.client.get(ctx, "/estimates", q, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ApplyView applies one action to the view encoded by query and returns the
// new state with its shareable link.
// POST /api/v1/view
func (mc *MachinesClient) ApplyView(ctx context.Context, query string, action machine.ViewAction) (*machine.ViewResponse, error) {
	if action.Kind == "" {
		return nil, invalidArg("action kind is required")
	}
	var result machine.ViewResponse
	req := machine.ViewRequest{Query: query, Action: action}
	if err := mc.client.post(ctx, "/view", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func scenarioQuery(scenario string) url.Values {
	q := url.Values{}
	if s := strings.TrimSpace(scenario); s != "" {
		q.Set("scenario", s)
	}
	return q
}

//Personal.AI order the ending
