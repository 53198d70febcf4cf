// Package machine defines the wire DTOs of the MacBench HTTP API.  They are
// shared by the Go client and any external consumer; field names match the
// JSON the server emits.
package machine

import (
	"strings"
)

// Device types.
const (
	TypeLaptop       = "laptop"
	TypeDesktop      = "desktop"
	TypeTablet       = "tablet"
	TypeReferenceCPU = "reference-cpu"
	TypeReferenceGPU = "reference-gpu"
)

// Scenarios.
const (
	ScenarioBalanced  = "balanced"
	ScenarioDeveloper = "developer"
	ScenarioCreative  = "creative"
	ScenarioDaily     = "daily"
)

// Compare winners.
const (
	SideLeft  = "left"
	SideRight = "right"
	SideTie   = "tie"
)

// View actions accepted by POST /api/v1/view.
const (
	ActionToggleSort    = "toggle_sort"
	ActionToggleCompare = "toggle_compare"
	ActionClearCompare  = "clear_compare"
	ActionReset         = "reset"
)

// Advisor answer sources.
const (
	SourceLLM      = "llm"
	SourceFallback = "fallback"
)

// Machine is one benchmarked record.
type Machine struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Type         string   `json:"type"`
	Chip         string   `json:"chip"`
	Family       string   `json:"family"`
	OS           string   `json:"os,omitempty"`
	CPUCores     string   `json:"cpuCores"`
	GPUCores     int      `json:"gpuCores"`
	Memory       string   `json:"memory"`
	RAMType      string   `json:"ramType,omitempty"`
	Display      string   `json:"display,omitempty"`
	Year         int      `json:"year"`
	SingleCore   int      `json:"singleCore"`
	MultiCore    int      `json:"multiCore"`
	Metal        int      `json:"metal"`
	Price        float64  `json:"price"`
	CurrentPrice *float64 `json:"currentPrice,omitempty"`
	Description  string   `json:"description"`
	IsReference  bool     `json:"isReference,omitempty"`
}

// EffectivePrice returns CurrentPrice when it is set and positive, else
// Price.
func (m Machine) EffectivePrice() float64 {
	if m.CurrentPrice != nil && *m.CurrentPrice > 0 {
		return *m.CurrentPrice
	}
	return m.Price
}

// Row is a Machine with the values derived for the requested scenario.
type Row struct {
	Machine
	Score int    `json:"score"`
	Tier  string `json:"tier"`
	Value int    `json:"value"`
}

// Facets counts visible rows per filter dimension.
type Facets struct {
	Types    map[string]int `json:"types"`
	Families map[string]int `json:"families"`
	OS       map[string]int `json:"os"`
}

// ViewState is the normalised view the server applied.
type ViewState struct {
	Search        string   `json:"search"`
	Type          string   `json:"type"`
	Family        string   `json:"family"`
	OS            string   `json:"os"`
	Sort          string   `json:"sort"`
	Dir           string   `json:"dir"`
	Scenario      string   `json:"scenario"`
	ShowReference bool     `json:"showReference"`
	Compare       []string `json:"compare"`
}

// ListResult answers GET /api/v1/machines.
type ListResult struct {
	State  ViewState `json:"state"`
	Query  string    `json:"query"`
	Rows   []Row     `json:"rows"`
	Count  int       `json:"count"`
	Total  int       `json:"total"`
	Facets Facets    `json:"facets"`
}

// IDs returns the row ids in display order.
func (r *ListResult) IDs() []string {
	out := make([]string, len(r.Rows))
	for i, row := range r.Rows {
		out[i] = row.ID
	}
	return out
}

// Weights are a scenario's percentage weights.
type Weights struct {
	Single int `json:"single"`
	Multi  int `json:"multi"`
	GPU    int `json:"gpu"`
}

// Breakdown itemises a score by axis.
type Breakdown struct {
	Scenario string  `json:"scenario"`
	Weights  Weights `json:"weights"`
	Single   float64 `json:"single"`
	Multi    float64 `json:"multi"`
	GPU      float64 `json:"gpu"`
	Score    int     `json:"score"`
	Tier     string  `json:"tier"`
	Value    int     `json:"value"`
}

// Estimates are the trade-in and refurbished price estimates.
type Estimates struct {
	Age         int     `json:"age"`
	TradeIn     float64 `json:"tradeIn"`
	Refurbished float64 `json:"refurbished"`
}

// Detail answers GET /api/v1/machines/:id.
type Detail struct {
	Machine   Row       `json:"machine"`
	Breakdown Breakdown `json:"breakdown"`
	Estimates Estimates `json:"estimates"`
}

// MetricDelta is one compared metric.
type MetricDelta struct {
	Metric   string  `json:"metric"`
	Left     float64 `json:"left"`
	Right    float64 `json:"right"`
	Winner   string  `json:"winner"`
	DeltaPct float64 `json:"deltaPct"`
}

// Comparison answers GET /api/v1/compare.
type Comparison struct {
	Scenario string        `json:"scenario"`
	Left     Row           `json:"left"`
	Right    Row           `json:"right"`
	Metrics  []MetricDelta `json:"metrics"`
}

// Metric returns the delta for name.
func (c *Comparison) Metric(name string) (MetricDelta, bool) {
	for _, m := range c.Metrics {
		if strings.EqualFold(m.Metric, name) {
			return m, true
		}
	}
	return MetricDelta{}, false
}

// ScenarioInfo describes one scenario.
type ScenarioInfo struct {
	Name    string  `json:"name"`
	Weights Weights `json:"weights"`
	Default bool    `json:"default"`
}

// ScenarioList answers GET /api/v1/scenarios.
type ScenarioList struct {
	Scenarios []ScenarioInfo `json:"scenarios"`
}

// EstimateResult answers GET /api/v1/estimates.
type EstimateResult struct {
	Price       float64 `json:"price"`
	Year        int     `json:"year"`
	CurrentYear int     `json:"currentYear"`
	Estimates
}

// ViewAction is one view transition.
type ViewAction struct {
	Kind string `json:"kind"`
	Key  string `json:"key,omitempty"`
	ID   string `json:"id,omitempty"`
}

// ViewRequest is the body of POST /api/v1/view.
type ViewRequest struct {
	Query  string     `json:"query"`
	Action ViewAction `json:"action"`
}

// ViewResponse answers POST /api/v1/view.
type ViewResponse struct {
	State      ViewState `json:"state"`
	Query      string    `json:"query"`
	Link       string    `json:"link"`
	CanCompare bool      `json:"canCompare"`
}

// AdvisorRequest is the body of POST /api/v1/advisor.
type AdvisorRequest struct {
	Query    string `json:"query"`
	Language string `json:"language,omitempty"`
	// View is a view query string selecting the rows to advise over.
	View string `json:"view,omitempty"`
	// Format is markdown (default) or html.
	Format string `json:"format,omitempty"`
}

// AdvisorResponse answers POST /api/v1/advisor.
type AdvisorResponse struct {
	Answer   string `json:"answer"`
	Source   string `json:"source"`
	Language string `json:"language"`
	Cached   bool   `json:"cached"`
	HTML     string `json:"html,omitempty"`
	Rows     int    `json:"rows"`
}

// Preferences are a client's UI settings.
type Preferences struct {
	Language string `json:"language"`
	Theme    string `json:"theme"`
}

// PreferencesUpdate changes a subset of preferences; empty fields keep the
// stored value.
type PreferencesUpdate struct {
	Language string `json:"language,omitempty"`
	Theme    string `json:"theme,omitempty"`
}

// PreferencesResult answers the preferences endpoints.
type PreferencesResult struct {
	ClientID    string      `json:"clientId"`
	Preferences Preferences `json:"preferences"`
	Stored      bool        `json:"stored"`
}

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Detail    string `json:"detail,omitempty"`
	RequestID string `json:"requestId,omitempty"`
}

//Personal.AI order the ending
