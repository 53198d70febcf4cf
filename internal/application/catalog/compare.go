package catalog

import (
	"math"
	"strings"

	"github.com/turtacn/MacBench/internal/domain/machine"
	"github.com/turtacn/MacBench/pkg/errors"
)

// Side names the winner of one compared metric.
type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
	SideTie   Side = "tie"
)

// Compared metric names.
const (
	MetricScore  = "score"
	MetricSingle = "singleCore"
	MetricMulti  = "multiCore"
	MetricGPU    = "metal"
	MetricValue  = "value"
	MetricMemory = "memory"
	MetricPrice  = "price"
)

// MetricDelta is one line of a comparison.  DeltaPct is how much Right
// differs from Left, in percent of Left.
type MetricDelta struct {
	Metric   string  `json:"metric"`
	Left     float64 `json:"left"`
	Right    float64 `json:"right"`
	Winner   Side    `json:"winner"`
	DeltaPct float64 `json:"deltaPct"`
}

// Comparison is the side-by-side view of exactly two machines.
type Comparison struct {
	Scenario machine.Scenario `json:"scenario"`
	Left     Row              `json:"left"`
	Right    Row              `json:"right"`
	Metrics  []MetricDelta    `json:"metrics"`
}

type metricDef struct {
	name        string
	lowerIsBest bool
	value       func(Row) float64
}

var compareMetrics = []metricDef{
	{MetricScore, false, func(r Row) float64 { return float64(r.Score) }},
	{MetricSingle, false, func(r Row) float64 { return float64(r.SingleCore) }},
	{MetricMulti, false, func(r Row) float64 { return float64(r.MultiCore) }},
	{MetricGPU, false, func(r Row) float64 { return float64(r.Metal) }},
	{MetricValue, false, func(r Row) float64 { return float64(r.Value) }},
	{MetricMemory, false, func(r Row) float64 { return r.BaseMemoryGB() }},
	{MetricPrice, true, func(r Row) float64 { return r.Price }},
}

// CompareIDs validates a comparison request: exactly two distinct, non-blank
// ids.
func CompareIDs(ids []string) (left, right string, err error) {
	clean := make([]string, 0, len(ids))
	for _, id := range ids {
		if id = strings.TrimSpace(id); id != "" {
			clean = append(clean, id)
		}
	}
	if len(clean) != 2 {
		return "", "", errors.New(errors.ErrCodeCompareIncomplete, "comparison needs exactly two machines").
			WithDetail(strings.Join(clean, ","))
	}
	if clean[0] == clean[1] {
		return "", "", errors.New(errors.ErrCodeCompareDuplicate, "comparison needs two different machines").
			WithDetail(clean[0])
	}
	return clean[0], clean[1], nil
}

// Compare builds the comparison of a and b under scenario.
func Compare(a, b machine.Machine, scenario machine.Scenario) Comparison {
	if !scenario.IsValid() {
		scenario = machine.DefaultScenario
	}
	left, right := NewRow(a, scenario), NewRow(b, scenario)
	out := Comparison{Scenario: scenario, Left: left, Right: right, Metrics: make([]MetricDelta, 0, len(compareMetrics))}
	for _, def := range compareMetrics {
		l, r := def.value(left), def.value(right)
		out.Metrics = append(out.Metrics, MetricDelta{
			Metric:   def.name,
			Left:     l,
			Right:    r,
			Winner:   winner(l, r, def.lowerIsBest),
			DeltaPct: deltaPct(l, r),
		})
	}
	return out
}

func winner(l, r float64, lowerIsBest bool) Side {
	switch {
	case l == r:
		return SideTie
	case (l > r) != lowerIsBest:
		return SideLeft
	default:
		return SideRight
	}
}

func deltaPct(l, r float64) float64 {
	if l == 0 {
		return 0
	}
	d := (r - l) / l * 100
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return 0
	}
	return math.Round(d*10) / 10
}

//Personal.AI order the ending
