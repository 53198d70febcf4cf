package machine

import "strings"

// Scenario is a named weighting profile over single-core, multi-core and GPU
// performance.
type Scenario string

const (
	ScenarioBalanced  Scenario = "balanced"
	ScenarioDeveloper Scenario = "developer"
	ScenarioCreative  Scenario = "creative"
	ScenarioDaily     Scenario = "daily"
)

// DefaultScenario is used when none or an unknown one is requested.
const DefaultScenario = ScenarioBalanced

// Scenarios lists every Scenario in display order.
var Scenarios = []Scenario{ScenarioBalanced, ScenarioDeveloper, ScenarioCreative, ScenarioDaily}

// Weights holds a scenario's percentage weights.  They sum to 100.
type Weights struct {
	Single int `json:"single" yaml:"single"`
	Multi  int `json:"multi" yaml:"multi"`
	GPU    int `json:"gpu" yaml:"gpu"`
}

var scenarioWeights = map[Scenario]Weights{
	ScenarioBalanced:  {Single: 35, Multi: 45, GPU: 20},
	ScenarioDeveloper: {Single: 30, Multi: 55, GPU: 15},
	ScenarioCreative:  {Single: 20, Multi: 35, GPU: 45},
	ScenarioDaily:     {Single: 60, Multi: 25, GPU: 15},
}

// IsValid reports whether s is a known Scenario.
func (s Scenario) IsValid() bool {
	_, ok := scenarioWeights[s]
	return ok
}

// Weights returns the weight triple of s, or the balanced triple for an
// unknown scenario.
func (s Scenario) Weights() Weights {
	if w, ok := scenarioWeights[s]; ok {
		return w
	}
	return scenarioWeights[DefaultScenario]
}

// ParseScenario matches s case-insensitively.  The second result is false
// and the scenario is DefaultScenario when s is unknown.
func ParseScenario(s string) (Scenario, bool) {
	sc := Scenario(strings.ToLower(strings.TrimSpace(s)))
	if sc.IsValid() {
		return sc, true
	}
	return DefaultScenario, false
}

//Personal.AI order the ending
