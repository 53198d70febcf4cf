package machine

import "math"

// Reference maxima used to normalise each benchmark axis.  They correspond
// to the best known score in each category.
const (
	MaxSingleCore = 4200.0
	MaxMultiCore  = 28000.0
	MaxMetal      = 200000.0
)

// Tier is a coarse letter grade bucketing a TierScore.
type Tier string

const (
	TierSPlus Tier = "S+"
	TierS     Tier = "S"
	TierAPlus Tier = "A+"
	TierA     Tier = "A"
	TierB     Tier = "B"
	TierC     Tier = "C"
	TierD     Tier = "D"
)

// tierThresholds are lower-inclusive and ordered best first.
var tierThresholds = []struct {
	min  int
	tier Tier
}{
	{9000, TierSPlus},
	{8000, TierS},
	{7000, TierAPlus},
	{6000, TierA},
	{5000, TierB},
	{4000, TierC},
}

// Tiers lists every Tier from worst to best; the index is the ordinal.
var Tiers = []Tier{TierD, TierC, TierB, TierA, TierAPlus, TierS, TierSPlus}

// Ordinal ranks t from 0 (D) to 6 (S+); unknown tiers rank -1.
func (t Tier) Ordinal() int {
	for i, known := range Tiers {
		if t == known {
			return i
		}
	}
	return -1
}

// TierScore is the weighted composite score of m under scenario:
//
//	round((single/4200·w_s + multi/28000·w_m + metal/200000·w_g) × 100)
//
// with weights in percent, giving a four-digit number for current hardware.
// It is never negative.
func TierScore(m Machine, scenario Scenario) int {
	s, mc, g := contributions(m, scenario.Weights())
	return clampRound(s + mc + g)
}

// TierLabel maps a TierScore to its Tier.
func TierLabel(score int) Tier {
	for _, t := range tierThresholds {
		if score >= t.min {
			return t.tier
		}
	}
	return TierD
}

// ValueScore is performance per 100 USD of base price, with the performance
// basis chosen by scenario.  It is 0 when the price is not positive.
func ValueScore(m Machine, scenario Scenario) int {
	if m.Price <= 0 {
		return 0
	}
	single := float64(nonNegative(m.SingleCore))
	multi := float64(nonNegative(m.MultiCore))
	gpu := float64(nonNegative(m.Metal)) / 5

	var perf float64
	switch scenario {
	case ScenarioDeveloper:
		perf = multi
	case ScenarioCreative:
		perf = gpu
	case ScenarioDaily:
		perf = single * 5
	default:
		perf = (multi + gpu) / 2
	}
	return clampRound(perf / m.Price * 100)
}

// ScoreBreakdown itemises a TierScore by axis.  The three contributions are
// unrounded points on the TierScore scale.
type ScoreBreakdown struct {
	Scenario Scenario `json:"scenario"`
	Weights  Weights  `json:"weights"`
	Single   float64  `json:"single"`
	Multi    float64  `json:"multi"`
	GPU      float64  `json:"gpu"`
	Score    int      `json:"score"`
	Tier     Tier     `json:"tier"`
	Value    int      `json:"value"`
}

// Breakdown computes the per-axis contributions, the score, tier and value of
// m under scenario.  An unknown scenario is reported as balanced.
func Breakdown(m Machine, scenario Scenario) ScoreBreakdown {
	if !scenario.IsValid() {
		scenario = DefaultScenario
	}
	w := scenario.Weights()
	s, mc, g := contributions(m, w)
	score := clampRound(s + mc + g)
	return ScoreBreakdown{
		Scenario: scenario,
		Weights:  w,
		Single:   round2(s),
		Multi:    round2(mc),
		GPU:      round2(g),
		Score:    score,
		Tier:     TierLabel(score),
		Value:    ValueScore(m, scenario),
	}
}

func contributions(m Machine, w Weights) (single, multi, gpu float64) {
	single = float64(nonNegative(m.SingleCore)) / MaxSingleCore * float64(w.Single) * 100
	multi = float64(nonNegative(m.MultiCore)) / MaxMultiCore * float64(w.Multi) * 100
	gpu = float64(nonNegative(m.Metal)) / MaxMetal * float64(w.GPU) * 100
	return single, multi, gpu
}

func nonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

// clampRound rounds v into [0, math.MaxInt32]; NaN is 0 and +Inf saturates.
func clampRound(v float64) int {
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= math.MaxInt32:
		return math.MaxInt32
	}
	return int(math.Round(v))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

//Personal.AI order the ending
