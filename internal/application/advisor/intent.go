package advisor

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/turtacn/MacBench/internal/domain/machine"
)

// Intent is what the offline responder reads out of a question.
type Intent struct {
	// Budget is the upper price bound in USD; 0 means none was given.
	Budget float64
	// Scenario is set when the question names a use case.
	Scenario    machine.Scenario
	HasScenario bool
	// Type is set when the question names a device category.
	Type machine.DeviceType
}

var (
	budgetDollar  = regexp.MustCompile(`\$\s*(\d[\d,]*(?:\.\d+)?)\s*(k\b)?`)
	budgetUnit    = regexp.MustCompile(`(\d[\d,]*(?:\.\d+)?)\s*(k)?\s*(?:usd|dollars?|bucks|美元|美金|dólares)`)
	budgetKeyword = regexp.MustCompile(`(?:under|below|less than|max(?:imum)?|up to|within|budget(?: of| is)?|低于|不超过|以内|预算|menos de|hasta|presupuesto(?: de)?)\s*:?\s*\$?\s*(\d[\d,]*(?:\.\d+)?)\s*(k\b)?`)
)

type keywordSet[T comparable] struct {
	value    T
	keywords []string
}

var scenarioKeywords = []keywordSet[machine.Scenario]{
	{machine.ScenarioDeveloper, []string{"develop", "coding", "code", "program", "compile", "xcode", "docker", "software", "engineer", "编程", "开发", "程序", "programar", "programación", "desarroll"}},
	{machine.ScenarioCreative, []string{"video", "edit", "photo", "design", "3d", "render", "creative", "music", "final cut", "davinci", "blender", "剪辑", "视频", "设计", "创作", "vídeo", "edición", "diseño", "creativ"}},
	{machine.ScenarioDaily, []string{"brows", "email", "office", "student", "school", "daily", "everyday", "web", "netflix", "casual", "日常", "上网", "学生", "办公", "diario", "estudiante", "navegar", "oficina"}},
}

var typeKeywords = []keywordSet[machine.DeviceType]{
	{machine.TypeLaptop, []string{"laptop", "portable", "notebook", "macbook", "travel", "笔记本", "便携", "portátil", "portatil"}},
	{machine.TypeDesktop, []string{"desktop", "imac", "mac mini", "mac studio", "mac pro", "台式", "sobremesa", "escritorio"}},
	{machine.TypeTablet, []string{"tablet", "ipad", "平板", "tableta"}},
}

// ParseIntent extracts budget, use case and device type from a free-text
// question.  Unrecognised parts are left zero.
func ParseIntent(query string) Intent {
	q := strings.ToLower(query)
	in := Intent{Budget: parseBudget(q)}
	if sc, ok := bestMatch(q, scenarioKeywords); ok {
		in.Scenario, in.HasScenario = sc, true
	}
	if t, ok := bestMatch(q, typeKeywords); ok {
		in.Type = t
	}
	return in
}

func parseBudget(q string) float64 {
	for _, re := range []*regexp.Regexp{budgetDollar, budgetUnit, budgetKeyword} {
		m := re.FindStringSubmatch(q)
		if m == nil {
			continue
		}
		v, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
		if err != nil || v <= 0 {
			continue
		}
		if len(m) > 2 && m[2] != "" {
			v *= 1000
		}
		return v
	}
	return 0
}

// bestMatch returns the set with the most keyword hits; ties go to the
// earlier set.
func bestMatch[T comparable](q string, sets []keywordSet[T]) (T, bool) {
	var best T
	bestHits := 0
	for _, set := range sets {
		hits := 0
		for _, kw := range set.keywords {
			if strings.Contains(q, kw) {
				hits++
			}
		}
		if hits > bestHits {
			best, bestHits = set.value, hits
		}
	}
	return best, bestHits > 0
}

//Personal.AI order the ending
