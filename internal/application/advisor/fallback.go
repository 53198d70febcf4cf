package advisor

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/turtacn/MacBench/internal/application/catalog"
	"github.com/turtacn/MacBench/internal/domain/machine"
	"github.com/turtacn/MacBench/internal/i18n"
)

// topPicks is the number of ranked suggestions in an offline answer.
const topPicks = 3

// Fallback answers query from rows alone, without any network access.  It
// honours the budget, use case and device type found in the question and
// replies in lang.  scenario is used when the question names no use case.
func Fallback(query string, lang i18n.Lang, scenario machine.Scenario, rows []catalog.Row) string {
	p := i18n.NewPrinter(lang)
	intent := ParseIntent(query)
	if intent.HasScenario {
		scenario = intent.Scenario
	}
	if !scenario.IsValid() {
		scenario = machine.DefaultScenario
	}

	var sb strings.Builder
	if len(rows) == 0 {
		sb.WriteString(p.T(i18n.KeyAdvisorEmpty))
		sb.WriteString("\n\n")
		sb.WriteString(p.T(i18n.KeyAdvisorOffline))
		return sb.String()
	}

	candidates := make([]catalog.Row, 0, len(rows))
	for _, r := range rows {
		if r.IsReference {
			continue
		}
		if intent.Budget > 0 && r.EffectivePrice() > intent.Budget {
			continue
		}
		if intent.Type != "" && r.Type != intent.Type {
			continue
		}
		candidates = append(candidates, catalog.NewRow(r.Machine, scenario))
	}

	sb.WriteString("**")
	sb.WriteString(p.T(i18n.KeyAdvisorIntro, ScenarioLabel(p, scenario)))
	sb.WriteString("**\n\n")
	if intent.Budget > 0 {
		sb.WriteString(p.T(i18n.KeyAdvisorBudget, formatUSD(intent.Budget)))
		sb.WriteString("\n")
	}
	if intent.Type != "" {
		sb.WriteString(p.T(i18n.KeyAdvisorDeviceType, TypeLabel(p, intent.Type)))
		sb.WriteString("\n")
	}
	if intent.Budget > 0 || intent.Type != "" {
		sb.WriteString("\n")
	}

	if len(candidates) == 0 {
		sb.WriteString(p.T(i18n.KeyAdvisorNoMatch))
		sb.WriteString("\n\n")
		sb.WriteString(p.T(i18n.KeyAdvisorOffline))
		return sb.String()
	}

	ranked := make([]catalog.Row, len(candidates))
	copy(ranked, candidates)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Score > ranked[j].Score })
	for i, r := range ranked {
		if i == topPicks {
			break
		}
		sb.WriteString(strconv.Itoa(i + 1))
		sb.WriteString(". ")
		sb.WriteString(p.T(i18n.KeyAdvisorPick,
			r.Name,
			r.Chip,
			humanize.Comma(int64(r.Score)),
			string(r.Tier),
			formatUSD(r.EffectivePrice()),
		))
		sb.WriteString("\n")
	}

	best := bestValue(candidates)
	sb.WriteString("\n")
	sb.WriteString(p.T(i18n.KeyAdvisorBestValue, best.Name, humanize.Comma(int64(best.Value))))
	sb.WriteString("\n\n")
	sb.WriteString(p.T(i18n.KeyAdvisorOffline))
	return sb.String()
}

// bestValue returns the candidate with the highest value ratio; the first
// one wins ties.
func bestValue(rows []catalog.Row) catalog.Row {
	best := rows[0]
	for _, r := range rows[1:] {
		if r.Value > best.Value {
			best = r
		}
	}
	return best
}

// ScenarioLabel is the localized display name of s.
func ScenarioLabel(p *i18n.Printer, s machine.Scenario) string {
	switch s {
	case machine.ScenarioDeveloper:
		return p.T(i18n.KeyScenarioDeveloper)
	case machine.ScenarioCreative:
		return p.T(i18n.KeyScenarioCreative)
	case machine.ScenarioDaily:
		return p.T(i18n.KeyScenarioDaily)
	default:
		return p.T(i18n.KeyScenarioBalanced)
	}
}

// TypeLabel is the localized display name of t.
func TypeLabel(p *i18n.Printer, t machine.DeviceType) string {
	switch t {
	case machine.TypeLaptop:
		return p.T(i18n.KeyTypeLaptop)
	case machine.TypeDesktop:
		return p.T(i18n.KeyTypeDesktop)
	case machine.TypeTablet:
		return p.T(i18n.KeyTypeTablet)
	default:
		return string(t)
	}
}

func formatUSD(v float64) string {
	return "$" + humanize.Comma(int64(math.Round(v)))
}

//Personal.AI order the ending
