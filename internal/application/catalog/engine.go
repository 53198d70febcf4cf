package catalog

import (
	"sort"
	"strings"

	"github.com/turtacn/MacBench/internal/domain/machine"
	"github.com/turtacn/MacBench/internal/domain/view"
)

// Row is one visible record with the values derived for the active scenario.
type Row struct {
	machine.Machine
	Score int          `json:"score"`
	Tier  machine.Tier `json:"tier"`
	Value int          `json:"value"`
}

// NewRow derives score, tier and value of m under scenario.
func NewRow(m machine.Machine, scenario machine.Scenario) Row {
	score := machine.TierScore(m, scenario)
	return Row{
		Machine: m,
		Score:   score,
		Tier:    machine.TierLabel(score),
		Value:   machine.ValueScore(m, scenario),
	}
}

// Facets counts the filtered rows per filter dimension.
type Facets struct {
	Types    map[string]int `json:"types"`
	Families map[string]int `json:"families"`
	OS       map[string]int `json:"os"`
}

// Filter derives the visible rows for state from records.  records is never
// modified; the result is sorted stably so equal keys keep dataset order.
func Filter(records []machine.Machine, state view.State) []Row {
	state = state.Normalize()
	tokens := strings.Fields(strings.ToLower(state.Search))

	rows := make([]Row, 0, len(records))
	for _, m := range records {
		if m.IsReference && !state.ShowReference {
			continue
		}
		if !matchesSearch(m, tokens) {
			continue
		}
		if !m.IsReference && !matchesFilters(m, state) {
			continue
		}
		rows = append(rows, NewRow(m, state.Scenario))
	}
	SortRows(rows, state.Sort, state.Dir)
	return rows
}

func matchesSearch(m machine.Machine, tokens []string) bool {
	if len(tokens) == 0 {
		return true
	}
	hay := m.SearchText()
	for _, tok := range tokens {
		if !strings.Contains(hay, tok) {
			return false
		}
	}
	return true
}

func matchesFilters(m machine.Machine, s view.State) bool {
	if s.Type != view.All && string(m.Type) != s.Type {
		return false
	}
	if s.Family != view.All && string(m.Family) != s.Family {
		return false
	}
	if s.OS != view.All && m.OS != s.OS {
		return false
	}
	return true
}

// sortValue extracts the numeric sort key of r.  Name sorting is handled
// separately.
func sortValue(r Row, key view.SortKey) float64 {
	switch key {
	case view.SortPrice:
		return r.Price
	case view.SortYear:
		return float64(r.Year)
	case view.SortCPU:
		return float64(r.MultiCore)
	case view.SortGPU:
		return float64(r.Metal)
	case view.SortMemory:
		return r.BaseMemoryGB()
	case view.SortSingle:
		return float64(r.SingleCore)
	case view.SortValue:
		return float64(r.Value)
	default:
		return float64(r.Score)
	}
}

// SortRows orders rows in place by key and dir.  Unknown keys sort by score.
func SortRows(rows []Row, key view.SortKey, dir view.Direction) {
	desc := dir != view.Asc
	if key == view.SortName {
		sort.SliceStable(rows, func(i, j int) bool {
			a, b := strings.ToLower(rows[i].Name), strings.ToLower(rows[j].Name)
			if desc {
				return a > b
			}
			return a < b
		})
		return
	}
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := sortValue(rows[i], key), sortValue(rows[j], key)
		if desc {
			return a > b
		}
		return a < b
	})
}

// CountFacets tallies rows by type, family and OS.  Reference parts have no
// OS and are not counted under it.
func CountFacets(rows []Row) Facets {
	f := Facets{
		Types:    make(map[string]int),
		Families: make(map[string]int),
		OS:       make(map[string]int),
	}
	for _, r := range rows {
		f.Types[string(r.Type)]++
		f.Families[string(r.Family)]++
		if r.OS != "" {
			f.OS[r.OS]++
		}
	}
	return f
}

//Personal.AI order the ending
