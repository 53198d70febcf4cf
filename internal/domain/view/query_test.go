package view

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/turtacn/MacBench/internal/domain/machine"
)

func TestFromQuery_Full(t *testing.T) {
	q := url.Values{
		"q":        {"pro 2024"},
		"type":     {"laptop"},
		"family":   {"M4"},
		"os":       {"macOS"},
		"sort":     {"price"},
		"dir":      {"asc"},
		"scenario": {"developer"},
		"ref":      {"true"},
		"compare":  {"a, b ,c"},
	}
	s := FromQuery(q)

	assert.Equal(t, "pro 2024", s.Search)
	assert.Equal(t, "laptop", s.Type)
	assert.Equal(t, "M4", s.Family)
	assert.Equal(t, "macOS", s.OS)
	assert.Equal(t, SortPrice, s.Sort)
	assert.Equal(t, Asc, s.Dir)
	assert.Equal(t, machine.ScenarioDeveloper, s.Scenario)
	assert.True(t, s.ShowReference)
	assert.Equal(t, Selection{"a", "b"}, s.Compare)
}

func TestFromQuery_InvalidFallsBack(t *testing.T) {
	s := FromQuery(url.Values{
		"type":     {"phone"},
		"sort":     {"speed"},
		"dir":      {"up"},
		"scenario": {"gaming"},
		"ref":      {"maybe"},
	})
	assert.Equal(t, Default(), s)
}

func TestFromQuery_Empty(t *testing.T) {
	assert.Equal(t, Default(), FromQuery(nil))
}

func TestFromQuery_RepeatedCompare(t *testing.T) {
	s := FromQuery(url.Values{"compare": {"a", "a,b"}})
	assert.Equal(t, Selection{"a", "b"}, s.Compare)
}

func TestQuery_OmitsDefaults(t *testing.T) {
	assert.Equal(t, "", Default().QueryString())
}

func TestQuery_RoundTrip(t *testing.T) {
	states := []State{
		Default(),
		ToggleSort(Default(), SortYear),
		{Search: "air", Type: "tablet", Family: "M2", OS: "iPadOS", Sort: SortGPU, Dir: Asc,
			Scenario: machine.ScenarioDaily, ShowReference: true, Compare: Selection{"x", "y"}},
	}
	for _, s := range states {
		n := s.Normalize()
		assert.Equal(t, n, ParseQueryString(n.QueryString()))
	}
}

func TestQuery_Canonical(t *testing.T) {
	s := State{Sort: SortPrice, Dir: Desc, Scenario: machine.ScenarioCreative, ShowReference: true,
		Compare: Selection{"a", "b"}}.Normalize()
	assert.Equal(t, "compare=a%2Cb&ref=1&scenario=creative&sort=price", s.QueryString())
}

func TestParseQueryString_Malformed(t *testing.T) {
	assert.Equal(t, Default(), ParseQueryString("%zz"))
	assert.Equal(t, SortYear, ParseQueryString("?sort=year").Sort)
}

func TestLink(t *testing.T) {
	s := ToggleSort(Default(), SortName)
	assert.Equal(t, "https://macbench.dev/?sort=name", s.Link("https://macbench.dev/"))
	assert.Equal(t, "/x?lang=en&sort=name", s.Link("/x?lang=en"))
	assert.Equal(t, "/x", Default().Link("/x"))
}
