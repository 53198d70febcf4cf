package view

import (
	"net/url"
	"strings"

	"github.com/turtacn/MacBench/internal/domain/machine"
)

// Query parameter names.
const (
	ParamSearch    = "q"
	ParamType      = "type"
	ParamFamily    = "family"
	ParamOS        = "os"
	ParamSort      = "sort"
	ParamDir       = "dir"
	ParamScenario  = "scenario"
	ParamReference = "ref"
	ParamCompare   = "compare"
)

// FromQuery decodes a State from URL query parameters.  Missing, unknown or
// malformed values fall back to their defaults; it never fails.
func FromQuery(q url.Values) State {
	s := Default()
	s.Search = q.Get(ParamSearch)
	if v := q.Get(ParamType); v != "" {
		s.Type = v
	}
	if v := q.Get(ParamFamily); v != "" {
		s.Family = v
	}
	if v := q.Get(ParamOS); v != "" {
		s.OS = v
	}
	s.Sort = SortKey(strings.ToLower(strings.TrimSpace(q.Get(ParamSort))))
	s.Dir = Direction(strings.ToLower(strings.TrimSpace(q.Get(ParamDir))))
	s.Scenario = machine.Scenario(q.Get(ParamScenario))
	s.ShowReference = parseBool(q.Get(ParamReference))

	var ids []string
	for _, raw := range q[ParamCompare] {
		ids = append(ids, strings.Split(raw, ",")...)
	}
	s.Compare = ids
	return s.Normalize()
}

// ParseQueryString is FromQuery over a raw query string.  A malformed string
// yields the default state.
func ParseQueryString(raw string) State {
	q, err := url.ParseQuery(strings.TrimPrefix(raw, "?"))
	if err != nil {
		return Default()
	}
	return FromQuery(q)
}

// Query encodes s, omitting every parameter that holds its default so the
// canonical link is minimal.
func (s State) Query() url.Values {
	n := s.Normalize()
	q := url.Values{}
	if n.Search != "" {
		q.Set(ParamSearch, n.Search)
	}
	if n.Type != All {
		q.Set(ParamType, n.Type)
	}
	if n.Family != All {
		q.Set(ParamFamily, n.Family)
	}
	if n.OS != All {
		q.Set(ParamOS, n.OS)
	}
	if n.Sort != DefaultSort {
		q.Set(ParamSort, string(n.Sort))
	}
	if n.Dir != DefaultDirection {
		q.Set(ParamDir, string(n.Dir))
	}
	if n.Scenario != machine.DefaultScenario {
		q.Set(ParamScenario, string(n.Scenario))
	}
	if n.ShowReference {
		q.Set(ParamReference, "1")
	}
	if len(n.Compare) > 0 {
		q.Set(ParamCompare, strings.Join(n.Compare, ","))
	}
	return q
}

// QueryString is the encoded Query, without a leading "?".
func (s State) QueryString() string {
	return s.Query().Encode()
}

// Link appends the canonical query string to base.
func (s State) Link(base string) string {
	qs := s.QueryString()
	if qs == "" {
		return base
	}
	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	return base + sep + qs
}

func parseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

//Personal.AI order the ending
