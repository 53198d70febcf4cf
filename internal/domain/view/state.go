// Package view holds the catalog view state: filters, sort, scenario,
// reference toggle and the compare selection.  State is a value type; every
// operation returns a new State and never mutates its receiver.
package view

import (
	"strings"

	"github.com/turtacn/MacBench/internal/domain/machine"
)

// All is the filter value that matches every record.
const All = "All"

// SortKey names a sortable column.
type SortKey string

const (
	SortScore  SortKey = "score"
	// SortPrice orders by base price; a discounted currentPrice is ignored.
	SortPrice  SortKey = "price"
	SortYear   SortKey = "year"
	SortName   SortKey = "name"
	// SortCPU orders by the multi-core benchmark score, not the cpuCores
	// descriptor.
	SortCPU    SortKey = "cpu"
	// SortGPU orders by the Metal benchmark score, not gpuCores.
	SortGPU    SortKey = "gpu"
	// SortMemory orders by the smallest configuration in the memory
	// descriptor, in GB.
	SortMemory SortKey = "memory"
	SortSingle SortKey = "single"
	SortValue  SortKey = "value"
)

// SortKeys lists every SortKey.
var SortKeys = []SortKey{SortScore, SortPrice, SortYear, SortName, SortCPU, SortGPU, SortMemory, SortSingle, SortValue}

// IsValid reports whether k is a known SortKey.
func (k SortKey) IsValid() bool {
	for _, known := range SortKeys {
		if k == known {
			return true
		}
	}
	return false
}

// Direction is a sort direction.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// IsValid reports whether d is asc or desc.
func (d Direction) IsValid() bool { return d == Asc || d == Desc }

// Flip returns the opposite direction.
func (d Direction) Flip() Direction {
	if d == Asc {
		return Desc
	}
	return Asc
}

// Defaults.
const (
	DefaultSort      = SortScore
	DefaultDirection = Desc
)

// State is the complete, URL round-trippable view state.
type State struct {
	Search        string           `json:"search"`
	Type          string           `json:"type"`
	Family        string           `json:"family"`
	OS            string           `json:"os"`
	Sort          SortKey          `json:"sort"`
	Dir           Direction        `json:"dir"`
	Scenario      machine.Scenario `json:"scenario"`
	ShowReference bool             `json:"showReference"`
	Compare       Selection        `json:"compare"`
}

// Default returns the initial state: no search, every filter All, score
// descending, balanced scenario, references hidden, nothing selected.
func Default() State {
	return State{
		Type:     All,
		Family:   All,
		OS:       All,
		Sort:     DefaultSort,
		Dir:      DefaultDirection,
		Scenario: machine.DefaultScenario,
		Compare:  Selection{},
	}
}

// Normalize replaces every invalid field with its default.  Filter values are
// matched case-insensitively and returned in canonical spelling.
func (s State) Normalize() State {
	out := s
	out.Search = strings.TrimSpace(s.Search)
	out.Type = canonicalType(s.Type)
	out.Family = canonicalFamily(s.Family)
	out.OS = canonicalOS(s.OS)
	if !out.Sort.IsValid() {
		out.Sort = DefaultSort
	}
	if !out.Dir.IsValid() {
		out.Dir = DefaultDirection
	}
	out.Scenario, _ = machine.ParseScenario(string(s.Scenario))
	out.Compare = NewSelection(s.Compare...)
	return out
}

// ToggleSort applies a column-header click: the active key flips direction,
// any other key becomes active with descending direction.
func ToggleSort(s State, key SortKey) State {
	if !key.IsValid() {
		return s
	}
	out := s
	if s.Sort == key {
		out.Dir = s.Dir.Flip()
		return out
	}
	out.Sort = key
	out.Dir = Desc
	return out
}

// ToggleCompare toggles id in the compare selection.
func ToggleCompare(s State, id string) State {
	out := s
	out.Compare = s.Compare.Toggle(id)
	return out
}

// ClearCompare empties the compare selection.
func ClearCompare(s State) State {
	out := s
	out.Compare = s.Compare.Clear()
	return out
}

func canonicalType(v string) string {
	for _, t := range machine.DeviceTypes {
		if strings.EqualFold(strings.TrimSpace(v), string(t)) {
			return string(t)
		}
	}
	return All
}

func canonicalFamily(v string) string {
	for _, f := range machine.ChipFamilies {
		if strings.EqualFold(strings.TrimSpace(v), string(f)) {
			return string(f)
		}
	}
	return All
}

func canonicalOS(v string) string {
	for _, os := range machine.OperatingSystems {
		if strings.EqualFold(strings.TrimSpace(v), os) {
			return os
		}
	}
	return All
}

//Personal.AI order the ending
