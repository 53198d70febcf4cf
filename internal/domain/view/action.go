package view

import (
	"strings"

	"github.com/turtacn/MacBench/pkg/errors"
)

// ActionKind names a state transition.
type ActionKind string

const (
	ActionToggleSort    ActionKind = "toggle_sort"
	ActionToggleCompare ActionKind = "toggle_compare"
	ActionClearCompare  ActionKind = "clear_compare"
	ActionReset         ActionKind = "reset"
)

// Action is one user interaction applied to a State.
type Action struct {
	Kind ActionKind `json:"kind"`
	// Key is the sort key for toggle_sort.
	Key SortKey `json:"key,omitempty"`
	// ID is the machine id for toggle_compare.
	ID string `json:"id,omitempty"`
}

// Apply returns the State after a.  Unknown kinds and invalid arguments
// return an error and leave the state unchanged.
func Apply(s State, a Action) (State, error) {
	s = s.Normalize()
	switch a.Kind {
	case ActionToggleSort:
		key := SortKey(strings.ToLower(string(a.Key)))
		if !key.IsValid() {
			return s, errors.New(errors.ErrCodeSortKeyInvalid, "unknown sort key").WithDetail(string(a.Key))
		}
		return ToggleSort(s, key), nil
	case ActionToggleCompare:
		if strings.TrimSpace(a.ID) == "" {
			return s, errors.InvalidParam("toggle_compare requires an id")
		}
		return ToggleCompare(s, a.ID), nil
	case ActionClearCompare:
		return ClearCompare(s), nil
	case ActionReset:
		return Default(), nil
	default:
		return s, errors.InvalidParam("unknown view action").WithDetail(string(a.Kind))
	}
}

//Personal.AI order the ending
