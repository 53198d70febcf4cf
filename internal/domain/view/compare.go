package view

import "strings"

// MaxCompare is the size of a full compare selection.
const MaxCompare = 2

// Selection is the ordered compare list: at most MaxCompare unique ids.
type Selection []string

// NewSelection builds a Selection from ids, trimming blanks, dropping
// duplicates and keeping the first MaxCompare.
func NewSelection(ids ...string) Selection {
	out := make(Selection, 0, MaxCompare)
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" || out.Contains(id) {
			continue
		}
		if len(out) == MaxCompare {
			break
		}
		out = append(out, id)
	}
	return out
}

// Contains reports whether id is selected.
func (s Selection) Contains(id string) bool {
	for _, v := range s {
		if v == id {
			return true
		}
	}
	return false
}

// Toggle removes id when selected, appends it when there is room, and is a
// no-op on a full selection.  s is normalized first, so an over-full or
// duplicated literal is cut back to MaxCompare unique ids.
func (s Selection) Toggle(id string) Selection {
	s = NewSelection(s...)
	id = strings.TrimSpace(id)
	if id == "" {
		return s.clone()
	}
	if s.Contains(id) {
		out := make(Selection, 0, len(s))
		for _, v := range s {
			if v != id {
				out = append(out, v)
			}
		}
		return out
	}
	if len(s) >= MaxCompare {
		return s.clone()
	}
	return append(s.clone(), id)
}

// Clear returns an empty Selection.
func (s Selection) Clear() Selection { return Selection{} }

// CanOpen reports whether the comparison can be shown.
func (s Selection) CanOpen() bool { return len(s) == MaxCompare }

func (s Selection) clone() Selection {
	out := make(Selection, len(s), max(len(s), MaxCompare))
	copy(out, s)
	return out
}

//Personal.AI order the ending
