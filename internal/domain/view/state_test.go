package view

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/turtacn/MacBench/internal/domain/machine"
)

func TestDefault(t *testing.T) {
	s := Default()
	assert.Equal(t, All, s.Type)
	assert.Equal(t, All, s.Family)
	assert.Equal(t, All, s.OS)
	assert.Equal(t, SortScore, s.Sort)
	assert.Equal(t, Desc, s.Dir)
	assert.Equal(t, machine.ScenarioBalanced, s.Scenario)
	assert.False(t, s.ShowReference)
	assert.Empty(t, s.Compare)
}

func TestNormalize(t *testing.T) {
	s := State{
		Search:   "  m4 pro ",
		Type:     "LAPTOP",
		Family:   "m3",
		OS:       "macos",
		Sort:     "bogus",
		Dir:      "sideways",
		Scenario: "Creative",
		Compare:  Selection{"a", "a", "b", "c"},
	}.Normalize()

	assert.Equal(t, "m4 pro", s.Search)
	assert.Equal(t, "laptop", s.Type)
	assert.Equal(t, "M3", s.Family)
	assert.Equal(t, "macOS", s.OS)
	assert.Equal(t, SortScore, s.Sort)
	assert.Equal(t, Desc, s.Dir)
	assert.Equal(t, machine.ScenarioCreative, s.Scenario)
	assert.Equal(t, Selection{"a", "b"}, s.Compare)
}

func TestNormalize_UnknownFiltersBecomeAll(t *testing.T) {
	s := State{Type: "phone", Family: "M9", OS: "Windows"}.Normalize()
	assert.Equal(t, All, s.Type)
	assert.Equal(t, All, s.Family)
	assert.Equal(t, All, s.OS)
}

func TestToggleSort(t *testing.T) {
	s := Default()

	s = ToggleSort(s, SortScore)
	assert.Equal(t, SortScore, s.Sort)
	assert.Equal(t, Asc, s.Dir)

	s = ToggleSort(s, SortScore)
	assert.Equal(t, Desc, s.Dir)

	s = ToggleSort(s, SortPrice)
	assert.Equal(t, SortPrice, s.Sort)
	assert.Equal(t, Desc, s.Dir)

	s = ToggleSort(s, SortPrice)
	s = ToggleSort(s, SortName)
	assert.Equal(t, SortName, s.Sort)
	assert.Equal(t, Desc, s.Dir, "a new key always starts descending")
}

func TestToggleSort_InvalidKeyIsNoop(t *testing.T) {
	s := Default()
	assert.Equal(t, s, ToggleSort(s, "nope"))
}

func TestToggleSort_DoesNotMutate(t *testing.T) {
	s := Default()
	_ = ToggleSort(s, SortYear)
	assert.Equal(t, SortScore, s.Sort)
}

func TestToggleAndClearCompare(t *testing.T) {
	s := ToggleCompare(Default(), "a")
	s = ToggleCompare(s, "b")
	assert.True(t, s.Compare.CanOpen())

	cleared := ClearCompare(s)
	assert.Empty(t, cleared.Compare)
	assert.Len(t, s.Compare, 2)
}

func TestToggleCompare_OverFullState(t *testing.T) {
	s := Default()
	s.Compare = Selection{"a", "b", "c"}

	var out State
	assert.NotPanics(t, func() { out = ToggleCompare(s, "z") })
	assert.Equal(t, Selection{"a", "b"}, out.Compare)
	assert.True(t, out.Compare.CanOpen())
}
