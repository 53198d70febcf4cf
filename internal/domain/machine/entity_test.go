package machine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/MacBench/pkg/errors"
)

func validMachine() Machine {
	return Machine{
		ID: "mbp16-m4max-2024", Name: "MacBook Pro 16\" (M4 Max)", Type: TypeLaptop,
		Chip: "M4 Max", Family: FamilyM4, OS: OSMacOS, CPUCores: "16 (12P+4E)", GPUCores: 40,
		Memory: "36–128GB", Year: 2024, SingleCore: 4060, MultiCore: 26800, Metal: 192000,
		Price: 3999, Description: "Top laptop",
	}
}

func TestValidate_OK(t *testing.T) {
	assert.NoError(t, validMachine().Validate())
}

func TestValidate_Rejects(t *testing.T) {
	neg := -1.0
	tests := []struct {
		name   string
		mutate func(*Machine)
		want   string
	}{
		{"missing id", func(m *Machine) { m.ID = " " }, "id is required"},
		{"missing name", func(m *Machine) { m.Name = "" }, "name is required"},
		{"bad type", func(m *Machine) { m.Type = "phone" }, "unknown type"},
		{"bad family", func(m *Machine) { m.Family = "M9" }, "unknown family"},
		{"reference mismatch", func(m *Machine) { m.IsReference = true }, "disagrees"},
		{"negative gpu cores", func(m *Machine) { m.GPUCores = -1 }, "gpuCores"},
		{"negative score", func(m *Machine) { m.Metal = -1 }, "benchmark scores"},
		{"negative price", func(m *Machine) { m.Price = -1 }, "price must be"},
		{"negative current price", func(m *Machine) { m.CurrentPrice = &neg }, "currentPrice"},
		{"zero year", func(m *Machine) { m.Year = 0 }, "year"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := validMachine()
			tt.mutate(&m)
			err := m.Validate()
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.ErrCodeDatasetInvalid))
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidateAll_Duplicate(t *testing.T) {
	err := ValidateAll([]Machine{validMachine(), validMachine()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestBaseMemoryGB(t *testing.T) {
	tests := map[string]float64{
		"36–128GB":    36,
		"8GB":         8,
		"16-24 GB":    16,
		"32GB–1.5TB":  32,
		"1TB":         1024,
		"":            0,
		"—":           0,
		"24GB GDDR6X": 24,
	}
	for desc, want := range tests {
		assert.Equal(t, want, Machine{Memory: desc}.BaseMemoryGB(), desc)
	}
}

func TestEffectivePrice(t *testing.T) {
	m := validMachine()
	assert.Equal(t, 3999.0, m.EffectivePrice())
	cur := 3499.0
	m.CurrentPrice = &cur
	assert.Equal(t, 3499.0, m.EffectivePrice())
	zero := 0.0
	m.CurrentPrice = &zero
	assert.Equal(t, 3999.0, m.EffectivePrice())
}

func TestSearchText(t *testing.T) {
	text := validMachine().SearchText()
	for _, want := range []string{"macbook pro", "m4 max", "2024", "36–128gb", "16 (12p+4e)", "40", "macos"} {
		assert.True(t, strings.Contains(text, want), want)
	}
}

func TestEnumValidity(t *testing.T) {
	assert.True(t, TypeTablet.IsValid())
	assert.True(t, TypeReferenceGPU.IsReference())
	assert.False(t, TypeDesktop.IsReference())
	assert.True(t, FamilyIntel.IsValid())
	assert.False(t, ChipFamily("M0").IsValid())
}
