package catalog

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/turtacn/MacBench/internal/domain/machine"
)

// fixture returns four Apple records and one reference part in dataset
// order a, b, c, d, r.
func fixture() []machine.Machine {
	return []machine.Machine{
		{ID: "a", Name: "Alpha Pro", Type: machine.TypeLaptop, Chip: "M4 Max", Family: machine.FamilyM4, OS: machine.OSMacOS,
			CPUCores: "16 (12P+4E)", GPUCores: 40, Memory: "36–128GB", Year: 2024,
			SingleCore: 4060, MultiCore: 26800, Metal: 192000, Price: 3999},
		{ID: "b", Name: "Beta mini", Type: machine.TypeDesktop, Chip: "M2", Family: machine.FamilyM2, OS: machine.OSMacOS,
			CPUCores: "8 (4P+4E)", GPUCores: 10, Memory: "8–24GB", Year: 2023,
			SingleCore: 2650, MultiCore: 9950, Metal: 43500, Price: 599},
		{ID: "c", Name: "Gamma Pad", Type: machine.TypeTablet, Chip: "M4", Family: machine.FamilyM4, OS: machine.OSiPadOS,
			CPUCores: "10 (4P+6E)", GPUCores: 10, Memory: "8–16GB", Year: 2024,
			SingleCore: 3700, MultiCore: 14500, Metal: 54000, Price: 1299},
		{ID: "d", Name: "Delta Air", Type: machine.TypeLaptop, Chip: "M1", Family: machine.FamilyM1, OS: machine.OSMacOS,
			CPUCores: "8 (4P+4E)", GPUCores: 7, Memory: "8–16GB", Year: 2020,
			SingleCore: 2340, MultiCore: 8350, Metal: 33000, Price: 999},
		{ID: "r", Name: "Ryzen Ref", Type: machine.TypeReferenceCPU, Chip: "Ryzen 9", Family: machine.FamilyReference,
			CPUCores: "16", Memory: "up to 192GB", Year: 2024,
			SingleCore: 3400, MultiCore: 22000, Metal: 0, Price: 649, IsReference: true},
	}
}

func ids(rows []Row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.ID
	}
	return out
}

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) List(ctx context.Context) ([]machine.Machine, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]machine.Machine), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) FindByID(ctx context.Context, id string) (machine.Machine, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(machine.Machine), args.Error(1)
}

var _ machine.Repository = (*mockRepository)(nil)
