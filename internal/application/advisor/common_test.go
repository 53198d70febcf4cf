package advisor

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/turtacn/MacBench/internal/application/catalog"
	"github.com/turtacn/MacBench/internal/domain/machine"
	"github.com/turtacn/MacBench/pkg/errors"
)

func testRows(scenario machine.Scenario) []catalog.Row {
	recs := []machine.Machine{
		{ID: "a", Name: "Alpha Pro", Type: machine.TypeLaptop, Chip: "M4 Max", Family: machine.FamilyM4, OS: machine.OSMacOS,
			Memory: "36–128GB", Year: 2024, SingleCore: 4060, MultiCore: 26800, Metal: 192000, Price: 3999},
		{ID: "b", Name: "Beta mini", Type: machine.TypeDesktop, Chip: "M2", Family: machine.FamilyM2, OS: machine.OSMacOS,
			Memory: "8–24GB", Year: 2023, SingleCore: 2650, MultiCore: 9950, Metal: 43500, Price: 599},
		{ID: "c", Name: "Gamma Pad", Type: machine.TypeTablet, Chip: "M4", Family: machine.FamilyM4, OS: machine.OSiPadOS,
			Memory: "8–16GB", Year: 2024, SingleCore: 3700, MultiCore: 14500, Metal: 54000, Price: 1299},
		{ID: "d", Name: "Delta Air", Type: machine.TypeLaptop, Chip: "M1", Family: machine.FamilyM1, OS: machine.OSMacOS,
			Memory: "8–16GB", Year: 2020, SingleCore: 2340, MultiCore: 8350, Metal: 33000, Price: 999},
		{ID: "r", Name: "Ryzen Ref", Type: machine.TypeReferenceCPU, Chip: "Ryzen 9", Family: machine.FamilyReference,
			Year: 2024, SingleCore: 3400, MultiCore: 22000, Price: 649, IsReference: true},
	}
	rows := make([]catalog.Row, len(recs))
	for i, m := range recs {
		rows[i] = catalog.NewRow(m, scenario)
	}
	return rows
}

type mockChatModel struct {
	mock.Mock
}

func (m *mockChatModel) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

func (m *mockChatModel) Name() string { return "mock" }

// blockingModel waits for release or ctx before answering.
type blockingModel struct {
	mu      sync.Mutex
	calls   int
	release chan struct{}
	answer  string
}

func (b *blockingModel) Generate(ctx context.Context, _ string) (string, error) {
	b.mu.Lock()
	b.calls++
	b.mu.Unlock()
	select {
	case <-b.release:
		return b.answer, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (b *blockingModel) Name() string { return "blocking" }

func (b *blockingModel) Calls() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls
}

type memCache struct {
	mu   sync.Mutex
	data map[string]cachedAnswer
	sets int
}

func newMemCache() *memCache { return &memCache{data: make(map[string]cachedAnswer)} }

func (c *memCache) Get(_ context.Context, key string, dest interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.data[key]
	if !ok {
		return errors.New(errors.ErrCodeNotFound, "cache miss")
	}
	*dest.(*cachedAnswer) = v
	return nil
}

func (c *memCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value.(cachedAnswer)
	c.sets++
	return nil
}
