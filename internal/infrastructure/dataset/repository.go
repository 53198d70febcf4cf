package dataset

import (
	"context"

	"github.com/turtacn/MacBench/internal/domain/machine"
	"github.com/turtacn/MacBench/pkg/errors"
)

// Repository serves an immutable record set from memory.
type Repository struct {
	records []machine.Machine
	byID    map[string]int
}

var _ machine.Repository = (*Repository)(nil)

// NewRepository indexes records.  The slice is copied; later changes by the
// caller are not observed.
func NewRepository(records []machine.Machine) *Repository {
	cp := make([]machine.Machine, len(records))
	copy(cp, records)
	idx := make(map[string]int, len(cp))
	for i, m := range cp {
		idx[m.ID] = i
	}
	return &Repository{records: cp, byID: idx}
}

// List returns a copy of every record in dataset order.
func (r *Repository) List(ctx context.Context) ([]machine.Machine, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]machine.Machine, len(r.records))
	copy(out, r.records)
	return out, nil
}

// FindByID returns the record with id or a CAT_001 error.
func (r *Repository) FindByID(ctx context.Context, id string) (machine.Machine, error) {
	if err := ctx.Err(); err != nil {
		return machine.Machine{}, err
	}
	i, ok := r.byID[id]
	if !ok {
		return machine.Machine{}, errors.New(errors.ErrCodeMachineNotFound, "machine not found").WithDetail(id)
	}
	return r.records[i], nil
}

// Len reports the number of records.
func (r *Repository) Len() int { return len(r.records) }

//Personal.AI order the ending
