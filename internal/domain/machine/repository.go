package machine

import "context"

// Repository provides read access to the loaded machine records.  Records
// are returned by value; callers cannot mutate the source set.
type Repository interface {
	// List returns every record, reference hardware included, in dataset
	// order.
	List(ctx context.Context) ([]Machine, error)

	// FindByID returns the record with id or an ErrCodeMachineNotFound error.
	FindByID(ctx context.Context, id string) (Machine, error)
}

//Personal.AI order the ending
