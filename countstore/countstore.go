package countstore

import (
	"context"
)

// CountStore tracks monotonically increasing counters by name.
//
// Counters are created implicitly at zero on first increment. Increment
// returns the new value, matching the underlying store's atomic INCR
// primitive. Reading a counter which was never incremented returns zero,
// not an error. Reset drops a counter back to zero; resetting an absent
// counter is not an error.
type CountStore interface {
	Increment(ctx context.Context, name string) (int64, error)
	GetCount(ctx context.Context, name string) (int64, error)
	Reset(ctx context.Context, name string) error
}
