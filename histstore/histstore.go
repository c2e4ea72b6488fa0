package histstore

import (
	"context"
)

// HistoryStore keeps two append-only sequences per operation name: the
// inputs each invocation was called with, and the outputs it returned.
//
// The sequences are index-aligned: the i-th input corresponds to the i-th
// output. Callers append the input before running the operation and the
// output after it returns, so a failed invocation leaves the inputs one
// entry longer than the outputs. Reading history for a name that was never
// recorded returns empty sequences, not an error.
type HistoryStore interface {
	RecordInput(ctx context.Context, name, input string) error
	RecordOutput(ctx context.Context, name, output string) error
	Inputs(ctx context.Context, name string) ([]string, error)
	Outputs(ctx context.Context, name string) ([]string, error)
}
