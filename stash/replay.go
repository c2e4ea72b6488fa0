package stash

import (
	"context"
	"fmt"
	"io"

	"github.com/packrat-io/packrat/countstore"
	"github.com/packrat-io/packrat/histstore"
)

// Replay writes a transcript of an operation's recorded calls: a header with
// the call count, then one line per input/output pair in call order. Pairs
// are matched by index, so a failed call (input with no output) is dropped
// from the listing. Nil counters or history read as zero calls.
func Replay(ctx context.Context, w io.Writer, op string, counters countstore.CountStore, hist histstore.HistoryStore) error {
	var count int64
	if counters != nil {
		var err error
		count, err = counters.GetCount(ctx, op)
		if err != nil {
			return fmt.Errorf("reading call counter: %w", err)
		}
	}
	fmt.Fprintf(w, "%s was called %d times:\n", op, count)

	if hist == nil {
		return nil
	}
	inputs, err := hist.Inputs(ctx, op)
	if err != nil {
		return fmt.Errorf("reading call inputs: %w", err)
	}
	outputs, err := hist.Outputs(ctx, op)
	if err != nil {
		return fmt.Errorf("reading call outputs: %w", err)
	}
	n := min(len(inputs), len(outputs))
	for i := 0; i < n; i++ {
		fmt.Fprintf(w, "%s(%s) -> %s\n", op, inputs[i], outputs[i])
	}
	return nil
}
