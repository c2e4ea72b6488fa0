package stash

import (
	"context"
	"fmt"

	"github.com/packrat-io/packrat/countstore"
	"github.com/packrat-io/packrat/histstore"
)

// StoreFunc is the unit the instrumentation wraps: persist one value, return
// the key it landed under.
type StoreFunc func(ctx context.Context, val Value) (string, error)

// Middleware decorates a StoreFunc under a stable operation name. The name
// keys the instrumentation, so every process wrapping the same operation
// against the same backing store shares counters and history.
type Middleware func(op string, next StoreFunc) StoreFunc

// Wrap applies middleware to fn, first middleware outermost.
func Wrap(op string, fn StoreFunc, mws ...Middleware) StoreFunc {
	for i := len(mws) - 1; i >= 0; i-- {
		fn = mws[i](op, fn)
	}
	return fn
}

// CountCalls counts invocations of the wrapped operation. The counter is
// bumped before the operation runs, so failed calls are counted too.
func CountCalls(counts countstore.CountStore) Middleware {
	return func(op string, next StoreFunc) StoreFunc {
		return func(ctx context.Context, val Value) (string, error) {
			if _, err := counts.Increment(ctx, op); err != nil {
				return "", fmt.Errorf("incrementing call counter: %w", err)
			}
			return next(ctx, val)
		}
	}
}

// RecordCalls appends the input and output of each invocation to the
// operation's history. The input is recorded before the operation runs and
// the output only after it succeeds, so a failed call leaves a dangling
// input and no output.
func RecordCalls(hist histstore.HistoryStore) Middleware {
	return func(op string, next StoreFunc) StoreFunc {
		return func(ctx context.Context, val Value) (string, error) {
			if err := hist.RecordInput(ctx, op, val.String()); err != nil {
				return "", fmt.Errorf("recording call input: %w", err)
			}
			key, err := next(ctx, val)
			if err != nil {
				return "", err
			}
			if err := hist.RecordOutput(ctx, op, key); err != nil {
				return "", fmt.Errorf("recording call output: %w", err)
			}
			return key, nil
		}
	}
}
