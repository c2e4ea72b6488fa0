package recordstore

import (
	"context"
)

// RecordStore persists opaque byte records under caller-chosen keys.
//
// The store keeps no type information: whatever shape a value had when it was
// written, it comes back as raw bytes, and the reader is responsible for any
// reinterpretation. Absent keys are signaled with the ok result, never an
// error.
type RecordStore interface {
	Set(ctx context.Context, key string, val []byte) error
	Get(ctx context.Context, key string) ([]byte, bool, error)
}
