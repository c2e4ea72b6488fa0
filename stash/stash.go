package stash

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/packrat-io/packrat/countstore"
	"github.com/packrat-io/packrat/histstore"
	"github.com/packrat-io/packrat/recordstore"
)

// OpStore is the operation name Store is instrumented under. Counters and
// history are keyed by this string, shared by every Stash on the same
// backing store.
const OpStore = "Stash.Store"

// ErrUnsupportedKind is returned by Store for a Value that was not built
// with one of the typed constructors.
var ErrUnsupportedKind = errors.New("unsupported value kind")

// Stash persists values under generated keys, instrumenting each Store call
// with a counter and an input/output history. Counters and History may be
// nil, which disables that half of the instrumentation.
type Stash struct {
	Records  recordstore.RecordStore
	Counters countstore.CountStore
	History  histstore.HistoryStore

	store StoreFunc
}

func New(records recordstore.RecordStore, counters countstore.CountStore, hist histstore.HistoryStore) *Stash {
	s := &Stash{
		Records:  records,
		Counters: counters,
		History:  hist,
	}
	var mws []Middleware
	if counters != nil {
		mws = append(mws, CountCalls(counters))
	}
	if hist != nil {
		mws = append(mws, RecordCalls(hist))
	}
	s.store = Wrap(OpStore, s.persist, mws...)
	return s
}

func (s *Stash) persist(ctx context.Context, val Value) (string, error) {
	key := uuid.New().String()
	if err := s.Records.Set(ctx, key, val.Encode()); err != nil {
		return "", fmt.Errorf("storing record: %w", err)
	}
	return key, nil
}

// Store persists val under a fresh random key and returns the key. The call
// is counted and recorded before the write happens, so instrumentation
// reflects attempts, not successes. An invalid Value is rejected up front
// with ErrUnsupportedKind, before any side effect.
func (s *Stash) Store(ctx context.Context, val Value) (string, error) {
	if val.Kind() == 0 {
		return "", ErrUnsupportedKind
	}
	return s.store(ctx, val)
}

// Retrieve returns the raw bytes stored under key. The store keeps no type
// information, so the caller gets exactly the encoded form; use Convert or
// the Retrieve* helpers to recover a typed value.
func (s *Stash) Retrieve(ctx context.Context, key string) ([]byte, bool, error) {
	raw, found, err := s.Records.Get(ctx, key)
	if err != nil {
		return nil, false, fmt.Errorf("reading record: %w", err)
	}
	return raw, found, nil
}

// Convert reads the record at key and applies fn to its raw bytes. The
// boolean reports whether the key existed; fn is never called for a missing
// key. A conversion failure is returned unwrapped, with the boolean still
// true, so callers can tell "absent" from "present but malformed".
func Convert[T any](ctx context.Context, s *Stash, key string, fn func([]byte) (T, error)) (T, bool, error) {
	var zero T
	raw, found, err := s.Retrieve(ctx, key)
	if err != nil || !found {
		return zero, found, err
	}
	v, err := fn(raw)
	if err != nil {
		return zero, true, err
	}
	return v, true, nil
}

func (s *Stash) RetrieveText(ctx context.Context, key string) (string, bool, error) {
	return Convert(ctx, s, key, AsText)
}

func (s *Stash) RetrieveInt(ctx context.Context, key string) (int64, bool, error) {
	return Convert(ctx, s, key, AsInt)
}

func (s *Stash) RetrieveFloat(ctx context.Context, key string) (float64, bool, error) {
	return Convert(ctx, s, key, AsFloat)
}

// StoreCount reports how many times Store has been called against the
// backing store. Zero when counting is disabled or Store was never called.
func (s *Stash) StoreCount(ctx context.Context) (int64, error) {
	if s.Counters == nil {
		return 0, nil
	}
	return s.Counters.GetCount(ctx, OpStore)
}
