package docstore

import (
	"context"
	"reflect"
	"sync"

	"github.com/google/uuid"
)

// MemDocStore is an in-memory DocStore, for tests and local development.
type MemDocStore struct {
	mu          sync.Mutex
	collections map[string][]map[string]any
}

var _ DocStore = (*MemDocStore)(nil)

func NewMemDocStore() *MemDocStore {
	return &MemDocStore{
		collections: make(map[string][]map[string]any),
	}
}

func (s *MemDocStore) InsertOne(ctx context.Context, collection string, doc map[string]any) (string, error) {
	cp := make(map[string]any, len(doc))
	for k, v := range doc {
		cp[k] = v
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collections[collection] = append(s.collections[collection], cp)
	return uuid.New().String(), nil
}

func (s *MemDocStore) CountDocuments(ctx context.Context, collection string, filter map[string]any) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for _, doc := range s.collections[collection] {
		if matches(doc, filter) {
			n++
		}
	}
	return n, nil
}

// matches applies deep equality so documents may hold slice or map values,
// which interface comparison would panic on.
func matches(doc, filter map[string]any) bool {
	for k, want := range filter {
		if !reflect.DeepEqual(doc[k], want) {
			return false
		}
	}
	return true
}
