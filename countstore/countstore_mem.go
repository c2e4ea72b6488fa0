package countstore

import (
	"context"
	"sync"
)

type MemCountStore struct {
	mu     sync.Mutex
	counts map[string]int64
}

var _ CountStore = (*MemCountStore)(nil)

func NewMemCountStore() *MemCountStore {
	return &MemCountStore{
		counts: make(map[string]int64),
	}
}

func (s *MemCountStore) Increment(ctx context.Context, name string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := s.counts[name] + 1
	s.counts[name] = v
	return v, nil
}

func (s *MemCountStore) GetCount(ctx context.Context, name string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counts[name], nil
}

func (s *MemCountStore) Reset(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.counts, name)
	return nil
}
