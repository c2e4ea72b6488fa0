package recordstore

import (
	"context"
	"sync"
)

type MemRecordStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

var _ RecordStore = (*MemRecordStore)(nil)

func NewMemRecordStore() *MemRecordStore {
	return &MemRecordStore{
		data: make(map[string][]byte),
	}
}

func (s *MemRecordStore) Set(ctx context.Context, key string, val []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]byte, len(val))
	copy(cp, val)
	s.data[key] = cp
	return nil
}

func (s *MemRecordStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key]
	if !ok {
		return nil, false, nil
	}
	cp := make([]byte, len(v))
	copy(cp, v)
	return cp, true, nil
}
