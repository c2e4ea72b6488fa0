package histstore

import (
	"context"
	"sync"
)

type MemHistoryStore struct {
	mu      sync.Mutex
	inputs  map[string][]string
	outputs map[string][]string
}

var _ HistoryStore = (*MemHistoryStore)(nil)

func NewMemHistoryStore() *MemHistoryStore {
	return &MemHistoryStore{
		inputs:  make(map[string][]string),
		outputs: make(map[string][]string),
	}
}

func (s *MemHistoryStore) RecordInput(ctx context.Context, name, input string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inputs[name] = append(s.inputs[name], input)
	return nil
}

func (s *MemHistoryStore) RecordOutput(ctx context.Context, name, output string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.outputs[name] = append(s.outputs[name], output)
	return nil
}

func (s *MemHistoryStore) Inputs(ctx context.Context, name string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string{}, s.inputs[name]...), nil
}

func (s *MemHistoryStore) Outputs(ctx context.Context, name string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string{}, s.outputs[name]...), nil
}
