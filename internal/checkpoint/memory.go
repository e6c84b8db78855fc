package checkpoint

import (
	"context"
	"errors"
	"sync"
)

// MemoryStore keeps encoded state payloads in process memory.
// Payloads are stored encoded so callers cannot alias saved state.
type MemoryStore struct {
	mu          sync.RWMutex
	initialized bool
	states      map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Init(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.initialized = true
	s.states = make(map[string][]byte)
	return nil
}

func (s *MemoryStore) SaveState(_ context.Context, runID string, state any) error {
	payload, err := EncodeState(state)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return errors.New("store is not initialized")
	}
	s.states[runID] = payload
	return nil
}

func (s *MemoryStore) GetState(_ context.Context, runID string) (any, bool, error) {
	s.mu.RLock()
	payload, ok := s.states[runID]
	s.mu.RUnlock()

	if !ok {
		return nil, false, nil
	}

	state, err := DecodeState(payload)
	if err != nil {
		return nil, false, err
	}
	return state, true, nil
}
