package roots

import (
	"context"
	"sync"

	"github.com/claimtrail/go-xmt/xmt"
)

// MemStore is the in process reference implementation of the RootStore
// atomicity contract. The zero value is ready to use; GetRoot before the
// first SetRoot returns ErrRootNotFound.
type MemStore struct {
	mu   sync.RWMutex
	root xmt.Value
	set  bool
}

func NewMemStore() *MemStore {
	return &MemStore{}
}

func (s *MemStore) GetRoot(_ context.Context) (xmt.Value, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.set {
		return xmt.Value{}, ErrRootNotFound
	}
	return s.root, nil
}

func (s *MemStore) SetRoot(_ context.Context, root xmt.Value) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.root = root
	s.set = true
	return nil
}
