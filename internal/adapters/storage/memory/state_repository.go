// Package memory keeps the ledger snapshot in process memory.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/SscSPs/inventory_ledger_app/internal/adapters/storage/codec"
	"github.com/SscSPs/inventory_ledger_app/internal/apperrors"
	"github.com/SscSPs/inventory_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/inventory_ledger_app/internal/core/ports/repositories"
)

// StateRepository holds the encoded snapshot, so callers never share memory
// with what was saved.
type StateRepository struct {
	mu    sync.RWMutex
	data  []byte
	saves int
}

// NewStateRepository creates an empty in-memory state repository.
func NewStateRepository() *StateRepository {
	return &StateRepository{}
}

var _ portsrepo.StateRepositoryFacade = (*StateRepository)(nil)

func (r *StateRepository) LoadState(ctx context.Context) (*domain.State, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.data == nil {
		return nil, apperrors.ErrNotFound
	}
	return codec.Decode(r.data)
}

func (r *StateRepository) SaveState(ctx context.Context, state *domain.State) error {
	data, err := codec.Encode(state, time.Now())
	if err != nil {
		return err
	}
	r.mu.Lock()
	r.data = data
	r.saves++
	r.mu.Unlock()
	return nil
}

// Saves reports how many snapshots have been written.
func (r *StateRepository) Saves() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.saves
}
