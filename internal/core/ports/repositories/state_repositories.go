package repositories

import (
	"context"

	"github.com/SscSPs/inventory_ledger_app/internal/core/domain"
)

// StateReader defines read operations for the persisted ledger state
type StateReader interface {
	// LoadState rehydrates the last saved state.
	// It returns apperrors.ErrNotFound when nothing has been saved yet.
	LoadState(ctx context.Context) (*domain.State, error)
}

// StateWriter defines write operations for the persisted ledger state
type StateWriter interface {
	// SaveState replaces the persisted state with state.
	SaveState(ctx context.Context, state *domain.State) error
}

// StateRepositoryFacade combines all state repository interfaces
// This is what the ledger state container persists through
type StateRepositoryFacade interface {
	StateReader
	StateWriter
}
