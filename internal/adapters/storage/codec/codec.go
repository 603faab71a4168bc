// Package codec converts the ledger state to and from its persisted snapshot form.
package codec

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/SscSPs/inventory_ledger_app/internal/apperrors"
	"github.com/SscSPs/inventory_ledger_app/internal/core/domain"
)

// Encode wraps state in a versioned snapshot and marshals it to JSON.
func Encode(state *domain.State, savedAt time.Time) ([]byte, error) {
	if state == nil {
		return nil, fmt.Errorf("cannot encode nil ledger state")
	}
	data, err := json.Marshal(domain.NewSnapshot(state, savedAt))
	if err != nil {
		return nil, fmt.Errorf("failed to encode ledger snapshot: %w", err)
	}
	return data, nil
}

// Decode parses a snapshot and returns its state with every collection non-nil.
// Snapshots written by another schema version are rejected with apperrors.ErrUnsupportedSchema.
func Decode(data []byte) (*domain.State, error) {
	var snapshot domain.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to decode ledger snapshot: %w", err)
	}
	if snapshot.SchemaVersion != domain.SchemaVersion {
		return nil, fmt.Errorf("snapshot schema version %d, want %d: %w",
			snapshot.SchemaVersion, domain.SchemaVersion, apperrors.ErrUnsupportedSchema)
	}
	state := snapshot.State
	if state == nil {
		state = domain.NewState()
	}
	state.Normalize()
	return state, nil
}
