// Package sqlite persists the ledger snapshot in a single-row SQLite table.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/SscSPs/inventory_ledger_app/internal/adapters/storage/codec"
	"github.com/SscSPs/inventory_ledger_app/internal/apperrors"
	"github.com/SscSPs/inventory_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/inventory_ledger_app/internal/core/ports/repositories"
	"github.com/jmoiron/sqlx"
)

const schema = `
CREATE TABLE IF NOT EXISTS ledger_state (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    schema_version INTEGER NOT NULL,
    payload TEXT NOT NULL,
    saved_at DATETIME NOT NULL
);`

type stateRow struct {
	SchemaVersion int    `db:"schema_version"`
	Payload       string `db:"payload"`
}

// StateRepository stores the snapshot JSON in row 1 of ledger_state.
type StateRepository struct {
	db *sqlx.DB
}

// NewStateRepository creates the ledger_state table if needed.
func NewStateRepository(ctx context.Context, db *sqlx.DB) (*StateRepository, error) {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return nil, apperrors.NewAppError(500, "failed to create ledger_state table", err)
	}
	return &StateRepository{db: db}, nil
}

var _ portsrepo.StateRepositoryFacade = (*StateRepository)(nil)

func (r *StateRepository) LoadState(ctx context.Context) (*domain.State, error) {
	var row stateRow
	err := r.db.GetContext(ctx, &row, `SELECT schema_version, payload FROM ledger_state WHERE id = 1`)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to read ledger state", err)
	}
	return codec.Decode([]byte(row.Payload))
}

func (r *StateRepository) SaveState(ctx context.Context, state *domain.State) error {
	savedAt := time.Now().UTC()
	data, err := codec.Encode(state, savedAt)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO ledger_state (id, schema_version, payload, saved_at)
		VALUES (1, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			schema_version = excluded.schema_version,
			payload = excluded.payload,
			saved_at = excluded.saved_at`,
		domain.SchemaVersion, string(data), savedAt.Format(time.RFC3339Nano))
	if err != nil {
		return apperrors.NewAppError(500, "failed to write ledger state", err)
	}
	return nil
}
