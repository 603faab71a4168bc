package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/SscSPs/inventory_ledger_app/internal/adapters/storage/codec"
	"github.com/SscSPs/inventory_ledger_app/internal/apperrors"
	"github.com/SscSPs/inventory_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/inventory_ledger_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxStateRepository stores the ledger snapshot as JSONB in the single-row
// ledger_state table created by the migrations.
type PgxStateRepository struct {
	pool *pgxpool.Pool
}

// newPgxStateRepository creates a new repository for the ledger state.
func newPgxStateRepository(pool *pgxpool.Pool) portsrepo.StateRepositoryFacade {
	return &PgxStateRepository{pool: pool}
}

// Ensure implementation matches interface
var _ portsrepo.StateRepositoryFacade = (*PgxStateRepository)(nil)

// LoadState reads the snapshot row.
func (r *PgxStateRepository) LoadState(ctx context.Context) (*domain.State, error) {
	query := `SELECT payload FROM ledger_state WHERE id = 1;`

	var payload []byte
	err := r.pool.QueryRow(ctx, query).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to read ledger state", err)
	}
	return codec.Decode(payload)
}

// SaveState upserts the snapshot row.
func (r *PgxStateRepository) SaveState(ctx context.Context, state *domain.State) error {
	savedAt := time.Now().UTC()
	payload, err := codec.Encode(state, savedAt)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO ledger_state (id, schema_version, payload, saved_at)
		VALUES (1, $1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET
			schema_version = EXCLUDED.schema_version,
			payload = EXCLUDED.payload,
			saved_at = EXCLUDED.saved_at;
	`
	return r.withTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, query, domain.SchemaVersion, payload, savedAt); err != nil {
			return apperrors.NewAppError(500, "failed to write ledger state", err)
		}
		return nil
	})
}

// withTx runs fn in a transaction, committing only when fn succeeds.
func (r *PgxStateRepository) withTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return apperrors.NewAppError(500, "failed to begin transaction", err)
	}
	defer func() {
		// Rollback after a commit is a no-op returning ErrTxClosed.
		_ = tx.Rollback(ctx)
	}()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewAppError(500, "failed to commit transaction", err)
	}
	return nil
}
