package file

import (
	"context"
	"testing"

	"github.com/SscSPs/inventory_ledger_app/internal/apperrors"
	"github.com/SscSPs/inventory_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const statePath = "/data/ledger_state.json"

func TestStateRepository_MissingFileIsNotFound(t *testing.T) {
	repo := NewStateRepository(afero.NewMemMapFs(), statePath)
	_, err := repo.LoadState(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestStateRepository_SaveCreatesDirectoryAndLoads(t *testing.T) {
	ctx := context.Background()
	fsys := afero.NewMemMapFs()
	repo := NewStateRepository(fsys, statePath)

	state := domain.NewState()
	state.Customers = append(state.Customers, domain.Customer{
		ID: "cu1", Name: "Aung", CreditBalance: decimal.NewFromInt(6000),
	})
	require.NoError(t, repo.SaveState(ctx, state))

	exists, err := afero.Exists(fsys, statePath)
	require.NoError(t, err)
	assert.True(t, exists)

	loaded, err := repo.LoadState(ctx)
	require.NoError(t, err)
	require.Len(t, loaded.Customers, 1)
	assert.True(t, loaded.Customers[0].CreditBalance.Equal(decimal.NewFromInt(6000)))
}

func TestStateRepository_SaveReplacesAndLeavesNoTempFiles(t *testing.T) {
	ctx := context.Background()
	fsys := afero.NewMemMapFs()
	repo := NewStateRepository(fsys, statePath)

	first := domain.NewState()
	first.Brands = append(first.Brands, domain.Brand{ID: "b1", Name: "Old"})
	require.NoError(t, repo.SaveState(ctx, first))

	second := domain.NewState()
	second.Brands = append(second.Brands, domain.Brand{ID: "b1", Name: "New"})
	require.NoError(t, repo.SaveState(ctx, second))

	loaded, err := repo.LoadState(ctx)
	require.NoError(t, err)
	assert.Equal(t, "New", loaded.Brands[0].Name)

	entries, err := afero.ReadDir(fsys, "/data")
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestStateRepository_UnsupportedSchema(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, statePath, []byte(`{"schemaVersion":7,"state":{}}`), 0o644))

	repo := NewStateRepository(fsys, statePath)
	_, err := repo.LoadState(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrUnsupportedSchema)
}

func TestStateRepository_ReadOnlyFsFailsSave(t *testing.T) {
	repo := NewStateRepository(afero.NewReadOnlyFs(afero.NewMemMapFs()), statePath)
	err := repo.SaveState(context.Background(), domain.NewState())
	assert.Error(t, err)
}
