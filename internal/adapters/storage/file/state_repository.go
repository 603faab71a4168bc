// Package file persists the ledger snapshot as a JSON document on a filesystem.
package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sync"
	"time"

	"github.com/SscSPs/inventory_ledger_app/internal/adapters/storage/codec"
	"github.com/SscSPs/inventory_ledger_app/internal/apperrors"
	"github.com/SscSPs/inventory_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/inventory_ledger_app/internal/core/ports/repositories"
	"github.com/spf13/afero"
)

// StateRepository writes snapshots to a temporary file and renames it over
// the target, so a crash mid-write leaves the previous snapshot intact.
type StateRepository struct {
	mu   sync.Mutex
	fs   afero.Fs
	path string
}

// NewStateRepository creates a repository storing the snapshot at path on fsys.
func NewStateRepository(fsys afero.Fs, path string) *StateRepository {
	return &StateRepository{fs: fsys, path: path}
}

// NewOSStateRepository stores the snapshot on the operating system's filesystem.
func NewOSStateRepository(path string) *StateRepository {
	return NewStateRepository(afero.NewOsFs(), path)
}

var _ portsrepo.StateRepositoryFacade = (*StateRepository)(nil)

func (r *StateRepository) LoadState(ctx context.Context) (*domain.State, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := afero.ReadFile(r.fs, r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to read state file", err)
	}
	return codec.Decode(data)
}

func (r *StateRepository) SaveState(ctx context.Context, state *domain.State) error {
	data, err := codec.Encode(state, time.Now())
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	dir := filepath.Dir(r.path)
	if err := r.fs.MkdirAll(dir, 0o755); err != nil {
		return apperrors.NewAppError(500, "failed to create state directory", err)
	}

	tmp, err := afero.TempFile(r.fs, dir, filepath.Base(r.path)+".tmp-*")
	if err != nil {
		return apperrors.NewAppError(500, "failed to create temporary state file", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = r.fs.Remove(tmpName)
		return apperrors.NewAppError(500, "failed to write state file", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = r.fs.Remove(tmpName)
		return apperrors.NewAppError(500, "failed to sync state file", err)
	}
	if err := tmp.Close(); err != nil {
		_ = r.fs.Remove(tmpName)
		return apperrors.NewAppError(500, "failed to close state file", err)
	}
	if err := r.fs.Rename(tmpName, r.path); err != nil {
		_ = r.fs.Remove(tmpName)
		return apperrors.NewAppError(500, fmt.Sprintf("failed to replace %s", r.path), err)
	}
	return nil
}
