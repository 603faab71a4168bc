package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/SscSPs/inventory_ledger_app/internal/apperrors"
	"github.com/SscSPs/inventory_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/inventory_ledger_app/internal/core/ports/repositories"
	"github.com/google/uuid"
)

// StateContainer is the single owner of the ledger state.
//
// The published state is never modified in place. Mutate applies a change to a
// deep copy, persists the copy and only then publishes it, so a failed
// mutation or a failed save leaves the published state untouched.
type StateContainer struct {
	BaseService
	mu    sync.RWMutex
	state *domain.State
	repo  portsrepo.StateRepositoryFacade
	clock func() time.Time
	newID func() string
}

// ContainerOption is a functional option for configuring the state container
type ContainerOption func(*StateContainer)

// WithClock replaces the wall clock, mainly for tests.
func WithClock(clock func() time.Time) ContainerOption {
	return func(c *StateContainer) {
		c.clock = clock
	}
}

// WithIDGenerator replaces the UUID generator, mainly for tests.
func WithIDGenerator(gen func() string) ContainerOption {
	return func(c *StateContainer) {
		c.newID = gen
	}
}

// NewStateContainer creates a container holding an empty state. Call Load to rehydrate it.
func NewStateContainer(repo portsrepo.StateRepositoryFacade, options ...ContainerOption) *StateContainer {
	c := &StateContainer{
		state: domain.NewState(),
		repo:  repo,
		clock: time.Now,
		newID: uuid.NewString,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// Load replaces the in-memory state with the persisted one. A repository with
// nothing saved yet leaves an empty state in place.
func (c *StateContainer) Load(ctx context.Context) error {
	loaded, err := c.repo.LoadState(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.LogInfo(ctx, "No persisted ledger state found, starting empty")
			return nil
		}
		c.LogError(ctx, err, "Failed to load ledger state")
		return fmt.Errorf("failed to load ledger state: %w", err)
	}
	loaded.Normalize()

	c.mu.Lock()
	c.state = loaded
	c.mu.Unlock()

	c.LogInfo(ctx, "Ledger state loaded",
		slog.Int("products", len(loaded.Products)),
		slog.Int("sales", len(loaded.Sales)),
		slog.Int("records", len(loaded.CreditDebitRecords)))
	return nil
}

// Now is the container's clock in UTC.
func (c *StateContainer) Now() time.Time {
	return c.clock().UTC()
}

// NewID returns a fresh record identifier.
func (c *StateContainer) NewID() string {
	return c.newID()
}

// View runs fn against the published state. fn must not modify it or retain
// references to its slices or maps.
func (c *StateContainer) View(fn func(s *domain.State) error) error {
	c.mu.RLock()
	current := c.state
	c.mu.RUnlock()
	return fn(current)
}

// Read is View for scans that cannot fail.
func (c *StateContainer) Read(fn func(s *domain.State)) {
	c.mu.RLock()
	current := c.state
	c.mu.RUnlock()
	fn(current)
}

// Snapshot returns a deep copy of the published state.
func (c *StateContainer) Snapshot() *domain.State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state.Clone()
}

// Mutate applies fn to a copy of the state, persists the copy and publishes it.
// Mutations are serialised. If fn or the save fails nothing changes.
func (c *StateContainer) Mutate(ctx context.Context, fn func(s *domain.State) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := c.state.Clone()
	if err := fn(next); err != nil {
		return err
	}

	if err := c.repo.SaveState(ctx, next); err != nil {
		c.LogError(ctx, err, "Failed to persist ledger state, mutation discarded")
		return fmt.Errorf("failed to persist ledger state: %w", err)
	}

	c.state = next
	return nil
}
