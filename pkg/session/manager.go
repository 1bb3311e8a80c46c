package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/aretw0/samuel/internal/logging"
	"github.com/aretw0/samuel/pkg/domain"
	"github.com/aretw0/samuel/pkg/ports"
	"github.com/google/uuid"
)

// lockEntry holds the mutex and the reference count.
type lockEntry struct {
	mu   sync.Mutex
	refs int
}

// Manager orchestrates puzzle access, ensuring updates to one puzzle never
// interleave. It uses reference counting to garbage collect unused locks.
type Manager struct {
	store ports.PuzzleStore

	mu    sync.Mutex
	locks map[string]*lockEntry

	locker ports.DistributedLocker // optional, for replicas sharing a store
	logger *slog.Logger
	newID  func() string
}

// lockTTL bounds how long a crashed replica can hold a puzzle.
const lockTTL = 30 * time.Second

// Option configures the Manager.
type Option func(*Manager)

// WithLogger configures a logger for the Manager.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// WithLocker enables distributed locking on top of the in-process locks.
func WithLocker(locker ports.DistributedLocker) Option {
	return func(m *Manager) {
		m.locker = locker
	}
}

// WithIDGenerator replaces the UUID generator, mostly for tests.
func WithIDGenerator(fn func() string) Option {
	return func(m *Manager) {
		m.newID = fn
	}
}

// NewManager creates a new Manager backed by the given store.
func NewManager(store ports.PuzzleStore, opts ...Option) *Manager {
	m := &Manager{
		store:  store,
		locks:  make(map[string]*lockEntry),
		logger: logging.NewNop(),
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// acquire gets or creates a lock entry and increments its reference count.
// The caller must lock entry.mu and call release(id) after unlocking.
func (m *Manager) acquire(id string) *lockEntry {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.locks[id]
	if !exists {
		entry = &lockEntry{}
		m.locks[id] = entry
	}
	entry.refs++
	return entry
}

// release decrements the reference count and deletes the entry at zero.
func (m *Manager) release(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.locks[id]
	if !exists {
		return
	}

	entry.refs--
	if entry.refs <= 0 {
		delete(m.locks, id)
	}
}

// Create registers a fresh puzzle for the snapshot and returns it.
func (m *Manager) Create(ctx context.Context, snap domain.Snapshot) (*domain.PuzzleState, error) {
	state := domain.NewPuzzleState(m.newID(), snap)
	err := m.WithLock(ctx, state.ID, func(ctx context.Context) error {
		return m.store.Save(ctx, state)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create puzzle: %w", err)
	}
	m.logger.Debug("puzzle created", "puzzle", state.ID)
	return state, nil
}

// Load retrieves an existing puzzle from the store.
func (m *Manager) Load(ctx context.Context, id string) (*domain.PuzzleState, error) {
	var state *domain.PuzzleState
	err := m.WithLock(ctx, id, func(ctx context.Context) error {
		var err error
		state, err = m.store.Load(ctx, id)
		return err
	})
	return state, err
}

// Update loads the puzzle, passes it to fn and saves the result, all under
// the puzzle's lock. Nothing is saved when fn fails.
func (m *Manager) Update(ctx context.Context, id string, fn func(context.Context, *domain.PuzzleState) error) (*domain.PuzzleState, error) {
	var state *domain.PuzzleState
	err := m.WithLock(ctx, id, func(ctx context.Context) error {
		loaded, err := m.store.Load(ctx, id)
		if err != nil {
			return err
		}
		if err := fn(ctx, loaded); err != nil {
			return err
		}
		if err := m.store.Save(ctx, loaded); err != nil {
			return fmt.Errorf("failed to save puzzle: %w", err)
		}
		state = loaded
		return nil
	})
	if err != nil && !errors.Is(err, domain.ErrPuzzleNotFound) {
		m.logger.Debug("puzzle update failed", "puzzle", id, "err", err)
	}
	return state, err
}

// Delete removes the puzzle from the store.
func (m *Manager) Delete(ctx context.Context, id string) error {
	return m.WithLock(ctx, id, func(ctx context.Context) error {
		return m.store.Delete(ctx, id)
	})
}

// List delegates to the store.
func (m *Manager) List(ctx context.Context) ([]string, error) {
	return m.store.List(ctx)
}

// Store returns the underlying puzzle store.
func (m *Manager) Store() ports.PuzzleStore {
	return m.store
}

// WithLock executes fn while holding the lock for the puzzle.
func (m *Manager) WithLock(ctx context.Context, id string, fn func(context.Context) error) error {
	entry := m.acquire(id)
	entry.mu.Lock()
	defer func() {
		entry.mu.Unlock()
		m.release(id)
	}()

	if err := ctx.Err(); err != nil {
		return err
	}

	if m.locker != nil {
		unlock, err := m.locker.Lock(ctx, id, lockTTL)
		if err != nil {
			return fmt.Errorf("failed to lock puzzle %s: %w", id, err)
		}
		defer func() {
			if err := unlock(context.WithoutCancel(ctx)); err != nil {
				m.logger.Warn("failed to release distributed lock", "puzzle", id, "err", err)
			}
		}()
	}
	return fn(ctx)
}
