package cli

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/samuel/pkg/adapters/memory"
	"github.com/aretw0/samuel/pkg/adapters/redis"
	"github.com/aretw0/samuel/pkg/session"
)

// StoreOptions selects where the servers keep puzzles.
type StoreOptions struct {
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	PuzzleTTL     time.Duration
}

// newSessions builds the session manager. With a Redis address puzzles are
// shared between replicas and guarded by a distributed lock; otherwise they
// live in memory. The returned close function releases the backend.
func newSessions(ctx context.Context, opts StoreOptions, logger *slog.Logger) (*session.Manager, func() error, error) {
	if opts.RedisAddr == "" {
		mgr := session.NewManager(memory.NewStore(), session.WithLogger(logger))
		return mgr, func() error { return nil }, nil
	}

	store := redis.New(opts.RedisAddr, opts.RedisPassword, opts.RedisDB, redis.WithTTL(opts.PuzzleTTL))
	if err := store.Ping(ctx); err != nil {
		_ = store.Close()
		return nil, nil, fmt.Errorf("failed to connect to redis at %s: %w", opts.RedisAddr, err)
	}
	logger.Info("Using Redis puzzle store", "addr", opts.RedisAddr, "ttl", opts.PuzzleTTL)

	mgr := session.NewManager(store,
		session.WithLogger(logger),
		session.WithLocker(redis.NewLocker(store.Client(), store.Prefix())),
	)
	return mgr, store.Close, nil
}
