package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aretw0/samuel/pkg/adapters/redis"
	"github.com/aretw0/samuel/pkg/domain"
	"github.com/aretw0/samuel/pkg/ports"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ ports.PuzzleStore = (*redis.Store)(nil)

func newClient(t *testing.T) (*miniredis.Miniredis, *backend.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRedisStore_Contract(t *testing.T) {
	_, client := newClient(t)
	ports.RunPuzzleStoreContract(t, redis.NewFromClient(client))
}

func TestRedisStore_TTL_Expiration(t *testing.T) {
	mr, client := newClient(t)
	store := redis.NewFromClient(client, redis.WithTTL(time.Second))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, domain.NewPuzzleState("short-lived", domain.Snapshot{})))
	assert.Equal(t, time.Second, mr.TTL("samuel:puzzle:short-lived"))

	_, err := store.Load(ctx, "short-lived")
	require.NoError(t, err)

	mr.FastForward(2 * time.Second)

	_, err = store.Load(ctx, "short-lived")
	assert.ErrorIs(t, err, domain.ErrPuzzleNotFound)
}

func TestRedisStore_ListPrunesExpiredIndex(t *testing.T) {
	mr, client := newClient(t)
	store := redis.NewFromClient(client, redis.WithPrefix("test:"))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, domain.NewPuzzleState("live", domain.Snapshot{})))
	_, err := mr.ZAdd("test:index", 1, "stale")
	require.NoError(t, err)

	ids, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"live"}, ids)
	assert.True(t, mr.Exists("test:live"))
}

func TestRedisStore_ServerDown(t *testing.T) {
	mr, client := newClient(t)
	store := redis.NewFromClient(client)
	mr.Close()

	ctx := context.Background()
	assert.Error(t, store.Ping(ctx))
	_, err := store.Load(ctx, "any")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrPuzzleNotFound)
}
