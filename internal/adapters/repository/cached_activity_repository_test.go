package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/comitanigiacomo/rings-closed-engine/internal/core/domain"
)

// countingActivityRepository records how often the backing store is listed.
type countingActivityRepository struct {
	*InMemoryActivityRepository
	lists int
}

func (r *countingActivityRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.ActivityRecord, error) {
	r.lists++
	return r.InMemoryActivityRepository.ListByUserID(ctx, userID)
}

func setupCachedRepo(t *testing.T) (*CachedActivityRepository, *countingActivityRepository, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	next := &countingActivityRepository{InMemoryActivityRepository: NewInMemoryActivityRepository()}
	return NewCachedActivityRepository(next, rdb, 30*time.Minute, zap.NewNop()), next, mr
}

func TestCachedActivityRepository(t *testing.T) {
	ctx := context.Background()
	uid := "user-1"

	rec := func(d int) *domain.ActivityRecord {
		return domain.NewActivityRecord(uid, domain.DateComponents{Year: 2024, Month: 1, Day: d})
	}

	t.Run("Success: Second read is served from Redis", func(t *testing.T) {
		repo, next, mr := setupCachedRepo(t)
		require.NoError(t, repo.UpsertMany(ctx, []*domain.ActivityRecord{rec(2), rec(1)}))

		first, err := repo.ListByUserID(ctx, uid)
		require.NoError(t, err)
		second, err := repo.ListByUserID(ctx, uid)
		require.NoError(t, err)

		assert.Equal(t, 1, next.lists)
		require.Len(t, second, len(first))
		for i := range first {
			assert.Equal(t, first[i].ID, second[i].ID)
			assert.Equal(t, first[i].DateComponents, second[i].DateComponents)
		}
		assert.True(t, mr.Exists("activity:user-1"))
		assert.Equal(t, 30*time.Minute, mr.TTL("activity:user-1"))
	})

	t.Run("Success: Writes invalidate the user key", func(t *testing.T) {
		repo, next, mr := setupCachedRepo(t)
		r1 := rec(1)
		require.NoError(t, repo.Upsert(ctx, r1))

		_, _ = repo.ListByUserID(ctx, uid)
		require.True(t, mr.Exists("activity:user-1"))

		require.NoError(t, repo.Upsert(ctx, rec(2)))
		assert.False(t, mr.Exists("activity:user-1"))

		list, err := repo.ListByUserID(ctx, uid)
		require.NoError(t, err)
		assert.Len(t, list, 2)
		assert.Equal(t, 2, next.lists)

		require.NoError(t, repo.Delete(ctx, r1.ID, uid))
		assert.False(t, mr.Exists("activity:user-1"))
	})

	t.Run("Success: Range reads filter the cached history", func(t *testing.T) {
		repo, next, _ := setupCachedRepo(t)
		require.NoError(t, repo.UpsertMany(ctx, []*domain.ActivityRecord{rec(1), rec(2), rec(3), rec(4)}))

		ranged, err := repo.ListByUserIDWithRange(ctx, uid,
			domain.DateComponents{Year: 2024, Month: 1, Day: 2},
			domain.DateComponents{Year: 2024, Month: 1, Day: 3},
		)
		require.NoError(t, err)
		require.Len(t, ranged, 2)
		assert.Equal(t, 2, ranged[0].Day)
		assert.Equal(t, 3, ranged[1].Day)

		_, _ = repo.ListByUserIDWithRange(ctx, uid, domain.DateComponents{Year: 2024, Month: 1, Day: 1}, domain.DateComponents{Year: 2024, Month: 1, Day: 1})
		assert.Equal(t, 1, next.lists)
	})

	t.Run("Resilience: Corrupted entry falls back to the store", func(t *testing.T) {
		repo, next, mr := setupCachedRepo(t)
		require.NoError(t, repo.Upsert(ctx, rec(1)))
		require.NoError(t, mr.Set("activity:user-1", "{not json"))

		list, err := repo.ListByUserID(ctx, uid)
		require.NoError(t, err)
		assert.Len(t, list, 1)
		assert.Equal(t, 1, next.lists)
	})

	t.Run("Resilience: Redis down still reads from the store", func(t *testing.T) {
		repo, _, mr := setupCachedRepo(t)
		require.NoError(t, repo.Upsert(ctx, rec(1)))
		mr.Close()

		list, err := repo.ListByUserID(ctx, uid)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})
}
