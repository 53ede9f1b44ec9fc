package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/rings-closed-engine/internal/core/domain"
)

func TestInMemoryActivityRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryActivityRepository()
	day := domain.DateComponents{Year: 2024, Month: 3, Day: 1}

	first := domain.NewActivityRecord("u1", day)
	require.NoError(t, repo.Upsert(ctx, first))

	again := domain.NewActivityRecord("u1", day)
	again.StandHours = 12
	require.NoError(t, repo.Upsert(ctx, again))

	assert.Equal(t, first.ID, again.ID)

	list, err := repo.ListByUserID(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 12.0, list[0].StandHours)

	assert.ErrorIs(t, repo.Delete(ctx, first.ID, "u2"), domain.ErrRecordNotFound)
	require.NoError(t, repo.Delete(ctx, first.ID, "u1"))

	_, err = repo.GetByID(ctx, first.ID)
	assert.ErrorIs(t, err, domain.ErrRecordNotFound)
}

func TestInMemoryUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryUserRepository()

	u, _ := domain.NewUser("id-1", "a@b.com")
	require.NoError(t, repo.Create(ctx, u))

	dup, _ := domain.NewUser("id-2", "a@b.com")
	assert.ErrorIs(t, repo.Create(ctx, dup), domain.ErrEmailAlreadyExists)

	found, err := repo.GetByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, "id-1", found.ID)

	require.NoError(t, repo.Delete(ctx, "id-1"))
	_, err = repo.GetByID(ctx, "id-1")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestInMemorySnapshotRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemorySnapshotRepository()
	jan := func(d int) time.Time { return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC) }

	require.NoError(t, repo.Upsert(ctx, &domain.StreakSnapshot{UserID: "u1", Dimension: domain.DimensionStand, ComputedFor: jan(1)}))
	require.NoError(t, repo.Upsert(ctx, &domain.StreakSnapshot{UserID: "u1", Dimension: domain.DimensionMove, ComputedFor: jan(3)}))
	require.NoError(t, repo.Upsert(ctx, &domain.StreakSnapshot{UserID: "u1", Dimension: domain.DimensionMove, ComputedFor: jan(5)}))

	list, err := repo.ListByUserID(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, domain.DimensionMove, list[0].Dimension)
	assert.Equal(t, jan(5), list[0].ComputedFor)

	stale, err := repo.ListComputedBefore(ctx, jan(4))
	require.NoError(t, err)
	require.Len(t, stale, 1)
	assert.Equal(t, domain.DimensionStand, stale[0].Dimension)
}
