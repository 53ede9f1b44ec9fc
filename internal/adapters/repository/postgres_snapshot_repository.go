package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/comitanigiacomo/rings-closed-engine/internal/core/domain"
)

var _ domain.SnapshotRepository = (*PostgresSnapshotRepository)(nil)

type PostgresSnapshotRepository struct {
	db *sqlx.DB
}

func NewPostgresSnapshotRepository(db *sqlx.DB) *PostgresSnapshotRepository {
	return &PostgresSnapshotRepository{db: db}
}

func (r *PostgresSnapshotRepository) Upsert(ctx context.Context, snapshot *domain.StreakSnapshot) error {
	query := `
		INSERT INTO streak_snapshots (
			user_id, dimension, timezone,
			current_length, current_start, current_end,
			longest_length, streak_count, computed_for, updated_at
		) VALUES (
			:user_id, :dimension, :timezone,
			:current_length, :current_start, :current_end,
			:longest_length, :streak_count, :computed_for, :updated_at
		)
		ON CONFLICT (user_id, dimension) DO UPDATE SET
			timezone       = EXCLUDED.timezone,
			current_length = EXCLUDED.current_length,
			current_start  = EXCLUDED.current_start,
			current_end    = EXCLUDED.current_end,
			longest_length = EXCLUDED.longest_length,
			streak_count   = EXCLUDED.streak_count,
			computed_for   = EXCLUDED.computed_for,
			updated_at     = EXCLUDED.updated_at`

	if _, err := r.db.NamedExecContext(ctx, query, snapshot); err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("repository: upsert snapshot: %w", err)
	}
	return nil
}

func (r *PostgresSnapshotRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.StreakSnapshot, error) {
	snapshots := []*domain.StreakSnapshot{}

	query := `SELECT * FROM streak_snapshots WHERE user_id = $1 ORDER BY dimension`
	if err := r.db.SelectContext(ctx, &snapshots, query, userID); err != nil {
		return nil, err
	}
	return snapshots, nil
}

func (r *PostgresSnapshotRepository) ListComputedBefore(ctx context.Context, day time.Time) ([]*domain.StreakSnapshot, error) {
	snapshots := []*domain.StreakSnapshot{}

	query := `SELECT * FROM streak_snapshots WHERE computed_for < $1 ORDER BY user_id, dimension`
	if err := r.db.SelectContext(ctx, &snapshots, query, day); err != nil {
		return nil, err
	}
	return snapshots, nil
}
