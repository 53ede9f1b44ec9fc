package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/comitanigiacomo/rings-closed-engine/internal/core/domain"
)

var _ domain.ActivityRepository = (*PostgresActivityRepository)(nil)

const upsertActivityQuery = `
	INSERT INTO activity_records (
		id, user_id, year, month, day,
		active_energy_burned, active_energy_burned_goal,
		exercise_minutes, exercise_minutes_goal,
		stand_hours, stand_hours_goal,
		created_at, updated_at
	) VALUES (
		:id, :user_id, :year, :month, :day,
		:active_energy_burned, :active_energy_burned_goal,
		:exercise_minutes, :exercise_minutes_goal,
		:stand_hours, :stand_hours_goal,
		:created_at, :updated_at
	)
	ON CONFLICT (user_id, year, month, day) DO UPDATE SET
		active_energy_burned      = EXCLUDED.active_energy_burned,
		active_energy_burned_goal = EXCLUDED.active_energy_burned_goal,
		exercise_minutes          = EXCLUDED.exercise_minutes,
		exercise_minutes_goal     = EXCLUDED.exercise_minutes_goal,
		stand_hours               = EXCLUDED.stand_hours,
		stand_hours_goal          = EXCLUDED.stand_hours_goal,
		updated_at                = EXCLUDED.updated_at
	RETURNING id, created_at`

type PostgresActivityRepository struct {
	db *sqlx.DB
}

func NewPostgresActivityRepository(db *sqlx.DB) *PostgresActivityRepository {
	return &PostgresActivityRepository{db: db}
}

func (r *PostgresActivityRepository) Upsert(ctx context.Context, record *domain.ActivityRecord) error {
	return r.UpsertMany(ctx, []*domain.ActivityRecord{record})
}

func (r *PostgresActivityRepository) UpsertMany(ctx context.Context, records []*domain.ActivityRecord) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("repository: begin upsert: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareNamedContext(ctx, upsertActivityQuery)
	if err != nil {
		return fmt.Errorf("repository: prepare upsert: %w", err)
	}
	defer stmt.Close()

	for _, record := range records {
		if err := stmt.QueryRowxContext(ctx, record).Scan(&record.ID, &record.CreatedAt); err != nil {
			if isForeignKeyViolation(err) {
				return domain.ErrUserNotFound
			}
			return fmt.Errorf("repository: upsert record %s: %w", record.DateComponents, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("repository: commit upsert: %w", err)
	}
	return nil
}

func (r *PostgresActivityRepository) GetByID(ctx context.Context, id string) (*domain.ActivityRecord, error) {
	var record domain.ActivityRecord

	err := r.db.GetContext(ctx, &record, `SELECT * FROM activity_records WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, err
	}
	return &record, nil
}

func (r *PostgresActivityRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.ActivityRecord, error) {
	records := []*domain.ActivityRecord{}

	query := `
		SELECT * FROM activity_records
		WHERE user_id = $1
		ORDER BY year, month, day`

	if err := r.db.SelectContext(ctx, &records, query, userID); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *PostgresActivityRepository) ListByUserIDWithRange(ctx context.Context, userID string, from, to domain.DateComponents) ([]*domain.ActivityRecord, error) {
	records := []*domain.ActivityRecord{}

	query := `
		SELECT * FROM activity_records
		WHERE user_id = $1
		  AND (year, month, day) >= ($2, $3, $4)
		  AND (year, month, day) <= ($5, $6, $7)
		ORDER BY year, month, day`

	err := r.db.SelectContext(ctx, &records, query, userID,
		from.Year, from.Month, from.Day,
		to.Year, to.Month, to.Day,
	)
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *PostgresActivityRepository) Delete(ctx context.Context, id string, userID string) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM activity_records WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrRecordNotFound
	}
	return nil
}
