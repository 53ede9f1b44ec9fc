package domain

import (
	"context"
	"errors"
	"time"
)

var (
	ErrRecordNotFound = errors.New("activity record not found")
	ErrUnauthorized   = errors.New("unauthorized access to resource")
)

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	Delete(ctx context.Context, id string) error
}

type ActivityRepository interface {
	// Upsert stores a record, replacing any existing record of the same user and day.
	// On conflict the stored ID and CreatedAt are written back into record.
	Upsert(ctx context.Context, record *ActivityRecord) error

	// UpsertMany applies Upsert to every record atomically.
	UpsertMany(ctx context.Context, records []*ActivityRecord) error

	// GetByID retrieves a single record by its unique identifier.
	GetByID(ctx context.Context, id string) (*ActivityRecord, error)

	// ListByUserID returns the complete history of a user, ascending by day.
	// The streak builder depends on this ordering.
	ListByUserID(ctx context.Context, userID string) ([]*ActivityRecord, error)

	// ListByUserIDWithRange returns the records between from and to (inclusive), ascending by day.
	ListByUserIDWithRange(ctx context.Context, userID string, from, to DateComponents) ([]*ActivityRecord, error)

	Delete(ctx context.Context, id string, userID string) error
}

type SnapshotRepository interface {
	// Upsert replaces the snapshot of (user, dimension).
	Upsert(ctx context.Context, snapshot *StreakSnapshot) error

	ListByUserID(ctx context.Context, userID string) ([]*StreakSnapshot, error)

	// ListComputedBefore returns snapshots whose ComputedFor day is before the given day.
	ListComputedBefore(ctx context.Context, day time.Time) ([]*StreakSnapshot, error)
}
