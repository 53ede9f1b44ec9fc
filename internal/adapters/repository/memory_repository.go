package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/comitanigiacomo/rings-closed-engine/internal/core/domain"
)

var (
	_ domain.UserRepository     = (*InMemoryUserRepository)(nil)
	_ domain.ActivityRepository = (*InMemoryActivityRepository)(nil)
	_ domain.SnapshotRepository = (*InMemorySnapshotRepository)(nil)
)

type InMemoryUserRepository struct {
	store map[string]*domain.User

	mu sync.RWMutex
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{
		store: make(map[string]*domain.User),
	}
}

func (r *InMemoryUserRepository) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.store {
		if u.Email == user.Email {
			return domain.ErrEmailAlreadyExists
		}
	}

	clone := *user
	r.store[user.ID] = &clone
	return nil
}

func (r *InMemoryUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.store {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *InMemoryUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.store[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *InMemoryUserRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.store, id)
	return nil
}

type activityKey struct {
	userID string
	day    domain.DateComponents
}

type InMemoryActivityRepository struct {
	store map[string]*domain.ActivityRecord
	byDay map[activityKey]string

	mu sync.RWMutex
}

func NewInMemoryActivityRepository() *InMemoryActivityRepository {
	return &InMemoryActivityRepository{
		store: make(map[string]*domain.ActivityRecord),
		byDay: make(map[activityKey]string),
	}
}

func (r *InMemoryActivityRepository) Upsert(ctx context.Context, record *domain.ActivityRecord) error {
	return r.UpsertMany(ctx, []*domain.ActivityRecord{record})
}

func (r *InMemoryActivityRepository) UpsertMany(ctx context.Context, records []*domain.ActivityRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, record := range records {
		key := activityKey{userID: record.UserID, day: record.DateComponents}
		if id, ok := r.byDay[key]; ok {
			record.ID = id
			record.CreatedAt = r.store[id].CreatedAt
		}

		clone := *record
		r.store[record.ID] = &clone
		r.byDay[key] = record.ID
	}
	return nil
}

func (r *InMemoryActivityRepository) GetByID(ctx context.Context, id string) (*domain.ActivityRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.store[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	clone := *record
	return &clone, nil
}

func (r *InMemoryActivityRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.ActivityRecord, error) {
	return r.list(userID, func(*domain.ActivityRecord) bool { return true }), nil
}

func (r *InMemoryActivityRepository) ListByUserIDWithRange(ctx context.Context, userID string, from, to domain.DateComponents) ([]*domain.ActivityRecord, error) {
	lower := &domain.ActivityRecord{DateComponents: from}
	upper := &domain.ActivityRecord{DateComponents: to}

	return r.list(userID, func(rec *domain.ActivityRecord) bool {
		return !rec.Before(lower) && !upper.Before(rec)
	}), nil
}

func (r *InMemoryActivityRepository) list(userID string, keep func(*domain.ActivityRecord) bool) []*domain.ActivityRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := []*domain.ActivityRecord{}
	for _, rec := range r.store {
		if rec.UserID == userID && keep(rec) {
			clone := *rec
			records = append(records, &clone)
		}
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Before(records[j])
	})
	return records
}

func (r *InMemoryActivityRepository) Delete(ctx context.Context, id string, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.store[id]
	if !ok || record.UserID != userID {
		return domain.ErrRecordNotFound
	}

	delete(r.byDay, activityKey{userID: userID, day: record.DateComponents})
	delete(r.store, id)
	return nil
}

type snapshotKey struct {
	userID    string
	dimension domain.Dimension
}

type InMemorySnapshotRepository struct {
	store map[snapshotKey]*domain.StreakSnapshot

	mu sync.RWMutex
}

func NewInMemorySnapshotRepository() *InMemorySnapshotRepository {
	return &InMemorySnapshotRepository{
		store: make(map[snapshotKey]*domain.StreakSnapshot),
	}
}

func (r *InMemorySnapshotRepository) Upsert(ctx context.Context, snapshot *domain.StreakSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clone := *snapshot
	r.store[snapshotKey{userID: snapshot.UserID, dimension: snapshot.Dimension}] = &clone
	return nil
}

func (r *InMemorySnapshotRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.StreakSnapshot, error) {
	return r.list(func(s *domain.StreakSnapshot) bool { return s.UserID == userID }), nil
}

func (r *InMemorySnapshotRepository) ListComputedBefore(ctx context.Context, day time.Time) ([]*domain.StreakSnapshot, error) {
	return r.list(func(s *domain.StreakSnapshot) bool { return s.ComputedFor.Before(day) }), nil
}

func (r *InMemorySnapshotRepository) list(keep func(*domain.StreakSnapshot) bool) []*domain.StreakSnapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshots := []*domain.StreakSnapshot{}
	for _, s := range r.store {
		if keep(s) {
			clone := *s
			snapshots = append(snapshots, &clone)
		}
	}

	sort.Slice(snapshots, func(i, j int) bool {
		if snapshots[i].UserID != snapshots[j].UserID {
			return snapshots[i].UserID < snapshots[j].UserID
		}
		return snapshots[i].Dimension < snapshots[j].Dimension
	})
	return snapshots
}
