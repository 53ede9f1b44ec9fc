package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/comitanigiacomo/rings-closed-engine/internal/adapters/cache"
	"github.com/comitanigiacomo/rings-closed-engine/internal/core/domain"
)

var _ domain.ActivityRepository = (*CachedActivityRepository)(nil)

// CachedActivityRepository keeps each user's full history in Redis. Range
// reads are served from the same entry, so every write only has one key to drop.
type CachedActivityRepository struct {
	next  domain.ActivityRepository
	cache *redis.Client
	ttl   time.Duration
	log   *zap.Logger
}

func NewCachedActivityRepository(next domain.ActivityRepository, rdb *redis.Client, ttl time.Duration, log *zap.Logger) *CachedActivityRepository {
	return &CachedActivityRepository{
		next:  next,
		cache: rdb,
		ttl:   ttl,
		log:   log.With(zap.String("component", "cache")),
	}
}

func (r *CachedActivityRepository) cacheKey(userID string) string {
	return fmt.Sprintf("activity:%s", userID)
}

func (r *CachedActivityRepository) invalidate(ctx context.Context, userID string) {
	if err := r.cache.Del(ctx, r.cacheKey(userID)).Err(); err != nil {
		r.log.Warn("Failed to invalidate", zap.String("user_id", userID), zap.Error(err))
	}
}

func (r *CachedActivityRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.ActivityRecord, error) {
	key := r.cacheKey(userID)

	var records []*domain.ActivityRecord
	err := cache.GetJSON(ctx, r.cache, key, &records)
	switch {
	case err == nil:
		return records, nil
	case errors.Is(err, cache.ErrCorrupt):
		r.log.Warn("Corrupted data, cleaned up key", zap.String("user_id", userID), zap.Error(err))
	case !errors.Is(err, cache.ErrMiss):
		r.log.Warn("Redis read error", zap.Error(err))
	}

	records, err = r.next.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := cache.SetJSON(ctx, r.cache, key, records, r.ttl); err != nil {
		r.log.Warn("Redis set error", zap.Error(err))
	}

	return records, nil
}

func (r *CachedActivityRepository) ListByUserIDWithRange(ctx context.Context, userID string, from, to domain.DateComponents) ([]*domain.ActivityRecord, error) {
	all, err := r.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	lower := &domain.ActivityRecord{DateComponents: from}
	upper := &domain.ActivityRecord{DateComponents: to}

	records := []*domain.ActivityRecord{}
	for _, rec := range all {
		if rec.Before(lower) || upper.Before(rec) {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

func (r *CachedActivityRepository) GetByID(ctx context.Context, id string) (*domain.ActivityRecord, error) {
	return r.next.GetByID(ctx, id)
}

func (r *CachedActivityRepository) Upsert(ctx context.Context, record *domain.ActivityRecord) error {
	if err := r.next.Upsert(ctx, record); err != nil {
		return err
	}
	r.invalidate(ctx, record.UserID)
	return nil
}

func (r *CachedActivityRepository) UpsertMany(ctx context.Context, records []*domain.ActivityRecord) error {
	if err := r.next.UpsertMany(ctx, records); err != nil {
		return err
	}

	seen := make(map[string]struct{})
	for _, rec := range records {
		if _, ok := seen[rec.UserID]; ok {
			continue
		}
		seen[rec.UserID] = struct{}{}
		r.invalidate(ctx, rec.UserID)
	}
	return nil
}

func (r *CachedActivityRepository) Delete(ctx context.Context, id string, userID string) error {
	if err := r.next.Delete(ctx, id, userID); err != nil {
		return err
	}
	r.invalidate(ctx, userID)
	return nil
}
