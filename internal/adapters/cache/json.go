package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	ErrMiss    = errors.New("cache: miss")
	ErrCorrupt = errors.New("cache: undecodable entry")
)

// GetJSON decodes the value stored at key into dst. A missing key yields
// ErrMiss; an entry that does not decode yields ErrCorrupt and is deleted.
func GetJSON(ctx context.Context, rdb redis.Cmdable, key string, dst any) error {
	raw, err := rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrMiss
	}
	if err != nil {
		return fmt.Errorf("cache: get %s: %w", key, err)
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		_ = rdb.Del(ctx, key).Err()
		return fmt.Errorf("%w: %s: %w", ErrCorrupt, key, err)
	}
	return nil
}

func SetJSON(ctx context.Context, rdb redis.Cmdable, key string, v any, ttl time.Duration) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("cache: encode %s: %w", key, err)
	}
	if err := rdb.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("cache: set %s: %w", key, err)
	}
	return nil
}
