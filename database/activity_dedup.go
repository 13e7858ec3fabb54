package database

import (
	"context"
	"kucukaslan/userapi/domain"
	"time"

	"github.com/redis/go-redis/v9"
)

const ActivityKeyPrefix = "user_activity:"

// ActivityDedup remembers which activity events already reached ClickHouse
type ActivityDedup struct {
	rdb redis.Cmdable
	ttl time.Duration
}

// NewActivityDedup returns an ActivityDedup whose marks expire after ttl; ttl <= 0 keeps them forever
func NewActivityDedup(rdb redis.Cmdable, ttl time.Duration) ActivityDedup {
	return ActivityDedup{rdb: rdb, ttl: ttl}
}

func activityKey(e domain.ActivityEvent) string {
	return ActivityKeyPrefix + e.UniqueKey()
}

// MarkProcessed sets every event key with the configured expiration in one round trip
func (d ActivityDedup) MarkProcessed(ctx context.Context, events []domain.ActivityEvent) error {
	pipe := d.rdb.Pipeline()
	for _, e := range events {
		if d.ttl > 0 {
			pipe.SetEx(ctx, activityKey(e), "1", d.ttl)
		} else {
			pipe.Set(ctx, activityKey(e), "1", 0)
		}
	}
	_, err := pipe.Exec(ctx)
	return err
}

// AreProcessed reports, per unique key, whether the event was already flushed
func (d ActivityDedup) AreProcessed(ctx context.Context, events []domain.ActivityEvent) (map[string]bool, error) {
	if len(events) == 0 {
		return map[string]bool{}, nil
	}
	keys := make([]string, len(events))
	for i, e := range events {
		keys[i] = activityKey(e)
	}

	results, err := d.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	processed := make(map[string]bool, len(events))
	for i, result := range results {
		str, ok := result.(string)
		processed[events[i].UniqueKey()] = ok && str == "1"
	}
	return processed, nil
}
