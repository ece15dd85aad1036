// File: services/appointment/cache.go
package appointment

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// SummaryCache holds provider and service summaries between enriched
// reads. Lookups are advisory: a miss or a cache failure falls through to
// the repositories.
type SummaryCache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string, ttl time.Duration)
}

// RedisSummaryCache backs SummaryCache with the shared Redis cache client.
type RedisSummaryCache struct {
	Client *redis.Client
}

func (r *RedisSummaryCache) Get(ctx context.Context, key string) (string, bool) {
	val, err := r.Client.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func (r *RedisSummaryCache) Set(ctx context.Context, key, value string, ttl time.Duration) {
	r.Client.Set(ctx, key, value, ttl)
}
