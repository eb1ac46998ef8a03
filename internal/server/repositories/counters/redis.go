package counters

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/diagramkeeper/internal/common"
	"github.com/redis/go-redis/v9"
)

// RedisKeyPrefix namespaces counter keys in a shared Redis.
const RedisKeyPrefix = "diagramkeeper:counter:"

// RedisRepository keeps one integer key per tenant and relies on INCR, which
// treats a missing key as 0.
type RedisRepository struct {
	rdb redis.Cmdable
}

func NewRedisRepository(rdb redis.Cmdable) *RedisRepository {
	return &RedisRepository{rdb: rdb}
}

func (r *RedisRepository) Next(ctx context.Context, tenantID string) (int64, error) {
	n, err := r.rdb.Incr(ctx, RedisKeyPrefix+tenantID).Result()
	if err != nil {
		return 0, fmt.Errorf("%w: redis error: %w", common.ErrStoreUnavailable, err)
	}
	return n, nil
}
