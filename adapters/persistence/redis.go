package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pranavsangichetty/portfolio/internal/application/service"
	"github.com/pranavsangichetty/portfolio/internal/config"
	"github.com/pranavsangichetty/portfolio/pkg/logger"
)

func NewRedisClient(cfg config.Config, log logger.Logger) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       0,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("can not connect Redis: %w", err)
	}

	log.Info("Connect Redis successfully.")
	return rdb, nil
}

const rateLimitKeyPrefix = "portfolio:ratelimit:"

// RedisRateLimiter is a fixed-window counter shared by every server instance.
type RedisRateLimiter struct {
	rdb    redis.Cmdable
	limit  int64
	window time.Duration
	scope  string
}

var _ service.RateLimiter = (*RedisRateLimiter)(nil)

func NewRedisRateLimiter(rdb redis.Cmdable, scope string, limit int, window time.Duration) *RedisRateLimiter {
	return &RedisRateLimiter{rdb: rdb, limit: int64(limit), window: window, scope: scope}
}

func (l *RedisRateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	if l.limit <= 0 {
		return true, nil
	}
	k := rateLimitKeyPrefix + l.scope + ":" + key

	n, err := l.rdb.Incr(ctx, k).Result()
	if err != nil {
		return false, fmt.Errorf("rate limit %s: %w", k, err)
	}
	// first hit opens the window
	if n == 1 {
		if err := l.rdb.Expire(ctx, k, l.window).Err(); err != nil {
			return false, fmt.Errorf("rate limit %s: %w", k, err)
		}
	}
	return n <= l.limit, nil
}
