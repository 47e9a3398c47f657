package service

import "context"

// RateLimiter decides whether key may perform one more action in the current window.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}
