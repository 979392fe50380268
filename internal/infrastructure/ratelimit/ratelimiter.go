// Package ratelimit throttles anonymous traffic such as public access link lookups.
package ratelimit

import (
	"context"
	"time"
)

// Limits are independent sliding windows; zero disables a window.
type Limits struct {
	RequestsPerMinute int
	RequestsPerHour   int
}

type RateLimiter interface {
	Allow(ctx context.Context, key string, limits Limits) (bool, error)
	Count(ctx context.Context, key string, window time.Duration) (int64, error)
	Reset(ctx context.Context, key string) error
}
