package usecases

import (
	"context"
	"time"

	"github.com/lumenworks/backoffice/internal/infrastructure/cache"
)

type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// VerifyCache holds recent Verify outcomes. Every mutation of an entitlement
// must invalidate its pair before returning.
type VerifyCache interface {
	Get(ctx context.Context, tenantID, productID string) (*cache.CachedVerification, cache.Generation, error)
	// Set is a no-op returning false when the pair was invalidated after Get.
	Set(ctx context.Context, tenantID, productID string, v cache.CachedVerification, gen cache.Generation) (bool, error)
	Invalidate(ctx context.Context, tenantID, productID string) error
}

// AccessURLBuilder turns an access link into the public URL for the current
// addressing mode.
type AccessURLBuilder func(link string) string

// Settings are the tunables shared by the entitlement use cases.
type Settings struct {
	StaleGrantWindow  time.Duration
	LinkRetries       int
	OptimisticRetries int
}

func (s Settings) attempts() int {
	if s.OptimisticRetries <= 0 {
		return 1
	}
	return s.OptimisticRetries
}
