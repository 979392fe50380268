package usecases

import (
	"context"
	"time"

	"github.com/lumenworks/backoffice/internal/domain/entitlement"
	"github.com/lumenworks/backoffice/internal/domain/product"
	"github.com/lumenworks/backoffice/internal/domain/tenant"
	"github.com/lumenworks/backoffice/internal/infrastructure/metrics"
	"github.com/lumenworks/backoffice/internal/shared/biztime"
	"github.com/lumenworks/backoffice/internal/shared/logger"
)

// RecordAccessUseCase is the usage tracker. It never returns an error: usage
// is best effort and must not fail the request that triggered it.
type RecordAccessUseCase struct {
	entitlementRepo entitlement.Repository
	tenantRepo      tenant.Repository
	productRepo     product.Repository
	settings        Settings
	now             func() time.Time
	logger          logger.Interface
}

func NewRecordAccessUseCase(
	entitlementRepo entitlement.Repository,
	tenantRepo tenant.Repository,
	productRepo product.Repository,
	settings Settings,
	logger logger.Interface,
) *RecordAccessUseCase {
	return &RecordAccessUseCase{
		entitlementRepo: entitlementRepo,
		tenantRepo:      tenantRepo,
		productRepo:     productRepo,
		settings:        settings,
		now:             biztime.NowUTC,
		logger:          logger,
	}
}

// Execute records one access. An empty tenantID means the caller is not
// authenticated and nothing is recorded.
func (uc *RecordAccessUseCase) Execute(ctx context.Context, tenantID, productID string) {
	if tenantID == "" || productID == "" {
		metrics.ObserveUsage(metrics.ResultNoop)
		return
	}

	recorded, err := uc.recordEntitlement(ctx, tenantID, productID)
	if err != nil {
		metrics.ObserveUsage(metrics.ResultError)
		uc.logger.Warnw("failed to record entitlement usage", "error", err, "tenant_id", tenantID, "product_id", productID)
		return
	}
	if !recorded {
		metrics.ObserveUsage(metrics.ResultNoop)
		return
	}

	// Product aggregates are independent atomic updates; a failure here does
	// not undo the entitlement write.
	if err := uc.productRepo.IncrementAccessCount(ctx, productID); err != nil {
		uc.logger.Warnw("failed to increment product access count", "error", err, "product_id", productID)
	}
	t, err := uc.tenantRepo.GetByID(ctx, tenantID)
	switch {
	case err != nil:
		uc.logger.Warnw("failed to load tenant for active set", "error", err, "tenant_id", tenantID)
	case t != nil:
		if err := uc.productRepo.AddActiveTenant(ctx, productID, t.OrganizationID()); err != nil {
			uc.logger.Warnw("failed to add active tenant", "error", err, "product_id", productID, "organization_id", t.OrganizationID())
		}
	}

	metrics.ObserveUsage(metrics.ResultOK)
}

func (uc *RecordAccessUseCase) recordEntitlement(ctx context.Context, tenantID, productID string) (bool, error) {
	var err error
	for attempt := 1; attempt <= uc.settings.attempts(); attempt++ {
		var e *entitlement.Entitlement
		e, err = uc.entitlementRepo.GetByTenantAndProduct(ctx, tenantID, productID)
		if err != nil {
			return false, err
		}
		if e == nil {
			return false, nil
		}

		now := uc.now()
		if !e.RecordAccess(biztime.DayKey(now), biztime.MonthKey(now), now) {
			return false, nil
		}

		err = uc.entitlementRepo.Update(ctx, e)
		if err == nil {
			return true, nil
		}
		if !retryable(err) {
			return false, err
		}
	}
	return false, err
}
