package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lumenworks/backoffice/internal/application/entitlement/dto"
	"github.com/lumenworks/backoffice/internal/domain/entitlement"
	"github.com/lumenworks/backoffice/internal/domain/product"
	"github.com/lumenworks/backoffice/internal/domain/shared/events"
	"github.com/lumenworks/backoffice/internal/domain/tenant"
	"github.com/lumenworks/backoffice/internal/infrastructure/metrics"
	"github.com/lumenworks/backoffice/internal/shared/biztime"
	"github.com/lumenworks/backoffice/internal/shared/logger"
)

type RevokeEntitlementCommand struct {
	TenantID  string
	ProductID string
	Actor     Actor
}

type RevokeEntitlementUseCase struct {
	entitlementRepo entitlement.Repository
	tenantRepo      tenant.Repository
	productRepo     product.Repository
	txManager       TransactionManager
	verifyCache     VerifyCache
	publisher       events.EventPublisher
	accessURL       AccessURLBuilder
	settings        Settings
	now             func() time.Time
	logger          logger.Interface
}

func NewRevokeEntitlementUseCase(
	entitlementRepo entitlement.Repository,
	tenantRepo tenant.Repository,
	productRepo product.Repository,
	txManager TransactionManager,
	verifyCache VerifyCache,
	publisher events.EventPublisher,
	accessURL AccessURLBuilder,
	settings Settings,
	logger logger.Interface,
) *RevokeEntitlementUseCase {
	return &RevokeEntitlementUseCase{
		entitlementRepo: entitlementRepo,
		tenantRepo:      tenantRepo,
		productRepo:     productRepo,
		txManager:       txManager,
		verifyCache:     verifyCache,
		publisher:       publisher,
		accessURL:       accessURL,
		settings:        settings,
		now:             biztime.NowUTC,
		logger:          logger,
	}
}

// Execute revokes access. Revoking twice succeeds without re-stamping; revoking a
// pair that never had an entitlement is NotFound.
func (uc *RevokeEntitlementUseCase) Execute(ctx context.Context, cmd RevokeEntitlementCommand) (*dto.EntitlementDTO, error) {
	result, err := uc.execute(ctx, cmd)
	metrics.ObserveEntitlementOp("revoke", err)
	return result, err
}

func (uc *RevokeEntitlementUseCase) execute(ctx context.Context, cmd RevokeEntitlementCommand) (*dto.EntitlementDTO, error) {
	if err := requireOperator(cmd.Actor); err != nil {
		return nil, err
	}
	if err := validatePair(cmd.TenantID, cmd.ProductID); err != nil {
		return nil, err
	}

	var (
		e       *entitlement.Entitlement
		changed bool
		err     error
	)
	for attempt := 1; attempt <= uc.settings.attempts(); attempt++ {
		e, changed, err = uc.revokeOnce(ctx, cmd)
		if err == nil || !retryable(err) {
			break
		}
		uc.logger.Warnw("revoke lost a race, retrying", "error", err, "tenant_id", cmd.TenantID, "product_id", cmd.ProductID, "attempt", attempt)
	}
	if err != nil {
		if !errors.Is(err, entitlement.ErrEntitlementNotFound) {
			uc.logger.Errorw("failed to revoke entitlement", "error", err, "tenant_id", cmd.TenantID, "product_id", cmd.ProductID)
		}
		return nil, toAppError(err)
	}

	accessURL := uc.accessURL(e.AccessLink())
	if changed {
		if err := uc.verifyCache.Invalidate(ctx, e.TenantID(), e.ProductID()); err != nil {
			uc.logger.Warnw("failed to invalidate verify cache", "error", err, "tenant_id", e.TenantID(), "product_id", e.ProductID())
		}
		event := entitlement.NewChangedEvent(entitlement.EventTypeRevoked, e, accessURL, cmd.Actor.UserID, false, uc.now())
		if err := uc.publisher.Publish(event); err != nil {
			uc.logger.Warnw("failed to publish entitlement event", "error", err, "event_type", event.EventType)
		}
		uc.logger.Infow("entitlement revoked", "tenant_id", e.TenantID(), "product_id", e.ProductID(), "revoked_by", cmd.Actor.UserID)
	} else {
		uc.logger.Infow("entitlement already revoked", "tenant_id", e.TenantID(), "product_id", e.ProductID())
	}

	return dto.ToEntitlementDTO(e, accessURL), nil
}

func (uc *RevokeEntitlementUseCase) revokeOnce(ctx context.Context, cmd RevokeEntitlementCommand) (*entitlement.Entitlement, bool, error) {
	var (
		e       *entitlement.Entitlement
		changed bool
	)
	err := uc.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		var err error
		e, err = uc.entitlementRepo.GetByTenantAndProduct(ctx, cmd.TenantID, cmd.ProductID)
		if err != nil {
			return fmt.Errorf("failed to get entitlement: %w", err)
		}
		if e == nil {
			return entitlement.ErrEntitlementNotFound
		}

		changed = e.Revoke(cmd.Actor.UserID, uc.now())
		if !changed {
			return nil
		}
		if err := uc.entitlementRepo.Update(ctx, e); err != nil {
			return err
		}
		if err := uc.productRepo.AdjustActiveEnterprises(ctx, cmd.ProductID, -1); err != nil {
			return fmt.Errorf("failed to update product counters: %w", err)
		}
		if tenant.IsLegacyMirrored(cmd.ProductID) {
			if err := uc.tenantRepo.SetLegacyAccess(ctx, cmd.TenantID, cmd.ProductID, false); err != nil {
				return fmt.Errorf("failed to sync legacy access flag: %w", err)
			}
		}
		return nil
	})
	return e, changed, err
}
