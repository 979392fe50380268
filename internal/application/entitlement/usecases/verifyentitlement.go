package usecases

import (
	"context"
	"fmt"

	"github.com/lumenworks/backoffice/internal/application/entitlement/dto"
	"github.com/lumenworks/backoffice/internal/domain/entitlement"
	"github.com/lumenworks/backoffice/internal/domain/product"
	"github.com/lumenworks/backoffice/internal/infrastructure/cache"
	"github.com/lumenworks/backoffice/internal/infrastructure/metrics"
	"github.com/lumenworks/backoffice/internal/shared/logger"
)

// VerifyStatus tells the caller why access was or was not granted.
type VerifyStatus string

const (
	VerifyNotGranted      VerifyStatus = "not_granted"
	VerifyRevoked         VerifyStatus = "revoked"
	VerifyProductInactive VerifyStatus = "product_inactive"
	VerifyGranted         VerifyStatus = "granted"
)

type VerifyEntitlementCommand struct {
	TenantID  string
	ProductID string
	// RecordUsage runs the usage tracker when access is granted.
	RecordUsage bool
}

// VerifyEntitlementUseCase is the single authorization check for product
// content. It reads the entitlement record, never the tenant's legacy flags.
type VerifyEntitlementUseCase struct {
	entitlementRepo entitlement.Repository
	productRepo     product.Repository
	verifyCache     VerifyCache
	recorder        *RecordAccessUseCase
	logger          logger.Interface
}

func NewVerifyEntitlementUseCase(
	entitlementRepo entitlement.Repository,
	productRepo product.Repository,
	verifyCache VerifyCache,
	recorder *RecordAccessUseCase,
	logger logger.Interface,
) *VerifyEntitlementUseCase {
	return &VerifyEntitlementUseCase{
		entitlementRepo: entitlementRepo,
		productRepo:     productRepo,
		verifyCache:     verifyCache,
		recorder:        recorder,
		logger:          logger,
	}
}

func (uc *VerifyEntitlementUseCase) Execute(ctx context.Context, cmd VerifyEntitlementCommand) (*dto.VerifyResultDTO, error) {
	if err := validatePair(cmd.TenantID, cmd.ProductID); err != nil {
		return nil, err
	}

	status, err := uc.status(ctx, cmd.TenantID, cmd.ProductID)
	if err != nil {
		return nil, err
	}
	metrics.ObserveVerification(string(status))

	if status == VerifyGranted && cmd.RecordUsage && uc.recorder != nil {
		uc.recorder.Execute(ctx, cmd.TenantID, cmd.ProductID)
	}

	return &dto.VerifyResultDTO{
		TenantID:  cmd.TenantID,
		ProductID: cmd.ProductID,
		Granted:   status == VerifyGranted,
		Status:    string(status),
	}, nil
}

// status reads the generation before the store so a grant or revoke that
// commits in between makes the cache write a no-op.
func (uc *VerifyEntitlementUseCase) status(ctx context.Context, tenantID, productID string) (VerifyStatus, error) {
	cached, gen, err := uc.verifyCache.Get(ctx, tenantID, productID)
	cacheUsable := err == nil
	if err != nil {
		uc.logger.Warnw("verify cache read failed, falling back to store", "error", err, "tenant_id", tenantID, "product_id", productID)
	} else if cached != nil {
		return VerifyStatus(cached.Status), nil
	}

	status, err := uc.resolve(ctx, tenantID, productID)
	if err != nil {
		return "", err
	}

	if !cacheUsable {
		return status, nil
	}
	if _, err := uc.verifyCache.Set(ctx, tenantID, productID, cache.CachedVerification{Status: string(status)}, gen); err != nil {
		uc.logger.Warnw("verify cache write failed", "error", err, "tenant_id", tenantID, "product_id", productID)
	}
	return status, nil
}

func (uc *VerifyEntitlementUseCase) resolve(ctx context.Context, tenantID, productID string) (VerifyStatus, error) {
	e, err := uc.entitlementRepo.GetByTenantAndProduct(ctx, tenantID, productID)
	if err != nil {
		uc.logger.Errorw("failed to get entitlement", "error", err, "tenant_id", tenantID, "product_id", productID)
		return "", fmt.Errorf("failed to get entitlement: %w", err)
	}
	status, _, err := classify(ctx, uc.productRepo, e)
	return status, err
}

// classify orders the checks: a missing record wins over a revoked one, which
// wins over an inactive product. The product is returned when it was loaded.
func classify(ctx context.Context, productRepo product.Repository, e *entitlement.Entitlement) (VerifyStatus, *product.Product, error) {
	if e == nil {
		return VerifyNotGranted, nil, nil
	}
	if !e.HasAccess() {
		return VerifyRevoked, nil, nil
	}
	p, err := productRepo.GetByID(ctx, e.ProductID())
	if err != nil {
		return "", nil, fmt.Errorf("failed to get product: %w", err)
	}
	if p == nil || !p.IsActive() {
		return VerifyProductInactive, p, nil
	}
	return VerifyGranted, p, nil
}
