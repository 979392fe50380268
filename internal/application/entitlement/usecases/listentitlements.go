package usecases

import (
	"context"
	"fmt"

	"github.com/lumenworks/backoffice/internal/application/entitlement/dto"
	"github.com/lumenworks/backoffice/internal/domain/entitlement"
	"github.com/lumenworks/backoffice/internal/domain/product"
	"github.com/lumenworks/backoffice/internal/domain/tenant"
	"github.com/lumenworks/backoffice/internal/shared/errors"
	"github.com/lumenworks/backoffice/internal/shared/logger"
)

// ListEntitlementsUseCase joins the catalog with a tenant's entitlements:
// one row per catalog product, absent pairs included.
type ListEntitlementsUseCase struct {
	entitlementRepo entitlement.Repository
	tenantRepo      tenant.Repository
	productRepo     product.Repository
	accessURL       AccessURLBuilder
	logger          logger.Interface
}

func NewListEntitlementsUseCase(
	entitlementRepo entitlement.Repository,
	tenantRepo tenant.Repository,
	productRepo product.Repository,
	accessURL AccessURLBuilder,
	logger logger.Interface,
) *ListEntitlementsUseCase {
	return &ListEntitlementsUseCase{
		entitlementRepo: entitlementRepo,
		tenantRepo:      tenantRepo,
		productRepo:     productRepo,
		accessURL:       accessURL,
		logger:          logger,
	}
}

func (uc *ListEntitlementsUseCase) Execute(ctx context.Context, tenantID string) ([]*dto.ProductEntitlementDTO, error) {
	if tenantID == "" {
		return nil, errors.NewValidationError("tenant ID is required")
	}

	t, err := uc.tenantRepo.GetByID(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}
	if t == nil {
		return nil, errors.NewNotFoundError("tenant not found", tenantID)
	}

	products, err := uc.productRepo.List(ctx, product.ListFilter{})
	if err != nil {
		uc.logger.Errorw("failed to list products", "error", err)
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	ents, err := uc.entitlementRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		uc.logger.Errorw("failed to list entitlements", "error", err, "tenant_id", tenantID)
		return nil, fmt.Errorf("failed to list entitlements: %w", err)
	}
	byProduct := make(map[string]*entitlement.Entitlement, len(ents))
	for _, e := range ents {
		byProduct[e.ProductID()] = e
	}

	rows := make([]*dto.ProductEntitlementDTO, 0, len(products))
	for _, p := range products {
		e := byProduct[p.ID()]
		accessURL := ""
		if e != nil {
			accessURL = uc.accessURL(e.AccessLink())
		}
		rows = append(rows, dto.ToProductEntitlementDTO(p, e, accessURL))
	}
	return rows, nil
}
