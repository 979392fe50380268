package handlers

import (
	"context"

	"github.com/lumenworks/backoffice/internal/application/entitlement/dto"
	"github.com/lumenworks/backoffice/internal/application/entitlement/usecases"
)

// Service interfaces for the entitlement handlers - enables unit testing with mocks.

type entitlementService interface {
	Grant(ctx context.Context, tenantID, productID string, actor usecases.Actor) (*dto.EntitlementDTO, error)
	Revoke(ctx context.Context, tenantID, productID string, actor usecases.Actor) (*dto.EntitlementDTO, error)
	Regenerate(ctx context.Context, tenantID, productID string, actor usecases.Actor) (*dto.EntitlementDTO, error)
	ListForTenant(ctx context.Context, tenantID string) ([]*dto.ProductEntitlementDTO, error)
	ExportUsage(ctx context.Context, tenantID string) ([]byte, error)
}

type productAccessService interface {
	Verify(ctx context.Context, tenantID, productID string) (*dto.VerifyResultDTO, error)
	LookupByLink(ctx context.Context, link string) (*dto.AccessLookupDTO, error)
	LookupByToken(ctx context.Context, token string) (*dto.AccessLookupDTO, error)
}
