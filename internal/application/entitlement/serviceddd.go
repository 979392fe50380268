package entitlement

import (
	"context"

	"github.com/lumenworks/backoffice/internal/application/entitlement/dto"
	"github.com/lumenworks/backoffice/internal/application/entitlement/usecases"
	"github.com/lumenworks/backoffice/internal/shared/logger"
)

// ServiceDDD groups the entitlement use cases behind the API the handlers consume.
type ServiceDDD struct {
	logger logger.Interface

	grant      *usecases.GrantEntitlementUseCase
	revoke     *usecases.RevokeEntitlementUseCase
	regenerate *usecases.RegenerateEntitlementUseCase
	verify     *usecases.VerifyEntitlementUseCase
	lookup     *usecases.LookupAccessUseCase
	list       *usecases.ListEntitlementsUseCase
	export     *usecases.ExportUsageUseCase
}

func NewServiceDDD(
	grant *usecases.GrantEntitlementUseCase,
	revoke *usecases.RevokeEntitlementUseCase,
	regenerate *usecases.RegenerateEntitlementUseCase,
	verify *usecases.VerifyEntitlementUseCase,
	lookup *usecases.LookupAccessUseCase,
	list *usecases.ListEntitlementsUseCase,
	export *usecases.ExportUsageUseCase,
	logger logger.Interface,
) *ServiceDDD {
	return &ServiceDDD{
		logger:     logger,
		grant:      grant,
		revoke:     revoke,
		regenerate: regenerate,
		verify:     verify,
		lookup:     lookup,
		list:       list,
		export:     export,
	}
}

func (s *ServiceDDD) Grant(ctx context.Context, tenantID, productID string, actor usecases.Actor) (*dto.EntitlementDTO, error) {
	return s.grant.Execute(ctx, usecases.GrantEntitlementCommand{TenantID: tenantID, ProductID: productID, Actor: actor})
}

func (s *ServiceDDD) Revoke(ctx context.Context, tenantID, productID string, actor usecases.Actor) (*dto.EntitlementDTO, error) {
	return s.revoke.Execute(ctx, usecases.RevokeEntitlementCommand{TenantID: tenantID, ProductID: productID, Actor: actor})
}

func (s *ServiceDDD) Regenerate(ctx context.Context, tenantID, productID string, actor usecases.Actor) (*dto.EntitlementDTO, error) {
	return s.regenerate.Execute(ctx, usecases.RegenerateEntitlementCommand{TenantID: tenantID, ProductID: productID, Actor: actor})
}

// Verify checks access and records one usage hit when granted.
func (s *ServiceDDD) Verify(ctx context.Context, tenantID, productID string) (*dto.VerifyResultDTO, error) {
	return s.verify.Execute(ctx, usecases.VerifyEntitlementCommand{TenantID: tenantID, ProductID: productID, RecordUsage: true})
}

func (s *ServiceDDD) LookupByLink(ctx context.Context, link string) (*dto.AccessLookupDTO, error) {
	return s.lookup.ByLink(ctx, link)
}

func (s *ServiceDDD) LookupByToken(ctx context.Context, token string) (*dto.AccessLookupDTO, error) {
	return s.lookup.ByToken(ctx, token)
}

func (s *ServiceDDD) ListForTenant(ctx context.Context, tenantID string) ([]*dto.ProductEntitlementDTO, error) {
	return s.list.Execute(ctx, tenantID)
}

func (s *ServiceDDD) ExportUsage(ctx context.Context, tenantID string) ([]byte, error) {
	return s.export.Execute(ctx, tenantID)
}
