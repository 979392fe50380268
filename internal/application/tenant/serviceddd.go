package tenant

import (
	"context"

	"github.com/lumenworks/backoffice/internal/application/tenant/dto"
	"github.com/lumenworks/backoffice/internal/application/tenant/usecases"
	"github.com/lumenworks/backoffice/internal/domain/tenant"
	"github.com/lumenworks/backoffice/internal/shared/logger"
)

type ServiceDDD struct {
	create *usecases.CreateTenantUseCase
	get    *usecases.GetTenantUseCase
	list   *usecases.ListTenantsUseCase
}

func NewServiceDDD(repo tenant.Repository, logger logger.Interface) *ServiceDDD {
	return &ServiceDDD{
		create: usecases.NewCreateTenantUseCase(repo, logger),
		get:    usecases.NewGetTenantUseCase(repo, logger),
		list:   usecases.NewListTenantsUseCase(repo, logger),
	}
}

func (s *ServiceDDD) CreateTenant(ctx context.Context, req dto.CreateTenantRequest) (*dto.TenantDTO, error) {
	return s.create.Execute(ctx, req)
}

func (s *ServiceDDD) GetTenant(ctx context.Context, tenantID string) (*dto.TenantDTO, error) {
	return s.get.Execute(ctx, tenantID)
}

func (s *ServiceDDD) ListTenants(ctx context.Context, req dto.ListTenantsRequest) (*dto.ListTenantsResponse, error) {
	return s.list.Execute(ctx, req)
}
