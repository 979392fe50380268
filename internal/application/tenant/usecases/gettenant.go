package usecases

import (
	"context"
	"fmt"

	"github.com/lumenworks/backoffice/internal/application/tenant/dto"
	"github.com/lumenworks/backoffice/internal/domain/tenant"
	"github.com/lumenworks/backoffice/internal/shared/errors"
	"github.com/lumenworks/backoffice/internal/shared/logger"
	"github.com/lumenworks/backoffice/internal/shared/utils"
)

type GetTenantUseCase struct {
	repo   tenant.Repository
	logger logger.Interface
}

func NewGetTenantUseCase(repo tenant.Repository, logger logger.Interface) *GetTenantUseCase {
	return &GetTenantUseCase{repo: repo, logger: logger}
}

func (uc *GetTenantUseCase) Execute(ctx context.Context, tenantID string) (*dto.TenantDTO, error) {
	t, err := uc.repo.GetByID(ctx, tenantID)
	if err != nil {
		uc.logger.Errorw("failed to get tenant", "tenant_id", tenantID, "error", err)
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}
	if t == nil {
		return nil, errors.NewNotFoundError("tenant not found", tenantID)
	}
	return dto.ToTenantDTO(t), nil
}

type ListTenantsUseCase struct {
	repo   tenant.Repository
	logger logger.Interface
}

func NewListTenantsUseCase(repo tenant.Repository, logger logger.Interface) *ListTenantsUseCase {
	return &ListTenantsUseCase{repo: repo, logger: logger}
}

func (uc *ListTenantsUseCase) Execute(ctx context.Context, req dto.ListTenantsRequest) (*dto.ListTenantsResponse, error) {
	p := utils.ValidatePagination(req.Page, req.PageSize)
	items, total, err := uc.repo.List(ctx, tenant.ListFilter{Page: p.Page, PageSize: p.PageSize, Search: req.Search})
	if err != nil {
		uc.logger.Errorw("failed to list tenants", "error", err)
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}

	out := make([]*dto.TenantDTO, 0, len(items))
	for _, t := range items {
		out = append(out, dto.ToTenantDTO(t))
	}
	return &dto.ListTenantsResponse{Items: out, Total: total, Page: p.Page, PageSize: p.PageSize}, nil
}
