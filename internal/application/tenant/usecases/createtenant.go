package usecases

import (
	"context"
	"fmt"

	"github.com/lumenworks/backoffice/internal/application/tenant/dto"
	"github.com/lumenworks/backoffice/internal/domain/tenant"
	"github.com/lumenworks/backoffice/internal/shared/errors"
	"github.com/lumenworks/backoffice/internal/shared/logger"
)

type CreateTenantUseCase struct {
	repo   tenant.Repository
	logger logger.Interface
}

func NewCreateTenantUseCase(repo tenant.Repository, logger logger.Interface) *CreateTenantUseCase {
	return &CreateTenantUseCase{repo: repo, logger: logger}
}

func (uc *CreateTenantUseCase) Execute(ctx context.Context, req dto.CreateTenantRequest) (*dto.TenantDTO, error) {
	t, err := tenant.NewTenant(req.Name, req.Email, req.OrganizationID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.repo.Create(ctx, t); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("tenant already exists")
		}
		uc.logger.Errorw("failed to create tenant", "name", req.Name, "error", err)
		return nil, fmt.Errorf("failed to create tenant: %w", err)
	}

	uc.logger.Infow("tenant created", "tenant_id", t.ID(), "organization_id", t.OrganizationID())
	return dto.ToTenantDTO(t), nil
}
