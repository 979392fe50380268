package usecases

import (
	"context"
	"fmt"

	"github.com/lumenworks/backoffice/internal/application/quotation/dto"
	"github.com/lumenworks/backoffice/internal/domain/quotation"
	"github.com/lumenworks/backoffice/internal/domain/tenant"
	"github.com/lumenworks/backoffice/internal/shared/errors"
	"github.com/lumenworks/backoffice/internal/shared/logger"
)

type CreateQuotationUseCase struct {
	repo       quotation.Repository
	tenantRepo tenant.Repository
	logger     logger.Interface
}

func NewCreateQuotationUseCase(repo quotation.Repository, tenantRepo tenant.Repository, logger logger.Interface) *CreateQuotationUseCase {
	return &CreateQuotationUseCase{repo: repo, tenantRepo: tenantRepo, logger: logger}
}

// Execute files a pending quotation for the caller's tenant.
func (uc *CreateQuotationUseCase) Execute(ctx context.Context, caller Caller, req dto.CreateQuotationRequest) (*dto.QuotationDTO, error) {
	if !caller.Role.IsTenant() || caller.TenantID == "" {
		return nil, errors.NewForbiddenError("only tenant admins can request quotations")
	}

	t, err := uc.tenantRepo.GetByID(ctx, caller.TenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}
	if t == nil {
		return nil, errors.NewNotFoundError("tenant not found", caller.TenantID)
	}

	q, err := quotation.NewQuotation(caller.TenantID, req.ServiceName, req.Description, req.RequestedPrice, req.Currency)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.repo.Create(ctx, q); err != nil {
		uc.logger.Errorw("failed to create quotation", "tenant_id", caller.TenantID, "error", err)
		return nil, fmt.Errorf("failed to create quotation: %w", err)
	}

	uc.logger.Infow("quotation created", "quotation_id", q.ID(), "tenant_id", q.TenantID())
	return dto.ToQuotationDTO(q, false), nil
}
