package usecases

import (
	"context"
	"fmt"

	"github.com/lumenworks/backoffice/internal/application/quotation/dto"
	"github.com/lumenworks/backoffice/internal/domain/quotation"
	vo "github.com/lumenworks/backoffice/internal/domain/quotation/valueobjects"
	"github.com/lumenworks/backoffice/internal/shared/errors"
	"github.com/lumenworks/backoffice/internal/shared/logger"
	"github.com/lumenworks/backoffice/internal/shared/utils"
)

type GetQuotationUseCase struct {
	repo   quotation.Repository
	logger logger.Interface
}

func NewGetQuotationUseCase(repo quotation.Repository, logger logger.Interface) *GetQuotationUseCase {
	return &GetQuotationUseCase{repo: repo, logger: logger}
}

func (uc *GetQuotationUseCase) Execute(ctx context.Context, caller Caller, quotationID string) (*dto.QuotationDTO, error) {
	q, err := uc.repo.GetByID(ctx, quotationID)
	if err != nil {
		uc.logger.Errorw("failed to get quotation", "quotation_id", quotationID, "error", err)
		return nil, fmt.Errorf("failed to get quotation: %w", err)
	}
	if q == nil {
		return nil, errors.NewNotFoundError("quotation not found", quotationID)
	}
	if !caller.canSee(q) {
		return nil, errors.NewForbiddenError("you don't have permission to access this quotation")
	}
	return dto.ToQuotationDTO(q, caller.Role.IsOperator()), nil
}

type ListQuotationsUseCase struct {
	repo   quotation.Repository
	logger logger.Interface
}

func NewListQuotationsUseCase(repo quotation.Repository, logger logger.Interface) *ListQuotationsUseCase {
	return &ListQuotationsUseCase{repo: repo, logger: logger}
}

// Execute lists every quotation for operators and only the caller's own for tenants.
func (uc *ListQuotationsUseCase) Execute(ctx context.Context, caller Caller, req dto.ListQuotationsRequest) (*dto.ListQuotationsResponse, error) {
	filter := quotation.ListFilter{TenantID: req.TenantID}
	switch {
	case caller.Role.IsOperator():
	case caller.Role.IsTenant() && caller.TenantID != "":
		filter.TenantID = caller.TenantID
	default:
		return nil, errors.NewForbiddenError("access denied")
	}

	if req.Status != "" {
		status, err := vo.NewQuotationStatus(req.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}
	p := utils.ValidatePagination(req.Page, req.PageSize)
	filter.Page, filter.PageSize = p.Page, p.PageSize

	items, total, err := uc.repo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list quotations", "error", err)
		return nil, fmt.Errorf("failed to list quotations: %w", err)
	}

	out := make([]*dto.QuotationDTO, 0, len(items))
	for _, q := range items {
		out = append(out, dto.ToQuotationDTO(q, caller.Role.IsOperator()))
	}
	return &dto.ListQuotationsResponse{Items: out, Total: total, Page: p.Page, PageSize: p.PageSize}, nil
}
