package quotation

import (
	"context"

	"github.com/lumenworks/backoffice/internal/application/quotation/dto"
	"github.com/lumenworks/backoffice/internal/application/quotation/usecases"
	"github.com/lumenworks/backoffice/internal/domain/quotation"
	"github.com/lumenworks/backoffice/internal/domain/shared/events"
	"github.com/lumenworks/backoffice/internal/domain/tenant"
	"github.com/lumenworks/backoffice/internal/shared/logger"
)

type ServiceDDD struct {
	create     *usecases.CreateQuotationUseCase
	transition *usecases.TransitionQuotationUseCase
	get        *usecases.GetQuotationUseCase
	list       *usecases.ListQuotationsUseCase
}

func NewServiceDDD(repo quotation.Repository, tenantRepo tenant.Repository, publisher events.EventPublisher, logger logger.Interface) *ServiceDDD {
	return &ServiceDDD{
		create:     usecases.NewCreateQuotationUseCase(repo, tenantRepo, logger),
		transition: usecases.NewTransitionQuotationUseCase(repo, publisher, logger),
		get:        usecases.NewGetQuotationUseCase(repo, logger),
		list:       usecases.NewListQuotationsUseCase(repo, logger),
	}
}

func (s *ServiceDDD) CreateQuotation(ctx context.Context, caller usecases.Caller, req dto.CreateQuotationRequest) (*dto.QuotationDTO, error) {
	return s.create.Execute(ctx, caller, req)
}

func (s *ServiceDDD) UpdateStatus(ctx context.Context, caller usecases.Caller, quotationID string, req dto.UpdateStatusRequest) (*dto.QuotationDTO, error) {
	return s.transition.Execute(ctx, caller, quotationID, req)
}

func (s *ServiceDDD) GetQuotation(ctx context.Context, caller usecases.Caller, quotationID string) (*dto.QuotationDTO, error) {
	return s.get.Execute(ctx, caller, quotationID)
}

func (s *ServiceDDD) ListQuotations(ctx context.Context, caller usecases.Caller, req dto.ListQuotationsRequest) (*dto.ListQuotationsResponse, error) {
	return s.list.Execute(ctx, caller, req)
}
