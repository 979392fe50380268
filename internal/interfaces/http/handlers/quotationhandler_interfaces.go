package handlers

import (
	"context"

	notificationdto "github.com/lumenworks/backoffice/internal/application/notification/dto"
	"github.com/lumenworks/backoffice/internal/application/quotation/dto"
	"github.com/lumenworks/backoffice/internal/application/quotation/usecases"
)

type quotationService interface {
	CreateQuotation(ctx context.Context, caller usecases.Caller, req dto.CreateQuotationRequest) (*dto.QuotationDTO, error)
	UpdateStatus(ctx context.Context, caller usecases.Caller, quotationID string, req dto.UpdateStatusRequest) (*dto.QuotationDTO, error)
	GetQuotation(ctx context.Context, caller usecases.Caller, quotationID string) (*dto.QuotationDTO, error)
	ListQuotations(ctx context.Context, caller usecases.Caller, req dto.ListQuotationsRequest) (*dto.ListQuotationsResponse, error)
}

type notificationService interface {
	ListNotifications(ctx context.Context, req notificationdto.ListNotificationsRequest) (*notificationdto.ListResponse, error)
	MarkNotificationAsRead(ctx context.Context, notificationID, tenantID string) error
	GetUnreadCount(ctx context.Context, tenantID string) (*notificationdto.UnreadCountResponse, error)
}
