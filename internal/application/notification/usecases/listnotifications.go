package usecases

import (
	"context"
	"fmt"

	"github.com/lumenworks/backoffice/internal/application/notification/dto"
	"github.com/lumenworks/backoffice/internal/domain/notification"
	"github.com/lumenworks/backoffice/internal/shared/errors"
	"github.com/lumenworks/backoffice/internal/shared/logger"
	"github.com/lumenworks/backoffice/internal/shared/utils"
)

type ListNotificationsUseCase struct {
	repo   notification.Repository
	logger logger.Interface
}

func NewListNotificationsUseCase(repo notification.Repository, logger logger.Interface) *ListNotificationsUseCase {
	return &ListNotificationsUseCase{repo: repo, logger: logger}
}

func (uc *ListNotificationsUseCase) Execute(ctx context.Context, req dto.ListNotificationsRequest) (*dto.ListResponse, error) {
	if req.TenantID == "" {
		return nil, errors.NewValidationError("tenant ID is required")
	}
	p := utils.ValidatePagination(req.Page, req.PageSize)

	items, total, err := uc.repo.ListByTenant(ctx, notification.ListFilter{
		TenantID:   req.TenantID,
		UnreadOnly: req.UnreadOnly,
		Page:       p.Page,
		PageSize:   p.PageSize,
	})
	if err != nil {
		uc.logger.Errorw("failed to list notifications", "tenant_id", req.TenantID, "error", err)
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	return &dto.ListResponse{
		Items:    dto.ToNotificationResponseList(items),
		Total:    total,
		Page:     p.Page,
		PageSize: p.PageSize,
	}, nil
}
