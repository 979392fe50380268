package usecases

import (
	"context"
	"fmt"

	"github.com/lumenworks/backoffice/internal/application/notification/dto"
	"github.com/lumenworks/backoffice/internal/domain/notification"
	"github.com/lumenworks/backoffice/internal/shared/logger"
)

type GetUnreadCountUseCase struct {
	repo   notification.Repository
	logger logger.Interface
}

func NewGetUnreadCountUseCase(repo notification.Repository, logger logger.Interface) *GetUnreadCountUseCase {
	return &GetUnreadCountUseCase{repo: repo, logger: logger}
}

func (uc *GetUnreadCountUseCase) Execute(ctx context.Context, tenantID string) (*dto.UnreadCountResponse, error) {
	count, err := uc.repo.CountUnread(ctx, tenantID)
	if err != nil {
		uc.logger.Errorw("failed to count unread notifications", "tenant_id", tenantID, "error", err)
		return nil, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return &dto.UnreadCountResponse{Count: count}, nil
}
