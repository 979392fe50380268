package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/lumenworks/backoffice/internal/domain/notification"
	"github.com/lumenworks/backoffice/internal/shared/biztime"
	"github.com/lumenworks/backoffice/internal/shared/errors"
	"github.com/lumenworks/backoffice/internal/shared/logger"
)

type MarkNotificationAsReadUseCase struct {
	repo   notification.Repository
	now    func() time.Time
	logger logger.Interface
}

func NewMarkNotificationAsReadUseCase(repo notification.Repository, logger logger.Interface) *MarkNotificationAsReadUseCase {
	return &MarkNotificationAsReadUseCase{repo: repo, now: biztime.NowUTC, logger: logger}
}

// Execute marks the notification read. A tenant may only touch its own inbox.
func (uc *MarkNotificationAsReadUseCase) Execute(ctx context.Context, notificationID, tenantID string) error {
	n, err := uc.repo.GetByID(ctx, notificationID)
	if err != nil {
		uc.logger.Errorw("failed to get notification", "id", notificationID, "error", err)
		return fmt.Errorf("failed to get notification: %w", err)
	}
	if n == nil {
		return errors.NewNotFoundError("notification not found")
	}
	if n.TenantID() != tenantID {
		uc.logger.Warnw("cross-tenant notification access", "id", notificationID, "tenant_id", tenantID, "owner_id", n.TenantID())
		return errors.NewForbiddenError("you don't have permission to access this notification")
	}
	if n.IsRead() {
		return nil
	}

	n.MarkRead(uc.now())
	if err := uc.repo.MarkRead(ctx, n); err != nil {
		uc.logger.Errorw("failed to persist notification update", "id", notificationID, "error", err)
		return fmt.Errorf("failed to save notification: %w", err)
	}
	return nil
}
