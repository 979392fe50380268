package notification

import (
	"context"

	"github.com/lumenworks/backoffice/internal/application/notification/dto"
	"github.com/lumenworks/backoffice/internal/application/notification/usecases"
	"github.com/lumenworks/backoffice/internal/domain/notification"
	"github.com/lumenworks/backoffice/internal/domain/shared/events"
	"github.com/lumenworks/backoffice/internal/shared/logger"
)

type ServiceDDD struct {
	logger logger.Interface

	listNotifications *usecases.ListNotificationsUseCase
	markAsRead        *usecases.MarkNotificationAsReadUseCase
	getUnreadCount    *usecases.GetUnreadCountUseCase
	dispatch          *usecases.DispatchNotificationUseCase
}

func NewServiceDDD(
	repo notification.Repository,
	dispatch *usecases.DispatchNotificationUseCase,
	logger logger.Interface,
) *ServiceDDD {
	return &ServiceDDD{
		logger:            logger,
		listNotifications: usecases.NewListNotificationsUseCase(repo, logger),
		markAsRead:        usecases.NewMarkNotificationAsReadUseCase(repo, logger),
		getUnreadCount:    usecases.NewGetUnreadCountUseCase(repo, logger),
		dispatch:          dispatch,
	}
}

// Subscribe registers the notification dispatcher for every event it handles.
func (s *ServiceDDD) Subscribe(subscriber events.EventSubscriber) error {
	for _, eventType := range s.dispatch.EventTypes() {
		if err := subscriber.Subscribe(eventType, s.dispatch); err != nil {
			return err
		}
	}
	return nil
}

func (s *ServiceDDD) ListNotifications(ctx context.Context, req dto.ListNotificationsRequest) (*dto.ListResponse, error) {
	return s.listNotifications.Execute(ctx, req)
}

func (s *ServiceDDD) MarkNotificationAsRead(ctx context.Context, notificationID, tenantID string) error {
	return s.markAsRead.Execute(ctx, notificationID, tenantID)
}

func (s *ServiceDDD) GetUnreadCount(ctx context.Context, tenantID string) (*dto.UnreadCountResponse, error) {
	return s.getUnreadCount.Execute(ctx, tenantID)
}
