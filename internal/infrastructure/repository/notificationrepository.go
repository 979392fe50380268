package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/lumenworks/backoffice/internal/domain/notification"
	"github.com/lumenworks/backoffice/internal/infrastructure/persistence/mappers"
	"github.com/lumenworks/backoffice/internal/infrastructure/persistence/models"
	"github.com/lumenworks/backoffice/internal/shared/db"
	"github.com/lumenworks/backoffice/internal/shared/logger"
)

type NotificationRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.NotificationMapper
	logger logger.Interface
}

func NewNotificationRepository(db *gorm.DB, logger logger.Interface) notification.Repository {
	return &NotificationRepositoryImpl{
		db:     db,
		mapper: mappers.NewNotificationMapper(),
		logger: logger,
	}
}

func (r *NotificationRepositoryImpl) Create(ctx context.Context, n *notification.Notification) error {
	if err := db.GetTxFromContext(ctx, r.db).Create(r.mapper.ToModel(n)).Error; err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

func (r *NotificationRepositoryImpl) GetByID(ctx context.Context, notificationID string) (*notification.Notification, error) {
	var model models.NotificationModel
	if err := db.GetTxFromContext(ctx, r.db).Where("id = ?", notificationID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get notification by ID: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *NotificationRepositoryImpl) ListByTenant(ctx context.Context, filter notification.ListFilter) ([]*notification.Notification, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.NotificationModel{}).Where("tenant_id = ?", filter.TenantID)
	if filter.UnreadOnly {
		query = query.Where("read_at IS NULL")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count notifications: %w", err)
	}

	var modelList []*models.NotificationModel
	if err := query.Order("created_at DESC").Scopes(db.Paginate(filter.Page, filter.PageSize)).Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list notifications by tenant: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

func (r *NotificationRepositoryImpl) MarkRead(ctx context.Context, n *notification.Notification) error {
	result := db.GetTxFromContext(ctx, r.db).Model(&models.NotificationModel{}).
		Where("id = ? AND read_at IS NULL", n.ID()).
		Update("read_at", n.ReadAt())
	if result.Error != nil {
		r.logger.Errorw("failed to mark notification as read", "notification_id", n.ID(), "error", result.Error)
		return fmt.Errorf("failed to mark notification as read: %w", result.Error)
	}
	return nil
}

func (r *NotificationRepositoryImpl) CountUnread(ctx context.Context, tenantID string) (int64, error) {
	var count int64
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.NotificationModel{}).
		Where("tenant_id = ? AND read_at IS NULL", tenantID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}
