package mappers

import (
	"fmt"

	"github.com/lumenworks/backoffice/internal/domain/notification"
	"github.com/lumenworks/backoffice/internal/infrastructure/persistence/models"
	"github.com/lumenworks/backoffice/internal/shared/mapper"
)

type NotificationMapper interface {
	ToEntity(model *models.NotificationModel) (*notification.Notification, error)
	ToModel(entity *notification.Notification) *models.NotificationModel
	ToEntities(models []*models.NotificationModel) ([]*notification.Notification, error)
}

type NotificationMapperImpl struct{}

func NewNotificationMapper() NotificationMapper {
	return &NotificationMapperImpl{}
}

func (m *NotificationMapperImpl) ToEntity(model *models.NotificationModel) (*notification.Notification, error) {
	if model == nil {
		return nil, nil
	}
	entity, err := notification.ReconstructNotification(
		model.ID,
		model.TenantID,
		notification.Category(model.Category),
		notification.Severity(model.Severity),
		model.Title,
		model.Message,
		model.RelatedID,
		model.ReadAt,
		model.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct notification entity: %w", err)
	}
	return entity, nil
}

func (m *NotificationMapperImpl) ToModel(entity *notification.Notification) *models.NotificationModel {
	if entity == nil {
		return nil
	}
	return &models.NotificationModel{
		ID:        entity.ID(),
		TenantID:  entity.TenantID(),
		Category:  string(entity.Category()),
		Severity:  string(entity.Severity()),
		Title:     entity.Title(),
		Message:   entity.Message(),
		RelatedID: entity.RelatedID(),
		ReadAt:    entity.ReadAt(),
		CreatedAt: entity.CreatedAt(),
	}
}

func (m *NotificationMapperImpl) ToEntities(modelList []*models.NotificationModel) ([]*notification.Notification, error) {
	return mapper.MapSliceErr(modelList, m.ToEntity)
}
