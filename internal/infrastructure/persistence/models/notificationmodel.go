package models

import (
	"time"

	"github.com/lumenworks/backoffice/internal/shared/constants"
)

type NotificationModel struct {
	ID        string     `gorm:"primaryKey;size:32"`
	TenantID  string     `gorm:"not null;size:32;index:idx_notification_tenant_read,priority:1"`
	Category  string     `gorm:"size:30;not null"`
	Severity  string     `gorm:"size:20;not null"`
	Title     string     `gorm:"size:255;not null"`
	Message   string     `gorm:"type:text"`
	RelatedID string     `gorm:"size:64"`
	ReadAt    *time.Time `gorm:"index:idx_notification_tenant_read,priority:2"`
	CreatedAt time.Time  `gorm:"index"`
}

func (NotificationModel) TableName() string {
	return constants.TableNotifications
}
