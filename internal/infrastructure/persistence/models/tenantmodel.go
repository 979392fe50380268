package models

import (
	"time"

	"github.com/lumenworks/backoffice/internal/shared/constants"
)

// TenantModel keeps the legacy per-product flags as plain columns for older readers.
type TenantModel struct {
	ID                string `gorm:"primaryKey;size:32"`
	OrganizationID    string `gorm:"not null;size:64;index"`
	Name              string `gorm:"not null;size:200"`
	Email             string `gorm:"size:255"`
	HasCRMAccess      bool   `gorm:"column:has_crm_access;not null;default:false"`
	HasHRAccess       bool   `gorm:"column:has_hr_access;not null;default:false"`
	HasJobBoardAccess bool   `gorm:"column:has_job_board_access;not null;default:false"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (TenantModel) TableName() string {
	return constants.TableTenants
}
