package models

import (
	"time"

	"github.com/lumenworks/backoffice/internal/shared/constants"
)

type ProductModel struct {
	ID                string `gorm:"primaryKey;size:50"`
	Name              string `gorm:"not null;size:100"`
	Description       string `gorm:"type:text"`
	IsActive          bool   `gorm:"not null;default:true;index"`
	TotalEnterprises  int64  `gorm:"not null;default:0"`
	ActiveEnterprises int64  `gorm:"not null;default:0"`
	TotalAccessCount  int64  `gorm:"not null;default:0"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (ProductModel) TableName() string {
	return constants.TableProducts
}

// ProductActiveTenantModel is the set of organizations that have used a product.
type ProductActiveTenantModel struct {
	ProductID      string `gorm:"primaryKey;size:50"`
	OrganizationID string `gorm:"primaryKey;size:64"`
	CreatedAt      time.Time
}

func (ProductActiveTenantModel) TableName() string {
	return constants.TableProductActiveTenants
}
