package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/lumenworks/backoffice/internal/shared/constants"
)

// ProductEntitlementModel is unique per (tenant, product) and per access link.
// Only the sha256 of the access token is stored.
type ProductEntitlementModel struct {
	ID                uint   `gorm:"primarykey"`
	TenantID          string `gorm:"not null;size:32;uniqueIndex:idx_entitlement_tenant_product,priority:1"`
	ProductID         string `gorm:"not null;size:50;uniqueIndex:idx_entitlement_tenant_product,priority:2;index:idx_entitlement_product_access,priority:1"`
	HasAccess         bool   `gorm:"not null;default:false;index:idx_entitlement_product_access,priority:2"`
	GrantedAt         *time.Time
	GrantedBy         string `gorm:"size:64"`
	RevokedAt         *time.Time
	RevokedBy         string `gorm:"size:64"`
	AccessTokenHash   string `gorm:"not null;size:64;index:idx_entitlement_token_hash"`
	AccessLink        string `gorm:"not null;size:64;uniqueIndex:idx_entitlement_access_link"`
	LastAccessed      *time.Time
	AccessCount       int64 `gorm:"not null;default:0"`
	UsageDays         datatypes.JSON
	UsageMonths       datatypes.JSON
	UsageTotalActions int64 `gorm:"not null;default:0"`
	Version           int   `gorm:"not null;default:1"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (ProductEntitlementModel) TableName() string {
	return constants.TableProductEntitlements
}
