package models

import (
	"time"

	"github.com/lumenworks/backoffice/internal/shared/constants"
)

type QuotationModel struct {
	ID                   string `gorm:"primaryKey;size:32"`
	TenantID             string `gorm:"not null;size:32;index:idx_quotation_tenant_status,priority:1"`
	ServiceName          string `gorm:"not null;size:200"`
	Description          string `gorm:"type:text"`
	RequestedPrice       int64  `gorm:"not null;default:0"`
	Currency             string `gorm:"not null;size:3;default:USD"`
	FinalPrice           *int64
	Status               string `gorm:"not null;size:20;default:pending;index:idx_quotation_tenant_status,priority:2"`
	RejectionReason      string `gorm:"type:text"`
	ProposedDeliveryDate *time.Time
	ApprovedDate         *time.Time
	CompletedDate        *time.Time
	SuperadminNotes      string `gorm:"type:text"`
	Version              int       `gorm:"not null;default:1"`
	CreatedAt            time.Time `gorm:"index"`
	UpdatedAt            time.Time
}

func (QuotationModel) TableName() string {
	return constants.TableQuotations
}
