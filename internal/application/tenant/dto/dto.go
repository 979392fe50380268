package dto

import (
	"time"

	"github.com/lumenworks/backoffice/internal/domain/tenant"
)

type CreateTenantRequest struct {
	Name           string `json:"name" binding:"required,max=200"`
	Email          string `json:"email" binding:"omitempty,email"`
	OrganizationID string `json:"organization_id" binding:"omitempty,max=64"`
}

type ListTenantsRequest struct {
	Page     int
	PageSize int
	Search   string
}

// LegacyAccessDTO mirrors the per-product flags older clients still read.
type LegacyAccessDTO struct {
	CRM      bool `json:"crm"`
	HR       bool `json:"hr"`
	JobBoard bool `json:"job_board"`
}

type TenantDTO struct {
	ID             string          `json:"id"`
	OrganizationID string          `json:"organization_id"`
	Name           string          `json:"name"`
	Email          string          `json:"email,omitempty"`
	LegacyAccess   LegacyAccessDTO `json:"legacy_access"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

type ListTenantsResponse struct {
	Items    []*TenantDTO `json:"items"`
	Total    int64        `json:"total"`
	Page     int          `json:"page"`
	PageSize int          `json:"page_size"`
}

func ToTenantDTO(t *tenant.Tenant) *TenantDTO {
	legacy := t.LegacyAccess()
	return &TenantDTO{
		ID:             t.ID(),
		OrganizationID: t.OrganizationID(),
		Name:           t.Name(),
		Email:          t.Email(),
		LegacyAccess:   LegacyAccessDTO{CRM: legacy.CRM, HR: legacy.HR, JobBoard: legacy.JobBoard},
		CreatedAt:      t.CreatedAt(),
		UpdatedAt:      t.UpdatedAt(),
	}
}
