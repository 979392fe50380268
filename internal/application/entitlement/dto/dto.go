package dto

import (
	"time"

	"github.com/lumenworks/backoffice/internal/domain/entitlement"
	"github.com/lumenworks/backoffice/internal/domain/product"
)

type UsageDTO struct {
	DistinctDays   int      `json:"distinct_days"`
	DistinctMonths int      `json:"distinct_months"`
	TotalActions   int64    `json:"total_actions"`
	Days           []string `json:"days"`
	Months         []string `json:"months"`
}

// EntitlementDTO is the operator view of one entitlement. AccessToken is only
// populated by grant and regenerate, the one time the plaintext exists.
type EntitlementDTO struct {
	TenantID     string     `json:"tenant_id"`
	ProductID    string     `json:"product_id"`
	HasAccess    bool       `json:"has_access"`
	Status       string     `json:"status"`
	GrantedAt    *time.Time `json:"granted_at,omitempty"`
	GrantedBy    string     `json:"granted_by,omitempty"`
	RevokedAt    *time.Time `json:"revoked_at,omitempty"`
	RevokedBy    string     `json:"revoked_by,omitempty"`
	AccessLink   string     `json:"access_link"`
	AccessURL    string     `json:"access_url"`
	AccessToken  string     `json:"access_token,omitempty"`
	LastAccessed *time.Time `json:"last_accessed,omitempty"`
	AccessCount  int64      `json:"access_count"`
	Usage        UsageDTO   `json:"usage"`
	Version      int        `json:"version"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func ToEntitlementDTO(e *entitlement.Entitlement, accessURL string) *EntitlementDTO {
	if e == nil {
		return nil
	}
	usage := e.Usage()
	return &EntitlementDTO{
		TenantID:     e.TenantID(),
		ProductID:    e.ProductID(),
		HasAccess:    e.HasAccess(),
		Status:       string(e.Status()),
		GrantedAt:    e.GrantedAt(),
		GrantedBy:    e.GrantedBy(),
		RevokedAt:    e.RevokedAt(),
		RevokedBy:    e.RevokedBy(),
		AccessLink:   e.AccessLink(),
		AccessURL:    accessURL,
		LastAccessed: e.LastAccessed(),
		AccessCount:  e.AccessCount(),
		Usage: UsageDTO{
			DistinctDays:   usage.DistinctDays(),
			DistinctMonths: usage.DistinctMonths(),
			TotalActions:   usage.TotalActions,
			Days:           append([]string{}, usage.Days...),
			Months:         append([]string{}, usage.Months...),
		},
		Version:   e.Version(),
		CreatedAt: e.CreatedAt(),
		UpdatedAt: e.UpdatedAt(),
	}
}

// ProductEntitlementDTO is one row of the tenant's catalog view.
type ProductEntitlementDTO struct {
	ProductID     string          `json:"product_id"`
	ProductName   string          `json:"product_name"`
	Description   string          `json:"description,omitempty"`
	ProductActive bool            `json:"product_active"`
	HasAccess     bool            `json:"has_access"`
	Status        string          `json:"status"`
	Entitlement   *EntitlementDTO `json:"entitlement,omitempty"`
}

func ToProductEntitlementDTO(p *product.Product, e *entitlement.Entitlement, accessURL string) *ProductEntitlementDTO {
	row := &ProductEntitlementDTO{
		ProductID:     p.ID(),
		ProductName:   p.Name(),
		Description:   p.Description(),
		ProductActive: p.IsActive(),
		Status:        string(entitlement.StatusAbsent),
	}
	if e != nil {
		row.HasAccess = e.HasAccess()
		row.Status = string(e.Status())
		row.Entitlement = ToEntitlementDTO(e, accessURL)
	}
	return row
}

// VerifyResultDTO answers "may this tenant use this product right now".
type VerifyResultDTO struct {
	TenantID  string `json:"tenant_id"`
	ProductID string `json:"product_id"`
	Granted   bool   `json:"granted"`
	Status    string `json:"status"`
}

// ProductSummaryDTO is what an access link reveals before login.
type ProductSummaryDTO struct {
	ProductID   string `json:"product_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	TenantID    string `json:"tenant_id"`
}

// AccessLookupDTO carries either a product summary or the reason there is none.
type AccessLookupDTO struct {
	Status  string             `json:"status"`
	Product *ProductSummaryDTO `json:"product,omitempty"`
}
