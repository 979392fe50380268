package dto

import (
	"time"

	"github.com/lumenworks/backoffice/internal/domain/product"
)

type CreateProductRequest struct {
	ID          string `json:"id" binding:"required,min=2,max=50"`
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"max=2000"`
}

// UpdateProductRequest leaves nil fields untouched. The id cannot change.
type UpdateProductRequest struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,max=100"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=2000"`
	Active      *bool   `json:"active,omitempty"`
}

type ProductDTO struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Description       string    `json:"description"`
	Active            bool      `json:"active"`
	TotalEnterprises  int64     `json:"total_enterprises"`
	ActiveEnterprises int64     `json:"active_enterprises"`
	TotalAccessCount  int64     `json:"total_access_count"`
	ActiveTenants     int64     `json:"active_tenants"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func ToProductDTO(p *product.Product, activeTenants int64) *ProductDTO {
	c := p.Counters()
	return &ProductDTO{
		ID:                p.ID(),
		Name:              p.Name(),
		Description:       p.Description(),
		Active:            p.IsActive(),
		TotalEnterprises:  c.TotalEnterprises,
		ActiveEnterprises: c.ActiveEnterprises,
		TotalAccessCount:  c.TotalAccessCount,
		ActiveTenants:     activeTenants,
		CreatedAt:         p.CreatedAt(),
		UpdatedAt:         p.UpdatedAt(),
	}
}

// SeedResult reports what a catalog seed run changed.
type SeedResult struct {
	Created []string `json:"created"`
	Updated []string `json:"updated"`
}
