package tenant

import "context"

// Repository persists tenants.
type Repository interface {
	Create(ctx context.Context, t *Tenant) error
	// GetByID returns nil, nil when the tenant does not exist.
	GetByID(ctx context.Context, tenantID string) (*Tenant, error)
	List(ctx context.Context, filter ListFilter) ([]*Tenant, int64, error)
	// SetLegacyAccess writes a single mirror column so grants on different
	// products of one tenant never overwrite each other.
	SetLegacyAccess(ctx context.Context, tenantID, productID string, hasAccess bool) error
}

type ListFilter struct {
	Page     int
	PageSize int
	Search   string
}
