package product

import "context"

type Repository interface {
	Create(ctx context.Context, p *Product) error
	// GetByID returns nil, nil when the product does not exist.
	GetByID(ctx context.Context, productID string) (*Product, error)
	List(ctx context.Context, filter ListFilter) ([]*Product, error)
	// Update writes display metadata only; counters are left alone.
	Update(ctx context.Context, p *Product) error
	Delete(ctx context.Context, productID string) error

	IncrementTotalEnterprises(ctx context.Context, productID string) error
	AdjustActiveEnterprises(ctx context.Context, productID string, delta int64) error
	IncrementAccessCount(ctx context.Context, productID string) error
	// AddActiveTenant is an idempotent set insert.
	AddActiveTenant(ctx context.Context, productID, organizationID string) error
	CountActiveTenants(ctx context.Context, productID string) (int64, error)
}

type ListFilter struct {
	ActiveOnly bool
}
