package entitlement

import "context"

// Repository persists entitlements. Lookups return nil, nil when nothing matches.
type Repository interface {
	// Create returns ErrAccessLinkTaken or ErrEntitlementExists on unique index violations.
	Create(ctx context.Context, e *Entitlement) error
	// Update is a compare-and-swap on version; ErrConcurrentModification when it lost.
	Update(ctx context.Context, e *Entitlement) error
	GetByTenantAndProduct(ctx context.Context, tenantID, productID string) (*Entitlement, error)
	GetByAccessLink(ctx context.Context, link string) (*Entitlement, error)
	GetByTokenHash(ctx context.Context, tokenHash string) (*Entitlement, error)
	ListByTenant(ctx context.Context, tenantID string) ([]*Entitlement, error)
	ExistsByAccessLink(ctx context.Context, link string) (bool, error)
	CountGrantedByProduct(ctx context.Context, productID string) (int64, error)
}
