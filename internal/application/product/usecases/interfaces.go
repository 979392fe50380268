package usecases

import "context"

// ProductCacheInvalidator drops cached verify answers for every tenant of a product.
type ProductCacheInvalidator interface {
	InvalidateProduct(ctx context.Context, productID string) error
}

type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// GrantCounter reports how many tenants currently hold access to a product.
type GrantCounter interface {
	CountGrantedByProduct(ctx context.Context, productID string) (int64, error)
}
