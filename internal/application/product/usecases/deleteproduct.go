package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/lumenworks/backoffice/internal/domain/product"
	"github.com/lumenworks/backoffice/internal/shared/errors"
	"github.com/lumenworks/backoffice/internal/shared/logger"
)

type DeleteProductUseCase struct {
	repo      product.Repository
	grants    GrantCounter
	txManager TransactionManager
	cache     ProductCacheInvalidator
	logger    logger.Interface
}

func NewDeleteProductUseCase(
	repo product.Repository,
	grants GrantCounter,
	txManager TransactionManager,
	cache ProductCacheInvalidator,
	logger logger.Interface,
) *DeleteProductUseCase {
	return &DeleteProductUseCase{repo: repo, grants: grants, txManager: txManager, cache: cache, logger: logger}
}

// Execute hard-deletes a product nobody is entitled to.
func (uc *DeleteProductUseCase) Execute(ctx context.Context, productID string) error {
	err := uc.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		p, err := uc.repo.GetByID(ctx, productID)
		if err != nil {
			return fmt.Errorf("failed to get product: %w", err)
		}
		if p == nil {
			return product.ErrProductNotFound
		}

		granted, err := uc.grants.CountGrantedByProduct(ctx, productID)
		if err != nil {
			return fmt.Errorf("failed to count entitled tenants: %w", err)
		}
		if err := p.EnsureDeletable(granted); err != nil {
			return err
		}
		return uc.repo.Delete(ctx, productID)
	})

	var inUse *product.InUseError
	switch {
	case err == nil:
	case stderrors.Is(err, product.ErrProductNotFound):
		return errors.NewNotFoundError("product not found", productID)
	case stderrors.As(err, &inUse):
		return errors.NewConflictError(inUse.Error())
	default:
		uc.logger.Errorw("failed to delete product", "product_id", productID, "error", err)
		return err
	}

	if uc.cache != nil {
		if err := uc.cache.InvalidateProduct(ctx, productID); err != nil {
			uc.logger.Warnw("failed to invalidate verify cache for product", "product_id", productID, "error", err)
		}
	}
	uc.logger.Infow("product deleted", "product_id", productID)
	return nil
}
