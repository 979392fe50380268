package usecases

import (
	"context"
	"fmt"

	"github.com/lumenworks/backoffice/internal/application/product/dto"
	"github.com/lumenworks/backoffice/internal/domain/product"
	"github.com/lumenworks/backoffice/internal/shared/errors"
	"github.com/lumenworks/backoffice/internal/shared/logger"
)

type UpdateProductUseCase struct {
	repo   product.Repository
	cache  ProductCacheInvalidator
	logger logger.Interface
}

func NewUpdateProductUseCase(repo product.Repository, cache ProductCacheInvalidator, logger logger.Interface) *UpdateProductUseCase {
	return &UpdateProductUseCase{repo: repo, cache: cache, logger: logger}
}

// Execute updates display metadata. Toggling the active flag drops every
// cached verify answer for the product.
func (uc *UpdateProductUseCase) Execute(ctx context.Context, productID string, req dto.UpdateProductRequest) (*dto.ProductDTO, error) {
	p, err := uc.repo.GetByID(ctx, productID)
	if err != nil {
		uc.logger.Errorw("failed to get product", "product_id", productID, "error", err)
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if p == nil {
		return nil, errors.NewNotFoundError("product not found", productID)
	}

	wasActive := p.IsActive()
	if err := p.UpdateDisplay(req.Name, req.Description, req.Active); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.repo.Update(ctx, p); err != nil {
		uc.logger.Errorw("failed to update product", "product_id", productID, "error", err)
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	if wasActive != p.IsActive() && uc.cache != nil {
		if err := uc.cache.InvalidateProduct(ctx, productID); err != nil {
			uc.logger.Warnw("failed to invalidate verify cache for product", "product_id", productID, "error", err)
		}
	}

	active, err := uc.repo.CountActiveTenants(ctx, productID)
	if err != nil {
		uc.logger.Warnw("failed to count active tenants", "product_id", productID, "error", err)
	}

	uc.logger.Infow("product updated", "product_id", productID, "active", p.IsActive())
	return dto.ToProductDTO(p, active), nil
}
