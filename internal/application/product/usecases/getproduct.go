package usecases

import (
	"context"
	"fmt"

	"github.com/lumenworks/backoffice/internal/application/product/dto"
	"github.com/lumenworks/backoffice/internal/domain/product"
	"github.com/lumenworks/backoffice/internal/shared/errors"
	"github.com/lumenworks/backoffice/internal/shared/logger"
)

type GetProductUseCase struct {
	repo   product.Repository
	logger logger.Interface
}

func NewGetProductUseCase(repo product.Repository, logger logger.Interface) *GetProductUseCase {
	return &GetProductUseCase{repo: repo, logger: logger}
}

func (uc *GetProductUseCase) Execute(ctx context.Context, productID string) (*dto.ProductDTO, error) {
	p, err := uc.repo.GetByID(ctx, productID)
	if err != nil {
		uc.logger.Errorw("failed to get product", "product_id", productID, "error", err)
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if p == nil {
		return nil, errors.NewNotFoundError("product not found", productID)
	}
	active, err := uc.repo.CountActiveTenants(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to count active tenants: %w", err)
	}
	return dto.ToProductDTO(p, active), nil
}

type ListProductsUseCase struct {
	repo   product.Repository
	logger logger.Interface
}

func NewListProductsUseCase(repo product.Repository, logger logger.Interface) *ListProductsUseCase {
	return &ListProductsUseCase{repo: repo, logger: logger}
}

func (uc *ListProductsUseCase) Execute(ctx context.Context, activeOnly bool) ([]*dto.ProductDTO, error) {
	items, err := uc.repo.List(ctx, product.ListFilter{ActiveOnly: activeOnly})
	if err != nil {
		uc.logger.Errorw("failed to list products", "error", err)
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	out := make([]*dto.ProductDTO, 0, len(items))
	for _, p := range items {
		active, err := uc.repo.CountActiveTenants(ctx, p.ID())
		if err != nil {
			return nil, fmt.Errorf("failed to count active tenants: %w", err)
		}
		out = append(out, dto.ToProductDTO(p, active))
	}
	return out, nil
}
