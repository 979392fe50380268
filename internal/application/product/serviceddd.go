package product

import (
	"context"

	"github.com/lumenworks/backoffice/internal/application/product/dto"
	"github.com/lumenworks/backoffice/internal/application/product/usecases"
	"github.com/lumenworks/backoffice/internal/domain/product"
	"github.com/lumenworks/backoffice/internal/infrastructure/seed"
	"github.com/lumenworks/backoffice/internal/shared/logger"
)

type ServiceDDD struct {
	logger logger.Interface

	create *usecases.CreateProductUseCase
	update *usecases.UpdateProductUseCase
	delete *usecases.DeleteProductUseCase
	get    *usecases.GetProductUseCase
	list   *usecases.ListProductsUseCase
	seed   *usecases.SeedCatalogUseCase
}

func NewServiceDDD(
	repo product.Repository,
	grants usecases.GrantCounter,
	txManager usecases.TransactionManager,
	cache usecases.ProductCacheInvalidator,
	logger logger.Interface,
) *ServiceDDD {
	return &ServiceDDD{
		logger: logger,
		create: usecases.NewCreateProductUseCase(repo, logger),
		update: usecases.NewUpdateProductUseCase(repo, cache, logger),
		delete: usecases.NewDeleteProductUseCase(repo, grants, txManager, cache, logger),
		get:    usecases.NewGetProductUseCase(repo, logger),
		list:   usecases.NewListProductsUseCase(repo, logger),
		seed:   usecases.NewSeedCatalogUseCase(repo, logger),
	}
}

func (s *ServiceDDD) CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductDTO, error) {
	return s.create.Execute(ctx, req)
}

func (s *ServiceDDD) UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest) (*dto.ProductDTO, error) {
	return s.update.Execute(ctx, productID, req)
}

func (s *ServiceDDD) DeleteProduct(ctx context.Context, productID string) error {
	return s.delete.Execute(ctx, productID)
}

func (s *ServiceDDD) GetProduct(ctx context.Context, productID string) (*dto.ProductDTO, error) {
	return s.get.Execute(ctx, productID)
}

func (s *ServiceDDD) ListProducts(ctx context.Context, activeOnly bool) ([]*dto.ProductDTO, error) {
	return s.list.Execute(ctx, activeOnly)
}

func (s *ServiceDDD) SeedCatalog(ctx context.Context, entries []seed.CatalogEntry) (*dto.SeedResult, error) {
	return s.seed.Execute(ctx, entries)
}
