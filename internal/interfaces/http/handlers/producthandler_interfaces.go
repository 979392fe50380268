package handlers

import (
	"context"

	productdto "github.com/lumenworks/backoffice/internal/application/product/dto"
	tenantdto "github.com/lumenworks/backoffice/internal/application/tenant/dto"
)

type productService interface {
	CreateProduct(ctx context.Context, req productdto.CreateProductRequest) (*productdto.ProductDTO, error)
	UpdateProduct(ctx context.Context, productID string, req productdto.UpdateProductRequest) (*productdto.ProductDTO, error)
	DeleteProduct(ctx context.Context, productID string) error
	GetProduct(ctx context.Context, productID string) (*productdto.ProductDTO, error)
	ListProducts(ctx context.Context, activeOnly bool) ([]*productdto.ProductDTO, error)
}

type tenantService interface {
	CreateTenant(ctx context.Context, req tenantdto.CreateTenantRequest) (*tenantdto.TenantDTO, error)
	GetTenant(ctx context.Context, tenantID string) (*tenantdto.TenantDTO, error)
	ListTenants(ctx context.Context, req tenantdto.ListTenantsRequest) (*tenantdto.ListTenantsResponse, error)
}
