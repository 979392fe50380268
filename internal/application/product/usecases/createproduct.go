package usecases

import (
	"context"
	stderrors "errors"

	"github.com/lumenworks/backoffice/internal/application/product/dto"
	"github.com/lumenworks/backoffice/internal/domain/product"
	"github.com/lumenworks/backoffice/internal/shared/errors"
	"github.com/lumenworks/backoffice/internal/shared/logger"
)

type CreateProductUseCase struct {
	repo   product.Repository
	logger logger.Interface
}

func NewCreateProductUseCase(repo product.Repository, logger logger.Interface) *CreateProductUseCase {
	return &CreateProductUseCase{repo: repo, logger: logger}
}

func (uc *CreateProductUseCase) Execute(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductDTO, error) {
	p, err := product.NewProduct(req.ID, req.Name, req.Description)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.repo.Create(ctx, p); err != nil {
		if stderrors.Is(err, product.ErrProductExists) {
			return nil, errors.NewConflictError("product already exists", req.ID)
		}
		uc.logger.Errorw("failed to create product", "product_id", req.ID, "error", err)
		return nil, err
	}

	uc.logger.Infow("product created", "product_id", p.ID())
	return dto.ToProductDTO(p, 0), nil
}
