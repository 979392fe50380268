package mappers

import (
	"fmt"

	"github.com/lumenworks/backoffice/internal/domain/product"
	"github.com/lumenworks/backoffice/internal/infrastructure/persistence/models"
	"github.com/lumenworks/backoffice/internal/shared/mapper"
)

type ProductMapper interface {
	ToEntity(model *models.ProductModel) (*product.Product, error)
	ToModel(entity *product.Product) *models.ProductModel
	ToEntities(models []*models.ProductModel) ([]*product.Product, error)
}

type ProductMapperImpl struct{}

func NewProductMapper() ProductMapper {
	return &ProductMapperImpl{}
}

func (m *ProductMapperImpl) ToEntity(model *models.ProductModel) (*product.Product, error) {
	if model == nil {
		return nil, nil
	}
	entity, err := product.ReconstructProduct(
		model.ID,
		model.Name,
		model.Description,
		model.IsActive,
		product.Counters{
			TotalEnterprises:  model.TotalEnterprises,
			ActiveEnterprises: model.ActiveEnterprises,
			TotalAccessCount:  model.TotalAccessCount,
		},
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct product entity: %w", err)
	}
	return entity, nil
}

func (m *ProductMapperImpl) ToModel(entity *product.Product) *models.ProductModel {
	if entity == nil {
		return nil
	}
	c := entity.Counters()
	return &models.ProductModel{
		ID:                entity.ID(),
		Name:              entity.Name(),
		Description:       entity.Description(),
		IsActive:          entity.IsActive(),
		TotalEnterprises:  c.TotalEnterprises,
		ActiveEnterprises: c.ActiveEnterprises,
		TotalAccessCount:  c.TotalAccessCount,
		CreatedAt:         entity.CreatedAt(),
		UpdatedAt:         entity.UpdatedAt(),
	}
}

func (m *ProductMapperImpl) ToEntities(modelList []*models.ProductModel) ([]*product.Product, error) {
	return mapper.MapSliceErr(modelList, m.ToEntity)
}
