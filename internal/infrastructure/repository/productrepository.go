package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lumenworks/backoffice/internal/domain/product"
	"github.com/lumenworks/backoffice/internal/infrastructure/persistence/mappers"
	"github.com/lumenworks/backoffice/internal/infrastructure/persistence/models"
	"github.com/lumenworks/backoffice/internal/shared/biztime"
	"github.com/lumenworks/backoffice/internal/shared/db"
	apperrors "github.com/lumenworks/backoffice/internal/shared/errors"
	"github.com/lumenworks/backoffice/internal/shared/logger"
)

type ProductRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.ProductMapper
	logger logger.Interface
}

func NewProductRepository(db *gorm.DB, logger logger.Interface) product.Repository {
	return &ProductRepositoryImpl{
		db:     db,
		mapper: mappers.NewProductMapper(),
		logger: logger,
	}
}

func (r *ProductRepositoryImpl) Create(ctx context.Context, p *product.Product) error {
	model := r.mapper.ToModel(p)
	// Select("*") so a product created inactive is not overridden by the column default.
	if err := db.GetTxFromContext(ctx, r.db).Select("*").Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return product.ErrProductExists
		}
		r.logger.Errorw("failed to create product", "product_id", p.ID(), "error", err)
		return fmt.Errorf("failed to create product: %w", err)
	}
	r.logger.Infow("product created successfully", "product_id", p.ID())
	return nil
}

func (r *ProductRepositoryImpl) GetByID(ctx context.Context, productID string) (*product.Product, error) {
	var model models.ProductModel
	if err := db.GetTxFromContext(ctx, r.db).Where("id = ?", productID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get product", "product_id", productID, "error", err)
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *ProductRepositoryImpl) List(ctx context.Context, filter product.ListFilter) ([]*product.Product, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.ProductModel{})
	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}

	var modelList []*models.ProductModel
	if err := query.Order("id ASC").Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list products", "error", err)
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return r.mapper.ToEntities(modelList)
}

func (r *ProductRepositoryImpl) Update(ctx context.Context, p *product.Product) error {
	result := db.GetTxFromContext(ctx, r.db).Model(&models.ProductModel{}).
		Where("id = ?", p.ID()).
		Updates(map[string]interface{}{
			"name":        p.Name(),
			"description": p.Description(),
			"is_active":   p.IsActive(),
			"updated_at":  p.UpdatedAt(),
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update product", "product_id", p.ID(), "error", result.Error)
		return fmt.Errorf("failed to update product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return product.ErrProductNotFound
	}
	return nil
}

func (r *ProductRepositoryImpl) Delete(ctx context.Context, productID string) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("product_id = ?", productID).Delete(&models.ProductActiveTenantModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete product active tenants: %w", err)
	}
	result := tx.Where("id = ?", productID).Delete(&models.ProductModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete product", "product_id", productID, "error", result.Error)
		return fmt.Errorf("failed to delete product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return product.ErrProductNotFound
	}
	r.logger.Infow("product deleted successfully", "product_id", productID)
	return nil
}

func (r *ProductRepositoryImpl) IncrementTotalEnterprises(ctx context.Context, productID string) error {
	return r.bump(ctx, productID, "total_enterprises", gorm.Expr("total_enterprises + ?", 1))
}

// AdjustActiveEnterprises never lets the counter drop below zero.
func (r *ProductRepositoryImpl) AdjustActiveEnterprises(ctx context.Context, productID string, delta int64) error {
	return r.bump(ctx, productID, "active_enterprises",
		gorm.Expr("CASE WHEN active_enterprises + ? < 0 THEN 0 ELSE active_enterprises + ? END", delta, delta))
}

func (r *ProductRepositoryImpl) IncrementAccessCount(ctx context.Context, productID string) error {
	return r.bump(ctx, productID, "total_access_count", gorm.Expr("total_access_count + ?", 1))
}

func (r *ProductRepositoryImpl) bump(ctx context.Context, productID, column string, expr clause.Expr) error {
	result := db.GetTxFromContext(ctx, r.db).Model(&models.ProductModel{}).
		Where("id = ?", productID).
		Updates(map[string]interface{}{
			column:       expr,
			"updated_at": biztime.NowUTC(),
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update product counter", "product_id", productID, "column", column, "error", result.Error)
		return fmt.Errorf("failed to update product %s: %w", column, result.Error)
	}
	if result.RowsAffected == 0 {
		return product.ErrProductNotFound
	}
	return nil
}

func (r *ProductRepositoryImpl) AddActiveTenant(ctx context.Context, productID, organizationID string) error {
	row := &models.ProductActiveTenantModel{
		ProductID:      productID,
		OrganizationID: organizationID,
		CreatedAt:      biztime.NowUTC(),
	}
	if err := db.GetTxFromContext(ctx, r.db).Clauses(clause.OnConflict{DoNothing: true}).Create(row).Error; err != nil {
		return fmt.Errorf("failed to add active tenant: %w", err)
	}
	return nil
}

func (r *ProductRepositoryImpl) CountActiveTenants(ctx context.Context, productID string) (int64, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.ProductActiveTenantModel{}).
		Where("product_id = ?", productID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count active tenants: %w", err)
	}
	return count, nil
}
