package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/lumenworks/backoffice/internal/domain/tenant"
	"github.com/lumenworks/backoffice/internal/infrastructure/persistence/mappers"
	"github.com/lumenworks/backoffice/internal/infrastructure/persistence/models"
	"github.com/lumenworks/backoffice/internal/shared/biztime"
	"github.com/lumenworks/backoffice/internal/shared/db"
	"github.com/lumenworks/backoffice/internal/shared/logger"
)

type TenantRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.TenantMapper
	logger logger.Interface
}

func NewTenantRepository(db *gorm.DB, logger logger.Interface) tenant.Repository {
	return &TenantRepositoryImpl{
		db:     db,
		mapper: mappers.NewTenantMapper(),
		logger: logger,
	}
}

func (r *TenantRepositoryImpl) Create(ctx context.Context, t *tenant.Tenant) error {
	model := r.mapper.ToModel(t)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create tenant", "tenant_id", t.ID(), "error", err)
		return fmt.Errorf("failed to create tenant: %w", err)
	}
	r.logger.Infow("tenant created successfully", "tenant_id", t.ID())
	return nil
}

func (r *TenantRepositoryImpl) GetByID(ctx context.Context, tenantID string) (*tenant.Tenant, error) {
	var model models.TenantModel
	if err := db.GetTxFromContext(ctx, r.db).Where("id = ?", tenantID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get tenant", "tenant_id", tenantID, "error", err)
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *TenantRepositoryImpl) List(ctx context.Context, filter tenant.ListFilter) ([]*tenant.Tenant, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.TenantModel{})
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("name LIKE ? OR email LIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tenants: %w", err)
	}

	var modelList []*models.TenantModel
	if err := query.Order("created_at DESC").Scopes(db.Paginate(filter.Page, filter.PageSize)).Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list tenants", "error", err)
		return nil, 0, fmt.Errorf("failed to list tenants: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

func (r *TenantRepositoryImpl) SetLegacyAccess(ctx context.Context, tenantID, productID string, hasAccess bool) error {
	column, ok := mappers.LegacyAccessColumn(productID)
	if !ok {
		return nil
	}

	result := db.GetTxFromContext(ctx, r.db).Model(&models.TenantModel{}).
		Where("id = ?", tenantID).
		Updates(map[string]interface{}{
			column:       hasAccess,
			"updated_at": biztime.NowUTC(),
		})
	if result.Error != nil {
		r.logger.Errorw("failed to sync legacy access flag", "tenant_id", tenantID, "product_id", productID, "error", result.Error)
		return fmt.Errorf("failed to sync legacy access flag: %w", result.Error)
	}
	if result.RowsAffected > 0 {
		return nil
	}

	// Zero rows can also mean the flag already held the value.
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.TenantModel{}).
		Where("id = ?", tenantID).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check tenant: %w", err)
	}
	if count == 0 {
		return fmt.Errorf("tenant %s not found", tenantID)
	}
	return nil
}
