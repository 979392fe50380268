package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/lumenworks/backoffice/internal/domain/entitlement"
	"github.com/lumenworks/backoffice/internal/infrastructure/persistence/mappers"
	"github.com/lumenworks/backoffice/internal/infrastructure/persistence/models"
	"github.com/lumenworks/backoffice/internal/shared/db"
	apperrors "github.com/lumenworks/backoffice/internal/shared/errors"
	"github.com/lumenworks/backoffice/internal/shared/logger"
)

// EntitlementRepositoryImpl stores product entitlements; every update is a version CAS.
type EntitlementRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.EntitlementMapper
	logger logger.Interface
}

func NewEntitlementRepository(db *gorm.DB, logger logger.Interface) entitlement.Repository {
	return &EntitlementRepositoryImpl{
		db:     db,
		mapper: mappers.NewEntitlementMapper(),
		logger: logger,
	}
}

func (r *EntitlementRepositoryImpl) Create(ctx context.Context, e *entitlement.Entitlement) error {
	model, err := r.mapper.ToModel(e)
	if err != nil {
		r.logger.Errorw("failed to map entitlement entity to model", "error", err)
		return fmt.Errorf("failed to map entitlement entity: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if mapped := uniqueViolation(err); mapped != nil {
			return mapped
		}
		r.logger.Errorw("failed to create entitlement",
			"tenant_id", e.TenantID(),
			"product_id", e.ProductID(),
			"error", err)
		return fmt.Errorf("failed to create entitlement: %w", err)
	}

	if err := e.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set entitlement ID: %w", err)
	}

	r.logger.Infow("entitlement created successfully",
		"id", model.ID,
		"tenant_id", model.TenantID,
		"product_id", model.ProductID,
		"access_link", model.AccessLink)
	return nil
}

func (r *EntitlementRepositoryImpl) Update(ctx context.Context, e *entitlement.Entitlement) error {
	model, err := r.mapper.ToModel(e)
	if err != nil {
		r.logger.Errorw("failed to map entitlement entity to model", "id", e.ID(), "error", err)
		return fmt.Errorf("failed to map entitlement entity: %w", err)
	}

	result := db.GetTxFromContext(ctx, r.db).Model(&models.ProductEntitlementModel{}).
		Where("id = ? AND version = ?", model.ID, model.Version-1).
		Updates(map[string]interface{}{
			"has_access":          model.HasAccess,
			"granted_at":          model.GrantedAt,
			"granted_by":          model.GrantedBy,
			"revoked_at":          model.RevokedAt,
			"revoked_by":          model.RevokedBy,
			"access_token_hash":   model.AccessTokenHash,
			"access_link":         model.AccessLink,
			"last_accessed":       model.LastAccessed,
			"access_count":        model.AccessCount,
			"usage_days":          model.UsageDays,
			"usage_months":        model.UsageMonths,
			"usage_total_actions": model.UsageTotalActions,
			"version":             model.Version,
			"updated_at":          model.UpdatedAt,
		})

	if result.Error != nil {
		if mapped := uniqueViolation(result.Error); mapped != nil {
			return mapped
		}
		r.logger.Errorw("failed to update entitlement", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update entitlement: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return entitlement.ErrConcurrentModification
	}
	return nil
}

func (r *EntitlementRepositoryImpl) GetByTenantAndProduct(ctx context.Context, tenantID, productID string) (*entitlement.Entitlement, error) {
	return r.first(ctx, "tenant_id = ? AND product_id = ?", tenantID, productID)
}

func (r *EntitlementRepositoryImpl) GetByAccessLink(ctx context.Context, link string) (*entitlement.Entitlement, error) {
	return r.first(ctx, "access_link = ?", link)
}

func (r *EntitlementRepositoryImpl) GetByTokenHash(ctx context.Context, tokenHash string) (*entitlement.Entitlement, error) {
	if tokenHash == "" {
		return nil, nil
	}
	return r.first(ctx, "access_token_hash = ?", tokenHash)
}

func (r *EntitlementRepositoryImpl) first(ctx context.Context, where string, args ...interface{}) (*entitlement.Entitlement, error) {
	var model models.ProductEntitlementModel
	if err := db.GetTxFromContext(ctx, r.db).Where(where, args...).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get entitlement", "where", where, "error", err)
		return nil, fmt.Errorf("failed to get entitlement: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		r.logger.Errorw("failed to map entitlement model to entity", "id", model.ID, "error", err)
		return nil, fmt.Errorf("failed to map entitlement: %w", err)
	}
	return entity, nil
}

func (r *EntitlementRepositoryImpl) ListByTenant(ctx context.Context, tenantID string) ([]*entitlement.Entitlement, error) {
	var modelList []*models.ProductEntitlementModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("tenant_id = ?", tenantID).
		Order("product_id ASC").
		Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list entitlements", "tenant_id", tenantID, "error", err)
		return nil, fmt.Errorf("failed to list entitlements: %w", err)
	}
	return r.mapper.ToEntities(modelList)
}

func (r *EntitlementRepositoryImpl) ExistsByAccessLink(ctx context.Context, link string) (bool, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.ProductEntitlementModel{}).
		Where("access_link = ?", link).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check access link: %w", err)
	}
	return count > 0, nil
}

func (r *EntitlementRepositoryImpl) CountGrantedByProduct(ctx context.Context, productID string) (int64, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.ProductEntitlementModel{}).
		Where("product_id = ? AND has_access = ?", productID, true).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count granted entitlements: %w", err)
	}
	return count, nil
}

// uniqueViolation tells the two unique indexes apart. MySQL names the key, SQLite the column.
func uniqueViolation(err error) error {
	if !apperrors.IsDuplicateError(err) {
		return nil
	}
	if strings.Contains(err.Error(), "access_link") {
		return entitlement.ErrAccessLinkTaken
	}
	return entitlement.ErrEntitlementExists
}
