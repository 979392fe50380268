package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/lumenworks/backoffice/internal/domain/quotation"
	"github.com/lumenworks/backoffice/internal/infrastructure/persistence/mappers"
	"github.com/lumenworks/backoffice/internal/infrastructure/persistence/models"
	"github.com/lumenworks/backoffice/internal/shared/db"
	"github.com/lumenworks/backoffice/internal/shared/logger"
)

type QuotationRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.QuotationMapper
	logger logger.Interface
}

func NewQuotationRepository(db *gorm.DB, logger logger.Interface) quotation.Repository {
	return &QuotationRepositoryImpl{
		db:     db,
		mapper: mappers.NewQuotationMapper(),
		logger: logger,
	}
}

func (r *QuotationRepositoryImpl) Create(ctx context.Context, q *quotation.Quotation) error {
	model := r.mapper.ToModel(q)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create quotation", "quotation_id", q.ID(), "error", err)
		return fmt.Errorf("failed to create quotation: %w", err)
	}
	r.logger.Infow("quotation created successfully", "quotation_id", q.ID(), "tenant_id", q.TenantID())
	return nil
}

func (r *QuotationRepositoryImpl) GetByID(ctx context.Context, quotationID string) (*quotation.Quotation, error) {
	var model models.QuotationModel
	if err := db.GetTxFromContext(ctx, r.db).Where("id = ?", quotationID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get quotation", "quotation_id", quotationID, "error", err)
		return nil, fmt.Errorf("failed to get quotation: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *QuotationRepositoryImpl) Update(ctx context.Context, q *quotation.Quotation) error {
	model := r.mapper.ToModel(q)
	result := db.GetTxFromContext(ctx, r.db).Model(&models.QuotationModel{}).
		Where("id = ? AND version = ?", model.ID, model.Version-1).
		Updates(map[string]interface{}{
			"status":                 model.Status,
			"final_price":            model.FinalPrice,
			"rejection_reason":       model.RejectionReason,
			"proposed_delivery_date": model.ProposedDeliveryDate,
			"approved_date":          model.ApprovedDate,
			"completed_date":         model.CompletedDate,
			"superadmin_notes":       model.SuperadminNotes,
			"version":                model.Version,
			"updated_at":             model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update quotation", "quotation_id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update quotation: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return quotation.ErrConcurrentModification
	}
	return nil
}

func (r *QuotationRepositoryImpl) List(ctx context.Context, filter quotation.ListFilter) ([]*quotation.Quotation, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.QuotationModel{})
	if filter.TenantID != "" {
		query = query.Where("tenant_id = ?", filter.TenantID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count quotations: %w", err)
	}

	var modelList []*models.QuotationModel
	if err := query.Order("created_at DESC").Scopes(db.Paginate(filter.Page, filter.PageSize)).Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list quotations", "error", err)
		return nil, 0, fmt.Errorf("failed to list quotations: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}
