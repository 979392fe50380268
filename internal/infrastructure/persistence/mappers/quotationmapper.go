package mappers

import (
	"fmt"

	"github.com/lumenworks/backoffice/internal/domain/quotation"
	"github.com/lumenworks/backoffice/internal/infrastructure/persistence/models"
	"github.com/lumenworks/backoffice/internal/shared/mapper"
)

type QuotationMapper interface {
	ToEntity(model *models.QuotationModel) (*quotation.Quotation, error)
	ToModel(entity *quotation.Quotation) *models.QuotationModel
	ToEntities(models []*models.QuotationModel) ([]*quotation.Quotation, error)
}

type QuotationMapperImpl struct{}

func NewQuotationMapper() QuotationMapper {
	return &QuotationMapperImpl{}
}

func (m *QuotationMapperImpl) ToEntity(model *models.QuotationModel) (*quotation.Quotation, error) {
	if model == nil {
		return nil, nil
	}
	entity, err := quotation.ReconstructQuotation(quotation.ReconstructParams{
		ID:                   model.ID,
		TenantID:             model.TenantID,
		ServiceName:          model.ServiceName,
		Description:          model.Description,
		RequestedPrice:       model.RequestedPrice,
		Currency:             model.Currency,
		FinalPrice:           model.FinalPrice,
		Status:               model.Status,
		RejectionReason:      model.RejectionReason,
		ProposedDeliveryDate: model.ProposedDeliveryDate,
		ApprovedDate:         model.ApprovedDate,
		CompletedDate:        model.CompletedDate,
		SuperadminNotes:      model.SuperadminNotes,
		Version:              model.Version,
		CreatedAt:            model.CreatedAt,
		UpdatedAt:            model.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct quotation entity: %w", err)
	}
	return entity, nil
}

func (m *QuotationMapperImpl) ToModel(entity *quotation.Quotation) *models.QuotationModel {
	if entity == nil {
		return nil
	}
	return &models.QuotationModel{
		ID:                   entity.ID(),
		TenantID:             entity.TenantID(),
		ServiceName:          entity.ServiceName(),
		Description:          entity.Description(),
		RequestedPrice:       entity.RequestedPrice(),
		Currency:             entity.Currency(),
		FinalPrice:           entity.FinalPrice(),
		Status:               entity.Status().String(),
		RejectionReason:      entity.RejectionReason(),
		ProposedDeliveryDate: entity.ProposedDeliveryDate(),
		ApprovedDate:         entity.ApprovedDate(),
		CompletedDate:        entity.CompletedDate(),
		SuperadminNotes:      entity.SuperadminNotes(),
		Version:              entity.Version(),
		CreatedAt:            entity.CreatedAt(),
		UpdatedAt:            entity.UpdatedAt(),
	}
}

func (m *QuotationMapperImpl) ToEntities(modelList []*models.QuotationModel) ([]*quotation.Quotation, error) {
	return mapper.MapSliceErr(modelList, m.ToEntity)
}
