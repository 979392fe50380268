package mappers

import (
	"fmt"

	"github.com/lumenworks/backoffice/internal/domain/tenant"
	"github.com/lumenworks/backoffice/internal/infrastructure/persistence/models"
	"github.com/lumenworks/backoffice/internal/shared/mapper"
)

type TenantMapper interface {
	ToEntity(model *models.TenantModel) (*tenant.Tenant, error)
	ToModel(entity *tenant.Tenant) *models.TenantModel
	ToEntities(models []*models.TenantModel) ([]*tenant.Tenant, error)
}

type TenantMapperImpl struct{}

func NewTenantMapper() TenantMapper {
	return &TenantMapperImpl{}
}

func (m *TenantMapperImpl) ToEntity(model *models.TenantModel) (*tenant.Tenant, error) {
	if model == nil {
		return nil, nil
	}
	entity, err := tenant.ReconstructTenant(
		model.ID,
		model.OrganizationID,
		model.Name,
		model.Email,
		tenant.LegacyAccess{
			CRM:      model.HasCRMAccess,
			HR:       model.HasHRAccess,
			JobBoard: model.HasJobBoardAccess,
		},
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct tenant entity: %w", err)
	}
	return entity, nil
}

func (m *TenantMapperImpl) ToModel(entity *tenant.Tenant) *models.TenantModel {
	if entity == nil {
		return nil
	}
	legacy := entity.LegacyAccess()
	return &models.TenantModel{
		ID:                entity.ID(),
		OrganizationID:    entity.OrganizationID(),
		Name:              entity.Name(),
		Email:             entity.Email(),
		HasCRMAccess:      legacy.CRM,
		HasHRAccess:       legacy.HR,
		HasJobBoardAccess: legacy.JobBoard,
		CreatedAt:         entity.CreatedAt(),
		UpdatedAt:         entity.UpdatedAt(),
	}
}

func (m *TenantMapperImpl) ToEntities(modelList []*models.TenantModel) ([]*tenant.Tenant, error) {
	return mapper.MapSliceErr(modelList, m.ToEntity)
}

// LegacyAccessColumn maps a well-known product to its mirror column on the tenants table.
func LegacyAccessColumn(productID string) (string, bool) {
	switch productID {
	case tenant.ProductCRM:
		return "has_crm_access", true
	case tenant.ProductHR:
		return "has_hr_access", true
	case tenant.ProductJobBoard:
		return "has_job_board_access", true
	}
	return "", false
}
