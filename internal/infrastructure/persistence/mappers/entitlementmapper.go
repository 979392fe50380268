package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/lumenworks/backoffice/internal/domain/entitlement"
	"github.com/lumenworks/backoffice/internal/infrastructure/persistence/models"
	"github.com/lumenworks/backoffice/internal/shared/mapper"
)

type EntitlementMapper interface {
	ToEntity(model *models.ProductEntitlementModel) (*entitlement.Entitlement, error)
	ToModel(entity *entitlement.Entitlement) (*models.ProductEntitlementModel, error)
	ToEntities(models []*models.ProductEntitlementModel) ([]*entitlement.Entitlement, error)
}

type EntitlementMapperImpl struct{}

func NewEntitlementMapper() EntitlementMapper {
	return &EntitlementMapperImpl{}
}

func (m *EntitlementMapperImpl) ToEntity(model *models.ProductEntitlementModel) (*entitlement.Entitlement, error) {
	if model == nil {
		return nil, nil
	}

	days, err := decodeKeySet(model.UsageDays)
	if err != nil {
		return nil, fmt.Errorf("failed to decode usage days: %w", err)
	}
	months, err := decodeKeySet(model.UsageMonths)
	if err != nil {
		return nil, fmt.Errorf("failed to decode usage months: %w", err)
	}

	entity, err := entitlement.ReconstructEntitlement(entitlement.ReconstructParams{
		ID:           model.ID,
		TenantID:     model.TenantID,
		ProductID:    model.ProductID,
		HasAccess:    model.HasAccess,
		GrantedAt:    model.GrantedAt,
		GrantedBy:    model.GrantedBy,
		RevokedAt:    model.RevokedAt,
		RevokedBy:    model.RevokedBy,
		TokenHash:    model.AccessTokenHash,
		AccessLink:   model.AccessLink,
		LastAccessed: model.LastAccessed,
		AccessCount:  model.AccessCount,
		Usage: entitlement.UsageSummary{
			Days:         days,
			Months:       months,
			TotalActions: model.UsageTotalActions,
		},
		Version:   model.Version,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct entitlement entity: %w", err)
	}
	return entity, nil
}

func (m *EntitlementMapperImpl) ToModel(entity *entitlement.Entitlement) (*models.ProductEntitlementModel, error) {
	if entity == nil {
		return nil, nil
	}

	usage := entity.Usage()
	days, err := encodeKeySet(usage.Days)
	if err != nil {
		return nil, fmt.Errorf("failed to encode usage days: %w", err)
	}
	months, err := encodeKeySet(usage.Months)
	if err != nil {
		return nil, fmt.Errorf("failed to encode usage months: %w", err)
	}

	return &models.ProductEntitlementModel{
		ID:                entity.ID(),
		TenantID:          entity.TenantID(),
		ProductID:         entity.ProductID(),
		HasAccess:         entity.HasAccess(),
		GrantedAt:         entity.GrantedAt(),
		GrantedBy:         entity.GrantedBy(),
		RevokedAt:         entity.RevokedAt(),
		RevokedBy:         entity.RevokedBy(),
		AccessTokenHash:   entity.TokenHash(),
		AccessLink:        entity.AccessLink(),
		LastAccessed:      entity.LastAccessed(),
		AccessCount:       entity.AccessCount(),
		UsageDays:         days,
		UsageMonths:       months,
		UsageTotalActions: usage.TotalActions,
		Version:           entity.Version(),
		CreatedAt:         entity.CreatedAt(),
		UpdatedAt:         entity.UpdatedAt(),
	}, nil
}

func (m *EntitlementMapperImpl) ToEntities(modelList []*models.ProductEntitlementModel) ([]*entitlement.Entitlement, error) {
	return mapper.MapSliceErr(modelList, m.ToEntity)
}

func decodeKeySet(raw datatypes.JSON) ([]string, error) {
	if len(raw) == 0 {
		return []string{}, nil
	}
	var keys []string
	if err := json.Unmarshal(raw, &keys); err != nil {
		return nil, err
	}
	if keys == nil {
		keys = []string{}
	}
	return keys, nil
}

func encodeKeySet(keys []string) (datatypes.JSON, error) {
	if keys == nil {
		keys = []string{}
	}
	b, err := json.Marshal(keys)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}
