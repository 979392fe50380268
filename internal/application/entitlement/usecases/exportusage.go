package usecases

import (
	"context"
	"fmt"

	"github.com/lumenworks/backoffice/internal/infrastructure/export"
	"github.com/lumenworks/backoffice/internal/shared/logger"
)

// ExportUsageUseCase renders the tenant's catalog view as an xlsx workbook.
type ExportUsageUseCase struct {
	list   *ListEntitlementsUseCase
	logger logger.Interface
}

func NewExportUsageUseCase(list *ListEntitlementsUseCase, logger logger.Interface) *ExportUsageUseCase {
	return &ExportUsageUseCase{list: list, logger: logger}
}

func (uc *ExportUsageUseCase) Execute(ctx context.Context, tenantID string) ([]byte, error) {
	rows, err := uc.list.Execute(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	usage := make([]export.UsageRow, 0, len(rows))
	for _, r := range rows {
		row := export.UsageRow{
			ProductID:   r.ProductID,
			ProductName: r.ProductName,
			HasAccess:   r.HasAccess,
		}
		if e := r.Entitlement; e != nil {
			row.AccessCount = e.AccessCount
			row.DistinctDays = e.Usage.DistinctDays
			row.DistinctMonths = e.Usage.DistinctMonths
			row.TotalActions = e.Usage.TotalActions
			row.LastAccessed = e.LastAccessed
		}
		usage = append(usage, row)
	}

	data, err := export.UsageWorkbook(tenantID, usage)
	if err != nil {
		uc.logger.Errorw("failed to build usage workbook", "error", err, "tenant_id", tenantID)
		return nil, fmt.Errorf("failed to export usage: %w", err)
	}

	uc.logger.Infow("usage exported", "tenant_id", tenantID, "rows", len(usage))
	return data, nil
}
