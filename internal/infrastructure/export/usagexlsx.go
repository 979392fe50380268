// Package export renders entitlement usage reports as xlsx workbooks.
package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

const usageSheet = "Usage"

// UsageRow is one product line of a tenant usage report.
type UsageRow struct {
	ProductID      string
	ProductName    string
	HasAccess      bool
	AccessCount    int64
	DistinctDays   int
	DistinctMonths int
	TotalActions   int64
	LastAccessed   *time.Time
}

var usageHeader = []string{
	"Product ID",
	"Product",
	"Has Access",
	"Access Count",
	"Distinct Days",
	"Distinct Months",
	"Total Actions",
	"Last Accessed (UTC)",
}

var usageColumnWidths = []float64{16, 28, 12, 14, 14, 16, 14, 22}

// UsageWorkbook builds the report for one tenant.
func UsageWorkbook(tenantID string, rows []UsageRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(usageSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to delete default sheet: %w", err)
	}
	f.SetActiveSheet(index)

	if err := f.SetDocProps(&excelize.DocProperties{
		Title:   "Usage report",
		Subject: tenantID,
	}); err != nil {
		return nil, fmt.Errorf("failed to set document properties: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for col, header := range usageHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetCellValue(usageSheet, cell, header); err != nil {
			return nil, fmt.Errorf("failed to set header cell %s: %w", cell, err)
		}
		if err := f.SetCellStyle(usageSheet, cell, cell, headerStyle); err != nil {
			return nil, fmt.Errorf("failed to set header style: %w", err)
		}
	}

	for col, width := range usageColumnWidths {
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return nil, fmt.Errorf("failed to convert column number: %w", err)
		}
		if err := f.SetColWidth(usageSheet, name, name, width); err != nil {
			return nil, fmt.Errorf("failed to set column width: %w", err)
		}
	}

	for i, row := range rows {
		lastAccessed := ""
		if row.LastAccessed != nil {
			lastAccessed = row.LastAccessed.UTC().Format(time.RFC3339)
		}
		values := []any{
			row.ProductID,
			row.ProductName,
			row.HasAccess,
			row.AccessCount,
			row.DistinctDays,
			row.DistinctMonths,
			row.TotalActions,
			lastAccessed,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetSheetRow(usageSheet, cell, &values); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
