package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestUsageWorkbook(t *testing.T) {
	last := time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)
	data, err := UsageWorkbook("tnt_1", []UsageRow{
		{ProductID: "crm", ProductName: "CRM", HasAccess: true, AccessCount: 5, DistinctDays: 1, DistinctMonths: 1, TotalActions: 5, LastAccessed: &last},
		{ProductID: "hr", ProductName: "HR"},
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{usageSheet}, f.GetSheetList())

	rows, err := f.GetRows(usageSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, usageHeader, rows[0])
	assert.Equal(t, "crm", rows[1][0])
	assert.Equal(t, "TRUE", rows[1][2])
	assert.Equal(t, "5", rows[1][3])
	assert.Equal(t, "2026-03-04T10:00:00Z", rows[1][7])
	assert.Equal(t, "FALSE", rows[2][2])
}

func TestUsageWorkbook_Empty(t *testing.T) {
	data, err := UsageWorkbook("tnt_1", nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(usageSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
