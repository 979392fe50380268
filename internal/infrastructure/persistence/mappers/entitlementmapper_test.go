package mappers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenworks/backoffice/internal/domain/entitlement"
)

func TestEntitlementMapper_UsageSetsSurviveStorage(t *testing.T) {
	m := NewEntitlementMapper()
	now := time.Date(2026, 4, 2, 10, 0, 0, 0, time.UTC)

	e, err := entitlement.NewEntitlement("tnt_1", "crm", "op", entitlement.Credentials{TokenHash: "h", AccessLink: "acme-crm-0a0b0c0d"}, now)
	require.NoError(t, err)
	require.NoError(t, e.SetID(3))
	e.RecordAccess("2026-04-02", "2026-04", now)

	model, err := m.ToModel(e)
	require.NoError(t, err)
	assert.JSONEq(t, `["2026-04-02"]`, string(model.UsageDays))
	assert.Equal(t, "h", model.AccessTokenHash)

	back, err := m.ToEntity(model)
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-04"}, back.Usage().Months)
	assert.Equal(t, int64(1), back.Usage().TotalActions)
	assert.Equal(t, e.Version(), back.Version())
}

func TestDecodeKeySet_EmptyColumn(t *testing.T) {
	keys, err := decodeKeySet(nil)
	require.NoError(t, err)
	assert.Equal(t, []string{}, keys)

	keys, err = decodeKeySet([]byte("null"))
	require.NoError(t, err)
	assert.Equal(t, []string{}, keys)

	_, err = decodeKeySet([]byte("{"))
	assert.Error(t, err)
}

func TestLegacyAccessColumn(t *testing.T) {
	col, ok := LegacyAccessColumn("job-board")
	assert.True(t, ok)
	assert.Equal(t, "has_job_board_access", col)

	_, ok = LegacyAccessColumn("analytics")
	assert.False(t, ok)
}
