package seed

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCatalog(t *testing.T) {
	src := `
products:
  - id: crm
    name: CRM
    description: Customer relationship management
  - id: legacy-fax
    name: Fax
    active: false
`
	entries, err := LoadCatalog(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "crm", entries[0].ID)
	assert.True(t, entries[0].IsActive())
	assert.False(t, entries[1].IsActive())
}

func TestLoadCatalog_Errors(t *testing.T) {
	tests := map[string]string{
		"duplicate":   "products:\n  - id: crm\n    name: a\n  - id: crm\n    name: b\n",
		"missing id":  "products:\n  - name: a\n",
		"unknown key": "products:\n  - id: crm\n    price: 10\n",
	}
	for name, src := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := LoadCatalog(strings.NewReader(src))
			assert.Error(t, err)
		})
	}
}

func TestLoadCatalog_Empty(t *testing.T) {
	entries, err := LoadCatalog(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, entries)
}
