package notification

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNotification(t *testing.T) {
	n, err := NewNotification("tnt_1", CategoryQuotation, SeveritySuccess, "Quotation approved", "Your quote is approved", "qt_1")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(n.ID(), "ntf_"))
	assert.False(t, n.IsRead())
	assert.Equal(t, "qt_1", n.RelatedID())
}

func TestNewNotification_Validation(t *testing.T) {
	tests := []struct {
		name     string
		tenantID string
		severity Severity
		title    string
		message  string
	}{
		{"missing tenant", "", SeverityInfo, "t", ""},
		{"bad severity", "tnt_1", "loud", "t", ""},
		{"empty title", "tnt_1", SeverityInfo, "  ", ""},
		{"long title", "tnt_1", SeverityInfo, strings.Repeat("x", 201), ""},
		{"long message", "tnt_1", SeverityInfo, "t", strings.Repeat("x", 5001)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewNotification(tt.tenantID, CategoryEntitlement, tt.severity, tt.title, tt.message, "")
			assert.Error(t, err)
		})
	}
}

func TestMarkRead_KeepsFirstReadTime(t *testing.T) {
	n, err := NewNotification("tnt_1", CategoryEntitlement, SeverityInfo, "t", "", "")
	require.NoError(t, err)

	first := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	n.MarkRead(first)
	n.MarkRead(first.Add(time.Hour))
	assert.Equal(t, first, *n.ReadAt())
}
