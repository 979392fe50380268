package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuotationStatus_Transitions(t *testing.T) {
	tests := []struct {
		from, to QuotationStatus
		want     bool
	}{
		{StatusPending, StatusApproved, true},
		{StatusPending, StatusRejected, true},
		{StatusApproved, StatusCompleted, true},
		{StatusPending, StatusCompleted, false},
		{StatusApproved, StatusRejected, false},
		{StatusRejected, StatusApproved, false},
		{StatusCompleted, StatusCompleted, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestQuotationStatus_Terminal(t *testing.T) {
	assert.True(t, StatusRejected.IsTerminal())
	assert.True(t, StatusCompleted.IsTerminal())
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusApproved.IsTerminal())
}

func TestNewQuotationStatus(t *testing.T) {
	s, err := NewQuotationStatus("approved")
	assert.NoError(t, err)
	assert.Equal(t, StatusApproved, s)

	_, err = NewQuotationStatus("archived")
	assert.Error(t, err)
}
