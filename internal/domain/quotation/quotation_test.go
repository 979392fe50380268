package quotation

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/lumenworks/backoffice/internal/domain/quotation/valueobjects"
)

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func price(v int64) *int64 { return &v }
func text(s string) *string { return &s }

func newPending(t *testing.T) *Quotation {
	t.Helper()
	q, err := NewQuotation("tnt_1", "Data migration", "Move 3 years of CRM data", 40000, "")
	require.NoError(t, err)
	return q
}

func TestNewQuotation(t *testing.T) {
	q := newPending(t)
	assert.True(t, strings.HasPrefix(q.ID(), "qt_"))
	assert.Equal(t, vo.StatusPending, q.Status())
	assert.Equal(t, "USD", q.Currency())
	assert.Nil(t, q.FinalPrice())

	_, err := NewQuotation("tnt_1", " ", "", 1, "")
	assert.Error(t, err)
	_, err = NewQuotation("tnt_1", "x", "", -1, "")
	assert.Error(t, err)
	_, err = NewQuotation("", "x", "", 1, "")
	assert.Error(t, err)
	_, err = NewQuotation("tnt_1", "x", "", 1, "EURO")
	assert.Error(t, err)
}

func TestTransition_ApproveRequiresPositivePrice(t *testing.T) {
	q := newPending(t)

	err := q.TransitionTo(Transition{Target: vo.StatusApproved}, now)
	assert.ErrorIs(t, err, ErrFinalPriceRequired)
	err = q.TransitionTo(Transition{Target: vo.StatusApproved, FinalPrice: price(0)}, now)
	assert.ErrorIs(t, err, ErrFinalPriceRequired)
	assert.Equal(t, vo.StatusPending, q.Status(), "guards run before mutation")
	assert.Equal(t, 1, q.Version())

	require.NoError(t, q.TransitionTo(Transition{Target: vo.StatusApproved, FinalPrice: price(500), SuperadminNotes: text("ok")}, now))
	assert.Equal(t, vo.StatusApproved, q.Status())
	assert.Equal(t, int64(500), *q.FinalPrice())
	assert.Equal(t, now, *q.ApprovedDate())
	assert.Equal(t, now, *q.ProposedDeliveryDate(), "delivery defaults to now")
	assert.Equal(t, "ok", q.SuperadminNotes())
	assert.Equal(t, 2, q.Version())
}

func TestTransition_ApproveWithDeliveryDate(t *testing.T) {
	q := newPending(t)
	delivery := now.Add(14 * 24 * time.Hour)
	require.NoError(t, q.TransitionTo(Transition{Target: vo.StatusApproved, FinalPrice: price(1), ProposedDeliveryDate: &delivery}, now))
	assert.Equal(t, delivery, *q.ProposedDeliveryDate())
}

func TestTransition_RejectRequiresReason(t *testing.T) {
	q := newPending(t)

	assert.ErrorIs(t, q.TransitionTo(Transition{Target: vo.StatusRejected, RejectionReason: "   "}, now), ErrRejectionReasonNeeded)

	require.NoError(t, q.TransitionTo(Transition{Target: vo.StatusRejected, RejectionReason: " out of scope "}, now))
	assert.Equal(t, "out of scope", q.RejectionReason())

	err := q.TransitionTo(Transition{Target: vo.StatusApproved, FinalPrice: price(10)}, now)
	assert.ErrorIs(t, err, ErrTerminalStatus)
}

func TestTransition_CompletedIsTerminal(t *testing.T) {
	q := newPending(t)
	require.NoError(t, q.TransitionTo(Transition{Target: vo.StatusApproved, FinalPrice: price(500)}, now))
	require.NoError(t, q.TransitionTo(Transition{Target: vo.StatusCompleted, SuperadminNotes: text("delivered")}, now.Add(time.Hour)))
	assert.Equal(t, now.Add(time.Hour), *q.CompletedDate())
	assert.Equal(t, "delivered", q.SuperadminNotes())

	for _, target := range []vo.QuotationStatus{vo.StatusCompleted, vo.StatusApproved, vo.StatusPending} {
		err := q.TransitionTo(Transition{Target: target, FinalPrice: price(1)}, now)
		assert.ErrorIs(t, err, ErrTerminalStatus, target)
	}
}

func TestTransition_NotInTable(t *testing.T) {
	q := newPending(t)
	assert.ErrorIs(t, q.TransitionTo(Transition{Target: vo.StatusCompleted}, now), ErrInvalidTransition)
	assert.ErrorIs(t, q.TransitionTo(Transition{Target: "archived"}, now), ErrInvalidTransition)
}

func TestMergeNotes(t *testing.T) {
	assert.Equal(t, "a", mergeNotes("", "a"))
	assert.Equal(t, "a\nb", mergeNotes("a", " b "))
	assert.Equal(t, "a", mergeNotes("a", "  "))
}

func TestStatusChangedEvent(t *testing.T) {
	q := newPending(t)
	require.NoError(t, q.TransitionTo(Transition{Target: vo.StatusRejected, RejectionReason: "no"}, now))
	ev := NewStatusChangedEvent(q, vo.StatusPending, now)
	assert.Equal(t, vo.StatusPending, ev.From)
	assert.Equal(t, vo.StatusRejected, ev.To)
	assert.Equal(t, q.ID(), ev.GetAggregateID())
}
