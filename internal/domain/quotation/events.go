package quotation

import (
	"time"

	vo "github.com/lumenworks/backoffice/internal/domain/quotation/valueobjects"
	"github.com/lumenworks/backoffice/internal/domain/shared/events"
)

const EventTypeStatusChanged = "quotation.status_changed"

type StatusChangedEvent struct {
	events.BaseEvent
	QuotationID     string             `json:"quotation_id"`
	TenantID        string             `json:"tenant_id"`
	ServiceName     string             `json:"service_name"`
	From            vo.QuotationStatus `json:"from"`
	To              vo.QuotationStatus `json:"to"`
	FinalPrice      *int64             `json:"final_price,omitempty"`
	Currency        string             `json:"currency"`
	RejectionReason string             `json:"rejection_reason,omitempty"`
}

func NewStatusChangedEvent(q *Quotation, from vo.QuotationStatus, now time.Time) StatusChangedEvent {
	return StatusChangedEvent{
		BaseEvent:       events.NewBaseEvent(q.ID(), EventTypeStatusChanged, now),
		QuotationID:     q.ID(),
		TenantID:        q.TenantID(),
		ServiceName:     q.ServiceName(),
		From:            from,
		To:              q.Status(),
		FinalPrice:      q.FinalPrice(),
		Currency:        q.Currency(),
		RejectionReason: q.RejectionReason(),
	}
}
