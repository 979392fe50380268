package entitlement

import (
	"time"

	"github.com/lumenworks/backoffice/internal/domain/shared/events"
)

const (
	EventTypeGranted     = "entitlement.granted"
	EventTypeRevoked     = "entitlement.revoked"
	EventTypeRegenerated = "entitlement.regenerated"
)

// ChangedEvent is emitted after a grant, revoke or credential rotation commits.
// It never carries the token.
type ChangedEvent struct {
	events.BaseEvent
	TenantID   string `json:"tenant_id"`
	ProductID  string `json:"product_id"`
	AccessLink string `json:"access_link"`
	AccessURL  string `json:"access_url,omitempty"`
	Actor      string `json:"actor,omitempty"`
	// Created is true when a grant created the record rather than reactivating it.
	Created bool `json:"created,omitempty"`
}

func NewChangedEvent(eventType string, e *Entitlement, accessURL, actor string, created bool, now time.Time) ChangedEvent {
	return ChangedEvent{
		BaseEvent:  events.NewBaseEvent(e.TenantID()+"/"+e.ProductID(), eventType, now),
		TenantID:   e.TenantID(),
		ProductID:  e.ProductID(),
		AccessLink: e.AccessLink(),
		AccessURL:  accessURL,
		Actor:      actor,
		Created:    created,
	}
}
