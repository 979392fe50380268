package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/lumenworks/backoffice/internal/domain/entitlement"
	"github.com/lumenworks/backoffice/internal/domain/notification"
	"github.com/lumenworks/backoffice/internal/domain/product"
	"github.com/lumenworks/backoffice/internal/domain/quotation"
	vo "github.com/lumenworks/backoffice/internal/domain/quotation/valueobjects"
	"github.com/lumenworks/backoffice/internal/domain/shared/events"
	"github.com/lumenworks/backoffice/internal/domain/tenant"
	"github.com/lumenworks/backoffice/internal/shared/logger"
)

// draft is a notification before it is addressed and stored.
type draft struct {
	tenantID  string
	category  notification.Category
	severity  notification.Severity
	title     string
	message   string
	relatedID string
}

// DispatchNotificationUseCase turns committed domain events into inbox entries,
// emails and broker messages. It implements events.EventHandler; every
// delivery failure is logged and swallowed.
type DispatchNotificationUseCase struct {
	repo        notification.Repository
	tenantRepo  tenant.Repository
	productRepo product.Repository
	mailer      EmailSender
	broker      Broker
	logger      logger.Interface
}

func NewDispatchNotificationUseCase(
	repo notification.Repository,
	tenantRepo tenant.Repository,
	productRepo product.Repository,
	mailer EmailSender,
	broker Broker,
	logger logger.Interface,
) *DispatchNotificationUseCase {
	return &DispatchNotificationUseCase{
		repo:        repo,
		tenantRepo:  tenantRepo,
		productRepo: productRepo,
		mailer:      mailer,
		broker:      broker,
		logger:      logger,
	}
}

// EventTypes lists the events this handler subscribes to.
func (uc *DispatchNotificationUseCase) EventTypes() []string {
	return []string{
		entitlement.EventTypeGranted,
		entitlement.EventTypeRevoked,
		entitlement.EventTypeRegenerated,
		quotation.EventTypeStatusChanged,
	}
}

func (uc *DispatchNotificationUseCase) CanHandle(eventType string) bool {
	for _, t := range uc.EventTypes() {
		if t == eventType {
			return true
		}
	}
	return false
}

func (uc *DispatchNotificationUseCase) Handle(ctx context.Context, event events.DomainEvent) error {
	var d *draft
	switch e := event.(type) {
	case entitlement.ChangedEvent:
		d = uc.entitlementDraft(ctx, e)
	case *entitlement.ChangedEvent:
		d = uc.entitlementDraft(ctx, *e)
	case quotation.StatusChangedEvent:
		d = quotationDraft(e)
	case *quotation.StatusChangedEvent:
		d = quotationDraft(*e)
	default:
		uc.logger.Warnw("unsupported event for notification", "event_type", event.GetEventType())
		return nil
	}

	uc.forward(ctx, event)
	if d == nil {
		return nil
	}

	n, err := notification.NewNotification(d.tenantID, d.category, d.severity, d.title, d.message, d.relatedID)
	if err != nil {
		uc.logger.Warnw("failed to build notification", "error", err, "event_type", event.GetEventType())
		return nil
	}
	if err := uc.repo.Create(ctx, n); err != nil {
		uc.logger.Warnw("failed to store notification", "error", err, "tenant_id", d.tenantID, "event_type", event.GetEventType())
	}
	uc.email(ctx, d)
	return nil
}

func (uc *DispatchNotificationUseCase) forward(ctx context.Context, event events.DomainEvent) {
	if uc.broker == nil {
		return
	}
	if err := uc.broker.Publish(ctx, event.GetEventType(), event.GetEventID(), event); err != nil {
		uc.logger.Warnw("failed to forward event to broker", "error", err, "event_type", event.GetEventType(), "event_id", event.GetEventID())
	}
}

func (uc *DispatchNotificationUseCase) email(ctx context.Context, d *draft) {
	if uc.mailer == nil {
		return
	}
	t, err := uc.tenantRepo.GetByID(ctx, d.tenantID)
	if err != nil || t == nil {
		uc.logger.Warnw("no recipient for notification email", "error", err, "tenant_id", d.tenantID)
		return
	}
	if t.Email() == "" {
		return
	}
	if err := uc.mailer.Send(t.Email(), d.title, d.message); err != nil {
		uc.logger.Warnw("failed to send notification email", "error", err, "tenant_id", d.tenantID)
	}
}

func (uc *DispatchNotificationUseCase) productName(ctx context.Context, productID string) string {
	p, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil || p == nil {
		return productID
	}
	return p.Name()
}

func (uc *DispatchNotificationUseCase) entitlementDraft(ctx context.Context, e entitlement.ChangedEvent) *draft {
	name := uc.productName(ctx, e.ProductID)
	d := &draft{
		tenantID:  e.TenantID,
		category:  notification.CategoryEntitlement,
		relatedID: e.ProductID,
	}
	switch e.EventType {
	case entitlement.EventTypeGranted:
		d.severity = notification.SeveritySuccess
		d.title = fmt.Sprintf("Access granted to %s", name)
		d.message = fmt.Sprintf("Your organization can now use **%s**.\n\nOpen it here: %s", name, e.AccessURL)
	case entitlement.EventTypeRevoked:
		d.severity = notification.SeverityWarning
		d.title = fmt.Sprintf("Access to %s revoked", name)
		d.message = fmt.Sprintf("Access to **%s** has been revoked. Contact your account manager to restore it.", name)
	case entitlement.EventTypeRegenerated:
		d.severity = notification.SeverityInfo
		d.title = fmt.Sprintf("New access link for %s", name)
		d.message = fmt.Sprintf("The access link for **%s** was rotated. The previous link no longer works.\n\nNew link: %s", name, e.AccessURL)
	default:
		return nil
	}
	return d
}

func quotationDraft(e quotation.StatusChangedEvent) *draft {
	d := &draft{
		tenantID:  e.TenantID,
		category:  notification.CategoryQuotation,
		severity:  notification.SeverityInfo,
		relatedID: e.QuotationID,
	}
	switch e.To {
	case vo.StatusApproved:
		d.severity = notification.SeveritySuccess
		d.title = "Quotation approved"
		var b strings.Builder
		fmt.Fprintf(&b, "Your quotation for **%s** was approved.", e.ServiceName)
		if e.FinalPrice != nil {
			fmt.Fprintf(&b, "\n\nFinal price: %s", formatMoney(*e.FinalPrice, e.Currency))
		}
		d.message = b.String()
	case vo.StatusRejected:
		d.severity = notification.SeverityError
		d.title = "Quotation rejected"
		d.message = fmt.Sprintf("Your quotation for **%s** was rejected.\n\nReason: %s", e.ServiceName, e.RejectionReason)
	case vo.StatusCompleted:
		d.severity = notification.SeveritySuccess
		d.title = "Quotation completed"
		d.message = fmt.Sprintf("Work on **%s** is complete.", e.ServiceName)
	default:
		d.title = "Quotation updated"
		d.message = fmt.Sprintf("Your quotation for **%s** is now %s.", e.ServiceName, e.To)
	}
	return d
}
