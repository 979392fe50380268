package quotation

import (
	"fmt"
	"strings"
	"time"

	vo "github.com/lumenworks/backoffice/internal/domain/quotation/valueobjects"
	"github.com/lumenworks/backoffice/internal/shared/biztime"
	"github.com/lumenworks/backoffice/internal/shared/id"
)

const defaultCurrency = "USD"

// Quotation is a tenant's request for a custom service priced by an operator.
// Amounts are in the currency's minor unit.
type Quotation struct {
	id                   string
	tenantID             string
	serviceName          string
	description          string
	requestedPrice       int64
	currency             string
	finalPrice           *int64
	status               vo.QuotationStatus
	rejectionReason      string
	proposedDeliveryDate *time.Time
	approvedDate         *time.Time
	completedDate        *time.Time
	superadminNotes      string
	version              int
	createdAt            time.Time
	updatedAt            time.Time
}

func NewQuotation(tenantID, serviceName, description string, requestedPrice int64, currency string) (*Quotation, error) {
	if strings.TrimSpace(tenantID) == "" {
		return nil, fmt.Errorf("tenant ID is required")
	}
	serviceName = strings.TrimSpace(serviceName)
	if serviceName == "" {
		return nil, fmt.Errorf("service name is required")
	}
	if len(serviceName) > 200 {
		return nil, fmt.Errorf("service name too long (max 200 characters)")
	}
	if len(description) > 5000 {
		return nil, fmt.Errorf("description too long (max 5000 characters)")
	}
	if requestedPrice < 0 {
		return nil, fmt.Errorf("requested price cannot be negative")
	}
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		currency = defaultCurrency
	}
	if len(currency) != 3 {
		return nil, fmt.Errorf("invalid currency code: %s", currency)
	}

	quotationID, err := id.NewQuotationID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate quotation id: %w", err)
	}

	now := biztime.NowUTC()
	return &Quotation{
		id:             quotationID,
		tenantID:       tenantID,
		serviceName:    serviceName,
		description:    description,
		requestedPrice: requestedPrice,
		currency:       currency,
		status:         vo.StatusPending,
		version:        1,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

type ReconstructParams struct {
	ID                   string
	TenantID             string
	ServiceName          string
	Description          string
	RequestedPrice       int64
	Currency             string
	FinalPrice           *int64
	Status               string
	RejectionReason      string
	ProposedDeliveryDate *time.Time
	ApprovedDate         *time.Time
	CompletedDate        *time.Time
	SuperadminNotes      string
	Version              int
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func ReconstructQuotation(p ReconstructParams) (*Quotation, error) {
	if p.ID == "" {
		return nil, fmt.Errorf("quotation ID cannot be empty")
	}
	status, err := vo.NewQuotationStatus(p.Status)
	if err != nil {
		return nil, err
	}
	return &Quotation{
		id:                   p.ID,
		tenantID:             p.TenantID,
		serviceName:          p.ServiceName,
		description:          p.Description,
		requestedPrice:       p.RequestedPrice,
		currency:             p.Currency,
		finalPrice:           p.FinalPrice,
		status:               status,
		rejectionReason:      p.RejectionReason,
		proposedDeliveryDate: p.ProposedDeliveryDate,
		approvedDate:         p.ApprovedDate,
		completedDate:        p.CompletedDate,
		superadminNotes:      p.SuperadminNotes,
		version:              p.Version,
		createdAt:            p.CreatedAt,
		updatedAt:            p.UpdatedAt,
	}, nil
}

// Transition is an operator's request to move a quotation to Target.
type Transition struct {
	Target               vo.QuotationStatus
	FinalPrice           *int64
	RejectionReason      string
	SuperadminNotes      *string
	ProposedDeliveryDate *time.Time
}

// TransitionTo applies t after checking every guard; on error nothing is mutated.
func (q *Quotation) TransitionTo(t Transition, now time.Time) error {
	if !t.Target.IsValid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, t.Target)
	}
	if q.status.IsTerminal() {
		return fmt.Errorf("%w: %s", ErrTerminalStatus, q.status)
	}
	if !q.status.CanTransitionTo(t.Target) {
		return fmt.Errorf("%w: %s to %s", ErrInvalidTransition, q.status, t.Target)
	}

	reason := strings.TrimSpace(t.RejectionReason)
	switch t.Target {
	case vo.StatusApproved:
		price := q.finalPrice
		if t.FinalPrice != nil {
			price = t.FinalPrice
		}
		if price == nil || *price <= 0 {
			return ErrFinalPriceRequired
		}
	case vo.StatusRejected:
		if reason == "" {
			return ErrRejectionReasonNeeded
		}
	}

	now = now.UTC()
	switch t.Target {
	case vo.StatusApproved:
		if t.FinalPrice != nil {
			price := *t.FinalPrice
			q.finalPrice = &price
		}
		approved := now
		q.approvedDate = &approved
		delivery := now
		if t.ProposedDeliveryDate != nil {
			delivery = t.ProposedDeliveryDate.UTC()
		}
		q.proposedDeliveryDate = &delivery
	case vo.StatusRejected:
		q.rejectionReason = reason
	case vo.StatusCompleted:
		completed := now
		q.completedDate = &completed
	}

	if t.SuperadminNotes != nil {
		q.superadminNotes = mergeNotes(q.superadminNotes, *t.SuperadminNotes)
	}
	q.status = t.Target
	q.updatedAt = now
	q.version++
	return nil
}

func mergeNotes(existing, added string) string {
	added = strings.TrimSpace(added)
	if added == "" {
		return existing
	}
	if existing == "" {
		return added
	}
	return existing + "\n" + added
}

func (q *Quotation) ID() string                       { return q.id }
func (q *Quotation) TenantID() string                 { return q.tenantID }
func (q *Quotation) ServiceName() string              { return q.serviceName }
func (q *Quotation) Description() string              { return q.description }
func (q *Quotation) RequestedPrice() int64            { return q.requestedPrice }
func (q *Quotation) Currency() string                 { return q.currency }
func (q *Quotation) FinalPrice() *int64               { return q.finalPrice }
func (q *Quotation) Status() vo.QuotationStatus       { return q.status }
func (q *Quotation) RejectionReason() string          { return q.rejectionReason }
func (q *Quotation) ProposedDeliveryDate() *time.Time { return q.proposedDeliveryDate }
func (q *Quotation) ApprovedDate() *time.Time         { return q.approvedDate }
func (q *Quotation) CompletedDate() *time.Time        { return q.completedDate }
func (q *Quotation) SuperadminNotes() string          { return q.superadminNotes }
func (q *Quotation) Version() int                     { return q.version }
func (q *Quotation) CreatedAt() time.Time             { return q.createdAt }
func (q *Quotation) UpdatedAt() time.Time             { return q.updatedAt }
