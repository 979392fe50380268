package quotation

import (
	"context"

	vo "github.com/lumenworks/backoffice/internal/domain/quotation/valueobjects"
)

type Repository interface {
	Create(ctx context.Context, q *Quotation) error
	// GetByID returns nil, nil when the quotation does not exist.
	GetByID(ctx context.Context, quotationID string) (*Quotation, error)
	// Update is a compare-and-swap on version.
	Update(ctx context.Context, q *Quotation) error
	List(ctx context.Context, filter ListFilter) ([]*Quotation, int64, error)
}

type ListFilter struct {
	TenantID string
	Status   *vo.QuotationStatus
	Page     int
	PageSize int
}
