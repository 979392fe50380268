package dto

import (
	"encoding/json"
	"time"

	"github.com/lumenworks/backoffice/internal/domain/quotation"
)

type CreateQuotationRequest struct {
	ServiceName    string `json:"service_name" binding:"required,max=200"`
	Description    string `json:"description" binding:"max=5000"`
	RequestedPrice int64  `json:"requested_price" binding:"min=0"`
	Currency       string `json:"currency" binding:"omitempty,len=3"`
}

// UpdateStatusRequest is an operator transition. Prices are minor units.
type UpdateStatusRequest struct {
	Status               string     `json:"status" binding:"required,oneof=pending approved rejected completed"`
	FinalPrice           *int64     `json:"final_price,omitempty"`
	RejectionReason      string     `json:"rejection_reason,omitempty" binding:"max=2000"`
	SuperadminNotes      *string    `json:"superadmin_notes,omitempty" binding:"omitempty,max=5000"`
	ProposedDeliveryDate *time.Time `json:"proposed_delivery_date,omitempty"`
}

// UnmarshalJSON also accepts camelCase keys (finalPrice, rejectionReason,
// superadminNotes, proposedDeliveryDate). The snake_case key wins when a
// body carries both.
func (r *UpdateStatusRequest) UnmarshalJSON(data []byte) error {
	type plain UpdateStatusRequest
	var aux struct {
		plain
		FinalPriceCamel           *int64     `json:"finalPrice"`
		RejectionReasonCamel      *string    `json:"rejectionReason"`
		SuperadminNotesCamel      *string    `json:"superadminNotes"`
		ProposedDeliveryDateCamel *time.Time `json:"proposedDeliveryDate"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	*r = UpdateStatusRequest(aux.plain)
	if r.FinalPrice == nil {
		r.FinalPrice = aux.FinalPriceCamel
	}
	if r.RejectionReason == "" && aux.RejectionReasonCamel != nil {
		r.RejectionReason = *aux.RejectionReasonCamel
	}
	if r.SuperadminNotes == nil {
		r.SuperadminNotes = aux.SuperadminNotesCamel
	}
	if r.ProposedDeliveryDate == nil {
		r.ProposedDeliveryDate = aux.ProposedDeliveryDateCamel
	}
	return nil
}

type ListQuotationsRequest struct {
	TenantID string
	Status   string
	Page     int
	PageSize int
}

type QuotationDTO struct {
	ID                   string     `json:"id"`
	TenantID             string     `json:"tenant_id"`
	ServiceName          string     `json:"service_name"`
	Description          string     `json:"description"`
	RequestedPrice       int64      `json:"requested_price"`
	Currency             string     `json:"currency"`
	FinalPrice           *int64     `json:"final_price,omitempty"`
	Status               string     `json:"status"`
	RejectionReason      string     `json:"rejection_reason,omitempty"`
	ProposedDeliveryDate *time.Time `json:"proposed_delivery_date,omitempty"`
	ApprovedDate         *time.Time `json:"approved_date,omitempty"`
	CompletedDate        *time.Time `json:"completed_date,omitempty"`
	SuperadminNotes      string     `json:"superadmin_notes,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

type ListQuotationsResponse struct {
	Items    []*QuotationDTO `json:"items"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// ToQuotationDTO hides operator notes from tenants.
func ToQuotationDTO(q *quotation.Quotation, includeNotes bool) *QuotationDTO {
	out := &QuotationDTO{
		ID:                   q.ID(),
		TenantID:             q.TenantID(),
		ServiceName:          q.ServiceName(),
		Description:          q.Description(),
		RequestedPrice:       q.RequestedPrice(),
		Currency:             q.Currency(),
		FinalPrice:           q.FinalPrice(),
		Status:               string(q.Status()),
		RejectionReason:      q.RejectionReason(),
		ProposedDeliveryDate: q.ProposedDeliveryDate(),
		ApprovedDate:         q.ApprovedDate(),
		CompletedDate:        q.CompletedDate(),
		CreatedAt:            q.CreatedAt(),
		UpdatedAt:            q.UpdatedAt(),
	}
	if includeNotes {
		out.SuperadminNotes = q.SuperadminNotes()
	}
	return out
}
