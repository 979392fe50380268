package valueobjects

import "fmt"

type QuotationStatus string

const (
	StatusPending   QuotationStatus = "pending"
	StatusApproved  QuotationStatus = "approved"
	StatusRejected  QuotationStatus = "rejected"
	StatusCompleted QuotationStatus = "completed"
)

var validQuotationStatuses = map[QuotationStatus]bool{
	StatusPending:   true,
	StatusApproved:  true,
	StatusRejected:  true,
	StatusCompleted: true,
}

var quotationStatusTransitions = map[QuotationStatus][]QuotationStatus{
	StatusPending: {
		StatusApproved,
		StatusRejected,
	},
	StatusApproved: {
		StatusCompleted,
	},
}

func (s QuotationStatus) String() string {
	return string(s)
}

func (s QuotationStatus) IsValid() bool {
	return validQuotationStatuses[s]
}

// IsTerminal reports whether no further transition is allowed.
func (s QuotationStatus) IsTerminal() bool {
	return s == StatusRejected || s == StatusCompleted
}

func (s QuotationStatus) CanTransitionTo(next QuotationStatus) bool {
	for _, allowed := range quotationStatusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func NewQuotationStatus(s string) (QuotationStatus, error) {
	status := QuotationStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid quotation status: %s", s)
	}
	return status, nil
}
