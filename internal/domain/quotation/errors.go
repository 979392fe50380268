package quotation

import "errors"

var (
	ErrQuotationNotFound      = errors.New("quotation not found")
	ErrTerminalStatus         = errors.New("quotation is in a terminal status")
	ErrInvalidTransition      = errors.New("quotation status transition not allowed")
	ErrFinalPriceRequired     = errors.New("final price must be greater than zero to approve")
	ErrRejectionReasonNeeded  = errors.New("rejection reason is required")
	ErrConcurrentModification = errors.New("quotation was modified concurrently")
)
