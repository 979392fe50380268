package usecases

import (
	stderrors "errors"

	"github.com/lumenworks/backoffice/internal/domain/quotation"
	"github.com/lumenworks/backoffice/internal/shared/authorization"
	"github.com/lumenworks/backoffice/internal/shared/errors"
)

// Caller identifies who is asking. Tenant admins are scoped to TenantID.
type Caller struct {
	UserID   string
	Role     authorization.UserRole
	TenantID string
}

func (c Caller) canSee(q *quotation.Quotation) bool {
	return c.Role.IsOperator() || (c.Role.IsTenant() && c.TenantID == q.TenantID())
}

func toAppError(err error) error {
	if err == nil || errors.IsAppError(err) {
		return err
	}
	switch {
	case stderrors.Is(err, quotation.ErrQuotationNotFound):
		return errors.NewNotFoundError("quotation not found")
	case stderrors.Is(err, quotation.ErrTerminalStatus), stderrors.Is(err, quotation.ErrInvalidTransition):
		return errors.NewInvalidTransitionError(err.Error())
	case stderrors.Is(err, quotation.ErrFinalPriceRequired), stderrors.Is(err, quotation.ErrRejectionReasonNeeded):
		return errors.NewValidationError(err.Error())
	case stderrors.Is(err, quotation.ErrConcurrentModification):
		return errors.NewConflictError("quotation was modified concurrently, reload and try again")
	}
	return err
}
