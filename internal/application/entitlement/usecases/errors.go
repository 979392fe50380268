package usecases

import (
	stderrors "errors"

	"github.com/lumenworks/backoffice/internal/domain/entitlement"
	"github.com/lumenworks/backoffice/internal/domain/shared/services"
	"github.com/lumenworks/backoffice/internal/shared/errors"
)

// retryable reports whether the read-modify-write should run again.
func retryable(err error) bool {
	return stderrors.Is(err, entitlement.ErrConcurrentModification) ||
		stderrors.Is(err, entitlement.ErrAccessLinkTaken) ||
		stderrors.Is(err, entitlement.ErrEntitlementExists)
}

// toAppError maps domain failures to the API taxonomy. AppErrors pass through.
func toAppError(err error) error {
	if err == nil || errors.IsAppError(err) {
		return err
	}
	switch {
	case stderrors.Is(err, entitlement.ErrEntitlementNotFound):
		return errors.NewNotFoundError("entitlement not found")
	case stderrors.Is(err, entitlement.ErrGrantRequired):
		return errors.NewValidationError("grant access first")
	case stderrors.Is(err, entitlement.ErrConcurrentModification):
		return errors.NewConflictError("entitlement is being modified, try again")
	case stderrors.Is(err, services.ErrLinkSpaceExhausted), stderrors.Is(err, entitlement.ErrAccessLinkTaken):
		return errors.NewConflictError("could not allocate a unique access link")
	}
	return err
}

func validatePair(tenantID, productID string) error {
	if tenantID == "" {
		return errors.NewValidationError("tenant ID is required")
	}
	if productID == "" {
		return errors.NewValidationError("product ID is required")
	}
	return nil
}
