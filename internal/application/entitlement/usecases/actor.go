package usecases

import (
	"github.com/lumenworks/backoffice/internal/shared/authorization"
	"github.com/lumenworks/backoffice/internal/shared/errors"
)

// Actor is the authenticated user changing an entitlement.
type Actor struct {
	UserID string
	Role   authorization.UserRole
}

// requireOperator rejects everyone but the platform operator, whichever
// surface the call came through.
func requireOperator(a Actor) error {
	if !a.Role.IsOperator() {
		return errors.NewForbiddenError("operator access required")
	}
	return nil
}
