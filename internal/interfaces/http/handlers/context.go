package handlers

import (
	"github.com/gin-gonic/gin"

	entitlementUsecases "github.com/lumenworks/backoffice/internal/application/entitlement/usecases"
	quotationUsecases "github.com/lumenworks/backoffice/internal/application/quotation/usecases"
	"github.com/lumenworks/backoffice/internal/shared/authorization"
	"github.com/lumenworks/backoffice/internal/shared/constants"
	"github.com/lumenworks/backoffice/internal/shared/errors"
)

func currentCaller(c *gin.Context) quotationUsecases.Caller {
	return quotationUsecases.Caller{
		UserID:   c.GetString(constants.ContextKeyUserID),
		Role:     authorization.RoleFromContext(c),
		TenantID: c.GetString(constants.ContextKeyTenantID),
	}
}

func currentActor(c *gin.Context) entitlementUsecases.Actor {
	return entitlementUsecases.Actor{
		UserID: c.GetString(constants.ContextKeyUserID),
		Role:   authorization.RoleFromContext(c),
	}
}

// tenantFromContext returns the session tenant or an Unauthorized error.
func tenantFromContext(c *gin.Context) (string, error) {
	tenantID := c.GetString(constants.ContextKeyTenantID)
	if tenantID == "" {
		return "", errors.NewUnauthorizedError("tenant session required")
	}
	return tenantID, nil
}
