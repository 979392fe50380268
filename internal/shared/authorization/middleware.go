package authorization

import (
	"github.com/gin-gonic/gin"

	"github.com/lumenworks/backoffice/internal/shared/constants"
	"github.com/lumenworks/backoffice/internal/shared/errors"
	"github.com/lumenworks/backoffice/internal/shared/utils"
)

// RoleFromContext returns the role set by the auth middleware.
func RoleFromContext(c *gin.Context) UserRole {
	return ParseUserRole(c.GetString(constants.ContextKeyUserRole))
}

// RequireOperator aborts with 403 unless the caller is a superadmin.
func RequireOperator() gin.HandlerFunc {
	return requireRole(RoleSuperAdmin, "operator access required")
}

// RequireTenant aborts with 403 unless the caller is a tenant admin.
func RequireTenant() gin.HandlerFunc {
	return requireRole(RoleAdmin, "tenant access required")
}

func requireRole(role UserRole, msg string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if RoleFromContext(c) != role {
			utils.ErrorResponseWithError(c, errors.NewForbiddenError(msg))
			c.Abort()
			return
		}
		c.Next()
	}
}
