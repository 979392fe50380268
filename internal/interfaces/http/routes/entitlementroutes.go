package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/lumenworks/backoffice/internal/infrastructure/permission"
	"github.com/lumenworks/backoffice/internal/interfaces/http/handlers"
	"github.com/lumenworks/backoffice/internal/interfaces/http/middleware"
)

// EntitlementRouteConfig holds dependencies for entitlement routes.
type EntitlementRouteConfig struct {
	EntitlementHandler   *handlers.EntitlementHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupEntitlementRoutes configures the operator entitlement routes.
func SetupEntitlementRoutes(engine *gin.Engine, cfg *EntitlementRouteConfig) {
	perm := cfg.PermissionMiddleware

	entitlements := engine.Group("/entitlements")
	entitlements.Use(cfg.AuthMiddleware.RequireAuth())
	{
		// Specific paths before /:tenantId/:productId
		entitlements.GET("/:tenantId/usage/export",
			perm.RequirePermission(permission.ResourceEntitlement, permission.ActionExport),
			cfg.EntitlementHandler.ExportUsage)

		entitlements.GET("/:tenantId",
			perm.RequirePermission(permission.ResourceEntitlement, permission.ActionRead),
			cfg.EntitlementHandler.List)
		entitlements.POST("/:tenantId/:productId/grant",
			perm.RequirePermission(permission.ResourceEntitlement, permission.ActionGrant),
			cfg.EntitlementHandler.Grant)
		entitlements.POST("/:tenantId/:productId/revoke",
			perm.RequirePermission(permission.ResourceEntitlement, permission.ActionRevoke),
			cfg.EntitlementHandler.Revoke)
		entitlements.POST("/:tenantId/:productId/regenerate",
			perm.RequirePermission(permission.ResourceEntitlement, permission.ActionRegenerate),
			cfg.EntitlementHandler.Regenerate)
	}
}
