package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/lumenworks/backoffice/internal/infrastructure/permission"
	"github.com/lumenworks/backoffice/internal/interfaces/http/handlers"
	"github.com/lumenworks/backoffice/internal/interfaces/http/middleware"
)

type TenantRouteConfig struct {
	TenantHandler        *handlers.TenantHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupTenantRoutes(engine *gin.Engine, cfg *TenantRouteConfig) {
	perm := cfg.PermissionMiddleware

	tenants := engine.Group("/tenants")
	tenants.Use(cfg.AuthMiddleware.RequireAuth())
	{
		tenants.GET("",
			perm.RequirePermission(permission.ResourceTenant, permission.ActionRead),
			cfg.TenantHandler.List)
		tenants.POST("",
			perm.RequirePermission(permission.ResourceTenant, permission.ActionCreate),
			cfg.TenantHandler.Create)
		tenants.GET("/:tenantId",
			perm.RequirePermission(permission.ResourceTenant, permission.ActionRead),
			cfg.TenantHandler.Get)
	}
}
