package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/lumenworks/backoffice/internal/infrastructure/permission"
	"github.com/lumenworks/backoffice/internal/interfaces/http/handlers"
	"github.com/lumenworks/backoffice/internal/interfaces/http/middleware"
)

// QuotationRouteConfig holds dependencies for quotation routes.
type QuotationRouteConfig struct {
	QuotationHandler     *handlers.QuotationHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupQuotationRoutes configures quotation routes. Row-level visibility
// (tenants see only their own) is enforced by the use cases.
func SetupQuotationRoutes(engine *gin.Engine, cfg *QuotationRouteConfig) {
	perm := cfg.PermissionMiddleware

	quotations := engine.Group("/quotations")
	quotations.Use(cfg.AuthMiddleware.RequireAuth())
	{
		quotations.GET("",
			perm.RequirePermission(permission.ResourceQuotation, permission.ActionRead),
			cfg.QuotationHandler.List)
		quotations.POST("",
			perm.RequirePermission(permission.ResourceQuotation, permission.ActionCreate),
			cfg.QuotationHandler.Create)

		quotations.PUT("/:id/status",
			perm.RequirePermission(permission.ResourceQuotation, permission.ActionTransition),
			cfg.QuotationHandler.UpdateStatus)
		quotations.GET("/:id",
			perm.RequirePermission(permission.ResourceQuotation, permission.ActionRead),
			cfg.QuotationHandler.Get)
	}
}
