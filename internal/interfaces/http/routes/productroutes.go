package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/lumenworks/backoffice/internal/infrastructure/permission"
	"github.com/lumenworks/backoffice/internal/interfaces/http/handlers"
	"github.com/lumenworks/backoffice/internal/interfaces/http/middleware"
)

// ProductRouteConfig holds dependencies for catalog and product access routes.
type ProductRouteConfig struct {
	ProductHandler       *handlers.ProductHandler
	AccessHandler        *handlers.AccessHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
	AccessLinkLimiter    *middleware.RateLimiter
}

// SetupProductRoutes configures product routes.
func SetupProductRoutes(engine *gin.Engine, cfg *ProductRouteConfig) {
	perm := cfg.PermissionMiddleware

	products := engine.Group("/products")
	{
		// Public, rate limited
		access := products.Group("/access")
		access.Use(cfg.AccessLinkLimiter.Limit())
		{
			access.POST("/token/verify", cfg.AccessHandler.VerifyToken)
			access.GET("/:accessLink", cfg.AccessHandler.ResolveLink)
		}

		protected := products.Group("")
		protected.Use(cfg.AuthMiddleware.RequireAuth())
		{
			protected.GET("/verify/:productId",
				perm.RequirePermission(permission.ResourceProductAccess, permission.ActionVerify),
				cfg.AccessHandler.Verify)

			protected.GET("",
				perm.RequirePermission(permission.ResourceProduct, permission.ActionRead),
				cfg.ProductHandler.List)
			protected.GET("/:productId",
				perm.RequirePermission(permission.ResourceProduct, permission.ActionRead),
				cfg.ProductHandler.Get)
			protected.POST("",
				perm.RequirePermission(permission.ResourceProduct, permission.ActionCreate),
				cfg.ProductHandler.Create)
			protected.PUT("/:productId",
				perm.RequirePermission(permission.ResourceProduct, permission.ActionUpdate),
				cfg.ProductHandler.Update)
			protected.DELETE("/:productId",
				perm.RequirePermission(permission.ResourceProduct, permission.ActionDelete),
				cfg.ProductHandler.Delete)
		}
	}
}
