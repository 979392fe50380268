package http

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "github.com/lumenworks/backoffice/docs"
	"github.com/lumenworks/backoffice/internal/infrastructure/config"
	"github.com/lumenworks/backoffice/internal/infrastructure/metrics"
	"github.com/lumenworks/backoffice/internal/interfaces/http/middleware"
	"github.com/lumenworks/backoffice/internal/interfaces/http/routes"
	"github.com/lumenworks/backoffice/internal/shared/logger"
)

// Router represents the HTTP router configuration
type Router struct {
	container *Container
	engine    *gin.Engine
	logger    logger.Interface
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(ctx context.Context, cfg *config.Config, db *gorm.DB, log logger.Interface) (*Router, error) {
	c, err := NewContainer(ctx, cfg, db, log)
	if err != nil {
		return nil, err
	}
	return &Router{container: c, engine: c.engine, logger: log}, nil
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes(cfg *config.Config) {
	c := r.container
	h := c.hdlrs

	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.CustomLogger(r.logger))
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())
	if cfg.Metrics.Enabled {
		r.engine.Use(metrics.Middleware())
		r.engine.GET("/metrics", metrics.Handler())
	}

	r.engine.GET("/health", h.healthHandler.Check)
	if cfg.Server.Mode != "release" {
		r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	routes.SetupEntitlementRoutes(r.engine, &routes.EntitlementRouteConfig{
		EntitlementHandler:   h.entitlementHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})
	routes.SetupProductRoutes(r.engine, &routes.ProductRouteConfig{
		ProductHandler:       h.productHandler,
		AccessHandler:        h.accessHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
		AccessLinkLimiter:    c.accessLinkLimiter,
	})
	routes.SetupTenantRoutes(r.engine, &routes.TenantRouteConfig{
		TenantHandler:        h.tenantHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})
	routes.SetupQuotationRoutes(r.engine, &routes.QuotationRouteConfig{
		QuotationHandler:     h.quotationHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})
	routes.SetupNotificationRoutes(r.engine, &routes.NotificationRouteConfig{
		NotificationHandler:  h.notificationHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Shutdown stops the event dispatcher and closes Redis and the broker.
func (r *Router) Shutdown() {
	r.container.Shutdown()
}
