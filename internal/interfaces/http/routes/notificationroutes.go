package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/lumenworks/backoffice/internal/infrastructure/permission"
	"github.com/lumenworks/backoffice/internal/interfaces/http/handlers"
	"github.com/lumenworks/backoffice/internal/interfaces/http/middleware"
)

type NotificationRouteConfig struct {
	NotificationHandler  *handlers.NotificationHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupNotificationRoutes(engine *gin.Engine, config *NotificationRouteConfig) {
	perm := config.PermissionMiddleware

	notifications := engine.Group("/notifications")
	notifications.Use(config.AuthMiddleware.RequireAuth())
	{
		// Register specific paths BEFORE parameterized paths
		notifications.GET("",
			perm.RequirePermission(permission.ResourceNotification, permission.ActionRead),
			config.NotificationHandler.List)
		notifications.GET("/unread-count",
			perm.RequirePermission(permission.ResourceNotification, permission.ActionRead),
			config.NotificationHandler.UnreadCount)

		notifications.PUT("/:id/read",
			perm.RequirePermission(permission.ResourceNotification, permission.ActionUpdate),
			config.NotificationHandler.MarkAsRead)
	}
}
