package http

import (
	"github.com/lumenworks/backoffice/internal/interfaces/http/handlers"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	// Entitlements & access
	entitlementHandler *handlers.EntitlementHandler
	accessHandler      *handlers.AccessHandler

	// Catalog & tenants
	productHandler *handlers.ProductHandler
	tenantHandler  *handlers.TenantHandler

	// Quotation
	quotationHandler *handlers.QuotationHandler

	// Notification
	notificationHandler *handlers.NotificationHandler

	// System
	healthHandler *handlers.HealthHandler
}
