package constants

const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Context keys set by the auth middleware
	ContextKeyUserID    = "user_id"
	ContextKeyUserRole  = "user_role"
	ContextKeyTenantID  = "tenant_id"
	ContextKeyRequestID = "request_id"

	// Database table names
	TableTenants              = "tenants"
	TableProducts             = "products"
	TableProductActiveTenants = "product_active_tenants"
	TableProductEntitlements  = "product_entitlements"
	TableQuotations           = "quotations"
	TableNotifications        = "notifications"
)
