package http

import (
	"gorm.io/gorm"

	"github.com/lumenworks/backoffice/internal/domain/entitlement"
	"github.com/lumenworks/backoffice/internal/domain/notification"
	"github.com/lumenworks/backoffice/internal/domain/product"
	"github.com/lumenworks/backoffice/internal/domain/quotation"
	"github.com/lumenworks/backoffice/internal/domain/tenant"
	"github.com/lumenworks/backoffice/internal/infrastructure/repository"
	"github.com/lumenworks/backoffice/internal/shared/logger"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	tenantRepo       tenant.Repository
	productRepo      product.Repository
	entitlementRepo  entitlement.Repository
	quotationRepo    quotation.Repository
	notificationRepo notification.Repository
}

func newRepositories(db *gorm.DB, log logger.Interface) *repositories {
	return &repositories{
		tenantRepo:       repository.NewTenantRepository(db, log),
		productRepo:      repository.NewProductRepository(db, log),
		entitlementRepo:  repository.NewEntitlementRepository(db, log),
		quotationRepo:    repository.NewQuotationRepository(db, log),
		notificationRepo: repository.NewNotificationRepository(db, log),
	}
}
