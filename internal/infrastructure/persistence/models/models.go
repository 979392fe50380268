// Package models holds the gorm persistence models.
package models

// All lists every model, in dependency order, for AutoMigrate.
func All() []interface{} {
	return []interface{}{
		&TenantModel{},
		&ProductModel{},
		&ProductActiveTenantModel{},
		&ProductEntitlementModel{},
		&QuotationModel{},
		&NotificationModel{},
	}
}
