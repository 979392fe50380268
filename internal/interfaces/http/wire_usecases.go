package http

import (
	entitlementApp "github.com/lumenworks/backoffice/internal/application/entitlement"
	entitlementUsecases "github.com/lumenworks/backoffice/internal/application/entitlement/usecases"
	"github.com/lumenworks/backoffice/internal/domain/shared/services"
)

// newEntitlementService builds the entitlement use cases around the shared
// credential generator, verify cache and event dispatcher.
func (c *Container) newEntitlementService() *entitlementApp.ServiceDDD {
	ec := c.cfg.Entitlement
	settings := entitlementUsecases.Settings{
		StaleGrantWindow:  ec.StaleGrantWindow(),
		LinkRetries:       ec.LinkRetries,
		OptimisticRetries: ec.OptimisticRetries,
	}
	generator := services.NewCredentialGenerator(services.CredentialOptions{
		TokenBytes:    ec.TokenBytes,
		SuffixBytes:   ec.SuffixBytes,
		MaxSlugLength: ec.MaxSlugLength,
	})
	accessURL := entitlementUsecases.AccessURLBuilder(c.cfg.Server.AccessURL)
	r := c.repos

	grant := entitlementUsecases.NewGrantEntitlementUseCase(
		r.entitlementRepo, r.tenantRepo, r.productRepo, c.txManager, generator,
		c.verifyCache, c.dispatcher, accessURL, settings, c.log.Named("entitlement.grant"))
	revoke := entitlementUsecases.NewRevokeEntitlementUseCase(
		r.entitlementRepo, r.tenantRepo, r.productRepo, c.txManager,
		c.verifyCache, c.dispatcher, accessURL, settings, c.log.Named("entitlement.revoke"))
	regenerate := entitlementUsecases.NewRegenerateEntitlementUseCase(
		r.entitlementRepo, r.tenantRepo, c.txManager, generator,
		c.verifyCache, c.dispatcher, accessURL, settings, c.log.Named("entitlement.regenerate"))
	recorder := entitlementUsecases.NewRecordAccessUseCase(
		r.entitlementRepo, r.tenantRepo, r.productRepo, settings, c.log.Named("entitlement.usage"))
	verify := entitlementUsecases.NewVerifyEntitlementUseCase(
		r.entitlementRepo, r.productRepo, c.verifyCache, recorder, c.log.Named("entitlement.verify"))
	lookup := entitlementUsecases.NewLookupAccessUseCase(r.entitlementRepo, r.productRepo, c.log.Named("entitlement.lookup"))
	list := entitlementUsecases.NewListEntitlementsUseCase(
		r.entitlementRepo, r.tenantRepo, r.productRepo, accessURL, c.log.Named("entitlement.list"))
	export := entitlementUsecases.NewExportUsageUseCase(list, c.log.Named("entitlement.export"))

	return entitlementApp.NewServiceDDD(grant, revoke, regenerate, verify, lookup, list, export, c.log)
}
