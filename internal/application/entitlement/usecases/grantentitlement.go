package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/lumenworks/backoffice/internal/application/entitlement/dto"
	"github.com/lumenworks/backoffice/internal/domain/entitlement"
	"github.com/lumenworks/backoffice/internal/domain/product"
	"github.com/lumenworks/backoffice/internal/domain/shared/events"
	"github.com/lumenworks/backoffice/internal/domain/shared/services"
	"github.com/lumenworks/backoffice/internal/domain/tenant"
	"github.com/lumenworks/backoffice/internal/infrastructure/metrics"
	"github.com/lumenworks/backoffice/internal/shared/biztime"
	"github.com/lumenworks/backoffice/internal/shared/errors"
	"github.com/lumenworks/backoffice/internal/shared/logger"
)

type GrantEntitlementCommand struct {
	TenantID  string
	ProductID string
	Actor     Actor
}

type GrantEntitlementUseCase struct {
	entitlementRepo entitlement.Repository
	tenantRepo      tenant.Repository
	productRepo     product.Repository
	txManager       TransactionManager
	generator       services.CredentialGenerator
	verifyCache     VerifyCache
	publisher       events.EventPublisher
	accessURL       AccessURLBuilder
	settings        Settings
	now             func() time.Time
	logger          logger.Interface
}

func NewGrantEntitlementUseCase(
	entitlementRepo entitlement.Repository,
	tenantRepo tenant.Repository,
	productRepo product.Repository,
	txManager TransactionManager,
	generator services.CredentialGenerator,
	verifyCache VerifyCache,
	publisher events.EventPublisher,
	accessURL AccessURLBuilder,
	settings Settings,
	logger logger.Interface,
) *GrantEntitlementUseCase {
	return &GrantEntitlementUseCase{
		entitlementRepo: entitlementRepo,
		tenantRepo:      tenantRepo,
		productRepo:     productRepo,
		txManager:       txManager,
		generator:       generator,
		verifyCache:     verifyCache,
		publisher:       publisher,
		accessURL:       accessURL,
		settings:        settings,
		now:             biztime.NowUTC,
		logger:          logger,
	}
}

type grantOutcome struct {
	entitlement *entitlement.Entitlement
	created     bool
}

func (uc *GrantEntitlementUseCase) Execute(ctx context.Context, cmd GrantEntitlementCommand) (*dto.EntitlementDTO, error) {
	result, err := uc.execute(ctx, cmd)
	metrics.ObserveEntitlementOp("grant", err)
	return result, err
}

func (uc *GrantEntitlementUseCase) execute(ctx context.Context, cmd GrantEntitlementCommand) (*dto.EntitlementDTO, error) {
	if err := requireOperator(cmd.Actor); err != nil {
		return nil, err
	}
	if err := validatePair(cmd.TenantID, cmd.ProductID); err != nil {
		return nil, err
	}

	t, err := uc.tenantRepo.GetByID(ctx, cmd.TenantID)
	if err != nil {
		uc.logger.Errorw("failed to get tenant", "error", err, "tenant_id", cmd.TenantID)
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}
	if t == nil {
		return nil, errors.NewNotFoundError("tenant not found", cmd.TenantID)
	}

	p, err := uc.productRepo.GetByID(ctx, cmd.ProductID)
	if err != nil {
		uc.logger.Errorw("failed to get product", "error", err, "product_id", cmd.ProductID)
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if p == nil {
		return nil, errors.NewNotFoundError("product not found", cmd.ProductID)
	}

	var (
		outcome grantOutcome
		token   string
	)
	for attempt := 1; attempt <= uc.settings.attempts(); attempt++ {
		token, err = uc.generator.NewToken()
		if err != nil {
			return nil, fmt.Errorf("failed to generate access token: %w", err)
		}
		outcome, err = uc.grantOnce(ctx, t, cmd, token)
		if err == nil || !retryable(err) {
			break
		}
		uc.logger.Warnw("grant lost a race, retrying",
			"error", err,
			"tenant_id", cmd.TenantID,
			"product_id", cmd.ProductID,
			"attempt", attempt,
		)
	}
	if err != nil {
		uc.logger.Errorw("failed to grant entitlement", "error", err, "tenant_id", cmd.TenantID, "product_id", cmd.ProductID)
		return nil, toAppError(err)
	}

	e := outcome.entitlement
	accessURL := uc.accessURL(e.AccessLink())
	uc.afterCommit(ctx, e, accessURL, cmd.Actor.UserID, outcome.created)

	uc.logger.Infow("entitlement granted",
		"tenant_id", e.TenantID(),
		"product_id", e.ProductID(),
		"access_link", e.AccessLink(),
		"created", outcome.created,
		"granted_by", cmd.Actor.UserID,
	)

	result := dto.ToEntitlementDTO(e, accessURL)
	result.AccessToken = token
	return result, nil
}

// grantOnce runs one read-modify-write inside a transaction so the record,
// the product counters and the legacy mirror commit together.
func (uc *GrantEntitlementUseCase) grantOnce(ctx context.Context, t *tenant.Tenant, cmd GrantEntitlementCommand, token string) (grantOutcome, error) {
	var outcome grantOutcome
	err := uc.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		now := uc.now()

		link, err := services.GenerateUniqueLink(uc.generator, t.Name(), uc.settings.LinkRetries, func(l string) (bool, error) {
			return uc.entitlementRepo.ExistsByAccessLink(ctx, l)
		})
		if err != nil {
			return err
		}
		creds := entitlement.Credentials{TokenHash: uc.generator.HashToken(token), AccessLink: link}

		existing, err := uc.entitlementRepo.GetByTenantAndProduct(ctx, cmd.TenantID, cmd.ProductID)
		if err != nil {
			return fmt.Errorf("failed to get entitlement: %w", err)
		}

		if existing == nil {
			e, err := entitlement.NewEntitlement(cmd.TenantID, cmd.ProductID, cmd.Actor.UserID, creds, now)
			if err != nil {
				return errors.NewValidationError(err.Error())
			}
			if err := uc.entitlementRepo.Create(ctx, e); err != nil {
				return err
			}
			if err := uc.productRepo.IncrementTotalEnterprises(ctx, cmd.ProductID); err != nil {
				return fmt.Errorf("failed to update product counters: %w", err)
			}
			if err := uc.productRepo.AdjustActiveEnterprises(ctx, cmd.ProductID, 1); err != nil {
				return fmt.Errorf("failed to update product counters: %w", err)
			}
			outcome = grantOutcome{entitlement: e, created: true}
		} else {
			activated, err := existing.Grant(cmd.Actor.UserID, creds, now, uc.settings.StaleGrantWindow)
			if err != nil {
				return errors.NewValidationError(err.Error())
			}
			if err := uc.entitlementRepo.Update(ctx, existing); err != nil {
				return err
			}
			if activated {
				if err := uc.productRepo.AdjustActiveEnterprises(ctx, cmd.ProductID, 1); err != nil {
					return fmt.Errorf("failed to update product counters: %w", err)
				}
			}
			outcome = grantOutcome{entitlement: existing}
		}

		if tenant.IsLegacyMirrored(cmd.ProductID) {
			if err := uc.tenantRepo.SetLegacyAccess(ctx, cmd.TenantID, cmd.ProductID, true); err != nil {
				return fmt.Errorf("failed to sync legacy access flag: %w", err)
			}
		}
		return nil
	})
	return outcome, err
}

func (uc *GrantEntitlementUseCase) afterCommit(ctx context.Context, e *entitlement.Entitlement, accessURL, actor string, created bool) {
	if err := uc.verifyCache.Invalidate(ctx, e.TenantID(), e.ProductID()); err != nil {
		uc.logger.Warnw("failed to invalidate verify cache", "error", err, "tenant_id", e.TenantID(), "product_id", e.ProductID())
	}
	event := entitlement.NewChangedEvent(entitlement.EventTypeGranted, e, accessURL, actor, created, uc.now())
	if err := uc.publisher.Publish(event); err != nil {
		uc.logger.Warnw("failed to publish entitlement event", "error", err, "event_type", event.EventType)
	}
}
