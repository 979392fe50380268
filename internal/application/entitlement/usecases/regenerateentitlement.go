package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/lumenworks/backoffice/internal/application/entitlement/dto"
	"github.com/lumenworks/backoffice/internal/domain/entitlement"
	"github.com/lumenworks/backoffice/internal/domain/shared/events"
	"github.com/lumenworks/backoffice/internal/domain/shared/services"
	"github.com/lumenworks/backoffice/internal/domain/tenant"
	"github.com/lumenworks/backoffice/internal/infrastructure/metrics"
	"github.com/lumenworks/backoffice/internal/shared/biztime"
	"github.com/lumenworks/backoffice/internal/shared/errors"
	"github.com/lumenworks/backoffice/internal/shared/logger"
)

type RegenerateEntitlementCommand struct {
	TenantID  string
	ProductID string
	Actor     Actor
}

type RegenerateEntitlementUseCase struct {
	entitlementRepo entitlement.Repository
	tenantRepo      tenant.Repository
	txManager       TransactionManager
	generator       services.CredentialGenerator
	verifyCache     VerifyCache
	publisher       events.EventPublisher
	accessURL       AccessURLBuilder
	settings        Settings
	now             func() time.Time
	logger          logger.Interface
}

func NewRegenerateEntitlementUseCase(
	entitlementRepo entitlement.Repository,
	tenantRepo tenant.Repository,
	txManager TransactionManager,
	generator services.CredentialGenerator,
	verifyCache VerifyCache,
	publisher events.EventPublisher,
	accessURL AccessURLBuilder,
	settings Settings,
	logger logger.Interface,
) *RegenerateEntitlementUseCase {
	return &RegenerateEntitlementUseCase{
		entitlementRepo: entitlementRepo,
		tenantRepo:      tenantRepo,
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

// Execute rotates the token and link. The previous pair stops working as soon
// as the transaction commits.
func (uc *RegenerateEntitlementUseCase) Execute(ctx context.Context, cmd RegenerateEntitlementCommand) (*dto.EntitlementDTO, error) {
	result, err := uc.execute(ctx, cmd)
	metrics.ObserveEntitlementOp("regenerate", err)
	return result, err
}

func (uc *RegenerateEntitlementUseCase) execute(ctx context.Context, cmd RegenerateEntitlementCommand) (*dto.EntitlementDTO, error) {
	if err := requireOperator(cmd.Actor); err != nil {
		return nil, err
	}
	if err := validatePair(cmd.TenantID, cmd.ProductID); err != nil {
		return nil, err
	}

	t, err := uc.tenantRepo.GetByID(ctx, cmd.TenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}
	if t == nil {
		return nil, errors.NewNotFoundError("tenant not found", cmd.TenantID)
	}

	var (
		e     *entitlement.Entitlement
		token string
	)
	for attempt := 1; attempt <= uc.settings.attempts(); attempt++ {
		token, err = uc.generator.NewToken()
		if err != nil {
			return nil, fmt.Errorf("failed to generate access token: %w", err)
		}
		e, err = uc.regenerateOnce(ctx, t, cmd, token)
		if err == nil || !retryable(err) {
			break
		}
		uc.logger.Warnw("regenerate lost a race, retrying", "error", err, "tenant_id", cmd.TenantID, "product_id", cmd.ProductID, "attempt", attempt)
	}
	if err != nil {
		return nil, toAppError(err)
	}

	if err := uc.verifyCache.Invalidate(ctx, e.TenantID(), e.ProductID()); err != nil {
		uc.logger.Warnw("failed to invalidate verify cache", "error", err, "tenant_id", e.TenantID(), "product_id", e.ProductID())
	}

	accessURL := uc.accessURL(e.AccessLink())
	event := entitlement.NewChangedEvent(entitlement.EventTypeRegenerated, e, accessURL, cmd.Actor.UserID, false, uc.now())
	if err := uc.publisher.Publish(event); err != nil {
		uc.logger.Warnw("failed to publish entitlement event", "error", err, "event_type", event.EventType)
	}

	uc.logger.Infow("entitlement credentials regenerated", "tenant_id", e.TenantID(), "product_id", e.ProductID(), "access_link", e.AccessLink())

	result := dto.ToEntitlementDTO(e, accessURL)
	result.AccessToken = token
	return result, nil
}

func (uc *RegenerateEntitlementUseCase) regenerateOnce(ctx context.Context, t *tenant.Tenant, cmd RegenerateEntitlementCommand, token string) (*entitlement.Entitlement, error) {
	var e *entitlement.Entitlement
	err := uc.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		var err error
		e, err = uc.entitlementRepo.GetByTenantAndProduct(ctx, cmd.TenantID, cmd.ProductID)
		if err != nil {
			return fmt.Errorf("failed to get entitlement: %w", err)
		}
		if e == nil {
			return entitlement.ErrEntitlementNotFound
		}
		if !e.HasAccess() {
			return entitlement.ErrGrantRequired
		}

		link, err := services.GenerateUniqueLink(uc.generator, t.Name(), uc.settings.LinkRetries, func(l string) (bool, error) {
			return uc.entitlementRepo.ExistsByAccessLink(ctx, l)
		})
		if err != nil {
			return err
		}

		creds := entitlement.Credentials{TokenHash: uc.generator.HashToken(token), AccessLink: link}
		if err := e.Regenerate(creds, uc.now()); err != nil {
			return err
		}
		return uc.entitlementRepo.Update(ctx, e)
	})
	return e, err
}
