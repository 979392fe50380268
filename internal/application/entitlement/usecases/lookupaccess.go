package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/lumenworks/backoffice/internal/application/entitlement/dto"
	"github.com/lumenworks/backoffice/internal/domain/entitlement"
	"github.com/lumenworks/backoffice/internal/domain/product"
	"github.com/lumenworks/backoffice/internal/domain/shared/services"
	"github.com/lumenworks/backoffice/internal/infrastructure/metrics"
	"github.com/lumenworks/backoffice/internal/shared/errors"
	"github.com/lumenworks/backoffice/internal/shared/logger"
)

// LookupAccessUseCase resolves the public credentials (access link or bearer
// token) to a product summary. It is reachable without a session.
type LookupAccessUseCase struct {
	entitlementRepo entitlement.Repository
	productRepo     product.Repository
	logger          logger.Interface
}

func NewLookupAccessUseCase(
	entitlementRepo entitlement.Repository,
	productRepo product.Repository,
	logger logger.Interface,
) *LookupAccessUseCase {
	return &LookupAccessUseCase{
		entitlementRepo: entitlementRepo,
		productRepo:     productRepo,
		logger:          logger,
	}
}

// ByLink returns a summary only when the link is current, access is granted
// and the product is active. Otherwise Status says why.
func (uc *LookupAccessUseCase) ByLink(ctx context.Context, link string) (*dto.AccessLookupDTO, error) {
	link = strings.TrimSpace(link)
	if link == "" {
		return nil, errors.NewValidationError("access link is required")
	}

	e, err := uc.entitlementRepo.GetByAccessLink(ctx, link)
	if err != nil {
		uc.logger.Errorw("failed to look up access link", "error", err, "access_link", link)
		return nil, fmt.Errorf("failed to look up access link: %w", err)
	}
	return uc.summarize(ctx, e)
}

// ByToken is the same check keyed by the bearer token. The token is hashed
// before lookup and never logged.
func (uc *LookupAccessUseCase) ByToken(ctx context.Context, token string) (*dto.AccessLookupDTO, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, errors.NewValidationError("access token is required")
	}

	e, err := uc.entitlementRepo.GetByTokenHash(ctx, services.HashToken(token))
	if err != nil {
		uc.logger.Errorw("failed to look up access token", "error", err)
		return nil, fmt.Errorf("failed to look up access token: %w", err)
	}
	return uc.summarize(ctx, e)
}

func (uc *LookupAccessUseCase) summarize(ctx context.Context, e *entitlement.Entitlement) (*dto.AccessLookupDTO, error) {
	status, p, err := classify(ctx, uc.productRepo, e)
	if err != nil {
		return nil, err
	}
	metrics.ObserveVerification(string(status))

	result := &dto.AccessLookupDTO{Status: string(status)}
	if status == VerifyGranted {
		result.Product = &dto.ProductSummaryDTO{
			ProductID:   p.ID(),
			Name:        p.Name(),
			Description: p.Description(),
			TenantID:    e.TenantID(),
		}
	}
	return result, nil
}
