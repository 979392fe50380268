package usecases

import (
	"context"
	"fmt"

	"github.com/lumenworks/backoffice/internal/application/product/dto"
	"github.com/lumenworks/backoffice/internal/domain/product"
	"github.com/lumenworks/backoffice/internal/infrastructure/seed"
	"github.com/lumenworks/backoffice/internal/shared/logger"
)

type SeedCatalogUseCase struct {
	repo   product.Repository
	logger logger.Interface
}

func NewSeedCatalogUseCase(repo product.Repository, logger logger.Interface) *SeedCatalogUseCase {
	return &SeedCatalogUseCase{repo: repo, logger: logger}
}

// Execute creates missing products and refreshes display metadata of existing
// ones. Counters are never touched, so re-running is safe.
func (uc *SeedCatalogUseCase) Execute(ctx context.Context, entries []seed.CatalogEntry) (*dto.SeedResult, error) {
	result := &dto.SeedResult{Created: []string{}, Updated: []string{}}
	for _, entry := range entries {
		existing, err := uc.repo.GetByID(ctx, entry.ID)
		if err != nil {
			return result, fmt.Errorf("failed to get product %s: %w", entry.ID, err)
		}

		active := entry.IsActive()
		if existing == nil {
			p, err := product.NewProduct(entry.ID, entry.Name, entry.Description)
			if err != nil {
				return result, fmt.Errorf("invalid catalog entry %s: %w", entry.ID, err)
			}
			if !active {
				if err := p.UpdateDisplay(nil, nil, &active); err != nil {
					return result, err
				}
			}
			if err := uc.repo.Create(ctx, p); err != nil {
				return result, fmt.Errorf("failed to create product %s: %w", entry.ID, err)
			}
			result.Created = append(result.Created, entry.ID)
			continue
		}

		name, description := entry.Name, entry.Description
		if err := existing.UpdateDisplay(&name, &description, &active); err != nil {
			return result, fmt.Errorf("invalid catalog entry %s: %w", entry.ID, err)
		}
		if err := uc.repo.Update(ctx, existing); err != nil {
			return result, fmt.Errorf("failed to update product %s: %w", entry.ID, err)
		}
		result.Updated = append(result.Updated, entry.ID)
	}

	uc.logger.Infow("product catalog seeded", "created", len(result.Created), "updated", len(result.Updated))
	return result, nil
}
