package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenworks/backoffice/internal/domain/quotation"
	vo "github.com/lumenworks/backoffice/internal/domain/quotation/valueobjects"
	"github.com/lumenworks/backoffice/internal/shared/logger"
)

func TestQuotationRepository_TransitionPersists(t *testing.T) {
	repo := NewQuotationRepository(newTestDB(t), logger.NewNopLogger())
	ctx := context.Background()

	q, err := quotation.NewQuotation("tnt_1", "Onboarding", "", 1000, "eur")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, q))

	price := int64(900)
	require.NoError(t, q.TransitionTo(quotation.Transition{Target: vo.StatusApproved, FinalPrice: &price}, now))
	require.NoError(t, repo.Update(ctx, q))

	got, err := repo.GetByID(ctx, q.ID())
	require.NoError(t, err)
	assert.Equal(t, vo.StatusApproved, got.Status())
	assert.Equal(t, int64(900), *got.FinalPrice())
	assert.Equal(t, "EUR", got.Currency())

	stale, err := quotation.ReconstructQuotation(quotation.ReconstructParams{
		ID: q.ID(), TenantID: "tnt_1", Status: "pending", Version: 1,
	})
	require.NoError(t, err)
	require.NoError(t, stale.TransitionTo(quotation.Transition{Target: vo.StatusRejected, RejectionReason: "late"}, now))
	assert.ErrorIs(t, repo.Update(ctx, stale), quotation.ErrConcurrentModification)
}

func TestQuotationRepository_ListFilters(t *testing.T) {
	repo := NewQuotationRepository(newTestDB(t), logger.NewNopLogger())
	ctx := context.Background()

	for _, tenantID := range []string{"tnt_1", "tnt_1", "tnt_2"} {
		q, err := quotation.NewQuotation(tenantID, "Service", "", 10, "")
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, q))
	}

	own, total, err := repo.List(ctx, quotation.ListFilter{TenantID: "tnt_1"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, own, 2)

	approved := vo.StatusApproved
	none, total, err := repo.List(ctx, quotation.ListFilter{Status: &approved})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, none)
}
