package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenworks/backoffice/internal/domain/entitlement"
	"github.com/lumenworks/backoffice/internal/shared/logger"
)

var now = time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)

func newEntitlement(t *testing.T, tenantID, productID, link string) *entitlement.Entitlement {
	t.Helper()
	e, err := entitlement.NewEntitlement(tenantID, productID, "op-1",
		entitlement.Credentials{TokenHash: "hash-" + link, AccessLink: link}, now)
	require.NoError(t, err)
	return e
}

func TestEntitlementRepository_CreateAndLookup(t *testing.T) {
	repo := NewEntitlementRepository(newTestDB(t), logger.NewNopLogger())
	ctx := context.Background()

	e := newEntitlement(t, "tnt_1", "crm", "acme-crm-00000001")
	require.NoError(t, repo.Create(ctx, e))
	assert.NotZero(t, e.ID())

	got, err := repo.GetByTenantAndProduct(ctx, "tnt_1", "crm")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.HasAccess())
	assert.Equal(t, "acme-crm-00000001", got.AccessLink())

	byLink, err := repo.GetByAccessLink(ctx, "acme-crm-00000001")
	require.NoError(t, err)
	assert.Equal(t, e.ID(), byLink.ID())

	byToken, err := repo.GetByTokenHash(ctx, "hash-acme-crm-00000001")
	require.NoError(t, err)
	assert.Equal(t, e.ID(), byToken.ID())

	missing, err := repo.GetByTenantAndProduct(ctx, "tnt_1", "hr")
	require.NoError(t, err)
	assert.Nil(t, missing)

	exists, err := repo.ExistsByAccessLink(ctx, "acme-crm-00000001")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestEntitlementRepository_UniqueIndexes(t *testing.T) {
	repo := NewEntitlementRepository(newTestDB(t), logger.NewNopLogger())
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newEntitlement(t, "tnt_1", "crm", "link-1")))

	err := repo.Create(ctx, newEntitlement(t, "tnt_2", "crm", "link-1"))
	assert.ErrorIs(t, err, entitlement.ErrAccessLinkTaken)

	err = repo.Create(ctx, newEntitlement(t, "tnt_1", "crm", "link-2"))
	assert.ErrorIs(t, err, entitlement.ErrEntitlementExists)
}

func TestEntitlementRepository_OptimisticLock(t *testing.T) {
	repo := NewEntitlementRepository(newTestDB(t), logger.NewNopLogger())
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newEntitlement(t, "tnt_1", "crm", "link-1")))

	a, err := repo.GetByTenantAndProduct(ctx, "tnt_1", "crm")
	require.NoError(t, err)
	b, err := repo.GetByTenantAndProduct(ctx, "tnt_1", "crm")
	require.NoError(t, err)

	require.True(t, a.RecordAccess("2026-06-01", "2026-06", now))
	require.NoError(t, repo.Update(ctx, a))

	require.True(t, b.Revoke("op-2", now))
	assert.ErrorIs(t, repo.Update(ctx, b), entitlement.ErrConcurrentModification)

	fresh, err := repo.GetByTenantAndProduct(ctx, "tnt_1", "crm")
	require.NoError(t, err)
	assert.True(t, fresh.HasAccess())
	assert.Equal(t, int64(1), fresh.AccessCount())
	assert.Equal(t, []string{"2026-06-01"}, fresh.Usage().Days)
	assert.Equal(t, 2, fresh.Version())
}

func TestEntitlementRepository_UpdateLinkCollision(t *testing.T) {
	repo := NewEntitlementRepository(newTestDB(t), logger.NewNopLogger())
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newEntitlement(t, "tnt_1", "crm", "link-1")))
	require.NoError(t, repo.Create(ctx, newEntitlement(t, "tnt_1", "hr", "link-2")))

	e, err := repo.GetByTenantAndProduct(ctx, "tnt_1", "hr")
	require.NoError(t, err)
	require.NoError(t, e.Regenerate(entitlement.Credentials{TokenHash: "x", AccessLink: "link-1"}, now))
	assert.ErrorIs(t, repo.Update(ctx, e), entitlement.ErrAccessLinkTaken)
}

func TestEntitlementRepository_ListAndCount(t *testing.T) {
	repo := NewEntitlementRepository(newTestDB(t), logger.NewNopLogger())
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newEntitlement(t, "tnt_1", "hr", "l1")))
	require.NoError(t, repo.Create(ctx, newEntitlement(t, "tnt_1", "crm", "l2")))
	require.NoError(t, repo.Create(ctx, newEntitlement(t, "tnt_2", "crm", "l3")))

	revoked, err := repo.GetByTenantAndProduct(ctx, "tnt_2", "crm")
	require.NoError(t, err)
	revoked.Revoke("op", now)
	require.NoError(t, repo.Update(ctx, revoked))

	list, err := repo.ListByTenant(ctx, "tnt_1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "crm", list[0].ProductID())

	count, err := repo.CountGrantedByProduct(ctx, "crm")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
