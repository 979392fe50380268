package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenworks/backoffice/internal/domain/entitlement"
	"github.com/lumenworks/backoffice/internal/shared/errors"
)

func TestRevoke_TurnsAccessOff(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.grant.Execute(ctx, GrantEntitlementCommand{TenantID: f.tenantID, ProductID: "crm", Actor: operator("usr_root")})
	require.NoError(t, err)

	f.clock = f.clock.Add(time.Hour)
	result, err := f.revoke.Execute(ctx, RevokeEntitlementCommand{TenantID: f.tenantID, ProductID: "crm", Actor: operator("usr_root")})
	require.NoError(t, err)

	assert.False(t, result.HasAccess)
	assert.Equal(t, string(entitlement.StatusRevoked), result.Status)
	require.NotNil(t, result.RevokedAt)
	assert.False(t, f.legacy(t).CRM)

	c := f.counters(t, "crm")
	assert.Equal(t, int64(1), c.TotalEnterprises)
	assert.Equal(t, int64(0), c.ActiveEnterprises)
	assert.Equal(t, []string{entitlement.EventTypeGranted, entitlement.EventTypeRevoked}, f.publisher.types())
}

func TestRevoke_TwiceKeepsFirstStamp(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.grant.Execute(ctx, GrantEntitlementCommand{TenantID: f.tenantID, ProductID: "hr", Actor: operator("usr_root")})
	require.NoError(t, err)
	first, err := f.revoke.Execute(ctx, RevokeEntitlementCommand{TenantID: f.tenantID, ProductID: "hr", Actor: operator("usr_a")})
	require.NoError(t, err)

	f.clock = f.clock.Add(time.Hour)
	second, err := f.revoke.Execute(ctx, RevokeEntitlementCommand{TenantID: f.tenantID, ProductID: "hr", Actor: operator("usr_b")})
	require.NoError(t, err)

	assert.WithinDuration(t, *first.RevokedAt, *second.RevokedAt, time.Second)
	assert.Equal(t, "usr_a", second.RevokedBy)
	assert.Equal(t, first.Version, second.Version)
	assert.Equal(t, int64(0), f.counters(t, "hr").ActiveEnterprises)
	assert.Len(t, f.publisher.types(), 2)
}

func TestRevoke_NeverGranted(t *testing.T) {
	f := newFixture(t)

	_, err := f.revoke.Execute(context.Background(), RevokeEntitlementCommand{TenantID: f.tenantID, ProductID: "crm", Actor: operator("usr_root")})
	assert.True(t, errors.IsNotFoundError(err))
	assert.Empty(t, f.publisher.types())
}

func TestRegenerate_RotatesCredentials(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	granted, err := f.grant.Execute(ctx, GrantEntitlementCommand{TenantID: f.tenantID, ProductID: "crm", Actor: operator("usr_root")})
	require.NoError(t, err)

	rotated, err := f.regenerate.Execute(ctx, RegenerateEntitlementCommand{TenantID: f.tenantID, ProductID: "crm", Actor: operator("usr_root")})
	require.NoError(t, err)
	assert.NotEqual(t, granted.AccessLink, rotated.AccessLink)
	assert.NotEqual(t, granted.AccessToken, rotated.AccessToken)
	assert.True(t, rotated.HasAccess)

	old, err := f.lookup.ByLink(ctx, granted.AccessLink)
	require.NoError(t, err)
	assert.Equal(t, string(VerifyNotGranted), old.Status)
	assert.Nil(t, old.Product)

	oldToken, err := f.lookup.ByToken(ctx, granted.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, string(VerifyNotGranted), oldToken.Status)

	current, err := f.lookup.ByLink(ctx, rotated.AccessLink)
	require.NoError(t, err)
	assert.Equal(t, string(VerifyGranted), current.Status)

	byToken, err := f.lookup.ByToken(ctx, rotated.AccessToken)
	require.NoError(t, err)
	require.NotNil(t, byToken.Product)
	assert.Equal(t, "crm", byToken.Product.ProductID)
	assert.Equal(t, f.tenantID, byToken.Product.TenantID)

	assert.Equal(t, entitlement.EventTypeRegenerated, f.publisher.types()[1])
}

func TestRegenerate_Guards(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.regenerate.Execute(ctx, RegenerateEntitlementCommand{TenantID: f.tenantID, ProductID: "crm", Actor: operator("usr_root")})
	assert.True(t, errors.IsNotFoundError(err))

	_, err = f.grant.Execute(ctx, GrantEntitlementCommand{TenantID: f.tenantID, ProductID: "crm", Actor: operator("usr_root")})
	require.NoError(t, err)
	_, err = f.revoke.Execute(ctx, RevokeEntitlementCommand{TenantID: f.tenantID, ProductID: "crm", Actor: operator("usr_root")})
	require.NoError(t, err)

	_, err = f.regenerate.Execute(ctx, RegenerateEntitlementCommand{TenantID: f.tenantID, ProductID: "crm", Actor: operator("usr_root")})
	assert.True(t, errors.IsValidationError(err))
}
