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

func verifyStatus(t *testing.T, f *fixture, productID string) string {
	t.Helper()
	result, err := f.verify.Execute(context.Background(), VerifyEntitlementCommand{TenantID: f.tenantID, ProductID: productID})
	require.NoError(t, err)
	assert.Equal(t, result.Status == string(VerifyGranted), result.Granted)
	return result.Status
}

func TestVerify_Lifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	assert.Equal(t, string(VerifyNotGranted), verifyStatus(t, f, "crm"))

	_, err := f.grant.Execute(ctx, GrantEntitlementCommand{TenantID: f.tenantID, ProductID: "crm", Actor: operator("usr_root")})
	require.NoError(t, err)
	assert.Equal(t, string(VerifyGranted), verifyStatus(t, f, "crm"))

	_, err = f.revoke.Execute(ctx, RevokeEntitlementCommand{TenantID: f.tenantID, ProductID: "crm", Actor: operator("usr_root")})
	require.NoError(t, err)
	assert.Equal(t, string(VerifyRevoked), verifyStatus(t, f, "crm"))

	_, err = f.grant.Execute(ctx, GrantEntitlementCommand{TenantID: f.tenantID, ProductID: "crm", Actor: operator("usr_root")})
	require.NoError(t, err)
	assert.Equal(t, string(VerifyGranted), verifyStatus(t, f, "crm"))
}

func TestVerify_IgnoresLegacyMirror(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.tenantRepo.SetLegacyAccess(ctx, f.tenantID, "crm", true))
	assert.Equal(t, string(VerifyNotGranted), verifyStatus(t, f, "crm"))
}

func TestVerify_InactiveProduct(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.grant.Execute(ctx, GrantEntitlementCommand{TenantID: f.tenantID, ProductID: "analytics", Actor: operator("usr_root")})
	require.NoError(t, err)

	p, err := f.productRepo.GetByID(ctx, "analytics")
	require.NoError(t, err)
	inactive := false
	require.NoError(t, p.UpdateDisplay(nil, nil, &inactive))
	require.NoError(t, f.productRepo.Update(ctx, p))

	assert.Equal(t, string(VerifyProductInactive), verifyStatus(t, f, "analytics"))
}

func TestVerify_UsesCache(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	assert.Equal(t, string(VerifyNotGranted), verifyStatus(t, f, "hr"))
	cached, _, err := f.cache.Get(ctx, f.tenantID, "hr")
	require.NoError(t, err)
	require.NotNil(t, cached)

	// grant invalidates the cached negative answer
	_, err = f.grant.Execute(ctx, GrantEntitlementCommand{TenantID: f.tenantID, ProductID: "hr", Actor: operator("usr_root")})
	require.NoError(t, err)
	assert.Equal(t, string(VerifyGranted), verifyStatus(t, f, "hr"))
}

func TestVerify_Validation(t *testing.T) {
	f := newFixture(t)

	_, err := f.verify.Execute(context.Background(), VerifyEntitlementCommand{ProductID: "crm"})
	assert.True(t, errors.IsValidationError(err))
}

func TestRecordAccess_CountsUsage(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.grant.Execute(ctx, GrantEntitlementCommand{TenantID: f.tenantID, ProductID: "crm", Actor: operator("usr_root")})
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		f.clock = f.clock.Add(time.Minute)
		f.record.Execute(ctx, f.tenantID, "crm")
	}

	e, err := f.entRepo.GetByTenantAndProduct(ctx, f.tenantID, "crm")
	require.NoError(t, err)
	assert.Equal(t, int64(5), e.AccessCount())
	assert.Equal(t, 1, e.Usage().DistinctDays())
	assert.Equal(t, 1, e.Usage().DistinctMonths())
	assert.Equal(t, int64(5), e.Usage().TotalActions)
	require.NotNil(t, e.LastAccessed())
	assert.WithinDuration(t, f.clock, *e.LastAccessed(), time.Second)

	assert.Equal(t, int64(5), f.counters(t, "crm").TotalAccessCount)
	active, err := f.productRepo.CountActiveTenants(ctx, "crm")
	require.NoError(t, err)
	assert.Equal(t, int64(1), active)

	f.clock = f.clock.Add(24 * time.Hour)
	f.record.Execute(ctx, f.tenantID, "crm")
	e, err = f.entRepo.GetByTenantAndProduct(ctx, f.tenantID, "crm")
	require.NoError(t, err)
	assert.Equal(t, 2, e.Usage().DistinctDays())
}

func TestRecordAccess_SkipsWithoutGrant(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.record.Execute(ctx, f.tenantID, "hr")
	f.record.Execute(ctx, "", "hr")

	_, err := f.grant.Execute(ctx, GrantEntitlementCommand{TenantID: f.tenantID, ProductID: "hr", Actor: operator("usr_root")})
	require.NoError(t, err)
	_, err = f.revoke.Execute(ctx, RevokeEntitlementCommand{TenantID: f.tenantID, ProductID: "hr", Actor: operator("usr_root")})
	require.NoError(t, err)
	f.record.Execute(ctx, f.tenantID, "hr")

	e, err := f.entRepo.GetByTenantAndProduct(ctx, f.tenantID, "hr")
	require.NoError(t, err)
	assert.Equal(t, int64(0), e.AccessCount())
	assert.Equal(t, int64(0), f.counters(t, "hr").TotalAccessCount)
}

func TestVerify_RecordsUsageWhenGranted(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.grant.Execute(ctx, GrantEntitlementCommand{TenantID: f.tenantID, ProductID: "crm", Actor: operator("usr_root")})
	require.NoError(t, err)

	_, err = f.verify.Execute(ctx, VerifyEntitlementCommand{TenantID: f.tenantID, ProductID: "crm", RecordUsage: true})
	require.NoError(t, err)

	e, err := f.entRepo.GetByTenantAndProduct(ctx, f.tenantID, "crm")
	require.NoError(t, err)
	assert.Equal(t, int64(1), e.AccessCount())
}

func TestListEntitlements(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.grant.Execute(ctx, GrantEntitlementCommand{TenantID: f.tenantID, ProductID: "crm", Actor: operator("usr_root")})
	require.NoError(t, err)
	_, err = f.grant.Execute(ctx, GrantEntitlementCommand{TenantID: f.tenantID, ProductID: "hr", Actor: operator("usr_root")})
	require.NoError(t, err)
	_, err = f.revoke.Execute(ctx, RevokeEntitlementCommand{TenantID: f.tenantID, ProductID: "hr", Actor: operator("usr_root")})
	require.NoError(t, err)

	rows, err := f.list.Execute(ctx, f.tenantID)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	byID := map[string]string{}
	for _, r := range rows {
		byID[r.ProductID] = r.Status
		if r.Entitlement != nil {
			assert.Empty(t, r.Entitlement.AccessToken)
			assert.Equal(t, testAccessURL(r.Entitlement.AccessLink), r.Entitlement.AccessURL)
		}
	}
	assert.Equal(t, string(entitlement.StatusGranted), byID["crm"])
	assert.Equal(t, string(entitlement.StatusRevoked), byID["hr"])
	assert.Equal(t, string(entitlement.StatusAbsent), byID["analytics"])

	_, err = f.list.Execute(ctx, "tnt_missing")
	assert.True(t, errors.IsNotFoundError(err))
}

func TestExportUsage(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.grant.Execute(ctx, GrantEntitlementCommand{TenantID: f.tenantID, ProductID: "crm", Actor: operator("usr_root")})
	require.NoError(t, err)

	out, err := NewExportUsageUseCase(f.list, f.record.logger).Execute(ctx, f.tenantID)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
