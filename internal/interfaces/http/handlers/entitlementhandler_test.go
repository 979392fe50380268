package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenworks/backoffice/internal/application/entitlement/dto"
	"github.com/lumenworks/backoffice/internal/application/entitlement/usecases"
	"github.com/lumenworks/backoffice/internal/interfaces/http/handlers/testutil"
	"github.com/lumenworks/backoffice/internal/shared/authorization"
	"github.com/lumenworks/backoffice/internal/shared/errors"
)

type mockEntitlementService struct {
	grantFn      func(ctx context.Context, tenantID, productID string, actor usecases.Actor) (*dto.EntitlementDTO, error)
	revokeFn     func(ctx context.Context, tenantID, productID string, actor usecases.Actor) (*dto.EntitlementDTO, error)
	regenerateFn func(ctx context.Context, tenantID, productID string, actor usecases.Actor) (*dto.EntitlementDTO, error)
	listFn       func(ctx context.Context, tenantID string) ([]*dto.ProductEntitlementDTO, error)
	exportFn     func(ctx context.Context, tenantID string) ([]byte, error)
}

func (m *mockEntitlementService) Grant(ctx context.Context, tenantID, productID string, actor usecases.Actor) (*dto.EntitlementDTO, error) {
	return m.grantFn(ctx, tenantID, productID, actor)
}

func (m *mockEntitlementService) Revoke(ctx context.Context, tenantID, productID string, actor usecases.Actor) (*dto.EntitlementDTO, error) {
	return m.revokeFn(ctx, tenantID, productID, actor)
}

func (m *mockEntitlementService) Regenerate(ctx context.Context, tenantID, productID string, actor usecases.Actor) (*dto.EntitlementDTO, error) {
	return m.regenerateFn(ctx, tenantID, productID, actor)
}

func (m *mockEntitlementService) ListForTenant(ctx context.Context, tenantID string) ([]*dto.ProductEntitlementDTO, error) {
	return m.listFn(ctx, tenantID)
}

func (m *mockEntitlementService) ExportUsage(ctx context.Context, tenantID string) ([]byte, error) {
	return m.exportFn(ctx, tenantID)
}

func TestEntitlementHandler_Grant(t *testing.T) {
	var (
		gotTenant, gotProduct string
		gotActor              usecases.Actor
	)
	svc := &mockEntitlementService{
		grantFn: func(_ context.Context, tenantID, productID string, actor usecases.Actor) (*dto.EntitlementDTO, error) {
			gotTenant, gotProduct, gotActor = tenantID, productID, actor
			return &dto.EntitlementDTO{TenantID: tenantID, ProductID: productID, HasAccess: true, Status: "granted", AccessToken: "tok"}, nil
		},
	}
	h := NewEntitlementHandler(svc, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/entitlements/t1/crm/grant", nil)
	testutil.SetOperatorContext(c, "op_1")
	testutil.SetURLParam(c, "tenantId", "t1")
	testutil.SetURLParam(c, "productId", "crm")

	h.Grant(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "t1", gotTenant)
	assert.Equal(t, "crm", gotProduct)
	assert.Equal(t, "op_1", gotActor.UserID)
	assert.Equal(t, authorization.RoleSuperAdmin, gotActor.Role)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
	assert.Contains(t, string(resp.Data), `"access_token":"tok"`)
}

func TestEntitlementHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"not found", errors.NewNotFoundError("tenant not found"), http.StatusNotFound},
		{"conflict", errors.NewConflictError("concurrent modification"), http.StatusConflict},
		{"validation", errors.NewValidationError("access is revoked"), http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fail := func(context.Context, string, string, usecases.Actor) (*dto.EntitlementDTO, error) { return nil, tt.err }
			h := NewEntitlementHandler(&mockEntitlementService{revokeFn: fail, regenerateFn: fail}, testutil.NewMockLogger())

			c, w := testutil.NewTestContext(http.MethodPost, "/entitlements/t1/crm/revoke", nil)
			testutil.SetOperatorContext(c, "op_1")
			h.Revoke(c)
			assert.Equal(t, tt.wantCode, w.Code)

			c, w = testutil.NewTestContext(http.MethodPost, "/entitlements/t1/crm/regenerate", nil)
			testutil.SetOperatorContext(c, "op_1")
			h.Regenerate(c)
			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func TestEntitlementHandler_List(t *testing.T) {
	svc := &mockEntitlementService{
		listFn: func(_ context.Context, tenantID string) ([]*dto.ProductEntitlementDTO, error) {
			assert.Equal(t, "t1", tenantID)
			return []*dto.ProductEntitlementDTO{
				{ProductID: "crm", Status: "granted", HasAccess: true},
				{ProductID: "hr", Status: "absent"},
			}, nil
		},
	}
	h := NewEntitlementHandler(svc, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/entitlements/t1", nil)
	testutil.SetURLParam(c, "tenantId", "t1")
	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Contains(t, string(resp.Data), `"product_id":"hr"`)
}

func TestEntitlementHandler_ExportUsage(t *testing.T) {
	svc := &mockEntitlementService{
		exportFn: func(_ context.Context, tenantID string) ([]byte, error) {
			return []byte("PK-fake"), nil
		},
	}
	h := NewEntitlementHandler(svc, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/entitlements/t1/usage/export", nil)
	testutil.SetURLParam(c, "tenantId", "t1")
	h.ExportUsage(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, xlsxContentType, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "usage-t1.xlsx")
	assert.Equal(t, "PK-fake", w.Body.String())
}
