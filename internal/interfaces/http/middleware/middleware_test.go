package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenworks/backoffice/internal/infrastructure/auth"
	"github.com/lumenworks/backoffice/internal/infrastructure/ratelimit"
	"github.com/lumenworks/backoffice/internal/shared/authorization"
	"github.com/lumenworks/backoffice/internal/shared/constants"
	"github.com/lumenworks/backoffice/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type mockVerifier struct {
	verifyFn func(token string) (*auth.Claims, error)
}

func (m *mockVerifier) Verify(token string) (*auth.Claims, error) { return m.verifyFn(token) }

type mockEnforcer struct {
	enforceFn func(role, resource, action string) (bool, error)
}

func (m *mockEnforcer) Enforce(role, resource, action string) (bool, error) {
	return m.enforceFn(role, resource, action)
}

type mockLimiter struct {
	allowFn func(key string) (bool, error)
}

func (m *mockLimiter) Allow(_ context.Context, key string, _ ratelimit.Limits) (bool, error) {
	return m.allowFn(key)
}
func (m *mockLimiter) Count(context.Context, string, time.Duration) (int64, error) { return 0, nil }
func (m *mockLimiter) Reset(context.Context, string) error                        { return nil }

func serve(t *testing.T, header string, handlers ...gin.HandlerFunc) (*httptest.ResponseRecorder, map[string]string) {
	t.Helper()
	seen := map[string]string{}
	engine := gin.New()
	all := append(handlers, func(c *gin.Context) {
		seen["user_id"] = c.GetString(constants.ContextKeyUserID)
		seen["role"] = c.GetString(constants.ContextKeyUserRole)
		seen["tenant_id"] = c.GetString(constants.ContextKeyTenantID)
		seen["request_id"] = c.GetString(constants.ContextKeyRequestID)
		c.Status(http.StatusOK)
	})
	engine.GET("/x", all...)

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w, seen
}

func TestRequireAuth(t *testing.T) {
	verifier := &mockVerifier{verifyFn: func(token string) (*auth.Claims, error) {
		if token != "good" {
			return nil, fmt.Errorf("bad token")
		}
		return &auth.Claims{UserID: "usr_1", Role: authorization.RoleAdmin, TenantID: "tnt_1"}, nil
	}}
	mw := NewAuthMiddleware(verifier, logger.NewNopLogger())

	w, seen := serve(t, "Bearer good", mw.RequireAuth())
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "usr_1", seen["user_id"])
	assert.Equal(t, "admin", seen["role"])
	assert.Equal(t, "tnt_1", seen["tenant_id"])

	w, _ = serve(t, "", mw.RequireAuth())
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = serve(t, "Token good", mw.RequireAuth())
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = serve(t, "Bearer bad", mw.RequireAuth())
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, seen = serve(t, "Bearer bad", mw.OptionalAuth())
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, seen["user_id"])
}

func TestRequirePermission(t *testing.T) {
	enforcer := &mockEnforcer{enforceFn: func(role, resource, action string) (bool, error) {
		return role == "superadmin", nil
	}}
	pm := NewPermissionMiddleware(enforcer, logger.NewNopLogger())
	withRole := func(role string) gin.HandlerFunc {
		return func(c *gin.Context) { c.Set(constants.ContextKeyUserRole, role) }
	}

	w, _ := serve(t, "", withRole("superadmin"), pm.RequirePermission("entitlement", "grant"))
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = serve(t, "", withRole("admin"), pm.RequirePermission("entitlement", "grant"))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, _ = serve(t, "", pm.RequirePermission("entitlement", "grant"))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRateLimiter(t *testing.T) {
	calls := 0
	limiter := &mockLimiter{allowFn: func(key string) (bool, error) {
		calls++
		assert.Contains(t, key, "access:")
		return calls <= 1, nil
	}}
	rl := NewRateLimiter(limiter, "access", ratelimit.Limits{RequestsPerMinute: 1}, logger.NewNopLogger())

	w, _ := serve(t, "", rl.Limit())
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = serve(t, "", rl.Limit())
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	failing := NewRateLimiter(&mockLimiter{allowFn: func(string) (bool, error) { return false, fmt.Errorf("redis down") }},
		"access", ratelimit.Limits{RequestsPerMinute: 1}, logger.NewNopLogger())
	w, _ = serve(t, "", failing.Limit())
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequestID(t *testing.T) {
	w, seen := serve(t, "", RequestID())
	assert.NotEmpty(t, seen["request_id"])
	assert.Equal(t, seen["request_id"], w.Header().Get(constants.HeaderXRequestID))
}

func TestRecovery(t *testing.T) {
	w, _ := serve(t, "", Recovery(logger.NewNopLogger()), func(c *gin.Context) { panic("boom") })
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
