package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lumenworks/backoffice/internal/infrastructure/auth"
	"github.com/lumenworks/backoffice/internal/shared/constants"
	"github.com/lumenworks/backoffice/internal/shared/logger"
	"github.com/lumenworks/backoffice/internal/shared/utils"
)

// tokenVerifier is the subset of auth.JWTService the middleware needs.
type tokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

type AuthMiddleware struct {
	verifier tokenVerifier
	logger   logger.Interface
}

func NewAuthMiddleware(verifier tokenVerifier, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
		logger:   logger,
	}
}

// RequireAuth verifies the bearer token and exposes user_id, user_role and
// tenant_id on the gin context.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(constants.HeaderAuthorization)
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		token, ok := bearerToken(authHeader)
		if !ok {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := m.verifier.Verify(token)
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		setClaims(c, claims)
		c.Next()
	}
}

// OptionalAuth sets the identity when a valid token is present and never aborts.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := bearerToken(c.GetHeader(constants.HeaderAuthorization)); ok {
			if claims, err := m.verifier.Verify(token); err == nil {
				setClaims(c, claims)
			}
		}
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || strings.TrimSpace(parts[1]) == "" {
		return "", false
	}
	return strings.TrimSpace(parts[1]), true
}

func setClaims(c *gin.Context, claims *auth.Claims) {
	c.Set(constants.ContextKeyUserID, claims.UserID)
	c.Set(constants.ContextKeyUserRole, string(claims.Role))
	if claims.TenantID != "" {
		c.Set(constants.ContextKeyTenantID, claims.TenantID)
	}
}
