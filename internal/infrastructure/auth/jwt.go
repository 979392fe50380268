// Package auth verifies sessions issued by the external identity layer.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/lumenworks/backoffice/internal/shared/authorization"
	"github.com/lumenworks/backoffice/internal/shared/biztime"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims is the identity the upstream login flow hands us. TenantID is empty
// for operators.
type Claims struct {
	UserID   string                 `json:"user_id"`
	Role     authorization.UserRole `json:"role"`
	TenantID string                 `json:"tenant_id,omitempty"`
	jwt.RegisteredClaims
}

type JWTService struct {
	secret           []byte
	accessExpMinutes int
}

func NewJWTService(secret string, accessExpMinutes int) *JWTService {
	return &JWTService{
		secret:           []byte(secret),
		accessExpMinutes: accessExpMinutes,
	}
}

// Generate signs a session token. Production tokens come from the identity
// layer; this is used by tests and local tooling.
func (s *JWTService) Generate(userID string, role authorization.UserRole, tenantID string) (string, error) {
	now := biztime.NowUTC()
	claims := &Claims{
		UserID:   userID,
		Role:     role,
		TenantID: tenantID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.accessExpMinutes) * time.Minute)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if !claims.Role.IsValid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidToken, claims.Role)
	}
	if claims.Role.IsTenant() && claims.TenantID == "" {
		return nil, fmt.Errorf("%w: tenant session without tenant_id", ErrInvalidToken)
	}
	return claims, nil
}
