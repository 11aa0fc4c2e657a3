package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/safarind/umrah-marketplace-api/pkg/apiErrors"
	"github.com/safarind/umrah-marketplace-api/pkg/log"
)

type contextKey string

// ContextKeyAdminClaims holds the validated admin claims in the request context
const ContextKeyAdminClaims contextKey = "admin_claims"

// AdminClaims is the token payload issued by the external auth service.
// This service only validates it; issuing and refreshing live elsewhere.
type AdminClaims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// AdminOnly restricts a route to bearer tokens carrying the admin role
func AdminOnly(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Authorization header is required", nil)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Bearer token is required", nil)
				return
			}

			claims := &AdminClaims{}
			token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "invalid token", nil)
				return
			}

			if claims.Role != "admin" {
				log.L.WithField("user_id", claims.UserID).Warn("non-admin access attempt on admin route")
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "admin role required", nil)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyAdminClaims, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
