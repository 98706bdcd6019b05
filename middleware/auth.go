package middleware

import (
	"context"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
)

// TokenCookieName is the HTTP-only cookie carrying the session token.
const TokenCookieName = "admin_token"

type contextKey string

const adminKey contextKey = "admin"

// Claims is the session token payload. No server-side revocation list exists; a
// token stays valid until expiry.
type Claims struct {
	AdminID string `json:"adminId"`
	Email   string `json:"email"`
	jwt.RegisteredClaims
}

// Auth gates mutating routes behind a valid session cookie.
func Auth(jwtSecret string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromRequest(r, jwtSecret)
			if !ok {
				http.Error(w, `{"error":"Unauthorized"}`, http.StatusUnauthorized)
				return
			}
			ctx := context.WithValue(r.Context(), adminKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFromRequest reads the session cookie and verifies signature and expiry.
// Returns false on any failure; callers never see why verification failed.
func ClaimsFromRequest(r *http.Request, jwtSecret string) (*Claims, bool) {
	cookie, err := r.Cookie(TokenCookieName)
	if err != nil || cookie.Value == "" {
		return nil, false
	}
	token, err := jwt.ParseWithClaims(cookie.Value, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(jwtSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, false
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || claims.AdminID == "" {
		return nil, false
	}
	return claims, true
}

// AdminFromContext returns the claims stored by Auth.
func AdminFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(adminKey).(*Claims)
	return claims, ok
}
