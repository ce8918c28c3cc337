// Package auth guards the admin routes and serves the admin login.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	"newsdesk/internal/handler/http/respond"
	"newsdesk/internal/observability/logging"
	authservice "newsdesk/internal/service/auth"
)

type ctxKey string

const ctxClaims ctxKey = "claims"

// AdminRoles are the roles allowed through the guard.
var AdminRoles = []string{"admin", "superadmin"}

// TokenValidator verifies a bearer token.
type TokenValidator interface {
	Validate(token string) (*authservice.Claims, error)
}

// Authz requires a valid admin token on every protected endpoint
// (see IsProtectedEndpoint). Other paths pass through untouched.
//
// Authorization Logic:
//  1. Public or unguarded path: next handler
//  2. Missing, malformed or expired token: 401
//  3. Valid token whose role is not in AdminRoles: 403
//  4. Otherwise the claims are stored in the request context
func Authz(v TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !IsProtectedEndpoint(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			claims, err := bearerClaims(v, r.Header.Get("Authorization"))
			RecordAuthzCheckDuration(time.Since(start).Seconds())
			if err != nil {
				RecordDenied("unauthorized", r.Method)
				logging.FromContext(r.Context()).Warn("admin request rejected",
					slog.String("path", r.URL.Path),
					slog.String("reason", err.Error()))
				respond.SafeError(w, http.StatusUnauthorized, fmt.Errorf("unauthorized: %w", err))
				return
			}
			if !slices.Contains(AdminRoles, claims.Role) {
				RecordDenied("forbidden", r.Method)
				respond.SafeError(w, http.StatusForbidden, errors.New("forbidden"))
				return
			}

			ctx := context.WithValue(r.Context(), ctxClaims, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFromContext returns the claims stored by Authz, or nil.
func ClaimsFromContext(ctx context.Context) *authservice.Claims {
	claims, _ := ctx.Value(ctxClaims).(*authservice.Claims)
	return claims
}

func bearerClaims(v TokenValidator, header string) (*authservice.Claims, error) {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return nil, errors.New("missing bearer token")
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, prefix))
	if token == "" {
		return nil, errors.New("missing bearer token")
	}
	claims, err := v.Validate(token)
	if err != nil {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
