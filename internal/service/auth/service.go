// Package auth issues and validates the admin session tokens.
//
// Credential checks are delegated to an AuthProvider (the admin use case);
// this package only adds the JWT layer on top. When no signing secret is
// configured, logins still succeed but no token is issued.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"newsdesk/internal/domain/entity"
)

var (
	// ErrTokensDisabled is returned by Validate when no secret is configured.
	ErrTokensDisabled = errors.New("token signing is not configured")

	// ErrInvalidToken covers malformed, expired and wrongly signed tokens.
	ErrInvalidToken = errors.New("invalid token")
)

// AuthProvider checks a username/password pair.
type AuthProvider interface {
	Login(ctx context.Context, username, password string) (*entity.Admin, error)
}

// Claims are the JWT claims carried by an admin token.
type Claims struct {
	AdminID string `json:"aid"`
	Role    string `json:"role"`
	jwt.RegisteredClaims
}

// Session is the result of a successful login.
type Session struct {
	Admin     *entity.Admin
	Token     string // empty when tokens are disabled
	ExpiresAt time.Time
}

// AuthService handles authentication business logic.
type AuthService struct {
	provider AuthProvider
	secret   []byte
	expiry   time.Duration
	now      func() time.Time
}

// NewAuthService creates a new authentication service. An empty secret
// disables token issuance.
func NewAuthService(provider AuthProvider, secret string, expiry time.Duration) *AuthService {
	if expiry <= 0 {
		expiry = time.Hour
	}
	return &AuthService{
		provider: provider,
		secret:   []byte(secret),
		expiry:   expiry,
		now:      time.Now,
	}
}

// TokensEnabled reports whether a signing secret is configured.
func (s *AuthService) TokensEnabled() bool {
	return len(s.secret) > 0
}

// Login validates credentials via the provider and, when enabled, signs a
// token for the admin.
func (s *AuthService) Login(ctx context.Context, username, password string) (*Session, error) {
	account, err := s.provider.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}

	sess := &Session{Admin: account}
	if !s.TokensEnabled() {
		return sess, nil
	}

	now := s.now()
	sess.ExpiresAt = now.Add(s.expiry)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		AdminID: account.ID,
		Role:    account.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   account.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(sess.ExpiresAt),
		},
	})
	sess.Token, err = token.SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}
	return sess, nil
}

// Validate parses a signed token and returns its claims.
func (s *AuthService) Validate(tokenString string) (*Claims, error) {
	if !s.TokensEnabled() {
		return nil, ErrTokensDisabled
	}

	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !tok.Valid {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.Subject == "" || claims.Role == "" {
		return nil, fmt.Errorf("%w: missing subject or role", ErrInvalidToken)
	}
	return claims, nil
}
