package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsdesk/internal/domain/entity"
)

const testSecret = "0123456789abcdef0123456789abcdef"

var errBadCreds = errors.New("invalid credentials")

// mockAuthProvider accepts a single username/password pair.
type mockAuthProvider struct{}

func (mockAuthProvider) Login(_ context.Context, username, password string) (*entity.Admin, error) {
	if username != "editor" || password != "secret" {
		return nil, errBadCreds
	}
	return &entity.Admin{ID: "a-1", Username: "editor", Password: "secret", Role: "superadmin"}, nil
}

func fixedClock(t time.Time) func() time.Time { return func() time.Time { return t } }

func TestAuthService_Login_IssuesToken(t *testing.T) {
	svc := NewAuthService(mockAuthProvider{}, testSecret, 30*time.Minute)
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	svc.now = fixedClock(now)

	sess, err := svc.Login(context.Background(), "editor", "secret")
	require.NoError(t, err)
	require.NotEmpty(t, sess.Token)
	assert.Equal(t, now.Add(30*time.Minute), sess.ExpiresAt)

	claims, err := svc.Validate(sess.Token)
	require.NoError(t, err)
	assert.Equal(t, "editor", claims.Subject)
	assert.Equal(t, "superadmin", claims.Role)
	assert.Equal(t, "a-1", claims.AdminID)
}

func TestAuthService_Login_NoSecret(t *testing.T) {
	svc := NewAuthService(mockAuthProvider{}, "", 0)
	assert.False(t, svc.TokensEnabled())

	sess, err := svc.Login(context.Background(), "editor", "secret")
	require.NoError(t, err)
	assert.Empty(t, sess.Token)
	assert.Equal(t, "editor", sess.Admin.Username)

	_, err = svc.Validate("anything")
	assert.ErrorIs(t, err, ErrTokensDisabled)
}

func TestAuthService_Login_ProviderError(t *testing.T) {
	svc := NewAuthService(mockAuthProvider{}, testSecret, time.Hour)
	_, err := svc.Login(context.Background(), "editor", "wrong")
	assert.ErrorIs(t, err, errBadCreds)
}

func TestAuthService_Validate_Rejects(t *testing.T) {
	svc := NewAuthService(mockAuthProvider{}, testSecret, time.Hour)
	issued := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	svc.now = fixedClock(issued)
	sess, err := svc.Login(context.Background(), "editor", "secret")
	require.NoError(t, err)

	otherKey := NewAuthService(mockAuthProvider{}, "another-secret-another-secret-xx", time.Hour)
	otherKey.now = fixedClock(issued)
	foreign, err := otherKey.Login(context.Background(), "editor", "secret")
	require.NoError(t, err)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{Role: "superadmin"})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
		at    time.Time
	}{
		{"garbage", "not-a-token", issued},
		{"expired", sess.Token, issued.Add(2 * time.Hour)},
		{"wrong key", foreign.Token, issued},
		{"alg none", unsigned, issued},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc.now = fixedClock(tt.at)
			_, err := svc.Validate(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
