package auth_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsdesk/internal/handler/http/auth"
	"newsdesk/internal/infra/adapter/persistence/memory"
	authservice "newsdesk/internal/service/auth"
	"newsdesk/internal/testutil/fixtures"
	adminUC "newsdesk/internal/usecase/admin"
)

func loginHandler(t *testing.T, secret string) (http.Handler, *authservice.AuthService) {
	t.Helper()
	store := memory.NewStore()
	admins := memory.NewAdminRepo(store)
	require.NoError(t, admins.Create(context.Background(), fixtures.Admin("sigitsetiadi", "24032000")))

	svc := authservice.NewAuthService(&adminUC.Service{
		Admins:   admins,
		Articles: memory.NewArticleRepo(store),
		Comments: memory.NewCommentRepo(store),
	}, secret, time.Hour)
	return auth.LoginHandler(svc), svc
}

func post(h http.Handler, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(body)))
	return rec
}

func TestLogin_Success_NoToken(t *testing.T) {
	h, _ := loginHandler(t, "")

	rec := post(h, `{"username":"sigitsetiadi","password":"24032000"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var raw map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&raw))
	assert.Equal(t, true, raw["success"])
	admin, ok := raw["admin"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "sigitsetiadi", admin["username"])
	assert.Equal(t, "superadmin", admin["role"])
	assert.NotEmpty(t, admin["id"])
	assert.NotContains(t, admin, "password")
	assert.NotContains(t, raw, "token")
}

func TestLogin_Success_IssuesToken(t *testing.T) {
	h, svc := loginHandler(t, "0123456789abcdef0123456789abcdef")

	rec := post(h, `{"username":"sigitsetiadi","password":"24032000"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.True(t, body.Success)
	require.NotEmpty(t, body.Token)

	claims, err := svc.Validate(body.Token)
	require.NoError(t, err)
	assert.Equal(t, "sigitsetiadi", claims.Subject)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	h, _ := loginHandler(t, "")
	for _, body := range []string{
		`{"username":"sigitsetiadi","password":"wrong"}`,
		`{"username":"nobody","password":"24032000"}`,
		`{"username":"   ","password":"24032000"}`,
	} {
		rec := post(h, body)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"message":"Invalid credentials"}`, rec.Body.String())
	}
}

func TestLogin_MissingFields(t *testing.T) {
	h, _ := loginHandler(t, "")
	for _, body := range []string{
		`{"username":"sigitsetiadi"}`,
		`{"password":"24032000"}`,
		`{}`,
	} {
		rec := post(h, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		var got struct {
			Message string `json:"message"`
		}
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		assert.Equal(t, "Username and password are required", got.Message)
	}
}

func TestLogin_MalformedBody(t *testing.T) {
	h, _ := loginHandler(t, "")
	rec := post(h, `{"username":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
