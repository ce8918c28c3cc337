package category_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsdesk/internal/handler/http/category"
	"newsdesk/internal/handler/http/respond"
	"newsdesk/internal/infra/adapter/persistence/memory"
	"newsdesk/internal/testutil/fixtures"
	catUC "newsdesk/internal/usecase/category"
)

/* ───────── helpers ───────── */

func newMux(t *testing.T, names ...string) *http.ServeMux {
	t.Helper()
	repo := memory.NewCategoryRepo(memory.NewStore())
	for _, n := range names {
		require.NoError(t, repo.Create(context.Background(), fixtures.Category(n)))
	}
	mux := http.NewServeMux()
	category.Register(mux, &catUC.Service{Repo: repo, Now: fixtures.Clock(fixtures.Epoch)})
	return mux
}

func do(mux http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}

/* ───────── 1. list ───────── */

func TestList(t *testing.T) {
	mux := newMux(t, "Politik", "Ekonomi")

	rr := do(mux, http.MethodGet, "/api/categories", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var got []category.DTO
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
	require.Len(t, got, 2)
	assert.Equal(t, "Politik", got[0].Name)
	assert.Equal(t, "ekonomi", got[1].Slug)
}

func TestList_EmptyIsArray(t *testing.T) {
	rr := do(newMux(t), http.MethodGet, "/api/categories", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

/* ───────── 2. get by slug ───────── */

func TestGet(t *testing.T) {
	mux := newMux(t, "Olahraga")

	rr := do(mux, http.MethodGet, "/api/categories/olahraga", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var got category.DTO
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
	assert.Equal(t, "Olahraga", got.Name)

	rr = do(mux, http.MethodGet, "/api/categories/unknown", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

/* ───────── 3. create ───────── */

func TestCreate(t *testing.T) {
	mux := newMux(t)

	rr := do(mux, http.MethodPost, "/api/categories", `{"name":"Sains & Teknologi"}`)
	require.Equal(t, http.StatusCreated, rr.Code)
	var got category.DTO
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
	assert.Equal(t, "sains-teknologi", got.Slug)
	assert.Equal(t, "#1a365d", got.Color)
	assert.NotEmpty(t, got.ID)
}

func TestCreate_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"missing name", `{}`, "name"},
		{"bad color", `{"name":"Hiburan","color":"pink"}`, "color"},
		{"malformed", `{"name":`, "body"},
		{"duplicate", `{"name":"Politik"}`, "name"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := do(newMux(t, "Politik"), http.MethodPost, "/api/categories", tt.body)
			require.Equal(t, http.StatusBadRequest, rr.Code)

			var body respond.ErrorBody
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
			assert.Equal(t, "Validation failed", body.Message)
			require.NotEmpty(t, body.Errors)
			assert.Equal(t, tt.field, body.Errors[0].Field)
		})
	}
}
