package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestInputValidation(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := InputValidation()(ok)

	tests := []struct {
		name       string
		path       string
		authz      string
		wantStatus int
	}{
		{"normal", "/api/articles", "Bearer eyJ.eyJ.sig", http.StatusOK},
		{"no authorization", "/api/articles", "", http.StatusOK},
		{"authorization at limit", "/api/articles", strings.Repeat("a", maxAuthorizationHeader), http.StatusOK},
		{"authorization too large", "/api/articles", strings.Repeat("a", maxAuthorizationHeader+1), http.StatusBadRequest},
		{"path at limit", "/" + strings.Repeat("a", maxPathLength-1), "", http.StatusOK},
		{"path too long", "/" + strings.Repeat("a", maxPathLength), "", http.StatusRequestURITooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.authz != "" {
				req.Header.Set("Authorization", tt.authz)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}
