package pagination_test

import (
	"errors"
	"net/http/httptest"
	"testing"

	"newsdesk/internal/common/pagination"
)

func TestParseQueryParams(t *testing.T) {
	t.Parallel()

	config := pagination.Config{DefaultLimit: 20, MaxLimit: 100}

	tests := []struct {
		name      string
		query     string
		want      pagination.Params
		wantError bool
	}{
		{name: "no parameters (use defaults)", query: "", want: pagination.Params{Limit: 20}},
		{name: "valid parameters", query: "limit=30&offset=10", want: pagination.Params{Limit: 30, Offset: 10}},
		{name: "only offset", query: "offset=5", want: pagination.Params{Limit: 20, Offset: 5}},
		{name: "limit at max", query: "limit=100", want: pagination.Params{Limit: 100}},
		{name: "limit above max", query: "limit=101", wantError: true},
		{name: "limit zero", query: "limit=0", wantError: true},
		{name: "negative limit", query: "limit=-1", wantError: true},
		{name: "non-numeric limit", query: "limit=ten", wantError: true},
		{name: "negative offset", query: "offset=-3", wantError: true},
		{name: "non-numeric offset", query: "offset=1.5", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest("GET", "/api/articles?"+tt.query, nil)
			got, err := pagination.ParseQueryParams(req, config)
			if tt.wantError {
				if !errors.Is(err, pagination.ErrInvalidParams) {
					t.Fatalf("expected ErrInvalidParams, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseQueryParams() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseQueryParams_UnboundedMax(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest("GET", "/api/articles?limit=5000", nil)
	got, err := pagination.ParseQueryParams(req, pagination.DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Limit != 5000 {
		t.Errorf("Limit = %d, want 5000", got.Limit)
	}
}

func TestParams_Validate(t *testing.T) {
	t.Parallel()

	config := pagination.Config{DefaultLimit: 20, MaxLimit: 50}
	tests := []struct {
		name    string
		params  pagination.Params
		wantErr bool
	}{
		{"valid", pagination.Params{Limit: 10, Offset: 0}, false},
		{"limit 1", pagination.Params{Limit: 1}, false},
		{"limit 0", pagination.Params{Limit: 0}, true},
		{"over max", pagination.Params{Limit: 51}, true},
		{"negative offset", pagination.Params{Limit: 10, Offset: -1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.params.Validate(config)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
