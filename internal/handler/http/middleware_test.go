package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsdesk/internal/handler/http/requestid"
	"newsdesk/internal/observability/logging"
)

func requestFrom(ip string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", nil)
	req.RemoteAddr = ip + ":12345"
	return req
}

func TestRateLimiter_Allow(t *testing.T) {
	rl := NewRateLimiter(3, time.Minute)
	handler := rl.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for i := range 3 {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, requestFrom("10.0.0.1"))
		assert.Equal(t, http.StatusOK, rr.Code, "request %d", i+1)
	}

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, requestFrom("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.Equal(t, "60", rr.Header().Get("Retry-After"))
	assert.Contains(t, rr.Body.String(), "too many requests")

	// a different client has its own bucket
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, requestFrom("10.0.0.2"))
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRateLimiter_Refill(t *testing.T) {
	rl := NewRateLimiter(2, time.Minute)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	assert.True(t, rl.allow("ip"))
	assert.True(t, rl.allow("ip"))
	assert.False(t, rl.allow("ip"))

	// one token every 30s
	now = now.Add(31 * time.Second)
	assert.True(t, rl.allow("ip"))
	assert.False(t, rl.allow("ip"))
}

func TestRateLimiter_Concurrent(t *testing.T) {
	rl := NewRateLimiter(50, time.Hour)
	var allowed atomic.Int64
	var wg sync.WaitGroup
	for range 200 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if rl.allow("shared") {
				allowed.Add(1)
			}
		}()
	}
	wg.Wait()
	assert.EqualValues(t, 50, allowed.Load())
}

func TestRateLimiter_CleanupExpired(t *testing.T) {
	rl := NewRateLimiter(5, time.Minute)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	rl.allow("old")
	now = now.Add(10 * time.Minute)
	rl.allow("fresh")

	assert.Equal(t, 2, rl.ActiveClients())
	assert.Equal(t, 1, rl.CleanupExpired(5*time.Minute))
	assert.Equal(t, 1, rl.ActiveClients())
}

func TestExtractIP(t *testing.T) {
	tests := []struct {
		name   string
		xff    string
		xri    string
		remote string
		want   string
	}{
		{"remote addr", "", "", "192.168.1.1:1234", "192.168.1.1"},
		{"x-forwarded-for first", "203.0.113.5, 10.0.0.1", "", "10.0.0.1:1", "203.0.113.5"},
		{"x-forwarded-for single", "203.0.113.9", "", "10.0.0.1:1", "203.0.113.9"},
		{"invalid xff falls back", "garbage", "198.51.100.2", "10.0.0.1:1", "198.51.100.2"},
		{"x-real-ip", "", "198.51.100.7", "10.0.0.1:1", "198.51.100.7"},
		{"remote without port", "", "", "192.168.1.1", "192.168.1.1"},
		{"ipv6", "", "", "[2001:db8::1]:443", "2001:db8::1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			if tt.xff != "" {
				req.Header.Set("X-Forwarded-For", tt.xff)
			}
			if tt.xri != "" {
				req.Header.Set("X-Real-IP", tt.xri)
			}
			assert.Equal(t, tt.want, extractIP(req))
		})
	}
}

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	var fromCtx *slog.Logger
	handler := requestid.Middleware(Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fromCtx = logging.FromContext(r.Context())
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("created"))
	})))

	req := httptest.NewRequest(http.MethodPost, "/api/articles?x=1", nil)
	req.Header.Set(requestid.RequestIDHeader, "req-1")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.NotNil(t, fromCtx)
	assert.NotSame(t, slog.Default(), fromCtx)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "request completed", entry["msg"])
	assert.Equal(t, "req-1", entry["request_id"])
	assert.Equal(t, "POST", entry["method"])
	assert.Equal(t, "/api/articles", entry["path"])
	assert.EqualValues(t, 201, entry["status"])
	assert.EqualValues(t, 7, entry["bytes"])
}

func TestRecover(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name       string
		panicValue any
	}{
		{"string", "something went wrong"},
		{"error", fmt.Errorf("test error")},
		{"number", 42},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := Recover(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				panic(tt.panicValue)
			}))
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/test", nil))

			assert.Equal(t, http.StatusInternalServerError, rr.Code)
			assert.Contains(t, rr.Body.String(), "internal server error")
		})
	}

	t.Run("no panic", func(t *testing.T) {
		handler := Recover(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/test", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("panic after body started", func(t *testing.T) {
		handler := Recover(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`[{"slug":"a"}`))
			panic("encoder blew up")
		}))
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/articles", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, `[{"slug":"a"}`, rr.Body.String())
	})
}

func TestLimitRequestBody(t *testing.T) {
	tests := []struct {
		name     string
		maxBytes int64
		bodySize int
		want     int
	}{
		{"within limit", 1024, 512, http.StatusOK},
		{"exactly at limit", 1024, 1024, http.StatusOK},
		{"exceeds limit", 100, 200, http.StatusRequestEntityTooLarge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := LimitRequestBody(tt.maxBytes)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if _, err := io.ReadAll(r.Body); err != nil {
					w.WriteHeader(http.StatusRequestEntityTooLarge)
					return
				}
				w.WriteHeader(http.StatusOK)
			}))
			req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(strings.Repeat("a", tt.bodySize)))
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)
			assert.Equal(t, tt.want, rr.Code)
		})
	}
}
