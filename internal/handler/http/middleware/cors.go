// Package middleware holds cross-origin handling for the public API.
package middleware

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/go-chi/cors"
)

// CORSConfig is the cross-origin policy. An AllowedOrigins entry of "*"
// admits every origin.
type CORSConfig struct {
	AllowedOrigins []string
	MaxAge         int // seconds a preflight may be cached
	Logger         *slog.Logger
}

var (
	allowedMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}
	allowedHeaders = []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"}
	exposedHeaders = []string{"X-Request-ID", "X-Trace-Id", "Retry-After"}
)

// CORS wraps next with the policy. Preflight requests are answered with
// 204 No Content and never reach next.
func CORS(cfg CORSConfig) func(http.Handler) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	opts := cors.Options{
		AllowedMethods:     allowedMethods,
		AllowedHeaders:     allowedHeaders,
		ExposedHeaders:     exposedHeaders,
		MaxAge:             cfg.MaxAge,
		OptionsPassthrough: true,
	}
	if len(cfg.AllowedOrigins) == 0 || slices.Contains(cfg.AllowedOrigins, "*") {
		opts.AllowedOrigins = []string{"*"}
	} else {
		origins := make([]string, len(cfg.AllowedOrigins))
		for i, o := range cfg.AllowedOrigins {
			origins[i] = strings.ToLower(strings.TrimRight(o, "/"))
		}
		opts.AllowOriginFunc = func(r *http.Request, origin string) bool {
			if slices.Contains(origins, strings.ToLower(origin)) {
				return true
			}
			logger.Warn("CORS: origin not allowed",
				slog.String("origin", origin),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path))
			return false
		}
	}

	handler := cors.Handler(opts)
	return func(next http.Handler) http.Handler {
		return handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPreflight(r) {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		}))
	}
}

func isPreflight(r *http.Request) bool {
	return r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != ""
}
