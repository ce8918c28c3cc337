package http

import (
	"net/http"

	"newsdesk/internal/handler/http/respond"
)

const (
	// maxAuthorizationHeader covers a bearer JWT with generous headroom.
	maxAuthorizationHeader = 8 << 10
	maxPathLength          = 2 << 10
)

// InputValidation returns middleware that rejects oversized Authorization
// headers (8KB) and request paths (2KB) before routing.
func InputValidation() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(r.Header.Get("Authorization")) > maxAuthorizationHeader {
				respond.Message(w, http.StatusBadRequest, "authorization header too large")
				return
			}
			if len(r.URL.Path) > maxPathLength {
				respond.Message(w, http.StatusRequestURITooLong, "URI too long")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
