package auth

import "strings"

// ProtectedPrefix marks the back-office routes that require an admin token
// when the guard is enabled.
const ProtectedPrefix = "/api/admin/"

// PublicEndpoints are exempt from the guard even though they sit under
// ProtectedPrefix.
//
// - /api/admin/login: the token is obtained here
var PublicEndpoints = []string{
	"/api/admin/login",
}

// IsPublicEndpoint reports whether path is one of PublicEndpoints.
//
// Matching logic:
// - exact match, or the same path with a trailing slash
// - /api/admin/login/extra is not public
//
// Example:
//
//	IsPublicEndpoint("/api/admin/login")   // true
//	IsPublicEndpoint("/api/admin/login/")  // true
//	IsPublicEndpoint("/api/admin/stats")   // false
func IsPublicEndpoint(path string) bool {
	for _, endpoint := range PublicEndpoints {
		if path == endpoint || path == endpoint+"/" {
			return true
		}
	}
	return false
}

// IsProtectedEndpoint reports whether path needs an admin token.
//
// Example:
//
//	IsProtectedEndpoint("/api/admin/stats")     // true
//	IsProtectedEndpoint("/api/admin/login")     // false
//	IsProtectedEndpoint("/api/articles")        // false
//	IsProtectedEndpoint("/api/administrators")  // false
func IsProtectedEndpoint(path string) bool {
	if IsPublicEndpoint(path) {
		return false
	}
	return strings.HasPrefix(path, ProtectedPrefix) || path == strings.TrimSuffix(ProtectedPrefix, "/")
}
