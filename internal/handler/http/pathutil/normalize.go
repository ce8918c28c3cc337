// Package pathutil normalizes request paths for metric labels and reads route parameters.
package pathutil

import (
	"regexp"
	"strings"
)

// PathPattern represents a regex pattern and its corresponding normalized template.
type PathPattern struct {
	Pattern  *regexp.Regexp
	Template string
}

// pathPatterns defines the list of patterns for dynamic routes.
// Patterns are evaluated in order from most specific to least specific.
var pathPatterns = []*PathPattern{
	// Article routes. The single segment is a slug on GET and an id elsewhere.
	{Pattern: regexp.MustCompile(`^/api/articles/[^/]+/comments$`), Template: "/api/articles/:id/comments"},
	{Pattern: regexp.MustCompile(`^/api/articles/[^/]+/like$`), Template: "/api/articles/:id/like"},
	{Pattern: regexp.MustCompile(`^/api/articles/[^/]+$`), Template: "/api/articles/:key"},

	{Pattern: regexp.MustCompile(`^/api/categories/[^/]+$`), Template: "/api/categories/:slug"},

	// Moderation routes
	{Pattern: regexp.MustCompile(`^/api/admin/comments/[^/]+/approve$`), Template: "/api/admin/comments/:id/approve"},
	{Pattern: regexp.MustCompile(`^/api/admin/comments/pending$`), Template: "/api/admin/comments/pending"},
	{Pattern: regexp.MustCompile(`^/api/admin/comments/[^/]+$`), Template: "/api/admin/comments/:id"},

	// Swagger UI assets collapse to one label
	{Pattern: regexp.MustCompile(`^/swagger/.+$`), Template: "/swagger/*"},
}

// NormalizePath normalizes dynamic URL paths to prevent metrics label cardinality explosion.
// It converts paths with IDs or slugs (e.g., /api/articles/harga-bbm-naik) to
// template format (e.g., /api/articles/:key). Static paths remain unchanged.
//
// Examples:
//
//	NormalizePath("/api/articles/harga-bbm-naik")          // "/api/articles/:key"
//	NormalizePath("/api/articles/5f0c.../like")            // "/api/articles/:id/like"
//	NormalizePath("/api/admin/comments/pending")           // "/api/admin/comments/pending"
//	NormalizePath("/api/admin/comments/5f0c...")           // "/api/admin/comments/:id"
//	NormalizePath("/api/rss")                              // "/api/rss" (unchanged)
//
// Query parameters and trailing slashes are handled:
//
//	NormalizePath("/api/categories/politik?x=1")           // "/api/categories/:slug"
//	NormalizePath("/api/categories/politik/")              // "/api/categories/:slug"
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}

	// Strip trailing slash if present (except for root path)
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	for _, p := range pathPatterns {
		if p.Pattern.MatchString(path) {
			return p.Template
		}
	}

	return path
}

// GetExpectedCardinality returns the expected number of unique path labels
// after normalization: every template plus the static endpoints.
func GetExpectedCardinality() int {
	// /api/articles, /api/categories, /api/rss, /api/admin/login, /api/admin/stats,
	// /health, /ready, /live, /metrics, /
	const staticCount = 10
	return len(pathPatterns) + staticCount
}
