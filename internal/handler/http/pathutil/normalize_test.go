package pathutil

import "testing"

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/api/articles", "/api/articles"},
		{"/api/articles/harga-bbm-naik", "/api/articles/:key"},
		{"/api/articles/5f0c6d1e-8a36-4d8e-9b53-6b2e4b3f0a11", "/api/articles/:key"},
		{"/api/articles/abc/like", "/api/articles/:id/like"},
		{"/api/articles/abc/comments", "/api/articles/:id/comments"},
		{"/api/categories", "/api/categories"},
		{"/api/categories/politik", "/api/categories/:slug"},
		{"/api/admin/comments/pending", "/api/admin/comments/pending"},
		{"/api/admin/comments/abc", "/api/admin/comments/:id"},
		{"/api/admin/comments/abc/approve", "/api/admin/comments/:id/approve"},
		{"/api/admin/stats", "/api/admin/stats"},
		{"/api/rss", "/api/rss"},
		{"/swagger/index.html", "/swagger/*"},
		{"/health", "/health"},
		{"/", "/"},
		{"/api/articles/abc?x=1", "/api/articles/:key"},
		{"/api/categories/politik/", "/api/categories/:slug"},
		{"/unknown/a/b/c", "/unknown/a/b/c"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := NormalizePath(tt.path); got != tt.want {
				t.Errorf("NormalizePath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestNormalizePath_Cardinality(t *testing.T) {
	seen := map[string]bool{}
	for i := range 1000 {
		seen[NormalizePath("/api/articles/slug-"+string(rune('a'+i%26))+string(rune('a'+i/26%26)))] = true
	}
	if len(seen) != 1 {
		t.Errorf("expected a single label, got %d", len(seen))
	}
}

func TestGetExpectedCardinality(t *testing.T) {
	if got := GetExpectedCardinality(); got != len(pathPatterns)+10 {
		t.Errorf("GetExpectedCardinality() = %d", got)
	}
}
