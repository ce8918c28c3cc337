package auth

import "testing"

func TestIsProtectedEndpoint(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/api/admin/stats", true},
		{"/api/admin/comments/pending", true},
		{"/api/admin/comments/abc/approve", true},
		{"/api/admin", true},
		{"/api/admin/login", false},
		{"/api/admin/login/", false},
		{"/api/admin/login/extra", true},
		{"/api/administrators", false},
		{"/api/articles", false},
		{"/health", false},
		{"/api/rss", false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := IsProtectedEndpoint(tt.path); got != tt.want {
				t.Errorf("IsProtectedEndpoint(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestIsPublicEndpoint(t *testing.T) {
	if !IsPublicEndpoint("/api/admin/login") {
		t.Error("login must be public")
	}
	if IsPublicEndpoint("/api/admin/loginx") {
		t.Error("prefix of login must not be public")
	}
}
