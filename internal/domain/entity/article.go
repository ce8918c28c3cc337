// Package entity defines the core domain entities and validation logic for the application.
// It contains the fundamental business objects of the newsroom (Category, Article,
// Comment and Admin), slug derivation, and domain-specific errors.
package entity

import "time"

// DefaultAuthorRole is applied when an article is created without an author role.
const DefaultAuthorRole = "Editor"

// Article represents a published news article.
//
// Slug is always derived from Title via Slugify. Views and Likes only move upward
// through the dedicated increment operations.
type Article struct {
	ID          string
	Title       string
	Slug        string
	Excerpt     string
	Content     string
	ImageURL    *string
	CategoryID  string
	AuthorName  string
	AuthorRole  string
	IsBreaking  bool
	IsFeatured  bool
	Views       int64
	Likes       int64
	PublishedAt time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Clone returns a deep copy of the article so callers never share the stored value.
func (a Article) Clone() Article {
	out := a
	if a.ImageURL != nil {
		img := *a.ImageURL
		out.ImageURL = &img
	}
	return out
}

// MatchesQuery reports whether the lower-cased query occurs in the title,
// excerpt or content. An empty query matches every article.
func (a Article) MatchesQuery(lowerQuery string) bool {
	if lowerQuery == "" {
		return true
	}
	return containsFold(a.Title, lowerQuery) ||
		containsFold(a.Excerpt, lowerQuery) ||
		containsFold(a.Content, lowerQuery)
}
