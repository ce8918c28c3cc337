// Package article implements the article query and mutation use cases:
// listing with the featured/breaking/trending/search views, slug lookup,
// create/update/delete with validation, and the view/like counters.
package article

import (
	"errors"
	"fmt"

	"newsdesk/internal/domain/entity"
)

// Sentinel errors for article use case operations.
var (
	// ErrArticleNotFound indicates that the requested article was not found.
	ErrArticleNotFound = fmt.Errorf("article %w", entity.ErrNotFound)

	// ErrInvalidListQuery indicates a malformed limit or offset.
	ErrInvalidListQuery = errors.New("invalid list query")
)
