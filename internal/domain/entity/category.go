package entity

import "time"

// DefaultCategoryColor is used when a category is created without a color.
const DefaultCategoryColor = "#1a365d"

// Category groups articles by topic. Categories are immutable once created.
type Category struct {
	ID        string
	Name      string
	Slug      string
	Color     string
	CreatedAt time.Time
}
