// Package repository defines the storage contracts shared by the memory and
// SQL backends.
package repository

import "errors"

var (
	// ErrDuplicateSlug is returned when an article or category slug is already in use.
	ErrDuplicateSlug = errors.New("slug already exists")

	// ErrDuplicateUsername is returned when an admin username is already in use.
	ErrDuplicateUsername = errors.New("username already exists")
)
