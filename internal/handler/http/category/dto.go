// Package category provides HTTP handlers for category endpoints.
package category

import (
	"time"

	"newsdesk/internal/domain/entity"
)

// DTO represents the JSON structure for category data transfer.
type DTO struct {
	ID        string    `json:"id" example:"7b0c7f5e-0d5c-4a8e-9a57-3f1f5c1f2a11"`
	Name      string    `json:"name" example:"Teknologi"`
	Slug      string    `json:"slug" example:"teknologi"`
	Color     string    `json:"color" example:"#1a365d"`
	CreatedAt time.Time `json:"createdAt" example:"2024-03-24T09:00:00Z"`
}

// CreateRequest is the body of POST /api/categories.
type CreateRequest struct {
	Name  string `json:"name" validate:"notblank,max=100" example:"Olahraga"`
	Color string `json:"color" validate:"omitempty,rgbhex" example:"#2f855a"`
}

// ToDTO converts a category; nil stays nil so dangling joins encode as null.
func ToDTO(c *entity.Category) *DTO {
	if c == nil {
		return nil
	}
	return &DTO{
		ID:        c.ID,
		Name:      c.Name,
		Slug:      c.Slug,
		Color:     c.Color,
		CreatedAt: c.CreatedAt,
	}
}
