// Package article provides HTTP handlers for article endpoints: listing and
// its featured, breaking, trending and search views, lookup by slug, writes,
// and likes.
package article

import (
	"time"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/handler/http/category"
	artUC "newsdesk/internal/usecase/article"
)

// DTO represents the JSON structure for article data transfer.
type DTO struct {
	ID          string    `json:"id" example:"0b6f1c8e-5d2a-4e7b-9a1c-2f3e4d5c6b7a"`
	Title       string    `json:"title" example:"Harga BBM Naik Mulai Besok"`
	Slug        string    `json:"slug" example:"harga-bbm-naik-mulai-besok"`
	Excerpt     string    `json:"excerpt" example:"Pemerintah mengumumkan penyesuaian harga."`
	Content     string    `json:"content" example:"Isi lengkap berita..."`
	ImageURL    *string   `json:"imageUrl" example:"https://images.example.com/bbm.jpg"`
	CategoryID  string    `json:"categoryId" example:"7b0c7f5e-0d5c-4a8e-9a57-3f1f5c1f2a11"`
	AuthorName  string    `json:"authorName" example:"Rina Wijaya"`
	AuthorRole  string    `json:"authorRole" example:"Editor"`
	IsBreaking  bool      `json:"isBreaking" example:"false"`
	IsFeatured  bool      `json:"isFeatured" example:"true"`
	Views       int64     `json:"views" example:"120"`
	Likes       int64     `json:"likes" example:"8"`
	PublishedAt time.Time `json:"publishedAt" example:"2024-03-24T09:00:00Z"`
	CreatedAt   time.Time `json:"createdAt" example:"2024-03-24T09:00:00Z"`
	UpdatedAt   time.Time `json:"updatedAt" example:"2024-03-24T09:00:00Z"`
}

// WithCategoryDTO is an article joined with its category. Category is null
// when the article references a category that no longer exists.
type WithCategoryDTO struct {
	DTO
	Category *category.DTO `json:"category"`
}

// CreateRequest is the body of POST /api/articles.
type CreateRequest struct {
	Title      string  `json:"title" validate:"notblank,max=300" example:"Harga BBM Naik Mulai Besok"`
	Excerpt    string  `json:"excerpt" validate:"notblank,max=1000"`
	Content    string  `json:"content" validate:"notblank"`
	ImageURL   *string `json:"imageUrl" validate:"omitempty,max=2048"`
	CategoryID string  `json:"categoryId" validate:"notblank"`
	AuthorName string  `json:"authorName" validate:"notblank,max=200"`
	AuthorRole string  `json:"authorRole" validate:"max=100" example:"Editor"`
	IsBreaking bool    `json:"isBreaking"`
	IsFeatured bool    `json:"isFeatured"`
}

// UpdateRequest is the body of PUT /api/articles/{id}. Absent fields are left unchanged.
type UpdateRequest struct {
	Title      *string `json:"title" validate:"omitempty,max=300"`
	Excerpt    *string `json:"excerpt" validate:"omitempty,max=1000"`
	Content    *string `json:"content"`
	ImageURL   *string `json:"imageUrl" validate:"omitempty,max=2048"`
	CategoryID *string `json:"categoryId"`
	AuthorName *string `json:"authorName" validate:"omitempty,max=200"`
	AuthorRole *string `json:"authorRole" validate:"omitempty,max=100"`
	IsBreaking *bool   `json:"isBreaking"`
	IsFeatured *bool   `json:"isFeatured"`
}

func toDTO(a *entity.Article) DTO {
	return DTO{
		ID:          a.ID,
		Title:       a.Title,
		Slug:        a.Slug,
		Excerpt:     a.Excerpt,
		Content:     a.Content,
		ImageURL:    a.ImageURL,
		CategoryID:  a.CategoryID,
		AuthorName:  a.AuthorName,
		AuthorRole:  a.AuthorRole,
		IsBreaking:  a.IsBreaking,
		IsFeatured:  a.IsFeatured,
		Views:       a.Views,
		Likes:       a.Likes,
		PublishedAt: a.PublishedAt,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func toWithCategoryDTO(j artUC.WithCategory) WithCategoryDTO {
	return WithCategoryDTO{DTO: toDTO(j.Article), Category: category.ToDTO(j.Category)}
}
