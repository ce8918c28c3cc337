// Package comment provides HTTP handlers for reader comments and their
// moderation queue.
package comment

import (
	"time"

	"newsdesk/internal/domain/entity"
)

// DTO represents the JSON structure for comment data transfer.
type DTO struct {
	ID         string    `json:"id" example:"c1f0e2d3-4b5a-6978-8a9b-0c1d2e3f4a5b"`
	ArticleID  string    `json:"articleId" example:"0b6f1c8e-5d2a-4e7b-9a1c-2f3e4d5c6b7a"`
	AuthorName string    `json:"authorName" example:"Budi"`
	Content    string    `json:"content" example:"Terima kasih atas informasinya."`
	IsApproved bool      `json:"isApproved" example:"false"`
	Likes      int64     `json:"likes" example:"0"`
	CreatedAt  time.Time `json:"createdAt" example:"2024-03-24T09:00:00Z"`
}

// CreateRequest is the body of POST /api/articles/{id}/comments. The article
// id always comes from the path.
type CreateRequest struct {
	AuthorName string `json:"authorName" validate:"notblank,max=100" example:"Budi"`
	Content    string `json:"content" validate:"notblank,max=5000" example:"Terima kasih atas informasinya."`
}

func toDTO(c *entity.Comment) DTO {
	return DTO{
		ID:         c.ID,
		ArticleID:  c.ArticleID,
		AuthorName: c.AuthorName,
		Content:    c.Content,
		IsApproved: c.IsApproved,
		Likes:      c.Likes,
		CreatedAt:  c.CreatedAt,
	}
}

func toDTOs(list []*entity.Comment) []DTO {
	out := make([]DTO, 0, len(list))
	for _, c := range list {
		out = append(out, toDTO(c))
	}
	return out
}
