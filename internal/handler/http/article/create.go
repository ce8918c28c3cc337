package article

import (
	"net/http"

	"newsdesk/internal/handler/http/bind"
	"newsdesk/internal/handler/http/respond"
	artUC "newsdesk/internal/usecase/article"
)

type CreateHandler struct{ Svc *artUC.Service }

// ServeHTTP creates an article.
// @Summary      Create article
// @Description  The slug is derived from the title. views and likes start at zero; authorRole defaults to Editor.
// @Tags         articles
// @Accept       json
// @Produce      json
// @Param        article body CreateRequest true "Article"
// @Success      201 {object} DTO
// @Failure      400 {object} respond.ErrorBody "field errors"
// @Failure      500 {object} respond.ErrorBody
// @Router       /api/articles [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := bind.JSON(r, &req); err != nil {
		respond.DomainError(w, err)
		return
	}

	a, err := h.Svc.Create(r.Context(), artUC.CreateInput{
		Title:      req.Title,
		Excerpt:    req.Excerpt,
		Content:    req.Content,
		ImageURL:   req.ImageURL,
		CategoryID: req.CategoryID,
		AuthorName: req.AuthorName,
		AuthorRole: req.AuthorRole,
		IsBreaking: req.IsBreaking,
		IsFeatured: req.IsFeatured,
	})
	if err != nil {
		respond.DomainError(w, err)
		return
	}
	respond.JSON(w, http.StatusCreated, toDTO(a))
}
