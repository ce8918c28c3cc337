package article

import (
	"net/http"

	"newsdesk/internal/handler/http/bind"
	"newsdesk/internal/handler/http/pathutil"
	"newsdesk/internal/handler/http/respond"
	artUC "newsdesk/internal/usecase/article"
)

type UpdateHandler struct{ Svc *artUC.Service }

// ServeHTTP partially updates an article.
// @Summary      Update article
// @Description  Only the fields present in the body change. A new title re-derives the slug; an empty imageUrl removes the image.
// @Tags         articles
// @Accept       json
// @Produce      json
// @Param        id      path string        true "Article id"
// @Param        article body UpdateRequest true "Fields to change"
// @Success      200 {object} DTO
// @Failure      400 {object} respond.ErrorBody
// @Failure      404 {object} respond.ErrorBody
// @Failure      500 {object} respond.ErrorBody
// @Router       /api/articles/{id} [put]
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.Key(r, "id")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var req UpdateRequest
	if err := bind.JSON(r, &req); err != nil {
		respond.DomainError(w, err)
		return
	}

	a, err := h.Svc.Update(r.Context(), id, artUC.UpdateInput{
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
	respond.JSON(w, http.StatusOK, toDTO(a))
}
