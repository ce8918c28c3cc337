package comment

import (
	"net/http"

	"newsdesk/internal/handler/http/bind"
	"newsdesk/internal/handler/http/pathutil"
	"newsdesk/internal/handler/http/respond"
	commentUC "newsdesk/internal/usecase/comment"
)

type ListHandler struct{ Svc *commentUC.Service }

// ServeHTTP lists the approved comments of an article.
// @Summary      List article comments
// @Description  Approved comments only, newest first
// @Tags         comments
// @Produce      json
// @Param        id path string true "Article id"
// @Success      200 {array} DTO
// @Failure      500 {object} respond.ErrorBody
// @Router       /api/articles/{id}/comments [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.Key(r, "id")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	list, err := h.Svc.ListApproved(r.Context(), id)
	if err != nil {
		respond.DomainError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTOs(list))
}

type CreateHandler struct{ Svc *commentUC.Service }

// ServeHTTP submits a comment for moderation.
// @Summary      Submit comment
// @Description  New comments stay hidden until approved
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        id      path string        true "Article id"
// @Param        comment body CreateRequest true "Comment"
// @Success      201 {object} DTO
// @Failure      400 {object} respond.ErrorBody
// @Failure      500 {object} respond.ErrorBody
// @Router       /api/articles/{id}/comments [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.Key(r, "id")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var req CreateRequest
	if err := bind.JSON(r, &req); err != nil {
		respond.DomainError(w, err)
		return
	}

	c, err := h.Svc.Create(r.Context(), commentUC.CreateInput{
		ArticleID:  id,
		AuthorName: req.AuthorName,
		Content:    req.Content,
	})
	if err != nil {
		respond.DomainError(w, err)
		return
	}
	respond.JSON(w, http.StatusCreated, toDTO(c))
}
