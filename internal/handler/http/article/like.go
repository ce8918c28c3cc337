package article

import (
	"net/http"

	"newsdesk/internal/handler/http/pathutil"
	"newsdesk/internal/handler/http/respond"
	artUC "newsdesk/internal/usecase/article"
)

type LikeHandler struct{ Svc *artUC.Service }

// ServeHTTP adds a like. Unknown ids are accepted and ignored.
// @Summary      Like article
// @Tags         articles
// @Produce      json
// @Param        id path string true "Article id"
// @Success      200 {object} respond.MessageBody
// @Failure      500 {object} respond.ErrorBody
// @Router       /api/articles/{id}/like [post]
func (h LikeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.Key(r, "id")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	if err := h.Svc.IncrementLikes(r.Context(), id); err != nil {
		respond.DomainError(w, err)
		return
	}
	respond.Message(w, http.StatusOK, "Article liked successfully")
}
