package article

import (
	"net/http"

	"newsdesk/internal/handler/http/pathutil"
	"newsdesk/internal/handler/http/respond"
	artUC "newsdesk/internal/usecase/article"
)

type DeleteHandler struct{ Svc *artUC.Service }

// ServeHTTP deletes an article.
// @Summary      Delete article
// @Tags         articles
// @Produce      json
// @Param        id path string true "Article id"
// @Success      200 {object} respond.MessageBody
// @Failure      404 {object} respond.ErrorBody
// @Failure      500 {object} respond.ErrorBody
// @Router       /api/articles/{id} [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.Key(r, "id")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	if err := h.Svc.Delete(r.Context(), id); err != nil {
		respond.DomainError(w, err)
		return
	}
	respond.Message(w, http.StatusOK, "Article deleted successfully")
}
