package comment

import (
	"net/http"

	"newsdesk/internal/handler/http/pathutil"
	"newsdesk/internal/handler/http/respond"
	commentUC "newsdesk/internal/usecase/comment"
)

type PendingHandler struct{ Svc *commentUC.Service }

// ServeHTTP lists the moderation queue.
// @Summary      Pending comments
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Success      200 {array} DTO
// @Failure      401 {object} respond.ErrorBody
// @Failure      500 {object} respond.ErrorBody
// @Router       /api/admin/comments/pending [get]
func (h PendingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	list, err := h.Svc.ListPending(r.Context())
	if err != nil {
		respond.DomainError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTOs(list))
}

type ApproveHandler struct{ Svc *commentUC.Service }

// ServeHTTP approves a pending comment.
// @Summary      Approve comment
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Param        id path string true "Comment id"
// @Success      200 {object} respond.MessageBody
// @Failure      401 {object} respond.ErrorBody
// @Failure      404 {object} respond.ErrorBody
// @Router       /api/admin/comments/{id}/approve [post]
func (h ApproveHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.Key(r, "id")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	if _, err := h.Svc.Approve(r.Context(), id); err != nil {
		respond.DomainError(w, err)
		return
	}
	respond.Message(w, http.StatusOK, "Comment approved successfully")
}

type DeleteHandler struct{ Svc *commentUC.Service }

// ServeHTTP deletes a comment.
// @Summary      Delete comment
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Param        id path string true "Comment id"
// @Success      200 {object} respond.MessageBody
// @Failure      401 {object} respond.ErrorBody
// @Failure      404 {object} respond.ErrorBody
// @Router       /api/admin/comments/{id} [delete]
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
	respond.Message(w, http.StatusOK, "Comment deleted successfully")
}
