package comment

import (
	"net/http"

	commentUC "newsdesk/internal/usecase/comment"
)

// Register mounts the public comment routes and the moderation routes.
// Moderation routes live under /api/admin and are guarded by the auth middleware.
func Register(mux *http.ServeMux, svc *commentUC.Service) {
	mux.Handle("GET    /api/articles/{id}/comments", ListHandler{svc})
	mux.Handle("POST   /api/articles/{id}/comments", CreateHandler{svc})

	mux.Handle("GET    /api/admin/comments/pending", PendingHandler{svc})
	mux.Handle("POST   /api/admin/comments/{id}/approve", ApproveHandler{svc})
	mux.Handle("DELETE /api/admin/comments/{id}", DeleteHandler{svc})
}
