package article

import (
	"net/http"

	"newsdesk/internal/common/pagination"
	artUC "newsdesk/internal/usecase/article"
)

func Register(mux *http.ServeMux, svc *artUC.Service, paginationCfg pagination.Config) {
	mux.Handle("GET    /api/articles", ListHandler{Svc: svc, PaginationCfg: paginationCfg})
	mux.Handle("GET    /api/articles/{slug}", GetHandler{svc})
	mux.Handle("POST   /api/articles", CreateHandler{svc})
	mux.Handle("PUT    /api/articles/{id}", UpdateHandler{svc})
	mux.Handle("DELETE /api/articles/{id}", DeleteHandler{svc})
	mux.Handle("POST   /api/articles/{id}/like", LikeHandler{svc})
}
