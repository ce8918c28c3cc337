package category

import (
	"net/http"

	catUC "newsdesk/internal/usecase/category"
)

func Register(mux *http.ServeMux, svc *catUC.Service) {
	mux.Handle("GET    /api/categories", ListHandler{svc})
	mux.Handle("GET    /api/categories/{slug}", GetHandler{svc})
	mux.Handle("POST   /api/categories", CreateHandler{svc})
}
