// Package admin provides the dashboard endpoints of the back office.
package admin

import (
	"net/http"

	"newsdesk/internal/handler/http/respond"
	adminUC "newsdesk/internal/usecase/admin"
)

// StatsDTO is the dashboard summary. dailyViews is the all-time sum of article views.
type StatsDTO struct {
	TotalArticles   int   `json:"totalArticles" example:"12"`
	TotalComments   int   `json:"totalComments" example:"40"`
	DailyViews      int64 `json:"dailyViews" example:"5321"`
	PendingComments int   `json:"pendingComments" example:"3"`
}

type StatsHandler struct{ Svc *adminUC.Service }

// ServeHTTP returns the dashboard counters.
// @Summary      Dashboard stats
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} StatsDTO
// @Failure      401 {object} respond.ErrorBody
// @Failure      500 {object} respond.ErrorBody
// @Router       /api/admin/stats [get]
func (h StatsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	st, err := h.Svc.Stats(r.Context())
	if err != nil {
		respond.DomainError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, StatsDTO{
		TotalArticles:   st.TotalArticles,
		TotalComments:   st.TotalComments,
		DailyViews:      st.DailyViews,
		PendingComments: st.PendingComments,
	})
}

func Register(mux *http.ServeMux, svc *adminUC.Service) {
	mux.Handle("GET    /api/admin/stats", StatsHandler{svc})
}
