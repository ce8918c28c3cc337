package article

import (
	"log/slog"
	"net/http"

	"newsdesk/internal/handler/http/pathutil"
	"newsdesk/internal/handler/http/respond"
	"newsdesk/internal/observability/logging"
	artUC "newsdesk/internal/usecase/article"
)

type GetHandler struct{ Svc *artUC.Service }

// ServeHTTP returns one article by slug and counts the view.
// @Summary      Get article
// @Description  Looks the article up by slug, increments its view counter and joins its category. The returned views value is the count before this request.
// @Tags         articles
// @Produce      json
// @Param        slug path string true "Article slug"
// @Success      200 {object} WithCategoryDTO
// @Failure      400 {object} respond.ErrorBody
// @Failure      404 {object} respond.ErrorBody
// @Failure      500 {object} respond.ErrorBody
// @Router       /api/articles/{slug} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	slug, err := pathutil.Key(r, "slug")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	a, err := h.Svc.GetBySlug(r.Context(), slug)
	if err != nil {
		respond.DomainError(w, err)
		return
	}
	if err := h.Svc.IncrementViews(r.Context(), a.ID); err != nil {
		logging.FromContext(r.Context()).Warn("failed to count article view",
			slog.String("article_id", a.ID),
			slog.Any("error", respond.SanitizeError(err)))
	}

	joined, err := h.Svc.WithCategory(r.Context(), a)
	if err != nil {
		respond.DomainError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, toWithCategoryDTO(joined))
}
