package article

import (
	"net/http"

	"newsdesk/internal/common/pagination"
	"newsdesk/internal/handler/http/respond"
	artUC "newsdesk/internal/usecase/article"
)

// ParseListQuery turns the query string of GET /api/articles into a typed
// query. Views take precedence featured > breaking > trending > search > list;
// a flag is set only by the literal value "true". limit and offset are read
// for the plain list only.
func ParseListQuery(r *http.Request, cfg pagination.Config) (artUC.ListQuery, error) {
	v := r.URL.Query()
	switch {
	case v.Get("featured") == "true":
		return artUC.ListQuery{Mode: artUC.ModeFeatured}, nil
	case v.Get("breaking") == "true":
		return artUC.ListQuery{Mode: artUC.ModeBreaking}, nil
	case v.Get("trending") == "true":
		return artUC.ListQuery{Mode: artUC.ModeTrending}, nil
	case v.Get("search") != "":
		return artUC.ListQuery{Mode: artUC.ModeSearch, Search: v.Get("search")}, nil
	}

	p, err := pagination.ParseQueryParams(r, cfg)
	if err != nil {
		return artUC.ListQuery{}, err
	}
	return artUC.ListQuery{
		Mode:       artUC.ModeList,
		CategoryID: v.Get("category"),
		Limit:      p.Limit,
		Offset:     p.Offset,
	}, nil
}

type ListHandler struct {
	Svc           *artUC.Service
	PaginationCfg pagination.Config
}

// ServeHTTP lists articles.
// @Summary      List articles
// @Description  Newest first. featured, breaking and trending select fixed views; search matches title, excerpt and content. Each item carries its category.
// @Tags         articles
// @Produce      json
// @Param        category query string false "Category id filter (list view only)"
// @Param        limit    query int    false "Page size (list view only)" default(20)
// @Param        offset   query int    false "Items to skip (list view only)" default(0)
// @Param        featured query string false "true selects up to 5 featured articles"
// @Param        breaking query string false "true selects all breaking articles"
// @Param        trending query string false "true selects the 5 most viewed articles"
// @Param        search   query string false "Case-insensitive substring"
// @Success      200 {array} WithCategoryDTO
// @Failure      400 {object} respond.ErrorBody "invalid limit or offset"
// @Failure      500 {object} respond.ErrorBody
// @Router       /api/articles [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q, err := ParseListQuery(r, h.PaginationCfg)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	list, err := h.Svc.Query(r.Context(), q)
	if err != nil {
		respond.DomainError(w, err)
		return
	}
	joined, err := h.Svc.WithCategories(r.Context(), list)
	if err != nil {
		respond.DomainError(w, err)
		return
	}

	out := make([]WithCategoryDTO, 0, len(joined))
	for _, j := range joined {
		out = append(out, toWithCategoryDTO(j))
	}
	respond.JSON(w, http.StatusOK, out)
}
