package category

import (
	"net/http"

	"newsdesk/internal/handler/http/bind"
	"newsdesk/internal/handler/http/pathutil"
	"newsdesk/internal/handler/http/respond"
	catUC "newsdesk/internal/usecase/category"
)

type ListHandler struct{ Svc *catUC.Service }

// ServeHTTP lists categories.
// @Summary      List categories
// @Description  Returns every category in creation order
// @Tags         categories
// @Produce      json
// @Success      200 {array} DTO
// @Failure      500 {object} respond.ErrorBody
// @Router       /api/categories [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	list, err := h.Svc.List(r.Context())
	if err != nil {
		respond.DomainError(w, err)
		return
	}
	out := make([]DTO, 0, len(list))
	for _, c := range list {
		out = append(out, *ToDTO(c))
	}
	respond.JSON(w, http.StatusOK, out)
}

type GetHandler struct{ Svc *catUC.Service }

// ServeHTTP returns a category by slug.
// @Summary      Get category
// @Tags         categories
// @Produce      json
// @Param        slug path string true "Category slug"
// @Success      200 {object} DTO
// @Failure      400 {object} respond.ErrorBody
// @Failure      404 {object} respond.ErrorBody
// @Router       /api/categories/{slug} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	slug, err := pathutil.Key(r, "slug")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	c, err := h.Svc.GetBySlug(r.Context(), slug)
	if err != nil {
		respond.DomainError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, ToDTO(c))
}

type CreateHandler struct{ Svc *catUC.Service }

// ServeHTTP creates a category.
// @Summary      Create category
// @Description  The slug is derived from the name; color defaults to #1a365d
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        category body CreateRequest true "Category"
// @Success      201 {object} DTO
// @Failure      400 {object} respond.ErrorBody
// @Router       /api/categories [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := bind.JSON(r, &req); err != nil {
		respond.DomainError(w, err)
		return
	}
	c, err := h.Svc.Create(r.Context(), catUC.CreateInput{Name: req.Name, Color: req.Color})
	if err != nil {
		respond.DomainError(w, err)
		return
	}
	respond.JSON(w, http.StatusCreated, ToDTO(c))
}
