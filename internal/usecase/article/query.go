package article

import (
	"slices"
	"strings"

	"newsdesk/internal/domain/entity"
)

// Mode selects which article view a ListQuery returns.
type Mode int

const (
	ModeList Mode = iota
	ModeFeatured
	ModeBreaking
	ModeTrending
	ModeSearch
)

func (m Mode) String() string {
	switch m {
	case ModeFeatured:
		return "featured"
	case ModeBreaking:
		return "breaking"
	case ModeTrending:
		return "trending"
	case ModeSearch:
		return "search"
	default:
		return "list"
	}
}

const (
	// DefaultLimit is the page size when a list query names none.
	DefaultLimit = 20
	// FeaturedLimit caps the featured view.
	FeaturedLimit = 5
	// TrendingLimit caps the trending view.
	TrendingLimit = 5
)

// ListQuery is the parsed form of the article listing query string.
// CategoryID, Limit and Offset only apply to ModeList; Search only to ModeSearch.
type ListQuery struct {
	Mode       Mode
	CategoryID string
	Search     string
	Limit      int
	Offset     int
}

// Normalize fills defaults. Limit 0 means DefaultLimit.
func (q ListQuery) Normalize() ListQuery {
	if q.Limit == 0 {
		q.Limit = DefaultLimit
	}
	return q
}

// Validate rejects negative windows.
func (q ListQuery) Validate() error {
	if q.Limit < 0 || q.Offset < 0 {
		return ErrInvalidListQuery
	}
	return nil
}

// byPublishedDesc orders newest first. Ties keep storage order.
func byPublishedDesc(a, b *entity.Article) int {
	return b.PublishedAt.Compare(a.PublishedAt)
}

func byViewsDesc(a, b *entity.Article) int {
	switch {
	case a.Views > b.Views:
		return -1
	case a.Views < b.Views:
		return 1
	default:
		return 0
	}
}

func filter(articles []*entity.Article, keep func(*entity.Article) bool) []*entity.Article {
	out := make([]*entity.Article, 0, len(articles))
	for _, a := range articles {
		if keep(a) {
			out = append(out, a)
		}
	}
	return out
}

// window returns articles[offset:offset+limit], clamped to the slice.
func window(articles []*entity.Article, offset, limit int) []*entity.Article {
	if offset >= len(articles) {
		return []*entity.Article{}
	}
	end := len(articles)
	// compare against the remaining length; offset+limit can overflow
	if limit > 0 && limit < end-offset {
		end = offset + limit
	}
	return articles[offset:end]
}

func first(articles []*entity.Article, n int) []*entity.Article {
	return window(articles, 0, n)
}

// applyQuery runs the filtering, ordering and windowing of q over a full
// snapshot of the articles.
func applyQuery(all []*entity.Article, q ListQuery) []*entity.Article {
	switch q.Mode {
	case ModeFeatured:
		out := filter(all, func(a *entity.Article) bool { return a.IsFeatured })
		slices.SortStableFunc(out, byPublishedDesc)
		return first(out, FeaturedLimit)
	case ModeBreaking:
		out := filter(all, func(a *entity.Article) bool { return a.IsBreaking })
		slices.SortStableFunc(out, byPublishedDesc)
		return out
	case ModeTrending:
		out := slices.Clone(all)
		slices.SortStableFunc(out, byViewsDesc)
		return first(out, TrendingLimit)
	case ModeSearch:
		needle := strings.ToLower(q.Search)
		out := filter(all, func(a *entity.Article) bool { return a.MatchesQuery(needle) })
		slices.SortStableFunc(out, byPublishedDesc)
		return out
	default:
		out := all
		if q.CategoryID != "" {
			out = filter(all, func(a *entity.Article) bool { return a.CategoryID == q.CategoryID })
		} else {
			out = slices.Clone(all)
		}
		slices.SortStableFunc(out, byPublishedDesc)
		return window(out, q.Offset, q.Limit)
	}
}
