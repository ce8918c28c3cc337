// Package rss serves the site feed as RSS 2.0.
package rss

import (
	"encoding/xml"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"newsdesk/internal/handler/http/respond"
	"newsdesk/internal/observability/logging"
	artUC "newsdesk/internal/usecase/article"
)

// ContentType is the media type of the feed response.
const ContentType = "application/rss+xml"

// DefaultItemLimit is the number of articles in the feed when Site.ItemLimit is unset.
const DefaultItemLimit = 20

// Site is the channel metadata.
type Site struct {
	Title       string
	Description string
	URL         string // base URL; item links are URL + "/article/" + slug
	Language    string
	ItemLimit   int
}

type cdata struct {
	Text string `xml:",cdata"`
}

type item struct {
	Title       cdata  `xml:"title"`
	Description cdata  `xml:"description"`
	Link        string `xml:"link"`
	GUID        string `xml:"guid"`
	PubDate     string `xml:"pubDate"`
}

type channel struct {
	Title         string `xml:"title"`
	Description   string `xml:"description"`
	Link          string `xml:"link"`
	Language      string `xml:"language"`
	LastBuildDate string `xml:"lastBuildDate"`
	Items         []item `xml:"item"`
}

type document struct {
	XMLName xml.Name `xml:"rss"`
	Version string   `xml:"version,attr"`
	Channel channel  `xml:"channel"`
}

type Handler struct {
	Svc  *artUC.Service
	Site Site
	Now  func() time.Time
}

// ServeHTTP renders the feed.
// @Summary      RSS feed
// @Description  The most recent articles as RSS 2.0. Titles and excerpts are wrapped in CDATA.
// @Tags         feed
// @Produce      xml
// @Success      200 {string} string "RSS 2.0 document"
// @Failure      500 {object} respond.ErrorBody
// @Router       /api/rss [get]
func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	limit := h.Site.ItemLimit
	if limit <= 0 {
		limit = DefaultItemLimit
	}
	articles, err := h.Svc.List(r.Context(), artUC.ListQuery{Limit: limit})
	if err != nil {
		respond.DomainError(w, err)
		return
	}

	now := time.Now
	if h.Now != nil {
		now = h.Now
	}
	base := strings.TrimRight(h.Site.URL, "/")
	doc := document{
		Version: "2.0",
		Channel: channel{
			Title:         h.Site.Title,
			Description:   h.Site.Description,
			Link:          base,
			Language:      h.Site.Language,
			LastBuildDate: now().UTC().Format(http.TimeFormat),
			Items:         make([]item, 0, len(articles)),
		},
	}
	for _, a := range articles {
		link := base + "/article/" + a.Slug
		doc.Channel.Items = append(doc.Channel.Items, item{
			Title:       cdata{a.Title},
			Description: cdata{a.Excerpt},
			Link:        link,
			GUID:        link,
			PubDate:     a.PublishedAt.UTC().Format(http.TimeFormat),
		})
	}

	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", ContentType)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(append([]byte(xml.Header), out...)); err != nil {
		logging.FromContext(r.Context()).Warn("failed to write rss feed", slog.Any("error", err))
	}
}

func Register(mux *http.ServeMux, svc *artUC.Service, site Site) {
	mux.Handle("GET    /api/rss", Handler{Svc: svc, Site: site})
}
