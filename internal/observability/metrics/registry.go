package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics track HTTP request patterns and performance
var (
	// HTTPRequestsTotal counts total HTTP requests by method, path, and status
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration measures HTTP request duration in seconds
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// HTTPResponseSize measures HTTP response body size in bytes
	HTTPResponseSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_response_size_bytes",
			Help:    "HTTP response size in bytes",
			Buckets: prometheus.ExponentialBuckets(100, 10, 8),
		},
		[]string{"method", "path"},
	)
)

// Newsroom gauges are refreshed from the admin stats by the scheduler.
var (
	ArticlesTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "newsdesk_articles_total",
			Help: "Number of stored articles",
		},
	)

	CommentsTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "newsdesk_comments_total",
			Help: "Number of stored comments, approved and pending",
		},
	)

	CommentsPending = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "newsdesk_comments_pending",
			Help: "Number of comments waiting for moderation",
		},
	)

	// ArticleViewsSum is the all-time sum of article views.
	ArticleViewsSum = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "newsdesk_article_views_sum",
			Help: "Sum of views across all articles",
		},
	)
)

// Newsroom counters are incremented on the request path.
var (
	ArticleViewsRecorded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "newsdesk_article_views_recorded_total",
			Help: "Article views recorded since process start",
		},
	)

	ArticleLikesRecorded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "newsdesk_article_likes_recorded_total",
			Help: "Article likes recorded since process start",
		},
	)

	ArticleMutations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newsdesk_article_mutations_total",
			Help: "Article create, update and delete operations",
		},
		[]string{"operation"},
	)

	CommentsSubmitted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "newsdesk_comments_submitted_total",
			Help: "Comments submitted by readers",
		},
	)

	CommentsModerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newsdesk_comments_moderated_total",
			Help: "Moderation actions by type",
		},
		[]string{"action"}, // approve, delete
	)

	AdminLogins = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newsdesk_admin_logins_total",
			Help: "Admin login attempts by result",
		},
		[]string{"result"}, // success, failure
	)
)

// Database metrics track storage performance
var (
	// DBQueryDuration measures storage query duration
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 10),
		},
		[]string{"operation"},
	)
)

// RecordHTTPRequest records an HTTP request with its metadata
func RecordHTTPRequest(method, path, status string, duration time.Duration, responseSize int) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())

	if responseSize > 0 {
		HTTPResponseSize.WithLabelValues(method, path).Observe(float64(responseSize))
	}
}
