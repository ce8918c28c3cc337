package metrics

import "time"

// StatsSnapshot mirrors the admin dashboard counters.
type StatsSnapshot struct {
	TotalArticles   int
	TotalComments   int
	DailyViews      int64
	PendingComments int
}

// UpdateStats sets every newsroom gauge from one stats snapshot.
func UpdateStats(s StatsSnapshot) {
	ArticlesTotal.Set(float64(s.TotalArticles))
	CommentsTotal.Set(float64(s.TotalComments))
	CommentsPending.Set(float64(s.PendingComments))
	ArticleViewsSum.Set(float64(s.DailyViews))
}

func RecordArticleView() { ArticleViewsRecorded.Inc() }

func RecordArticleLike() { ArticleLikesRecorded.Inc() }

// RecordArticleMutation counts a create, update or delete.
func RecordArticleMutation(operation string) {
	ArticleMutations.WithLabelValues(operation).Inc()
}

func RecordCommentSubmitted() { CommentsSubmitted.Inc() }

// RecordCommentModerated counts an approve or delete from the moderation queue.
func RecordCommentModerated(action string) {
	CommentsModerated.WithLabelValues(action).Inc()
}

// RecordAdminLogin counts a login attempt.
func RecordAdminLogin(success bool) {
	result := "success"
	if !success {
		result = "failure"
	}
	AdminLogins.WithLabelValues(result).Inc()
}

// RecordDBQuery records the duration of a storage operation.
func RecordDBQuery(operation string, duration time.Duration) {
	DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}
