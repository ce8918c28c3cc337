package entity

import "time"

// Comment is a reader comment attached to an article.
// Comments start pending (IsApproved=false) and only become publicly visible
// after moderation approves them. There is no transition back to pending.
type Comment struct {
	ID         string
	ArticleID  string
	AuthorName string
	Content    string
	IsApproved bool
	Likes      int64
	CreatedAt  time.Time
}

// Pending reports whether the comment is still waiting in the moderation queue.
func (c Comment) Pending() bool {
	return !c.IsApproved
}
