// Package comment implements reader comments and their moderation queue.
// A comment is created pending, becomes publicly visible once approved, and
// can be deleted from either state.
package comment

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/observability/metrics"
	"newsdesk/internal/observability/tracing"
	"newsdesk/internal/repository"
)

// ErrCommentNotFound indicates that the requested comment was not found.
var ErrCommentNotFound = fmt.Errorf("comment %w", entity.ErrNotFound)

// CreateInput represents a reader submission. ArticleID is taken from the
// request path, never from the body.
type CreateInput struct {
	ArticleID  string
	AuthorName string
	Content    string
}

type Service struct {
	Repo     repository.CommentRepository
	Articles repository.ArticleRepository
	Logger   *slog.Logger
	Now      func() time.Time
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Service) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

func newestFirst(a, b *entity.Comment) int {
	return b.CreatedAt.Compare(a.CreatedAt)
}

func (s *Service) listWhere(ctx context.Context, keep func(*entity.Comment) bool) ([]*entity.Comment, error) {
	all, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	out := make([]*entity.Comment, 0, len(all))
	for _, c := range all {
		if keep(c) {
			out = append(out, c)
		}
	}
	slices.SortStableFunc(out, newestFirst)
	return out, nil
}

// ListApproved returns the approved comments of one article, newest first.
func (s *Service) ListApproved(ctx context.Context, articleID string) ([]*entity.Comment, error) {
	return s.listWhere(ctx, func(c *entity.Comment) bool {
		return c.ArticleID == articleID && c.IsApproved
	})
}

// ListPending returns the moderation queue across all articles, newest first.
func (s *Service) ListPending(ctx context.Context) ([]*entity.Comment, error) {
	return s.listWhere(ctx, func(c *entity.Comment) bool { return c.Pending() })
}

// Create stores a pending comment. The target article must exist.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Comment, error) {
	ctx, span := tracing.GetTracer().Start(ctx, "comment.Create")
	defer span.End()

	var errs entity.ValidationErrors
	for _, f := range []struct{ name, value string }{
		{"articleId", in.ArticleID},
		{"authorName", in.AuthorName},
		{"content", in.Content},
	} {
		if e := entity.RequireText(f.name, f.value); e != nil {
			errs = append(errs, e)
		}
	}
	if strings.TrimSpace(in.ArticleID) != "" {
		article, err := s.Articles.Get(ctx, in.ArticleID)
		if err != nil {
			return nil, fmt.Errorf("create comment: %w", err)
		}
		if article == nil {
			errs = append(errs, &entity.ValidationError{Field: "articleId", Message: "does not reference an existing article"})
		}
	}
	if err := errs.OrNil(); err != nil {
		return nil, err
	}

	now := s.now()
	c := &entity.Comment{
		ID:         uuid.NewString(),
		ArticleID:  in.ArticleID,
		AuthorName: in.AuthorName,
		Content:    in.Content,
		CreatedAt:  now,
	}
	if err := s.Repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	metrics.RecordCommentSubmitted()
	return c, nil
}

// Approve moves a comment out of the moderation queue. Approving an
// already approved comment succeeds and leaves it approved.
func (s *Service) Approve(ctx context.Context, id string) (*entity.Comment, error) {
	ctx, span := tracing.GetTracer().Start(ctx, "comment.Approve")
	defer span.End()

	c, err := s.Repo.Approve(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("approve comment: %w", err)
	}
	if c == nil {
		return nil, ErrCommentNotFound
	}

	metrics.RecordCommentModerated("approve")
	s.logger().InfoContext(ctx, "comment approved",
		slog.String("comment_id", id),
		slog.String("article_id", c.ArticleID))
	return c, nil
}

// Delete removes a comment in any state.
func (s *Service) Delete(ctx context.Context, id string) error {
	ctx, span := tracing.GetTracer().Start(ctx, "comment.Delete")
	defer span.End()

	ok, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	if !ok {
		return ErrCommentNotFound
	}

	metrics.RecordCommentModerated("delete")
	s.logger().InfoContext(ctx, "comment deleted", slog.String("comment_id", id))
	return nil
}
