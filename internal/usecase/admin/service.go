// Package admin implements the back-office login and the dashboard stats.
package admin

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/observability/metrics"
	"newsdesk/internal/observability/tracing"
	"newsdesk/internal/repository"
)

// ErrInvalidCredentials is returned for an unknown username and for a wrong
// password alike.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Stats is the admin dashboard summary.
//
// DailyViews is the sum of all-time article views. The name is kept for
// client compatibility; it is not windowed to a day.
type Stats struct {
	TotalArticles   int
	TotalComments   int
	DailyViews      int64
	PendingComments int
}

type Service struct {
	Admins   repository.AdminRepository
	Articles repository.ArticleRepository
	Comments repository.CommentRepository
	Logger   *slog.Logger
}

func (s *Service) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

// Login checks a username/password pair and returns the matching admin.
// Missing fields are a validation error; everything else that fails is
// ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, username, password string) (*entity.Admin, error) {
	ctx, span := tracing.GetTracer().Start(ctx, "admin.Login")
	defer span.End()

	var errs entity.ValidationErrors
	if username == "" {
		errs = append(errs, &entity.ValidationError{Field: "username", Message: "is required"})
	}
	if password == "" {
		errs = append(errs, &entity.ValidationError{Field: "password", Message: "is required"})
	}
	if err := errs.OrNil(); err != nil {
		return nil, err
	}

	account, err := s.Admins.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("get admin: %w", err)
	}
	if account == nil || subtle.ConstantTimeCompare([]byte(account.Password), []byte(password)) != 1 {
		metrics.RecordAdminLogin(false)
		s.logger().WarnContext(ctx, "admin login failed", slog.String("username", username))
		return nil, ErrInvalidCredentials
	}

	metrics.RecordAdminLogin(true)
	s.logger().InfoContext(ctx, "admin login succeeded",
		slog.String("admin_id", account.ID),
		slog.String("role", account.Role))
	return account, nil
}

// Stats counts articles and comments and sums article views. The two
// tables are read concurrently.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	ctx, span := tracing.GetTracer().Start(ctx, "admin.Stats")
	defer span.End()

	var (
		articles []*entity.Article
		comments []*entity.Comment
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		articles, err = s.Articles.List(gctx)
		if err != nil {
			return fmt.Errorf("list articles: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		comments, err = s.Comments.List(gctx)
		if err != nil {
			return fmt.Errorf("list comments: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return Stats{}, err
	}

	st := Stats{
		TotalArticles: len(articles),
		TotalComments: len(comments),
	}
	for _, a := range articles {
		st.DailyViews += a.Views
	}
	for _, c := range comments {
		if c.Pending() {
			st.PendingComments++
		}
	}
	return st, nil
}

// Snapshot converts st for the business gauges.
func (st Stats) Snapshot() metrics.StatsSnapshot {
	return metrics.StatsSnapshot{
		TotalArticles:   st.TotalArticles,
		TotalComments:   st.TotalComments,
		DailyViews:      st.DailyViews,
		PendingComments: st.PendingComments,
	}
}
