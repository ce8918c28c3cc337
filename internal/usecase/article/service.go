package article

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/observability/metrics"
	"newsdesk/internal/observability/tracing"
	"newsdesk/internal/repository"
)

// CreateInput represents the input parameters for creating a new article.
type CreateInput struct {
	Title      string
	Excerpt    string
	Content    string
	ImageURL   *string
	CategoryID string
	AuthorName string
	AuthorRole string
	IsBreaking bool
	IsFeatured bool
}

// UpdateInput represents a partial update. Fields with nil values are left
// unchanged. An empty ImageURL clears the image.
type UpdateInput struct {
	Title      *string
	Excerpt    *string
	Content    *string
	ImageURL   *string
	CategoryID *string
	AuthorName *string
	AuthorRole *string
	IsBreaking *bool
	IsFeatured *bool
}

// WithCategory is an article joined with its category. Category is nil when
// the article points at a category that no longer exists.
type WithCategory struct {
	Article  *entity.Article
	Category *entity.Category
}

// Service provides article management use cases.
type Service struct {
	Repo       repository.ArticleRepository
	Categories repository.CategoryRepository
	Logger     *slog.Logger
	Now        func() time.Time
}

func (s *Service) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Query returns the view selected by q.Mode.
func (s *Service) Query(ctx context.Context, q ListQuery) ([]*entity.Article, error) {
	ctx, span := tracing.GetTracer().Start(ctx, "article.Query")
	defer span.End()
	span.SetAttributes(attribute.String("article.mode", q.Mode.String()))

	q = q.Normalize()
	if err := q.Validate(); err != nil {
		return nil, err
	}

	all, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return applyQuery(all, q), nil
}

// List returns articles newest first, optionally restricted to one category,
// windowed by Limit and Offset.
func (s *Service) List(ctx context.Context, q ListQuery) ([]*entity.Article, error) {
	q.Mode = ModeList
	return s.Query(ctx, q)
}

// Featured returns the five most recent featured articles.
func (s *Service) Featured(ctx context.Context) ([]*entity.Article, error) {
	return s.Query(ctx, ListQuery{Mode: ModeFeatured})
}

// Breaking returns every breaking article, newest first.
func (s *Service) Breaking(ctx context.Context) ([]*entity.Article, error) {
	return s.Query(ctx, ListQuery{Mode: ModeBreaking})
}

// Trending returns the five most viewed articles.
func (s *Service) Trending(ctx context.Context) ([]*entity.Article, error) {
	return s.Query(ctx, ListQuery{Mode: ModeTrending})
}

// Search matches query case-insensitively against title, excerpt and content.
// An empty query matches everything.
func (s *Service) Search(ctx context.Context, query string) ([]*entity.Article, error) {
	return s.Query(ctx, ListQuery{Mode: ModeSearch, Search: query})
}

// Get retrieves a single article by its ID.
// Returns ErrArticleNotFound if the article does not exist.
func (s *Service) Get(ctx context.Context, id string) (*entity.Article, error) {
	article, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}
	return article, nil
}

// GetBySlug retrieves a single article by its slug.
// Returns ErrArticleNotFound if the article does not exist.
func (s *Service) GetBySlug(ctx context.Context, slug string) (*entity.Article, error) {
	article, err := s.Repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("get article by slug: %w", err)
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}
	return article, nil
}

// WithCategories joins each article with its category.
func (s *Service) WithCategories(ctx context.Context, articles []*entity.Article) ([]WithCategory, error) {
	categories, err := s.Categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	byID := make(map[string]*entity.Category, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}

	out := make([]WithCategory, len(articles))
	for i, a := range articles {
		out[i] = WithCategory{Article: a, Category: byID[a.CategoryID]}
	}
	return out, nil
}

// WithCategory joins a single article with its category.
func (s *Service) WithCategory(ctx context.Context, a *entity.Article) (WithCategory, error) {
	category, err := s.Categories.Get(ctx, a.CategoryID)
	if err != nil {
		return WithCategory{}, fmt.Errorf("get category: %w", err)
	}
	return WithCategory{Article: a, Category: category}, nil
}

func (s *Service) checkCategory(ctx context.Context, id string) (*entity.ValidationError, error) {
	category, err := s.Categories.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	if category == nil {
		return &entity.ValidationError{Field: "categoryId", Message: "does not reference an existing category"}, nil
	}
	return nil, nil
}

func slugFor(title string) (string, *entity.ValidationError) {
	slug := entity.Slugify(title)
	if slug == "" {
		return "", &entity.ValidationError{Field: "title", Message: "must contain at least one letter or digit"}
	}
	return slug, nil
}

var errDuplicateTitle = &entity.ValidationError{Field: "title", Message: "an article with this title already exists"}

// Create validates the input and stores a new article with zeroed counters.
// Returns entity.ValidationErrors describing every invalid field.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Article, error) {
	ctx, span := tracing.GetTracer().Start(ctx, "article.Create")
	defer span.End()

	var errs entity.ValidationErrors
	for _, f := range []struct{ name, value string }{
		{"title", in.Title},
		{"excerpt", in.Excerpt},
		{"content", in.Content},
		{"categoryId", in.CategoryID},
		{"authorName", in.AuthorName},
	} {
		if e := entity.RequireText(f.name, f.value); e != nil {
			errs = append(errs, e)
		}
	}
	if in.ImageURL != nil && *in.ImageURL != "" {
		if err := entity.ValidateImageURL(*in.ImageURL); err != nil {
			errs = append(errs, entity.Fields(err)...)
		}
	}

	slug := ""
	if strings.TrimSpace(in.Title) != "" {
		var e *entity.ValidationError
		if slug, e = slugFor(in.Title); e != nil {
			errs = append(errs, e)
		}
	}
	if strings.TrimSpace(in.CategoryID) != "" {
		e, err := s.checkCategory(ctx, in.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("create article: %w", err)
		}
		if e != nil {
			errs = append(errs, e)
		}
	}
	if err := errs.OrNil(); err != nil {
		return nil, err
	}

	role := in.AuthorRole
	if strings.TrimSpace(role) == "" {
		role = entity.DefaultAuthorRole
	}
	var image *string
	if in.ImageURL != nil && *in.ImageURL != "" {
		v := *in.ImageURL
		image = &v
	}

	now := s.now()
	art := &entity.Article{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Slug:        slug,
		Excerpt:     in.Excerpt,
		Content:     in.Content,
		ImageURL:    image,
		CategoryID:  in.CategoryID,
		AuthorName:  in.AuthorName,
		AuthorRole:  role,
		IsBreaking:  in.IsBreaking,
		IsFeatured:  in.IsFeatured,
		PublishedAt: now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.Repo.Create(ctx, art); err != nil {
		if errors.Is(err, repository.ErrDuplicateSlug) {
			return nil, errDuplicateTitle
		}
		return nil, fmt.Errorf("create article: %w", err)
	}

	metrics.RecordArticleMutation("create")
	s.logger().InfoContext(ctx, "article created",
		slog.String("article_id", art.ID),
		slog.String("slug", art.Slug))
	return art, nil
}

// Update applies the non-nil fields of in to the article. The slug is
// recomputed only when the title changes; updatedAt is always refreshed.
// Returns ErrArticleNotFound if the article does not exist.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (*entity.Article, error) {
	ctx, span := tracing.GetTracer().Start(ctx, "article.Update")
	defer span.End()

	current, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("update article: %w", err)
	}
	if current == nil {
		return nil, ErrArticleNotFound
	}

	next := current.Clone()
	var errs entity.ValidationErrors
	setText := func(field string, dst *string, v *string) {
		if v == nil {
			return
		}
		if e := entity.RequireText(field, *v); e != nil {
			errs = append(errs, e)
			return
		}
		*dst = *v
	}

	if in.Title != nil && *in.Title != current.Title {
		setText("title", &next.Title, in.Title)
		if strings.TrimSpace(*in.Title) != "" {
			slug, e := slugFor(*in.Title)
			if e != nil {
				errs = append(errs, e)
			}
			next.Slug = slug
		}
	}
	setText("excerpt", &next.Excerpt, in.Excerpt)
	setText("content", &next.Content, in.Content)
	setText("authorName", &next.AuthorName, in.AuthorName)
	if in.AuthorRole != nil {
		next.AuthorRole = *in.AuthorRole
		if strings.TrimSpace(next.AuthorRole) == "" {
			next.AuthorRole = entity.DefaultAuthorRole
		}
	}
	if in.ImageURL != nil {
		if *in.ImageURL == "" {
			next.ImageURL = nil
		} else if err := entity.ValidateImageURL(*in.ImageURL); err != nil {
			errs = append(errs, entity.Fields(err)...)
		} else {
			v := *in.ImageURL
			next.ImageURL = &v
		}
	}
	if in.CategoryID != nil && *in.CategoryID != current.CategoryID {
		setText("categoryId", &next.CategoryID, in.CategoryID)
		if strings.TrimSpace(*in.CategoryID) != "" {
			e, err := s.checkCategory(ctx, *in.CategoryID)
			if err != nil {
				return nil, fmt.Errorf("update article: %w", err)
			}
			if e != nil {
				errs = append(errs, e)
			}
		}
	}
	if in.IsBreaking != nil {
		next.IsBreaking = *in.IsBreaking
	}
	if in.IsFeatured != nil {
		next.IsFeatured = *in.IsFeatured
	}
	if err := errs.OrNil(); err != nil {
		return nil, err
	}

	next.UpdatedAt = s.now()

	found, err := s.Repo.Update(ctx, &next)
	if errors.Is(err, repository.ErrDuplicateSlug) {
		return nil, errDuplicateTitle
	}
	if err != nil {
		return nil, fmt.Errorf("update article: %w", err)
	}
	if !found {
		return nil, ErrArticleNotFound
	}

	metrics.RecordArticleMutation("update")
	return &next, nil
}

// Delete removes an article.
// Returns ErrArticleNotFound if the article does not exist.
func (s *Service) Delete(ctx context.Context, id string) error {
	ctx, span := tracing.GetTracer().Start(ctx, "article.Delete")
	defer span.End()

	ok, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	if !ok {
		return ErrArticleNotFound
	}

	metrics.RecordArticleMutation("delete")
	s.logger().InfoContext(ctx, "article deleted", slog.String("article_id", id))
	return nil
}

// IncrementViews adds one view. Unknown ids are ignored and not counted.
func (s *Service) IncrementViews(ctx context.Context, id string) error {
	ok, err := s.Repo.IncrementViews(ctx, id)
	if err != nil {
		return fmt.Errorf("increment views: %w", err)
	}
	if ok {
		metrics.RecordArticleView()
	}
	return nil
}

// IncrementLikes adds one like. Unknown ids are ignored and not counted.
func (s *Service) IncrementLikes(ctx context.Context, id string) error {
	ok, err := s.Repo.IncrementLikes(ctx, id)
	if err != nil {
		return fmt.Errorf("increment likes: %w", err)
	}
	if ok {
		metrics.RecordArticleLike()
	}
	return nil
}
