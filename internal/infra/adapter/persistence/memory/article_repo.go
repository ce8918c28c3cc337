package memory

import (
	"context"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/repository"
)

type ArticleRepo struct{ s *Store }

func NewArticleRepo(s *Store) repository.ArticleRepository {
	return &ArticleRepo{s: s}
}

func (repo *ArticleRepo) List(_ context.Context) ([]*entity.Article, error) {
	rows := repo.s.articles.all()
	out := make([]*entity.Article, len(rows))
	for i := range rows {
		out[i] = &rows[i]
	}
	return out, nil
}

func (repo *ArticleRepo) Get(_ context.Context, id string) (*entity.Article, error) {
	a, ok := repo.s.articles.get(id)
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (repo *ArticleRepo) GetBySlug(_ context.Context, slug string) (*entity.Article, error) {
	a, ok := repo.s.articles.find(func(a entity.Article) bool { return a.Slug == slug })
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (repo *ArticleRepo) Create(_ context.Context, article *entity.Article) error {
	if !repo.s.articles.insert(article.ID, *article, sameSlug(article.Slug)) {
		return repository.ErrDuplicateSlug
	}
	return nil
}

// Update overwrites the editable fields. Views, likes and the creation
// timestamps stay as stored, and the caller's article receives the current
// counters.
func (repo *ArticleRepo) Update(_ context.Context, article *entity.Article) (bool, error) {
	stored, found, conflict := repo.s.articles.update(article.ID, func(cur *entity.Article) {
		next := article.Clone()
		next.Views, next.Likes = cur.Views, cur.Likes
		next.PublishedAt, next.CreatedAt = cur.PublishedAt, cur.CreatedAt
		*cur = next
	}, sameSlug(article.Slug))
	if conflict {
		return true, repository.ErrDuplicateSlug
	}
	if found {
		article.Views, article.Likes = stored.Views, stored.Likes
	}
	return found, nil
}

func (repo *ArticleRepo) Delete(_ context.Context, id string) (bool, error) {
	return repo.s.articles.remove(id), nil
}

func (repo *ArticleRepo) IncrementViews(_ context.Context, id string) (bool, error) {
	_, ok := repo.s.articles.mutate(id, func(a *entity.Article) { a.Views++ })
	return ok, nil
}

func (repo *ArticleRepo) IncrementLikes(_ context.Context, id string) (bool, error) {
	_, ok := repo.s.articles.mutate(id, func(a *entity.Article) { a.Likes++ })
	return ok, nil
}

func sameSlug(slug string) func(entity.Article) bool {
	return func(existing entity.Article) bool { return existing.Slug == slug }
}
