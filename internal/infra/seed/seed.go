// Package seed loads the demo data set: one admin, the seven default
// categories and a handful of sample articles.
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/repository"
)

//go:embed data.yaml
var dataYAML []byte

// publishWindow bounds how far back sample articles are published.
const publishWindow = 7 * 24 * time.Hour

type dataset struct {
	Admin struct {
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		Role     string `yaml:"role"`
	} `yaml:"admin"`
	Categories []struct {
		Name  string `yaml:"name"`
		Color string `yaml:"color"`
	} `yaml:"categories"`
	Articles []struct {
		Title      string `yaml:"title"`
		Excerpt    string `yaml:"excerpt"`
		Content    string `yaml:"content"`
		ImageURL   string `yaml:"imageUrl"`
		Category   string `yaml:"category"`
		AuthorName string `yaml:"authorName"`
		AuthorRole string `yaml:"authorRole"`
		IsBreaking bool   `yaml:"isBreaking"`
		IsFeatured bool   `yaml:"isFeatured"`
		Views      int64  `yaml:"views"`
		Likes      int64  `yaml:"likes"`
	} `yaml:"articles"`
}

// Repos groups the repositories the seeder writes to.
type Repos struct {
	Admins     repository.AdminRepository
	Categories repository.CategoryRepository
	Articles   repository.ArticleRepository
}

// Options makes the clock and the random source injectable.
type Options struct {
	Now  func() time.Time
	Rand *rand.Rand
}

func (o Options) withDefaults() Options {
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Rand == nil {
		// #nosec G404 -- publish-date jitter for demo data
		o.Rand = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	return o
}

// Seed writes the demo data set. It does nothing when the admin already
// exists, so restarting against a persistent database is safe.
func Seed(ctx context.Context, repos Repos, opts Options) error {
	opts = opts.withDefaults()

	var data dataset
	if err := yaml.Unmarshal(dataYAML, &data); err != nil {
		return fmt.Errorf("seed: parse data: %w", err)
	}

	existing, err := repos.Admins.GetByUsername(ctx, data.Admin.Username)
	if err != nil {
		return fmt.Errorf("seed: lookup admin: %w", err)
	}
	if existing != nil {
		slog.Info("seed data already present, skipping")
		return nil
	}

	now := opts.Now()
	err = repos.Admins.Create(ctx, &entity.Admin{
		ID:        uuid.NewString(),
		Username:  data.Admin.Username,
		Password:  data.Admin.Password,
		Role:      data.Admin.Role,
		CreatedAt: now,
	})
	if err != nil {
		return fmt.Errorf("seed: create admin: %w", err)
	}
	slog.Warn("seeded admin uses a plaintext demo password; replace it before exposing the service",
		slog.String("username", data.Admin.Username))

	categoryIDs := make(map[string]string, len(data.Categories))
	for _, c := range data.Categories {
		category := &entity.Category{
			ID:        uuid.NewString(),
			Name:      c.Name,
			Slug:      entity.Slugify(c.Name),
			Color:     c.Color,
			CreatedAt: now,
		}
		if err := repos.Categories.Create(ctx, category); err != nil {
			return fmt.Errorf("seed: create category %q: %w", c.Name, err)
		}
		categoryIDs[category.Slug] = category.ID
	}

	for _, a := range data.Articles {
		categoryID, ok := categoryIDs[a.Category]
		if !ok {
			return fmt.Errorf("seed: article %q references unknown category %q", a.Title, a.Category)
		}
		role := a.AuthorRole
		if role == "" {
			role = entity.DefaultAuthorRole
		}
		published := now.Add(-time.Duration(opts.Rand.Int64N(int64(publishWindow))))
		article := &entity.Article{
			ID:          uuid.NewString(),
			Title:       a.Title,
			Slug:        entity.Slugify(a.Title),
			Excerpt:     a.Excerpt,
			Content:     a.Content,
			CategoryID:  categoryID,
			AuthorName:  a.AuthorName,
			AuthorRole:  role,
			IsBreaking:  a.IsBreaking,
			IsFeatured:  a.IsFeatured,
			Views:       a.Views,
			Likes:       a.Likes,
			PublishedAt: published,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if a.ImageURL != "" {
			img := a.ImageURL
			article.ImageURL = &img
		}
		if err := repos.Articles.Create(ctx, article); err != nil {
			return fmt.Errorf("seed: create article %q: %w", a.Title, err)
		}
	}

	slog.Info("seed data loaded",
		slog.Int("categories", len(data.Categories)),
		slog.Int("articles", len(data.Articles)))
	return nil
}
