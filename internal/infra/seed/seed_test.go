package seed_test

import (
	"bytes"
	"context"
	"log/slog"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsdesk/internal/infra/adapter/persistence/memory"
	"newsdesk/internal/infra/seed"
)

func TestSeed(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	repos := seed.Repos{
		Admins:     memory.NewAdminRepo(store),
		Categories: memory.NewCategoryRepo(store),
		Articles:   memory.NewArticleRepo(store),
	}
	now := time.Date(2025, 3, 24, 12, 0, 0, 0, time.UTC)
	opts := seed.Options{
		Now:  func() time.Time { return now },
		Rand: rand.New(rand.NewPCG(1, 2)),
	}

	require.NoError(t, seed.Seed(ctx, repos, opts))

	admin, err := repos.Admins.GetByUsername(ctx, "sigitsetiadi")
	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.Equal(t, "superadmin", admin.Role)

	categories, err := repos.Categories.List(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 7)
	assert.Equal(t, "politik", categories[0].Slug)
	assert.Equal(t, "#e53e3e", categories[0].Color)

	articles, err := repos.Articles.List(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, articles)
	for _, a := range articles {
		assert.False(t, a.PublishedAt.After(now), "%s published in the future", a.Slug)
		assert.True(t, a.PublishedAt.After(now.Add(-7*24*time.Hour)), "%s older than a week", a.Slug)
		assert.NotEmpty(t, a.AuthorRole)
	}

	ekonomi, err := repos.Articles.GetBySlug(ctx, "ekonomi-indonesia-tumbuh-5-2-di-kuartal-iii-tertinggi-sejak-2020")
	require.NoError(t, err)
	require.NotNil(t, ekonomi)
	assert.True(t, ekonomi.IsBreaking)
	assert.Equal(t, int64(12500), ekonomi.Views)

	// second run is a no-op
	require.NoError(t, seed.Seed(ctx, repos, opts))
	again, err := repos.Articles.List(ctx)
	require.NoError(t, err)
	assert.Len(t, again, len(articles))
}

func TestSeed_Deterministic(t *testing.T) {
	publishedAt := func() []time.Time {
		store := memory.NewStore()
		repos := seed.Repos{
			Admins:     memory.NewAdminRepo(store),
			Categories: memory.NewCategoryRepo(store),
			Articles:   memory.NewArticleRepo(store),
		}
		now := time.Date(2025, 3, 24, 12, 0, 0, 0, time.UTC)
		require.NoError(t, seed.Seed(context.Background(), repos, seed.Options{
			Now:  func() time.Time { return now },
			Rand: rand.New(rand.NewPCG(42, 42)),
		}))
		list, err := repos.Articles.List(context.Background())
		require.NoError(t, err)
		out := make([]time.Time, len(list))
		for i, a := range list {
			out[i] = a.PublishedAt
		}
		return out
	}

	assert.Equal(t, publishedAt(), publishedAt())
}

func TestSeed_WarnsOnceAboutPlaintextPassword(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	ctx := context.Background()
	store := memory.NewStore()
	repos := seed.Repos{
		Admins:     memory.NewAdminRepo(store),
		Categories: memory.NewCategoryRepo(store),
		Articles:   memory.NewArticleRepo(store),
	}
	require.NoError(t, seed.Seed(ctx, repos, seed.Options{}))
	require.NoError(t, seed.Seed(ctx, repos, seed.Options{}))

	assert.Equal(t, 1, strings.Count(buf.String(), "plaintext demo password"))
	assert.Contains(t, buf.String(), `"username":"sigitsetiadi"`)
}
