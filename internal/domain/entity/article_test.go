package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestArticle_Clone(t *testing.T) {
	img := "https://example.com/a.jpg"
	now := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	original := Article{
		ID:          "a1",
		Title:       "Title",
		Slug:        "title",
		ImageURL:    &img,
		Views:       10,
		PublishedAt: now,
	}

	clone := original.Clone()
	*clone.ImageURL = "https://example.com/b.jpg"
	clone.Views++

	assert.Equal(t, "https://example.com/a.jpg", *original.ImageURL)
	assert.Equal(t, int64(10), original.Views)
	assert.Equal(t, int64(11), clone.Views)
}

func TestArticle_Clone_NilImage(t *testing.T) {
	clone := Article{ID: "a1"}.Clone()
	assert.Nil(t, clone.ImageURL)
}

func TestArticle_MatchesQuery(t *testing.T) {
	article := Article{
		Title:   "OpenAI Luncurkan Model AI Terbaru",
		Excerpt: "Model GPT-5 terbaru",
		Content: "San Francisco - peluncuran resmi",
	}

	tests := []struct {
		name  string
		query string
		want  bool
	}{
		{name: "empty query matches", query: "", want: true},
		{name: "title match", query: "ai", want: true},
		{name: "excerpt match", query: "gpt-5", want: true},
		{name: "content match", query: "san francisco", want: true},
		{name: "no match", query: "olahraga", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, article.MatchesQuery(tt.query))
		})
	}
}

func TestComment_Pending(t *testing.T) {
	assert.True(t, Comment{}.Pending())
	assert.False(t, Comment{IsApproved: true}.Pending())
}
