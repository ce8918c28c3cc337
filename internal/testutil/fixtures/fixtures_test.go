package fixtures

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestArticle_AppliesOptions(t *testing.T) {
	a := Article("cat", "AI & Ekonomi", PublishedAgo(time.Hour), Views(7), Featured(), ImageURL("https://img.test/a.png"))

	assert.Equal(t, "ai-ekonomi", a.Slug)
	assert.Equal(t, Epoch.Add(-time.Hour), a.PublishedAt)
	assert.EqualValues(t, 7, a.Views)
	assert.True(t, a.IsFeatured)
	assert.False(t, a.IsBreaking)
	if assert.NotNil(t, a.ImageURL) {
		assert.Equal(t, "https://img.test/a.png", *a.ImageURL)
	}
}

func TestComment_StartsPending(t *testing.T) {
	c := Comment("art", "Budi", time.Minute)
	assert.True(t, c.Pending())
	assert.False(t, Approved(c).Pending())
}
