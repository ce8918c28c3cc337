package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{name: "simple title", title: "Hello World", want: "hello-world"},
		{name: "punctuation runs collapse", title: "A & B -- C!!", want: "a-b-c"},
		{name: "leading and trailing separators trimmed", title: "  --Breaking: News--  ", want: "breaking-news"},
		{name: "digits kept", title: "Ekonomi Indonesia Tumbuh 5.2% di Kuartal III", want: "ekonomi-indonesia-tumbuh-5-2-di-kuartal-iii"},
		{name: "non-ascii treated as separator", title: "Café Olé", want: "caf-ol"},
		{name: "only separators", title: "!!!", want: ""},
		{name: "empty", title: "", want: ""},
		{name: "already a slug", title: "openai-luncurkan-model-ai", want: "openai-luncurkan-model-ai"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.title))
		})
	}
}

func TestSlugify_Idempotent(t *testing.T) {
	inputs := []string{
		"OpenAI Luncurkan Model AI Terbaru dengan Kemampuan Multimodal",
		"A & B",
		"---x---y---",
		"ÄÖÜ 123 äöü",
		"",
	}

	for _, in := range inputs {
		once := Slugify(in)
		assert.Equal(t, once, Slugify(once), "input %q", in)
	}
}
