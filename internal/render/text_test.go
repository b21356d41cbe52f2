package render

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestPlainText(t *testing.T) {
	tests := []struct {
		name     string
		html     string
		expected string
	}{
		{name: "Empty", html: "", expected: ""},
		{name: "Plain", html: "Just text", expected: "Just text"},
		{name: "Paragraphs", html: "<p>One</p><p>Two</p>", expected: "One Two"},
		{name: "Line breaks", html: "One<br>Two<BR/>Three", expected: "One Two Three"},
		{name: "Entities", html: "<p>Tom &amp; Jerry</p>", expected: "Tom & Jerry"},
		{name: "Whitespace", html: "<div>\n  spaced \t out\n</div>", expected: "spaced out"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, plainText(tt.html))
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		limit    int
		expected string
	}{
		{
			name:     "Short text",
			text:     "Opening night",
			limit:    20,
			expected: "Opening night",
		},
		{
			name:     "Exactly at the limit",
			text:     "abcde",
			limit:    5,
			expected: "abcde",
		},
		{
			name:     "Cut at word boundary",
			text:     "The quick brown fox jumps over the lazy dog",
			limit:    20,
			expected: "The quick brown fox…",
		},
		{
			name:     "Trailing punctuation removed",
			text:     "Hello, world, and everyone else",
			limit:    14,
			expected: "Hello, world…",
		},
		{
			name:     "Single long word",
			text:     "Supercalifragilisticexpialidocious",
			limit:    10,
			expected: "Supercali…",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.text, tt.limit)

			assert.Equal(t, tt.expected, got)
			assert.LessOrEqual(t, utf8.RuneCountInString(got), tt.limit)
		})
	}
}

func TestTruncate_Multibyte(t *testing.T) {
	text := strings.Repeat("видео ", 500)
	got := truncate(text, maxVideoDescription)

	assert.True(t, utf8.ValidString(got))
	assert.LessOrEqual(t, utf8.RuneCountInString(got), maxVideoDescription)
	assert.True(t, strings.HasSuffix(got, ellipsis))
}
