package rest

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/elnormous/contenttype"
	"github.com/stretchr/testify/assert"
)

func TestNegotiate(t *testing.T) {
	tests := []struct {
		name     string
		accept   string
		offers   []contenttype.MediaType
		expected string
	}{
		{
			name:     "No Accept header",
			offers:   feedContentTypes,
			expected: "application/rss+xml",
		},
		{
			name:     "Anything",
			accept:   "*/*",
			offers:   sitemapContentTypes,
			expected: "application/xml",
		},
		{
			name:     "Exact match",
			accept:   "text/xml",
			offers:   feedContentTypes,
			expected: "text/xml",
		},
		{
			name:     "Quality preference",
			accept:   "application/rss+xml;q=0.5, text/xml;q=0.9",
			offers:   feedContentTypes,
			expected: "text/xml",
		},
		{
			name:     "Wildcard with lower quality",
			accept:   "*/*;q=0.1, text/xml",
			offers:   sitemapContentTypes,
			expected: "text/xml",
		},
		{
			name:     "Type wildcard",
			accept:   "text/*",
			offers:   feedContentTypes,
			expected: "text/xml",
		},
		{
			name:     "Browser header",
			accept:   "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
			offers:   feedContentTypes,
			expected: "application/xml",
		},
		{
			name:     "Nothing acceptable falls back to first offer",
			accept:   "text/html",
			offers:   sitemapContentTypes,
			expected: "application/xml",
		},
		{
			name:     "Garbage header falls back to first offer",
			accept:   "nonsense, ;q=1",
			offers:   sitemapContentTypes,
			expected: "application/xml",
		},
		{
			name:     "No offers",
			accept:   "*/*",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/sitemaps/mrss.xml", nil)

			if tt.accept != "" {
				req.Header.Set("Accept", tt.accept)
			}

			assert.Equal(t, tt.expected, negotiate(req, tt.offers))
		})
	}
}
