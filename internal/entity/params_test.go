package entity_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nDmitry/mediafeeds/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSitemapParamsFromRequest(t *testing.T) {
	tests := []struct {
		name         string
		url          string
		expectedPage *int
		expectedErr  bool
	}{
		{name: "No page", url: "/sitemap.xml"},
		{name: "Page zero", url: "/sitemap.xml?page=0", expectedPage: intPtr(0)},
		{name: "Page two", url: "/sitemap.xml?page=2", expectedPage: intPtr(2)},
		{name: "Not an integer", url: "/sitemap.xml?page=abc", expectedErr: true},
		{name: "Empty page", url: "/sitemap.xml?page=", expectedErr: true},
		{name: "Negative page", url: "/sitemap.xml?page=-1", expectedErr: true},
		{name: "Float page", url: "/sitemap.xml?page=1.5", expectedErr: true},
		{name: "Last addressable page", url: "/sitemap.xml?page=9223372036854775", expectedPage: intPtr(entity.MaxSitemapPage)},
		{name: "Page overflowing the offset", url: "/sitemap.xml?page=9223372036854776", expectedErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			params, err := entity.NewSitemapParamsFromRequest(req)

			if tt.expectedErr {
				require.ErrorIs(t, err, entity.ErrMalformedPage)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedPage, params.Page)
		})
	}
}

func TestNewFeedParamFromRequest(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected entity.FeedParams
	}{
		{
			name:     "Defaults",
			url:      "/sitemaps/latest.xml",
			expected: entity.FeedParams{DefaultLimit: true},
		},
		{
			name:     "Limit and skip",
			url:      "/sitemaps/latest.xml?limit=5&skip=10",
			expected: entity.FeedParams{Limit: 5, Skip: 10},
		},
		{
			name:     "Bogus limit falls back to default",
			url:      "/sitemaps/latest.xml?limit=bogus",
			expected: entity.FeedParams{DefaultLimit: true},
		},
		{
			name:     "Zero limit falls back to default",
			url:      "/sitemaps/latest.xml?limit=0",
			expected: entity.FeedParams{DefaultLimit: true},
		},
		{
			name:     "Invalid skip is zero",
			url:      "/sitemaps/latest.xml?limit=3&skip=x",
			expected: entity.FeedParams{Limit: 3},
		},
		{
			name:     "Negative skip is zero",
			url:      "/sitemaps/latest.xml?skip=-4",
			expected: entity.FeedParams{DefaultLimit: true},
		},
		{
			name:     "Empty skip is zero",
			url:      "/sitemaps/latest.xml?limit=1&skip=",
			expected: entity.FeedParams{Limit: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			params := entity.NewFeedParamFromRequest(req)

			assert.Equal(t, tt.expected, *params)
		})
	}
}

func TestDefaultFeedLimit(t *testing.T) {
	assert.Equal(t, 0, entity.DefaultFeedLimit(""))
	assert.Equal(t, 0, entity.DefaultFeedLimit("-1"))
	assert.Equal(t, 0, entity.DefaultFeedLimit("many"))
	assert.Equal(t, 30, entity.DefaultFeedLimit("30"))
}

func TestFeedParams_ClampLimit(t *testing.T) {
	p := &entity.FeedParams{Limit: 5000}
	p.ClampLimit(1000)
	assert.Equal(t, 1000, p.Limit)

	p = &entity.FeedParams{Limit: 20}
	p.ClampLimit(1000)
	assert.Equal(t, 20, p.Limit)

	p = &entity.FeedParams{}
	p.ClampLimit(1000)
	assert.Equal(t, 0, p.Limit, "no limit stays unbounded")

	p = &entity.FeedParams{Limit: 5000}
	p.ClampLimit(0)
	assert.Equal(t, 5000, p.Limit)
}

func TestPageCount(t *testing.T) {
	tests := map[int]int{
		0:    0,
		1:    1,
		1000: 1,
		1001: 2,
		2000: 2,
		2001: 3,
		2500: 3,
	}

	for count, pages := range tests {
		assert.Equal(t, pages, entity.PageCount(count), "count %d", count)
	}
}

func intPtr(i int) *int {
	return &i
}
