package sitemap_test

import (
	"testing"

	"github.com/nDmitry/mediafeeds/internal/sitemap"
	"github.com/stretchr/testify/assert"
)

func TestURLBuilder(t *testing.T) {
	b := sitemap.NewURLBuilder("https://media.example.com/tv/")

	assert.Equal(t, "https://media.example.com/tv/", b.Home())
	assert.Equal(t, "https://media.example.com/tv/media/a%20b", b.Media("a b"))
	assert.Equal(t, "https://media.example.com/tv/sitemaps/google.xml?page=3", b.SitemapPage(3))
	assert.Len(t, b.SiteLinks(), 4)
}
