package sitemap

import (
	"net/url"
	"strconv"
	"strings"
)

// URLBuilder produces absolute site URLs
type URLBuilder struct {
	base string
}

// NewURLBuilder creates a builder for a scheme://host[/prefix] base URL
func NewURLBuilder(base string) *URLBuilder {
	return &URLBuilder{base: strings.TrimRight(base, "/")}
}

func (b *URLBuilder) Home() string {
	return b.base + "/"
}

func (b *URLBuilder) PopularMedia() string {
	return b.base + "/media?show=popular"
}

func (b *URLBuilder) LatestMedia() string {
	return b.base + "/media?show=latest"
}

func (b *URLBuilder) Categories() string {
	return b.base + "/categories"
}

// Media returns the public page of a media item
func (b *URLBuilder) Media(slug string) string {
	return b.base + "/media/" + url.PathEscape(slug)
}

// SitemapPage returns the URL of a single page of the paginated Google sitemap
func (b *URLBuilder) SitemapPage(page int) string {
	return b.base + "/sitemaps/google.xml?page=" + strconv.Itoa(page)
}

// SiteLinks returns the canonical links listed on the first sitemap page
func (b *URLBuilder) SiteLinks() []string {
	return []string{
		b.Home(),
		b.PopularMedia(),
		b.LatestMedia(),
		b.Categories(),
	}
}
