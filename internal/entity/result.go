package entity

import "math"

// SitemapMediaLimit is the maximum number of media items listed in a single sitemap page.
const SitemapMediaLimit = 1000

// MaxSitemapPage is the largest page whose offset still fits into an int
const MaxSitemapPage = math.MaxInt / SitemapMediaLimit

const (
	TitleMRSS     = "MediaRSS Sitemap"
	TitleLatest   = "Latest Media"
	TitleFeatured = "Featured Media"
)

// FeedResult is the value handed to a renderer for a single response
type FeedResult struct {
	Items []MediaItem
	// Page is zero-based and only meaningful for sitemaps.
	Page int
	// Links are absolute URLs listed before the media on the first sitemap page.
	Links []string
	// Title is only used by RSS-style feeds.
	Title string
}

// SitemapIndexResult is returned instead of a listing when the media does not fit into one page
type SitemapIndexResult struct {
	Pages int
}

// SitemapResult holds exactly one of Index or URLSet
type SitemapResult struct {
	Index  *SitemapIndexResult
	URLSet *FeedResult
}

// PageCount returns the number of sitemap pages needed for count media items.
func PageCount(count int) int {
	return (count + SitemapMediaLimit - 1) / SitemapMediaLimit
}
