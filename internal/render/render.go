package render

import (
	"errors"
	"time"

	"github.com/nDmitry/mediafeeds/internal/entity"
)

// Google limits for video sitemap text fields, in characters
const (
	maxVideoTitle       = 100
	maxVideoDescription = 2048
)

// Links builds the absolute URLs written into documents
type Links interface {
	Home() string
	Media(slug string) string
	SitemapPage(page int) string
}

// Renderer serializes generator results to XML
type Renderer struct {
	links Links
}

func NewRenderer(links Links) *Renderer {
	return &Renderer{links: links}
}

// Sitemap renders either a sitemap index or a Google video sitemap page
func (r *Renderer) Sitemap(result *entity.SitemapResult) ([]byte, error) {
	switch {
	case result == nil:
		return nil, errors.New("empty sitemap result")
	case result.Index != nil:
		return r.sitemapIndex(result.Index)
	case result.URLSet != nil:
		return r.urlSet(result.URLSet)
	default:
		return nil, errors.New("sitemap result has neither index nor url set")
	}
}

// w3cTime formats a timestamp in the W3C Datetime format sitemaps expect
func w3cTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return t.UTC().Format(time.RFC3339)
}
