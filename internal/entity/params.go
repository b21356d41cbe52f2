package entity

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// ErrMalformedPage is returned when the page parameter is not a non-negative integer
var ErrMalformedPage = errors.New("malformed page")

// SitemapParams represents validated request parameters for sitemap generation
type SitemapParams struct {
	// Page is the zero-based sitemap page, nil when it was not requested
	Page *int
}

// NewSitemapParamsFromRequest parses the optional page parameter
func NewSitemapParamsFromRequest(r *http.Request) (*SitemapParams, error) {
	qp := r.URL.Query()

	if !qp.Has("page") {
		return &SitemapParams{}, nil
	}

	raw := strings.TrimSpace(qp.Get("page"))
	page, err := strconv.Atoi(raw)

	if err != nil {
		return nil, fmt.Errorf("%w: %q is not an integer", ErrMalformedPage, raw)
	}

	if page < 0 {
		return nil, fmt.Errorf("%w: %d is negative", ErrMalformedPage, page)
	}

	if page > MaxSitemapPage {
		return nil, fmt.Errorf("%w: %d is out of range", ErrMalformedPage, page)
	}

	return &SitemapParams{Page: &page}, nil
}

// FeedParams represents normalized request parameters for RSS feeds.
// Invalid input never fails, it falls back to defaults.
type FeedParams struct {
	// Limit caps the number of items, 0 means no limit
	Limit int

	// DefaultLimit is set when the limit parameter was missing or invalid,
	// in which case the site default applies
	DefaultLimit bool

	// Skip is the number of leading items to leave out
	Skip int
}

// NewFeedParamFromRequest parses limit and skip query parameters
func NewFeedParamFromRequest(r *http.Request) *FeedParams {
	qp := r.URL.Query()
	params := &FeedParams{}

	if limit, ok := ParseFeedLimit(qp.Get("limit")); ok {
		params.Limit = limit
	} else {
		params.DefaultLimit = true
	}

	if skip, err := strconv.Atoi(strings.TrimSpace(qp.Get("skip"))); err == nil && skip > 0 {
		params.Skip = skip
	}

	return params
}

// ParseFeedLimit parses an explicit limit value. Only positive integers are accepted.
func ParseFeedLimit(value string) (int, bool) {
	limit, err := strconv.Atoi(strings.TrimSpace(value))

	if err != nil || limit < 1 {
		return 0, false
	}

	return limit, true
}

// DefaultFeedLimit interprets the default_feed_results site setting.
// An empty, "-1" or unparsable value means no limit.
func DefaultFeedLimit(setting string) int {
	limit, ok := ParseFeedLimit(setting)

	if !ok {
		return 0
	}

	return limit
}

// ClampLimit bounds an explicit limit to max. A max of 0 disables clamping,
// and "no limit" is left as is.
func (p *FeedParams) ClampLimit(max int) {
	if max > 0 && p.Limit > max {
		p.Limit = max
	}
}
