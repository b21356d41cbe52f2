package rest

import (
	"net/http"

	"github.com/elnormous/contenttype"
)

var (
	sitemapContentTypes = mediaTypes("application/xml", "text/xml")
	feedContentTypes    = mediaTypes("application/rss+xml", "application/xml", "text/xml")
)

func mediaTypes(types ...string) []contenttype.MediaType {
	out := make([]contenttype.MediaType, 0, len(types))

	for _, t := range types {
		out = append(out, contenttype.NewMediaType(t))
	}

	return out
}

// negotiate picks the offer that best matches the request's Accept header.
// When nothing is acceptable or the header is malformed the first offer is used,
// since a feed always needs a content type.
func negotiate(r *http.Request, offers []contenttype.MediaType) string {
	if len(offers) == 0 {
		return ""
	}

	accepted, _, err := contenttype.GetAcceptableMediaType(r, offers)

	if err != nil {
		accepted = offers[0]
	}

	return accepted.Type + "/" + accepted.Subtype
}
