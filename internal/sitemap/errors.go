package sitemap

import "errors"

// ErrNotFound is returned when a feature is disabled or there is nothing to list.
// Both cases look the same to clients.
var ErrNotFound = errors.New("not found")
