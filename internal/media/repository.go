package media

import (
	"context"

	"github.com/nDmitry/mediafeeds/internal/entity"
)

// Repository defines read access to published, viewable media
type Repository interface {
	// Count returns the number of media matching q, ignoring ordering and paging
	Count(ctx context.Context, q Query) (int, error)

	// Find returns the media matching q
	Find(ctx context.Context, q Query) ([]entity.MediaItem, error)

	// Category returns a category by ID, or nil if it does not exist
	Category(ctx context.Context, id int64) (*entity.Category, error)
}

type Order int

const (
	// OrderID sorts by ascending ID, which keeps sitemap pages stable
	OrderID Order = iota
	// OrderPublishOnDesc sorts the most recently published media first
	OrderPublishOnDesc
)

// Query describes a filter chain over published, viewable media.
// The zero value matches all of them.
type Query struct {
	// CategoryID restricts media to a category, 0 means any
	CategoryID int64
	OrderBy    Order
	Skip       int
	// Max caps the number of results, 0 means no limit
	Max int
}

// Published starts a query over all published, viewable media
func Published() Query {
	return Query{}
}

func (q Query) InCategory(id int64) Query {
	q.CategoryID = id
	return q
}

func (q Query) Ordered(o Order) Query {
	q.OrderBy = o
	return q
}

func (q Query) Offset(n int) Query {
	q.Skip = n
	return q
}

func (q Query) Limit(n int) Query {
	q.Max = n
	return q
}
