package sitemap

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/nDmitry/mediafeeds/internal/entity"
	"github.com/nDmitry/mediafeeds/internal/media"
	"github.com/nDmitry/mediafeeds/internal/settings"
)

// Generator assembles sitemap and feed results from published media
type Generator struct {
	repo         media.Repository
	settings     settings.Store
	urls         *URLBuilder
	feedMaxItems int
	hooks        []Hook
}

// NewGenerator creates a Generator. feedMaxItems caps explicit feed limits, 0 disables the cap.
func NewGenerator(repo media.Repository, store settings.Store, urls *URLBuilder, feedMaxItems int) *Generator {
	return &Generator{
		repo:         repo,
		settings:     store,
		urls:         urls,
		feedMaxItems: feedMaxItems,
	}
}

// Register adds hooks called around every operation.
// It is not safe to call concurrently with the operations.
func (g *Generator) Register(hooks ...Hook) {
	g.hooks = append(g.hooks, hooks...)
}

// Google builds a Google video sitemap page, or a sitemap index when the media
// does not fit into a single page and no page was requested.
func (g *Generator) Google(ctx context.Context, page *int) (*entity.SitemapResult, error) {
	return observe(ctx, g.hooks, OpGoogle, func(ctx context.Context) (*entity.SitemapResult, error) {
		return g.google(ctx, page)
	})
}

func (g *Generator) google(ctx context.Context, page *int) (*entity.SitemapResult, error) {
	if err := g.requireEnabled(ctx, entity.SettingSitemapsDisplay); err != nil {
		return nil, err
	}

	current := 0

	if page == nil {
		count, err := g.repo.Count(ctx, media.Published())

		if err != nil {
			return nil, err
		}

		if count > entity.SitemapMediaLimit {
			return &entity.SitemapResult{
				Index: &entity.SitemapIndexResult{Pages: entity.PageCount(count)},
			}, nil
		}
	} else {
		current = *page
	}

	if current < 0 || current > entity.MaxSitemapPage {
		return nil, fmt.Errorf("%w: sitemap page %d", ErrNotFound, current)
	}

	q := media.Published().
		Offset(current * entity.SitemapMediaLimit).
		Limit(entity.SitemapMediaLimit)

	items, err := g.repo.Find(ctx, q)

	if err != nil {
		return nil, err
	}

	if len(items) == 0 {
		return nil, fmt.Errorf("%w: sitemap page %d is empty", ErrNotFound, current)
	}

	links := []string{}

	if current == 0 {
		links = g.urls.SiteLinks()
	}

	return &entity.SitemapResult{
		URLSet: &entity.FeedResult{
			Items: items,
			Page:  current,
			Links: links,
		},
	}, nil
}

// MRSS lists all published media
func (g *Generator) MRSS(ctx context.Context) (*entity.FeedResult, error) {
	return observe(ctx, g.hooks, OpMRSS, func(ctx context.Context) (*entity.FeedResult, error) {
		if err := g.requireEnabled(ctx, entity.SettingSitemapsDisplay); err != nil {
			return nil, err
		}

		items, err := g.repo.Find(ctx, media.Published())

		if err != nil {
			return nil, err
		}

		return &entity.FeedResult{Items: items, Title: entity.TitleMRSS}, nil
	})
}

// Latest lists the most recently published media
func (g *Generator) Latest(ctx context.Context, params *entity.FeedParams) (*entity.FeedResult, error) {
	return observe(ctx, g.hooks, OpLatest, func(ctx context.Context) (*entity.FeedResult, error) {
		if err := g.requireEnabled(ctx, entity.SettingRSSDisplay); err != nil {
			return nil, err
		}

		return g.recent(ctx, media.Published(), params, entity.TitleLatest)
	})
}

// Featured lists the most recently published media of the featured category.
// The feed is empty while no featured category is configured.
func (g *Generator) Featured(ctx context.Context, params *entity.FeedParams) (*entity.FeedResult, error) {
	return observe(ctx, g.hooks, OpFeatured, func(ctx context.Context) (*entity.FeedResult, error) {
		if err := g.requireEnabled(ctx, entity.SettingRSSDisplay); err != nil {
			return nil, err
		}

		category, err := g.featuredCategory(ctx)

		if err != nil {
			return nil, err
		}

		if category == nil {
			return &entity.FeedResult{Title: entity.TitleFeatured}, nil
		}

		return g.recent(ctx, media.Published().InCategory(category.ID), params, entity.TitleFeatured)
	})
}

func (g *Generator) recent(ctx context.Context, q media.Query, params *entity.FeedParams, title string) (*entity.FeedResult, error) {
	p := *params

	if p.DefaultLimit {
		value, err := g.settings.Get(ctx, entity.SettingDefaultFeedResults)

		if err != nil {
			return nil, fmt.Errorf("could not read default feed limit: %w", err)
		}

		p.Limit = entity.DefaultFeedLimit(value)
	}

	p.ClampLimit(g.feedMaxItems)

	q = q.Ordered(media.OrderPublishOnDesc)

	if p.Limit > 0 {
		q = q.Limit(p.Limit)
	}

	if p.Skip > 0 {
		q = q.Offset(p.Skip)
	}

	items, err := g.repo.Find(ctx, q)

	if err != nil {
		return nil, err
	}

	return &entity.FeedResult{Items: items, Title: title}, nil
}

// featuredCategory resolves the configured featured category, nil if there is none
func (g *Generator) featuredCategory(ctx context.Context) (*entity.Category, error) {
	value, err := g.settings.Get(ctx, entity.SettingFeaturedCategory)

	if err != nil {
		return nil, fmt.Errorf("could not read featured category: %w", err)
	}

	id, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)

	if err != nil || id <= 0 {
		return nil, nil
	}

	return g.repo.Category(ctx, id)
}

func (g *Generator) requireEnabled(ctx context.Context, key string) error {
	enabled, err := settings.Enabled(ctx, g.settings, key)

	if err != nil {
		return err
	}

	if !enabled {
		return fmt.Errorf("%w: %s is disabled", ErrNotFound, key)
	}

	return nil
}
