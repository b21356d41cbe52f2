package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/elnormous/contenttype"
	"github.com/go-chi/chi/v5"
	"github.com/nDmitry/mediafeeds/internal/app"
	"github.com/nDmitry/mediafeeds/internal/entity"
	"github.com/nDmitry/mediafeeds/internal/sitemap"
)

const (
	googleTTL = 4 * time.Hour
	mrssTTL   = time.Hour
	feedTTL   = 3 * time.Minute
)

// Generator assembles sitemap and feed results
type Generator interface {
	Google(ctx context.Context, page *int) (*entity.SitemapResult, error)
	MRSS(ctx context.Context) (*entity.FeedResult, error)
	Latest(ctx context.Context, params *entity.FeedParams) (*entity.FeedResult, error)
	Featured(ctx context.Context, params *entity.FeedParams) (*entity.FeedResult, error)
}

// Renderer serializes generator results
type Renderer interface {
	Sitemap(result *entity.SitemapResult) ([]byte, error)
	Feed(result *entity.FeedResult) ([]byte, error)
}

// CrossDomain provides the crossdomain.xml policy handler
type CrossDomain interface {
	Handler(ctx context.Context) (http.Handler, error)
}

// SitemapsHandler handles sitemap and feed routes
type SitemapsHandler struct {
	generator   Generator
	renderer    Renderer
	crossDomain CrossDomain
	logger      *slog.Logger
}

// NewSitemapsHandler creates a new SitemapsHandler and sets up routes
func NewSitemapsHandler(r chi.Router, rc *ResponseCache, g Generator, rd Renderer, cd CrossDomain) *SitemapsHandler {
	h := &SitemapsHandler{
		generator:   g,
		renderer:    rd,
		crossDomain: cd,
		logger:      app.Logger(),
	}

	r.With(rc.Middleware(googleTTL)).Get("/sitemap.xml", h.GetGoogle)
	r.With(rc.Middleware(googleTTL)).Get("/sitemaps/google.xml", h.GetGoogle)
	r.With(rc.Middleware(mrssTTL)).Get("/sitemaps/mrss.xml", h.GetMRSS)
	r.With(rc.Middleware(feedTTL)).Get("/sitemaps/latest.xml", h.GetLatest)
	r.With(rc.Middleware(feedTTL)).Get("/sitemaps/featured.xml", h.GetFeatured)
	r.Get("/crossdomain.xml", h.GetCrossDomain)

	return h
}

// GetGoogle serves a Google video sitemap page or the sitemap index
func (h *SitemapsHandler) GetGoogle(w http.ResponseWriter, r *http.Request) {
	params, err := entity.NewSitemapParamsFromRequest(r)

	if err != nil {
		h.handleError(w, r, err)
		return
	}

	result, err := h.generator.Google(r.Context(), params.Page)

	if err != nil {
		h.handleError(w, r, err)
		return
	}

	content, err := h.renderer.Sitemap(result)

	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.serveContent(w, r, content, sitemapContentTypes)
}

// GetMRSS serves the feed of all published media
func (h *SitemapsHandler) GetMRSS(w http.ResponseWriter, r *http.Request) {
	result, err := h.generator.MRSS(r.Context())
	h.serveFeed(w, r, result, err)
}

// GetLatest serves the feed of recently published media
func (h *SitemapsHandler) GetLatest(w http.ResponseWriter, r *http.Request) {
	result, err := h.generator.Latest(r.Context(), entity.NewFeedParamFromRequest(r))
	h.serveFeed(w, r, result, err)
}

// GetFeatured serves the feed of the featured category
func (h *SitemapsHandler) GetFeatured(w http.ResponseWriter, r *http.Request) {
	result, err := h.generator.Featured(r.Context(), entity.NewFeedParamFromRequest(r))
	h.serveFeed(w, r, result, err)
}

// GetCrossDomain serves the crossdomain.xml policy file while the video widget is enabled
func (h *SitemapsHandler) GetCrossDomain(w http.ResponseWriter, r *http.Request) {
	handler, err := h.crossDomain.Handler(r.Context())

	if err != nil {
		h.handleError(w, r, err)
		return
	}

	handler.ServeHTTP(w, r)
}

func (h *SitemapsHandler) serveFeed(w http.ResponseWriter, r *http.Request, result *entity.FeedResult, err error) {
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	content, err := h.renderer.Feed(result)

	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.serveContent(w, r, content, feedContentTypes)
}

// serveContent sends the content with the best content type the client accepts
func (h *SitemapsHandler) serveContent(w http.ResponseWriter, r *http.Request, content []byte, offers []contenttype.MediaType) {
	contentType := negotiate(r, offers)

	w.Header().Set("Content-Type", contentType+"; charset=utf-8")
	w.Header().Set("Vary", "Accept")
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(content); err != nil {
		handleBadErrorResponse(err, contentType)
	}
}

// handleError maps disabled features and bad input to 404, anything else to 500
func (h *SitemapsHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, sitemap.ErrNotFound) || errors.Is(err, entity.ErrMalformedPage) {
		h.logger.DebugContext(r.Context(), "Not found", "path", r.URL.Path, "reason", err)
		http.NotFound(w, r)
		return
	}

	h.logger.ErrorContext(r.Context(), "Request error", "error", err, "status", http.StatusInternalServerError)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)

	response := map[string]string{"error": err.Error()}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		handleBadErrorResponse(err, response)
	}
}

func handleBadErrorResponse(err error, resp any) {
	app.Logger().Error(
		"failed to encode an error response",
		"error", err,
		"response", resp,
	)
}
