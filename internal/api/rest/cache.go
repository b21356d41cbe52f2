package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/nDmitry/mediafeeds/internal/app"
	"github.com/nDmitry/mediafeeds/internal/cache"
	"golang.org/x/sync/singleflight"
)

const (
	cacheStatusHeader = "X-CACHE-STATUS"
	cacheWriteTimeout = 5 * time.Second
)

// cachedResponse is what gets stored for a successful response
type cachedResponse struct {
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// ResponseCache caches successful responses keyed by the full request URI
type ResponseCache struct {
	cache  cache.Cache
	group  singleflight.Group
	logger *slog.Logger
}

func NewResponseCache(c cache.Cache) *ResponseCache {
	return &ResponseCache{
		cache:  c,
		logger: app.Logger(),
	}
}

// Middleware returns a middleware caching responses for ttl.
// Concurrent misses for the same key are generated once, detached from the
// cancellation of the request that started the generation.
func (rc *ResponseCache) Middleware(ttl time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := cacheKey(r)

			if cached, ok := rc.lookup(r.Context(), key); ok {
				w.Header().Set(cacheStatusHeader, "HIT")
				writeCached(w, cached, ttl)
				return
			}

			v, _, _ := rc.group.Do(key, func() (any, error) {
				// The result is shared by every caller waiting on key, so one of them
				// going away must not cancel it
				shared := r.WithContext(context.WithoutCancel(r.Context()))

				rec := httptest.NewRecorder()
				next.ServeHTTP(rec, shared)

				if rec.Code == http.StatusOK {
					rc.store(key, &cachedResponse{
						ContentType: rec.Header().Get("Content-Type"),
						Body:        rec.Body.Bytes(),
					}, ttl)
				}

				return rec, nil
			})

			rec := v.(*httptest.ResponseRecorder)

			for k, values := range rec.Header() {
				w.Header()[k] = values
			}

			w.Header().Set(cacheStatusHeader, "MISS")

			if rec.Code == http.StatusOK {
				w.Header().Set("Cache-Control", cacheControl(ttl))
			}

			w.WriteHeader(rec.Code)

			if _, err := w.Write(rec.Body.Bytes()); err != nil {
				rc.logger.ErrorContext(r.Context(), "Failed to write response", "error", err)
			}
		})
	}
}

func (rc *ResponseCache) lookup(ctx context.Context, key string) (*cachedResponse, bool) {
	content, err := rc.cache.Get(ctx, key)

	if err != nil {
		if !errors.Is(err, cache.ErrCacheMiss) {
			rc.logger.ErrorContext(ctx, "Cache error", "key", key, "error", err)
		}

		return nil, false
	}

	var cached cachedResponse

	if err := json.Unmarshal(content, &cached); err != nil {
		rc.logger.ErrorContext(ctx, "Could not decode cached response", "key", key, "error", err)
		return nil, false
	}

	return &cached, true
}

func (rc *ResponseCache) store(key string, resp *cachedResponse, ttl time.Duration) {
	content, err := json.Marshal(resp)

	if err != nil {
		rc.logger.Error("Could not encode response for caching", "key", key, "error", err)
		return
	}

	// Use background context for caching to avoid cancellation
	ctx, cancel := context.WithTimeout(context.Background(), cacheWriteTimeout)
	defer cancel()

	if err := rc.cache.Set(ctx, key, content, ttl); err != nil {
		rc.logger.Error("Failed to cache content", "key", key, "error", err)
	}
}

// cacheKey includes the query string, so every page/limit/skip combination is cached separately.
// Responses are content negotiated, hence the Accept header is a part of the key too.
func cacheKey(r *http.Request) string {
	return "response:" + r.URL.RequestURI() + "#" + r.Header.Get("Accept")
}

func cacheControl(ttl time.Duration) string {
	return fmt.Sprintf("public, max-age=%d", int(ttl.Seconds()))
}

func writeCached(w http.ResponseWriter, cached *cachedResponse, ttl time.Duration) {
	w.Header().Set("Content-Type", cached.ContentType)
	w.Header().Set("Cache-Control", cacheControl(ttl))
	w.Header().Set("Vary", "Accept")
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(cached.Body); err != nil {
		handleBadErrorResponse(err, cached.ContentType)
	}
}
