package rest

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/nDmitry/mediafeeds/internal/app"
	"github.com/nDmitry/mediafeeds/internal/cache"
)

// ServerOptions holds the HTTP server settings
type ServerOptions struct {
	Port            string
	AllowedOrigins  []string
	ShutdownTimeout time.Duration
}

// Server represents the REST API server
type Server struct {
	router      chi.Router
	server      *http.Server
	logger      *slog.Logger
	cache       *ResponseCache
	generator   Generator
	renderer    Renderer
	crossDomain CrossDomain
	opts        ServerOptions
}

// NewServer creates a new REST API server
func NewServer(c cache.Cache, g Generator, rd Renderer, cd CrossDomain, opts ServerOptions) *Server {
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = 10 * time.Second
	}

	server := &Server{
		router:      chi.NewRouter(),
		logger:      app.Logger(),
		cache:       NewResponseCache(c),
		generator:   g,
		renderer:    rd,
		crossDomain: cd,
		opts:        opts,
		server: &http.Server{
			Addr:              ":" + opts.Port,
			Handler:           nil,               // Will be set in Run
			ReadHeaderTimeout: 10 * time.Second,  // Mitigate Slowloris
			ReadTimeout:       30 * time.Second,  // Time to read entire request (including body)
			WriteTimeout:      30 * time.Second,  // Time to write response
			IdleTimeout:       120 * time.Second, // Keep-alive timeout
		},
	}

	server.registerHandlers()

	return server
}

// registerHandlers sets up middleware and all API routes
func (s *Server) registerHandlers() {
	s.router.Use(RequestID)
	s.router.Use(Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.GetHead)
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.opts.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", requestIDHeader},
		ExposedHeaders: []string{cacheStatusHeader, requestIDHeader},
		MaxAge:         300,
	}))

	s.router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})

	NewSitemapsHandler(s.router, s.cache, s.generator, s.renderer, s.crossDomain)
}

// Handler returns the router with all middleware applied
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run starts the server and blocks until the context is canceled
func (s *Server) Run(ctx context.Context) error {
	s.server.Handler = s.router

	// Set BaseContext to pass the parent context
	s.server.BaseContext = func(_ net.Listener) context.Context { return ctx }

	// Register shutdown handler
	s.server.RegisterOnShutdown(func() {
		s.logger.Info("Server is shutting down...")
	})

	// Start server in a goroutine
	errCh := make(chan error, 1)

	go func() {
		s.logger.Info("Starting HTTP server", "port", s.opts.Port)
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("server error: %w", err)
		}
		close(errCh)
	}()

	// Wait for context cancellation or server error
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return s.Shutdown(context.Background())
	}
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(ctx, s.opts.ShutdownTimeout)
	defer cancel()

	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	s.logger.Info("Server exited gracefully")

	return nil
}
