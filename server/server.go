// Package server implements the HTTP surface of the docguru backend.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/svkul/docguru-back/document"
)

// Config holds server configuration options.
type Config struct {
	Addr           string
	AllowedOrigins []string
	Logger         zerolog.Logger
}

// Server is the HTTP server for the document routes.
type Server struct {
	httpServer *http.Server
	docs       *document.Service
	origins    []string
	logger     zerolog.Logger
}

// New creates a new HTTP server around the document service.
func New(cfg Config, docs *document.Service) *Server {
	s := &Server{
		docs:    docs,
		origins: cfg.AllowedOrigins,
		logger:  cfg.Logger.With().Str("component", "http-server").Logger(),
	}

	mux := http.NewServeMux()
	s.RegisterRoutes(mux)

	s.httpServer = &http.Server{
		Addr:    cfg.Addr,
		Handler: s.withCORS(s.withLogging(mux)),
	}
	return s
}

// RegisterRoutes attaches the document routes to mux.
func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/documents/analyze", s.handleAnalyze)
	mux.HandleFunc("/documents/generate-by-template", s.handleGenerateByTemplate)
	mux.HandleFunc("/documents/generate-by-template-docx", s.handleGenerateByTemplateDocx)
}

// Handler returns the fully assembled handler, middleware included.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// ListenAndServe starts the server on the configured address.
func (s *Server) ListenAndServe() error {
	s.logger.Info().Str("addr", s.httpServer.Addr).Msg("Starting HTTP server")
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info().Msg("Shutting down HTTP server")
	return s.httpServer.Shutdown(ctx)
}

// withLogging logs one line per request with method, path, and duration.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("duration", time.Since(start)).
			Msg("request handled")
	})
}
