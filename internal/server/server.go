// Package server exposes the Congress.gov client as a small HTTP
// pass-through service: health and version endpoints plus /v3 routes
// that forward to the client and return the upstream body verbatim.
package server

import (
	"context"
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/lawlens/lawlens/internal/core/congress"
	apperrors "github.com/lawlens/lawlens/internal/errors"
	"github.com/lawlens/lawlens/internal/metrics"
	"github.com/lawlens/lawlens/internal/observability"
	servermw "github.com/lawlens/lawlens/internal/server/middleware"
)

// Server represents the HTTP pass-through service.
type Server struct {
	router *chi.Mux
	server *http.Server
	host   string
	port   int
	client *congress.Client
}

// New creates a new server fronting the given client.
func New(host string, port int, client *congress.Client) *Server {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(servermw.RequestID)
	r.Use(recovery)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		apperrors.RespondWithError(w, req, apperrors.NewNotFoundError("The requested resource was not found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		apperrors.RespondWithError(w, req, apperrors.NewMethodNotAllowedError("The requested method is not allowed for this resource"))
	})

	s := &Server{
		router: r,
		host:   host,
		port:   port,
		client: client,
	}
	s.registerRoutes()
	return s
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.host, s.port)

	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	if logger := observability.Logger(); logger != nil {
		logger.Info("Starting HTTP server",
			zap.String("host", s.host),
			zap.Int("port", s.port),
			zap.String("addr", addr))
	}

	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if logger := observability.Logger(); logger != nil {
		logger.Info("Shutting down HTTP server")
	}
	return s.server.Shutdown(ctx)
}

// Handler exposes the underlying router for testing and instrumentation.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Port returns the server port for testing.
func (s *Server) Port() int {
	return s.port
}

// recovery converts panics into logged 500 responses.
func recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				metrics.RecordPanic()
				if logger := observability.Logger(); logger != nil {
					logger.Error("Recovered from panic",
						zap.Any("panic", rec),
						zap.String("path", r.URL.Path),
						zap.ByteString("stack", debug.Stack()))
				}
				apperrors.RespondWithError(w, r, apperrors.NewInternalError("An unexpected error occurred"))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
