package server

import (
	"github.com/lawlens/lawlens/internal/server/handlers"
)

// registerRoutes registers all HTTP routes.
func (s *Server) registerRoutes() {
	// Standard health endpoints
	s.router.Get("/health", handlers.HealthHandler)
	s.router.Get("/health/live", handlers.LivenessHandler)
	s.router.Get("/health/ready", handlers.ReadinessHandler)

	// Version endpoint
	s.router.Get("/version", handlers.VersionHandler)

	// API pass-through, mirroring the upstream /v3 layout
	s.router.Get("/v3/{resource}", s.proxyHandler)
	s.router.Get("/v3/{resource}/*", s.proxyHandler)
}
