package server

import (
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"socialagent/internal/handlers"
	"socialagent/internal/handlers/api"
	"socialagent/internal/rates"
	"socialagent/internal/store"
)

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(fetcher *rates.Fetcher, contentStore *store.Store) {
	pageHandler := handlers.NewPageHandler(fetcher, s.Cfg, contentStore)
	probeHandler := handlers.NewProbeHandler()

	ratesHandler := api.NewRatesHandler(fetcher)
	generateHandler := api.NewGenerateHandler(fetcher, s.Cfg, contentStore)
	audiencesHandler := api.NewAudiencesHandler()
	settingsHandler := api.NewSettingsHandler(s.Cfg)

	// Pages
	s.App.Get("/", pageHandler.Index)
	s.App.Get("/generate", pageHandler.Generate)
	s.App.Get("/audiences", pageHandler.Audiences)
	s.App.Get("/analytics", pageHandler.Analytics)
	s.App.Get("/settings", pageHandler.Settings)
	s.App.Get("/help", pageHandler.Help)

	// JSON API
	s.App.Get("/api/rates", ratesHandler.Get)
	s.App.Post("/api/generate", generateHandler.Generate)
	s.App.Post("/api/variations", generateHandler.Variations)
	s.App.Get("/api/audiences", audiencesHandler.List)
	s.App.Post("/api/settings", settingsHandler.Update)

	// Operational endpoints
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}
