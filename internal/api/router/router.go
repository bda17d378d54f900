package router

import (
	"context"
	"net/http"

	"github.com/attager/a2a-threat-center/internal/api/handlers"
	"github.com/attager/a2a-threat-center/internal/api/middleware"
	"github.com/attager/a2a-threat-center/internal/config"
	"github.com/attager/a2a-threat-center/internal/pkg/logger"
	"github.com/attager/a2a-threat-center/internal/pkg/metrics"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Handlers struct {
	Health   *handlers.HealthHandler
	Stream   *handlers.StreamHandler
	Agent    *handlers.AgentHandler
	Packet   *handlers.PacketHandler
	Alert    *handlers.AlertHandler
	Overview *handlers.OverviewHandler
}

// New builds the HTTP handler. ctx bounds background work owned by the
// middleware stack.
func New(ctx context.Context, cfg *config.Config, log *logger.Logger, h *Handlers) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(log.WithComponent("http")))
	r.Use(middleware.Recovery(log))
	r.Use(metrics.Middleware)
	r.Use(middleware.DefaultCORS(cfg.Server.FrontendURL))

	// Operational routes
	r.Get("/swagger/*", httpSwagger.WrapHandler)
	r.Get("/health", h.Health.Healthz)
	r.Get("/healthz", h.Health.Healthz)
	r.Get("/readyz", h.Health.Readyz)
	r.Handle("/metrics", metrics.Handler())

	// Live alert stream, held open for the life of the connection
	r.Get("/stream", h.Stream.Stream)

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.RateLimit(ctx, cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst))

		r.Get("/agents", h.Agent.Graph)
		r.Get("/overview", h.Overview.Overview)
		r.Get("/branding", h.Overview.Branding)

		r.Route("/packets", func(r chi.Router) {
			r.Get("/", h.Packet.List)
			r.Get("/recent", h.Packet.Recent)
		})

		r.Route("/alerts", func(r chi.Router) {
			r.Get("/recent", h.Alert.Recent)
			r.Get("/{id}", h.Alert.Get)
		})
	})

	return r
}
