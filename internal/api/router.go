package api

import (
	"log/slog"
	"net/http"
	"time"

	"lamprea-admin/internal/api/handler"
	mw "lamprea-admin/internal/api/middleware"
	"lamprea-admin/internal/config"
	"lamprea-admin/internal/domain/agent"
	"lamprea-admin/internal/domain/courier"
	"lamprea-admin/internal/domain/customer"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/traceid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRouter(accountService customer.AccountService, agentService agent.Service, courierService courier.Service, cfg *config.Config, logger *slog.Logger) *chi.Mux {
	router := chi.NewRouter()

	setupMiddleware(router, cfg, logger)
	setupMetricsEndpoint(router, cfg, logger)
	setupCustomerRoutes(router, accountService, logger)
	setupAgentRoutes(router, agentService, logger)
	setupCourierRoutes(router, courierService, logger)
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	return router
}

func setupMiddleware(router *chi.Mux, cfg *config.Config, logger *slog.Logger) {
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(traceid.Middleware)
	router.Use(mw.StructuredLogger(logger))
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(middleware.Timeout(60 * time.Second))
	router.Use(mw.NewRateLimiterMiddleware(cfg.Server.RateLimit, logger).Middleware)
	router.Use(mw.MetricsMiddleware())
}

func setupMetricsEndpoint(router *chi.Mux, cfg *config.Config, logger *slog.Logger) {
	metricsPath := cfg.Metrics.Path
	if metricsPath == "" {
		metricsPath = "/metrics"
	}
	logger.Info("Setting up Prometheus metrics endpoint", "path", metricsPath)
	router.Handle(metricsPath, promhttp.Handler())
}

func setupCustomerRoutes(router *chi.Mux, svc customer.AccountService, logger *slog.Logger) {
	h := handler.NewCustomerHandler(svc, logger)

	router.Route("/customers", func(r chi.Router) {
		r.Post("/", h.CreateCustomer)
		r.Get("/", h.ListCustomers)
		r.Get("/full", h.ListCustomersFull)
		r.Route("/{customerID}", func(r chi.Router) {
			r.Get("/", h.GetCustomer)
			r.Put("/", h.UpdateCustomer)
			r.Delete("/", h.DeleteCustomer)
			r.Get("/details", h.GetCustomerDetails)
		})
	})
}

func setupAgentRoutes(router *chi.Mux, svc agent.Service, logger *slog.Logger) {
	h := handler.NewAgentHandler(svc, logger)

	router.Route("/agents", func(r chi.Router) {
		r.Post("/", h.CreateAgent)
		r.Get("/", h.ListAgents)
		r.Route("/{agentID}", func(r chi.Router) {
			r.Get("/", h.GetAgent)
			r.Put("/", h.UpdateAgent)
			r.Delete("/", h.DeleteAgent)
		})
	})
}

func setupCourierRoutes(router *chi.Mux, svc courier.Service, logger *slog.Logger) {
	h := handler.NewCourierHandler(svc, logger)

	router.Route("/couriers", func(r chi.Router) {
		r.Post("/", h.CreateCourier)
		r.Get("/", h.ListCouriers)
		r.Route("/{courierID}", func(r chi.Router) {
			r.Get("/", h.GetCourier)
			r.Put("/", h.UpdateCourier)
			r.Delete("/", h.DeleteCourier)
		})
	})
}
