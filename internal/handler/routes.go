package handler

import (
	"net/http"

	"github.com/Dan9191/runway-service/internal/config"
	"github.com/Dan9191/runway-service/internal/metrics"
	"github.com/Dan9191/runway-service/internal/middleware"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// NewRouter wires every route. Everything under /api except register and login requires a bearer token.
func NewRouter(h *Handler, cfg *config.Config, log *logrus.Logger, m *metrics.Metrics, gatherer prometheus.Gatherer) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.RequestID, middleware.AccessLog(log, m))

	r.HandleFunc("/", h.Root).Methods(http.MethodGet)
	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	// Public routes
	api.HandleFunc("/auth/register", h.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", h.Login).Methods(http.MethodPost)

	// Protected routes
	protected := api.NewRoute().Subrouter()
	protected.Use(middleware.AuthMiddleware(cfg))
	protected.HandleFunc("/auth/me", h.Me).Methods(http.MethodGet)

	protected.HandleFunc("/companies", h.CreateCompany).Methods(http.MethodPost)
	protected.HandleFunc("/companies", h.ListCompanies).Methods(http.MethodGet)
	protected.HandleFunc("/companies/{company_id:[0-9]+}", h.GetCompany).Methods(http.MethodGet)

	protected.HandleFunc("/financial-snapshots", h.CreateSnapshot).Methods(http.MethodPost)
	protected.HandleFunc("/financial-snapshots", h.ListSnapshots).Methods(http.MethodGet)
	protected.HandleFunc("/financial-snapshots/{snapshot_id:[0-9]+}", h.GetSnapshot).Methods(http.MethodGet)
	protected.HandleFunc("/financial-snapshots/{snapshot_id:[0-9]+}", h.UpdateSnapshot).Methods(http.MethodPatch)
	protected.HandleFunc("/financial-snapshots/{snapshot_id:[0-9]+}", h.DeleteSnapshot).Methods(http.MethodDelete)

	protected.HandleFunc("/hire-scenarios", h.CreateScenario).Methods(http.MethodPost)
	protected.HandleFunc("/hire-scenarios", h.ListScenarios).Methods(http.MethodGet)
	protected.HandleFunc("/hire-scenarios/{scenario_id:[0-9]+}", h.GetScenario).Methods(http.MethodGet)
	protected.HandleFunc("/hire-scenarios/{scenario_id:[0-9]+}", h.UpdateScenario).Methods(http.MethodPatch)
	protected.HandleFunc("/hire-scenarios/{scenario_id:[0-9]+}", h.DeleteScenario).Methods(http.MethodDelete)

	protected.HandleFunc("/hiring-impact/calculate", h.CalculateHiringImpact).Methods(http.MethodPost)

	return r
}
