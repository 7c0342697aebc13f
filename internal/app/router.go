package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/installdesk/installdesk/internal/customers"
	"github.com/installdesk/installdesk/internal/dashboard"
	"github.com/installdesk/installdesk/internal/invoices"
	"github.com/installdesk/installdesk/internal/materials"
	"github.com/installdesk/installdesk/internal/observability"
	"github.com/installdesk/installdesk/internal/projects"
	"github.com/installdesk/installdesk/internal/workorders"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger           *slog.Logger
	Config           *Config
	CustomerHandler  *customers.Handler
	MaterialHandler  *materials.Handler
	WorkOrderHandler *workorders.Handler
	InvoiceHandler   *invoices.Handler
	ProjectHandler   *projects.Handler
	DashboardHandler *dashboard.Handler
	Metrics          *observability.Metrics
}

// NewRouter constructs the chi.Router with the API surface.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:  params.Logger,
		Config:  params.Config,
		Metrics: params.Metrics,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	if params.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", params.Metrics.Handler())
	}

	r.Route("/api", func(r chi.Router) {
		params.CustomerHandler.MountRoutes(r)
		params.MaterialHandler.MountRoutes(r)
		params.WorkOrderHandler.MountRoutes(r)
		params.InvoiceHandler.MountRoutes(r)
		params.ProjectHandler.MountRoutes(r)
		params.DashboardHandler.MountRoutes(r)
	})

	return r
}
