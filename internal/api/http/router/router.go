package router

import (
	"net/http"

	"github.com/specflow/quote-server/internal/api/http/handler"
	"github.com/specflow/quote-server/internal/api/http/middleware"
	"github.com/specflow/quote-server/internal/logger"
	"github.com/specflow/quote-server/internal/recommend"
	"github.com/specflow/quote-server/internal/service"
)

// Router wires services to HTTP routes.
type Router struct {
	estimateService *service.Estimate
	leadService     *service.Lead
	registry        *recommend.Registry
	adminSecret     string
	logger          *logger.Logger
}

// New creates a Router instance.
func New(
	estimateService *service.Estimate,
	leadService *service.Lead,
	registry *recommend.Registry,
	adminSecret string,
	logger *logger.Logger,
) *Router {
	return &Router{
		estimateService: estimateService,
		leadService:     leadService,
		registry:        registry,
		adminSecret:     adminSecret,
		logger:          logger,
	}
}

// Register builds the HTTP handler with request logging on every route and
// the admin gate on the admin subtree only.
func (r *Router) Register() http.Handler {
	logging := middleware.NewLogging(r.logger)
	adminAuth := middleware.NewAdminAuth(r.adminSecret, r.logger)

	estimateHandler := handler.NewEstimate(r.estimateService, r.logger)
	leadHandler := handler.NewLead(r.leadService, r.logger)
	recommendHandler := handler.NewRecommend(r.registry, r.logger)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/estimate", estimateHandler.Quote)
	mux.HandleFunc("POST /api/leads", leadHandler.Create)
	mux.HandleFunc("POST /api/recommendations", recommendHandler.Recommendations)
	mux.HandleFunc("GET /api/distributors", recommendHandler.Distributors)

	admin := http.NewServeMux()
	admin.HandleFunc("GET /api/admin/leads", leadHandler.List)
	admin.HandleFunc("GET /api/admin/leads/{id}", leadHandler.Get)
	admin.HandleFunc("DELETE /api/admin/leads/{id}", leadHandler.Delete)
	mux.Handle("/api/admin/", adminAuth.Handle(admin))

	return logging.Handle(mux)
}
