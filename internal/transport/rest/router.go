package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"

	"github.com/frahmantamala/employee-directory/internal/employee"
	"github.com/frahmantamala/employee-directory/internal/organization"
	"github.com/frahmantamala/employee-directory/internal/ratelimit"
	"github.com/frahmantamala/employee-directory/internal/transport/middleware"
	"github.com/frahmantamala/employee-directory/internal/transport/swagger"
)

// RegisterAllRoutes wires the middleware chain and the versioned API surface.
// The rate limiter sits ahead of the routed handlers so denied requests never
// reach them; health and admin paths bypass it inside the middleware itself.
func RegisterAllRoutes(
	router *chi.Mux,
	db *sql.DB,
	organizationHandler *organization.Handler,
	employeeHandler *employee.Handler,
	limiter *ratelimit.Limiter,
	tenants ratelimit.TenantResolver,
	logger *slog.Logger,
) {
	healthHandler := NewHealthHandler(db)

	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.TraceID)
	router.Use(middleware.RecoveryMiddleware(logger))
	if limiter != nil {
		router.Use(ratelimit.Middleware(limiter, tenants))
	}
	router.Use(middleware.LoggingMiddleware(logger))

	// Serve OpenAPI spec at root (outside API prefix)
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	// Swagger UI route at root
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health/", healthHandler.healthCheckHandler)
		r.Get("/health/ready", healthHandler.readinessHandler)

		r.Get("/organizations/", organizationHandler.ListOrganizations)
		r.Get("/organizations/{id}/config/", organizationHandler.GetConfig)
		r.Get("/organizations/{id}/employees/search/", employeeHandler.SearchEmployees)
	})
}
