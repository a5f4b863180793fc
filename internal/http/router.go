package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/casabooks/casabooks/internal/http/export"
	"github.com/casabooks/casabooks/internal/http/journal"
	"github.com/casabooks/casabooks/internal/http/registry"
	"github.com/casabooks/casabooks/internal/http/report"
	"github.com/casabooks/casabooks/internal/http/settlement"
)

func New(
	jwtSecret string,
	registryV1 *registry.Handler,
	journalV1 *journal.Handler,
	settlementV1 *settlement.Handler,
	reportV1 *report.Handler,
	exportV1 *export.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(BearerAuth(jwtSecret))

		r.Route("/accounts", func(r chi.Router) {
			registryV1.Routes(r)
		})

		r.Route("/journal-entries", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			journalV1.Routes(r)
		})

		r.Route("/settlements", func(r chi.Router) {
			settlementV1.Routes(r)
		})

		r.Route("/balances", func(r chi.Router) {
			reportV1.Routes(r)
		})

		r.Route("/exports", func(r chi.Router) {
			exportV1.Routes(r)
		})
	})

	return router
}
