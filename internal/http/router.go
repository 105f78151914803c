package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/cfed-mr/backoffice/internal/auth"
	accountHandler "github.com/cfed-mr/backoffice/internal/http/account"
	activityHandler "github.com/cfed-mr/backoffice/internal/http/activity"
	dashboardHandler "github.com/cfed-mr/backoffice/internal/http/dashboard"
	documentHandler "github.com/cfed-mr/backoffice/internal/http/document"
	expenseHandler "github.com/cfed-mr/backoffice/internal/http/expense"
	"github.com/cfed-mr/backoffice/internal/http/importcsv"
	missionHandler "github.com/cfed-mr/backoffice/internal/http/mission"
	rubricHandler "github.com/cfed-mr/backoffice/internal/http/rubric"
)

func New(
	authManager *auth.Manager,
	rubricsV1 *rubricHandler.Handler,
	missionsV1 *missionHandler.Handler,
	activitiesV1 *activityHandler.Handler,
	expensesV1 *expenseHandler.Handler,
	documentsV1 *documentHandler.Handler,
	accountsV1 *accountHandler.Handler,
	dashboardV1 *dashboardHandler.Handler,
	importV1 *importcsv.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			accountsV1.AuthRoutes(r)
		})

		r.Group(func(r chi.Router) {
			r.Use(authManager.Middleware)

			r.Route("/rubrics", func(r chi.Router) {
				rubricsV1.Routes(r)
			})

			r.Route("/missions", func(r chi.Router) {
				missionsV1.Routes(r)
			})

			r.Route("/activities", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				activitiesV1.Routes(r)
			})

			r.Route("/expenses", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				expensesV1.Routes(r)
			})

			r.Route("/documents", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				documentsV1.Routes(r)
			})

			r.Route("/users", accountsV1.UserRoutes)
			r.Route("/roles", accountsV1.RoleRoutes)

			r.Route("/dashboard", dashboardV1.Routes)

			r.Route("/import", importV1.Routes)
		})
	})

	return router
}
