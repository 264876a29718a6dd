package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Steve0012345/Snoonu-App/internal/http/activity"
	"github.com/Steve0012345/Snoonu-App/internal/http/auth"
	"github.com/Steve0012345/Snoonu-App/internal/http/household"
	"github.com/Steve0012345/Snoonu-App/internal/http/plan"
	"github.com/Steve0012345/Snoonu-App/internal/http/wallet"
)

func New(
	allowedOrigins []string,
	authV1 *auth.Handler,
	activitiesV1 *activity.Handler,
	walletV1 *wallet.Handler,
	planV1 *plan.Handler,
	householdV1 *household.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	router.Handle("/metrics", promhttp.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			authV1.Routes(r)
		})

		r.Route("/activities", func(r chi.Router) {
			activitiesV1.Routes(r)
		})

		r.Route("/wallet", walletV1.Routes)

		r.Route("/plan", planV1.Routes)

		r.Route("/household", func(r chi.Router) {
			householdV1.Routes(r)
		})
	})

	return router
}
