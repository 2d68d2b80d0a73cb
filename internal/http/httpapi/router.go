package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"communityserver/internal/http/handlers"
	"communityserver/internal/infra"
	"communityserver/internal/middleware"
)

// NewRouter wires the middleware chain and the full route table.
func NewRouter(app *handlers.App, cfg *infra.Config, lookup middleware.CountryLookup) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimiddleware.RealIP,
		chimiddleware.Recoverer,
		middleware.Logger(app.Logger),
		middleware.CORS(cfg.AllowedOrigins),
		middleware.RateLimit(cfg.RateLimitPerMin, time.Minute),
		middleware.I18N(cfg.DefaultLocale, lookup),
	)

	admin := func(r chi.Router) chi.Router {
		return r.With(middleware.AuthJWT(cfg.JWTSecret), middleware.RequireAdmin)
	}

	// Health
	r.Get("/v1/healthz", app.Health)

	r.Route("/v1/registrations", func(r chi.Router) {
		r.Post("/", app.RegistrationsCreate)
		r.Get("/{id}", app.RegistrationsGet)
		r.Post("/{id}/cancel", app.RegistrationsCancel)
		admin(r).Get("/", app.RegistrationsList)
		admin(r).Post("/{id}/status", app.RegistrationsTransition)
	})

	r.Route("/v1/donations", func(r chi.Router) {
		r.Post("/", app.DonationsInitiate)
		r.Post("/{id}/confirm", app.DonationsConfirm)
		r.Post("/{id}/fail", app.DonationsFail)
		r.Get("/recent", app.DonationsRecent)
		admin(r).Post("/{id}/refund", app.DonationsRefund)
	})

	r.Route("/v1/events", func(r chi.Router) {
		r.Get("/", app.EventsList)
		r.Get("/{id}", app.EventsGet)
		admin(r).Post("/", app.EventsCreate)
	})

	admin(r).Get("/v1/stats/summary", app.StatsSummary)

	return r
}
