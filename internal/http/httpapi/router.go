package httpapi

import (
	stdhttp "net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"donategate/internal/http/handlers"
	"donategate/internal/middleware"
)

// NewRouter assembles the public HTTP surface. Preflight answers are served
// by the CORS middleware before routing, so OPTIONS needs no routes of its
// own; everything else unmatched falls through to the 405 JSON body.
func NewRouter(app *handlers.App, log zerolog.Logger) stdhttp.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, chimw.RealIP, chimw.Recoverer, middleware.Logger(log))
	r.MethodNotAllowed(app.MethodNotAllowed)

	r.Get("/healthz", app.Health)

	r.Route("/intake", func(r chi.Router) {
		r.Use(middleware.CORS("GET, POST, PUT, OPTIONS"))
		r.MethodNotAllowed(app.MethodNotAllowed)
		r.Post("/", app.DonationsCreate)
		r.Put("/", app.DonationsOverride)
	})

	r.Route("/callback", func(r chi.Router) {
		r.Use(middleware.CORS("POST, OPTIONS"))
		r.MethodNotAllowed(app.MethodNotAllowed)
		r.Post("/", app.TelegramCallback)
	})

	return r
}
