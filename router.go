package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	httpSwagger "github.com/swaggo/http-swagger"
)

// routes wires middlewares and endpoints. Adjust CORS for your frontend hosts.
func (a *App) routes() http.Handler {
	r := chi.NewRouter()

	r.Use(requestLogger(a.log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://127.0.0.1:5173", "http://localhost:3000", "https://*.run.app"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Form-Instance"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/api/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml; charset=utf-8")
		w.Header().Set("Cache-Control", "public, max-age=60")
		w.Write(openapiYAML)
	})

	r.Mount("/swagger", httpSwagger.Handler(
		httpSwagger.URL("/api/openapi.yaml"),
	))

	r.Route("/api", func(api chi.Router) {
		api.Get("/health", a.handleHealth)
		api.Get("/catalogue", a.handleCatalogue)
		api.Post("/auth/register", a.handleRegister)
		api.Post("/auth/login", a.handleLogin)

		api.Group(func(pr chi.Router) {
			pr.Use(a.authMiddleware)
			pr.Get("/me", a.handleMe)
			pr.With(a.limiter.Limit).Post("/predict", a.handlePredict)
			pr.Get("/dashboard", a.handleDashboard)

			pr.Route("/registration", func(rr chi.Router) {
				rr.Post("/", a.handleStartWizard)
				rr.Get("/{id}", a.handleGetWizard)
				rr.Patch("/{id}/fields", a.handleWizardFields)
				rr.Post("/{id}/next", a.handleWizardNext)
				rr.Post("/{id}/previous", a.handleWizardPrevious)
				rr.Post("/{id}/submit", a.handleWizardSubmit)
			})
		})
	})

	return r
}
