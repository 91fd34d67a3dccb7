package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/dbarros/portfolio-backend/database"
)

// setupSiteRoutes sets up the server-rendered pages. Maintenance mode only
// gates these: the JSON API stays up while the site shows the 503 page.
func setupSiteRoutes(r chi.Router, handlers *routeHandlers, db database.Database, renderer *Renderer) {
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)
		r.Use(maintenanceMiddleware(db, renderer))

		r.Get("/", handlers.siteHandler.home())
		r.Get("/about/", handlers.siteHandler.about())
		r.Get("/contact/", handlers.siteHandler.contact())
		r.Post("/contact/submit/", handlers.contactHandler.submit())

		r.Get("/projects/", handlers.projectHandler.list())
		r.Get("/projects/{slug}/", handlers.projectHandler.detail())

		r.Get("/blog/", handlers.blogHandler.list())
		r.Get("/blog/{slug}/", handlers.blogHandler.detail())
	})

	// The resume stays downloadable during maintenance.
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)
		r.Get("/resume/download/", handlers.siteHandler.downloadResume())
	})
}

// setupAPIRoutes sets up the read-only JSON endpoints with permissive CORS.
func setupAPIRoutes(r chi.Router, handlers *routeHandlers) {
	r.Route("/api", func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))

		r.Get("/profile/", handlers.publicAPIHandler.profile())
		r.Get("/projects/", handlers.publicAPIHandler.projects())
		r.Get("/projects/{slug}/", handlers.publicAPIHandler.projectDetail())
		r.Get("/stats/", handlers.publicAPIHandler.statistics())
	})
}
