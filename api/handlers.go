package api

import (
	"github.com/dbarros/portfolio-backend/database"
	"github.com/dbarros/portfolio-backend/pages"
	"github.com/dbarros/portfolio-backend/services"
)

type routeHandlers struct {
	siteHandler      siteHandler
	projectHandler   projectHandler
	blogHandler      blogHandler
	contactHandler   contactHandler
	publicAPIHandler publicAPIHandler
}

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, renderer *Renderer, notifier services.Notifier, mediaRoot string) *routeHandlers {
	builder := pages.NewBuilder(database)
	intake := services.NewContactIntake(database, notifier)

	return &routeHandlers{
		siteHandler:      newSiteHandler(database, renderer, builder, mediaRoot),
		projectHandler:   newProjectHandler(renderer, builder),
		blogHandler:      newBlogHandler(renderer, builder),
		contactHandler:   newContactHandler(renderer, builder, intake),
		publicAPIHandler: newPublicAPIHandler(database),
	}
}
