package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/dbarros/portfolio-backend/database"
	"github.com/dbarros/portfolio-backend/pages"
)

type projectHandler struct {
	html    htmlResponder
	builder pages.Builder
}

func newProjectHandler(renderer *Renderer, builder pages.Builder) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		html:    newHTMLResponder(renderer, builder, logger),
		builder: builder,
	}
}

// list renders a filtered, paginated page of published projects.
func (h projectHandler) list() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := h.builder.BuildProjectList(projectFilterFromQuery(r))
		if err != nil {
			h.html.WriteError(w, err)
			return
		}

		h.html.renderer.Render(w, http.StatusOK, "project_list", pageData{
			Title: "Projects - " + page.Settings.SiteName,
			Page:  page,
		})
	}
}

// detail renders a single published project by slug.
func (h projectHandler) detail() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := h.builder.BuildProjectDetail(chi.URLParam(r, "slug"))
		if err != nil {
			h.html.WriteError(w, err)
			return
		}

		h.html.renderer.Render(w, http.StatusOK, "project_detail", pageData{
			Title: page.Project.Title + " - " + page.Settings.SiteName,
			Page:  page,
		})
	}
}

// projectFilterFromQuery reads the listing filters off the query string. A
// non-numeric page falls back to 1; unknown filter values are passed through
// and narrow the result set downstream.
func projectFilterFromQuery(r *http.Request) database.ProjectFilter {
	q := r.URL.Query()
	return database.ProjectFilter{
		CategorySlug: q.Get("category"),
		Tag:          q.Get("tag"),
		Status:       q.Get("status"),
		Search:       q.Get("search"),
		Page:         pageParam(q.Get("page")),
	}
}

func pageParam(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil {
		return 1
	}
	return page
}
