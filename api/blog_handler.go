package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/dbarros/portfolio-backend/database"
	"github.com/dbarros/portfolio-backend/pages"
)

type blogHandler struct {
	html    htmlResponder
	builder pages.Builder
}

func newBlogHandler(renderer *Renderer, builder pages.Builder) blogHandler {
	logger := log.With().Str("handlerName", "blogHandler").Logger()

	return blogHandler{
		html:    newHTMLResponder(renderer, builder, logger),
		builder: builder,
	}
}

// list renders a filtered, paginated page of published posts.
func (h blogHandler) list() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := h.builder.BuildBlogList(blogFilterFromQuery(r))
		if err != nil {
			h.html.WriteError(w, err)
			return
		}

		h.html.renderer.Render(w, http.StatusOK, "blog_list", pageData{
			Title: "Blog - " + page.Settings.SiteName,
			Page:  page,
		})
	}
}

// detail renders a single published post by slug.
func (h blogHandler) detail() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := h.builder.BuildBlogDetail(chi.URLParam(r, "slug"))
		if err != nil {
			h.html.WriteError(w, err)
			return
		}

		h.html.renderer.Render(w, http.StatusOK, "blog_detail", pageData{
			Title: page.Post.Title + " - " + page.Settings.SiteName,
			Page:  page,
		})
	}
}

func blogFilterFromQuery(r *http.Request) database.BlogFilter {
	q := r.URL.Query()
	return database.BlogFilter{
		Category: q.Get("category"),
		Tag:      q.Get("tag"),
		Search:   q.Get("search"),
		Page:     pageParam(q.Get("page")),
	}
}
