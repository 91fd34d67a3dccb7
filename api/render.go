package api

import (
	"bytes"
	"errors"
	"html/template"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/dbarros/portfolio-backend/errs"
	"github.com/dbarros/portfolio-backend/pages"
)

// The page markup is a thin server-rendered shell around the view models;
// the real presentation layer lives outside this repository.
const pageTemplates = `
{{define "head"}}<!DOCTYPE html><html><head><title>{{.Title}}</title></head><body>{{end}}
{{define "foot"}}</body></html>{{end}}

{{define "home"}}{{template "head" .}}
<h1>{{.Page.Profile.FullName}}</h1>
<p>{{.Page.Profile.Tagline}}</p>
{{range .Page.FeaturedProjects}}<article><h2>{{.Title}}</h2><p>{{.ShortDescription}}</p></article>{{end}}
{{range .Page.Statistics}}<div>{{.Label}}: {{.Value}}</div>{{end}}
{{range .Page.Testimonials}}<blockquote>{{.Content}} — {{.ClientName}}</blockquote>{{end}}
{{template "foot" .}}{{end}}

{{define "about"}}{{template "head" .}}
{{if .Page.Profile}}<h1>About {{.Page.Profile.FullName}}</h1>{{end}}
{{range .Page.SkillGroups}}<section><h2>{{.Label}}</h2>{{range .Skills}}<div>{{.Name}} ({{.Proficiency}}%)</div>{{end}}</section>{{end}}
<p>{{.Page.ProjectCount}} projects, {{.Page.ClientCount}} clients</p>
{{template "foot" .}}{{end}}

{{define "contact"}}{{template "head" .}}
{{if .Flash}}<p class="flash flash-{{.Flash.Level}}">{{.Flash.Message}}</p>{{end}}
<form method="post" action="/contact/submit/">
<input name="name"><input name="email"><input name="subject">
<textarea name="message"></textarea>
<button type="submit">Send</button>
</form>
{{template "foot" .}}{{end}}

{{define "project_list"}}{{template "head" .}}
{{range .Page.Projects}}<article><h2><a href="/projects/{{.Slug}}/">{{.Title}}</a></h2><p>{{.ShortDescription}}</p></article>{{end}}
<nav>page {{.Page.Pagination.Page}} of {{.Page.Pagination.TotalPages}}</nav>
{{template "foot" .}}{{end}}

{{define "project_detail"}}{{template "head" .}}
<h1>{{.Page.Project.Title}}</h1>
<p>{{.Page.Project.FullDescription}}</p>
{{range .Page.Project.Features}}<div>{{.Title}}: {{.Description}}</div>{{end}}
{{range .Page.Related}}<a href="/projects/{{.Slug}}/">{{.Title}}</a>{{end}}
{{template "foot" .}}{{end}}

{{define "blog_list"}}{{template "head" .}}
{{range .Page.Posts}}<article><h2><a href="/blog/{{.Slug}}/">{{.Title}}</a></h2><p>{{.Excerpt}}</p></article>{{end}}
<nav>page {{.Page.Pagination.Page}} of {{.Page.Pagination.TotalPages}}</nav>
{{template "foot" .}}{{end}}

{{define "blog_detail"}}{{template "head" .}}
<h1>{{.Page.Post.Title}}</h1>
<div>{{.Page.Post.Content}}</div>
{{range .Page.Related}}<a href="/blog/{{.Slug}}/">{{.Title}}</a>{{end}}
{{template "foot" .}}{{end}}

{{define "error"}}{{template "head" .}}
<h1>{{.Title}}</h1>
<p>{{.Message}}</p>
{{template "foot" .}}{{end}}

{{define "maintenance"}}{{template "head" .}}
<h1>Down for maintenance</h1>
<p>{{.Message}}</p>
{{template "foot" .}}{{end}}
`

// Renderer executes the page templates against page view models.
type Renderer struct {
	tmpl   *template.Template
	logger zerolog.Logger
}

func NewRenderer() *Renderer {
	return &Renderer{
		tmpl:   template.Must(template.New("pages").Parse(pageTemplates)),
		logger: log.With().Str("handlerName", "renderer").Logger(),
	}
}

// pageData is the envelope every template receives.
type pageData struct {
	Title   string
	Page    any
	Flash   *flashMessage
	Message string
}

// Render executes a named template, buffering so a template failure can
// still become a clean 500 instead of a half-written page.
func (r *Renderer) Render(w http.ResponseWriter, status int, name string, data pageData) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		r.logger.Error().Err(err).Str("template", name).Msg("template execution failed")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		r.logger.Error().Err(err).Msg("error writing response")
	}
}

// htmlResponder turns errors into the custom 404/500 pages, rendered with
// profile and settings context when the store can supply it.
type htmlResponder struct {
	renderer *Renderer
	builder  pages.Builder
	logger   zerolog.Logger
}

func newHTMLResponder(renderer *Renderer, builder pages.Builder, logger zerolog.Logger) htmlResponder {
	return htmlResponder{renderer: renderer, builder: builder, logger: logger}
}

func (h htmlResponder) WriteNotFound(w http.ResponseWriter) {
	ctx := h.builder.BuildErrorContext()
	h.renderer.Render(w, http.StatusNotFound, "error", pageData{
		Title:   "Page Not Found - " + ctx.Settings.SiteName,
		Page:    ctx,
		Message: "The page you are looking for does not exist.",
	})
}

func (h htmlResponder) WriteInternalError(w http.ResponseWriter) {
	ctx := h.builder.BuildErrorContext()
	h.renderer.Render(w, http.StatusInternalServerError, "error", pageData{
		Title:   "Server Error - " + ctx.Settings.SiteName,
		Page:    ctx,
		Message: "Something went wrong on our end.",
	})
}

// WriteError renders the error page matching the error's nature: NotFound
// conditions get the 404 page, everything else is logged and gets the 500.
func (h htmlResponder) WriteError(w http.ResponseWriter, err error) {
	if errs.IsNotFound(err) {
		h.WriteNotFound(w)
		return
	}

	var apiErr *errs.ApiErr
	if errors.As(err, &apiErr) {
		h.logger.Error().Msg(apiErr.GetFullError())
	} else {
		h.logger.Error().Msg(err.Error())
	}
	h.WriteInternalError(w)
}
