package api

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/dbarros/portfolio-backend/database"
	"github.com/dbarros/portfolio-backend/pages"
)

type siteHandler struct {
	html        htmlResponder
	renderer    *Renderer
	logger      zerolog.Logger
	builder     pages.Builder
	profileRepo *database.ProfileRepo
	mediaRoot   string
}

func newSiteHandler(db database.Database, renderer *Renderer, builder pages.Builder, mediaRoot string) siteHandler {
	logger := log.With().Str("handlerName", "siteHandler").Logger()

	return siteHandler{
		html:        newHTMLResponder(renderer, builder, logger),
		renderer:    renderer,
		logger:      logger,
		builder:     builder,
		profileRepo: db.ProfileRepo(),
		mediaRoot:   mediaRoot,
	}
}

// home renders the landing page.
func (h siteHandler) home() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := h.builder.BuildHome()
		if err != nil {
			h.html.WriteError(w, err)
			return
		}

		h.renderer.Render(w, http.StatusOK, "home", pageData{
			Title: page.Settings.SiteName,
			Page:  page,
			Flash: popFlash(w, r),
		})
	}
}

// about renders the about page.
func (h siteHandler) about() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := h.builder.BuildAbout()
		if err != nil {
			h.html.WriteError(w, err)
			return
		}

		h.renderer.Render(w, http.StatusOK, "about", pageData{
			Title: "About - " + page.Settings.SiteName,
			Page:  page,
		})
	}
}

// contact renders the contact page with the form.
func (h siteHandler) contact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := h.builder.BuildContact()
		if err != nil {
			h.html.WriteError(w, err)
			return
		}

		h.renderer.Render(w, http.StatusOK, "contact", pageData{
			Title: "Contact - " + page.Settings.SiteName,
			Page:  page,
			Flash: popFlash(w, r),
		})
	}
}

// downloadResume streams the owner's resume as a PDF attachment, or
// redirects home with an error flash when no resume is available.
func (h siteHandler) downloadResume() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, err := h.profileRepo.FindOwner()
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			h.html.WriteError(w, wrapDatabaseError("find", "profile", err))
			return
		}

		if profile == nil || profile.ResumeFile == "" {
			setFlash(w, "error", "Resume not available.")
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}

		file, err := os.Open(filepath.Join(h.mediaRoot, profile.ResumeFile))
		if err != nil {
			h.logger.Error().Err(err).Str("resumeFile", profile.ResumeFile).Msg("resume file missing on disk")
			setFlash(w, "error", "Resume not available.")
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}
		defer file.Close()

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition",
			`attachment; filename="`+profile.FullName+`_Resume.pdf"`)
		http.ServeContent(w, r, profile.FullName+"_Resume.pdf", profile.UpdatedAt, file)
	}
}

// notFound is the catch-all for unmatched routes: JSON under /api, the
// custom 404 page everywhere else.
func (h siteHandler) notFound(responder Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") {
			responder.WriteJSONStatus(w, http.StatusNotFound, map[string]any{
				"error":  "not found",
				"status": "error",
			})
			return
		}
		h.html.WriteNotFound(w)
	}
}
