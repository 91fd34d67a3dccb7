package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/dbarros/portfolio-backend/database"
	"github.com/dbarros/portfolio-backend/models"
)

// publicAPIHandler serves the read-only JSON endpoints under /api. The
// projections are deliberately flat: enum codes become display labels and
// owned collections collapse to the fields a consumer needs.
type publicAPIHandler struct {
	responder Responder
	db        database.Database
}

func newPublicAPIHandler(db database.Database) publicAPIHandler {
	logger := log.With().Str("handlerName", "publicAPIHandler").Logger()

	return publicAPIHandler{
		responder: NewResponder(logger),
		db:        db,
	}
}

func (h publicAPIHandler) profile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, err := h.db.ProfileRepo().FindOwner()
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				h.responder.WriteJSONStatus(w, http.StatusNotFound, map[string]any{
					"error": "Profile not found",
				})
				return
			}
			h.responder.WriteError(w, wrapDatabaseError("find", "profile", err))
			return
		}

		links, err := h.db.ProfileRepo().SocialLinks(profile.ID, true)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "social links", err))
			return
		}

		skills, err := h.db.ProfileRepo().Skills(profile.ID, false)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "skills", err))
			return
		}

		linkData := make([]map[string]any, 0, len(links))
		for _, link := range links {
			linkData = append(linkData, map[string]any{
				"platform": link.Platform.Label(),
				"url":      link.URL,
				"username": link.Username,
			})
		}

		skillData := make([]map[string]any, 0, len(skills))
		for _, skill := range skills {
			skillData = append(skillData, map[string]any{
				"name":        skill.Name,
				"category":    skill.Category.Label(),
				"proficiency": skill.Proficiency,
			})
		}

		h.responder.WriteJSON(w, map[string]any{
			"full_name":        profile.FullName,
			"title":            profile.Title,
			"bio":              profile.Bio,
			"tagline":          profile.Tagline,
			"email":            profile.Email,
			"location":         profile.Location,
			"years_experience": profile.YearsExperience,
			"is_available":     profile.IsAvailable,
			"status_text":      profile.StatusText,
			"social_links":     linkData,
			"skills":           skillData,
		})
	}
}

func (h publicAPIHandler) projects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.db.ProjectRepo().FindAllPublished(r.URL.Query().Get("category"))
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "projects", err))
			return
		}

		data := make([]map[string]any, 0, len(projects))
		for _, project := range projects {
			data = append(data, map[string]any{
				"id":                project.ID,
				"title":             project.Title,
				"slug":              project.Slug,
				"short_description": project.ShortDescription,
				"category":          categoryName(project.Category),
				"status":            project.Status.Label(),
				"tags":              []string(project.Tags),
				"technologies":      technologyNames(project.Technologies),
				"github_url":        project.GithubURL,
				"live_url":          project.LiveURL,
				"is_featured":       project.IsFeatured,
			})
		}

		h.responder.WriteJSON(w, map[string]any{"projects": data})
	}
}

func (h publicAPIHandler) projectDetail() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		project, err := h.db.ProjectRepo().FindPublishedBySlug(chi.URLParam(r, "slug"))
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}

		techData := make([]map[string]any, 0, len(project.Technologies))
		for _, tech := range project.Technologies {
			techData = append(techData, map[string]any{
				"name":    tech.Name,
				"version": tech.Version,
			})
		}

		featureData := make([]map[string]any, 0, len(project.Features))
		for _, feature := range project.Features {
			featureData = append(featureData, map[string]any{
				"title":       feature.Title,
				"description": feature.Description,
			})
		}

		imageData := make([]map[string]any, 0, len(project.Images))
		for _, image := range project.Images {
			imageData = append(imageData, map[string]any{
				"url":      image.Image,
				"caption":  image.Caption,
				"alt_text": image.AltText,
			})
		}

		h.responder.WriteJSON(w, map[string]any{
			"id":                project.ID,
			"title":             project.Title,
			"slug":              project.Slug,
			"short_description": project.ShortDescription,
			"full_description":  project.FullDescription,
			"status":            project.Status.Label(),
			"tags":              []string(project.Tags),
			"team_size":         project.TeamSize,
			"duration":          project.Duration,
			"role":              project.Role,
			"client":            project.Client,
			"user_count":        project.UserCount,
			"github_url":        project.GithubURL,
			"live_url":          project.LiveURL,
			"documentation_url": project.DocumentationURL,
			"technologies":      techData,
			"features":          featureData,
			"images":            imageData,
		})
	}
}

func (h publicAPIHandler) statistics() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, err := h.db.ProfileRepo().FindOwner()
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				h.responder.WriteJSONStatus(w, http.StatusNotFound, map[string]any{
					"error": "Profile not found",
				})
				return
			}
			h.responder.WriteError(w, wrapDatabaseError("find", "profile", err))
			return
		}

		statistics, err := h.db.ProfileRepo().Statistics(profile.ID, 0)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "statistics", err))
			return
		}

		data := make([]map[string]any, 0, len(statistics))
		for _, stat := range statistics {
			data = append(data, map[string]any{
				"metric_type": stat.MetricType.Label(),
				"label":       stat.Label,
				"value":       stat.Value,
				"description": stat.Description,
			})
		}

		h.responder.WriteJSON(w, map[string]any{"statistics": data})
	}
}

func categoryName(category *models.ProjectCategory) any {
	if category == nil {
		return nil
	}
	return category.Name
}

func technologyNames(technologies []models.ProjectTechnology) []string {
	names := make([]string, 0, len(technologies))
	for _, tech := range technologies {
		names = append(names, tech.Name)
	}
	return names
}
