// Package pages assembles per-page view models: pure functions from the
// entity store and request parameters to the exact set of data each logical
// page needs. Keeping assembly out of the HTTP layer makes it testable
// without a live request.
package pages

import (
	"errors"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/dbarros/portfolio-backend/database"
	"github.com/dbarros/portfolio-backend/models"
)

type Builder struct {
	db     database.Database
	logger zerolog.Logger
}

func NewBuilder(db database.Database) Builder {
	return Builder{
		db:     db,
		logger: log.With().Str("handlerName", "pageBuilder").Logger(),
	}
}

// SkillGroup is a display grouping of skills under a category label.
type SkillGroup struct {
	Category models.SkillCategory `json:"category"`
	Label    string               `json:"label"`
	Skills   []models.Skill       `json:"skills"`
}

// groupSkills buckets skills by category in category display order; empty
// categories are dropped.
func groupSkills(skills []models.Skill) []SkillGroup {
	byCategory := make(map[models.SkillCategory][]models.Skill, len(models.SkillCategories))
	for _, skill := range skills {
		byCategory[skill.Category] = append(byCategory[skill.Category], skill)
	}

	groups := make([]SkillGroup, 0, len(byCategory))
	for _, category := range models.SkillCategories {
		if bucket, ok := byCategory[category]; ok {
			groups = append(groups, SkillGroup{
				Category: category,
				Label:    category.Label(),
				Skills:   bucket,
			})
		}
	}
	return groups
}

// ownerOrNil returns the owner profile, or nil when none exists yet. Other
// lookup failures propagate.
func (b Builder) ownerOrNil() (*models.Profile, error) {
	profile, err := b.db.ProfileRepo().FindOwner()
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return profile, nil
}

// ErrorContext carries the data the custom 404/500 pages render with, when
// it can be gathered at all.
type ErrorContext struct {
	Profile  *models.Profile     `json:"profile,omitempty"`
	Settings models.SiteSettings `json:"settings"`
}

// BuildErrorContext gathers profile and settings for the error pages. It
// never fails: an error page must render even when the store is unhappy.
func (b Builder) BuildErrorContext() ErrorContext {
	var ctx ErrorContext
	profile, err := b.ownerOrNil()
	if err != nil {
		b.logger.Warn().Err(err).Msg("error page rendering without profile")
	} else {
		ctx.Profile = profile
	}

	settings, err := b.db.SiteSettingsRepo().Load()
	if err != nil {
		b.logger.Warn().Err(err).Msg("error page rendering without settings")
		ctx.Settings = models.SiteSettings{SiteName: "Portfolio"}
	} else {
		ctx.Settings = *settings
	}
	return ctx
}
