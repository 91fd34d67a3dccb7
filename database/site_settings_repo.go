package database

import (
	"errors"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/dbarros/portfolio-backend/models"
)

type SiteSettingsRepo struct {
	db *gorm.DB
}

func NewSiteSettingsRepo(db *gorm.DB) *SiteSettingsRepo {
	return &SiteSettingsRepo{db}
}

// Load returns the settings singleton, creating the default record on first
// access. The insert is conflict-tolerant so concurrent first loads resolve
// to the same row.
func (r *SiteSettingsRepo) Load() (*models.SiteSettings, error) {
	var settings models.SiteSettings
	err := r.db.First(&settings, "id = ?", models.SiteSettingsID).Error
	if err == nil {
		return &settings, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	defaults := models.SiteSettings{
		Model:              models.Model{ID: models.SiteSettingsID},
		SiteName:           "Portfolio",
		EnableContactForm:  true,
		EnableTestimonials: true,
	}
	if err := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&defaults).Error; err != nil {
		return nil, err
	}

	err = r.db.First(&settings, "id = ?", models.SiteSettingsID).Error
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// Save persists the settings. The model hook pins the write to the singleton
// identity regardless of the ID on the value.
func (r *SiteSettingsRepo) Save(settings *models.SiteSettings) error {
	return r.db.Save(settings).Error
}

// Delete is accepted but has no effect: the singleton is never removable
// through normal means.
func (r *SiteSettingsRepo) Delete() error {
	log.Warn().Msg("ignoring attempt to delete the site settings singleton")
	return nil
}
