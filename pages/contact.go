package pages

import (
	"github.com/dbarros/portfolio-backend/errs"
	"github.com/dbarros/portfolio-backend/models"
)

// ContactPage is everything the contact page renders.
type ContactPage struct {
	Profile  *models.Profile     `json:"profile,omitempty"`
	Settings models.SiteSettings `json:"settings"`
}

// BuildContact gathers the contact page context.
func (b Builder) BuildContact() (*ContactPage, error) {
	profile, err := b.ownerOrNil()
	if err != nil {
		return nil, errs.NewDatabaseError("find", "profile", err)
	}

	settings, err := b.db.SiteSettingsRepo().Load()
	if err != nil {
		return nil, errs.NewDatabaseError("load", "site settings", err)
	}

	return &ContactPage{Profile: profile, Settings: *settings}, nil
}
