package pages

import (
	"github.com/dbarros/portfolio-backend/errs"
	"github.com/dbarros/portfolio-backend/models"
)

// AboutPage is everything the about page renders.
type AboutPage struct {
	Profile        *models.Profile        `json:"profile,omitempty"`
	SkillGroups    []SkillGroup           `json:"skill_groups"`
	ExpertiseAreas []models.ExpertiseArea `json:"expertise_areas"`
	ProjectCount   int64                  `json:"project_count"`
	ClientCount    int64                  `json:"client_count"`
	Settings       models.SiteSettings    `json:"settings"`
}

// BuildAbout gathers the full skill set grouped by category, all expertise
// areas, and the published-project and distinct-client counts.
func (b Builder) BuildAbout() (*AboutPage, error) {
	settings, err := b.db.SiteSettingsRepo().Load()
	if err != nil {
		return nil, errs.NewDatabaseError("load", "site settings", err)
	}

	profile, err := b.ownerOrNil()
	if err != nil {
		return nil, errs.NewDatabaseError("find", "profile", err)
	}

	page := &AboutPage{Profile: profile, Settings: *settings}
	if profile == nil {
		return page, nil
	}

	skills, err := b.db.ProfileRepo().Skills(profile.ID, false)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "skills", err)
	}
	page.SkillGroups = groupSkills(skills)

	page.ExpertiseAreas, err = b.db.ProfileRepo().ExpertiseAreas(profile.ID, 0)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "expertise areas", err)
	}

	page.ProjectCount, err = b.db.ProjectRepo().CountPublished(profile.ID)
	if err != nil {
		return nil, errs.NewDatabaseError("count", "projects", err)
	}

	page.ClientCount, err = b.db.ProjectRepo().CountDistinctClients(profile.ID)
	if err != nil {
		return nil, errs.NewDatabaseError("count", "clients", err)
	}

	return page, nil
}
