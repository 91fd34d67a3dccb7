package pages

import (
	"errors"

	"gorm.io/gorm"

	"github.com/dbarros/portfolio-backend/errs"
	"github.com/dbarros/portfolio-backend/models"
)

// Home page limits.
const (
	homeFeaturedProjects = 2
	homeStatistics       = 4
	homeExpertiseAreas   = 3
	homeTestimonials     = 3
)

// HomePage is everything the landing page renders.
type HomePage struct {
	Profile          models.Profile         `json:"profile"`
	FeaturedProjects []models.Project       `json:"featured_projects"`
	SkillGroups      []SkillGroup           `json:"skill_groups"`
	Statistics       []models.Statistic     `json:"statistics"`
	SocialLinks      []models.SocialLink    `json:"social_links"`
	ExpertiseAreas   []models.ExpertiseArea `json:"expertise_areas"`
	Testimonials     []models.Testimonial   `json:"testimonials"`
	Settings         models.SiteSettings    `json:"settings"`
}

// BuildHome gathers the landing page data. When no profile exists at all a
// placeholder owner is created so a fresh install renders something instead
// of an error; this bootstrap is intentional.
func (b Builder) BuildHome() (*HomePage, error) {
	profile, err := b.db.ProfileRepo().FindOwner()
	if errors.Is(err, gorm.ErrRecordNotFound) {
		profile, err = b.bootstrapProfile()
	}
	if err != nil {
		return nil, errs.NewDatabaseError("find", "profile", err)
	}

	featured, err := b.db.ProjectRepo().FindFeatured(homeFeaturedProjects)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "featured projects", err)
	}

	skills, err := b.db.ProfileRepo().Skills(profile.ID, true)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "skills", err)
	}

	statistics, err := b.db.ProfileRepo().Statistics(profile.ID, homeStatistics)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "statistics", err)
	}

	socialLinks, err := b.db.ProfileRepo().SocialLinks(profile.ID, true)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "social links", err)
	}

	expertiseAreas, err := b.db.ProfileRepo().ExpertiseAreas(profile.ID, homeExpertiseAreas)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "expertise areas", err)
	}

	settings, err := b.db.SiteSettingsRepo().Load()
	if err != nil {
		return nil, errs.NewDatabaseError("load", "site settings", err)
	}

	var testimonials []models.Testimonial
	if settings.EnableTestimonials {
		testimonials, err = b.db.TestimonialRepo().FindPublished(profile.ID, homeTestimonials)
		if err != nil {
			return nil, errs.NewDatabaseError("find", "testimonials", err)
		}
	}

	return &HomePage{
		Profile:          *profile,
		FeaturedProjects: featured,
		SkillGroups:      groupSkills(skills),
		Statistics:       statistics,
		SocialLinks:      socialLinks,
		ExpertiseAreas:   expertiseAreas,
		Testimonials:     testimonials,
		Settings:         *settings,
	}, nil
}

// bootstrapProfile creates the placeholder owner for an empty store.
func (b Builder) bootstrapProfile() (*models.Profile, error) {
	b.logger.Info().Msg("no profile found, creating placeholder owner")
	profile := &models.Profile{
		FullName: "John Doe",
		Title:    "Backend Developer",
		Bio:      "Backend developer portfolio",
		Email:    "contact@example.com",
	}
	if err := b.db.ProfileRepo().Add(profile); err != nil {
		return nil, err
	}
	return profile, nil
}
