package database

import (
	"gorm.io/gorm"

	"github.com/dbarros/portfolio-backend/models"
)

type Database struct {
	profileRepo        *ProfileRepo
	projectRepo        *ProjectRepo
	categoryRepo       *ProjectCategoryRepo
	blogPostRepo       *BlogPostRepo
	testimonialRepo    *TestimonialRepo
	contactMessageRepo *ContactMessageRepo
	siteSettingsRepo   *SiteSettingsRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		profileRepo:        NewProfileRepo(db),
		projectRepo:        NewProjectRepo(db),
		categoryRepo:       NewProjectCategoryRepo(db),
		blogPostRepo:       NewBlogPostRepo(db),
		testimonialRepo:    NewTestimonialRepo(db),
		contactMessageRepo: NewContactMessageRepo(db),
		siteSettingsRepo:   NewSiteSettingsRepo(db),
	}
}

// Migrate creates or updates the schema for every entity.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Profile{},
		&models.SocialLink{},
		&models.Skill{},
		&models.ExpertiseArea{},
		&models.Statistic{},
		&models.ProjectCategory{},
		&models.Project{},
		&models.ProjectImage{},
		&models.ProjectTechnology{},
		&models.ProjectFeature{},
		&models.TechnicalDetail{},
		&models.Testimonial{},
		&models.BlogPost{},
		&models.ContactMessage{},
		&models.SiteSettings{},
	)
}

// Accessor methods for each repository

func (d Database) ProfileRepo() *ProfileRepo {
	return d.profileRepo
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) ProjectCategoryRepo() *ProjectCategoryRepo {
	return d.categoryRepo
}

func (d Database) BlogPostRepo() *BlogPostRepo {
	return d.blogPostRepo
}

func (d Database) TestimonialRepo() *TestimonialRepo {
	return d.testimonialRepo
}

func (d Database) ContactMessageRepo() *ContactMessageRepo {
	return d.contactMessageRepo
}

func (d Database) SiteSettingsRepo() *SiteSettingsRepo {
	return d.siteSettingsRepo
}
