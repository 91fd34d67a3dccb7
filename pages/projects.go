package pages

import (
	"github.com/dbarros/portfolio-backend/database"
	"github.com/dbarros/portfolio-backend/errs"
	"github.com/dbarros/portfolio-backend/models"
)

const relatedProjects = 3

// ProjectListPage is everything the project listing renders.
type ProjectListPage struct {
	Profile    *models.Profile              `json:"profile,omitempty"`
	Projects   []models.Project             `json:"projects"`
	Pagination database.Pagination          `json:"pagination"`
	Categories []database.CategoryWithCount `json:"categories"`
	Counts     database.ProjectCounts       `json:"counts"`
	AllTags    []string                     `json:"all_tags"`
	Filter     database.ProjectFilter       `json:"-"`
	Settings   models.SiteSettings          `json:"settings"`
}

// BuildProjectList gathers one filtered page of projects plus the sidebar
// data: categories with counts, status counts, and the distinct tag set.
func (b Builder) BuildProjectList(filter database.ProjectFilter) (*ProjectListPage, error) {
	projects, pagination, err := b.db.ProjectRepo().FindPublished(filter)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "projects", err)
	}

	profile, err := b.ownerOrNil()
	if err != nil {
		return nil, errs.NewDatabaseError("find", "profile", err)
	}

	categories, err := b.db.ProjectCategoryRepo().FindAllWithCounts()
	if err != nil {
		return nil, errs.NewDatabaseError("find", "project categories", err)
	}

	counts, err := b.db.ProjectRepo().CountsByStatus()
	if err != nil {
		return nil, errs.NewDatabaseError("count", "projects", err)
	}

	allTags, err := b.db.ProjectRepo().PublishedTags()
	if err != nil {
		return nil, errs.NewDatabaseError("aggregate", "project tags", err)
	}

	settings, err := b.db.SiteSettingsRepo().Load()
	if err != nil {
		return nil, errs.NewDatabaseError("load", "site settings", err)
	}

	return &ProjectListPage{
		Profile:    profile,
		Projects:   projects,
		Pagination: pagination,
		Categories: categories,
		Counts:     counts,
		AllTags:    allTags,
		Filter:     filter,
		Settings:   *settings,
	}, nil
}

// ProjectDetailPage is everything the project detail page renders.
type ProjectDetailPage struct {
	Profile  *models.Profile     `json:"profile,omitempty"`
	Project  models.Project      `json:"project"`
	Related  []models.Project    `json:"related_projects"`
	Settings models.SiteSettings `json:"settings"`
}

// BuildProjectDetail gathers a published project with its owned collections
// and up to 3 related projects. A miss or unpublished project is NotFound.
func (b Builder) BuildProjectDetail(slug string) (*ProjectDetailPage, error) {
	project, err := b.db.ProjectRepo().FindPublishedBySlug(slug)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "project", err)
	}

	related, err := b.db.ProjectRepo().FindRelated(project, relatedProjects)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "related projects", err)
	}

	profile, err := b.ownerOrNil()
	if err != nil {
		return nil, errs.NewDatabaseError("find", "profile", err)
	}

	settings, err := b.db.SiteSettingsRepo().Load()
	if err != nil {
		return nil, errs.NewDatabaseError("load", "site settings", err)
	}

	return &ProjectDetailPage{
		Profile:  profile,
		Project:  *project,
		Related:  related,
		Settings: *settings,
	}, nil
}
