package database

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dbarros/portfolio-backend/models"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// ProjectFilter holds the independently composable listing filters. Zero
// values mean "no filter"; unrecognized values narrow results instead of
// erroring.
type ProjectFilter struct {
	CategorySlug string
	Tag          string
	Status       string
	Search       string
	Page         int
}

// projectListOrder is the fixed listing order: featured first, then explicit
// order, then newest created.
const projectListOrder = `is_featured DESC, "order" ASC, created_at DESC`

func (r *ProjectRepo) publishedQuery(filter ProjectFilter) *gorm.DB {
	q := r.db.Model(&models.Project{}).Where("is_published = ?", true)

	if filter.CategorySlug != "" {
		q = q.Where("category_id IN (?)",
			r.db.Model(&models.ProjectCategory{}).Select("id").Where("slug = ?", filter.CategorySlug))
	}
	if filter.Tag != "" {
		q = q.Where("LOWER(tags) LIKE ?", "%"+strings.ToLower(filter.Tag)+"%")
	}
	// An invalid status code is silently ignored, not an error.
	if filter.Status != "" && models.ProjectStatus(filter.Status).Valid() {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		q = q.Where(
			"LOWER(title) LIKE ? OR LOWER(short_description) LIKE ? OR LOWER(tags) LIKE ?",
			pattern, pattern, pattern,
		)
	}

	return q
}

// FindPublished returns one page of published projects matching the filter.
func (r *ProjectRepo) FindPublished(filter ProjectFilter) ([]models.Project, Pagination, error) {
	q := r.publishedQuery(filter)

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, Pagination{}, err
	}
	page := clampPage(total, filter.Page, ProjectPageSize)

	var projects []models.Project
	err := q.Preload("Category").Preload("Technologies", orderedByOrder).
		Order(projectListOrder).
		Offset(page.Offset()).Limit(page.PageSize).
		Find(&projects).Error
	return projects, page, err
}

// FindAllPublished returns every published project, optionally narrowed to
// one category, without pagination. Used by the read-only JSON API.
func (r *ProjectRepo) FindAllPublished(categorySlug string) ([]models.Project, error) {
	var projects []models.Project
	err := r.publishedQuery(ProjectFilter{CategorySlug: categorySlug}).
		Preload("Category").Preload("Technologies", orderedByOrder).
		Order(projectListOrder).
		Find(&projects).Error
	return projects, err
}

// FindPublishedBySlug returns a published project with all of its owned
// collections. A miss (or an unpublished project) yields ErrRecordNotFound.
func (r *ProjectRepo) FindPublishedBySlug(slug string) (*models.Project, error) {
	var project models.Project
	err := r.db.Where("is_published = ? AND slug = ?", true, slug).
		Preload("Category").
		Preload("Images", orderedByOrder).
		Preload("Technologies", orderedByOrder).
		Preload("Features", orderedByOrder).
		Preload("TechnicalDetails", orderedByOrder).
		Preload("Testimonials", "is_published = ?", true).
		First(&project).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// FindFeatured returns up to limit featured, published projects in listing order.
func (r *ProjectRepo) FindFeatured(limit int) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Where("is_published = ? AND is_featured = ?", true, true).
		Preload("Technologies", orderedByOrder).
		Order(projectListOrder).Limit(limit).
		Find(&projects).Error
	return projects, err
}

// FindRelated returns up to limit other published projects sharing the
// project's category or overlapping its tags.
func (r *ProjectRepo) FindRelated(project *models.Project, limit int) ([]models.Project, error) {
	conds := make([]string, 0, len(project.Tags)+1)
	args := make([]any, 0, len(project.Tags)+1)
	if project.CategoryID != nil {
		conds = append(conds, "category_id = ?")
		args = append(args, *project.CategoryID)
	}
	for _, tag := range project.Tags {
		conds = append(conds, "LOWER(tags) LIKE ?")
		args = append(args, "%"+strings.ToLower(tag)+"%")
	}
	if len(conds) == 0 {
		return nil, nil
	}

	var projects []models.Project
	err := r.db.Where("is_published = ? AND id <> ?", true, project.ID).
		Where(strings.Join(conds, " OR "), args...).
		Order(projectListOrder).Limit(limit).
		Find(&projects).Error
	return projects, err
}

// PublishedTags returns the sorted set of distinct tags across all published
// projects. The delimited storage form is parsed and unioned here.
func (r *ProjectRepo) PublishedTags() ([]string, error) {
	var rows []models.Project
	err := r.db.Select("tags").Where("is_published = ?", true).Find(&rows).Error
	if err != nil {
		return nil, err
	}
	lists := make([]models.TagList, len(rows))
	for i, row := range rows {
		lists[i] = row.Tags
	}
	return models.UnionTags(lists...), nil
}

// ProjectCounts summarizes published projects for the list sidebar.
type ProjectCounts struct {
	Total      int64 `json:"total"`
	Completed  int64 `json:"completed"`
	InProgress int64 `json:"in_progress"`
	OpenSource int64 `json:"open_source"`
}

// CountsByStatus computes the published-project summary counts.
func (r *ProjectRepo) CountsByStatus() (ProjectCounts, error) {
	var counts ProjectCounts
	published := func() *gorm.DB {
		return r.db.Model(&models.Project{}).Where("is_published = ?", true)
	}

	if err := published().Count(&counts.Total).Error; err != nil {
		return counts, err
	}
	if err := published().Where("status = ?", models.ProjectCompleted).Count(&counts.Completed).Error; err != nil {
		return counts, err
	}
	if err := published().Where("status = ?", models.ProjectInProgress).Count(&counts.InProgress).Error; err != nil {
		return counts, err
	}
	err := published().Where("github_url <> ''").Count(&counts.OpenSource).Error
	return counts, err
}

// CountPublished counts published projects owned by the profile.
func (r *ProjectRepo) CountPublished(profileID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Project{}).
		Where("profile_id = ? AND is_published = ?", profileID, true).
		Count(&count).Error
	return count, err
}

// CountDistinctClients counts distinct non-empty client names across the
// profile's published projects.
func (r *ProjectRepo) CountDistinctClients(profileID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Project{}).
		Where("profile_id = ? AND is_published = ? AND client <> ''", profileID, true).
		Distinct("client").
		Count(&count).Error
	return count, err
}

// Add inserts a new project into the database
func (r *ProjectRepo) Add(project *models.Project) error {
	return r.db.Create(project).Error
}

// Update updates an existing project in the database
func (r *ProjectRepo) Update(project *models.Project) error {
	return r.db.Save(project).Error
}

// Delete removes a project and its owned rows from the database by id.
// Testimonials referencing the project are detached, not deleted.
func (r *ProjectRepo) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Testimonial{}).
			Where("project_id = ?", id).
			UpdateColumn("project_id", nil).Error; err != nil {
			return err
		}
		return tx.Select(
			"Images", "Technologies", "Features", "TechnicalDetails",
		).Delete(&models.Project{Model: models.Model{ID: id}}).Error
	})
}

// orderedByOrder is a preload scope applying the explicit display order.
func orderedByOrder(db *gorm.DB) *gorm.DB {
	return db.Order(`"order" ASC`)
}
