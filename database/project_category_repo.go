package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dbarros/portfolio-backend/models"
)

type ProjectCategoryRepo struct {
	db *gorm.DB
}

func NewProjectCategoryRepo(db *gorm.DB) *ProjectCategoryRepo {
	return &ProjectCategoryRepo{db}
}

// CategoryWithCount pairs a category with its published-project count.
type CategoryWithCount struct {
	models.ProjectCategory
	ProjectCount int64 `json:"project_count"`
}

// FindAll returns all categories in display order.
func (r *ProjectCategoryRepo) FindAll() ([]models.ProjectCategory, error) {
	var categories []models.ProjectCategory
	err := r.db.Order(`"order" ASC, name ASC`).Find(&categories).Error
	return categories, err
}

// FindAllWithCounts returns all categories in display order, annotated with
// how many published projects each holds.
func (r *ProjectCategoryRepo) FindAllWithCounts() ([]CategoryWithCount, error) {
	categories, err := r.FindAll()
	if err != nil {
		return nil, err
	}

	annotated := make([]CategoryWithCount, 0, len(categories))
	for _, category := range categories {
		var count int64
		err := r.db.Model(&models.Project{}).
			Where("category_id = ? AND is_published = ?", category.ID, true).
			Count(&count).Error
		if err != nil {
			return nil, err
		}
		annotated = append(annotated, CategoryWithCount{ProjectCategory: category, ProjectCount: count})
	}
	return annotated, nil
}

// FindBySlug returns a category by its slug.
func (r *ProjectCategoryRepo) FindBySlug(slug string) (*models.ProjectCategory, error) {
	var category models.ProjectCategory
	err := r.db.Where("slug = ?", slug).First(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// Add inserts a new category into the database
func (r *ProjectCategoryRepo) Add(category *models.ProjectCategory) error {
	return r.db.Create(category).Error
}

// Update updates an existing category in the database
func (r *ProjectCategoryRepo) Update(category *models.ProjectCategory) error {
	return r.db.Save(category).Error
}

// Delete removes a category by id. Projects in the category are detached,
// not deleted.
func (r *ProjectCategoryRepo) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Project{}).
			Where("category_id = ?", id).
			UpdateColumn("category_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.ProjectCategory{Model: models.Model{ID: id}}).Error
	})
}
