package database

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dbarros/portfolio-backend/models"
)

type BlogPostRepo struct {
	db *gorm.DB
}

func NewBlogPostRepo(db *gorm.DB) *BlogPostRepo {
	return &BlogPostRepo{db}
}

// BlogFilter holds the independently composable listing filters. Zero values
// mean "no filter".
type BlogFilter struct {
	Category string
	Tag      string
	Search   string
	Page     int
}

// publishedQuery scopes to posts that are published and past their publish
// time; drafts and scheduled posts stay hidden.
func (r *BlogPostRepo) publishedQuery() *gorm.DB {
	return r.db.Model(&models.BlogPost{}).
		Where("status = ? AND published_at IS NOT NULL AND published_at <= ?",
			models.BlogPublished, time.Now())
}

// FindPublished returns one page of published posts matching the filter,
// most recently published first.
func (r *BlogPostRepo) FindPublished(filter BlogFilter) ([]models.BlogPost, Pagination, error) {
	q := r.publishedQuery()

	if filter.Category != "" {
		q = q.Where("LOWER(category) = ?", strings.ToLower(filter.Category))
	}
	if filter.Tag != "" {
		q = q.Where("LOWER(tags) LIKE ?", "%"+strings.ToLower(filter.Tag)+"%")
	}
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		q = q.Where(
			"LOWER(title) LIKE ? OR LOWER(excerpt) LIKE ? OR LOWER(content) LIKE ?",
			pattern, pattern, pattern,
		)
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, Pagination{}, err
	}
	page := clampPage(total, filter.Page, BlogPostPageSize)

	var posts []models.BlogPost
	err := q.Order("published_at DESC").
		Offset(page.Offset()).Limit(page.PageSize).
		Find(&posts).Error
	return posts, page, err
}

// FindPublishedBySlug returns a published post by slug. A miss (or a draft,
// scheduled or archived post) yields ErrRecordNotFound.
func (r *BlogPostRepo) FindPublishedBySlug(slug string) (*models.BlogPost, error) {
	var post models.BlogPost
	err := r.publishedQuery().Where("slug = ?", slug).First(&post).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// IncrementViewCount bumps the post's view counter by one atomically in the
// database, so concurrent detail views never lose updates.
func (r *BlogPostRepo) IncrementViewCount(id uuid.UUID) error {
	return r.db.Model(&models.BlogPost{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}

// FindRelated returns up to limit other published posts sharing the post's
// category or overlapping its tags.
func (r *BlogPostRepo) FindRelated(post *models.BlogPost, limit int) ([]models.BlogPost, error) {
	conds := make([]string, 0, len(post.Tags)+1)
	args := make([]any, 0, len(post.Tags)+1)
	if post.Category != "" {
		conds = append(conds, "LOWER(category) = ?")
		args = append(args, strings.ToLower(post.Category))
	}
	for _, tag := range post.Tags {
		conds = append(conds, "LOWER(tags) LIKE ?")
		args = append(args, "%"+strings.ToLower(tag)+"%")
	}
	if len(conds) == 0 {
		return nil, nil
	}

	var posts []models.BlogPost
	err := r.publishedQuery().
		Where("id <> ?", post.ID).
		Where(strings.Join(conds, " OR "), args...).
		Order("published_at DESC").Limit(limit).
		Find(&posts).Error
	return posts, err
}

// PublishedCategories returns the sorted distinct categories across
// published posts.
func (r *BlogPostRepo) PublishedCategories() ([]string, error) {
	var categories []string
	err := r.publishedQuery().
		Where("category <> ''").
		Distinct().
		Pluck("category", &categories).Error
	if err != nil {
		return nil, err
	}
	sort.Strings(categories)
	return categories, nil
}

// PublishedTags returns the sorted set of distinct tags across published
// posts.
func (r *BlogPostRepo) PublishedTags() ([]string, error) {
	var rows []models.BlogPost
	err := r.publishedQuery().Select("tags").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	lists := make([]models.TagList, len(rows))
	for i, row := range rows {
		lists[i] = row.Tags
	}
	return models.UnionTags(lists...), nil
}

// Add inserts a new blog post into the database
func (r *BlogPostRepo) Add(post *models.BlogPost) error {
	return r.db.Create(post).Error
}

// Update updates an existing blog post in the database
func (r *BlogPostRepo) Update(post *models.BlogPost) error {
	return r.db.Save(post).Error
}

// Delete removes a blog post from the database by id
func (r *BlogPostRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.BlogPost{Model: models.Model{ID: id}}).Error
}
