package pages

import (
	"github.com/dbarros/portfolio-backend/database"
	"github.com/dbarros/portfolio-backend/errs"
	"github.com/dbarros/portfolio-backend/models"
)

const relatedPosts = 3

// BlogListPage is everything the blog listing renders.
type BlogListPage struct {
	Profile    *models.Profile     `json:"profile,omitempty"`
	Posts      []models.BlogPost   `json:"posts"`
	Pagination database.Pagination `json:"pagination"`
	Categories []string            `json:"categories"`
	AllTags    []string            `json:"all_tags"`
	Filter     database.BlogFilter `json:"-"`
	Settings   models.SiteSettings `json:"settings"`
}

// loadBlogSettings loads settings and enforces the blog feature gate: with
// the blog disabled every blog page is NotFound regardless of stored posts.
func (b Builder) loadBlogSettings() (*models.SiteSettings, error) {
	settings, err := b.db.SiteSettingsRepo().Load()
	if err != nil {
		return nil, errs.NewDatabaseError("load", "site settings", err)
	}
	if !settings.EnableBlog {
		return nil, errs.NewNotFoundError("blog is not enabled")
	}
	return settings, nil
}

// BuildBlogList gathers one filtered page of published posts plus the
// distinct categories and tags across them.
func (b Builder) BuildBlogList(filter database.BlogFilter) (*BlogListPage, error) {
	settings, err := b.loadBlogSettings()
	if err != nil {
		return nil, err
	}

	posts, pagination, err := b.db.BlogPostRepo().FindPublished(filter)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "blog posts", err)
	}

	profile, err := b.ownerOrNil()
	if err != nil {
		return nil, errs.NewDatabaseError("find", "profile", err)
	}

	categories, err := b.db.BlogPostRepo().PublishedCategories()
	if err != nil {
		return nil, errs.NewDatabaseError("aggregate", "blog categories", err)
	}

	allTags, err := b.db.BlogPostRepo().PublishedTags()
	if err != nil {
		return nil, errs.NewDatabaseError("aggregate", "blog tags", err)
	}

	return &BlogListPage{
		Profile:    profile,
		Posts:      posts,
		Pagination: pagination,
		Categories: categories,
		AllTags:    allTags,
		Filter:     filter,
		Settings:   *settings,
	}, nil
}

// BlogDetailPage is everything the blog detail page renders.
type BlogDetailPage struct {
	Profile  *models.Profile     `json:"profile,omitempty"`
	Post     models.BlogPost     `json:"post"`
	Related  []models.BlogPost   `json:"related_posts"`
	Settings models.SiteSettings `json:"settings"`
}

// BuildBlogDetail gathers a published post by slug and bumps its view
// counter exactly once for this successful retrieval.
func (b Builder) BuildBlogDetail(slug string) (*BlogDetailPage, error) {
	settings, err := b.loadBlogSettings()
	if err != nil {
		return nil, err
	}

	post, err := b.db.BlogPostRepo().FindPublishedBySlug(slug)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "blog post", err)
	}

	if err := b.db.BlogPostRepo().IncrementViewCount(post.ID); err != nil {
		return nil, errs.NewDatabaseError("update", "blog post view count", err)
	}
	post.ViewCount++

	related, err := b.db.BlogPostRepo().FindRelated(post, relatedPosts)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "related blog posts", err)
	}

	profile, err := b.ownerOrNil()
	if err != nil {
		return nil, errs.NewDatabaseError("find", "profile", err)
	}

	return &BlogDetailPage{
		Profile:  profile,
		Post:     *post,
		Related:  related,
		Settings: *settings,
	}, nil
}
