package pages

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/dbarros/portfolio-backend/database"
	"github.com/dbarros/portfolio-backend/errs"
	"github.com/dbarros/portfolio-backend/models"
)

func newTestBuilder(t *testing.T) (Builder, database.Database) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	store := database.New(db)
	return NewBuilder(store), store
}

func seedOwner(t *testing.T, db database.Database) *models.Profile {
	t.Helper()

	profile := &models.Profile{
		FullName: "Daniel Barros",
		Title:    "Backend Developer",
		Bio:      "Builds backends.",
		Email:    "daniel@example.com",
	}
	require.NoError(t, db.ProfileRepo().Add(profile))
	return profile
}

func TestBuildHomeBootstrapsPlaceholderOwner(t *testing.T) {
	builder, db := newTestBuilder(t)

	page, err := builder.BuildHome()
	require.NoError(t, err)
	assert.Equal(t, "John Doe", page.Profile.FullName)

	owner, err := db.ProfileRepo().FindOwner()
	require.NoError(t, err)
	assert.Equal(t, page.Profile.ID, owner.ID)
}

func TestBuildHomeLimitsAndGates(t *testing.T) {
	builder, db := newTestBuilder(t)
	profile := seedOwner(t, db)

	for i := 0; i < 4; i++ {
		project := &models.Project{
			ProfileID:        profile.ID,
			Title:            string(rune('A'+i)) + " Featured",
			ShortDescription: "Featured project.",
			Status:           models.ProjectCompleted,
			IsPublished:      true,
			IsFeatured:       true,
		}
		require.NoError(t, db.ProjectRepo().Add(project))
	}
	require.NoError(t, db.TestimonialRepo().Add(&models.Testimonial{
		ProfileID:   profile.ID,
		ClientName:  "Client",
		ClientTitle: "CTO",
		Content:     "Great.",
		Rating:      5,
		IsPublished: true,
	}))

	page, err := builder.BuildHome()
	require.NoError(t, err)
	assert.Len(t, page.FeaturedProjects, 2)
	assert.Len(t, page.Testimonials, 1)

	settings, err := db.SiteSettingsRepo().Load()
	require.NoError(t, err)
	settings.EnableTestimonials = false
	require.NoError(t, db.SiteSettingsRepo().Save(settings))

	page, err = builder.BuildHome()
	require.NoError(t, err)
	assert.Empty(t, page.Testimonials)
}

func TestBuildBlogPagesGatedBySetting(t *testing.T) {
	builder, db := newTestBuilder(t)
	seedOwner(t, db)

	_, err := builder.BuildBlogList(database.BlogFilter{})
	assert.True(t, errs.IsNotFound(err))

	_, err = builder.BuildBlogDetail("anything")
	assert.True(t, errs.IsNotFound(err))

	settings, err := db.SiteSettingsRepo().Load()
	require.NoError(t, err)
	settings.EnableBlog = true
	require.NoError(t, db.SiteSettingsRepo().Save(settings))

	page, err := builder.BuildBlogList(database.BlogFilter{})
	require.NoError(t, err)
	assert.Empty(t, page.Posts)
}

func TestBuildBlogDetailBumpsViewCount(t *testing.T) {
	builder, db := newTestBuilder(t)
	profile := seedOwner(t, db)

	settings, err := db.SiteSettingsRepo().Load()
	require.NoError(t, err)
	settings.EnableBlog = true
	require.NoError(t, db.SiteSettingsRepo().Save(settings))

	publishedAt := time.Now().Add(-time.Hour)
	post := &models.BlogPost{
		ProfileID:   profile.ID,
		Title:       "A Post",
		Excerpt:     "Excerpt.",
		Content:     "Content.",
		Status:      models.BlogPublished,
		PublishedAt: &publishedAt,
	}
	require.NoError(t, db.BlogPostRepo().Add(post))

	page, err := builder.BuildBlogDetail(post.Slug)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Post.ViewCount)

	page, err = builder.BuildBlogDetail(post.Slug)
	require.NoError(t, err)
	assert.Equal(t, 2, page.Post.ViewCount)
}

func TestGroupSkillsFollowsCategoryOrder(t *testing.T) {
	skills := []models.Skill{
		{Name: "Docker", Category: models.SkillDevOps},
		{Name: "Go", Category: models.SkillBackend},
		{Name: "Postgres", Category: models.SkillDatabase},
	}

	groups := groupSkills(skills)
	require.Len(t, groups, 3)
	assert.Equal(t, "Backend", groups[0].Label)
	assert.Equal(t, "Database", groups[1].Label)
	assert.Equal(t, "DevOps", groups[2].Label)
}

func TestBuildAboutCounts(t *testing.T) {
	builder, db := newTestBuilder(t)
	profile := seedOwner(t, db)

	projects := []*models.Project{
		{Title: "One", Client: "Acme"},
		{Title: "Two", Client: "Acme"},
		{Title: "Three", Client: "Globex"},
		{Title: "Unpublished", Client: "Initech"},
	}
	for i, p := range projects {
		p.ProfileID = profile.ID
		p.ShortDescription = "x"
		p.Status = models.ProjectCompleted
		p.IsPublished = i != 3
		require.NoError(t, db.ProjectRepo().Add(p))
	}

	page, err := builder.BuildAbout()
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.ProjectCount)
	assert.Equal(t, int64(2), page.ClientCount)
}

func TestBuildProjectDetailUnknownSlugIsNotFound(t *testing.T) {
	builder, db := newTestBuilder(t)
	seedOwner(t, db)

	_, err := builder.BuildProjectDetail("no-such-project")
	assert.True(t, errs.IsNotFound(err))
}
