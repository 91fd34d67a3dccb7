package database

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/dbarros/portfolio-backend/models"
)

func TestProjectSlugDerivedOnceAtCreate(t *testing.T) {
	db := newTestDatabase(t)
	profile := seedProfile(t, db)

	project := seedProject(t, db, profile.ID, func(p *models.Project) {
		p.Title = "My Great App"
	})
	assert.Equal(t, "my-great-app", project.Slug)

	project.Title = "Renamed App"
	require.NoError(t, db.ProjectRepo().Update(project))

	found, err := db.ProjectRepo().FindPublishedBySlug("my-great-app")
	require.NoError(t, err)
	assert.Equal(t, "Renamed App", found.Title)
}

func TestFindPublishedHidesUnpublished(t *testing.T) {
	db := newTestDatabase(t)
	profile := seedProfile(t, db)

	seedProject(t, db, profile.ID, func(p *models.Project) {
		p.Title = "Visible"
	})
	hidden := seedProject(t, db, profile.ID, func(p *models.Project) {
		p.Title = "Hidden"
		p.IsPublished = false
	})

	projects, pagination, err := db.ProjectRepo().FindPublished(ProjectFilter{})
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "Visible", projects[0].Title)
	assert.Equal(t, int64(1), pagination.TotalCount)

	_, err = db.ProjectRepo().FindPublishedBySlug(hidden.Slug)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestFindPublishedFilters(t *testing.T) {
	db := newTestDatabase(t)
	profile := seedProfile(t, db)
	web := seedCategory(t, db, "Web Apps")

	seedProject(t, db, profile.ID, func(p *models.Project) {
		p.Title = "Shop Backend"
		p.CategoryID = &web.ID
		p.Tags = models.TagList{"go", "postgres"}
		p.Status = models.ProjectCompleted
	})
	seedProject(t, db, profile.ID, func(p *models.Project) {
		p.Title = "CLI Tool"
		p.Tags = models.TagList{"go"}
		p.Status = models.ProjectInProgress
	})

	t.Run("by category slug", func(t *testing.T) {
		projects, _, err := db.ProjectRepo().FindPublished(ProjectFilter{CategorySlug: "web-apps"})
		require.NoError(t, err)
		require.Len(t, projects, 1)
		assert.Equal(t, "Shop Backend", projects[0].Title)
	})

	t.Run("by tag", func(t *testing.T) {
		projects, _, err := db.ProjectRepo().FindPublished(ProjectFilter{Tag: "postgres"})
		require.NoError(t, err)
		require.Len(t, projects, 1)
		assert.Equal(t, "Shop Backend", projects[0].Title)
	})

	t.Run("by status", func(t *testing.T) {
		projects, _, err := db.ProjectRepo().FindPublished(ProjectFilter{Status: "in_progress"})
		require.NoError(t, err)
		require.Len(t, projects, 1)
		assert.Equal(t, "CLI Tool", projects[0].Title)
	})

	t.Run("invalid status is ignored", func(t *testing.T) {
		projects, _, err := db.ProjectRepo().FindPublished(ProjectFilter{Status: "bogus"})
		require.NoError(t, err)
		assert.Len(t, projects, 2)
	})

	t.Run("search is case-insensitive", func(t *testing.T) {
		projects, _, err := db.ProjectRepo().FindPublished(ProjectFilter{Search: "SHOP"})
		require.NoError(t, err)
		require.Len(t, projects, 1)
		assert.Equal(t, "Shop Backend", projects[0].Title)
	})

	t.Run("unknown category matches nothing", func(t *testing.T) {
		projects, _, err := db.ProjectRepo().FindPublished(ProjectFilter{CategorySlug: "no-such"})
		require.NoError(t, err)
		assert.Empty(t, projects)
	})
}

func TestFindPublishedOrdering(t *testing.T) {
	db := newTestDatabase(t)
	profile := seedProfile(t, db)

	seedProject(t, db, profile.ID, func(p *models.Project) {
		p.Title = "Plain"
		p.Order = 1
	})
	seedProject(t, db, profile.ID, func(p *models.Project) {
		p.Title = "Featured Late"
		p.IsFeatured = true
		p.Order = 2
	})
	seedProject(t, db, profile.ID, func(p *models.Project) {
		p.Title = "Featured Early"
		p.IsFeatured = true
		p.Order = 1
	})

	projects, _, err := db.ProjectRepo().FindPublished(ProjectFilter{})
	require.NoError(t, err)
	require.Len(t, projects, 3)
	assert.Equal(t, "Featured Early", projects[0].Title)
	assert.Equal(t, "Featured Late", projects[1].Title)
	assert.Equal(t, "Plain", projects[2].Title)
}

func TestFindPublishedPaginationClamps(t *testing.T) {
	db := newTestDatabase(t)
	profile := seedProfile(t, db)

	for i := 0; i < ProjectPageSize+3; i++ {
		seedProject(t, db, profile.ID, func(p *models.Project) {
			p.Title = fmt.Sprintf("Project %02d", i)
		})
	}

	t.Run("first page is full", func(t *testing.T) {
		projects, pagination, err := db.ProjectRepo().FindPublished(ProjectFilter{Page: 1})
		require.NoError(t, err)
		assert.Len(t, projects, ProjectPageSize)
		assert.Equal(t, 2, pagination.TotalPages)
		assert.True(t, pagination.HasNext())
	})

	t.Run("page beyond the end clamps to the last page", func(t *testing.T) {
		projects, pagination, err := db.ProjectRepo().FindPublished(ProjectFilter{Page: 99})
		require.NoError(t, err)
		assert.Len(t, projects, 3)
		assert.Equal(t, 2, pagination.Page)
		assert.False(t, pagination.HasNext())
	})

	t.Run("page below one clamps to the first", func(t *testing.T) {
		_, pagination, err := db.ProjectRepo().FindPublished(ProjectFilter{Page: -4})
		require.NoError(t, err)
		assert.Equal(t, 1, pagination.Page)
	})
}

func TestFindRelated(t *testing.T) {
	db := newTestDatabase(t)
	profile := seedProfile(t, db)
	web := seedCategory(t, db, "Web")

	base := seedProject(t, db, profile.ID, func(p *models.Project) {
		p.Title = "Base"
		p.CategoryID = &web.ID
		p.Tags = models.TagList{"go"}
	})
	seedProject(t, db, profile.ID, func(p *models.Project) {
		p.Title = "Same Category"
		p.CategoryID = &web.ID
	})
	seedProject(t, db, profile.ID, func(p *models.Project) {
		p.Title = "Shared Tag"
		p.Tags = models.TagList{"go", "grpc"}
	})
	seedProject(t, db, profile.ID, func(p *models.Project) {
		p.Title = "Unrelated"
		p.Tags = models.TagList{"rust"}
	})

	related, err := db.ProjectRepo().FindRelated(base, 3)
	require.NoError(t, err)

	titles := make([]string, 0, len(related))
	for _, p := range related {
		titles = append(titles, p.Title)
	}
	assert.ElementsMatch(t, []string{"Same Category", "Shared Tag"}, titles)
}

func TestPublishedTags(t *testing.T) {
	db := newTestDatabase(t)
	profile := seedProfile(t, db)

	seedProject(t, db, profile.ID, func(p *models.Project) {
		p.Title = "One"
		p.Tags = models.TagList{"go", "docker"}
	})
	seedProject(t, db, profile.ID, func(p *models.Project) {
		p.Title = "Two"
		p.Tags = models.TagList{"docker", "api"}
	})
	seedProject(t, db, profile.ID, func(p *models.Project) {
		p.Title = "Hidden"
		p.Tags = models.TagList{"secret"}
		p.IsPublished = false
	})

	tags, err := db.ProjectRepo().PublishedTags()
	require.NoError(t, err)
	assert.Equal(t, []string{"api", "docker", "go"}, tags)
}

func TestCountsByStatus(t *testing.T) {
	db := newTestDatabase(t)
	profile := seedProfile(t, db)

	seedProject(t, db, profile.ID, func(p *models.Project) {
		p.Title = "Done"
		p.Status = models.ProjectCompleted
	})
	seedProject(t, db, profile.ID, func(p *models.Project) {
		p.Title = "Ongoing"
		p.Status = models.ProjectInProgress
	})
	seedProject(t, db, profile.ID, func(p *models.Project) {
		p.Title = "Open"
		p.Status = models.ProjectCompleted
		p.GithubURL = "https://github.com/example/open"
	})

	counts, err := db.ProjectRepo().CountsByStatus()
	require.NoError(t, err)
	assert.Equal(t, int64(3), counts.Total)
	assert.Equal(t, int64(2), counts.Completed)
	assert.Equal(t, int64(1), counts.InProgress)
	assert.Equal(t, int64(1), counts.OpenSource)
}

func TestDeleteProjectDetachesTestimonials(t *testing.T) {
	db := newTestDatabase(t)
	profile := seedProfile(t, db)
	project := seedProject(t, db, profile.ID, nil)

	testimonial := &models.Testimonial{
		ProfileID:   profile.ID,
		ClientName:  "A Client",
		ClientTitle: "CTO",
		Content:     "Great work.",
		Rating:      5,
		ProjectID:   &project.ID,
		IsPublished: true,
	}
	require.NoError(t, db.TestimonialRepo().Add(testimonial))

	require.NoError(t, db.ProjectRepo().Delete(project.ID))

	remaining, err := db.TestimonialRepo().FindPublished(profile.ID, 0)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Nil(t, remaining[0].ProjectID)
}
