package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dbarros/portfolio-backend/models"
)

func TestCategorySlugDerivedFromName(t *testing.T) {
	db := newTestDatabase(t)

	category := seedCategory(t, db, "Web Applications")
	assert.Equal(t, "web-applications", category.Slug)

	found, err := db.ProjectCategoryRepo().FindBySlug("web-applications")
	require.NoError(t, err)
	assert.Equal(t, category.ID, found.ID)
}

func TestFindAllWithCountsOnlyCountsPublished(t *testing.T) {
	db := newTestDatabase(t)
	profile := seedProfile(t, db)
	web := seedCategory(t, db, "Web")
	cli := seedCategory(t, db, "CLI")

	seedProject(t, db, profile.ID, func(p *models.Project) {
		p.Title = "Site"
		p.CategoryID = &web.ID
	})
	seedProject(t, db, profile.ID, func(p *models.Project) {
		p.Title = "Hidden Site"
		p.CategoryID = &web.ID
		p.IsPublished = false
	})

	counts, err := db.ProjectCategoryRepo().FindAllWithCounts()
	require.NoError(t, err)
	require.Len(t, counts, 2)

	byName := make(map[string]int64, len(counts))
	for _, c := range counts {
		byName[c.Name] = c.ProjectCount
	}
	assert.Equal(t, int64(1), byName[web.Name])
	assert.Equal(t, int64(0), byName[cli.Name])
}

func TestCategoryDeleteDetachesProjects(t *testing.T) {
	db := newTestDatabase(t)
	profile := seedProfile(t, db)
	web := seedCategory(t, db, "Web")

	project := seedProject(t, db, profile.ID, func(p *models.Project) {
		p.CategoryID = &web.ID
	})

	require.NoError(t, db.ProjectCategoryRepo().Delete(web.ID))

	found, err := db.ProjectRepo().FindPublishedBySlug(project.Slug)
	require.NoError(t, err)
	assert.Nil(t, found.CategoryID)
}
