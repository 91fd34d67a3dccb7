package database

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/dbarros/portfolio-backend/models"
)

// newTestDatabase opens an in-memory store with the full schema. The pool is
// pinned to one connection so concurrent test writers serialize instead of
// tripping over sqlite's single-writer lock.
func newTestDatabase(t *testing.T) Database {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, Migrate(db))
	return New(db)
}

func seedProfile(t *testing.T, db Database) *models.Profile {
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

func seedProject(t *testing.T, db Database, profileID uuid.UUID, mutate func(*models.Project)) *models.Project {
	t.Helper()

	project := &models.Project{
		ProfileID:        profileID,
		Title:            "Sample Project",
		ShortDescription: "A sample project.",
		Status:           models.ProjectCompleted,
		IsPublished:      true,
		TeamSize:         1,
	}
	if mutate != nil {
		mutate(project)
	}
	require.NoError(t, db.ProjectRepo().Add(project))
	return project
}

func seedBlogPost(t *testing.T, db Database, profileID uuid.UUID, mutate func(*models.BlogPost)) *models.BlogPost {
	t.Helper()

	publishedAt := time.Now().Add(-time.Hour)
	post := &models.BlogPost{
		ProfileID:   profileID,
		Title:       "Sample Post",
		Excerpt:     "An excerpt.",
		Content:     "Some content.",
		Status:      models.BlogPublished,
		PublishedAt: &publishedAt,
	}
	if mutate != nil {
		mutate(post)
	}
	require.NoError(t, db.BlogPostRepo().Add(post))
	return post
}

func seedCategory(t *testing.T, db Database, name string) *models.ProjectCategory {
	t.Helper()

	category := &models.ProjectCategory{Name: name}
	require.NoError(t, db.ProjectCategoryRepo().Add(category))
	return category
}
