package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/dbarros/portfolio-backend/database"
	"github.com/dbarros/portfolio-backend/models"
)

type noopNotifier struct{}

func (noopNotifier) NotifyNewMessage(message *models.ContactMessage, recipient string) error {
	return nil
}

func newTestServer(t *testing.T) (*httptest.Server, database.Database) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	store := database.New(db)
	server := httptest.NewServer(newRouter(store, noopNotifier{}))
	t.Cleanup(server.Close)
	return server, store
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

// noRedirectClient keeps 3xx responses visible to assertions.
func noRedirectClient() *http.Client {
	return &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func TestBlogRoutesNotFoundWhenDisabled(t *testing.T) {
	server, db := newTestServer(t)
	seedOwner(t, db)

	resp, err := http.Get(server.URL + "/blog/")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	settings, err := db.SiteSettingsRepo().Load()
	require.NoError(t, err)
	settings.EnableBlog = true
	require.NoError(t, db.SiteSettingsRepo().Save(settings))

	resp, err = http.Get(server.URL + "/blog/")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAPIProjectDetailUnknownSlug(t *testing.T) {
	server, db := newTestServer(t)
	seedOwner(t, db)

	resp, err := http.Get(server.URL + "/api/projects/no-such-project/")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "application/json")

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "error", body["status"])
}

func TestAPIProfileProjection(t *testing.T) {
	server, db := newTestServer(t)
	profile := seedOwner(t, db)
	require.NoError(t, db.ProfileRepo().AddSkill(&models.Skill{
		ProfileID: profile.ID, Name: "Go", Category: models.SkillBackend, Proficiency: 90,
	}))

	resp, err := http.Get(server.URL + "/api/profile/")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Daniel Barros", body["full_name"])

	skills, ok := body["skills"].([]any)
	require.True(t, ok)
	require.Len(t, skills, 1)
	skill := skills[0].(map[string]any)
	assert.Equal(t, "Backend", skill["category"])
}

func TestAPIProjectsOnlyPublished(t *testing.T) {
	server, db := newTestServer(t)
	profile := seedOwner(t, db)

	require.NoError(t, db.ProjectRepo().Add(&models.Project{
		ProfileID: profile.ID, Title: "Visible", ShortDescription: "x",
		Status: models.ProjectCompleted, IsPublished: true,
	}))
	require.NoError(t, db.ProjectRepo().Add(&models.Project{
		ProfileID: profile.ID, Title: "Hidden", ShortDescription: "x",
		Status: models.ProjectCompleted, IsPublished: false,
	}))

	resp, err := http.Get(server.URL + "/api/projects/")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Projects []map[string]any `json:"projects"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Projects, 1)
	assert.Equal(t, "Visible", body.Projects[0]["title"])
	assert.Equal(t, "Completed", body.Projects[0]["status"])
}

func TestContactSubmitAJAX(t *testing.T) {
	server, db := newTestServer(t)
	seedOwner(t, db)

	form := url.Values{
		"name":    {"Jamie"},
		"email":   {"jamie@example.com"},
		"subject": {"Hi"},
		"message": {"Let's talk."},
	}
	req, err := http.NewRequest(http.MethodPost, server.URL+"/contact/submit/",
		strings.NewReader(form.Encode()))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("X-Requested-With", "XMLHttpRequest")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["success"])

	messages, err := db.ContactMessageRepo().FindAll("")
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "Jamie", messages[0].Name)
}

func TestContactSubmitAJAXValidationErrors(t *testing.T) {
	server, db := newTestServer(t)
	seedOwner(t, db)

	payload := `{"name":"Jamie","email":"not-an-email","message":""}`
	req, err := http.NewRequest(http.MethodPost, server.URL+"/contact/submit/",
		strings.NewReader(payload))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Requested-With", "XMLHttpRequest")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body struct {
		Success bool                `json:"success"`
		Errors  map[string][]string `json:"errors"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.False(t, body.Success)
	assert.Contains(t, body.Errors, "email")
	assert.Contains(t, body.Errors, "message")

	messages, err := db.ContactMessageRepo().FindAll("")
	require.NoError(t, err)
	assert.Empty(t, messages)
}

func TestContactSubmitBrowserRedirectsWithFlash(t *testing.T) {
	server, db := newTestServer(t)
	seedOwner(t, db)

	form := url.Values{
		"name":    {"Jamie"},
		"email":   {"jamie@example.com"},
		"message": {"Hello there."},
	}
	resp, err := noRedirectClient().PostForm(server.URL+"/contact/submit/", form)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/contact/", resp.Header.Get("Location"))

	var flash *http.Cookie
	for _, cookie := range resp.Cookies() {
		if cookie.Name == flashCookie {
			flash = cookie
		}
	}
	require.NotNil(t, flash)
	assert.Contains(t, flash.Value, "success")
}

func TestMaintenanceModeGatesSiteNotAPI(t *testing.T) {
	server, db := newTestServer(t)
	seedOwner(t, db)

	settings, err := db.SiteSettingsRepo().Load()
	require.NoError(t, err)
	settings.MaintenanceMode = true
	require.NoError(t, db.SiteSettingsRepo().Save(settings))

	resp, err := http.Get(server.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	resp, err = http.Get(server.URL + "/api/profile/")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestNotFoundRouting(t *testing.T) {
	server, db := newTestServer(t)
	seedOwner(t, db)

	resp, err := http.Get(server.URL + "/nope/")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")

	resp, err = http.Get(server.URL + "/api/nope/")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "application/json")
}
