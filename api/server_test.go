package api

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpupo63/portfolio-site/auth"
	"github.com/rpupo63/portfolio-site/models"
	"github.com/rpupo63/portfolio-site/storage"
)

const testSecret = "test-secret"

type testEnv struct {
	db     *memoryDB
	bucket *mockBucket
	mailer *mockMailer
	tokens *auth.Tokens
	router http.Handler
}

func newTestEnv(t *testing.T, extra ...string) *testEnv {
	t.Helper()
	c := map[string]string{
		"JWT_SECRET":    testSecret,
		"COOKIE_SECURE": "false",
		"LOG_FORMAT":    "json",
		"NOTIFY_EMAIL":  "owner@example.com",
	}
	for i := 0; i+1 < len(extra); i += 2 {
		c[extra[i]] = extra[i+1]
	}

	env := &testEnv{
		db:     newMemoryDB(),
		bucket: newMockBucket(),
		mailer: &mockMailer{},
		tokens: auth.NewTokens(testSecret, time.Hour),
	}

	router, err := newRouter(Dependencies{
		Stores: env.db.stores(),
		Users:  userStore{env.db},
		Buckets: storage.Buckets{
			storage.CaseStudyImages: env.bucket,
			storage.ProfileImages:   env.bucket,
		},
		Mailer: env.mailer,
	}, withConfig(c))
	require.NoError(t, err)
	env.router = router
	return env
}

// addUser stores a user and returns a session token for it.
func (e *testEnv) addUser(t *testing.T, email, password string, roles ...string) string {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	user := &models.User{ID: uuid.New(), Email: email, PasswordHash: hash}
	e.db.users[user.ID] = user
	e.db.roles[user.ID] = roles

	token, _, err := e.tokens.Issue(user.ID, user.Email)
	require.NoError(t, err)
	return token
}

func (e *testEnv) addProject(title string, order int, visible bool) *models.Project {
	p := &models.Project{
		ID:           uuid.New(),
		Title:        title,
		Description:  title + " description",
		Tools:        []string{"SQL"},
		DisplayOrder: order,
		IsVisible:    visible,
		CreatedAt:    time.Now(),
	}
	e.db.projects[p.ID] = p
	return p
}

func (e *testEnv) serve(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func withToken(req *http.Request, token string) *http.Request {
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: token})
	return req
}

func formRequest(target string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(method, target, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestHomePage(t *testing.T) {
	env := newTestEnv(t)
	env.addProject("Sales Dashboard", 1, true)
	env.addProject("Secret Draft", 2, false)

	rec := env.serve(httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Your Name")
	assert.Contains(t, body, "Sales Dashboard")
	assert.NotContains(t, body, "Secret Draft")
	assert.Contains(t, body, "Case Study Coming Soon")
	assert.NotContains(t, body, `href="/admin"`)
}

func TestHomePage_ProjectLinks(t *testing.T) {
	env := newTestEnv(t)
	dashboardOnly := env.addProject("Churn Dashboard", 1, true)
	dashboard := "https://lookerstudio.google.com/reporting/churn"
	dashboardOnly.DashboardURL = &dashboard

	t.Run("missing link is hidden", func(t *testing.T) {
		body := env.serve(httptest.NewRequest(http.MethodGet, "/", nil)).Body.String()

		assert.Contains(t, body, `href="`+dashboard+`"`)
		assert.NotContains(t, body, `<span class="button button-outline disabled">GitHub</span>`)
		assert.NotContains(t, body, `<span class="button button-outline disabled">Dashboard</span>`)
	})

	t.Run("no links shows both disabled", func(t *testing.T) {
		dashboardOnly.DashboardURL = nil
		body := env.serve(httptest.NewRequest(http.MethodGet, "/", nil)).Body.String()

		assert.Equal(t, 1, strings.Count(body, `<span class="button button-outline disabled">GitHub</span>`))
		assert.Equal(t, 1, strings.Count(body, `<span class="button button-outline disabled">Dashboard</span>`))
	})
}

func TestHomePage_AdminLinkForAdmins(t *testing.T) {
	env := newTestEnv(t)
	token := env.addUser(t, "admin@example.com", "password123", models.RoleAdmin)

	rec := env.serve(withToken(httptest.NewRequest(http.MethodGet, "/", nil), token))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `href="/admin"`)
}

func TestCaseStudyPage(t *testing.T) {
	env := newTestEnv(t)
	project := env.addProject("Churn Analysis", 1, true)

	t.Run("placeholder content without a case study", func(t *testing.T) {
		rec := env.serve(httptest.NewRequest(http.MethodGet, "/case-study/"+project.ID.String(), nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Churn Analysis")
		assert.Contains(t, rec.Body.String(), "Business Recommendations")
	})

	t.Run("unknown project", func(t *testing.T) {
		rec := env.serve(httptest.NewRequest(http.MethodGet, "/case-study/"+uuid.NewString(), nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "Project not found")
	})

	t.Run("malformed id", func(t *testing.T) {
		rec := env.serve(httptest.NewRequest(http.MethodGet, "/case-study/not-a-uuid", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestNotFoundPage(t *testing.T) {
	env := newTestEnv(t)
	rec := env.serve(httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Page not found")
}

func TestSetLanguage(t *testing.T) {
	env := newTestEnv(t)
	project := env.addProject("Churn Analysis", 1, true)

	req := httptest.NewRequest(http.MethodGet, "/language/es", nil)
	req.Header.Set("Referer", "http://localhost:8080/case-study/"+project.ID.String())
	rec := env.serve(req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/case-study/"+project.ID.String(), rec.Header().Get("Location"))

	var language *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == "language" {
			language = c
		}
	}
	require.NotNil(t, language)
	assert.Equal(t, "es", language.Value)

	home := httptest.NewRequest(http.MethodGet, "/", nil)
	home.AddCookie(language)
	assert.Contains(t, env.serve(home).Body.String(), "Proyectos Destacados")
}

func TestAcceptLanguageSelectsSpanish(t *testing.T) {
	env := newTestEnv(t)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "es-MX,es;q=0.9,en;q=0.8")

	assert.Contains(t, env.serve(req).Body.String(), "Proyectos Destacados")
}

func TestLocalRedirect(t *testing.T) {
	tests := []struct {
		referer string
		want    string
	}{
		{"", "/"},
		{"http://localhost/case-study/1?x=2", "/case-study/1?x=2"},
		{"https://evil.example.com", "/"},
		{"//evil.example.com/path", "/"},
		{"/admin?tab=projects", "/admin?tab=projects"},
		{"https://attacker.example/%5Cevil.example", "/"},
		{`/\evil.example`, "/"},
		{"/%2F%2Fevil.example", "/"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, localRedirect(tt.referer), tt.referer)
	}
}

func TestAdminPage_RequiresAdmin(t *testing.T) {
	env := newTestEnv(t)
	visitor := env.addUser(t, "visitor@example.com", "password123")

	rec := env.serve(httptest.NewRequest(http.MethodGet, "/admin", nil))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/auth", rec.Header().Get("Location"))

	rec = env.serve(withToken(httptest.NewRequest(http.MethodGet, "/admin", nil), visitor))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	env.addUser(t, "admin@example.com", "password123", models.RoleAdmin)

	rec := env.serve(formRequest("/auth", url.Values{"email": {"admin@example.com"}, "password": {"wrong"}}))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid email or password")

	rec = env.serve(formRequest("/auth", url.Values{"email": {"admin@example.com"}, "password": {"password123"}}))
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin", rec.Header().Get("Location"))

	var session *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == sessionCookieName {
			session = c
		}
	}
	require.NotNil(t, session)
	assert.True(t, session.HttpOnly)

	admin := httptest.NewRequest(http.MethodGet, "/admin", nil)
	admin.AddCookie(session)
	assert.Equal(t, http.StatusOK, env.serve(admin).Code)
}

func TestAPILoginAndSession(t *testing.T) {
	env := newTestEnv(t)
	env.addUser(t, "admin@example.com", "password123", models.RoleAdmin)

	rec := env.serve(jsonRequest(t, http.MethodPost, "/api/auth/login", LoginRequest{Email: "admin@example.com", Password: "password123"}))
	require.Equal(t, http.StatusOK, rec.Code)

	var login LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &login))
	require.NotEmpty(t, login.Token)
	assert.True(t, login.Session.IsAdmin)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/session", nil)
	req.Header.Set("Authorization", "Bearer "+login.Token)
	rec = env.serve(req)

	var session SessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &session))
	assert.True(t, session.Authenticated)
	assert.Equal(t, "admin@example.com", session.Session.Email)
}

func TestAdminPage_SaveProject(t *testing.T) {
	env := newTestEnv(t)
	token := env.addUser(t, "admin@example.com", "password123", models.RoleAdmin)

	t.Run("rejected draft is shown again", func(t *testing.T) {
		rec := env.serve(withToken(formRequest("/admin/projects", url.Values{
			"title":       {""},
			"description": {"Kept description"},
		}), token))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "Kept description")
		assert.Contains(t, rec.Body.String(), "Could not save")
		assert.Empty(t, env.db.projects)
	})

	t.Run("created project flashes and redirects", func(t *testing.T) {
		rec := env.serve(withToken(formRequest("/admin/projects", url.Values{
			"title":         {"Revenue Report"},
			"description":   {"Quarterly revenue"},
			"tools":         {"SQL, Looker Studio"},
			"display_order": {"3"},
			"is_visible":    {"on"},
		}), token))

		require.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/admin?tab=projects", rec.Header().Get("Location"))
		require.Len(t, env.db.projects, 1)
		for _, p := range env.db.projects {
			assert.Equal(t, []string{"SQL", "Looker Studio"}, []string(p.Tools))
			assert.Equal(t, 3, p.DisplayOrder)
			assert.True(t, p.IsVisible)
		}

		next := withToken(httptest.NewRequest(http.MethodGet, "/admin?tab=projects", nil), token)
		for _, c := range rec.Result().Cookies() {
			next.AddCookie(c)
		}
		page := env.serve(next)
		assert.Contains(t, page.Body.String(), "Created")
		assert.Contains(t, page.Body.String(), "Revenue Report")
	})
}

func TestAdminPage_DeleteNeedsConfirmation(t *testing.T) {
	env := newTestEnv(t)
	token := env.addUser(t, "admin@example.com", "password123", models.RoleAdmin)
	project := env.addProject("Old Project", 1, true)
	path := "/admin/projects/" + project.ID.String() + "/delete"

	rec := env.serve(withToken(formRequest(path, url.Values{}), token))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, path, rec.Header().Get("Location"))
	assert.Len(t, env.db.projects, 1)

	rec = env.serve(withToken(httptest.NewRequest(http.MethodGet, path, nil), token))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Old Project")

	rec = env.serve(withToken(formRequest(path, url.Values{"confirm": {"true"}}), token))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin?tab=projects", rec.Header().Get("Location"))
	assert.Empty(t, env.db.projects)
}

func TestAdminPage_ToggleMessageRead(t *testing.T) {
	env := newTestEnv(t)
	token := env.addUser(t, "admin@example.com", "password123", models.RoleAdmin)
	message := &models.ContactMessage{ID: uuid.New(), Name: "Ana", Email: "ana@example.com", Message: "Hi"}
	env.db.messages[message.ID] = message

	rec := env.serve(withToken(formRequest("/admin/messages/"+message.ID.String()+"/toggle-read", url.Values{}), token))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.True(t, env.db.messages[message.ID].IsRead)
}

func TestAdminPage_SettingsWithProfileUpload(t *testing.T) {
	env := newTestEnv(t)
	token := env.addUser(t, "admin@example.com", "password123", models.RoleAdmin)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("name", "Jordan Lee"))
	require.NoError(t, mw.WriteField("profile_image_url", "https://old.example.com/me.png"))
	part, err := mw.CreateFormFile("profile_image_file", "Me.PNG")
	require.NoError(t, err)
	_, err = part.Write([]byte("image-bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/admin/settings", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := env.serve(withToken(req, token))

	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.NotNil(t, env.db.settings)
	assert.Equal(t, "Jordan Lee", env.db.settings.Name)
	photo := models.StringOrEmpty(env.db.settings.ProfileImageURL)
	assert.True(t, strings.HasPrefix(photo, "https://cdn.example.com/profile-"), photo)
	assert.True(t, strings.HasSuffix(photo, ".png"), photo)
}

type formFile struct {
	name    string
	content string
}

func multipartRequest(t *testing.T, target string, values url.Values, field string, files ...formFile) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for key, vs := range values {
		for _, v := range vs {
			require.NoError(t, mw.WriteField(key, v))
		}
	}
	for _, f := range files {
		part, err := mw.CreateFormFile(field, f.name)
		require.NoError(t, err)
		_, err = part.Write([]byte(f.content))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, target, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestAdminPage_SaveCaseStudyWithImages(t *testing.T) {
	env := newTestEnv(t)
	token := env.addUser(t, "admin@example.com", "password123", models.RoleAdmin)
	project := env.addProject("Inventory Analysis", 1, true)
	env.bucket.failOn = "broken"

	rec := env.serve(withToken(multipartRequest(t, "/admin/case-studies", url.Values{
		"project_id":   {project.ID.String()},
		"overview":     {"Stock levels by region"},
		"images":       {"https://cdn.example.com/existing.png", "https://cdn.example.com/stale.png"},
		"remove_image": {"https://cdn.example.com/stale.png"},
	}, "image_files",
		formFile{"a.png", "ok1"},
		formFile{"b.png", "broken"},
		formFile{"c.png", "ok3"},
	), token))

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin?tab=case-studies", rec.Header().Get("Location"))
	require.Len(t, env.db.caseStudies, 1)
	for _, cs := range env.db.caseStudies {
		images := []string(cs.Images)
		require.Len(t, images, 3)
		assert.Equal(t, "https://cdn.example.com/existing.png", images[0])
		for _, u := range images[1:] {
			assert.True(t, strings.HasPrefix(u, "https://cdn.example.com/case-study-"), u)
		}
		assert.NotContains(t, images, "https://cdn.example.com/stale.png")
	}
	assert.Len(t, env.bucket.uploaded, 2)

	next := withToken(httptest.NewRequest(http.MethodGet, "/admin?tab=case-studies", nil), token)
	for _, c := range rec.Result().Cookies() {
		next.AddCookie(c)
	}
	page := env.serve(next).Body.String()
	assert.Equal(t, 1, strings.Count(page, "Could not upload b.png"))
	assert.Contains(t, page, "Created")
}

func TestAdminPage_RejectedCaseStudyKeepsDraft(t *testing.T) {
	env := newTestEnv(t)
	token := env.addUser(t, "admin@example.com", "password123", models.RoleAdmin)
	env.addProject("Inventory Analysis", 1, true)

	rec := env.serve(withToken(multipartRequest(t, "/admin/case-studies", url.Values{
		"project_id": {uuid.NewString()},
		"overview":   {"Kept overview"},
	}, "image_files", formFile{"a.png", "ok1"}), token))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Kept overview")
	assert.Contains(t, body, "Could not save")
	assert.Contains(t, body, "Remember to save your changes")
	assert.Contains(t, body, `name="images" value="https://cdn.example.com/case-study-`)
	assert.Empty(t, env.db.caseStudies)
}

func TestAdminAPI_Authorization(t *testing.T) {
	env := newTestEnv(t)
	visitor := env.addUser(t, "visitor@example.com", "password123")
	admin := env.addUser(t, "admin@example.com", "password123", models.RoleAdmin)

	assert.Equal(t, http.StatusUnauthorized, env.serve(httptest.NewRequest(http.MethodGet, "/api/admin/projects", nil)).Code)
	assert.Equal(t, http.StatusForbidden, env.serve(withToken(httptest.NewRequest(http.MethodGet, "/api/admin/projects", nil), visitor)).Code)
	assert.Equal(t, http.StatusOK, env.serve(withToken(httptest.NewRequest(http.MethodGet, "/api/admin/projects", nil), admin)).Code)
}

func TestAdminAPI_ProjectLifecycle(t *testing.T) {
	env := newTestEnv(t)
	token := env.addUser(t, "admin@example.com", "password123", models.RoleAdmin)

	rec := env.serve(withToken(jsonRequest(t, http.MethodPost, "/api/admin/projects", map[string]any{
		"title":       "Inventory Model",
		"description": "Stock levels",
		"tools":       []string{"SQL"},
		"is_visible":  true,
	}), token))
	require.Equal(t, http.StatusCreated, rec.Code)

	var saved struct {
		Created bool           `json:"created"`
		Data    models.Project `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &saved))
	assert.True(t, saved.Created)
	require.NotEqual(t, uuid.Nil, saved.Data.ID)
	path := "/api/admin/projects/" + saved.Data.ID.String()

	rec = env.serve(withToken(jsonRequest(t, http.MethodPut, path, map[string]any{
		"title":       "Inventory Model v2",
		"description": "Stock levels",
	}), token))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Inventory Model v2", env.db.projects[saved.Data.ID].Title)

	rec = env.serve(withToken(httptest.NewRequest(http.MethodDelete, path, nil), token))
	assert.Equal(t, http.StatusPreconditionRequired, rec.Code)
	assert.Len(t, env.db.projects, 1)

	rec = env.serve(withToken(httptest.NewRequest(http.MethodDelete, path+"?confirm=true", nil), token))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, env.db.projects)
}

func TestAdminAPI_CaseStudyOnePerProject(t *testing.T) {
	env := newTestEnv(t)
	token := env.addUser(t, "admin@example.com", "password123", models.RoleAdmin)
	project := env.addProject("Churn Analysis", 1, true)
	other := env.addProject("Sales Dashboard", 2, true)

	rec := env.serve(withToken(jsonRequest(t, http.MethodPost, "/api/admin/case-studies", map[string]any{
		"project_id": project.ID,
		"overview":   "Why customers leave",
	}), token))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.serve(withToken(jsonRequest(t, http.MethodPost, "/api/admin/case-studies", map[string]any{
		"project_id": project.ID,
	}), token))
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = env.serve(withToken(httptest.NewRequest(http.MethodGet, "/api/admin/case-studies/available-projects", nil), token))
	require.Equal(t, http.StatusOK, rec.Code)
	var available AdminProjectCollection
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &available))
	require.Len(t, available.Projects, 1)
	assert.Equal(t, other.ID, available.Projects[0].ID)
}

func TestAdminAPI_UploadReportsPartialFailure(t *testing.T) {
	env := newTestEnv(t)
	token := env.addUser(t, "admin@example.com", "password123", models.RoleAdmin)
	env.bucket.failOn = "broken"

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for name, content := range map[string]string{"a.jpg": "fine", "b.jpg": "broken"} {
		part, err := mw.CreateFormFile("files", name)
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/admin/uploads/case-study-images", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := env.serve(withToken(req, token))
	require.Equal(t, http.StatusOK, rec.Code)

	var response UploadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	require.Len(t, response.URLs, 1)
	assert.True(t, strings.HasPrefix(response.URLs[0], "https://cdn.example.com/case-study-"))
	require.Len(t, response.Failures, 1)
	assert.Equal(t, "b.jpg", response.Failures[0].FileName)
}

func TestAdminAPI_UploadUnknownBucket(t *testing.T) {
	env := newTestEnv(t)
	token := env.addUser(t, "admin@example.com", "password123", models.RoleAdmin)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/uploads/videos", nil)
	rec := env.serve(withToken(req, token))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestContentAPI(t *testing.T) {
	env := newTestEnv(t)
	visible := env.addProject("Sales Dashboard", 1, true)
	env.addProject("Hidden", 2, false)

	rec := env.serve(httptest.NewRequest(http.MethodGet, "/api/projects", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var projects ProjectCollection
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &projects))
	require.Equal(t, 1, projects.Total)
	assert.Equal(t, visible.ID, projects.Projects[0].ID)

	rec = env.serve(httptest.NewRequest(http.MethodGet, "/api/projects/"+uuid.NewString()+"/case-study", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.serve(httptest.NewRequest(http.MethodGet, "/api/projects/"+visible.ID.String()+"/case-study", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"synthesized":true`)

	rec = env.serve(httptest.NewRequest(http.MethodGet, "/api/unknown", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
}

func TestContactSubmission(t *testing.T) {
	env := newTestEnv(t)

	rec := env.serve(jsonRequest(t, http.MethodPost, "/api/contact", ContactRequest{Name: "Ana", Email: "not-an-email", Message: "Hi"}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, env.db.messages)

	rec = env.serve(jsonRequest(t, http.MethodPost, "/api/contact", ContactRequest{Name: "Ana", Email: "ana@example.com", Message: "Hi"}))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Len(t, env.db.messages, 1)
	assert.Len(t, env.mailer.sent, 1)
}

func TestContactForm(t *testing.T) {
	env := newTestEnv(t)

	rec := env.serve(formRequest("/contact", url.Values{
		"name":    {"Ana"},
		"email":   {"ana@example.com"},
		"message": {"Loved the dashboard"},
	}))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/#contact", rec.Header().Get("Location"))
	assert.Len(t, env.db.messages, 1)

	next := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		next.AddCookie(c)
	}
	assert.Contains(t, env.serve(next).Body.String(), "Your message was sent")
}

func TestCSRFProtection(t *testing.T) {
	env := newTestEnv(t, "CSRF_KEY", "0123456789abcdef0123456789abcdef")
	token := env.addUser(t, "admin@example.com", "password123", models.RoleAdmin)

	rec := env.serve(withToken(formRequest("/admin/projects", url.Values{
		"title":       {"Forged"},
		"description": {"Should not be saved"},
	}), token))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Empty(t, env.db.projects)

	page := env.serve(withToken(httptest.NewRequest(http.MethodGet, "/admin?tab=projects&new=1", nil), token))
	require.Equal(t, http.StatusOK, page.Code)
	assert.Contains(t, page.Body.String(), `name="csrf_token"`)
}

func TestMissingJWTSecret(t *testing.T) {
	_, err := newRouter(Dependencies{Stores: newMemoryDB().stores()}, withConfig(map[string]string{}))
	assert.Error(t, err)
}
