package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sfaram/vidgrid/internal/app"
	"github.com/sfaram/vidgrid/internal/catalog"
	"github.com/sfaram/vidgrid/internal/models"
	"github.com/sfaram/vidgrid/internal/prefs"
)

const (
	testCookie = "vidgrid_session"
	testUser   = "admin"
	testPass   = "hunter2"
)

// testServer bundles a router with the cookie captured from the first
// response, so a test drives one browser session across requests.
type testServer struct {
	t       *testing.T
	router  *gin.Engine
	store   catalog.Store
	cookies []*http.Cookie
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := catalog.NewMemoryStore()
	client := catalog.NewClient(store)
	preferences := prefs.NewStore(filepath.Join(t.TempDir(), "prefs.json"))

	factory := func() *app.App {
		a := app.New(app.Options{
			Catalog: client,
			Prefs:   preferences,
			Credentials: app.Credentials{
				Username: testUser,
				Password: testPass,
			},
		})
		a.Initialize(context.Background())
		return a
	}

	sessions := NewSessionManager(testCookie, time.Hour, factory)

	router := gin.New()
	router.SetHTMLTemplate(Templates())
	SetupPageRoutes(router, sessions)
	SetupActionRoutes(router, sessions)

	apiGroup := router.Group("/api")
	SetupHealthRoutes(apiGroup, client)
	SetupVideoRoutes(apiGroup, client, sessions)

	return &testServer{t: t, router: router, store: store}
}

func (s *testServer) do(method, target string, body string, contentType string) *httptest.ResponseRecorder {
	s.t.Helper()

	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for _, c := range s.cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	if set := w.Result().Cookies(); len(set) > 0 {
		s.cookies = set
	}
	return w
}

func (s *testServer) get(target string) *httptest.ResponseRecorder {
	return s.do(http.MethodGet, target, "", "")
}

func (s *testServer) postForm(target string, form string) *httptest.ResponseRecorder {
	return s.do(http.MethodPost, target, form, "application/x-www-form-urlencoded")
}

func (s *testServer) login(t *testing.T) {
	t.Helper()
	w := s.postForm("/login", "username="+testUser+"&password="+testPass)
	require.Equal(t, http.StatusSeeOther, w.Code)
	require.Equal(t, "/admin", w.Header().Get("Location"))
}

func (s *testServer) seed(t *testing.T, title string) string {
	t.Helper()
	id, err := s.store.Create(context.Background(), models.VideoDraft{
		Title:    title,
		Category: "Sci-Fi",
		URL:      "https://x/" + title,
	})
	require.NoError(t, err)
	return id
}

func TestHome_RendersCatalogGrid(t *testing.T) {
	srv := newTestServer(t)
	srv.seed(t, "Orbit")

	w := srv.get("/")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Orbit")
}

func TestHome_SetsSessionCookie(t *testing.T) {
	srv := newTestServer(t)

	srv.get("/")
	require.NotEmpty(t, srv.cookies)
	assert.Equal(t, testCookie, srv.cookies[0].Name)

	// The same cookie maps back to the same session on the next request.
	first := srv.cookies[0].Value
	srv.get("/")
	assert.Equal(t, first, srv.cookies[0].Value)
}

func TestWatch_KnownVideoRendersPlayer(t *testing.T) {
	srv := newTestServer(t)
	id := srv.seed(t, "Orbit")

	w := srv.get("/watch?videoId=" + id)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Orbit")
}

func TestWatch_UnknownVideoIs404(t *testing.T) {
	srv := newTestServer(t)
	srv.seed(t, "Orbit")

	w := srv.get("/watch?videoId=missing")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdmin_LoggedOutGetsPublicView(t *testing.T) {
	srv := newTestServer(t)
	srv.seed(t, "Orbit")

	w := srv.get("/admin")
	assert.Equal(t, http.StatusOK, w.Code)
	// The public grid renders, not the dashboard.
	assert.NotContains(t, w.Body.String(), "Admin Dashboard")
}

func TestLogin_WrongPasswordIs401WithMessage(t *testing.T) {
	srv := newTestServer(t)

	w := srv.postForm("/login", "username="+testUser+"&password=wrong")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid username or password.")
}

func TestLogin_ThenAdminDashboard(t *testing.T) {
	srv := newTestServer(t)
	srv.seed(t, "Orbit")
	srv.login(t)

	w := srv.get("/admin")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Admin Dashboard")
	assert.Contains(t, w.Body.String(), "Orbit")
}

func TestLogout_DropsAdminAccess(t *testing.T) {
	srv := newTestServer(t)
	srv.login(t)

	w := srv.postForm("/logout", "")
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	w = srv.get("/admin")
	assert.NotContains(t, w.Body.String(), "Admin Dashboard")
}

func TestAdminActions_LoggedOutRedirectToLogin(t *testing.T) {
	srv := newTestServer(t)

	for _, target := range []string{
		"/admin/videos",
		"/admin/videos/new",
		"/admin/videos/abc/edit",
		"/admin/videos/abc/delete",
		"/admin/videos/delete/confirm",
	} {
		w := srv.postForm(target, "")
		assert.Equal(t, http.StatusSeeOther, w.Code, target)
		assert.Equal(t, "/login", w.Header().Get("Location"), target)
	}
}

func TestSave_CreatesEntry(t *testing.T) {
	srv := newTestServer(t)
	srv.login(t)

	w := srv.postForm("/admin/videos",
		"title=New+Video&category=Drama&url=https%3A%2F%2Fx%2Fnew.mp4")
	require.Equal(t, http.StatusSeeOther, w.Code)

	w = srv.get("/admin")
	assert.Contains(t, w.Body.String(), "New Video")
}

func TestSave_ValidationErrorRerendersDashboard(t *testing.T) {
	srv := newTestServer(t)
	srv.login(t)

	w := srv.postForm("/admin/videos", "title=&category=&url=")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Please fill in all required fields")
}

func TestDeleteFlow_RequestConfirm(t *testing.T) {
	srv := newTestServer(t)
	id := srv.seed(t, "Doomed")
	srv.login(t)

	w := srv.postForm("/admin/videos/"+id+"/delete", "")
	require.Equal(t, http.StatusSeeOther, w.Code)

	// The confirmation prompt is showing and the entry still exists.
	w = srv.get("/admin")
	assert.Contains(t, w.Body.String(), "Doomed")

	w = srv.postForm("/admin/videos/delete/confirm", "")
	require.Equal(t, http.StatusSeeOther, w.Code)

	w = srv.get("/admin")
	assert.NotContains(t, w.Body.String(), "Doomed")
}

func TestDeleteFlow_CancelKeepsEntry(t *testing.T) {
	srv := newTestServer(t)
	id := srv.seed(t, "Spared")
	srv.login(t)

	srv.postForm("/admin/videos/"+id+"/delete", "")
	srv.postForm("/admin/videos/delete/cancel", "")

	w := srv.get("/admin")
	assert.Contains(t, w.Body.String(), "Spared")
}

func TestThemeToggle_FlipsBodyClass(t *testing.T) {
	srv := newTestServer(t)

	w := srv.get("/")
	assert.Contains(t, w.Body.String(), `class="light"`)

	w = srv.postForm("/theme/toggle", "")
	assert.Equal(t, http.StatusSeeOther, w.Code)

	w = srv.get("/")
	assert.Contains(t, w.Body.String(), `class="dark"`)
}

func TestAPIVideos_List(t *testing.T) {
	srv := newTestServer(t)
	id := srv.seed(t, "Orbit")

	w := srv.get("/api/videos")
	require.Equal(t, http.StatusOK, w.Code)

	var resp VideoListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, id, resp.Items[0].ID)
	assert.Equal(t, "Orbit", resp.Items[0].Title)
}

func TestAPIVideos_GetUnknownIs404(t *testing.T) {
	srv := newTestServer(t)

	w := srv.get("/api/videos/missing")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAPIVideos_MutationsRequireLogin(t *testing.T) {
	srv := newTestServer(t)

	body := `{"title":"t","category":"c","url":"https://x/v"}`
	w := srv.do(http.MethodPost, "/api/videos", body, "application/json")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = srv.do(http.MethodDelete, "/api/videos/abc", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAPIVideos_CreateUpdateDelete(t *testing.T) {
	srv := newTestServer(t)
	srv.login(t)

	w := srv.do(http.MethodPost, "/api/videos",
		`{"title":"t","category":"c","url":"https://x/v"}`, "application/json")
	require.Equal(t, http.StatusCreated, w.Code)

	var created CreateVideoResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)

	w = srv.do(http.MethodPut, "/api/videos/"+created.ID,
		`{"title":"renamed","category":"c","url":"https://x/v"}`, "application/json")
	assert.Equal(t, http.StatusOK, w.Code)

	w = srv.do(http.MethodDelete, "/api/videos/"+created.ID, "", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = srv.do(http.MethodDelete, "/api/videos/"+created.ID, "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAPIVideos_CreateValidation(t *testing.T) {
	srv := newTestServer(t)
	srv.login(t)

	w := srv.do(http.MethodPost, "/api/videos",
		`{"title":"","category":"","url":""}`, "application/json")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "validation_failed", resp.Error)
}

func TestHealth_ReportsStore(t *testing.T) {
	srv := newTestServer(t)

	w := srv.get("/api/health")
	require.Equal(t, http.StatusOK, w.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "healthy", resp.Store)
}

func TestHealth_UnconfiguredStoreIsDegraded(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	SetupHealthRoutes(router.Group("/api"), catalog.NewClient(nil))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "degraded", resp.Status)
	assert.Equal(t, "unreachable", resp.Store)
}

func TestSessionManager_ExpiresIdleSessions(t *testing.T) {
	sessions := NewSessionManager(testCookie, time.Minute, func() *app.App {
		return app.New(app.Options{})
	})

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", func(c *gin.Context) {
		sessions.App(c)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, 1, sessions.Count())

	sessions.expire(time.Now().Add(2 * time.Minute))
	assert.Equal(t, 0, sessions.Count())
}

func TestSessions_AreIsolated(t *testing.T) {
	srv := newTestServer(t)
	srv.login(t)

	// A second browser with no cookie is not logged in.
	other := httptest.NewRequest(http.MethodGet, "/admin", nil)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, other)
	assert.NotContains(t, w.Body.String(), "Admin Dashboard")

	// The first browser still is.
	w2 := srv.get("/admin")
	assert.Contains(t, w2.Body.String(), "Admin Dashboard")
}
