// Package api provides the HTTP presentation layer: server-rendered pages
// over per-session view-state containers, plus a JSON catalog API.
package api

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sfaram/vidgrid/internal/app"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Templates parses the embedded page templates.
func Templates() *template.Template {
	return template.Must(template.New("").ParseFS(templateFS, "templates/*.tmpl"))
}

// pageData is the payload every page template receives.
type pageData struct {
	Snapshot app.Snapshot
	Error    string
}

// PageHandler renders the home grid, watch page, admin dashboard, and login
// page from the session's container state.
type PageHandler struct {
	sessions *SessionManager
}

// NewPageHandler creates a page handler over the session manager.
func NewPageHandler(sessions *SessionManager) *PageHandler {
	return &PageHandler{sessions: sessions}
}

// session reconciles the session container with the request URL and returns
// it. Every page request goes through here, so back/forward navigation and
// deep links re-derive the view exactly like an address-bar change.
func (h *PageHandler) session(c *gin.Context) *app.App {
	a := h.sessions.App(c)
	a.SyncLocation(c.Request.URL)
	return a
}

// Home handles GET /
func (h *PageHandler) Home(c *gin.Context) {
	a := h.session(c)
	c.HTML(http.StatusOK, "home.tmpl", pageData{Snapshot: a.Snapshot()})
}

// Watch handles GET /watch?videoId=X. The template distinguishes loading,
// not-found, and playable states; loading wins until the catalog resolves.
func (h *PageHandler) Watch(c *gin.Context) {
	a := h.session(c)

	snap := a.Snapshot()
	status := http.StatusOK
	if snap.VideoNotFound() {
		status = http.StatusNotFound
	}
	c.HTML(status, "watch.tmpl", pageData{Snapshot: snap})
}

// Admin handles GET /admin. Logged-out visitors get the public catalog
// view, not the dashboard.
func (h *PageHandler) Admin(c *gin.Context) {
	a := h.session(c)

	snap := a.Snapshot()
	if !snap.LoggedIn {
		c.HTML(http.StatusOK, "home.tmpl", pageData{Snapshot: snap})
		return
	}
	c.HTML(http.StatusOK, "admin.tmpl", pageData{Snapshot: snap})
}

// Login handles GET /login
func (h *PageHandler) Login(c *gin.Context) {
	a := h.session(c)
	c.HTML(http.StatusOK, "login.tmpl", pageData{Snapshot: a.Snapshot()})
}

// SetupPageRoutes registers the page routes
func SetupPageRoutes(r *gin.Engine, sessions *SessionManager) {
	handler := NewPageHandler(sessions)
	r.GET("/", handler.Home)
	r.GET("/watch", handler.Watch)
	r.GET("/admin", handler.Admin)
	r.GET("/login", handler.Login)
}
