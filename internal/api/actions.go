package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sfaram/vidgrid/internal/app"
	"github.com/sfaram/vidgrid/internal/models"
)

// ActionHandler processes the form posts behind the rendered pages: login,
// logout, theme toggle, and the admin save/delete flows. Every action runs
// through the session's view-state container and redirects back into the
// page flow (or re-renders the page with the error, for failed saves).
type ActionHandler struct {
	sessions *SessionManager
}

// NewActionHandler creates an action handler over the session manager.
func NewActionHandler(sessions *SessionManager) *ActionHandler {
	return &ActionHandler{sessions: sessions}
}

// Login handles POST /login
func (h *ActionHandler) Login(c *gin.Context) {
	a := h.sessions.App(c)

	if a.Login(c.PostForm("username"), c.PostForm("password")) {
		c.Redirect(http.StatusSeeOther, "/admin")
		return
	}
	c.HTML(http.StatusUnauthorized, "login.tmpl", pageData{Snapshot: a.Snapshot()})
}

// Logout handles POST /logout
func (h *ActionHandler) Logout(c *gin.Context) {
	h.sessions.App(c).Logout()
	c.Redirect(http.StatusSeeOther, "/")
}

// ToggleTheme handles POST /theme/toggle and returns to the referring page.
func (h *ActionHandler) ToggleTheme(c *gin.Context) {
	h.sessions.App(c).ToggleTheme()
	c.Redirect(http.StatusSeeOther, backTo(c))
}

// admin returns the session container when the session is authenticated,
// redirecting to the login page otherwise.
func (h *ActionHandler) admin(c *gin.Context) (*app.App, bool) {
	a := h.sessions.App(c)
	if !a.Snapshot().LoggedIn {
		c.Redirect(http.StatusSeeOther, "/login")
		return nil, false
	}
	return a, true
}

// BeginCreate handles POST /admin/videos/new
func (h *ActionHandler) BeginCreate(c *gin.Context) {
	a, ok := h.admin(c)
	if !ok {
		return
	}
	a.BeginCreate()
	c.Redirect(http.StatusSeeOther, "/admin")
}

// BeginEdit handles POST /admin/videos/:id/edit
func (h *ActionHandler) BeginEdit(c *gin.Context) {
	a, ok := h.admin(c)
	if !ok {
		return
	}
	a.BeginEdit(c.Param("id"))
	c.Redirect(http.StatusSeeOther, "/admin")
}

// CloseForm handles POST /admin/videos/form/close
func (h *ActionHandler) CloseForm(c *gin.Context) {
	a, ok := h.admin(c)
	if !ok {
		return
	}
	a.CloseForm()
	c.Redirect(http.StatusSeeOther, "/admin")
}

// Save handles POST /admin/videos. A form with an id updates that entry,
// one without creates a new entry. On failure the dashboard re-renders with
// the message and the form still open so the admin can retry.
func (h *ActionHandler) Save(c *gin.Context) {
	a, ok := h.admin(c)
	if !ok {
		return
	}

	draft := models.VideoDraft{
		ID:        c.PostForm("id"),
		URL:       c.PostForm("url"),
		Title:     c.PostForm("title"),
		Category:  c.PostForm("category"),
		Thumbnail: c.PostForm("thumbnail"),
	}

	if err := a.RequestSave(c.Request.Context(), draft); err != nil {
		status := http.StatusBadGateway
		if app.IsValidation(err) {
			status = http.StatusBadRequest
		}
		c.HTML(status, "admin.tmpl", pageData{Snapshot: a.Snapshot(), Error: err.Error()})
		return
	}

	c.Redirect(http.StatusSeeOther, "/admin")
}

// RequestDelete handles POST /admin/videos/:id/delete
func (h *ActionHandler) RequestDelete(c *gin.Context) {
	a, ok := h.admin(c)
	if !ok {
		return
	}
	a.RequestDelete(c.Param("id"))
	c.Redirect(http.StatusSeeOther, "/admin")
}

// ConfirmDelete handles POST /admin/videos/delete/confirm
func (h *ActionHandler) ConfirmDelete(c *gin.Context) {
	a, ok := h.admin(c)
	if !ok {
		return
	}

	if err := a.ConfirmDelete(c.Request.Context()); err != nil {
		c.HTML(http.StatusBadGateway, "admin.tmpl", pageData{Snapshot: a.Snapshot(), Error: err.Error()})
		return
	}
	c.Redirect(http.StatusSeeOther, "/admin")
}

// CancelDelete handles POST /admin/videos/delete/cancel
func (h *ActionHandler) CancelDelete(c *gin.Context) {
	a, ok := h.admin(c)
	if !ok {
		return
	}
	a.CancelDelete()
	c.Redirect(http.StatusSeeOther, "/admin")
}

// backTo picks the redirect target for actions that return to the page the
// user was on.
func backTo(c *gin.Context) string {
	if ref := c.Request.Referer(); ref != "" {
		return ref
	}
	return "/"
}

// SetupActionRoutes registers the form action routes
func SetupActionRoutes(r *gin.Engine, sessions *SessionManager) {
	handler := NewActionHandler(sessions)
	r.POST("/login", handler.Login)
	r.POST("/logout", handler.Logout)
	r.POST("/theme/toggle", handler.ToggleTheme)

	admin := r.Group("/admin")
	admin.POST("/videos", handler.Save)
	admin.POST("/videos/new", handler.BeginCreate)
	admin.POST("/videos/:id/edit", handler.BeginEdit)
	admin.POST("/videos/:id/delete", handler.RequestDelete)
	admin.POST("/videos/form/close", handler.CloseForm)
	admin.POST("/videos/delete/confirm", handler.ConfirmDelete)
	admin.POST("/videos/delete/cancel", handler.CancelDelete)
}
