// Package app holds the view-state container: the single place that owns the
// in-memory catalog, the current navigation view, session and theme state,
// and the mutation flow against the catalog store.
//
// All mutations funnel through named operations so behavior is testable
// without a rendering environment. The container follows refetch-after-write:
// every successful mutation is followed by a full catalog reload, never a
// local patch, so the in-memory list always matches store ordering and the
// server-assigned fields.
package app

import (
	"context"
	"net/url"
	"sync"

	"github.com/sfaram/vidgrid/internal/catalog"
	"github.com/sfaram/vidgrid/internal/logger"
	"github.com/sfaram/vidgrid/internal/models"
	"github.com/sfaram/vidgrid/internal/nav"
	"github.com/sfaram/vidgrid/internal/prefs"
)

// Credentials is the compiled-in admin gate. It controls which views render
// and nothing else; it is not a security boundary.
type Credentials struct {
	Username string
	Password string
}

// Options configures a container.
type Options struct {
	Catalog     *catalog.Client
	History     nav.History
	Prefs       *prefs.Store
	Credentials Credentials
}

// App is the view-state container.
type App struct {
	mu sync.Mutex

	catalog *catalog.Client
	history nav.History
	prefs   *prefs.Store
	creds   Credentials
	urlsync nav.Synchronizer

	videos          []models.Video
	view            models.View
	loggedIn        bool
	theme           models.Theme
	loading         bool
	pendingDeleteID string
	editing         *models.VideoDraft
	loginError      string
}

// New creates a container. The catalog defaults to an unconfigured client
// and the history to a fresh in-memory stack when not provided.
func New(opts Options) *App {
	if opts.Catalog == nil {
		opts.Catalog = catalog.NewClient(nil)
	}
	if opts.History == nil {
		opts.History = nav.NewMemoryHistory(nil)
	}
	return &App{
		catalog: opts.Catalog,
		history: opts.History,
		prefs:   opts.Prefs,
		creds:   opts.Credentials,
		videos:  []models.Video{},
		view:    models.HomeView(),
		theme:   models.ThemeLight,
		// Loading until the first fetch resolves, so a deep-linked watch
		// page renders the loading state, not a premature "not found".
		loading: true,
	}
}

// Initialize loads the persisted theme, reconciles the view with the current
// location, and performs the initial catalog fetch.
func (a *App) Initialize(ctx context.Context) {
	if a.prefs != nil {
		theme, err := a.prefs.Theme()
		if err != nil {
			logger.Log.Warn().Err(err).Msg("Failed to load theme preference, using light")
		}
		a.mu.Lock()
		a.theme = theme
		a.mu.Unlock()
	}

	a.HandleLocationChange()
	a.RefetchCatalog(ctx)
}

// RefetchCatalog reloads the whole catalog from the store, replacing the
// in-memory list wholesale. The loading flag is cleared unconditionally, so
// a failed fetch leaves an empty catalog and never a stuck spinner.
func (a *App) RefetchCatalog(ctx context.Context) {
	a.mu.Lock()
	a.loading = true
	a.mu.Unlock()

	// Read failures are absorbed at the client boundary, so this always
	// yields a valid (possibly empty) catalog.
	videos := a.catalog.ListVideos(ctx)

	a.mu.Lock()
	a.videos = videos
	a.loading = false
	a.mu.Unlock()

	logger.Log.Debug().Int("count", len(videos)).Msg("Catalog refetched")
}

// Navigate transitions to the given page. videoID is honored only for the
// watch page. A history entry is pushed only when the resulting URL differs
// from the current one, so redundant navigation never grows the back stack.
func (a *App) Navigate(page models.Page, videoID string) {
	view := models.View{Page: page, VideoID: videoID}.Normalize()

	a.mu.Lock()
	defer a.mu.Unlock()

	pushed := a.urlsync.Apply(a.history, view)
	a.view = view

	logger.Log.Debug().
		Str("page", string(view.Page)).
		Str("video_id", view.VideoID).
		Bool("pushed", pushed).
		Msg("Navigated")
}

// HandleLocationChange re-derives the view from the current location. This
// is the back/forward path: a videoId in the URL forces the watch view
// regardless of the prior view; an absent videoId means home unless the
// current view is admin.
func (a *App) HandleLocationChange() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.view = a.urlsync.ViewFromURL(a.history.Current(), a.view)
}

// SyncLocation records a browser-supplied location as the current history
// entry and re-derives the view from it. This is how a server-rendered page
// request (including one reached via browser back/forward) reconciles the
// container with the address bar.
func (a *App) SyncLocation(u *url.URL) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.history.Replace(u)
	a.view = a.urlsync.ViewFromURL(a.history.Current(), a.view)
}

// Login compares against the fixed credentials. On match the session is
// authenticated and any previous login error is cleared; on mismatch a
// user-visible error is set and the session stays unauthenticated.
func (a *App) Login(username, password string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if username == a.creds.Username && password == a.creds.Password {
		a.loggedIn = true
		a.loginError = ""
		logger.Log.Info().Str("username", username).Msg("Admin logged in")
		return true
	}

	a.loginError = loginErrorMessage
	logger.Log.Warn().Str("username", username).Msg("Failed login attempt")
	return false
}

// Logout clears the session and navigates home so admin-only views do not
// remain reachable.
func (a *App) Logout() {
	a.mu.Lock()
	a.loggedIn = false
	a.editing = nil
	a.pendingDeleteID = ""
	a.mu.Unlock()

	a.Navigate(models.PageHome, "")
}

// BeginCreate opens the editing form with an empty draft.
func (a *App) BeginCreate() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.editing = &models.VideoDraft{}
}

// BeginEdit opens the editing form pre-filled from the catalog entry with
// the given id. Reports whether the entry exists.
func (a *App) BeginEdit(id string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	for i := range a.videos {
		if a.videos[i].ID == id {
			draft := models.DraftOf(a.videos[i])
			a.editing = &draft
			return true
		}
	}
	return false
}

// CloseForm discards the editing draft.
func (a *App) CloseForm() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.editing = nil
}

// RequestSave validates the draft and persists it: update when the draft
// carries an id, create otherwise. Validation failures return before any
// store call. On success the catalog is refetched and the form closes; on
// failure the form stays open so the admin can retry without re-entering
// data, and the error is returned for display.
func (a *App) RequestSave(ctx context.Context, draft models.VideoDraft) error {
	clean, err := ValidateDraft(draft)
	if err != nil {
		return err
	}

	if clean.ID != "" {
		err = a.catalog.UpdateVideo(ctx, clean.ID, clean)
	} else {
		_, err = a.catalog.CreateVideo(ctx, clean)
	}
	if err != nil {
		return err
	}

	a.RefetchCatalog(ctx)

	a.mu.Lock()
	a.editing = nil
	a.mu.Unlock()
	return nil
}

// RequestDelete records the id pending deletion. No store call happens until
// ConfirmDelete; this is the confirmation prompt half of the two-phase
// delete.
func (a *App) RequestDelete(id string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.pendingDeleteID = id
}

// ConfirmDelete performs the pending delete, exactly once, then refetches.
// The pending id is cleared whether or not the store call succeeds: the
// prompt is gone either way and a retry restarts the request/confirm pair.
func (a *App) ConfirmDelete(ctx context.Context) error {
	a.mu.Lock()
	id := a.pendingDeleteID
	a.pendingDeleteID = ""
	a.mu.Unlock()

	if id == "" {
		return nil
	}

	if err := a.catalog.DeleteVideo(ctx, id); err != nil {
		return err
	}

	a.RefetchCatalog(ctx)
	return nil
}

// CancelDelete clears the pending delete without side effects.
func (a *App) CancelDelete() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.pendingDeleteID = ""
}

// ToggleTheme flips the theme, persists the choice for the next session
// load, and returns the new value. A persistence failure keeps the in-memory
// flip; the preference is best-effort.
func (a *App) ToggleTheme() models.Theme {
	a.mu.Lock()
	a.theme = a.theme.Toggle()
	theme := a.theme
	a.mu.Unlock()

	if a.prefs != nil {
		if err := a.prefs.SetTheme(theme); err != nil {
			logger.Log.Warn().Err(err).Msg("Failed to persist theme preference")
		}
	}
	return theme
}
