package app

import "github.com/sfaram/vidgrid/internal/models"

// Snapshot is a read-only copy of the container state handed to renderers.
// It is the whole presentation contract: catalog data, view state, and the
// flags the grid, watch page, forms, and admin table consume.
type Snapshot struct {
	Videos          []models.Video
	View            models.View
	Loading         bool
	LoggedIn        bool
	Theme           models.Theme
	LoginError      string
	PendingDeleteID string
	Editing         *models.VideoDraft
}

// Snapshot returns a copy of the current state.
func (a *App) Snapshot() Snapshot {
	a.mu.Lock()
	defer a.mu.Unlock()

	videos := make([]models.Video, len(a.videos))
	copy(videos, a.videos)

	var editing *models.VideoDraft
	if a.editing != nil {
		d := *a.editing
		editing = &d
	}

	return Snapshot{
		Videos:          videos,
		View:            a.view,
		Loading:         a.loading,
		LoggedIn:        a.loggedIn,
		Theme:           a.theme,
		LoginError:      a.loginError,
		PendingDeleteID: a.pendingDeleteID,
		Editing:         editing,
	}
}

// SelectedVideo returns the catalog entry the watch view points at, or nil.
func (s Snapshot) SelectedVideo() *models.Video {
	if s.View.Page != models.PageWatch {
		return nil
	}
	for i := range s.Videos {
		if s.Videos[i].ID == s.View.VideoID {
			return &s.Videos[i]
		}
	}
	return nil
}

// VideoNotFound reports whether the watch view points at a missing entry.
// Loading takes precedence: nothing is "not found" until the fetch resolves.
func (s Snapshot) VideoNotFound() bool {
	return s.View.Page == models.PageWatch && !s.Loading && s.SelectedVideo() == nil
}

// RelatedVideos returns the catalog minus the selected entry, for the
// watch-page side list.
func (s Snapshot) RelatedVideos() []models.Video {
	if s.View.Page != models.PageWatch {
		return nil
	}
	related := make([]models.Video, 0, len(s.Videos))
	for _, v := range s.Videos {
		if v.ID != s.View.VideoID {
			related = append(related, v)
		}
	}
	return related
}

// Categories returns the unique trimmed category labels in catalog order,
// for the form's suggestion list.
func (s Snapshot) Categories() []string {
	seen := make(map[string]bool, len(s.Videos))
	categories := make([]string, 0, len(s.Videos))
	for i := range s.Videos {
		key := s.Videos[i].CategoryKey()
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		categories = append(categories, key)
	}
	return categories
}
