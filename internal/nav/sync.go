package nav

import (
	"net/url"

	"github.com/sfaram/vidgrid/internal/models"
)

// ParamVideoID is the single query parameter this system recognizes. All
// other URL structure is opaque.
const ParamVideoID = "videoId"

// Synchronizer keeps the videoId query parameter and the navigation view in
// agreement. The parameter is the source of truth for whether the view is
// watch.
type Synchronizer struct{}

// ViewFromURL derives the view a location implies.
//
// A videoId in the query forces the watch view regardless of the prior view,
// admin included. An absent videoId means home, except that admin is not
// URL-addressable and survives a history event that carries no videoId.
func (Synchronizer) ViewFromURL(u *url.URL, current models.View) models.View {
	if id := u.Query().Get(ParamVideoID); id != "" {
		return models.View{Page: models.PageWatch, VideoID: id}
	}
	if current.Page == models.PageAdmin {
		return current
	}
	return models.HomeView()
}

// URLFor returns a copy of base whose videoId parameter reflects view:
// set for a watch view, removed otherwise.
func (Synchronizer) URLFor(base *url.URL, view models.View) *url.URL {
	target := cloneURL(base)
	q := target.Query()
	if view.Page == models.PageWatch {
		q.Set(ParamVideoID, view.VideoID)
	} else {
		q.Del(ParamVideoID)
	}
	target.RawQuery = q.Encode()
	return target
}

// Apply writes view into the history, pushing a new entry only when the
// resulting URL differs from the current one. Redundant navigation must not
// grow the back stack. Reports whether an entry was pushed.
func (s Synchronizer) Apply(h History, view models.View) bool {
	current := h.Current()
	target := s.URLFor(current, view)
	if target.String() == current.String() {
		return false
	}
	h.Push(target)
	return true
}
