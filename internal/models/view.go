package models

// Page identifies one of the three top-level navigational modes.
type Page string

const (
	PageHome  Page = "home"
	PageWatch Page = "watch"
	PageAdmin Page = "admin"
)

// View is the transient navigation state. It is never persisted.
//
// Invariant: VideoID is non-empty iff Page == PageWatch.
type View struct {
	Page    Page
	VideoID string
}

// HomeView returns the default view.
func HomeView() View {
	return View{Page: PageHome}
}

// Normalize enforces the view invariant: VideoID is cleared unless the page
// is watch, and a watch view without a video id collapses to home.
func (v View) Normalize() View {
	if v.Page != PageWatch {
		v.VideoID = ""
		if v.Page != PageHome && v.Page != PageAdmin {
			v.Page = PageHome
		}
		return v
	}
	if v.VideoID == "" {
		return View{Page: PageHome}
	}
	return v
}
