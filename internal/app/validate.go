package app

import (
	"net/url"

	"github.com/sfaram/vidgrid/internal/models"
)

// ValidateDraft trims the draft and checks required fields and URL syntax.
// This is the single validation policy for saves: no link rewriting, no
// third-party extraction, just trim + required + syntactically valid URLs.
// It returns the cleaned draft alongside any ValidationError.
func ValidateDraft(draft models.VideoDraft) (models.VideoDraft, error) {
	d := draft.Trimmed()

	if d.Title == "" || d.URL == "" || d.Category == "" {
		return d, &ValidationError{
			Message: "Please fill in all required fields: title, URL, and category.",
		}
	}

	if !validURL(d.URL) {
		return d, &ValidationError{
			Message: "Please enter a valid URL for the video.",
		}
	}
	if d.Thumbnail != "" && !validURL(d.Thumbnail) {
		return d, &ValidationError{
			Message: "Please enter a valid URL for the thumbnail.",
		}
	}

	return d, nil
}

// validURL accepts absolute URLs with a scheme and host.
func validURL(s string) bool {
	u, err := url.ParseRequestURI(s)
	return err == nil && u.Scheme != "" && u.Host != ""
}
