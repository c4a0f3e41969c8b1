package models

import (
	"strings"
	"time"
)

// Video represents a fully persisted catalog entry. ID and CreatedAt are
// assigned by the store on creation and are immutable afterwards.
type Video struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	Thumbnail string    `json:"thumbnail,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// CategoryKey returns the trimmed category label. Category is free text, not
// a foreign key: equality of the trimmed string defines group membership.
func (v *Video) CategoryKey() string {
	return strings.TrimSpace(v.Category)
}

// VideoDraft is an in-progress edit held in form state. A draft with an
// empty ID is a new entry; a non-empty ID targets an existing entry.
type VideoDraft struct {
	ID        string `json:"id,omitempty"`
	URL       string `json:"url"`
	Title     string `json:"title"`
	Category  string `json:"category"`
	Thumbnail string `json:"thumbnail,omitempty"`
}

// DraftOf builds an editing draft from a persisted video.
func DraftOf(v Video) VideoDraft {
	return VideoDraft{
		ID:        v.ID,
		URL:       v.URL,
		Title:     v.Title,
		Category:  v.Category,
		Thumbnail: v.Thumbnail,
	}
}

// Trimmed returns a copy of the draft with all string fields trimmed.
// The ID is left untouched.
func (d VideoDraft) Trimmed() VideoDraft {
	return VideoDraft{
		ID:        d.ID,
		URL:       strings.TrimSpace(d.URL),
		Title:     strings.TrimSpace(d.Title),
		Category:  strings.TrimSpace(d.Category),
		Thumbnail: strings.TrimSpace(d.Thumbnail),
	}
}
