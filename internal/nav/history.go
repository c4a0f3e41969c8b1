// Package nav maps the browser address bar onto navigation state.
//
// History is an injectable stand-in for the browser history stack so the
// view-state container can be exercised without a real browser. The
// Synchronizer owns the one recognized query parameter, videoId.
package nav

import "net/url"

// History is a navigation history capability: a current location plus
// push/replace semantics.
type History interface {
	// Current returns the current location. Implementations return a copy;
	// callers may mutate the result freely.
	Current() *url.URL

	// Push appends a new history entry and makes it current.
	Push(u *url.URL)

	// Replace swaps the current entry in place without growing the stack.
	Replace(u *url.URL)
}

// MemoryHistory is an in-process History with a full back/forward stack.
// Back and Forward simulate browser history navigation events.
type MemoryHistory struct {
	entries []*url.URL
	index   int
}

var _ History = (*MemoryHistory)(nil)

// NewMemoryHistory creates a history whose single entry is start. A nil
// start begins at "/".
func NewMemoryHistory(start *url.URL) *MemoryHistory {
	if start == nil {
		start = &url.URL{Path: "/"}
	}
	return &MemoryHistory{entries: []*url.URL{cloneURL(start)}}
}

// Current returns a copy of the current location.
func (h *MemoryHistory) Current() *url.URL {
	return cloneURL(h.entries[h.index])
}

// Push discards any forward entries and appends u.
func (h *MemoryHistory) Push(u *url.URL) {
	h.entries = append(h.entries[:h.index+1], cloneURL(u))
	h.index = len(h.entries) - 1
}

// Replace swaps the current entry for u.
func (h *MemoryHistory) Replace(u *url.URL) {
	h.entries[h.index] = cloneURL(u)
}

// Back moves one entry backwards and reports whether it moved.
func (h *MemoryHistory) Back() bool {
	if h.index == 0 {
		return false
	}
	h.index--
	return true
}

// Forward moves one entry forwards and reports whether it moved.
func (h *MemoryHistory) Forward() bool {
	if h.index >= len(h.entries)-1 {
		return false
	}
	h.index++
	return true
}

// Len returns the number of entries in the stack.
func (h *MemoryHistory) Len() int {
	return len(h.entries)
}

func cloneURL(u *url.URL) *url.URL {
	c := *u
	return &c
}
