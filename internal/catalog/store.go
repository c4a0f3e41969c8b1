// Package catalog provides the video catalog store client and its backends.
//
// The Store interface is the remote-collection boundary; Client wraps a Store
// with the read/write failure policy the rest of the application relies on:
// reads degrade to an empty catalog, writes surface their failure.
package catalog

import (
	"context"

	"github.com/sfaram/vidgrid/internal/models"
)

// Store is a backing document collection of videos.
//
// Implementations assign ID and CreatedAt on Create and must return the
// collection ordered by CreatedAt descending from List.
type Store interface {
	// List returns all catalog entries, newest first.
	List(ctx context.Context) ([]models.Video, error)

	// Create persists a new entry and returns the store-assigned id.
	// The draft's ID field is ignored.
	Create(ctx context.Context, draft models.VideoDraft) (string, error)

	// Update replaces the mutable fields (url, title, category, thumbnail)
	// of the entry identified by id. Returns ErrNotFound if no entry matches.
	Update(ctx context.Context, id string, draft models.VideoDraft) error

	// Delete removes the entry identified by id. Returns ErrNotFound if no
	// entry matches.
	Delete(ctx context.Context, id string) error

	// Ping checks store reachability.
	Ping(ctx context.Context) error
}
