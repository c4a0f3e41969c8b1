package catalog

import (
	"context"
	"fmt"

	"github.com/sfaram/vidgrid/internal/logger"
	"github.com/sfaram/vidgrid/internal/models"
)

// Client wraps a Store with the catalog failure policy. A nil Store means
// the store handle was never established: reads return an empty catalog and
// writes fail with ErrStoreUnavailable.
type Client struct {
	store Store
}

// NewClient creates a catalog client over the given store. A nil store is
// valid and models an unconfigured deployment.
func NewClient(store Store) *Client {
	return &Client{store: store}
}

// ListVideos fetches all catalog entries ordered by creation time descending.
//
// Any failure is absorbed into an empty result: a broken store shows an empty
// grid, it never crashes the page. Callers must treat an empty catalog as a
// valid, possibly degraded, state.
func (c *Client) ListVideos(ctx context.Context) []models.Video {
	if c.store == nil {
		logger.Log.Warn().Msg("Catalog store not configured, returning empty catalog")
		return []models.Video{}
	}

	videos, err := c.store.List(ctx)
	if err != nil {
		logger.Log.Error().
			Err(err).
			Msg("Failed to list videos, returning empty catalog")
		return []models.Video{}
	}
	if videos == nil {
		videos = []models.Video{}
	}
	return videos
}

// CreateVideo persists a new entry and returns the store-assigned id.
// Unlike reads, write failures propagate: the admin needs to know a save failed.
func (c *Client) CreateVideo(ctx context.Context, draft models.VideoDraft) (string, error) {
	if c.store == nil {
		return "", ErrStoreUnavailable
	}

	id, err := c.store.Create(ctx, draft)
	if err != nil {
		logger.Log.Error().
			Err(err).
			Str("title", draft.Title).
			Msg("Failed to create video")
		return "", writeError(err)
	}

	logger.Log.Info().
		Str("video_id", id).
		Str("title", draft.Title).
		Msg("Video created")
	return id, nil
}

// UpdateVideo persists a field update to the entry identified by id.
func (c *Client) UpdateVideo(ctx context.Context, id string, draft models.VideoDraft) error {
	if c.store == nil {
		return ErrStoreUnavailable
	}

	if err := c.store.Update(ctx, id, draft); err != nil {
		logger.Log.Error().
			Err(err).
			Str("video_id", id).
			Msg("Failed to update video")
		return writeError(err)
	}

	logger.Log.Info().
		Str("video_id", id).
		Msg("Video updated")
	return nil
}

// DeleteVideo removes the entry identified by id.
func (c *Client) DeleteVideo(ctx context.Context, id string) error {
	if c.store == nil {
		return ErrStoreUnavailable
	}

	if err := c.store.Delete(ctx, id); err != nil {
		logger.Log.Error().
			Err(err).
			Str("video_id", id).
			Msg("Failed to delete video")
		return writeError(err)
	}

	logger.Log.Info().
		Str("video_id", id).
		Msg("Video deleted")
	return nil
}

// Health checks store reachability. Unconfigured stores report
// ErrStoreUnavailable.
func (c *Client) Health(ctx context.Context) error {
	if c.store == nil {
		return ErrStoreUnavailable
	}
	return c.store.Ping(ctx)
}

// writeError maps a backend error to the write failure taxonomy. ErrNotFound
// passes through so callers can distinguish a missing target from a broken
// transport.
func writeError(err error) error {
	if IsNotFound(err) {
		return err
	}
	return fmt.Errorf("%w: %s", ErrWriteFailed, err)
}
