package catalog

import (
	"context"
	"fmt"

	"github.com/sfaram/vidgrid/internal/logger"
	"github.com/sfaram/vidgrid/internal/models"
)

// seedDrafts is a small starter catalog for fresh deployments.
var seedDrafts = []models.VideoDraft{
	{
		Title:     "Big Buck Bunny",
		URL:       "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/BigBuckBunny.mp4",
		Category:  "Animation",
		Thumbnail: "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/images/BigBuckBunny.jpg",
	},
	{
		Title:     "Elephants Dream",
		URL:       "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ElephantsDream.mp4",
		Category:  "Animation",
		Thumbnail: "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/images/ElephantsDream.jpg",
	},
	{
		Title:    "Sintel",
		URL:      "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/Sintel.mp4",
		Category: "Fantasy",
	},
	{
		Title:    "Tears of Steel",
		URL:      "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/TearsOfSteel.mp4",
		Category: "Sci-Fi",
	},
}

// Seed inserts the sample catalog into the store. Entries are inserted in
// order, so the last sample ends up first in the listed catalog.
func Seed(ctx context.Context, store Store) error {
	for _, draft := range seedDrafts {
		id, err := store.Create(ctx, draft)
		if err != nil {
			return fmt.Errorf("failed to seed %q: %w", draft.Title, err)
		}
		logger.Log.Info().
			Str("video_id", id).
			Str("title", draft.Title).
			Msg("Seeded video")
	}
	return nil
}
